package container

import "testing"

func TestStringMapLastWriteWins(t *testing.T) {
	m := NewStringMap()
	m.Set("name", "a")
	m.Set("name", "b")
	if got, _ := m.Get("name"); got != "b" {
		t.Fatalf("got %q, want %q", got, "b")
	}
	if m.Len() != 1 {
		t.Fatalf("len = %d, want 1", m.Len())
	}
}

func TestStringMapGetDefault(t *testing.T) {
	m := NewStringMap()
	if got := m.GetDefault("missing", "fallback"); got != "fallback" {
		t.Fatalf("got %q, want fallback", got)
	}
}

func TestStringMapOrderPreserved(t *testing.T) {
	m := NewStringMap()
	m.Set("b", "2")
	m.Set("a", "1")
	m.Set("c", "3")
	want := []string{"b", "a", "c"}
	got := m.Keys()
	for i, k := range want {
		if got[i] != k {
			t.Fatalf("Keys()[%d] = %q, want %q", i, got[i], k)
		}
	}
}

func TestHeaderCaseInsensitiveNames(t *testing.T) {
	h := NewHeader()
	h.Set("Content-Type", "text/plain")
	if v, _ := h.Get("content-type"); v != "text/plain" {
		t.Fatalf("case-insensitive Get failed")
	}
	if !h.Has("CONTENT-TYPE") {
		t.Fatalf("case-insensitive Has failed")
	}
}

func TestHeaderRejectsCRLFInjection(t *testing.T) {
	h := NewHeader()
	if err := h.Set("X-Evil", "value\r\nX-Injected: yes"); err != ErrInvalidHeader {
		t.Fatalf("expected ErrInvalidHeader, got %v", err)
	}
}

func TestHeaderRejectsOversized(t *testing.T) {
	h := NewHeader()
	big := make([]byte, MaxHeaderValue+1)
	if err := h.Set("X-Big", string(big)); err != ErrHeaderTooLarge {
		t.Fatalf("expected ErrHeaderTooLarge, got %v", err)
	}
}

func TestCookieDedupReplacesSameName(t *testing.T) {
	h := NewHeader()
	h.AddCookie("session=v1; Path=/")
	h.AddCookie("other=1")
	h.AddCookie("session=v2; Path=/")

	cookies := h.Cookies()
	if len(cookies) != 2 {
		t.Fatalf("got %d cookies, want 2: %v", len(cookies), cookies)
	}
	if cookies[0] != "session=v2; Path=/" {
		t.Fatalf("expected replaced session cookie first, got %q", cookies[0])
	}
	if cookies[1] != "other=1" {
		t.Fatalf("expected other cookie preserved, got %q", cookies[1])
	}
}
