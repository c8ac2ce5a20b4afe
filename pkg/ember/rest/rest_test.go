package rest

import (
	"strings"
	"testing"

	"github.com/yourusername/ember/pkg/ember/wire"
)

func TestResultTextApply(t *testing.T) {
	resp := wire.NewResponse()
	Ok("hello").Apply(resp)
	if resp.Status != 200 || string(resp.Body) != "hello" {
		t.Fatalf("got %d %q", resp.Status, resp.Body)
	}
}

func TestResultJSONApply(t *testing.T) {
	resp := wire.NewResponse()
	JSON(201, map[string]int{"id": 1}).Apply(resp)
	if resp.Status != 201 {
		t.Fatalf("got status %d", resp.Status)
	}
	if ct, _ := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Fatalf("got content-type %q", ct)
	}
	if !strings.Contains(string(resp.Body), `"id":1`) {
		t.Fatalf("got body %q", resp.Body)
	}
}

func TestResultNumberApply(t *testing.T) {
	resp := wire.NewResponse()
	Number(200, 42).Apply(resp)
	if string(resp.Body) != "42" {
		t.Fatalf("got %q", resp.Body)
	}
}

func TestResultFromResponseApply(t *testing.T) {
	built := wire.NewResponse().SetStatus(204).SetHeader("X-Custom", "yes")
	resp := wire.NewResponse()
	FromResponse(built).Apply(resp)
	if resp.Status != 204 {
		t.Fatalf("got status %d", resp.Status)
	}
	if v, _ := resp.Header.Get("X-Custom"); v != "yes" {
		t.Fatalf("got header %q", v)
	}
}

func TestResultFromResponseApplyPreservesMultipleCookies(t *testing.T) {
	built := wire.NewResponse()
	built.SetCookie("session", "abc", wire.CookieOptions{})
	built.SetCookie("theme", "dark", wire.CookieOptions{})
	resp := wire.NewResponse()
	FromResponse(built).Apply(resp)

	cookies := resp.Header.Cookies()
	if len(cookies) != 2 {
		t.Fatalf("got %d cookies, want 2: %v", len(cookies), cookies)
	}
	if !strings.HasPrefix(cookies[0], "session=") || !strings.HasPrefix(cookies[1], "theme=") {
		t.Fatalf("got cookies %v", cookies)
	}
}

func TestPathVarsGetIntMissing(t *testing.T) {
	vars := NewPathVars()
	if _, err := vars.GetInt("id"); err != ErrPathVarMissing {
		t.Fatalf("got %v, want ErrPathVarMissing", err)
	}
}

func TestPathVarsGetIntParsed(t *testing.T) {
	vars := NewPathVars()
	vars.Set("id", "42")
	n, err := vars.GetInt("id")
	if err != nil || n != 42 {
		t.Fatalf("got %d, %v", n, err)
	}
}

func TestPathVarsMustGetIntPanicsOnMissing(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	NewPathVars().MustGetInt("id")
}

func TestPathVarsGetStringDefault(t *testing.T) {
	vars := NewPathVars()
	if got := vars.GetString("missing", "fallback"); got != "fallback" {
		t.Fatalf("got %q", got)
	}
}
