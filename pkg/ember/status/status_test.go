package status

import "testing"

func TestKnownCodes(t *testing.T) {
	cases := map[int]string{
		200: "OK",
		404: "Not Found",
		418: "I'm a Teapot",
		422: "Unprocessable Entity",
		451: "Unavailable For Legal Reasons",
		511: "Network Authentication Required",
	}
	for code, want := range cases {
		if got := Text(code); got != want {
			t.Errorf("Text(%d) = %q, want %q", code, got, want)
		}
	}
}

func TestUnknownCode(t *testing.T) {
	if got := Text(999); got != "Unknown" {
		t.Errorf("Text(999) = %q, want Unknown", got)
	}
}
