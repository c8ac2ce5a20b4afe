package mimesniff

import "testing"

func TestSniffKnownSignatures(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want string
	}{
		{"png", []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0}, "image/png"},
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0}, "image/jpeg"},
		{"pdf", []byte("%PDF-1.4"), "application/pdf"},
		{"zip", []byte{0x50, 0x4B, 0x03, 0x04, 0xAA}, "application/zip"},
		{"unknown", []byte("plain text"), DefaultContentType},
	}
	for _, c := range cases {
		if got := Sniff(c.data); got != c.want {
			t.Errorf("%s: Sniff() = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestSniffDOCXNotMisidentifiedAsZip(t *testing.T) {
	docx := []byte{0x50, 0x4B, 0x03, 0x04, 0x14, 0x00, 0x06, 0x00, 0, 0}
	want := "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	if got := Sniff(docx); got != want {
		t.Errorf("Sniff(docx) = %q, want %q", got, want)
	}
}

func TestSniffTooShort(t *testing.T) {
	if got := Sniff([]byte{0x50, 0x4B}); got != DefaultContentType {
		t.Errorf("Sniff(short) = %q, want default", got)
	}
}
