package wire

import (
	"bytes"
	"strings"
	"testing"
)

func parseRaw(t *testing.T, raw string) (*Request, error) {
	t.Helper()
	br := NewBufioReader(strings.NewReader(raw))
	return NewParser().Parse(br)
}

func TestParseSimpleGET(t *testing.T) {
	req, err := parseRaw(t, "GET /hello?name=world HTTP/1.1\r\nHost: localhost\r\n\r\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if req.Method != MethodGET || req.Path != "/hello" || req.Query != "name=world" {
		t.Fatalf("got %+v", req)
	}
	if v, ok := req.QueryParams().Get("name"); !ok || v != "world" {
		t.Fatalf("query param not parsed: %v %v", v, ok)
	}
}

func TestParseWithContentLengthBody(t *testing.T) {
	raw := "POST /echo HTTP/1.1\r\nHost: localhost\r\nContent-Length: 5\r\n\r\nhello"
	req, err := parseRaw(t, raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if string(req.Body) != "hello" {
		t.Fatalf("got body %q", req.Body)
	}
}

func TestParseChunkedBody(t *testing.T) {
	raw := "POST /echo HTTP/1.1\r\nHost: localhost\r\nTransfer-Encoding: chunked\r\n\r\n5\r\nhello\r\n0\r\n\r\n"
	req, err := parseRaw(t, raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if string(req.Body) != "hello" {
		t.Fatalf("got body %q", req.Body)
	}
}

func TestParseRejectsContentLengthAndTransferEncoding(t *testing.T) {
	raw := "POST /x HTTP/1.1\r\nHost: localhost\r\nContent-Length: 5\r\nTransfer-Encoding: chunked\r\n\r\nhello"
	_, err := parseRaw(t, raw)
	if err != ErrRequestSmuggling {
		t.Fatalf("got %v, want ErrRequestSmuggling", err)
	}
}

func TestParseRejectsConflictingContentLength(t *testing.T) {
	raw := "POST /x HTTP/1.1\r\nHost: localhost\r\nContent-Length: 5\r\nContent-Length: 9\r\n\r\nhello"
	_, err := parseRaw(t, raw)
	if err != ErrRequestSmuggling {
		t.Fatalf("got %v, want ErrRequestSmuggling", err)
	}
}

func TestParseRejectsDuplicateHost(t *testing.T) {
	raw := "GET / HTTP/1.1\r\nHost: a\r\nHost: b\r\n\r\n"
	_, err := parseRaw(t, raw)
	if err != ErrDuplicateHost {
		t.Fatalf("got %v, want ErrDuplicateHost", err)
	}
}

func TestParseRejectsWhitespaceBeforeColon(t *testing.T) {
	raw := "GET / HTTP/1.1\r\nHost : a\r\n\r\n"
	_, err := parseRaw(t, raw)
	if err != ErrInvalidHeader {
		t.Fatalf("got %v, want ErrInvalidHeader", err)
	}
}

func TestParseRejectsOverlongURI(t *testing.T) {
	raw := "GET /" + strings.Repeat("a", MaxURILength+10) + " HTTP/1.1\r\nHost: a\r\n\r\n"
	_, err := parseRaw(t, raw)
	if err != ErrURITooLong {
		t.Fatalf("got %v, want ErrURITooLong", err)
	}
}

func TestParsePipeliningDrainsBufferedBytes(t *testing.T) {
	raw := "GET /one HTTP/1.1\r\nHost: a\r\n\r\nGET /two HTTP/1.1\r\nHost: a\r\n\r\n"
	br := NewBufioReader(strings.NewReader(raw))
	p := NewParser()

	first, err := p.Parse(br)
	if err != nil {
		t.Fatalf("first Parse: %v", err)
	}
	if first.Path != "/one" {
		t.Fatalf("got %q", first.Path)
	}

	second, err := p.Parse(br)
	if err != nil {
		t.Fatalf("second Parse: %v", err)
	}
	if second.Path != "/two" {
		t.Fatalf("got %q", second.Path)
	}
}

func TestParseRejectsMissingSpaceInRequestLine(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("GET\r\nHost: a\r\n\r\n")
	br := NewBufioReader(&buf)
	_, err := NewParser().Parse(br)
	if err != ErrMalformedRequestLine {
		t.Fatalf("got %v, want ErrMalformedRequestLine", err)
	}
}
