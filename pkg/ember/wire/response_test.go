package wire

import (
	"bytes"
	"strings"
	"testing"
)

func newTestRequestWithHeaders(headers map[string]string) *Request {
	req := NewRequest()
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}

func TestResponseSetJSON(t *testing.T) {
	r := NewResponse()
	r.SetJSON(map[string]string{"hello": "world"})
	if r.Err() != nil {
		t.Fatalf("SetJSON error: %v", r.Err())
	}
	if ct, _ := r.Header.Get("Content-Type"); ct != "application/json" {
		t.Fatalf("got content-type %q", ct)
	}
	if !strings.Contains(string(r.Body), `"hello":"world"`) {
		t.Fatalf("got body %q", r.Body)
	}
}

func TestResponseCookieDedupByName(t *testing.T) {
	r := NewResponse()
	r.SetCookie("session", "abc", CookieOptions{Path: "/", HTTPOnly: true})
	r.SetCookie("session", "def", CookieOptions{Path: "/"})
	cookies := r.Header.Cookies()
	if len(cookies) != 1 {
		t.Fatalf("got %d cookies, want 1: %v", len(cookies), cookies)
	}
	if !strings.HasPrefix(cookies[0], "session=def") {
		t.Fatalf("got %q", cookies[0])
	}
}

func TestResponseFinalizeSetsContentLengthAndConnectionClose(t *testing.T) {
	r := NewResponse().SetBodyString("hi")
	req := NewRequest()
	if err := r.Finalize(req, true, 5, 100); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if cl, _ := r.Header.Get("Content-Length"); cl != "2" {
		t.Fatalf("got content-length %q", cl)
	}
	if conn, _ := r.Header.Get("Connection"); conn != "close" {
		t.Fatalf("got connection %q", conn)
	}
}

func TestResponseFinalizeKeepAlive(t *testing.T) {
	r := NewResponse().SetBodyString("hi")
	req := newTestRequestWithHeaders(map[string]string{"Connection": "keep-alive"})
	if err := r.Finalize(req, true, 5, 100); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if conn, _ := r.Header.Get("Connection"); conn != "keep-alive" {
		t.Fatalf("got connection %q", conn)
	}
	if ka, _ := r.Header.Get("Keep-Alive"); ka != "timeout=5, max=100" {
		t.Fatalf("got keep-alive %q", ka)
	}
}

func TestResponseCompressesLargeCompressibleBody(t *testing.T) {
	body := strings.Repeat("a", 2048)
	r := NewResponse().SetBodyString(body).SetHeader("Content-Type", "text/plain")
	req := newTestRequestWithHeaders(map[string]string{"Accept-Encoding": "gzip, deflate"})
	if err := r.Finalize(req, false, 0, 0); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if enc, _ := r.Header.Get("Content-Encoding"); enc != "gzip" {
		t.Fatalf("expected gzip encoding, got %q", enc)
	}
	if len(r.Body) >= len(body) {
		t.Fatalf("expected compressed body to shrink, got %d >= %d", len(r.Body), len(body))
	}
}

func TestResponseSkipsCompressionWithoutAcceptEncoding(t *testing.T) {
	body := strings.Repeat("a", 2048)
	r := NewResponse().SetBodyString(body).SetHeader("Content-Type", "text/plain")
	req := NewRequest()
	if err := r.Finalize(req, false, 0, 0); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if r.Header.Has("Content-Encoding") {
		t.Fatalf("did not expect Content-Encoding")
	}
}

func TestResponseWriteToProducesStatusLine(t *testing.T) {
	r := NewResponse().SetStatus(404).SetBodyString("nope")
	req := NewRequest()
	if err := r.Finalize(req, false, 0, 0); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	var buf bytes.Buffer
	if _, err := r.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "HTTP/1.1 404 Not Found\r\n") {
		t.Fatalf("got %q", buf.String())
	}
	if !strings.HasSuffix(buf.String(), "\r\n\r\nnope") {
		t.Fatalf("got %q", buf.String())
	}
}

func TestResponseRenderTemplateMissingFileRecordsError(t *testing.T) {
	r := NewResponse().RenderTemplate("/nonexistent/dir", "missing.html")
	if r.Err() != ErrTemplateNotFound {
		t.Fatalf("got %v, want ErrTemplateNotFound", r.Err())
	}
}

func TestResponseSendFileMissingYields404(t *testing.T) {
	r := NewResponse().SendFile("/nonexistent/path/for/ember/tests")
	if r.Status != 404 {
		t.Fatalf("got status %d", r.Status)
	}
}
