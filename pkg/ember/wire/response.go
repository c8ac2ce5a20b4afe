package wire

import (
	"bytes"
	"io"
	"os"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/klauspost/compress/gzip"
	"github.com/valyala/bytebufferpool"

	"github.com/yourusername/ember/pkg/ember/container"
	"github.com/yourusername/ember/pkg/ember/mimesniff"
	"github.com/yourusername/ember/pkg/ember/status"
)

// minCompressSize and ServerHeader mirror HttpResponse.cpp's
// prepareResponse threshold and HttpResponse's default Server header.
const (
	minCompressSize = 1024
	ServerHeader    = "ember/1.1"
)

// Response is a fluent, mutable HTTP response builder, grounded on
// HttpResponse.h/.cpp's setStatus/setHeader/setBody/setJson/setCookie/
// redirect/renderTemplate/sendFile chain. Builder methods return the
// receiver so callers can chain calls the same way the C++ original
// does; an error from SetHeader, SetJSON or RenderTemplate (e.g. a
// missing template) is recorded on the Response itself rather than
// thrown, and is returned by Err and Finalize. SendFile reports a
// missing or unreadable file through the status code instead.
type Response struct {
	Status int
	Header *container.Header
	Body   []byte

	err error
}

// NewResponse returns a 200-status Response with the default Server
// header set, matching HttpResponse's constructor.
func NewResponse() *Response {
	r := &Response{Status: 200, Header: container.NewHeader()}
	r.Header.Set("Server", ServerHeader)
	return r
}

// Reset clears r for reuse from a pool.
func (r *Response) Reset() {
	r.Status = 200
	r.Header.Reset()
	r.Header.Set("Server", ServerHeader)
	r.Body = r.Body[:0]
	r.err = nil
}

// Err returns the error recorded by a builder method, if any. SetHeader
// keeps an already-recorded error; SetJSON and RenderTemplate replace
// it with their own.
func (r *Response) Err() error { return r.err }

// SetStatus sets the response status code.
func (r *Response) SetStatus(code int) *Response {
	r.Status = code
	return r
}

// SetHeader sets a response header, overwriting any existing value.
func (r *Response) SetHeader(name, value string) *Response {
	if err := r.Header.Set(name, value); err != nil && r.err == nil {
		r.err = err
	}
	return r
}

// SetBody sets the response body to the given bytes.
func (r *Response) SetBody(body []byte) *Response {
	r.Body = body
	return r
}

// SetBodyString sets the response body to the given string.
func (r *Response) SetBodyString(body string) *Response {
	r.Body = []byte(body)
	return r
}

// SetJSON marshals v with goccy/go-json (a drop-in, allocation-lighter
// encoding/json replacement) and sets Content-Type: application/json,
// mirroring HttpResponse::setJson.
func (r *Response) SetJSON(v any) *Response {
	body, err := json.Marshal(v)
	if err != nil {
		r.err = err
		return r
	}
	r.Body = body
	return r.SetHeader("Content-Type", "application/json")
}

// CookieOptions configures an outgoing Set-Cookie header.
type CookieOptions struct {
	Path     string
	MaxAge   int
	Secure   bool
	HTTPOnly bool
}

// SetCookie appends (or replaces, by name) a Set-Cookie header,
// grounded on HttpResponse::setCookie's attribute ordering and its
// replace-by-name dedup rule (container.Header.AddCookie).
func (r *Response) SetCookie(name, value string, opts CookieOptions) *Response {
	var b bytes.Buffer
	b.WriteString(name)
	b.WriteByte('=')
	b.WriteString(value)
	if opts.Path != "" {
		b.WriteString("; Path=")
		b.WriteString(opts.Path)
	}
	if opts.MaxAge > 0 {
		b.WriteString("; Max-Age=")
		b.WriteString(strconv.Itoa(opts.MaxAge))
	}
	if opts.Secure {
		b.WriteString("; Secure")
	}
	if opts.HTTPOnly {
		b.WriteString("; HttpOnly")
	}
	r.Header.AddCookie(b.String())
	return r
}

// Redirect sets the Location header and status code.
func (r *Response) Redirect(location string, code int) *Response {
	r.SetHeader("Location", location)
	return r.SetStatus(code)
}

// RenderTemplate reads templateDir/name and uses it as the response
// body, set as text/html. Grounded on HttpResponse::renderTemplate; a
// missing or unreadable template is recorded as r.err instead of
// thrown.
func (r *Response) RenderTemplate(templateDir, name string) *Response {
	path := templateDir + "/" + name
	data, err := os.ReadFile(path)
	if err != nil {
		r.err = ErrTemplateNotFound
		return r
	}
	r.Body = data
	return r.SetHeader("Content-Type", "text/html")
}

// SendFile loads fullPath as the response body and sniffs its
// Content-Type, grounded on HttpResponse::sendFile. A missing file
// yields 404 with a plain-text body; a read failure yields 500,
// matching the original's fallback behavior rather than an error
// return.
func (r *Response) SendFile(fullPath string) *Response {
	data, err := os.ReadFile(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return r.SetStatus(404).SetBodyString("Not Found\n")
		}
		return r.SetStatus(500).SetBodyString(err.Error() + "\n")
	}
	r.Body = data
	return r.SetHeader("Content-Type", mimesniff.Sniff(data))
}

// Finalize applies the compression pre-pass and the Content-Length /
// Connection / Keep-Alive headers, grounded on
// HttpResponse::prepareResponse and HttpResponse::toString. It must
// run exactly once per response, after all builder calls and before
// WriteTo.
func (r *Response) Finalize(req *Request, keepAliveEnabled bool, keepAliveTimeoutSec, maxKeepAliveRequests int) error {
	if r.err != nil {
		return r.err
	}

	if len(r.Body) > minCompressSize {
		acceptEncoding, _ := req.Header.Get("Accept-Encoding")
		contentType, _ := r.Header.Get("Content-Type")
		if containsGzip(acceptEncoding) && isCompressible(contentType) && !r.Header.Has("Content-Encoding") {
			compressed, err := gzipCompress(r.Body)
			if err == nil && len(compressed) < len(r.Body) {
				r.Body = compressed
				r.Header.Set("Content-Encoding", "gzip")
			}
		}
	}

	r.Header.Set("Content-Length", strconv.Itoa(len(r.Body)))

	connection, _ := req.Header.Get("Connection")
	if keepAliveEnabled && connection == "keep-alive" {
		r.Header.Set("Connection", "keep-alive")
		r.Header.Set("Keep-Alive", "timeout="+strconv.Itoa(keepAliveTimeoutSec)+", max="+strconv.Itoa(maxKeepAliveRequests))
	} else {
		r.Header.Set("Connection", "close")
	}

	return nil
}

// WriteTo serializes the status line, headers, Set-Cookie entries and
// body to w. Callers must have already run Finalize. The serialization
// buffer comes from a bytebufferpool.Pool rather than a fresh
// bytes.Buffer per call, grounded on buffer_pool.go's size-classed
// pooling but reusing the ecosystem pool instead of porting its
// six-size-class bookkeeping, since bytebufferpool already grows and
// recycles buffers by observed size.
func (r *Response) WriteTo(w io.Writer) (int64, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	buf.WriteString(httpVersion11)
	buf.WriteByte(' ')
	buf.WriteString(strconv.Itoa(r.Status))
	buf.WriteByte(' ')
	buf.WriteString(status.Text(r.Status))
	buf.Write(crlf)

	r.Header.VisitAll(func(name, value string) {
		buf.WriteString(name)
		buf.WriteString(": ")
		buf.WriteString(value)
		buf.Write(crlf)
	})
	buf.Write(crlf)
	buf.Write(r.Body)

	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

// Bytes returns the serialized response (see WriteTo), copied out of
// the pooled buffer so the caller owns the backing array.
func (r *Response) Bytes() ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := r.WriteTo(buf); err != nil {
		return nil, err
	}
	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

func isCompressible(contentType string) bool {
	for _, prefix := range compressibleContentTypes {
		if len(contentType) >= len(prefix) && contentType[:len(prefix)] == prefix {
			return true
		}
	}
	return false
}

func containsGzip(acceptEncoding string) bool {
	return indexOf(acceptEncoding, "gzip") >= 0
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}

func gzipCompress(data []byte) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	zw, err := gzip.NewWriterLevel(buf, gzip.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(data); err != nil {
		zw.Close()
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}
