package wire

import (
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/yourusername/ember/pkg/ember/container"
	"github.com/yourusername/ember/pkg/ember/strutil"
)

// Request is a fully decoded HTTP request.
//
// Grounded on pkg/shockwave/http11/request.go's field layout, adapted
// away from its zero-copy byte-slice design: once a request carries
// parsed Query/Form/Files/JSON views (spec.md §4.D), those views force
// allocation anyway, so Request stores plain strings rather than
// offsets into a shared buffer.
type Request struct {
	Method Method
	Path   string
	Query  string
	Proto  string

	Header *container.Header

	Body []byte

	// Params is an empty map that neither the router nor the server
	// fills; path variables captured by a route match (e.g.
	// {id} -> "42") are delivered through rest.Context.Vars.
	Params *container.StringMap

	remoteAddr string

	queryParsed bool
	queryValues *container.StringMap

	formParsed  bool
	formValues  *container.StringMap
	files       []UploadedFile
	filesByName map[string][]UploadedFile

	jsonParsed bool
	jsonValue  any
	jsonOK     bool
}

// NewRequest returns an empty, ready-to-populate Request.
func NewRequest() *Request {
	return &Request{
		Header: container.NewHeader(),
		Params: container.NewStringMap(),
	}
}

// Reset clears r for reuse from a pool.
func (r *Request) Reset() {
	r.Method = MethodUnknown
	r.Path = ""
	r.Query = ""
	r.Proto = ""
	r.Header.Reset()
	r.Body = r.Body[:0]
	r.Params.Reset()
	r.remoteAddr = ""
	r.queryParsed = false
	r.queryValues = nil
	r.formParsed = false
	r.formValues = nil
	r.files = nil
	r.filesByName = nil
	r.jsonParsed = false
	r.jsonValue = nil
	r.jsonOK = false
}

// RemoteAddr returns the client address the connection was accepted
// from (host:port form).
func (r *Request) RemoteAddr() string { return r.remoteAddr }

// SetRemoteAddr is called by the connection driver after accept.
func (r *Request) SetRemoteAddr(addr string) { r.remoteAddr = addr }

// QueryParams lazily parses r.Query as application/x-www-form-urlencoded
// and returns the resulting key/value map (last write wins), grounded
// on HttpRequest.cpp's query-string handling.
func (r *Request) QueryParams() *container.StringMap {
	if !r.queryParsed {
		r.queryValues = parseFormBody(r.Query)
		r.queryParsed = true
	}
	return r.queryValues
}

// FormValue returns a single query or body form value, body taking
// precedence over query when both set the same key (matches
// HttpRequest.cpp::getParam's merge order).
func (r *Request) FormValue(key string) (string, bool) {
	if r.formParsed {
		if v, ok := r.formValues.Get(key); ok {
			return v, true
		}
	}
	return r.QueryParams().Get(key)
}

// ParseForm decodes application/x-www-form-urlencoded or
// multipart/form-data bodies per spec.md §4.D, populating FormValue
// lookups and, for multipart bodies, the uploaded-file table.
func (r *Request) ParseForm() error {
	if r.formParsed {
		return nil
	}
	ct, _ := r.Header.Get("Content-Type")
	switch {
	case strings.HasPrefix(ct, "multipart/form-data"):
		boundary := extractBoundary(ct)
		if boundary == "" {
			r.formValues = container.NewStringMap()
			r.formParsed = true
			return ErrMalformedRequestLine
		}
		forms, files := ParseMultipart(r.Body, boundary)
		r.formValues = forms
		r.files = files
		r.filesByName = make(map[string][]UploadedFile, len(files))
		for _, f := range files {
			r.filesByName[f.FieldName] = append(r.filesByName[f.FieldName], f)
		}
	case strings.HasPrefix(ct, "application/x-www-form-urlencoded"):
		r.formValues = parseFormBody(string(r.Body))
	default:
		r.formValues = container.NewStringMap()
	}
	r.formParsed = true
	return nil
}

// File returns the first uploaded file posted under the given form
// field name.
func (r *Request) File(field string) (UploadedFile, bool) {
	files := r.filesByName[field]
	if len(files) == 0 {
		return UploadedFile{}, false
	}
	return files[0], true
}

// Files returns every uploaded file posted under field.
func (r *Request) Files(field string) []UploadedFile {
	return r.filesByName[field]
}

// Cookie returns the value of the named cookie, parsed with
// SPEC_FULL.md's resolved Cookie-parsing rule: when the Cookie header's
// raw value contains '&' it is first split the same way a urlencoded
// form body is (on '&'); otherwise, or when that split has no such
// cookie, it is split on ';'.
func (r *Request) Cookie(name string) (string, bool) {
	raw, ok := r.Header.Get("Cookie")
	if !ok {
		return "", false
	}
	if strings.IndexByte(raw, '&') >= 0 {
		for _, kv := range strutil.ParseURLEncoded(raw) {
			if kv.Key == name {
				return kv.Value, true
			}
		}
	}
	// ';'-splitting for headers without '&', since ';' is the RFC 6265
	// separator browsers actually send.
	for _, part := range strings.Split(raw, ";") {
		part = strutil.Trim(part)
		eq := strings.IndexByte(part, '=')
		if eq < 0 {
			continue
		}
		if strutil.Trim(part[:eq]) == name {
			return strutil.Trim(part[eq+1:]), true
		}
	}
	return "", false
}

// JSON lazily parses the body as JSON per spec.md §4.D.9: only when
// Content-Type is exactly "application/json" and the body is
// nonempty is a parse even attempted; any other Content-Type, an
// empty body, or a parse error all leave the JSON slot absent (ok ==
// false) rather than failing the request. Grounded on
// HttpRequest.cpp's equivalent step, parsed through goccy/go-json
// the same way Response.SetJSON serializes through it.
func (r *Request) JSON() (value any, ok bool) {
	if r.jsonParsed {
		return r.jsonValue, r.jsonOK
	}
	r.jsonParsed = true

	ct, _ := r.Header.Get("Content-Type")
	if ct == "application/json" && len(r.Body) > 0 {
		var v any
		if err := json.Unmarshal(r.Body, &v); err == nil {
			r.jsonValue = v
			r.jsonOK = true
		}
	}
	return r.jsonValue, r.jsonOK
}

// BindJSON parses the body into v, bypassing the absent/null JSON()
// slot for handlers that want a typed struct and a real error instead
// (e.g. to distinguish "wrong Content-Type" from "malformed JSON").
// It does not share state with JSON() — Body is re-parsed on each
// call — since v's concrete type varies per call site.
func (r *Request) BindJSON(v any) error {
	ct, _ := r.Header.Get("Content-Type")
	if ct != "application/json" {
		return ErrUnsupportedMediaType
	}
	return json.Unmarshal(r.Body, v)
}

// ContentLength returns the parsed Content-Length header value, or -1
// if absent or invalid.
func (r *Request) ContentLength() int64 {
	v, ok := r.Header.Get("Content-Length")
	if !ok {
		return -1
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		return -1
	}
	return n
}

func parseFormBody(body string) *container.StringMap {
	m := container.NewStringMap()
	for _, kv := range strutil.ParseURLEncoded(body) {
		m.Set(kv.Key, kv.Value)
	}
	return m
}

func extractBoundary(contentType string) string {
	idx := strings.Index(contentType, "boundary=")
	if idx < 0 {
		return ""
	}
	b := contentType[idx+len("boundary="):]
	if semi := strings.IndexByte(b, ';'); semi >= 0 {
		b = b[:semi]
	}
	return strings.Trim(strutil.Trim(b), `"`)
}
