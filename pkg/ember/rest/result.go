package rest

import (
	"strconv"

	"github.com/yourusername/ember/pkg/ember/wire"
)

// Handler is the function type ember routes dispatch to. It returns a
// Result describing how the response should be filled in, grounded on
// HttpServer.h's templated handler signature (Response<T>(Context&)).
//
// Go has no direct equivalent of the C++ original's
// Response<T>/handleResponse<T>() template pair, so Result plays that
// role as a tagged union over the four payload kinds spec.md §4.H
// names (text, JSON, numeric, HttpResponse), with Apply doing what the
// original's handleResponse() template specializations did per T.
type Handler func(*Context) Result

type resultKind int

const (
	kindText resultKind = iota
	kindJSON
	kindNumeric
	kindResponse
)

// Result is a handler's return value: a status code plus a tagged
// payload. Use the constructors below rather than constructing one
// directly.
type Result struct {
	status   int
	kind     resultKind
	text     string
	json     any
	num      int64
	response *wire.Response
}

// Text returns a Response<text> with the given status and body.
func Text(status int, body string) Result {
	return Result{status: status, kind: kindText, text: body}
}

// JSON returns a Response<json> with the given status; v is marshaled
// by Apply via Response.SetJSON.
func JSON(status int, v any) Result {
	return Result{status: status, kind: kindJSON, json: v}
}

// Number returns a Response<numeric> whose body is n's decimal text.
func Number(status int, n int64) Result {
	return Result{status: status, kind: kindNumeric, num: n}
}

// FromResponse returns a Response<HttpResponse> wrapping resp
// verbatim, for handlers that build the response directly (e.g. via
// SendFile, RenderTemplate, or custom cookies) rather than returning a
// plain payload.
func FromResponse(resp *wire.Response) Result {
	return Result{status: resp.Status, kind: kindResponse, response: resp}
}

// Apply mutates resp according to r, matching spec.md §4.H's adapter
// rules.
func (r Result) Apply(resp *wire.Response) {
	switch r.kind {
	case kindJSON:
		resp.SetStatus(r.status).SetJSON(r.json)
	case kindNumeric:
		resp.SetStatus(r.status).SetBodyString(strconv.FormatInt(r.num, 10))
	case kindResponse:
		if r.response != resp {
			resp.SetStatus(r.response.Status)
			resp.Body = r.response.Body
			for _, e := range r.response.Header.Entries() {
				resp.Header.Set(e.Name, e.Value)
			}
			for _, cookie := range r.response.Header.Cookies() {
				resp.Header.AddCookie(cookie)
			}
		}
	default: // kindText
		resp.SetStatus(r.status).SetBodyString(r.text)
	}
}

// Convenience constructors, grounded on HttpServer.h's Ok/Created/
// BadRequest/NotFound/MethodNotAllowed/InternalServerError/
// NotImplemented free functions. Each produces a Response<text> with a
// fixed status, as spec.md §4.H requires.

func Ok(body string) Result                  { return Text(200, body) }
func Created(body string) Result             { return Text(201, body) }
func BadRequest(body string) Result          { return Text(400, body) }
func NotFound(body string) Result            { return Text(404, body) }
func MethodNotAllowed(body string) Result    { return Text(405, body) }
func InternalServerError(body string) Result { return Text(500, body) }
func NotImplemented(body string) Result      { return Text(501, body) }
