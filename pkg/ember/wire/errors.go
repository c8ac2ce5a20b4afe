package wire

import "errors"

// Parser errors, grounded on pkg/shockwave/http11/errors.go's grouping
// of sentinel errors by phase. When Parse fails on a connection's first
// request, the connection driver (ember/server) answers with 400 Bad
// Request per spec.md §7, or 414 for ErrURITooLong; a failure on a
// later request closes the connection without a response.
var (
	// ErrMalformedRequestLine is returned when the request line does
	// not split into exactly three whitespace-separated tokens.
	ErrMalformedRequestLine = errors.New("wire: malformed request line")

	// ErrRequestTooLarge is returned when the header block exceeds
	// MaxRequestLineSize+MaxHeadersSize (or a header line does not fit
	// the read buffer), or when a chunked body decodes to more than the
	// parser's body-size limit.
	ErrRequestTooLarge = errors.New("wire: request too large")

	// ErrContentLengthTooLarge is returned when a Content-Length value
	// exceeds MaxRequestSize.
	ErrContentLengthTooLarge = errors.New("wire: content-length exceeds limit")

	// ErrInvalidContentLength is returned when the Content-Length
	// header value is not a valid non-negative integer.
	ErrInvalidContentLength = errors.New("wire: invalid content-length")

	// ErrChunkedEncoding is returned for any malformed chunked-body
	// framing: a bad hex chunk-size, a missing/incorrect CRLF
	// terminator, an oversized chunk-header line, or an unexpected EOF
	// mid-chunk.
	ErrChunkedEncoding = errors.New("wire: malformed chunked encoding")

	// ErrConnectionClosed is returned when the peer closes the
	// connection before a complete request is read.
	ErrConnectionClosed = errors.New("wire: connection closed before request completed")

	// ErrURITooLong is returned when the request-URI exceeds MaxURILength.
	// The connection driver maps this to 414 URI Too Long per
	// spec.md §4.G.1, distinct from the general 400 mapping of the
	// other parser errors.
	ErrURITooLong = errors.New("wire: request-uri too long")

	// ErrInvalidHeader is returned for a malformed header line: no
	// colon, whitespace before the colon, or a name/value containing a
	// space or tab where RFC 7230 §3.2 forbids one.
	ErrInvalidHeader = errors.New("wire: malformed header line")

	// ErrRequestSmuggling is returned when a request carries both
	// Content-Length and Transfer-Encoding, or conflicting duplicate
	// Content-Length values (RFC 7230 §3.3.3).
	ErrRequestSmuggling = errors.New("wire: conflicting framing headers")

	// ErrDuplicateHost is returned when a request carries more than one
	// Host header (RFC 7230 §5.4).
	ErrDuplicateHost = errors.New("wire: duplicate host header")
)

// Response errors.
var (
	// ErrTemplateNotFound is returned by Response.RenderTemplate when
	// the named template file does not exist.
	ErrTemplateNotFound = errors.New("wire: template not found")
)

// Request-body-binding errors.
var (
	// ErrUnsupportedMediaType is returned by Request.BindJSON when
	// Content-Type is not exactly "application/json".
	ErrUnsupportedMediaType = errors.New("wire: unsupported media type")
)
