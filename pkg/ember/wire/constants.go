// Package wire implements the HTTP/1.1 request reader and response
// builder: byte stream in, structured Request out; structured Response
// in, HTTP/1.1 wire bytes out.
//
// Grounded on pkg/shockwave/http11 (request.go, response.go, parser.go,
// chunked.go, header.go, method.go, constants.go), generalized from
// that package's fixed-size zero-allocation design to the semantics
// spec.md's component D/E describe: framed-body decoding (Content-
// Length and chunked), multipart/form-data and
// application/x-www-form-urlencoded parsing, cookie/JSON extraction,
// and response serialization with cookie dedup and a gzip
// compression pre-pass.
package wire

// Process-wide limits, carried from source/include/Config.h (the
// CPPServer original) and pkg/shockwave/http11/constants.go.
const (
	// BufferSize is the reference's 8 KiB read-buffer size. Nothing in
	// this package reads it; connection read buffers are sized by
	// NewBufioReader and NewBufioReaderSize.
	BufferSize = 8192

	// MaxRequestSize is NewParser's default cap on a request body: a
	// larger Content-Length, or a chunked body decoding to more bytes,
	// fails the parse. The header block has its own cap (below).
	MaxRequestSize = 10 * 1024 * 1024 // 10 MiB

	// MaxRequestLineSize, together with MaxHeadersSize, caps the
	// combined size of the request line and header block while still
	// searching for the header terminator: the block fails once it
	// would exceed their sum.
	MaxRequestLineSize = 8192

	// MaxHeadersSize caps the header block search window, matching the
	// teacher's http11/constants.go budget.
	MaxHeadersSize = 8192

	// MaxChunkHeaderLine caps an individual chunk-size line per
	// spec.md §4.D.5 ("A chunk-header line longer than 1024 bytes ->
	// fail").
	MaxChunkHeaderLine = 1024

	// MaxURILength caps the decoded request path length; spec.md
	// §4.G.1 maps a longer path to 414 URI Too Long.
	MaxURILength = 1024
)

// Protocol byte sequences.
var (
	crlf = []byte("\r\n")
)

const httpVersion11 = "HTTP/1.1"

// Content types the compression pre-pass (§4.E) is willing to gzip.
var compressibleContentTypes = []string{
	"text/",
	"application/json",
	"application/javascript",
	"application/xml",
	"application/x-www-form-urlencoded",
}
