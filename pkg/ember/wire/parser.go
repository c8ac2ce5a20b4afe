package wire

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/yourusername/ember/pkg/ember/container"
)

// parserBufSize sizes the bufio.Reader the Parser wraps a raw
// connection in. It must be large enough to hold one full header line
// (MaxHeaderValue) plus its name, with slack, since bufio.ReadSlice
// fails a line that doesn't fit in the buffer.
const parserBufSize = container.MaxHeaderValue + container.MaxHeaderName + 256

// Parser reads one HTTP/1.1 request at a time off a connection,
// grounded on pkg/shockwave/http11/parser.go's state machine, adapted
// from that package's zero-copy buffer-and-offset design to plain
// string/[]byte fields once Request carries lazily-parsed Query/Form
// views that allocate regardless.
//
// Unlike the teacher's Parser, which tracks its own unreadBuf to
// support pipelining, Parser always reads through a *bufio.Reader:
// bufio already retains any bytes read past the current request's end,
// so the next Parse call drains them first with no extra bookkeeping.
type Parser struct {
	maxRequestSize uint64
}

// NewParser returns a Parser enforcing the package default
// MaxRequestSize. Callers that carry a configurable MAX_REQUEST_SIZE
// (spec.md §3) should use NewParserWithLimit instead.
func NewParser() *Parser {
	return &Parser{maxRequestSize: MaxRequestSize}
}

// NewParserWithLimit returns a Parser enforcing maxRequestSize in
// place of the package default, wiring server.Config.MaxRequestSize
// through to the body-size cap instead of leaving it decorative.
func NewParserWithLimit(maxRequestSize uint64) *Parser {
	return &Parser{maxRequestSize: maxRequestSize}
}

// Parse reads one request from br. br should be sized at least
// parserBufSize; NewBufioReader returns one that is.
func (p *Parser) Parse(br *bufio.Reader) (*Request, error) {
	headerBlock, err := readHeaderBlock(br)
	if err != nil {
		return nil, err
	}

	req := NewRequest()

	lineEnd := bytes.Index(headerBlock, crlf)
	if lineEnd < 0 {
		return nil, ErrMalformedRequestLine
	}
	if err := parseRequestLine(req, headerBlock[:lineEnd]); err != nil {
		return nil, err
	}

	contentLength, chunked, err := parseHeaderLines(req, headerBlock[lineEnd+2:])
	if err != nil {
		return nil, err
	}

	body, err := readBody(br, contentLength, chunked, p.maxRequestSize)
	if err != nil {
		return nil, err
	}
	req.Body = body

	return req, nil
}

// NewBufioReader wraps r in a bufio.Reader sized for Parse.
func NewBufioReader(r io.Reader) *bufio.Reader {
	return bufio.NewReaderSize(r, parserBufSize)
}

// NewBufioReaderSize wraps r in a bufio.Reader sized to size, wiring
// server.Config.BufferSize through to the connection's read buffer.
// size is raised to parserBufSize when smaller, since Parse relies on
// bufio.Reader.ReadSlice finding a full header line within one
// buffer's worth of bytes.
func NewBufioReaderSize(r io.Reader, size int) *bufio.Reader {
	if size < parserBufSize {
		size = parserBufSize
	}
	return bufio.NewReaderSize(r, size)
}

// readHeaderBlock reads from br until the blank line terminating the
// header block ("\r\n\r\n"), returning the request line and every
// header line, each with its CRLF, but excluding the final blank line.
func readHeaderBlock(br *bufio.Reader) ([]byte, error) {
	var block bytes.Buffer
	for {
		line, err := br.ReadSlice('\n')
		if err != nil {
			if err == bufio.ErrBufferFull {
				return nil, ErrRequestTooLarge
			}
			if err == io.EOF && len(line) == 0 && block.Len() == 0 {
				return nil, ErrConnectionClosed
			}
			return nil, ErrMalformedRequestLine
		}
		if block.Len()+len(line) > MaxRequestLineSize+MaxHeadersSize {
			return nil, ErrRequestTooLarge
		}
		if len(line) == 2 && line[0] == '\r' && line[1] == '\n' {
			return block.Bytes(), nil
		}
		block.Write(line)
	}
}

func parseRequestLine(req *Request, line []byte) error {
	first := bytes.IndexByte(line, ' ')
	if first < 0 {
		return ErrMalformedRequestLine
	}
	method := ParseMethod(string(line[:first]))
	if method == MethodUnknown {
		return ErrMalformedRequestLine
	}
	req.Method = method

	rest := line[first+1:]
	second := bytes.IndexByte(rest, ' ')
	if second < 0 {
		return ErrMalformedRequestLine
	}
	uri := rest[:second]
	if len(uri) > MaxURILength {
		return ErrURITooLong
	}
	if len(uri) == 0 || (uri[0] != '/' && uri[0] != '*') {
		return ErrMalformedRequestLine
	}

	if q := bytes.IndexByte(uri, '?'); q >= 0 {
		req.Path = string(uri[:q])
		req.Query = string(uri[q+1:])
	} else {
		req.Path = string(uri)
	}

	proto := rest[second+1:]
	if !bytes.Equal(proto, []byte(httpVersion11)) {
		return ErrMalformedRequestLine
	}
	req.Proto = httpVersion11
	return nil
}

// parseHeaderLines parses the header block (excluding the request
// line and the terminating blank line), applying the same
// request-smuggling defenses as pkg/shockwave/http11/parser.go:
// conflicting duplicate Content-Length values, Content-Length combined
// with Transfer-Encoding, and more than one Host header are all
// rejected rather than tolerated.
func parseHeaderLines(req *Request, block []byte) (contentLength int64, chunked bool, err error) {
	contentLength = -1
	var hasContentLength, hasTransferEncoding, hasHost bool

	pos := 0
	for pos < len(block) {
		lineEnd := bytes.Index(block[pos:], crlf)
		if lineEnd < 0 {
			return 0, false, ErrInvalidHeader
		}
		lineEnd += pos
		line := block[pos:lineEnd]
		pos = lineEnd + 2

		colon := bytes.IndexByte(line, ':')
		if colon <= 0 {
			return 0, false, ErrInvalidHeader
		}
		if line[colon-1] == ' ' || line[colon-1] == '\t' {
			return 0, false, ErrInvalidHeader
		}
		name := line[:colon]
		if bytes.IndexByte(name, ' ') >= 0 || bytes.IndexByte(name, '\t') >= 0 {
			return 0, false, ErrInvalidHeader
		}
		value := bytes.TrimSpace(line[colon+1:])

		if err := req.Header.Add(string(name), string(value)); err != nil {
			return 0, false, ErrInvalidHeader
		}

		switch {
		case strings.EqualFold(string(name), "Content-Length"):
			n, perr := strconv.ParseInt(string(value), 10, 64)
			if perr != nil || n < 0 {
				return 0, false, ErrInvalidContentLength
			}
			if hasContentLength && contentLength != n {
				return 0, false, ErrRequestSmuggling
			}
			hasContentLength = true
			contentLength = n
		case strings.EqualFold(string(name), "Transfer-Encoding"):
			hasTransferEncoding = true
			if strings.EqualFold(string(value), "chunked") {
				chunked = true
			}
		case strings.EqualFold(string(name), "Host"):
			if hasHost {
				return 0, false, ErrDuplicateHost
			}
			hasHost = true
		}
	}

	if hasContentLength && hasTransferEncoding {
		return 0, false, ErrRequestSmuggling
	}
	return contentLength, chunked, nil
}

func readBody(br *bufio.Reader, contentLength int64, chunked bool, maxRequestSize uint64) ([]byte, error) {
	switch {
	case chunked:
		cr := NewChunkedReader(br, maxRequestSize)
		return io.ReadAll(cr)
	case contentLength > 0:
		if uint64(contentLength) > maxRequestSize {
			return nil, ErrContentLengthTooLarge
		}
		buf := make([]byte, contentLength)
		if _, err := io.ReadFull(br, buf); err != nil {
			return nil, ErrConnectionClosed
		}
		return buf, nil
	default:
		return nil, nil
	}
}
