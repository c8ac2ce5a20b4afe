package server

import (
	"bufio"
	"net"
	"strconv"
	"time"

	"github.com/yourusername/ember/pkg/ember/wire"
)

// handleConnection drives one accepted connection end to end, grounded
// on HttpServer.cpp's handleConnection/handleKeepAliveConnection split.
// Go's net.Conn has no separate "keep-alive disabled" code path the
// way the C++ original does (a single read-deadline-bounded loop
// already degrades to "handle exactly one request" when
// MaxKeepAliveRequests is 1), so KeepAliveEnabled=false is modeled here
// as MaxKeepAliveRequests effectively pinned to 1 rather than a
// duplicated function.
func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()

	maxRequests := s.config.MaxKeepAliveRequests
	if !s.config.KeepAliveEnabled {
		maxRequests = 1
	}

	br := wire.NewBufioReaderSize(conn, s.config.BufferSize)
	parser := wire.NewParserWithLimit(uint64(s.config.MaxRequestSize))
	requestCount := 0
	lastActivity := time.Now()

	for {
		if requestCount >= maxRequests {
			return
		}
		if requestCount > 0 && !s.running.Load() {
			return
		}
		if time.Since(lastActivity) > s.config.KeepAliveTimeout && requestCount > 0 {
			return
		}

		// Between requests, wait for the next request's first byte no
		// longer than KeepAliveTimeout past the last request's arrival.
		if requestCount > 0 && s.config.KeepAliveTimeout > 0 {
			conn.SetReadDeadline(lastActivity.Add(s.config.KeepAliveTimeout))
			if _, err := br.Peek(1); err != nil {
				return
			}
		}

		// SO_RCVTIMEO = SOCKET_TIMEOUT (spec.md §4.D.1): bounds how long
		// a single request's reads may block. The idle wait before a
		// follow-up request is bounded separately, by KeepAliveTimeout
		// above.
		if s.config.SocketTimeout > 0 {
			conn.SetReadDeadline(time.Now().Add(s.config.SocketTimeout))
		}

		req, err := parser.Parse(br)
		if err != nil {
			if requestCount == 0 {
				s.writeParseError(conn, err)
			}
			return
		}
		req.SetRemoteAddr(conn.RemoteAddr().String())
		lastActivity = time.Now()

		keepAliveRequested := s.dispatch(conn, req)
		requestCount++

		if !s.config.KeepAliveEnabled || !keepAliveRequested {
			return
		}
	}
}

// writeParseError sends the 400 response (414 for ErrURITooLong) the
// reference emits when
// readRequest() fails on the connection's first request (HttpServer.cpp
// handleConnection's ctx.req.readRequest() branch). Parse failures on
// a later pipelined request just end the connection, matching the
// keep-alive loop's "on failure break" rule.
func (s *Server) writeParseError(conn net.Conn, parseErr error) {
	resp := wire.NewResponse()
	if parseErr == wire.ErrURITooLong {
		resp.SetStatus(414).SetBodyString("URI Too Long\n")
	} else {
		resp.SetStatus(400).SetBodyString("Bad Request\n")
	}
	resp.Header.Set("Connection", "close")
	resp.Header.Set("Content-Length", strconv.Itoa(len(resp.Body)))
	bw := bufio.NewWriter(conn)
	resp.WriteTo(bw)
	bw.Flush()
}
