// Package server implements ember's connection driver: a TCP accept
// loop, a per-connection keep-alive loop, and the fixed dispatch order
// (URI-length check, static files, health check, router) spec.md §4.G
// describes.
//
// Grounded on pkg/shockwave/server's goroutine-per-connection design,
// layered with HttpServer.cpp's dispatch sequencing, since the
// teacher's own dispatch is a stdlib http.Handler pass-through with no
// equivalent static/health/router ordering to borrow from directly.
package server

import (
	"log"
	"time"

	"github.com/yourusername/ember/pkg/ember/socket"
)

// Config carries every server-wide setting spec.md §3 names, plus the
// ambient additions (Logger, MaxConnections) SPEC_FULL.md's ambient
// stack section adds. Grounded on source/include/Config.h.
type Config struct {
	Host string
	Port int

	// BufferSize sizes the bufio.Reader each connection reads through
	// (wire.NewBufioReaderSize), raised to the parser's minimum header
	// buffer size when smaller.
	BufferSize int

	// MaxRequestSize caps the total decoded body size a single request
	// may carry, wired into wire.NewParserWithLimit per connection.
	MaxRequestSize int64

	// SocketTimeout bounds a single request's reads (SO_RCVTIMEO per
	// spec.md §4.D.1), applied via conn.SetReadDeadline before each
	// Parse call. Distinct from KeepAliveTimeout, which bounds the idle
	// gap before a follow-up request on the same connection rather than
	// a single request's reads.
	SocketTimeout time.Duration

	StaticDir   string
	TemplateDir string

	HealthCheckEnabled bool

	KeepAliveEnabled     bool
	KeepAliveTimeout     time.Duration
	MaxKeepAliveRequests int

	// MaxConnections bounds concurrent connections when > 0, enforced
	// with a golang.org/x/sync/semaphore weighted semaphore; the
	// reference has no such bound (spec.md §5: "no bound on concurrent
	// connections beyond the OS"), so this is an ambient, opt-in
	// addition rather than a ported behavior.
	MaxConnections int64

	// SocketTuning is applied to every accepted *net.TCPConn before its
	// connection goroutine starts. Grounded on
	// pkg/shockwave/socket/tuning.go, which the reference applies at the
	// same point (right after accept, before the connection is handed
	// to a worker).
	SocketTuning socket.Config

	// Logger receives one line per accept error and per socket-tuning
	// error. Defaults to log.Default() in DefaultConfig.
	Logger *log.Logger
}

// DefaultConfig returns the Config.h defaults.
func DefaultConfig() Config {
	return Config{
		Host: "0.0.0.0",
		Port: 8000,

		BufferSize:     8192,
		MaxRequestSize: 10 * 1024 * 1024,
		SocketTimeout:  30 * time.Second,

		StaticDir:   "static",
		TemplateDir: "templates",

		HealthCheckEnabled: true,

		KeepAliveEnabled:     true,
		KeepAliveTimeout:     5 * time.Second,
		MaxKeepAliveRequests: 100,

		SocketTuning: socket.DefaultConfig(),

		Logger: log.Default(),
	}
}
