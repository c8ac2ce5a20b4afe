// Package socket applies TCP tuning to accepted connections, grounded
// on pkg/shockwave/socket/tuning.go. The cross-platform knobs
// (TCP_NODELAY, SO_KEEPALIVE, buffer sizes) already have *net.TCPConn
// methods in the standard library, so unlike the teacher's version
// this package doesn't reach for syscall.SetsockoptInt for them;
// tune_linux.go still drops to golang.org/x/sys/unix for the one
// option (TCP_QUICKACK) stdlib has no accessor for.
package socket

import (
	"net"
	"time"
)

// Config mirrors the subset of pkg/shockwave/socket/tuning.go's Config
// that a Go net.Conn can actually express without raw syscalls.
type Config struct {
	NoDelay    bool
	KeepAlive  bool
	KeepPeriod time.Duration
	RecvBuffer int
	SendBuffer int

	// QuickAck requests TCP_QUICKACK on Linux; a no-op elsewhere. See
	// tune_linux.go / tune_other.go.
	QuickAck bool
}

// DefaultConfig mirrors tuning.go's DefaultConfig: low-latency HTTP/1.1
// defaults.
func DefaultConfig() Config {
	return Config{
		NoDelay:    true,
		KeepAlive:  true,
		KeepPeriod: 60 * time.Second,
		RecvBuffer: 256 * 1024,
		SendBuffer: 256 * 1024,
		QuickAck:   true,
	}
}

// Tune applies cfg to conn. Non-TCP connections (e.g. in tests, a
// net.Pipe) are left untouched rather than erroring, since tuning is
// an optimization, not a correctness requirement.
func Tune(conn net.Conn, cfg Config) error {
	tcpConn, ok := conn.(*net.TCPConn)
	if !ok {
		return nil
	}

	if err := tcpConn.SetNoDelay(cfg.NoDelay); err != nil {
		return err
	}
	if cfg.KeepAlive {
		_ = tcpConn.SetKeepAlive(true)
		_ = tcpConn.SetKeepAlivePeriod(cfg.KeepPeriod)
	}
	if cfg.RecvBuffer > 0 {
		_ = tcpConn.SetReadBuffer(cfg.RecvBuffer)
	}
	if cfg.SendBuffer > 0 {
		_ = tcpConn.SetWriteBuffer(cfg.SendBuffer)
	}

	if cfg.QuickAck {
		applyQuickAck(tcpConn)
	}
	return nil
}
