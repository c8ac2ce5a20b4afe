//go:build linux

package socket

import (
	"net"

	"golang.org/x/sys/unix"
)

// applyQuickAck sets TCP_QUICKACK, grounded on
// pkg/shockwave/socket/tuning_linux.go's SetQuickAck. The teacher calls
// syscall.SetsockoptInt directly; here the same option is set through
// golang.org/x/sys/unix, which exposes IPPROTO_TCP/TCP_QUICKACK without
// pulling in the unexported socket-level constants the stdlib package
// doesn't bother naming.
func applyQuickAck(conn *net.TCPConn) {
	raw, err := conn.SyscallConn()
	if err != nil {
		return
	}
	raw.Control(func(fd uintptr) {
		_ = unix.SetsockoptInt(int(fd), unix.IPPROTO_TCP, unix.TCP_QUICKACK, 1)
	})
}
