//go:build !linux

package socket

import "net"

// applyQuickAck is a no-op outside Linux; TCP_QUICKACK has no portable
// equivalent, matching tuning_other.go's stance in the reference tree.
func applyQuickAck(*net.TCPConn) {}
