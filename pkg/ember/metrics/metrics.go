// Package metrics exposes optional Prometheus counters for the server
// package, grounded on buffer_pool_prometheus.go's build-tag-gated
// metrics split: a "prometheus" build tag swaps in real
// promauto-registered collectors (prometheus.go), otherwise New
// returns a Recorder whose methods are no-ops (noop.go). Nothing in
// server or wire depends on the tag directly; they only see Recorder.
package metrics

// Recorder receives per-request observations from the server's
// dispatch loop.
type Recorder interface {
	RequestHandled(method, path string, status int)
	ConnectionOpened()
	ConnectionClosed()
}
