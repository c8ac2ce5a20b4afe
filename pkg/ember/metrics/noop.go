//go:build !prometheus

package metrics

type noopRecorder struct{}

// New returns a Recorder whose methods do nothing, the default build
// (no prometheus tag). Keeps server.Server from needing a nil check or
// an extra config flag to disable metrics.
func New() Recorder { return noopRecorder{} }

func (noopRecorder) RequestHandled(method, path string, status int) {}
func (noopRecorder) ConnectionOpened()                              {}
func (noopRecorder) ConnectionClosed()                              {}
