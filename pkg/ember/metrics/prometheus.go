//go:build prometheus

package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ember",
			Subsystem: "server",
			Name:      "requests_total",
			Help:      "Total number of requests handled, by method/path/status.",
		},
		[]string{"method", "path", "status"},
	)

	connectionsOpen = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "ember",
			Subsystem: "server",
			Name:      "connections_open",
			Help:      "Current number of open connections.",
		},
	)
)

type promRecorder struct{}

// New returns the Prometheus-backed Recorder, registering its
// collectors with the default registry on first call (via promauto),
// matching buffer_pool_prometheus.go's UpdatePrometheusMetrics style
// of exposing package-level counters through a small wrapper type.
func New() Recorder { return promRecorder{} }

func (promRecorder) RequestHandled(method, path string, status int) {
	requestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
}

func (promRecorder) ConnectionOpened() { connectionsOpen.Inc() }
func (promRecorder) ConnectionClosed() { connectionsOpen.Dec() }
