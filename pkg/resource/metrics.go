package resource

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus collectors for resource fetches. Registered on the default
// registerer; expose them with promhttp alongside the app's own metrics.
var (
	fetchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "atrium",
		Subsystem: "resource",
		Name:      "fetches_total",
		Help:      "Total number of producer invocations by resource and outcome",
	}, []string{"resource", "status"})

	fetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "atrium",
		Subsystem: "resource",
		Name:      "fetch_duration_seconds",
		Help:      "Producer invocation duration in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"resource"})
)

// observeFetch records one producer invocation outcome.
func observeFetch(label, status string, elapsed time.Duration) {
	fetchesTotal.WithLabelValues(label, status).Inc()
	fetchDuration.WithLabelValues(label).Observe(elapsed.Seconds())
}
