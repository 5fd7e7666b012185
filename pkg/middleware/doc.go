// Package middleware provides the HTTP instrumentation the app shell
// mounts on its router.
//
// Two middlewares are included:
//   - Metrics: Prometheus request counters and latency histograms,
//     labeled by chi route pattern.
//   - Tracing: one OpenTelemetry span per request, named after the
//     resolved route.
//
// Both are plain func(http.Handler) http.Handler and compose with
// chi's Use:
//
//	r := chi.NewRouter()
//	r.Use(middleware.Tracing)
//	r.Use(middleware.Metrics())
//
// Expose the metrics with promhttp:
//
//	r.Handle("/metrics", promhttp.Handler())
package middleware
