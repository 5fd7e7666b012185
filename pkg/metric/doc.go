// Package metric provides the read-only metric records shown on landing
// pages, locale-aware compact formatting for them, and a mock source
// that simulates a network-backed metrics API.
//
// There is no real metrics backend: MockSource is an in-memory producer
// with a configurable delay and failure injection, which is exactly what
// the marketing pages need and nothing more.
//
//	src := metric.NewMockSource(metric.WithDelay(100 * time.Millisecond))
//	ms, err := src.Fetch()
//	// ms[0].Formatted(language.English) == "1.2K"
package metric
