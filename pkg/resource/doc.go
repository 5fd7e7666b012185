// Package resource provides async data loading for Atrium pages.
//
// A Resource runs a caller-supplied producer function and tracks its
// lifecycle through an explicit state machine:
//
//	Idle → Loading → Ready | Failed
//
// The machine lives in Snapshot, a pure value with explicit transition
// methods, so the lifecycle is testable without any rendering involved.
// A failed fetch keeps the previously loaded data (stale-data-preserved),
// and starting a fetch clears the error.
//
// Basic usage:
//
//	stats := resource.New(func() ([]metric.Metric, error) {
//	    return source.Fetch()
//	})
//
//	return stats.Match(
//	    resource.OnLoading[[]metric.Metric](func() *ui.Node { return Spinner() }),
//	    resource.OnFailed[[]metric.Metric](func(err error) *ui.Node { return ErrorCard(err) }),
//	    resource.OnReady(func(ms []metric.Metric) *ui.Node { return MetricStrip(ms) }),
//	)
//
// # Overlapping fetches
//
// Invocations are not cancelled: a producer that never returns leaves the
// resource Loading forever, and there is no way to abort an in-flight
// call. What happens when a new fetch starts before the previous one
// settles is a configurable Policy:
//
//   - LastWins (default): both run, the last completion writes the state.
//     This preserves the original last-write-wins behavior, races and all.
//   - Fenced: completions of superseded fetches are discarded.
//   - Serialized: a fetch waits for the in-flight one to settle.
//
// Asynchronous producer failures always surface through the resource's
// error channel (the Failed phase); they are never raised as panics and
// are therefore invisible to render boundaries by design.
package resource
