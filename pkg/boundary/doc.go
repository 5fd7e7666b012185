// Package boundary provides render-phase failure isolation for Atrium
// pages. A Boundary guards a render function: while nothing has failed
// it is a pass-through, and once a panic escapes the guarded render it
// renders a fallback view instead and reports the failure exactly once.
//
//	b := boundary.New(
//	    boundary.WithLabel("metrics-strip"),
//	    boundary.WithReporter(func(err error, info boundary.CaptureInfo) {
//	        logger.Error("render failed", "error", err, "incident", info.Incident)
//	    }),
//	)
//
//	node := b.Render(func() *ui.Node {
//	    return MetricStrip(stats)
//	})
//
// A tripped boundary is terminal: it keeps rendering the fallback until
// the instance is recreated. Only failures raised during the guarded
// render call are captured; asynchronous failures (producers, timers,
// goroutines) must surface through the resource error channel instead.
package boundary
