package boundary

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/atrium-ui/atrium/pkg/ui"
)

// trips counts captured render failures by boundary label.
var trips = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "atrium",
	Subsystem: "boundary",
	Name:      "trips_total",
	Help:      "Total number of render failures captured by boundaries",
}, []string{"boundary"})

// CaptureInfo describes a captured render failure.
type CaptureInfo struct {
	// Incident is a unique identifier for this capture, suitable for
	// correlating the fallback page with log and telemetry entries.
	Incident string

	// Label is the boundary's configured label.
	Label string
}

// Reporter receives the captured failure. It is invoked exactly once per
// capture. The return value is ignored; a reporter must not panic.
type Reporter func(err error, info CaptureInfo)

// Fallback builds the substitute view for a failed subtree. It receives
// the captured error and must render without relying on the state that
// just failed.
type Fallback func(err error) *ui.Node

// Boundary isolates render failures of the subtree it guards.
type Boundary struct {
	label    string
	fallback Fallback
	reporter Reporter

	mu       sync.Mutex
	captured error
	incident string
}

// Option configures a Boundary.
type Option func(*Boundary)

// WithLabel sets the label used in reports and metrics.
func WithLabel(label string) Option {
	return func(b *Boundary) { b.label = label }
}

// WithFallback sets the fallback view builder.
func WithFallback(fn Fallback) Option {
	return func(b *Boundary) { b.fallback = fn }
}

// WithReporter sets the failure reporter.
func WithReporter(fn Reporter) Option {
	return func(b *Boundary) { b.reporter = fn }
}

// New creates a Boundary. Without options it uses a generic fallback
// card and no reporter.
func New(opts ...Option) *Boundary {
	b := &Boundary{
		label:    "boundary",
		fallback: defaultFallback,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Render runs the guarded render function. While untripped, the child's
// output passes through unchanged. A panic during the child render trips
// the boundary: the failure is captured, reported once, and the fallback
// is rendered for this and every subsequent call.
func (b *Boundary) Render(child func() *ui.Node) *ui.Node {
	b.mu.Lock()
	captured := b.captured
	b.mu.Unlock()
	if captured != nil {
		return b.fallback(captured)
	}

	node, err := b.guard(child)
	if err == nil {
		return node
	}

	b.mu.Lock()
	first := b.captured == nil
	if first {
		b.captured = err
		b.incident = uuid.NewString()
	}
	captured = b.captured
	incident := b.incident
	b.mu.Unlock()

	if first {
		trips.WithLabelValues(b.label).Inc()
		if b.reporter != nil {
			b.reporter(captured, CaptureInfo{Incident: incident, Label: b.label})
		}
	}
	return b.fallback(captured)
}

// Tripped reports whether a failure has been captured.
func (b *Boundary) Tripped() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.captured != nil
}

// Err returns the captured failure, or nil while untripped.
func (b *Boundary) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.captured
}

// guard invokes the child render, converting a panic into an error.
func (b *Boundary) guard(child func() *ui.Node) (node *ui.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = asError(r)
		}
	}()
	return child(), nil
}

// asError converts a recovered panic value into an error.
func asError(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return fmt.Errorf("render panic: %v", v)
}

// defaultFallback is the generic fallback card.
func defaultFallback(err error) *ui.Node {
	return ui.Div(ui.Class("atrium-fallback"),
		ui.H2(ui.Text("Something went wrong")),
		ui.P(ui.Text("This section failed to render. Reload the page to try again.")),
	)
}
