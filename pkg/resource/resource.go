package resource

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/atrium-ui/atrium/pkg/reactive"
)

// tracerName identifies spans emitted around producer invocations.
const tracerName = "atrium/resource"

// Resource manages asynchronous data loading and state.
type Resource[T any] struct {
	producer func() (T, error)
	snap     *reactive.Signal[Snapshot[T]]

	// Options
	label      string
	policy     Policy
	staleTime  time.Duration
	retryCount int
	retryDelay time.Duration
	onSuccess  func(T)
	onError    func(error)

	// Internal
	lastFetch  time.Time
	generation uint64
	mu         sync.Mutex

	// serial is held across a fetch under the Serialized policy.
	serial sync.Mutex

	// stop releases the key subscription for keyed resources.
	stop func()
}

// New creates a new Resource with the given producer function.
// The first fetch is triggered immediately.
func New[T any](producer func() (T, error)) *Resource[T] {
	r := &Resource[T]{
		producer: producer,
		label:    "unnamed",
		snap:     reactive.NewSignal(Snapshot[T]{}),
	}
	r.snap.WithEquals(func(a, b Snapshot[T]) bool { return false })
	r.Refetch()
	return r
}

// NewKeyed creates a Resource that refetches whenever the key signal
// changes. The producer receives the key's current value.
func NewKeyed[K any, T any](key *reactive.Signal[K], producer func(K) (T, error)) *Resource[T] {
	r := New(func() (T, error) {
		return producer(key.Get())
	})
	r.stop = reactive.WatchChange(key, func(K) {
		r.Refetch()
	})
	return r
}

// Snapshot returns the current state observation.
func (r *Resource[T]) Snapshot() Snapshot[T] {
	return r.snap.Get()
}

// Phase returns the current lifecycle phase.
func (r *Resource[T]) Phase() Phase {
	return r.snap.Get().Phase
}

// Loading reports whether a fetch is in progress or has not yet settled
// for the first time.
func (r *Resource[T]) Loading() bool {
	return r.snap.Get().Loading()
}

// Ready reports whether data has been successfully loaded.
func (r *Resource[T]) Ready() bool {
	return r.Phase() == Ready
}

// Failed reports whether the last fetch failed.
func (r *Resource[T]) Failed() bool {
	return r.Phase() == Failed
}

// Data returns the last successfully loaded value. After a failure this
// is still the previous good value (stale data is preserved).
func (r *Resource[T]) Data() T {
	return r.snap.Get().Data
}

// DataOr returns the loaded value, or fallback while not Ready.
func (r *Resource[T]) DataOr(fallback T) T {
	s := r.snap.Get()
	if s.Phase == Ready {
		return s.Data
	}
	return fallback
}

// Err returns the error from the last failed fetch, or nil.
func (r *Resource[T]) Err() error {
	return r.snap.Get().Err
}

// Subscribe registers a callback invoked on every state change.
// The returned function removes the subscription.
func (r *Resource[T]) Subscribe(fn func(Snapshot[T])) (unsubscribe func()) {
	return r.snap.Subscribe(fn)
}

// Fetch triggers a fetch unless the last one settled less than the
// configured stale time ago. A recent failure counts as fresh too, so a
// render path calling Fetch still observes the Failed snapshot instead
// of flipping it back to Loading on every call. To force a fetch, use
// Refetch.
func (r *Resource[T]) Fetch() {
	r.mu.Lock()
	fresh := r.snap.Get().Settled() && time.Since(r.lastFetch) < r.staleTime
	r.mu.Unlock()
	if fresh {
		return
	}
	r.Refetch()
}

// Refetch forces a fetch, bypassing the stale-time check.
func (r *Resource[T]) Refetch() {
	r.mu.Lock()
	r.generation++
	gen := r.generation
	policy := r.policy
	r.mu.Unlock()

	r.snap.Update(func(s Snapshot[T]) Snapshot[T] { return s.Start() })

	go r.fetch(gen, policy)
}

// Invalidate marks the current data as stale so the next Fetch runs.
func (r *Resource[T]) Invalidate() {
	r.mu.Lock()
	r.lastFetch = time.Time{}
	r.mu.Unlock()
}

// Mutate applies a local update to the loaded data without fetching.
func (r *Resource[T]) Mutate(fn func(T) T) {
	r.snap.Update(func(s Snapshot[T]) Snapshot[T] {
		s.Data = fn(s.Data)
		return s
	})
}

// Resolve synchronously settles the resource into Ready with the given
// value, as if a fetch had just succeeded. In-flight fetches under the
// Fenced policy are superseded.
func (r *Resource[T]) Resolve(value T) {
	r.mu.Lock()
	r.generation++
	r.lastFetch = time.Now()
	r.mu.Unlock()
	r.snap.Update(func(s Snapshot[T]) Snapshot[T] { return s.Succeed(value) })
}

// Close releases the key subscription of a keyed resource. In-flight
// fetches still run to completion; there is no cancellation.
func (r *Resource[T]) Close() {
	if r.stop != nil {
		r.stop()
		r.stop = nil
	}
}

// fetch runs the producer and applies the outcome according to policy.
func (r *Resource[T]) fetch(gen uint64, policy Policy) {
	if policy == Serialized {
		r.serial.Lock()
		defer r.serial.Unlock()
	}

	r.mu.Lock()
	label := r.label
	maxAttempts := 1 + r.retryCount
	retryDelay := r.retryDelay
	r.mu.Unlock()

	tracer := otel.Tracer(tracerName)
	_, span := tracer.Start(context.Background(), "resource.fetch",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("resource.label", label),
			attribute.Int64("resource.generation", int64(gen)),
			attribute.String("resource.policy", policy.String()),
		),
	)
	defer span.End()

	start := time.Now()

	var result T
	var err error
	for i := 0; i < maxAttempts; i++ {
		if i > 0 {
			time.Sleep(retryDelay)
		}
		if r.superseded(gen, policy) {
			span.SetAttributes(attribute.Bool("resource.superseded", true))
			observeFetch(label, "superseded", time.Since(start))
			return
		}
		result, err = r.producer()
		if err == nil {
			break
		}
	}

	if r.superseded(gen, policy) {
		span.SetAttributes(attribute.Bool("resource.superseded", true))
		observeFetch(label, "superseded", time.Since(start))
		return
	}

	r.mu.Lock()
	r.lastFetch = time.Now()
	onSuccess := r.onSuccess
	onError := r.onError
	r.mu.Unlock()

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		observeFetch(label, "error", time.Since(start))
		r.snap.Update(func(s Snapshot[T]) Snapshot[T] { return s.Fail(err) })
		if onError != nil {
			onError(err)
		}
		return
	}

	span.SetStatus(codes.Ok, "")
	observeFetch(label, "success", time.Since(start))
	r.snap.Update(func(s Snapshot[T]) Snapshot[T] { return s.Succeed(result) })
	if onSuccess != nil {
		onSuccess(result)
	}
}

// superseded reports whether this fetch generation has been replaced.
// Only the Fenced policy discards superseded completions.
func (r *Resource[T]) superseded(gen uint64, policy Policy) bool {
	if policy != Fenced {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.generation != gen
}
