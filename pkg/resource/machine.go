package resource

// Phase represents the current lifecycle phase of a resource.
type Phase int

const (
	Idle    Phase = iota // Created, no fetch started yet
	Loading              // Fetch in progress
	Ready                // Data successfully loaded
	Failed               // Fetch failed
)

// String returns the string representation of the Phase.
func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case Loading:
		return "Loading"
	case Ready:
		return "Ready"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Snapshot is an immutable observation of a resource's state. Transitions
// are pure functions from one snapshot to the next, independent of any
// rendering or scheduling concern.
//
// Invariants maintained by the transitions:
//   - Start always clears Err and keeps Data.
//   - Succeed replaces Data and clears Err.
//   - Fail sets Err and keeps the previous Data (stale data is preserved
//     so a page can keep showing the last good value next to the error).
type Snapshot[T any] struct {
	Phase Phase
	Data  T
	Err   error
}

// Start transitions into Loading, clearing any previous error.
func (s Snapshot[T]) Start() Snapshot[T] {
	return Snapshot[T]{Phase: Loading, Data: s.Data}
}

// Succeed transitions into Ready with the produced value.
func (s Snapshot[T]) Succeed(data T) Snapshot[T] {
	return Snapshot[T]{Phase: Ready, Data: data}
}

// Fail transitions into Failed, keeping the previous data.
func (s Snapshot[T]) Fail(err error) Snapshot[T] {
	return Snapshot[T]{Phase: Failed, Data: s.Data, Err: err}
}

// Loading reports whether a fetch is in progress or has not started.
// Before the first fetch settles, observers see the resource as loading.
func (s Snapshot[T]) Loading() bool {
	return s.Phase == Loading || s.Phase == Idle
}

// Settled reports whether the last fetch reached a terminal phase.
func (s Snapshot[T]) Settled() bool {
	return s.Phase == Ready || s.Phase == Failed
}
