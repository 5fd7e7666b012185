package resource

import "github.com/atrium-ui/atrium/pkg/ui"

// Handler handles a specific resource phase in Match.
type Handler[T any] interface {
	handle(Snapshot[T]) (*ui.Node, bool)
}

// Match renders different content based on the resource phase.
// Handlers are tried in order; the first one matching the current phase
// wins. Returns nil when no handler matches.
func (r *Resource[T]) Match(handlers ...Handler[T]) *ui.Node {
	snap := r.Snapshot()
	for _, h := range handlers {
		if node, ok := h.handle(snap); ok {
			return node
		}
	}
	return nil
}

type idleHandler[T any] struct {
	fn func() *ui.Node
}

func (h idleHandler[T]) handle(s Snapshot[T]) (*ui.Node, bool) {
	if s.Phase == Idle {
		return h.fn(), true
	}
	return nil, false
}

type loadingHandler[T any] struct {
	fn func() *ui.Node
}

func (h loadingHandler[T]) handle(s Snapshot[T]) (*ui.Node, bool) {
	if s.Phase == Loading {
		return h.fn(), true
	}
	return nil, false
}

type readyHandler[T any] struct {
	fn func(T) *ui.Node
}

func (h readyHandler[T]) handle(s Snapshot[T]) (*ui.Node, bool) {
	if s.Phase == Ready {
		return h.fn(s.Data), true
	}
	return nil, false
}

type failedHandler[T any] struct {
	fn func(error) *ui.Node
}

func (h failedHandler[T]) handle(s Snapshot[T]) (*ui.Node, bool) {
	if s.Phase == Failed {
		return h.fn(s.Err), true
	}
	return nil, false
}

type waitingHandler[T any] struct {
	fn func() *ui.Node
}

func (h waitingHandler[T]) handle(s Snapshot[T]) (*ui.Node, bool) {
	if s.Phase == Idle || s.Phase == Loading {
		return h.fn(), true
	}
	return nil, false
}

// OnIdle handles the Idle phase (created, fetch not started).
func OnIdle[T any](fn func() *ui.Node) Handler[T] {
	return idleHandler[T]{fn: fn}
}

// OnLoading handles the Loading phase.
func OnLoading[T any](fn func() *ui.Node) Handler[T] {
	return loadingHandler[T]{fn: fn}
}

// OnReady handles the Ready phase with the loaded data.
func OnReady[T any](fn func(T) *ui.Node) Handler[T] {
	return readyHandler[T]{fn: fn}
}

// OnFailed handles the Failed phase with the fetch error.
func OnFailed[T any](fn func(error) *ui.Node) Handler[T] {
	return failedHandler[T]{fn: fn}
}

// OnLoadingOrIdle handles both waiting phases, for a single spinner.
func OnLoadingOrIdle[T any](fn func() *ui.Node) Handler[T] {
	return waitingHandler[T]{fn: fn}
}
