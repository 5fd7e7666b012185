// Package atrium is the public API for the Atrium toolkit.
//
// This is the recommended import for most applications:
//
//	import "github.com/atrium-ui/atrium"
//
// Usage:
//
//	metrics := atrium.NewResource(fetchMetrics)
//	count := atrium.NewSignal(0)
//	app := atrium.New(atrium.Config{DevMode: true})
//	app.Page("/", IndexPage)
//	app.Run(":8080")
package atrium

import (
	"github.com/atrium-ui/atrium/pkg/boundary"
	"github.com/atrium-ui/atrium/pkg/flags"
	"github.com/atrium-ui/atrium/pkg/reactive"
	"github.com/atrium-ui/atrium/pkg/resource"
	"github.com/atrium-ui/atrium/pkg/theme"
	"github.com/atrium-ui/atrium/pkg/ui"
)

// =============================================================================
// Reactive primitives (re-export from pkg/reactive)
// =============================================================================

// Signal is a mutable value with change subscriptions.
type Signal[T any] = reactive.Signal[T]

// NewSignal creates a reactive signal with the given initial value.
//
//	count := atrium.NewSignal(0)
//	count.Set(1)
//	value := count.Get() // 1
func NewSignal[T any](initial T) *Signal[T] {
	return reactive.NewSignal(initial)
}

// Watch runs fn with the current value and again on every change.
func Watch[T any](s *Signal[T], fn func(T)) (stop func()) {
	return reactive.Watch(s, fn)
}

// WatchChange runs fn on every change, skipping the current value.
func WatchChange[T any](s *Signal[T], fn func(T)) (stop func()) {
	return reactive.WatchChange(s, fn)
}

// =============================================================================
// Resources (re-export from pkg/resource)
// =============================================================================

// Resource wraps an async producer with an explicit fetch state machine.
type Resource[T any] = resource.Resource[T]

// Snapshot is one observed state of a resource.
type Snapshot[T any] = resource.Snapshot[T]

// Phase is the resource fetch phase.
type Phase = resource.Phase

// Resource phases.
const (
	Idle    = resource.Idle
	Loading = resource.Loading
	Ready   = resource.Ready
	Failed  = resource.Failed
)

// Policy governs overlapping fetches.
type Policy = resource.Policy

// Overlap policies.
const (
	LastWins   = resource.LastWins
	Fenced     = resource.Fenced
	Serialized = resource.Serialized
)

// NewResource creates a resource and starts its first fetch.
//
//	users := atrium.NewResource(func() ([]User, error) {
//	    return api.ListUsers()
//	})
func NewResource[T any](producer func() (T, error)) *Resource[T] {
	return resource.New(producer)
}

// NewKeyedResource refetches whenever the key signal changes.
//
//	userID := atrium.NewSignal(1)
//	user := atrium.NewKeyedResource(userID, api.GetUser)
func NewKeyedResource[K any, T any](key *Signal[K], producer func(K) (T, error)) *Resource[T] {
	return resource.NewKeyed(key, producer)
}

// Phase match helpers for Resource.Match.

// OnLoading renders while a fetch is in flight.
func OnLoading[T any](fn func() *ui.Node) resource.Handler[T] {
	return resource.OnLoading[T](fn)
}

// OnReady renders the loaded data.
func OnReady[T any](fn func(T) *ui.Node) resource.Handler[T] {
	return resource.OnReady[T](fn)
}

// OnFailed renders the fetch error.
func OnFailed[T any](fn func(error) *ui.Node) resource.Handler[T] {
	return resource.OnFailed[T](fn)
}

// OnLoadingOrIdle renders both waiting phases with one spinner.
func OnLoadingOrIdle[T any](fn func() *ui.Node) resource.Handler[T] {
	return resource.OnLoadingOrIdle[T](fn)
}

// =============================================================================
// Error boundaries (re-export from pkg/boundary)
// =============================================================================

// Boundary confines render panics to a subtree.
type Boundary = boundary.Boundary

// CaptureInfo describes a captured error.
type CaptureInfo = boundary.CaptureInfo

// NewBoundary creates an error boundary.
var NewBoundary = boundary.New

// Boundary options.
var (
	WithLabel    = boundary.WithLabel
	WithFallback = boundary.WithFallback
	WithReporter = boundary.WithReporter
)

// =============================================================================
// Supporting types
// =============================================================================

// Node is a renderable HTML node; see pkg/ui for constructors.
type Node = ui.Node

// Theme is the visitor's theme choice.
type Theme = theme.Theme

// Themes.
const (
	Light  = theme.Light
	Dark   = theme.Dark
	System = theme.System
)

// Flag is a feature toggle; Flags is the store pages read them from.
type Flag = flags.Flag

// NewFlags creates an empty feature-flag store.
var NewFlags = flags.New
