package reactive

// Watch runs fn with the signal's current value, then again after every
// change. It returns a stop function that removes the subscription.
//
// Unlike Subscribe, Watch fires immediately, which matches the mount
// semantics of resources and preferences built on top of it.
func Watch[T any](s *Signal[T], fn func(T)) (stop func()) {
	fn(s.Get())
	return s.Subscribe(fn)
}

// WatchChange is like Watch but skips the initial invocation, firing
// only on subsequent changes.
func WatchChange[T any](s *Signal[T], fn func(T)) (stop func()) {
	return s.Subscribe(fn)
}
