package resource

import "time"

// Named sets the label used in metrics and trace attributes.
func (r *Resource[T]) Named(label string) *Resource[T] {
	r.mu.Lock()
	r.label = label
	r.mu.Unlock()
	return r
}

// WithPolicy sets the overlapping-fetch policy.
func (r *Resource[T]) WithPolicy(p Policy) *Resource[T] {
	r.mu.Lock()
	r.policy = p
	r.mu.Unlock()
	return r
}

// StaleTime sets the duration before a settled fetch is considered
// stale. Fetch is a no-op while the last settled result, success or
// failure, is younger than this.
func (r *Resource[T]) StaleTime(d time.Duration) *Resource[T] {
	r.mu.Lock()
	r.staleTime = d
	r.mu.Unlock()
	return r
}

// RetryOnError sets the number of retries and delay between them.
// This is the only automatic retry in the package; everything else is
// the caller's manual Refetch.
func (r *Resource[T]) RetryOnError(count int, delay time.Duration) *Resource[T] {
	r.mu.Lock()
	r.retryCount = count
	r.retryDelay = delay
	r.mu.Unlock()
	return r
}

// OnSuccess registers a callback invoked after each successful fetch.
func (r *Resource[T]) OnSuccess(fn func(T)) *Resource[T] {
	r.mu.Lock()
	r.onSuccess = fn
	r.mu.Unlock()
	return r
}

// OnError registers a callback invoked after each failed fetch.
func (r *Resource[T]) OnError(fn func(error)) *Resource[T] {
	r.mu.Lock()
	r.onError = fn
	r.mu.Unlock()
	return r
}
