// Package reactive provides the small reactive core used by resources,
// preferences, and the app shell: a generic Signal value container with
// subscriber notification, and Watch for running a callback whenever a
// signal changes.
//
// Signals are safe for concurrent use. Notification is synchronous and
// runs on the goroutine that performed the write, after the value lock
// has been released.
//
//	count := reactive.NewSignal(0)
//	stop := reactive.Watch(count, func(n int) {
//	    fmt.Println("count is", n)
//	})
//	defer stop()
//	count.Set(1)
package reactive
