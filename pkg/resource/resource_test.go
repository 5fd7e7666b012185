package resource

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/atrium-ui/atrium/pkg/reactive"
)

// waitSettled polls until the resource reaches a terminal phase.
func waitSettled[T any](t *testing.T, r *Resource[T]) Snapshot[T] {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if s := r.Snapshot(); s.Settled() {
			return s
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("resource did not settle, phase = %v", r.Phase())
	return Snapshot[T]{}
}

// waitCond polls until the condition holds.
func waitCond(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timeout waiting for %s", what)
}

func TestSuccess(t *testing.T) {
	gate := make(chan struct{})
	r := New(func() (string, error) {
		<-gate
		return "payload", nil
	})

	// Gated producer: observable as loading before settling.
	if !r.Loading() {
		t.Error("Loading() should be true before the producer returns")
	}
	if r.Err() != nil || r.Data() != "" {
		t.Error("data and error should be zero while loading")
	}

	close(gate)
	s := waitSettled(t, r)

	if s.Phase != Ready {
		t.Fatalf("phase = %v, want Ready", s.Phase)
	}
	if s.Data != "payload" {
		t.Errorf("data = %q, want payload", s.Data)
	}
	if s.Err != nil {
		t.Errorf("err = %v, want nil", s.Err)
	}
	if r.Loading() {
		t.Error("Loading() should be false after settling")
	}
}

func TestFailureMessage(t *testing.T) {
	gate := make(chan struct{})
	r := New(func() (string, error) {
		<-gate
		return "", errors.New("network down")
	})
	close(gate)

	s := waitSettled(t, r)
	if s.Phase != Failed {
		t.Fatalf("phase = %v, want Failed", s.Phase)
	}
	if s.Err == nil || s.Err.Error() != "network down" {
		t.Errorf("err = %v, want message %q", s.Err, "network down")
	}
	if s.Data != "" {
		t.Errorf("data = %q, want zero value on first failure", s.Data)
	}
}

func TestFailurePreservesStaleData(t *testing.T) {
	var fail atomic.Bool
	r := New(func() (string, error) {
		if fail.Load() {
			return "", errors.New("flaky")
		}
		return "good", nil
	})

	s := waitSettled(t, r)
	if s.Data != "good" {
		t.Fatalf("first fetch data = %q", s.Data)
	}

	fail.Store(true)
	r.Refetch()
	waitCond(t, "failed phase", func() bool { return r.Failed() })

	if r.Data() != "good" {
		t.Errorf("data after failure = %q, want the stale value %q", r.Data(), "good")
	}
	if r.Err() == nil {
		t.Error("err should be set after failure")
	}
}

func TestRefetchClearsError(t *testing.T) {
	var fail atomic.Bool
	fail.Store(true)
	r := New(func() (string, error) {
		if fail.Load() {
			return "", errors.New("down")
		}
		return "up", nil
	})
	waitCond(t, "failed phase", func() bool { return r.Failed() })

	fail.Store(false)
	r.Refetch()

	waitCond(t, "ready phase", func() bool { return r.Ready() })
	if r.Err() != nil {
		t.Errorf("err = %v after recovery, want nil", r.Err())
	}
	if r.Data() != "up" {
		t.Errorf("data = %q, want up", r.Data())
	}
}

func TestRefetchIdempotent(t *testing.T) {
	r := New(func() (int, error) { return 11, nil })
	first := waitSettled(t, r)

	r.Refetch()
	waitCond(t, "second settle", func() bool {
		s := r.Snapshot()
		return s.Settled()
	})
	second := waitSettled(t, r)

	if first.Phase != second.Phase || first.Data != second.Data {
		t.Errorf("refetch changed terminal state: %+v vs %+v", first, second)
	}
}

func TestKeyedRefetchOnKeyChange(t *testing.T) {
	var calls atomic.Int64
	key := reactive.NewSignal(1)

	r := NewKeyed(key, func(k int) (int, error) {
		calls.Add(1)
		return k * 10, nil
	})
	defer r.Close()

	waitCond(t, "first fetch", func() bool { return r.Ready() && r.Data() == 10 })
	if calls.Load() != 1 {
		t.Fatalf("calls = %d after mount, want 1", calls.Load())
	}

	key.Set(2)
	waitCond(t, "refetch", func() bool { return r.Data() == 20 })
	if calls.Load() != 2 {
		t.Errorf("calls = %d after one key change, want exactly 2", calls.Load())
	}

	// Setting the same value again is not a change.
	key.Set(2)
	time.Sleep(20 * time.Millisecond)
	if calls.Load() != 2 {
		t.Errorf("calls = %d after no-op key set, want 2", calls.Load())
	}
}

func TestKeyedCloseStopsRefetching(t *testing.T) {
	var calls atomic.Int64
	key := reactive.NewSignal("a")

	r := NewKeyed(key, func(k string) (string, error) {
		calls.Add(1)
		return k, nil
	})
	waitCond(t, "first fetch", func() bool { return r.Ready() })

	r.Close()
	key.Set("b")
	time.Sleep(20 * time.Millisecond)
	if calls.Load() != 1 {
		t.Errorf("calls = %d after Close, want 1", calls.Load())
	}
}

// fetchCall scripts one producer invocation: started closes when the
// producer picks the call up, result releases its return value.
type fetchCall struct {
	started chan struct{}
	result  chan string
}

func newFetchCall() *fetchCall {
	return &fetchCall{started: make(chan struct{}), result: make(chan string, 1)}
}

// scriptedProducer hands queued calls to producer invocations in order,
// so each overlapping fetch can be started and released individually.
func scriptedProducer(queue chan *fetchCall) func() (string, error) {
	return func() (string, error) {
		c := <-queue
		close(c.started)
		return <-c.result, nil
	}
}

func TestFencedDiscardsSupersededCompletion(t *testing.T) {
	mount, stale, fresh := newFetchCall(), newFetchCall(), newFetchCall()
	queue := make(chan *fetchCall, 3)
	queue <- mount
	queue <- stale
	queue <- fresh

	// The mount fetch settles immediately; the policy applies to the
	// overlapping refetches that follow.
	mount.result <- "mount"
	r := New(scriptedProducer(queue))
	waitCond(t, "mount fetch", func() bool { return r.Ready() })
	r.WithPolicy(Fenced)

	r.Refetch()
	<-stale.started // in flight before being superseded
	r.Refetch()
	<-fresh.started

	fresh.result <- "fresh"
	waitCond(t, "fresh result", func() bool { return r.Ready() && r.Data() == "fresh" })

	// Let the superseded fetch complete; its result must be discarded.
	stale.result <- "stale"
	time.Sleep(20 * time.Millisecond)
	if r.Data() != "fresh" {
		t.Errorf("data = %q, superseded completion should have been fenced off", r.Data())
	}
}

func TestLastWinsLetsLateCompletionWin(t *testing.T) {
	mount, late, early := newFetchCall(), newFetchCall(), newFetchCall()
	queue := make(chan *fetchCall, 3)
	queue <- mount
	queue <- late
	queue <- early

	mount.result <- "mount"
	r := New(scriptedProducer(queue)) // default LastWins
	waitCond(t, "mount fetch", func() bool { return r.Ready() })

	r.Refetch()
	<-late.started
	r.Refetch()
	<-early.started

	early.result <- "early"
	waitCond(t, "early result", func() bool { return r.Ready() && r.Data() == "early" })

	late.result <- "late"
	waitCond(t, "late overwrite", func() bool { return r.Data() == "late" })
}

func TestSerializedRunsOneFetchAtATime(t *testing.T) {
	var inFlight atomic.Int64
	var overlap atomic.Bool
	var n atomic.Int64
	release := make(chan struct{})

	r := New(func() (int, error) {
		if n.Add(1) == 1 {
			return 0, nil
		}
		if inFlight.Add(1) > 1 {
			overlap.Store(true)
		}
		<-release
		inFlight.Add(-1)
		return 1, nil
	})
	waitCond(t, "mount fetch", func() bool { return r.Ready() })
	r.WithPolicy(Serialized)

	r.Refetch()
	r.Refetch()
	close(release)

	waitCond(t, "all fetches settled", func() bool { return r.Ready() && r.Data() == 1 })
	time.Sleep(20 * time.Millisecond)
	if overlap.Load() {
		t.Error("Serialized policy allowed overlapping producer invocations")
	}
}

func TestRetryOnError(t *testing.T) {
	var attempts atomic.Int64
	gate := make(chan struct{})

	r := New(func() (string, error) {
		<-gate
		if attempts.Add(1) < 3 {
			return "", errors.New("temporary")
		}
		return "recovered", nil
	})
	r.RetryOnError(3, time.Millisecond)
	close(gate)

	s := waitSettled(t, r)
	if s.Phase != Ready || s.Data != "recovered" {
		t.Fatalf("snapshot = %+v, want recovered", s)
	}
	if attempts.Load() != 3 {
		t.Errorf("attempts = %d, want 3", attempts.Load())
	}
}

func TestRetryExhausted(t *testing.T) {
	var attempts atomic.Int64
	gate := make(chan struct{})

	r := New(func() (string, error) {
		<-gate
		attempts.Add(1)
		return "", errors.New("permanent")
	})
	r.RetryOnError(2, time.Millisecond)
	close(gate)

	s := waitSettled(t, r)
	if s.Phase != Failed {
		t.Fatalf("phase = %v, want Failed", s.Phase)
	}
	if attempts.Load() != 3 {
		t.Errorf("attempts = %d, want 1 + 2 retries", attempts.Load())
	}
}

func TestStaleTimeSuppressesFetch(t *testing.T) {
	var calls atomic.Int64
	r := New(func() (string, error) {
		calls.Add(1)
		return "data", nil
	}).StaleTime(time.Hour)

	waitCond(t, "first fetch", func() bool { return r.Ready() })

	r.Fetch()
	time.Sleep(20 * time.Millisecond)
	if calls.Load() != 1 {
		t.Errorf("calls = %d, Fetch should be a no-op while fresh", calls.Load())
	}

	r.Invalidate()
	r.Fetch()
	waitCond(t, "refetch after invalidate", func() bool { return calls.Load() == 2 })
}

func TestStaleTimeKeepsFailureObservable(t *testing.T) {
	var calls atomic.Int64
	r := New(func() (string, error) {
		calls.Add(1)
		return "", errors.New("network down")
	}).StaleTime(time.Hour)

	waitCond(t, "failed phase", func() bool { return r.Failed() })

	// A render path calling Fetch must still see the failure, not a
	// fresh Loading transition.
	r.Fetch()
	if !r.Failed() {
		t.Errorf("phase = %v after Fetch, the recent failure should stay observable", r.Phase())
	}
	if r.Err() == nil || r.Err().Error() != "network down" {
		t.Errorf("err = %v", r.Err())
	}

	time.Sleep(20 * time.Millisecond)
	if calls.Load() != 1 {
		t.Errorf("calls = %d, Fetch should not retry a fresh failure", calls.Load())
	}

	r.Invalidate()
	r.Fetch()
	waitCond(t, "retry after invalidate", func() bool { return calls.Load() == 2 })
}

func TestDataOr(t *testing.T) {
	gate := make(chan struct{})
	r := New(func() (string, error) {
		<-gate
		return "actual", nil
	})

	if r.DataOr("fallback") != "fallback" {
		t.Error("DataOr should return the fallback while not Ready")
	}

	close(gate)
	waitCond(t, "ready", func() bool { return r.Ready() })
	if r.DataOr("fallback") != "actual" {
		t.Error("DataOr should return the data once Ready")
	}
}

func TestMutate(t *testing.T) {
	r := New(func() (int, error) { return 1, nil })
	waitCond(t, "ready", func() bool { return r.Ready() })

	r.Mutate(func(n int) int { return n + 1 })
	if r.Data() != 2 {
		t.Errorf("data = %d after Mutate, want 2", r.Data())
	}
}

func TestResolve(t *testing.T) {
	gate := make(chan struct{})
	r := New(func() (int, error) {
		<-gate
		return 1, nil
	}).WithPolicy(Fenced)
	defer close(gate)

	r.Resolve(42)
	if !r.Ready() {
		t.Fatalf("phase = %v after Resolve, want Ready", r.Phase())
	}
	if r.Data() != 42 {
		t.Errorf("data = %d after Resolve, want 42", r.Data())
	}
}

func TestCallbacks(t *testing.T) {
	gate := make(chan struct{})
	got := make(chan string, 1)

	New(func() (string, error) {
		<-gate
		return "hello", nil
	}).OnSuccess(func(v string) { got <- v })
	close(gate)

	select {
	case v := <-got:
		if v != "hello" {
			t.Errorf("OnSuccess got %q", v)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for OnSuccess")
	}
}

func TestErrorCallback(t *testing.T) {
	gate := make(chan struct{})
	got := make(chan error, 1)

	New(func() (string, error) {
		<-gate
		return "", errors.New("boom")
	}).OnError(func(err error) { got <- err })
	close(gate)

	select {
	case err := <-got:
		if err.Error() != "boom" {
			t.Errorf("OnError got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for OnError")
	}
}

func TestSubscribe(t *testing.T) {
	gate := make(chan struct{})
	settled := make(chan Snapshot[string], 4)

	r := New(func() (string, error) {
		<-gate
		return "x", nil
	})
	unsub := r.Subscribe(func(s Snapshot[string]) {
		if s.Settled() {
			settled <- s
		}
	})
	defer unsub()
	close(gate)

	select {
	case s := <-settled:
		if s.Phase != Ready {
			t.Errorf("subscriber saw %+v", s)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for subscriber")
	}
}
