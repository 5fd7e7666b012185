package reactive

import (
	"sync"
	"testing"
)

func TestSignalGetSet(t *testing.T) {
	s := NewSignal(42)
	if s.Get() != 42 {
		t.Errorf("Get() = %d, want 42", s.Get())
	}

	s.Set(7)
	if s.Get() != 7 {
		t.Errorf("Get() = %d, want 7", s.Get())
	}
}

func TestSignalPeek(t *testing.T) {
	s := NewSignal("x")
	if s.Peek() != "x" {
		t.Errorf("Peek() = %q, want x", s.Peek())
	}
	s.Set("y")
	if s.Peek() != "y" {
		t.Errorf("Peek() = %q after Set, want y", s.Peek())
	}
}

func TestSignalSubscribe(t *testing.T) {
	s := NewSignal("a")

	var got []string
	unsub := s.Subscribe(func(v string) {
		got = append(got, v)
	})

	s.Set("b")
	s.Set("c")
	unsub()
	s.Set("d")

	if len(got) != 2 || got[0] != "b" || got[1] != "c" {
		t.Errorf("subscriber saw %v, want [b c]", got)
	}
}

func TestSignalNoNotifyOnEqualValue(t *testing.T) {
	s := NewSignal(1)

	calls := 0
	s.Subscribe(func(int) { calls++ })

	s.Set(1)
	if calls != 0 {
		t.Errorf("subscriber called %d times for unchanged value, want 0", calls)
	}
}

func TestSignalUpdate(t *testing.T) {
	s := NewSignal(10)
	s.Update(func(n int) int { return n + 5 })
	if s.Get() != 15 {
		t.Errorf("Get() = %d, want 15", s.Get())
	}
}

func TestSignalCustomEquals(t *testing.T) {
	// Treat all even values as equal to each other.
	s := NewSignal(2).WithEquals(func(a, b int) bool {
		return a%2 == b%2
	})

	calls := 0
	s.Subscribe(func(int) { calls++ })

	s.Set(4) // same parity, no notification
	s.Set(5) // parity changed
	if calls != 1 {
		t.Errorf("subscriber called %d times, want 1", calls)
	}
}

func TestSignalDeepEqualFallback(t *testing.T) {
	s := NewSignal([]int{1, 2})

	calls := 0
	s.Subscribe(func([]int) { calls++ })

	s.Set([]int{1, 2}) // deep-equal, no notification
	s.Set([]int{1, 3})
	if calls != 1 {
		t.Errorf("subscriber called %d times, want 1", calls)
	}
}

func TestSignalConcurrentAccess(t *testing.T) {
	s := NewSignal(0)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Update(func(n int) int { return n + 1 })
		}()
	}
	wg.Wait()

	if s.Get() != 50 {
		t.Errorf("Get() = %d, want 50", s.Get())
	}
}

func TestSignalIDsUnique(t *testing.T) {
	a := NewSignal(0)
	b := NewSignal(0)
	if a.ID() == b.ID() {
		t.Error("two signals should not share an ID")
	}
}
