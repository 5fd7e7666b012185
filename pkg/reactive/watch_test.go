package reactive

import "testing"

func TestWatchFiresImmediately(t *testing.T) {
	s := NewSignal("initial")

	var got []string
	stop := Watch(s, func(v string) {
		got = append(got, v)
	})
	defer stop()

	if len(got) != 1 || got[0] != "initial" {
		t.Fatalf("Watch should fire immediately with the current value, got %v", got)
	}

	s.Set("next")
	if len(got) != 2 || got[1] != "next" {
		t.Errorf("Watch should fire on change, got %v", got)
	}
}

func TestWatchStop(t *testing.T) {
	s := NewSignal(0)

	calls := 0
	stop := Watch(s, func(int) { calls++ })
	stop()

	s.Set(1)
	if calls != 1 {
		t.Errorf("watcher called %d times after stop, want 1 (the initial run)", calls)
	}
}

func TestWatchChangeSkipsInitial(t *testing.T) {
	s := NewSignal(0)

	calls := 0
	stop := WatchChange(s, func(int) { calls++ })
	defer stop()

	if calls != 0 {
		t.Fatalf("WatchChange fired on registration, calls = %d", calls)
	}

	s.Set(1)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
