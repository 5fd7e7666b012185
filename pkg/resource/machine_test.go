package resource

import (
	"errors"
	"testing"
)

func TestSnapshotZeroValue(t *testing.T) {
	var s Snapshot[string]
	if s.Phase != Idle {
		t.Errorf("zero snapshot phase = %v, want Idle", s.Phase)
	}
	if !s.Loading() {
		t.Error("before the first fetch settles, observers should see loading")
	}
	if s.Data != "" || s.Err != nil {
		t.Error("zero snapshot should carry zero data and nil error")
	}
}

func TestStartClearsError(t *testing.T) {
	s := Snapshot[int]{Phase: Failed, Data: 3, Err: errors.New("old")}
	next := s.Start()

	if next.Phase != Loading {
		t.Errorf("phase = %v, want Loading", next.Phase)
	}
	if next.Err != nil {
		t.Error("Start should clear the error")
	}
	if next.Data != 3 {
		t.Error("Start should keep the previous data")
	}
}

func TestSucceedReplacesData(t *testing.T) {
	s := Snapshot[int]{Phase: Loading, Data: 3}
	next := s.Succeed(7)

	if next.Phase != Ready || next.Data != 7 || next.Err != nil {
		t.Errorf("Succeed produced %+v", next)
	}
}

func TestFailPreservesStaleData(t *testing.T) {
	cause := errors.New("network down")
	s := Snapshot[int]{Phase: Loading, Data: 42}
	next := s.Fail(cause)

	if next.Phase != Failed {
		t.Errorf("phase = %v, want Failed", next.Phase)
	}
	if next.Err != cause {
		t.Errorf("err = %v, want %v", next.Err, cause)
	}
	if next.Data != 42 {
		t.Error("Fail should preserve the previous data")
	}
}

func TestFirstFailureHasZeroData(t *testing.T) {
	var s Snapshot[[]string]
	next := s.Start().Fail(errors.New("boom"))
	if next.Data != nil {
		t.Errorf("data after first failure = %v, want nil", next.Data)
	}
}

func TestSettledPredicate(t *testing.T) {
	cases := []struct {
		phase   Phase
		settled bool
	}{
		{Idle, false},
		{Loading, false},
		{Ready, true},
		{Failed, true},
	}
	for _, c := range cases {
		s := Snapshot[int]{Phase: c.phase}
		if s.Settled() != c.settled {
			t.Errorf("Settled() in %v = %v, want %v", c.phase, s.Settled(), c.settled)
		}
	}
}

func TestPhaseString(t *testing.T) {
	if Idle.String() != "Idle" || Loading.String() != "Loading" ||
		Ready.String() != "Ready" || Failed.String() != "Failed" {
		t.Error("unexpected Phase string representation")
	}
	if Phase(99).String() != "Unknown" {
		t.Error("out-of-range phase should be Unknown")
	}
}

func TestPolicyString(t *testing.T) {
	if LastWins.String() != "LastWins" || Fenced.String() != "Fenced" ||
		Serialized.String() != "Serialized" {
		t.Error("unexpected Policy string representation")
	}
}
