package session

import "testing"

func TestStartResetsSession(t *testing.T) {
	c := NewController(MaxTaps)
	started := 0
	c.OnStart(func() { started++ })

	c.Start()
	c.RecordAttempt(true)
	c.RecordAttempt(false)
	c.Start()

	got := c.Session()
	if got != (Session{Active: true}) {
		t.Fatalf("expected fresh active session, got %+v", got)
	}
	if started != 2 {
		t.Fatalf("expected start hook twice, got %d", started)
	}
	if c.Screen() != ScreenPracticing {
		t.Fatalf("expected practicing screen, got %s", c.Screen())
	}
}

func TestRecordAttemptKeepsInvariant(t *testing.T) {
	c := NewController(MaxTaps)
	c.Start()
	results := []bool{true, false, true, true, false, false, true}
	for i, ok := range results {
		if !c.RecordAttempt(ok) {
			t.Fatalf("attempt %d rejected", i+1)
		}
		s := c.Session()
		if s.SuccessCount+s.FailCount != s.AttemptsCompleted {
			t.Fatalf("invariant broken after attempt %d: %+v", i+1, s)
		}
		if s.AttemptsCompleted > MaxTaps {
			t.Fatalf("attempts exceeded max: %+v", s)
		}
		last := i == len(results)-1
		if s.Active == last {
			t.Fatalf("attempt %d: unexpected active=%v", i+1, s.Active)
		}
	}
	s := c.Session()
	if s.SuccessCount != 4 || s.FailCount != 3 {
		t.Fatalf("unexpected tally: %+v", s)
	}
	if c.Screen() != ScreenResults {
		t.Fatalf("expected results screen, got %s", c.Screen())
	}
}

func TestRecordAttemptAfterEndIsNoop(t *testing.T) {
	c := NewController(2)
	c.Start()
	c.RecordAttempt(true)
	c.RecordAttempt(true)
	before := c.Session()
	if c.RecordAttempt(false) {
		t.Fatalf("expected record after finish to be rejected")
	}
	if c.Session() != before {
		t.Fatalf("session changed after finish: %+v", c.Session())
	}
}

func TestEndReturnsToIdle(t *testing.T) {
	c := NewController(MaxTaps)
	c.Start()
	c.RecordAttempt(false)
	c.End()
	if c.Session() != (Session{}) {
		t.Fatalf("expected zero session, got %+v", c.Session())
	}
	if c.Screen() != ScreenIdle {
		t.Fatalf("expected idle screen, got %s", c.Screen())
	}
	if c.RecordAttempt(true) {
		t.Fatalf("expected record on idle session to be rejected")
	}
}

func TestAttemptNumber(t *testing.T) {
	c := NewController(0)
	if c.MaxTaps() != MaxTaps {
		t.Fatalf("expected default max taps, got %d", c.MaxTaps())
	}
	c.Start()
	if c.AttemptNumber() != 1 {
		t.Fatalf("expected attempt 1, got %d", c.AttemptNumber())
	}
	c.RecordAttempt(true)
	if c.AttemptNumber() != 2 {
		t.Fatalf("expected attempt 2, got %d", c.AttemptNumber())
	}
}
