package stats

import (
	"strings"
	"testing"

	"github.com/verte-zerg/tuitap/internal/locale"
	"github.com/verte-zerg/tuitap/internal/session"
	"github.com/verte-zerg/tuitap/internal/tap"
)

func TestRates(t *testing.T) {
	s, f := Rates(5, 2, 7)
	if FormatPct(s) != "(71.4%)" || FormatPct(f) != "(28.6%)" {
		t.Fatalf("unexpected rates %s %s", FormatPct(s), FormatPct(f))
	}
	s, f = Rates(0, 0, 0)
	if s != 0 || f != 0 {
		t.Fatalf("expected zero rates for empty session, got %v %v", s, f)
	}
}

func TestBreakdownOrdersFailures(t *testing.T) {
	attempts := []tap.Outcome{
		tap.OutcomeExcessiveDuration,
		tap.OutcomeSuccess,
		tap.OutcomeOffTarget,
		tap.OutcomeExcessiveDuration,
	}
	got := Breakdown(attempts)
	if len(got) != 2 {
		t.Fatalf("expected 2 failure kinds, got %+v", got)
	}
	if got[0] != (OutcomeCount{Outcome: tap.OutcomeOffTarget, Count: 1}) {
		t.Fatalf("unexpected first entry %+v", got[0])
	}
	if got[1] != (OutcomeCount{Outcome: tap.OutcomeExcessiveDuration, Count: 2}) {
		t.Fatalf("unexpected second entry %+v", got[1])
	}
}

func TestResultLines(t *testing.T) {
	msgs := locale.Select("en")
	s := session.Session{AttemptsCompleted: 7, SuccessCount: 5, FailCount: 2}
	attempts := []tap.Outcome{
		tap.OutcomeSuccess, tap.OutcomeSuccess, tap.OutcomeExcessiveMovement,
		tap.OutcomeSuccess, tap.OutcomeSuccess, tap.OutcomeMultiFinger, tap.OutcomeSuccess,
	}
	lines := ResultLines(msgs, s, attempts)
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %v", len(lines), lines)
	}
	if !strings.HasPrefix(lines[0], msgs.SuccessLabel) || !strings.HasSuffix(lines[0], "5 (71.4%)") {
		t.Fatalf("unexpected success line %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "2 (28.6%)") {
		t.Fatalf("unexpected fail line %q", lines[1])
	}
	if !strings.Contains(lines[2], msgs.MultiFingerLabel) || !strings.Contains(lines[3], msgs.MovementLabel) {
		t.Fatalf("unexpected breakdown %v", lines[2:])
	}
}

func TestStrip(t *testing.T) {
	got := Strip([]tap.Outcome{tap.OutcomeSuccess, tap.OutcomeOffTarget, tap.OutcomeSuccess})
	if got != "●×●" {
		t.Fatalf("unexpected strip %q", got)
	}
}
