package stats

import (
	"fmt"

	"github.com/verte-zerg/tuitap/internal/locale"
	"github.com/verte-zerg/tuitap/internal/session"
	"github.com/verte-zerg/tuitap/internal/tap"
)

// Rates returns success and failure percentages of total. A zero total
// yields zero rates.
func Rates(success, fail, total int) (successPct, failPct float64) {
	if total <= 0 {
		return 0, 0
	}
	return float64(success) / float64(total) * 100, float64(fail) / float64(total) * 100
}

// FormatPct renders a percentage with one decimal.
func FormatPct(pct float64) string {
	return fmt.Sprintf("(%.1f%%)", pct)
}

// OutcomeCount pairs an outcome with how often it occurred.
type OutcomeCount struct {
	Outcome tap.Outcome
	Count   int
}

// Breakdown counts failed attempts per outcome in display order, skipping
// outcomes that never occurred.
func Breakdown(attempts []tap.Outcome) []OutcomeCount {
	counts := map[tap.Outcome]int{}
	for _, o := range attempts {
		counts[o]++
	}
	out := make([]OutcomeCount, 0, len(tap.Failures))
	for _, o := range tap.Failures {
		if counts[o] == 0 {
			continue
		}
		out = append(out, OutcomeCount{Outcome: o, Count: counts[o]})
	}
	return out
}

// ResultLines renders the result table for a finished session.
func ResultLines(msgs locale.Messages, s session.Session, attempts []tap.Outcome) []string {
	total := s.AttemptsCompleted
	successPct, failPct := Rates(s.SuccessCount, s.FailCount, total)
	rows := [][]string{
		{msgs.SuccessLabel, fmt.Sprintf(msgs.TimesFmt, s.SuccessCount), FormatPct(successPct)},
		{msgs.FailLabel, fmt.Sprintf(msgs.TimesFmt, s.FailCount), FormatPct(failPct)},
	}
	for _, bc := range Breakdown(attempts) {
		pct, _ := Rates(bc.Count, 0, total)
		rows = append(rows, []string{
			fmt.Sprintf(msgs.BreakdownFmt, msgs.Label(bc.Outcome)),
			fmt.Sprintf(msgs.TimesFmt, bc.Count),
			FormatPct(pct),
		})
	}
	return formatTable(nil, rows, map[int]bool{1: true, 2: true})
}

// Strip renders one mark per attempt, oldest first.
func Strip(attempts []tap.Outcome) string {
	marks := make([]rune, 0, len(attempts))
	for _, o := range attempts {
		if o == tap.OutcomeSuccess {
			marks = append(marks, '●')
		} else {
			marks = append(marks, '×')
		}
	}
	return string(marks)
}
