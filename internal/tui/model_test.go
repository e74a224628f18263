package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/tuitap/internal/locale"
	"github.com/verte-zerg/tuitap/internal/model"
	"github.com/verte-zerg/tuitap/internal/practice"
	"github.com/verte-zerg/tuitap/internal/session"
	"github.com/verte-zerg/tuitap/internal/tap"
)

type testClock struct{ now time.Time }

func (c *testClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestModel(t *testing.T) (*Model, *testClock) {
	t.Helper()
	clock := &testClock{now: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
	m := NewModel(model.Config{}, practice.New(session.MaxTaps), locale.Select("en"))
	m.now = func() time.Time { return clock.now }
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, clock
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

func startPractice(t *testing.T, m *Model) {
	t.Helper()
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.trainer.Screen() != session.ScreenPracticing {
		t.Fatalf("expected practicing after enter, got %s", m.trainer.Screen())
	}
}

// tapTarget presses and releases inside the target, dx cells apart.
func tapTarget(m *Model, clock *testClock, hold time.Duration, dx int) tea.Cmd {
	x, y := m.target.X+1, m.target.Y+1
	m.Update(press(x, y))
	clock.advance(hold)
	_, cmd := m.Update(release(x+dx, y))
	return cmd
}

func finishCooldown(m *Model) {
	m.Update(cooldownMsg{token: m.cooldownToken})
}

func TestIdleScreen(t *testing.T) {
	m, _ := newTestModel(t)
	out := m.View()
	msgs := locale.Select("en")
	if !strings.Contains(out, msgs.AppTitle) || !strings.Contains(out, "Start practice (7 taps)") {
		t.Fatalf("idle view missing title or start button:\n%s", out)
	}
}

func TestClickStartButton(t *testing.T) {
	m, _ := newTestModel(t)
	r, ok := m.compose().hits[hitStart]
	if !ok {
		t.Fatalf("expected start button hit area")
	}
	m.Update(press(r.X+1, r.Y+1))
	m.Update(release(r.X+1, r.Y+1))
	if m.trainer.Screen() != session.ScreenPracticing {
		t.Fatalf("expected practicing after clicking start, got %s", m.trainer.Screen())
	}
}

func TestTargetPlacedInArena(t *testing.T) {
	m, _ := newTestModel(t)
	startPractice(t, m)
	arena := m.arena()
	r := m.target
	if r.Empty() || r.Y < arena.Y || r.Y+r.H > arena.Y+arena.H {
		t.Fatalf("target %+v outside arena %+v", r, arena)
	}
	if got := m.compose().hits[hitTarget]; got != r {
		t.Fatalf("rendered target %+v does not match placement %+v", got, r)
	}
}

func TestQuickTapSucceeds(t *testing.T) {
	m, clock := newTestModel(t)
	startPractice(t, m)

	cmd := tapTarget(m, clock, 100*time.Millisecond, 0)
	if cmd == nil {
		t.Fatalf("expected cooldown command")
	}
	fb := m.trainer.Feedback()
	if fb.Outcome != tap.OutcomeSuccess {
		t.Fatalf("expected success, got %s", fb.Outcome)
	}
	if !strings.Contains(m.View(), "Tap succeeded!") {
		t.Fatalf("feedback view missing success message")
	}

	finishCooldown(m)
	s := m.trainer.Session()
	if s.AttemptsCompleted != 1 || s.SuccessCount != 1 {
		t.Fatalf("unexpected session %+v", s)
	}
	if !strings.Contains(m.View(), "Tap practice (2 / 7)") {
		t.Fatalf("expected second attempt title:\n%s", m.View())
	}
}

func TestSlowTapIsTooLong(t *testing.T) {
	m, clock := newTestModel(t)
	startPractice(t, m)
	tapTarget(m, clock, 501*time.Millisecond, 0)
	if got := m.trainer.Feedback().Outcome; got != tap.OutcomeExcessiveDuration {
		t.Fatalf("expected excessive duration, got %s", got)
	}
}

func TestDriftWithinTargetIsMovement(t *testing.T) {
	m, clock := newTestModel(t)
	startPractice(t, m)
	tapTarget(m, clock, 100*time.Millisecond, 3)
	if got := m.trainer.Feedback().Outcome; got != tap.OutcomeExcessiveMovement {
		t.Fatalf("expected excessive movement, got %s", got)
	}
}

func TestReleaseOutsideTarget(t *testing.T) {
	m, _ := newTestModel(t)
	startPractice(t, m)
	y := m.arena().Y
	if _, cmd := m.Update(press(0, y)); cmd != nil {
		t.Fatalf("press off target should wait for release")
	}
	m.Update(release(0, y))
	if got := m.trainer.Feedback().Outcome; got != tap.OutcomeOffTarget {
		t.Fatalf("expected off target, got %s", got)
	}
}

func TestDragOutOfTargetIsMeasured(t *testing.T) {
	m, clock := newTestModel(t)
	startPractice(t, m)
	x, y := m.target.X+1, m.target.Y+1
	m.Update(press(x, y))
	m.Update(tea.MouseMsg{X: x - 2, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	clock.advance(100 * time.Millisecond)
	_, cmd := m.Update(release(0, y))
	if cmd == nil {
		t.Fatalf("expected cooldown command")
	}
	if got := m.trainer.Feedback().Outcome; got != tap.OutcomeExcessiveMovement {
		t.Fatalf("expected excessive movement, got %s", got)
	}
	finishCooldown(m)

	// The drag ended with the previous attempt, so a plain miss still counts.
	m.Update(release(0, m.arena().Y))
	if got := m.trainer.Feedback().Outcome; got != tap.OutcomeOffTarget {
		t.Fatalf("expected off target on the next attempt, got %s", got)
	}
}

func TestMismatchedCooldownIgnored(t *testing.T) {
	m, clock := newTestModel(t)
	startPractice(t, m)
	tapTarget(m, clock, 50*time.Millisecond, 0)
	m.Update(cooldownMsg{token: m.cooldownToken + 1})
	if !m.trainer.Feedback().Active() {
		t.Fatalf("mismatched cooldown ended the feedback")
	}
	finishCooldown(m)
	if m.trainer.Feedback().Active() {
		t.Fatalf("expected feedback cleared by the live cooldown")
	}
}

func TestCooldownIgnoresInput(t *testing.T) {
	m, clock := newTestModel(t)
	startPractice(t, m)
	tapTarget(m, clock, 50*time.Millisecond, 0)
	token := m.cooldownToken

	if cmd := tapTarget(m, clock, 50*time.Millisecond, 0); cmd != nil {
		t.Fatalf("expected input ignored during cooldown")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.trainer.Screen() != session.ScreenPracticing {
		t.Fatalf("esc must not end the session during feedback")
	}
	if m.cooldownToken != token {
		t.Fatalf("cooldown token changed during cooldown")
	}
	finishCooldown(m)
	finishCooldown(m)
	if got := m.trainer.Session().AttemptsCompleted; got != 1 {
		t.Fatalf("expected exactly one recorded attempt, got %d", got)
	}
}

func TestResetButtonEndsSession(t *testing.T) {
	m, clock := newTestModel(t)
	startPractice(t, m)
	tapTarget(m, clock, 50*time.Millisecond, 0)
	finishCooldown(m)

	r, ok := m.compose().hits[hitReset]
	if !ok {
		t.Fatalf("expected reset button hit area")
	}
	m.Update(press(r.X+1, r.Y+1))
	m.Update(release(r.X+1, r.Y+1))
	if m.trainer.Screen() != session.ScreenIdle {
		t.Fatalf("expected idle after reset, got %s", m.trainer.Screen())
	}
	if m.trainer.Session() != (session.Session{}) {
		t.Fatalf("expected cleared session, got %+v", m.trainer.Session())
	}
}

func TestStaleCooldownAfterEnd(t *testing.T) {
	m, clock := newTestModel(t)
	startPractice(t, m)
	tapTarget(m, clock, 50*time.Millisecond, 0)
	stale := m.cooldownToken
	m.trainer.End()
	startPractice(t, m)
	m.Update(cooldownMsg{token: stale})
	if got := m.trainer.Session(); got != (session.Session{Active: true}) {
		t.Fatalf("stale cooldown changed the new session: %+v", got)
	}
}

func TestFullSessionShowsResults(t *testing.T) {
	m, clock := newTestModel(t)
	startPractice(t, m)
	for i := 0; i < session.MaxTaps; i++ {
		hold := 80 * time.Millisecond
		if i == 0 {
			hold = time.Second
		}
		tapTarget(m, clock, hold, 0)
		finishCooldown(m)
	}
	if m.trainer.Screen() != session.ScreenResults {
		t.Fatalf("expected results, got %s", m.trainer.Screen())
	}
	out := m.View()
	for _, want := range []string{"Today's practice is done", "6 (85.7%)", "1 (14.3%)", "held too long", "Practice again"} {
		if !strings.Contains(out, want) {
			t.Fatalf("results view missing %q:\n%s", want, out)
		}
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.trainer.Session(); got != (session.Session{Active: true}) {
		t.Fatalf("expected restart to reset the session, got %+v", got)
	}
}

func TestPointerEventPixels(t *testing.T) {
	m, _ := newTestModel(t)
	startPractice(t, m)
	ev, ok := m.pointerEvent(tea.MouseMsg{X: 2, Y: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if !ok {
		t.Fatalf("expected release to map to an event")
	}
	if ev.Kind != tap.Click || ev.X != 20 || ev.Y != 24 {
		t.Fatalf("unexpected event %+v", ev)
	}
	if _, ok := m.pointerEvent(tea.MouseMsg{X: 2, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}); ok {
		t.Fatalf("right press must be ignored")
	}
}

func TestQuitKey(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected quit message")
	}
}
