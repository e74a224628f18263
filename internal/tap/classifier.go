// Package tap classifies pointer attempts against a target and drives the
// feedback cooldown that follows each classification.
package tap

import (
	"math"
	"time"
)

const (
	// MaxTouchTime is the longest press that still counts as a tap.
	MaxTouchTime = 500 * time.Millisecond
	// MaxMoveDistance is the largest drift, in pixels, between press and release.
	MaxMoveDistance = 10.0
	// SuccessCooldown is how long success feedback stays on screen.
	SuccessCooldown = 2000 * time.Millisecond
	// FailureCooldown is how long failure feedback stays on screen.
	FailureCooldown = 3000 * time.Millisecond
)

// State is the classifier's position in the attempt cycle.
type State int

const (
	StateIdle State = iota
	StateArmed
	StateCooldown
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateArmed:
		return "armed"
	case StateCooldown:
		return "cooldown"
	default:
		return "unknown"
	}
}

// Feedback is the outcome on display during cooldown. A zero Feedback
// means nothing is shown and input is accepted.
type Feedback struct {
	Outcome Outcome
}

// Active reports whether feedback is on display.
func (f Feedback) Active() bool {
	return f.Outcome != OutcomeNone
}

// Success reports whether the displayed outcome is a success.
func (f Feedback) Success() bool {
	return f.Outcome == OutcomeSuccess
}

// Result describes what a single event did to the classifier.
type Result struct {
	// Outcome is OutcomeNone unless the event resolved an attempt.
	Outcome Outcome
	// Delay is the cooldown to wait before calling Expire with Token.
	Delay time.Duration
	Token uint64
	// EndRequested is set when the reset control was clicked.
	EndRequested bool
}

// Resolved reports whether the event produced a classification.
func (r Result) Resolved() bool {
	return r.Outcome != OutcomeNone
}

type pendingTouch struct {
	x, y    float64
	at      time.Time
	fingers int
}

// Classifier is the per-attempt state machine. One instance serves a whole
// session; it is driven from a single goroutine.
type Classifier struct {
	state    State
	pending  pendingTouch
	dragging bool
	feedback Feedback
	token    uint64
}

// NewClassifier returns an idle classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// State returns the current state.
func (c *Classifier) State() State {
	return c.state
}

// Feedback returns the outcome currently on display.
func (c *Classifier) Feedback() Feedback {
	return c.feedback
}

// Handle feeds one pointer event into the state machine.
func (c *Classifier) Handle(ev Event) Result {
	if ev.Kind.isMove() {
		return Result{}
	}
	if c.feedback.Active() {
		return Result{}
	}

	if ev.Kind == Click {
		return c.handleClick(ev)
	}

	if ev.Kind == MouseUp {
		c.dragging = false
	}
	// An armed press is measured wherever it is released.
	if ev.Kind.isEnd() && c.state == StateArmed {
		return c.resolve(c.measure(ev))
	}
	if !ev.InTarget {
		return c.resolve(OutcomeOffTarget)
	}

	fingers := ev.Touches
	if ev.Kind.isMouse() {
		fingers = 1
	}
	if fingers <= 0 {
		return Result{}
	}

	switch {
	case ev.Kind.isStart():
		if ev.Kind == MouseDown {
			c.dragging = true
		}
		if fingers > 1 {
			return c.resolve(OutcomeMultiFinger)
		}
		c.pending = pendingTouch{x: ev.X, y: ev.Y, at: ev.At, fingers: fingers}
		c.state = StateArmed
		return Result{}
	default:
		return Result{}
	}
}

func (c *Classifier) handleClick(ev Event) Result {
	switch {
	case ev.OnReset:
		return Result{EndRequested: true}
	case ev.InTarget:
		return Result{}
	case c.dragging:
		up := ev
		up.Kind = MouseUp
		up.InTarget = true
		return c.Handle(up)
	default:
		return c.resolve(OutcomeOffTarget)
	}
}

// measure classifies a release against the armed press. Duration is checked
// before movement.
func (c *Classifier) measure(ev Event) Outcome {
	dx := ev.X - c.pending.x
	dy := ev.Y - c.pending.y
	distance := math.Sqrt(dx*dx + dy*dy)
	duration := ev.At.Sub(c.pending.at)

	if duration > MaxTouchTime {
		return OutcomeExcessiveDuration
	}
	if distance > MaxMoveDistance {
		return OutcomeExcessiveMovement
	}
	return OutcomeSuccess
}

func (c *Classifier) resolve(outcome Outcome) Result {
	c.token++
	c.pending = pendingTouch{}
	c.dragging = false
	c.state = StateCooldown
	c.feedback = Feedback{Outcome: outcome}
	return Result{
		Outcome: outcome,
		Delay:   CooldownFor(outcome),
		Token:   c.token,
	}
}

// Expire ends the cooldown identified by token. It returns the attempt's
// success flag and ok=false when the token is stale or no cooldown runs.
func (c *Classifier) Expire(token uint64) (success, ok bool) {
	if c.state != StateCooldown || token != c.token {
		return false, false
	}
	success = c.feedback.Success()
	c.feedback = Feedback{}
	c.state = StateIdle
	return success, true
}

// Reset cancels any outstanding cooldown and drops the pending touch.
func (c *Classifier) Reset() {
	c.token++
	c.state = StateIdle
	c.pending = pendingTouch{}
	c.dragging = false
	c.feedback = Feedback{}
}

// CooldownFor returns the feedback delay for an outcome.
func CooldownFor(outcome Outcome) time.Duration {
	if outcome == OutcomeSuccess {
		return SuccessCooldown
	}
	return FailureCooldown
}
