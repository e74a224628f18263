// Package session tracks a fixed-length run of tap attempts.
package session

// MaxTaps is the number of attempts in one practice session.
const MaxTaps = 7

// Screen identifies which top-level view a session maps to.
type Screen int

const (
	ScreenIdle Screen = iota
	ScreenPracticing
	ScreenResults
)

func (s Screen) String() string {
	switch s {
	case ScreenIdle:
		return "idle"
	case ScreenPracticing:
		return "practicing"
	case ScreenResults:
		return "results"
	default:
		return "unknown"
	}
}

// Session captures the running tally of a practice session.
type Session struct {
	AttemptsCompleted int
	SuccessCount      int
	FailCount         int
	Active            bool
}

// Controller owns the current Session and its transitions.
// It is not safe for concurrent use; callers drive it from the UI loop.
type Controller struct {
	maxTaps int
	current Session
	onStart func()
}

// NewController returns a Controller for sessions of maxTaps attempts.
// A non-positive maxTaps falls back to MaxTaps.
func NewController(maxTaps int) *Controller {
	if maxTaps <= 0 {
		maxTaps = MaxTaps
	}
	return &Controller{maxTaps: maxTaps}
}

// OnStart registers a hook fired after every Start, used for the start cue.
func (c *Controller) OnStart(fn func()) {
	c.onStart = fn
}

// MaxTaps returns the configured session length.
func (c *Controller) MaxTaps() int {
	return c.maxTaps
}

// Start resets the tally and activates the session.
func (c *Controller) Start() {
	c.current = Session{Active: true}
	if c.onStart != nil {
		c.onStart()
	}
}

// RecordAttempt tallies one attempt. It reports false and leaves the
// session untouched when the session is not active.
func (c *Controller) RecordAttempt(success bool) bool {
	prev := c.current
	if !prev.Active {
		return false
	}
	next := Session{
		AttemptsCompleted: prev.AttemptsCompleted + 1,
		SuccessCount:      prev.SuccessCount,
		FailCount:         prev.FailCount,
	}
	if success {
		next.SuccessCount++
	} else {
		next.FailCount++
	}
	next.Active = next.AttemptsCompleted < c.maxTaps
	c.current = next
	return true
}

// End discards the session and returns to the idle screen without results.
func (c *Controller) End() {
	c.current = Session{}
}

// Session returns a copy of the current tally.
func (c *Controller) Session() Session {
	return c.current
}

// Screen derives the view from the current tally.
func (c *Controller) Screen() Screen {
	switch {
	case c.current.Active:
		return ScreenPracticing
	case c.current.AttemptsCompleted > 0:
		return ScreenResults
	default:
		return ScreenIdle
	}
}

// AttemptNumber is the 1-based number of the attempt in progress.
func (c *Controller) AttemptNumber() int {
	return c.current.AttemptsCompleted + 1
}
