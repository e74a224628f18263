// Package practice wires the session controller to the tap classifier and
// publishes what happens to interested listeners.
package practice

import (
	"github.com/google/uuid"

	"github.com/verte-zerg/tuitap/internal/session"
	"github.com/verte-zerg/tuitap/internal/tap"
)

// Trainer runs practice sessions. It is driven from the UI loop only.
type Trainer struct {
	ctrl      *session.Controller
	clf       *tap.Classifier
	listeners []Listener
	newID     func() string

	sessionID string
	attempts  []tap.Outcome
}

// New returns a trainer for sessions of maxTaps attempts.
func New(maxTaps int, listeners ...Listener) *Trainer {
	t := &Trainer{
		ctrl:      session.NewController(maxTaps),
		clf:       tap.NewClassifier(),
		listeners: listeners,
		newID:     uuid.NewString,
	}
	t.ctrl.OnStart(func() {
		t.emit(Event{Kind: EventStarted})
	})
	return t
}

// Subscribe adds a listener for subsequent events.
func (t *Trainer) Subscribe(l Listener) {
	t.listeners = append(t.listeners, l)
}

// Start begins a fresh session, cancelling any pending cooldown.
func (t *Trainer) Start() {
	t.clf.Reset()
	t.sessionID = t.newID()
	t.attempts = nil
	t.ctrl.Start()
}

// End abandons the session and returns to the idle screen.
func (t *Trainer) End() {
	t.clf.Reset()
	wasActive := t.ctrl.Session().Active
	t.ctrl.End()
	t.attempts = nil
	if wasActive {
		t.emit(Event{Kind: EventEnded})
	}
	t.sessionID = ""
}

// Handle routes a pointer event to the classifier while practicing.
func (t *Trainer) Handle(ev tap.Event) tap.Result {
	if t.ctrl.Screen() != session.ScreenPracticing {
		return tap.Result{}
	}
	res := t.clf.Handle(ev)
	if res.EndRequested {
		t.End()
		return res
	}
	if res.Resolved() {
		t.emit(Event{Kind: EventResolved, Outcome: res.Outcome, Delay: res.Delay})
	}
	return res
}

// Expire finishes the cooldown for token and records the attempt. It
// reports false for stale tokens.
func (t *Trainer) Expire(token uint64) bool {
	outcome := t.clf.Feedback().Outcome
	success, ok := t.clf.Expire(token)
	if !ok {
		return false
	}
	if !t.ctrl.RecordAttempt(success) {
		return false
	}
	t.attempts = append(t.attempts, outcome)
	t.emit(Event{Kind: EventRecorded, Outcome: outcome})
	if !t.ctrl.Session().Active {
		t.emit(Event{Kind: EventFinished})
	}
	return true
}

// Session returns the current tally.
func (t *Trainer) Session() session.Session {
	return t.ctrl.Session()
}

// Screen returns the screen for the current tally.
func (t *Trainer) Screen() session.Screen {
	return t.ctrl.Screen()
}

// MaxTaps returns the session length.
func (t *Trainer) MaxTaps() int {
	return t.ctrl.MaxTaps()
}

// AttemptNumber returns the 1-based attempt in progress.
func (t *Trainer) AttemptNumber() int {
	return t.ctrl.AttemptNumber()
}

// Feedback returns the outcome on display, if any.
func (t *Trainer) Feedback() tap.Feedback {
	return t.clf.Feedback()
}

// Attempts returns the outcomes recorded in this session, oldest first.
func (t *Trainer) Attempts() []tap.Outcome {
	out := make([]tap.Outcome, len(t.attempts))
	copy(out, t.attempts)
	return out
}

// SessionID identifies the running or last finished session.
func (t *Trainer) SessionID() string {
	return t.sessionID
}

func (t *Trainer) emit(ev Event) {
	ev.SessionID = t.sessionID
	ev.Session = t.ctrl.Session()
	if ev.Kind == EventResolved {
		ev.Attempt = t.ctrl.AttemptNumber()
	} else {
		ev.Attempt = ev.Session.AttemptsCompleted
	}
	for _, l := range t.listeners {
		l.Notify(ev)
	}
}
