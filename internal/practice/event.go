package practice

import (
	"time"

	"github.com/verte-zerg/tuitap/internal/cue"
	"github.com/verte-zerg/tuitap/internal/session"
	"github.com/verte-zerg/tuitap/internal/tap"
)

// EventKind enumerates what a trainer publishes.
type EventKind int

const (
	EventStarted EventKind = iota
	EventResolved
	EventRecorded
	EventFinished
	EventEnded
)

func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventResolved:
		return "resolved"
	case EventRecorded:
		return "recorded"
	case EventFinished:
		return "finished"
	case EventEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Event is published to listeners after the trainer changes state.
type Event struct {
	Kind      EventKind
	SessionID string
	// Attempt is the attempt being resolved for EventResolved and the number
	// of completed attempts otherwise.
	Attempt int
	Outcome tap.Outcome
	Delay   time.Duration
	Session session.Session
}

// Listener receives trainer events on the UI loop. It must not block.
type Listener interface {
	Notify(Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(Event)

// Notify implements Listener.
func (f ListenerFunc) Notify(ev Event) { f(ev) }

// CueListener plays the cue that matches each event on p.
func CueListener(p cue.Player) Listener {
	return ListenerFunc(func(ev Event) {
		switch ev.Kind {
		case EventStarted:
			cue.Play(p, cue.Start)
		case EventResolved:
			if k, ok := cueFor(ev.Outcome); ok {
				cue.Play(p, k)
			}
		}
	})
}

func cueFor(o tap.Outcome) (cue.Kind, bool) {
	switch o {
	case tap.OutcomeSuccess:
		return cue.Success, true
	case tap.OutcomeOffTarget:
		return cue.OffTarget, true
	case tap.OutcomeExcessiveMovement:
		return cue.ExcessiveMovement, true
	case tap.OutcomeExcessiveDuration:
		return cue.ExcessiveDuration, true
	default:
		return 0, false
	}
}
