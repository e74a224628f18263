// Package bridge forwards trainer events to a native host shell over
// websocket, so the host can show toasts, vibrate or dim the screen.
package bridge

import (
	"github.com/verte-zerg/tuitap/internal/practice"
	"github.com/verte-zerg/tuitap/internal/session"
	"github.com/verte-zerg/tuitap/internal/tap"
)

type MessageType string

const (
	MsgSnapshot        MessageType = "snapshot"
	MsgSessionStarted  MessageType = "session_started"
	MsgAttemptResolved MessageType = "attempt_resolved"
	MsgAttemptRecorded MessageType = "attempt_recorded"
	MsgSessionFinished MessageType = "session_finished"
	MsgSessionEnded    MessageType = "session_ended"
)

type Message struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

type SessionPayload struct {
	SessionID         string `json:"sessionId,omitempty"`
	AttemptsCompleted int    `json:"attemptsCompleted"`
	SuccessCount      int    `json:"successCount"`
	FailCount         int    `json:"failCount"`
	Active            bool   `json:"active"`
	MaxTaps           int    `json:"maxTaps"`
}

type AttemptPayload struct {
	SessionID  string `json:"sessionId"`
	Attempt    int    `json:"attempt"`
	Outcome    string `json:"outcome"`
	Success    bool   `json:"success"`
	CooldownMs int64  `json:"cooldownMs,omitempty"`
}

func messageFor(ev practice.Event, maxTaps int) (Message, bool) {
	switch ev.Kind {
	case practice.EventStarted:
		return Message{Type: MsgSessionStarted, Payload: sessionPayload(ev.SessionID, ev.Session, maxTaps)}, true
	case practice.EventResolved, practice.EventRecorded:
		typ := MsgAttemptResolved
		if ev.Kind == practice.EventRecorded {
			typ = MsgAttemptRecorded
		}
		return Message{Type: typ, Payload: AttemptPayload{
			SessionID:  ev.SessionID,
			Attempt:    ev.Attempt,
			Outcome:    ev.Outcome.String(),
			Success:    ev.Outcome == tap.OutcomeSuccess,
			CooldownMs: ev.Delay.Milliseconds(),
		}}, true
	case practice.EventFinished:
		return Message{Type: MsgSessionFinished, Payload: sessionPayload(ev.SessionID, ev.Session, maxTaps)}, true
	case practice.EventEnded:
		return Message{Type: MsgSessionEnded, Payload: sessionPayload(ev.SessionID, ev.Session, maxTaps)}, true
	default:
		return Message{}, false
	}
}

func sessionPayload(id string, s session.Session, maxTaps int) SessionPayload {
	return SessionPayload{
		SessionID:         id,
		AttemptsCompleted: s.AttemptsCompleted,
		SuccessCount:      s.SuccessCount,
		FailCount:         s.FailCount,
		Active:            s.Active,
		MaxTaps:           maxTaps,
	}
}
