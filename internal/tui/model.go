// Package tui provides the Bubble Tea tap practice interface.
package tui

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/tuitap/internal/layout"
	"github.com/verte-zerg/tuitap/internal/locale"
	"github.com/verte-zerg/tuitap/internal/model"
	"github.com/verte-zerg/tuitap/internal/practice"
	"github.com/verte-zerg/tuitap/internal/session"
	"github.com/verte-zerg/tuitap/internal/tap"
)

const (
	defaultCellWidth  = 8.0
	defaultCellHeight = 16.0

	targetHeight   = 5
	targetMinWidth = 24
	progressWidth  = 40
)

// cooldownMsg fires when the feedback for the resolution with token is over.
type cooldownMsg struct {
	token uint64
}

// Model implements the Bubble Tea practice UI.
type Model struct {
	trainer *practice.Trainer
	msgs    locale.Messages
	placer  *layout.Placer
	keys    KeyMap

	help     help.Model
	progress progress.Model
	spinner  spinner.Model

	cellWidth  float64
	cellHeight float64
	now        func() time.Time

	width  int
	height int

	target        layout.Rect
	placedFor     int
	cooldownToken uint64
}

// NewModel constructs a practice TUI model around tr.
func NewModel(cfg model.Config, tr *practice.Trainer, msgs locale.Messages) *Model {
	cellW, cellH := cfg.CellWidth, cfg.CellHeight
	if cellW <= 0 {
		cellW = defaultCellWidth
	}
	if cellH <= 0 {
		cellH = defaultCellHeight
	}
	return &Model{
		trainer:    tr,
		msgs:       msgs,
		placer:     layout.New(cfg.Shuffle),
		keys:       newKeyMap(msgs),
		help:       help.New(),
		progress:   progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage(), progress.WithWidth(progressWidth)),
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(waitStyle)),
		cellWidth:  cellW,
		cellHeight: cellH,
		now:        time.Now,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.progress.Width = min(progressWidth, max(msg.Width-4, 1))
		m.placedFor = 0
		m.ensureTarget()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case cooldownMsg:
		if msg.token != m.cooldownToken {
			return m, nil
		}
		if m.trainer.Expire(msg.token) {
			m.ensureTarget()
		}
		return m, nil
	case spinner.TickMsg:
		if !m.trainer.Feedback().Active() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if fb := m.trainer.Feedback(); fb.Active() {
		return m.renderFeedback(fb)
	}
	return m.compose().String()
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Start):
		if m.trainer.Screen() != session.ScreenPracticing {
			m.start()
		}
	case key.Matches(msg, m.keys.Back):
		if m.trainer.Screen() == session.ScreenPracticing && !m.trainer.Feedback().Active() {
			m.trainer.End()
		}
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.trainer.Screen() != session.ScreenPracticing {
		if msg.Action == tea.MouseActionRelease && m.compose().hitAt(msg.X, msg.Y) == hitStart {
			m.start()
		}
		return m, nil
	}
	if m.trainer.Feedback().Active() {
		return m, nil
	}
	ev, ok := m.pointerEvent(msg)
	if !ok {
		return m, nil
	}
	res := m.trainer.Handle(ev)
	if !res.Resolved() {
		return m, nil
	}
	m.cooldownToken = res.Token
	return m, tea.Batch(cooldownCmd(res.Delay, res.Token), m.spinner.Tick)
}

// pointerEvent maps a terminal mouse event onto the classifier's pointer
// model. Presses only arm on the target; a release anywhere else arrives
// as the click that reaches the practice container.
func (m *Model) pointerEvent(msg tea.MouseMsg) (tap.Event, bool) {
	hit := m.compose().hitAt(msg.X, msg.Y)
	ev := tap.Event{
		X:        (float64(msg.X) + 0.5) * m.cellWidth,
		Y:        (float64(msg.Y) + 0.5) * m.cellHeight,
		InTarget: hit == hitTarget,
		OnReset:  hit == hitReset,
		At:       m.now(),
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !ev.InTarget {
			return tap.Event{}, false
		}
		ev.Kind = tap.MouseDown
	case tea.MouseActionRelease:
		if msg.Button != tea.MouseButtonLeft && msg.Button != tea.MouseButtonNone {
			return tap.Event{}, false
		}
		if ev.InTarget {
			ev.Kind = tap.MouseUp
		} else {
			ev.Kind = tap.Click
		}
	case tea.MouseActionMotion:
		ev.Kind = tap.MouseMove
	default:
		return tap.Event{}, false
	}
	return ev, true
}

func (m *Model) start() {
	m.trainer.Start()
	log.Printf("session %s started", m.trainer.SessionID())
	m.placedFor = 0
	m.cooldownToken = 0
	m.ensureTarget()
}

// ensureTarget places the target once per attempt and after resizes.
func (m *Model) ensureTarget() {
	if m.trainer.Screen() != session.ScreenPracticing || m.width == 0 {
		return
	}
	attempt := m.trainer.AttemptNumber()
	if m.placedFor == attempt {
		return
	}
	w := targetMinWidth
	if lw := textWidth(m.msgs.Target) + 8; lw > w {
		w = lw
	}
	m.target = m.placer.Place(m.arena(), w, targetHeight)
	m.placedFor = attempt
}

func cooldownCmd(delay time.Duration, token uint64) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return cooldownMsg{token: token}
	})
}
