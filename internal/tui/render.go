package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tuitap/internal/layout"
	"github.com/verte-zerg/tuitap/internal/session"
	"github.com/verte-zerg/tuitap/internal/stats"
	"github.com/verte-zerg/tuitap/internal/tap"
)

// footerRows covers the bordered reset button and the help line.
const footerRows = 4

var (
	successColor = lipgloss.Color("#2E7D32")
	failColor    = lipgloss.Color("#B3261E")

	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	textStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	noteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	waitStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))
	targetStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#C89A3A")).
			Foreground(lipgloss.Color("#1A1A1A")).
			Bold(true)
	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	resetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#B0B0B0")).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
)

func (m *Model) compose() *canvas {
	c := newCanvas(m.width)
	switch m.trainer.Screen() {
	case session.ScreenPracticing:
		m.composePractice(c)
	case session.ScreenResults:
		m.composeResults(c)
	default:
		m.composeIdle(c)
	}
	return c
}

func (m *Model) composeIdle(c *canvas) {
	maxTaps := m.trainer.MaxTaps()
	c.center(titleStyle.Render(m.msgs.AppTitle))
	c.blank(1)
	m.paragraph(c, fmt.Sprintf(m.msgs.IntroFmt, maxTaps), textStyle)
	m.paragraph(c, m.msgs.IntroHow, textStyle)
	c.blank(1)
	c.hit(hitStart, c.center(buttonStyle.Render(fmt.Sprintf(m.msgs.StartFmt, maxTaps))))
	c.blank(1)
	c.center(m.help.ShortHelpView([]key.Binding{m.keys.Start, m.keys.Quit}))
	c.middle(m.height)
}

func (m *Model) practiceHeader(c *canvas) {
	c.center(titleStyle.Render(fmt.Sprintf(m.msgs.PracticeFmt, m.trainer.AttemptNumber(), m.trainer.MaxTaps())))
	m.paragraph(c, m.msgs.Instruction, textStyle)
	done := float64(m.trainer.Session().AttemptsCompleted) / float64(m.trainer.MaxTaps())
	c.center(m.progress.ViewAs(done))
	c.blank(1)
}

// arena is the region of the practice screen the target may occupy.
func (m *Model) arena() layout.Rect {
	header := newCanvas(m.width)
	m.practiceHeader(header)
	top := len(header.lines)
	h := m.height - top - footerRows
	if h < 0 {
		h = 0
	}
	return layout.Rect{X: 0, Y: top, W: m.width, H: h}
}

func (m *Model) composePractice(c *canvas) {
	m.practiceHeader(c)
	arena := m.arena()
	if !m.target.Empty() {
		c.padTo(m.target.Y)
		c.hit(hitTarget, c.at(m.target.X, m.renderTarget()))
	}
	c.padTo(arena.Y + arena.H)
	c.hit(hitReset, c.center(resetStyle.Render(m.msgs.Reset)))
	c.center(m.help.ShortHelpView([]key.Binding{m.keys.Back, m.keys.Quit}))
}

func (m *Model) renderTarget() string {
	return targetStyle.
		Width(m.target.W).
		Height(m.target.H).
		MaxWidth(m.target.W).
		MaxHeight(m.target.H).
		Align(lipgloss.Center, lipgloss.Center).
		Render(m.msgs.Target)
}

func (m *Model) composeResults(c *canvas) {
	s := m.trainer.Session()
	attempts := m.trainer.Attempts()
	c.center(titleStyle.Render(m.msgs.ResultTitle))
	c.blank(1)
	m.paragraph(c, fmt.Sprintf(m.msgs.ResultFmt, s.AttemptsCompleted), textStyle)
	c.blank(1)
	c.center(headerStyle.Render(m.msgs.StatsTitle))
	c.center(strings.Join(stats.ResultLines(m.msgs, s, attempts), "\n"))
	c.center(noteStyle.Render(stats.Strip(attempts)))
	c.blank(1)
	c.hit(hitStart, c.center(buttonStyle.Render(m.msgs.Restart)))
	c.blank(1)
	m.paragraph(c, m.msgs.Note, noteStyle)
	c.blank(1)
	c.center(m.help.ShortHelpView([]key.Binding{m.keys.Start, m.keys.Quit}))
	c.middle(m.height)
}

func (m *Model) renderFeedback(fb tap.Feedback) string {
	bg := failColor
	if fb.Success() {
		bg = successColor
	}
	style := lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color("#FFFFFF"))
	lines := wrapText(m.msgs.Feedback(fb.Outcome), m.contentWidth())
	message := style.Bold(true).Align(lipgloss.Center).Render(strings.Join(lines, "\n"))
	wait := style.Render(m.spinner.View() + " " + m.msgs.Wait)
	content := lipgloss.JoinVertical(lipgloss.Center, message, style.Render(" "), wait)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content,
		lipgloss.WithWhitespaceBackground(bg))
}

func (m *Model) paragraph(c *canvas, text string, style lipgloss.Style) {
	for _, line := range wrapText(text, m.contentWidth()) {
		c.center(style.Render(line))
	}
}

func (m *Model) contentWidth() int {
	w := int(float64(m.width) * 0.70)
	if w < 1 {
		w = 1
	}
	return w
}

func textWidth(s string) int {
	return lipgloss.Width(s)
}
