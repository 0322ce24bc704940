// Package tui is the live terminal preview of an animation. It plays
// the frame loop on a braille surface at the configured frame rate,
// with pause, scrub and restart controls.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/tweenplot/internal/anim"
	"github.com/san-kum/tweenplot/internal/engine"
	"github.com/san-kum/tweenplot/internal/render"
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	gaugeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model plays an Animator on a BrailleSurface.
type Model struct {
	animator *engine.Animator
	surf     *render.BrailleSurface
	fps      int
	running  bool
	last     anim.FrameState
	err      error
}

// NewModel builds the preview model.
func NewModel(a *engine.Animator, surf *render.BrailleSurface, fps int) Model {
	return Model{
		animator: a,
		surf:     surf,
		fps:      fps,
		running:  true,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.err = m.animator.Reset()
			m.last = anim.FrameState{}
		case "[":
			m.err = m.animator.Seek(m.animator.Frame() - 1)
		case "]":
			m.err = m.animator.Seek(m.animator.Frame() + 1)
		}
	case TickMsg:
		if m.running && m.err == nil {
			st, err := m.animator.Step()
			if err != nil {
				m.err = err
			} else {
				m.last = st
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("error: %v\n", m.err)
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(m.surf.Title()))
	b.WriteByte('\n')
	b.WriteString(canvasStyle.Render(m.surf.Text()))
	b.WriteByte('\n')

	frame := m.animator.Frame()
	total := m.animator.Total()
	b.WriteString(labelStyle.Render("frame "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%d/%d", frame, total)))
	b.WriteString(labelStyle.Render("  phase "))
	b.WriteString(valueStyle.Render(m.last.Phase.String()))
	if m.last.Phase == anim.PhaseTransition {
		b.WriteString("  ")
		b.WriteString(gaugeStyle.Render(gauge(1 - m.last.Ratio)))
	}
	if !m.running {
		b.WriteString(labelStyle.Render("  paused"))
	}
	b.WriteString(helpStyle.Render("\nspace pause · [ ] scrub · r restart · q quit"))
	b.WriteByte('\n')
	return b.String()
}

// gauge renders transition progress as a fixed-width bar.
func gauge(progress float64) string {
	const width = 20
	filled := int(progress * width)
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// Run plays the preview until the user quits.
func Run(a *engine.Animator, surf *render.BrailleSurface, fps int) error {
	p := tea.NewProgram(NewModel(a, surf, fps))
	_, err := p.Run()
	return err
}
