// Package tui provides the Bubble Tea ladder explorer.
package tui

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/wordladder/internal/ladder"
	"github.com/verte-zerg/wordladder/internal/lexicon"
	"github.com/verte-zerg/wordladder/internal/report"
)

const (
	inputStart = iota
	inputEnd
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	resultStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A")).
			Padding(0, 1)
)

// solvedMsg carries the outcome of a search started from the form.
type solvedMsg struct {
	start  string
	end    string
	ladder ladder.Ladder
	size   int
	err    error
}

// Model implements the interactive explorer: two inputs and the last result.
type Model struct {
	dictPath  string
	engineFor ladder.EngineFunc

	inputs []textinput.Model
	focus  int

	width int

	solving bool
	last    *solvedMsg
	errMsg  string
}

// NewModel constructs an explorer over the dictionary at dictPath. engineFor
// must be safe for concurrent use.
func NewModel(dictPath string, engineFor ladder.EngineFunc) *Model {
	m := &Model{
		dictPath:  dictPath,
		engineFor: engineFor,
		inputs: []textinput.Model{
			newWordInput("Start: ", "cold"),
			newWordInput("End:   ", "warm"),
		},
	}
	m.inputs[inputStart].Focus()
	return m
}

func newWordInput(prompt, placeholder string) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.Placeholder = placeholder
	input.CharLimit = 64
	return input
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case solvedMsg:
		m.solving = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			m.last = nil
			return m, nil
		}
		m.errMsg = ""
		m.last = &msg
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab, tea.KeyShiftTab, tea.KeyUp, tea.KeyDown:
			return m, m.toggleFocus()
		case tea.KeyEnter:
			return m, m.submit()
		}
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) toggleFocus() tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	return m.inputs[m.focus].Focus()
}

// submit validates the form and returns the search command, or nil when the
// form is incomplete or a search is already running.
func (m *Model) submit() tea.Cmd {
	if m.solving {
		return nil
	}
	start := lexicon.Normalize(m.inputs[inputStart].Value())
	end := lexicon.Normalize(m.inputs[inputEnd].Value())
	switch {
	case start == "" || end == "":
		m.errMsg = "enter both a start and an end word"
		return nil
	case utf8.RuneCountInString(start) != utf8.RuneCountInString(end):
		m.errMsg = "start and end words must have equal length"
		return nil
	}
	m.errMsg = ""
	m.solving = true
	engineFor := m.engineFor
	return func() tea.Msg {
		engine, err := engineFor(utf8.RuneCountInString(start))
		if err != nil {
			return solvedMsg{start: start, end: end, err: fmt.Errorf("failed to load dictionary: %w", err)}
		}
		l, err := engine.MinLadder(context.Background(), start, end)
		return solvedMsg{start: start, end: end, ladder: l, size: engine.Lexicon().Size(), err: err}
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Word Ladder"))
	b.WriteString("  ")
	b.WriteString(footerStyle.Render(m.dictPath))
	b.WriteString("\n\n")
	for _, input := range m.inputs {
		b.WriteString(input.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.solving:
		b.WriteString(footerStyle.Render("Searching..."))
		b.WriteString("\n")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	case m.last != nil:
		b.WriteString(m.renderResult())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m *Model) renderResult() string {
	var buf bytes.Buffer
	if err := report.Render(&buf, m.last.ladder, true); err != nil {
		return errorStyle.Render(err.Error())
	}
	content := strings.TrimSuffix(buf.String(), "\n")
	meta := footerStyle.Render(fmt.Sprintf("%s -> %s over %d words", m.last.start, m.last.end, m.last.size))
	style := resultStyle
	if m.width > 4 {
		style = style.Width(m.width - 2)
	}
	return style.Render(content + "\n" + meta)
}

func (m *Model) renderFooter() string {
	return footerStyle.Render("enter: solve  tab: switch field  esc: quit")
}
