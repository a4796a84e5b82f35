package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/wordladder/internal/ladder"
	"github.com/verte-zerg/wordladder/internal/lexicon"
)

func testEngines(t *testing.T) ladder.EngineFunc {
	t.Helper()
	return ladder.Cached(func(n int) (*ladder.Engine, error) {
		lex, err := lexicon.New(n, "CAT", "COT", "COG", "DOG", "BAT")
		if err != nil {
			return nil, err
		}
		return ladder.New(lex), nil
	})
}

func typeInto(m *Model, s string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestSubmitSolvesLadder(t *testing.T) {
	m := NewModel("words.txt", testEngines(t))
	typeInto(m, "cat")
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeInto(m, "dog")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected search command")
	}
	if !strings.Contains(m.View(), "Searching") {
		t.Fatalf("expected searching state in view")
	}
	m.Update(cmd())

	out := m.View()
	for _, needle := range []string{"CAT", "COT", "COG", "DOG", "3 steps", "over 5 words"} {
		if !strings.Contains(out, needle) {
			t.Fatalf("expected %q in view: %s", needle, out)
		}
	}
}

func TestSubmitNoSolution(t *testing.T) {
	m := NewModel("words.txt", testEngines(t))
	m.inputs[inputStart].SetValue("cat")
	m.inputs[inputEnd].SetValue("xyz")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected search command")
	}
	m.Update(cmd())
	if !strings.Contains(m.View(), "No Solution") {
		t.Fatalf("expected no-solution message: %s", m.View())
	}
}

func TestSubmitRejectsIncompleteForm(t *testing.T) {
	m := NewModel("words.txt", testEngines(t))
	m.inputs[inputStart].SetValue("cat")

	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Fatalf("expected no command for incomplete form")
	}
	if !strings.Contains(m.View(), "enter both") {
		t.Fatalf("expected form error in view")
	}

	m.inputs[inputEnd].SetValue("cold")
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Fatalf("expected no command for unequal lengths")
	}
	if !strings.Contains(m.View(), "equal length") {
		t.Fatalf("expected length error in view")
	}
}

func TestLoadErrorShown(t *testing.T) {
	m := NewModel("missing.txt", func(int) (*ladder.Engine, error) {
		return nil, errors.New("no such file")
	})
	m.inputs[inputStart].SetValue("cat")
	m.inputs[inputEnd].SetValue("dog")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(cmd())
	if !strings.Contains(m.View(), "failed to load dictionary: no such file") {
		t.Fatalf("expected load error in view: %s", m.View())
	}
}

func TestToggleFocus(t *testing.T) {
	m := NewModel("words.txt", testEngines(t))
	if m.focus != inputStart {
		t.Fatalf("expected start input focused")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != inputEnd || !m.inputs[inputEnd].Focused() || m.inputs[inputStart].Focused() {
		t.Fatalf("expected end input focused")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != inputStart {
		t.Fatalf("expected focus to wrap to start")
	}
}

func TestEscQuits(t *testing.T) {
	m := NewModel("words.txt", testEngines(t))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}
