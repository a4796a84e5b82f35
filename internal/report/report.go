// Package report renders ladders and batch results.
package report

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/verte-zerg/wordladder/internal/ladder"
)

const noSolution = "Word Ladder is empty - No Solution"

// ColorMode selects when styled output is produced.
type ColorMode string

// Color modes accepted by --color.
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

var (
	endpointStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	stepStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	countStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	emptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

// ParseColorMode validates a --color value.
func ParseColorMode(s string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	case "":
		return ColorAuto, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
	}
}

// ShouldUseColor resolves mode for writer w. NO_COLOR disables color in
// every mode except always.
func ShouldUseColor(w io.Writer, mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// Format returns the one-line report for l, words in start-to-end order.
func Format(l ladder.Ladder) string {
	if len(l) == 0 {
		return noSolution
	}
	return fmt.Sprintf("A Shortest Word Ladder (%d steps) is: %s", l.Steps(), strings.Join(l, " "))
}

// Render writes the report for l to w, styled when color is set.
func Render(w io.Writer, l ladder.Ladder, color bool) error {
	if !color {
		_, err := fmt.Fprintln(w, Format(l))
		return err
	}
	if len(l) == 0 {
		_, err := fmt.Fprintln(w, emptyStyle.Render(noSolution))
		return err
	}
	words := make([]string, len(l))
	for i, word := range l {
		if i == 0 || i == len(l)-1 {
			words[i] = endpointStyle.Render(word)
		} else {
			words[i] = stepStyle.Render(word)
		}
	}
	steps := countStyle.Render(fmt.Sprintf("(%d steps)", l.Steps()))
	_, err := fmt.Fprintf(w, "A Shortest Word Ladder %s is: %s\n", steps, strings.Join(words, " "))
	return err
}

// RenderBatch writes an aligned table with one row per result.
func RenderBatch(w io.Writer, results []ladder.Result) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "No pairs found.")
		return err
	}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		steps, path := "-", noSolution
		switch {
		case r.Err != nil:
			path = "error: " + r.Err.Error()
		case len(r.Ladder) > 0:
			steps = strconv.Itoa(r.Ladder.Steps())
			path = strings.Join(r.Ladder, " ")
		}
		rows = append(rows, []string{r.Pair.Start, r.Pair.End, steps, path})
	}
	lines := formatTable([]string{"Start", "End", "Steps", "Ladder"}, rows, map[int]bool{2: true})
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
