package ladder

import (
	"errors"
	"fmt"

	"github.com/verte-zerg/wordladder/internal/adjacency"
	"github.com/verte-zerg/wordladder/internal/lexicon"
)

// Validation errors.
var (
	ErrEmptyLadder = errors.New("ladder: empty ladder")
	ErrUnknownWord = errors.New("ladder: word not in lexicon")
	ErrNotAdjacent = errors.New("ladder: consecutive words are not one letter apart")
)

// Validate checks that every word of l is in lex and that consecutive words
// differ in exactly one position.
func Validate(l Ladder, lex *lexicon.Lexicon) error {
	if len(l) == 0 {
		return ErrEmptyLadder
	}
	for i, word := range l {
		if !lex.Contains(word) {
			return fmt.Errorf("%w: %q at position %d", ErrUnknownWord, word, i+1)
		}
		if i == 0 {
			continue
		}
		prev := lexicon.Normalize(l[i-1])
		if !adjacency.Adjacent(prev, lexicon.Normalize(word)) {
			return fmt.Errorf("%w: %q -> %q", ErrNotAdjacent, prev, lexicon.Normalize(word))
		}
	}
	return nil
}
