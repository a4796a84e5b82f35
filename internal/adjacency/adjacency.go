// Package adjacency decides which lexicon words are one letter apart.
package adjacency

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/verte-zerg/wordladder/internal/lexicon"
)

// ErrLengthMismatch is returned when the Hamming distance of words with
// different lengths is requested.
var ErrLengthMismatch = errors.New("adjacency: words have different lengths")

// HammingDistance counts the rune positions at which a and b differ.
// It returns -1 and ErrLengthMismatch when the lengths differ; -1 is never
// a valid distance.
func HammingDistance(a, b string) (int, error) {
	na, nb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	if na != nb {
		return -1, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, na, nb)
	}
	if a == b {
		return 0, nil
	}
	dist := 0
	for len(a) > 0 {
		ra, sa := utf8.DecodeRuneInString(a)
		rb, sb := utf8.DecodeRuneInString(b)
		// Invalid bytes all decode to RuneError; compare them as raw bytes.
		if ra != rb || (ra == utf8.RuneError && a[:sa] != b[:sb]) {
			dist++
		}
		a, b = a[sa:], b[sb:]
	}
	return dist, nil
}

// Adjacent reports whether a and b have the same length and differ in
// exactly one position.
func Adjacent(a, b string) bool {
	d, err := HammingDistance(a, b)
	return err == nil && d == 1
}

// Neighbors returns the lexicon words at distance exactly one from word, in
// lexicon order. word need not be a member; a word of another length has no
// neighbors.
func Neighbors(word string, lex *lexicon.Lexicon) []string {
	word = lexicon.Normalize(word)
	if utf8.RuneCountInString(word) != lex.Length() {
		return nil
	}
	var out []string
	lex.Each(func(_ uint32, candidate string) bool {
		if Adjacent(word, candidate) {
			out = append(out, candidate)
		}
		return true
	})
	return out
}
