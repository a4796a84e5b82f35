// Package lexicon provides token filters applied while loading dictionaries.
package lexicon

import "unicode"

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// LettersOnly rejects words containing anything other than Unicode letters.
func LettersOnly(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// ASCIIOnly rejects words containing anything other than A-Z.
func ASCIIOnly(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch < 'A' || ch > 'Z' {
			return false
		}
	}
	return true
}
