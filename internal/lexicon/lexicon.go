// Package lexicon loads fixed-length word sets from dictionary files.
package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"
)

var (
	// ErrUnreadable is returned when a dictionary source cannot be opened or read.
	ErrUnreadable = errors.New("dictionary could not be read")
	// ErrInvalidLength is returned when the requested word length is not positive.
	ErrInvalidLength = errors.New("word length must be > 0")
)

// MaxTokenSize is the longest whitespace-delimited token Read accepts. Longer
// tokens make the whole read fail with ErrUnreadable.
const MaxTokenSize = 1 << 20

// Lexicon is an immutable set of uppercase words that all share one length.
type Lexicon struct {
	length int
	words  []string
	ids    map[string]uint32
}

// Option configures how tokens are accepted while loading.
type Option func(*loadOptions)

type loadOptions struct {
	filter FilterFunc
}

// WithFilter keeps only tokens accepted by fn. The filter sees normalized
// words. Multiple filters must all accept a token.
func WithFilter(fn FilterFunc) Option {
	return func(o *loadOptions) {
		if fn == nil {
			return
		}
		prev := o.filter
		o.filter = func(word string) bool {
			return prev(word) && fn(word)
		}
	}
}

// Normalize trims surrounding whitespace and uppercases word.
func Normalize(word string) string {
	return strings.ToUpper(strings.TrimSpace(word))
}

// Read builds a Lexicon from whitespace-delimited tokens in r, keeping only
// tokens of exactly length runes.
func Read(r io.Reader, length int, opts ...Option) (*Lexicon, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLength, length)
	}
	o := loadOptions{filter: func(string) bool { return true }}
	for _, opt := range opts {
		opt(&o)
	}

	seen := map[string]struct{}{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxTokenSize)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		token := scanner.Text()
		if utf8.RuneCountInString(token) != length {
			continue
		}
		word := Normalize(token)
		if !o.filter(word) {
			continue
		}
		seen[word] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}

	words := make([]string, 0, len(seen))
	for word := range seen {
		words = append(words, word)
	}
	return build(length, words), nil
}

// New builds a Lexicon directly from words. Words of another length are dropped.
func New(length int, words ...string) (*Lexicon, error) {
	return Read(strings.NewReader(strings.Join(words, "\n")), length)
}

func build(length int, words []string) *Lexicon {
	sort.Strings(words)
	ids := make(map[string]uint32, len(words))
	for i, word := range words {
		ids[word] = uint32(i)
	}
	return &Lexicon{length: length, words: words, ids: ids}
}

// Contains reports whether word was loaded.
func (l *Lexicon) Contains(word string) bool {
	_, ok := l.ids[Normalize(word)]
	return ok
}

// Size returns the number of distinct words.
func (l *Lexicon) Size() int {
	return len(l.words)
}

// Length returns the shared length of every word in the lexicon.
func (l *Lexicon) Length() int {
	return l.length
}

// Words returns a sorted copy of the lexicon's words.
func (l *Lexicon) Words() []string {
	out := make([]string, len(l.words))
	copy(out, l.words)
	return out
}

// ID returns the dense identifier of word, its rank in sorted order.
func (l *Lexicon) ID(word string) (uint32, bool) {
	id, ok := l.ids[Normalize(word)]
	return id, ok
}

// Word returns the word with the given identifier.
func (l *Lexicon) Word(id uint32) string {
	return l.words[id]
}

// Each calls fn for every word in sorted order until fn returns false.
func (l *Lexicon) Each(fn func(id uint32, word string) bool) {
	for i, word := range l.words {
		if !fn(uint32(i), word) {
			return
		}
	}
}
