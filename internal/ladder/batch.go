package ladder

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/verte-zerg/wordladder/internal/lexicon"
)

// ErrLengthMismatch marks a pair whose words differ in length.
var ErrLengthMismatch = errors.New("ladder: start and end words differ in length")

// Pair is one start/end query of a batch.
type Pair struct {
	Start string
	End   string
	Line  int
}

// Result is the outcome of one Pair. Err is set for pairs that could not be
// searched; an empty Ladder with a nil Err means no solution.
type Result struct {
	Pair   Pair
	Ladder Ladder
	Err    error
}

// EngineFunc returns the engine for words of the given length.
type EngineFunc func(length int) (*Engine, error)

// Cached wraps fn so each length is loaded at most once. The returned
// function is safe for concurrent use; failed loads are retried.
func Cached(fn EngineFunc) EngineFunc {
	var mu sync.Mutex
	engines := map[int]*Engine{}
	return func(length int) (*Engine, error) {
		mu.Lock()
		defer mu.Unlock()
		if e, ok := engines[length]; ok {
			return e, nil
		}
		e, err := fn(length)
		if err != nil {
			return nil, err
		}
		engines[length] = e
		return e, nil
	}
}

// ParsePairs reads one "START END" pair per line. Blank lines and lines
// starting with # are skipped.
func ParsePairs(r io.Reader) ([]Pair, error) {
	var pairs []Pair
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected 2 words, got %d", lineNo, len(fields))
		}
		pairs = append(pairs, Pair{
			Start: lexicon.Normalize(fields[0]),
			End:   lexicon.Normalize(fields[1]),
			Line:  lineNo,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return pairs, nil
}

// SolveAll searches every pair with at most workers concurrent searches.
// Engines are resolved once per distinct word length before any search
// starts, so a lexicon is shared read-only by all searches of its length.
// Results are returned in input order.
func SolveAll(ctx context.Context, pairs []Pair, engineFor EngineFunc, workers int) ([]Result, error) {
	results := make([]Result, len(pairs))
	engines := map[int]*Engine{}
	for i, p := range pairs {
		results[i].Pair = p
		n := utf8.RuneCountInString(p.Start)
		if n != utf8.RuneCountInString(p.End) {
			results[i].Err = ErrLengthMismatch
			continue
		}
		if _, ok := engines[n]; ok {
			continue
		}
		engine, err := engineFor(n)
		if err != nil {
			return nil, fmt.Errorf("failed to prepare lexicon for length %d: %w", n, err)
		}
		engines[n] = engine
	}

	if workers <= 0 {
		workers = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range results {
		if results[i].Err != nil {
			continue
		}
		i := i
		g.Go(func() error {
			p := results[i].Pair
			engine := engines[utf8.RuneCountInString(p.Start)]
			ladder, err := engine.MinLadder(gctx, p.Start, p.End)
			if err != nil {
				return err
			}
			results[i].Ladder = ladder
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
