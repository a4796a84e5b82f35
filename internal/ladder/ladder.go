// Package ladder finds minimum-length word ladders with breadth-first search.
package ladder

import (
	"context"
	"io"
	"log/slog"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/verte-zerg/wordladder/internal/adjacency"
	"github.com/verte-zerg/wordladder/internal/lexicon"
)

// Ladder is a sequence of words from start to end, each one letter apart
// from the next. An empty Ladder means no solution.
type Ladder []string

// Steps returns the number of single-letter changes, or -1 for an empty ladder.
func (l Ladder) Steps() int {
	return len(l) - 1
}

// Engine searches one lexicon. It is safe for concurrent use; every search
// allocates its own state.
type Engine struct {
	lex    *lexicon.Lexicon
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for search diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New returns an Engine over lex.
func New(lex *lexicon.Lexicon, opts ...Option) *Engine {
	e := &Engine{
		lex:    lex,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Lexicon returns the engine's word set.
func (e *Engine) Lexicon() *lexicon.Lexicon {
	return e.lex
}

// search holds the state of a single MinLadder call.
type search struct {
	visited *roaring.Bitmap
	parent  map[uint32]uint32
	queue   []uint32
}

// MinLadder returns a minimum-length ladder from start to end. If several
// exist, which one is returned depends on neighbor order, which is fixed for
// a given lexicon. A start word outside the lexicon, or an unreachable end,
// yields an empty Ladder and a nil error. Only cancellation of ctx is an error.
func (e *Engine) MinLadder(ctx context.Context, start, end string) (Ladder, error) {
	start, end = lexicon.Normalize(start), lexicon.Normalize(end)
	startID, ok := e.lex.ID(start)
	if !ok {
		e.logger.Debug("start word not in lexicon", "start", start)
		return Ladder{}, nil
	}
	if start == end {
		return Ladder{start}, nil
	}

	s := &search{
		visited: roaring.New(),
		parent:  map[uint32]uint32{},
		queue:   []uint32{startID},
	}
	s.visited.Add(startID)

	expanded := 0
	for len(s.queue) > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		current := s.queue[0]
		s.queue = s.queue[1:]
		expanded++

		for _, word := range adjacency.Neighbors(e.lex.Word(current), e.lex) {
			id, _ := e.lex.ID(word)
			if !s.visited.CheckedAdd(id) {
				continue
			}
			s.parent[id] = current
			if word == end {
				ladder := s.walkBack(e.lex, id)
				e.logger.Debug("ladder found", "start", start, "end", end, "steps", ladder.Steps(), "expanded", expanded)
				return ladder, nil
			}
			s.queue = append(s.queue, id)
		}
	}
	e.logger.Debug("no ladder", "start", start, "end", end, "expanded", expanded)
	return Ladder{}, nil
}

// walkBack follows predecessor links from id to the start word, which is
// the only visited word without a parent, and returns the path start first.
func (s *search) walkBack(lex *lexicon.Lexicon, id uint32) Ladder {
	path := Ladder{lex.Word(id)}
	for cur, ok := s.parent[id]; ok; cur, ok = s.parent[cur] {
		path = append(path, lex.Word(cur))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
