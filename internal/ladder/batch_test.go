package ladder

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/wordladder/internal/lexicon"
)

func TestParsePairs(t *testing.T) {
	input := "# pairs\ncat dog\n\n  cold   warm  \n"
	pairs, err := ParsePairs(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []Pair{
		{Start: "CAT", End: "DOG", Line: 2},
		{Start: "COLD", End: "WARM", Line: 4},
	}, pairs)
}

func TestParsePairsMalformed(t *testing.T) {
	_, err := ParsePairs(strings.NewReader("cat dog\ncat\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestSolveAll(t *testing.T) {
	dict := map[int][]string{
		3: {"CAT", "COT", "COG", "DOG", "BAT"},
		4: {"COLD", "CORD", "CARD", "WARD", "WARM"},
	}
	loads := map[int]int{}
	engineFor := func(n int) (*Engine, error) {
		loads[n]++
		lex, err := lexicon.New(n, dict[n]...)
		if err != nil {
			return nil, err
		}
		return New(lex), nil
	}
	pairs := []Pair{
		{Start: "CAT", End: "DOG", Line: 1},
		{Start: "COLD", End: "WARM", Line: 2},
		{Start: "CAT", End: "WARM", Line: 3},
		{Start: "BAT", End: "XYZ", Line: 4},
		{Start: "DOG", End: "BAT", Line: 5},
	}

	results, err := SolveAll(context.Background(), pairs, engineFor, 3)
	require.NoError(t, err)
	require.Len(t, results, len(pairs))
	for i, r := range results {
		assert.Equal(t, pairs[i], r.Pair)
	}
	assert.Equal(t, Ladder{"CAT", "COT", "COG", "DOG"}, results[0].Ladder)
	assert.Equal(t, Ladder{"COLD", "CORD", "CARD", "WARD", "WARM"}, results[1].Ladder)
	require.ErrorIs(t, results[2].Err, ErrLengthMismatch)
	assert.Empty(t, results[3].Ladder)
	require.NoError(t, results[3].Err)
	assert.Equal(t, 4, results[4].Ladder.Steps())

	assert.Equal(t, map[int]int{3: 1, 4: 1}, loads)
}

func TestSolveAllEngineError(t *testing.T) {
	boom := errors.New("boom")
	_, err := SolveAll(context.Background(), []Pair{{Start: "CAT", End: "DOG"}}, func(int) (*Engine, error) {
		return nil, boom
	}, 1)
	require.ErrorIs(t, err, boom)
}

func TestSolveAllCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	engineFor := func(n int) (*Engine, error) {
		lex, err := lexicon.New(n, "CAT", "COT", "COG", "DOG")
		if err != nil {
			return nil, err
		}
		return New(lex), nil
	}
	_, err := SolveAll(ctx, []Pair{{Start: "CAT", End: "DOG"}}, engineFor, 0)
	require.ErrorIs(t, err, context.Canceled)
}

func TestCached(t *testing.T) {
	calls := 0
	fail := true
	engineFor := Cached(func(n int) (*Engine, error) {
		calls++
		if fail {
			return nil, errors.New("transient")
		}
		lex, err := lexicon.New(n, "CAT")
		if err != nil {
			return nil, err
		}
		return New(lex), nil
	})

	_, err := engineFor(3)
	require.Error(t, err)
	fail = false
	first, err := engineFor(3)
	require.NoError(t, err)
	second, err := engineFor(3)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 2, calls)
}
