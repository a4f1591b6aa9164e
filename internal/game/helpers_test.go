package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/euclio/robco-term/internal/words"
)

// lowRand always draws the lowest value, samples the head of the
// universe and answers OneIn from a script (false once exhausted).
type lowRand struct {
	oneIn []bool
}

func (r *lowRand) IntN(lo, hi int) int { return lo }

func (r *lowRand) Sample(universe []int, k int) []int {
	if k > len(universe) {
		k = len(universe)
	}
	return append([]int(nil), universe[:k]...)
}

func (r *lowRand) OneIn(n int) bool {
	if len(r.oneIn) == 0 {
		return false
	}
	v := r.oneIn[0]
	r.oneIn = r.oneIn[1:]
	return v
}

// fixedWords returns its list verbatim, in order.
type fixedWords []string

func (f fixedWords) WordsOfLength(length, count int) ([]string, error) {
	if len(f) < count {
		return nil, words.ErrInsufficientWords
	}
	return append([]string(nil), f[:count]...), nil
}

// newFixedGame builds a game whose password is list[0].
func newFixedGame(t *testing.T, list []string, rng *lowRand) *Game {
	t.Helper()
	cfg := DefaultConfig(len(list[0]))
	cfg.WordCount = len(list)
	g, err := New(cfg, fixedWords(list), rng)
	require.NoError(t, err)
	require.Equal(t, list[0], g.Answer())
	return g
}

// locate returns the screen point of the first character of word.
func locate(t *testing.T, g *Game, word string) Point {
	t.Helper()
	for col := 0; col < 2; col++ {
		for _, e := range g.Column(col).Entities() {
			if e.Kind == KindWord && e.Word == word {
				return g.Config().Layout.ScreenPoint(col, e.Start)
			}
		}
	}
	t.Fatalf("word %q not placed", word)
	return Point{}
}

// bracketPoint returns the hot index of the n-th bracket pair in col.
func bracketPoint(t *testing.T, g *Game, col, n int) Point {
	t.Helper()
	for _, e := range g.Column(col).Entities() {
		if e.Kind != KindBrackets {
			continue
		}
		if n == 0 {
			return g.Config().Layout.ScreenPoint(col, e.Start)
		}
		n--
	}
	t.Fatalf("no bracket pair %d in column %d", n, col)
	return Point{}
}

func activateAt(t *testing.T, g *Game, p Point) {
	t.Helper()
	require.NoError(t, g.Update(Event{Kind: PointAt, X: p.X, Y: p.Y}))
	require.NoError(t, g.Update(Event{Kind: Activate}))
}
