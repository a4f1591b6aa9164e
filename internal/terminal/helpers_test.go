package terminal

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/euclio/robco-term/internal/game"
	"github.com/euclio/robco-term/internal/random"
	"github.com/euclio/robco-term/internal/words"
)

var dictionary = []string{
	"apple", "mango", "chair", "grape", "lemon", "melon",
	"peach", "plums", "table", "stool", "couch", "shelf",
}

func newGame(t *testing.T, seed uint64) *game.Game {
	t.Helper()
	rng := random.New(seed)
	g, err := game.New(game.DefaultConfig(5), words.NewList(dictionary, rng), rng)
	require.NoError(t, err)
	return g
}

// wordPoint returns the screen point of the first letter of word.
func wordPoint(t *testing.T, g *game.Game, word string) game.Point {
	t.Helper()
	for col := 0; col < 2; col++ {
		for _, e := range g.Column(col).Entities() {
			if e.Kind == game.KindWord && e.Word == word {
				return g.Config().Layout.ScreenPoint(col, e.Start)
			}
		}
	}
	t.Fatalf("word %q not placed", word)
	return game.Point{}
}

// wrongWord returns some placed word that is not the password.
func wrongWord(t *testing.T, g *game.Game) string {
	t.Helper()
	for _, w := range g.Column(0).Words() {
		if w != g.Answer() {
			return w
		}
	}
	t.Fatal("no wrong word")
	return ""
}

// consoleText reads the console area of row y.
func consoleText(f *Frame, l game.Layout, y int) string {
	row := []rune(f.Row(y))
	x := consoleX(l)
	if len(row) <= x {
		return ""
	}
	return string(row[x:])
}
