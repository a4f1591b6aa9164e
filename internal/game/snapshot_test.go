package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotReflectsResolvedEntities(t *testing.T) {
	g := newFixedGame(t, fruit, &lowRand{})

	activateAt(t, g, locate(t, g, "apple"))
	activateAt(t, g, bracketPoint(t, g, 1, 0)) // removes chair

	s := g.Snapshot()
	assert.Equal(t, 3, s.Attempts)
	assert.Equal(t, 4, s.StartingAttempts)
	assert.Equal(t, 5, s.WordLength)
	assert.Len(t, s.Entries, 2)
	assert.True(t, s.Playing)

	cells := s.Columns[0].Cells
	for i := 102; i < 107; i++ {
		assert.True(t, cells[i].Blank, "apple cell %d", i)
		assert.True(t, cells[i].Revealed, "apple cell %d", i)
	}
	assert.False(t, cells[0].Blank, "mango untouched")
	assert.Equal(t, byte('m'), cells[0].Char)

	right := s.Columns[1].Cells
	for i := 0; i < 5; i++ {
		assert.True(t, right[i].Blank)
		assert.False(t, right[i].Revealed, "removed duds are not revealed")
	}

	// consumed bracket pair: whole span blanked
	b := g.Column(1).Entities()[2]
	require.Equal(t, KindBrackets, b.Kind)
	require.True(t, b.Consumed)
	for i := b.Start; i < b.Start+b.Length; i++ {
		assert.True(t, right[i].Blank)
	}
	assert.Equal(t, b.Open, right[b.Start].Char)
}

func TestSnapshotCursor(t *testing.T) {
	g := newFixedGame(t, fruit, &lowRand{})

	p := locate(t, g, "mango")
	require.NoError(t, g.Update(Event{Kind: PointAt, X: p.X + 1, Y: p.Y}))
	s := g.Snapshot()
	require.True(t, s.InColumn)
	assert.Equal(t, 0, s.CursorColumn)
	assert.Equal(t, byte('a'), s.CursorChar)
	require.NotNil(t, s.Under)
	assert.Equal(t, "mango", s.Under.Word)
	assert.True(t, s.Highlighted)

	activateAt(t, g, locate(t, g, "apple"))
	s = g.Snapshot()
	require.NotNil(t, s.Under)
	assert.Equal(t, "apple", s.Under.Word)
	assert.False(t, s.Highlighted, "guessed words stay addressable but unhighlighted")

	require.NoError(t, g.Update(Event{Kind: PointAt, X: 0, Y: 0}))
	s = g.Snapshot()
	assert.False(t, s.InColumn)
	assert.Nil(t, s.Under)
}

func TestSnapshotIsDetached(t *testing.T) {
	g := newFixedGame(t, fruit, &lowRand{})
	s := g.Snapshot()
	s.Columns[0].Cells[0].Char = '#'
	s.Columns[0].Addresses[0] = 0

	again := g.Snapshot()
	assert.Equal(t, byte('m'), again.Columns[0].Cells[0].Char)
	assert.Equal(t, uint16(0xF000), again.Columns[0].Addresses[0])
}
