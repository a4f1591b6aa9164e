package game

// Cell is one buffer character with its derived display state.
type Cell struct {
	Char     byte
	Revealed bool // part of a word that has been guessed
	Blank    bool // covered by a resolved entity; drawn as a placeholder
}

// ColumnView is the read-only picture of a column.
type ColumnView struct {
	Addresses []uint16
	Cells     []Cell
}

// Snapshot is everything a renderer needs for one frame. It shares no
// memory with the Game.
type Snapshot struct {
	Session          string
	Attempts         int
	StartingAttempts int
	WordLength       int
	Layout           Layout

	Cursor       Point
	CursorColumn int
	InColumn     bool
	CursorChar   byte // buffer character under the cursor when InColumn

	Columns [2]ColumnView

	Under       *Entity // live entity under the cursor
	UnderColumn int
	Highlighted bool

	Entries []Entry
	Outcome Outcome
	Playing bool
}

// Snapshot captures the current state for rendering.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Session:          g.ID,
		Attempts:         g.attempts,
		StartingAttempts: g.cfg.StartingAttempts,
		WordLength:       g.cfg.Difficulty,
		Layout:           g.cfg.Layout,
		Cursor:           g.cursor,
		Entries:          g.Entries(),
		Outcome:          g.outcome,
		Playing:          g.playing,
	}
	for i, c := range g.columns {
		s.Columns[i] = c.view()
	}

	if col, idx, ok := g.cfg.Layout.BufferIndex(g.cursor); ok {
		s.InColumn = true
		s.CursorColumn = col
		s.CursorChar = g.columns[col].buffer[idx]
	}
	if ref, ok := g.entityRefAt(g.cursor); ok {
		e := *g.entity(ref)
		s.Under = &e
		s.UnderColumn = ref.col
		s.Highlighted = e.Highlighted()
	}
	return s
}

func (c *Column) view() ColumnView {
	cells := make([]Cell, len(c.buffer))
	for i, b := range c.buffer {
		cells[i].Char = b
	}
	for _, e := range c.entities {
		start, end := e.Span()
		switch {
		case e.Kind == KindWord && (e.Guessed || e.Removed):
			for i := start; i < end; i++ {
				cells[i].Blank = true
				cells[i].Revealed = e.Guessed
			}
		case e.Kind == KindBrackets && e.Consumed:
			for i := start; i < end; i++ {
				cells[i].Blank = true
			}
		}
	}
	return ColumnView{
		Addresses: append([]uint16(nil), c.Addresses...),
		Cells:     cells,
	}
}
