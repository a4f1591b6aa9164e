package game

// ColumnIndex reports which column, if any, the screen point lies in.
func (l Layout) ColumnIndex(p Point) (int, bool) {
	if p.Y < l.FirstRow || p.Y >= l.FirstRow+l.Rows {
		return 0, false
	}
	for col := 0; col < 2; col++ {
		x := l.WordX(col)
		if x <= p.X && p.X < x+l.WordWidth {
			return col, true
		}
	}
	return 0, false
}

// BufferIndex converts a screen point into a column and a linear offset
// into that column's buffer.
func (l Layout) BufferIndex(p Point) (col, index int, ok bool) {
	col, ok = l.ColumnIndex(p)
	if !ok {
		return 0, 0, false
	}
	row := p.Y - l.FirstRow
	return col, row*l.WordWidth + (p.X - l.WordX(col)), true
}

// ScreenPoint is the inverse of BufferIndex.
func (l Layout) ScreenPoint(col, index int) Point {
	return Point{X: l.WordX(col) + index%l.WordWidth, Y: l.FirstRow + index/l.WordWidth}
}

// entityRef locates an entity inside a game's columns.
type entityRef struct {
	col, n int
}

func (g *Game) entityRefAt(p Point) (entityRef, bool) {
	col, idx, ok := g.cfg.Layout.BufferIndex(p)
	if !ok {
		return entityRef{}, false
	}
	n, ok := g.columns[col].entityAt(idx)
	if !ok {
		return entityRef{}, false
	}
	return entityRef{col: col, n: n}, true
}

func (g *Game) entity(ref entityRef) *Entity {
	return &g.columns[ref.col].entities[ref.n]
}

// EntityAtCursor returns a copy of the live entity under the cursor.
func (g *Game) EntityAtCursor() (Entity, bool) {
	ref, ok := g.entityRefAt(g.cursor)
	if !ok {
		return Entity{}, false
	}
	return *g.entity(ref), true
}

// CursorColumn reports which column the cursor is over, if any.
func (g *Game) CursorColumn() (int, bool) {
	return g.cfg.Layout.ColumnIndex(g.cursor)
}
