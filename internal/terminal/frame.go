// internal/terminal/frame.go
//
// Frame composition.
// Responsibilities:
//   - Turn a game.Snapshot into a grid of characters and attributes.
//   - Lay out the header, address columns, console and entry log the way
//     the classic terminal does.
//   - Draw the end screens.
//
// A Frame knows nothing about tcell, so layout can be tested directly.

package terminal

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/euclio/robco-term/internal/game"
)

const (
	headerText   = "ROBCO INDUSTRIES (TM) TERMLINK PROTOCOL"
	promptText   = "ENTER PASSWORD NOW"
	footerText   = "Press Esc to exit"
	grantedText  = "ACCESS GRANTED"
	lockedText   = "TERMINAL LOCKED"
	lockedDetail = "PLEASE CONTACT AN ADMINISTRATOR"
	blankGlyph   = '.'
	attemptGlyph = "█"
)

// Cell is one character position of a Frame.
type Cell struct {
	Ch      rune
	Reverse bool
}

// Frame is a composed screen.
type Frame struct {
	Width, Height int
	Cells         []Cell

	Cursor        game.Point
	CursorVisible bool
}

func newFrame(w, h int) *Frame {
	f := &Frame{Width: w, Height: h, Cells: make([]Cell, w*h)}
	for i := range f.Cells {
		f.Cells[i].Ch = ' '
	}
	return f
}

// At returns the cell at (x, y), or a blank for points off the frame.
func (f *Frame) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return Cell{Ch: ' '}
	}
	return f.Cells[y*f.Width+x]
}

// Row returns line y as text with trailing spaces removed.
func (f *Frame) Row(y int) string {
	if y < 0 || y >= f.Height {
		return ""
	}
	var b strings.Builder
	for _, c := range f.Cells[y*f.Width : (y+1)*f.Width] {
		b.WriteRune(c.Ch)
	}
	return strings.TrimRight(b.String(), " ")
}

// put writes s from (x, y), clipping at the frame edge.
func (f *Frame) put(x, y int, s string, reverse bool) {
	if y < 0 || y >= f.Height {
		return
	}
	for _, r := range s {
		if x >= 0 && x < f.Width {
			f.Cells[y*f.Width+x] = Cell{Ch: r, Reverse: reverse}
		}
		x++
	}
}

// centered writes s centered on line y.
func (f *Frame) centered(y int, s string) {
	f.put((f.Width-utf8.RuneCountInString(s))/2, y, s, false)
}

// Compose lays out snapshot s on a w x h screen. banner is drawn above
// the access granted message.
func Compose(s game.Snapshot, banner []string, w, h int) *Frame {
	f := newFrame(w, h)
	switch s.Outcome {
	case game.OutcomeWon:
		for i, line := range banner {
			f.centered(i, line)
		}
		f.centered(len(banner), grantedText)
		return f
	case game.OutcomeLost:
		bottom := s.Layout.FirstRow + s.Layout.Rows
		f.centered(bottom/2, lockedText)
		f.centered((bottom+1)/2, lockedDetail)
		return f
	}

	l := s.Layout
	f.put(l.Margin, l.Margin, headerText, false)
	f.put(l.Margin, l.Margin+1, promptText, false)
	f.put(l.Margin, l.Margin+3, attemptsLine(s.Attempts), false)
	f.put(0, h-1, footerText, false)

	for col := range s.Columns {
		drawColumn(f, s, col)
	}
	drawConsole(f, s)

	f.Cursor = s.Cursor
	f.CursorVisible = true
	return f
}

func attemptsLine(n int) string {
	marks := make([]string, n)
	for i := range marks {
		marks[i] = attemptGlyph
	}
	return fmt.Sprintf("%d ATTEMPT(S) LEFT: %s", n, strings.Join(marks, " "))
}

// glyph is how a buffer cell is displayed: uppercase, or a placeholder once
// its entity is resolved.
func glyph(c game.Cell) rune {
	if c.Blank {
		return blankGlyph
	}
	if 'a' <= c.Char && c.Char <= 'z' {
		return rune(c.Char - 'a' + 'A')
	}
	return rune(c.Char)
}

func drawColumn(f *Frame, s game.Snapshot, col int) {
	l := s.Layout
	view := s.Columns[col]

	hiStart, hiEnd := -1, -1
	if s.Under != nil && s.Highlighted && s.UnderColumn == col {
		hiStart, hiEnd = s.Under.Span()
	}

	for row, addr := range view.Addresses {
		y := l.FirstRow + row
		f.put(l.AddressX(col), y, fmt.Sprintf("0x%04X", addr), false)
		for i := 0; i < l.WordWidth; i++ {
			idx := row*l.WordWidth + i
			if idx >= len(view.Cells) {
				break
			}
			c := string(glyph(view.Cells[idx]))
			f.put(l.WordX(col)+i, y, c, hiStart <= idx && idx < hiEnd)
		}
	}
}

// consoleX is the left edge of the console, right of both columns.
func consoleX(l game.Layout) int {
	return l.Margin + 2*l.ColumnWidth() + l.ColumnPadding + l.Margin
}

func drawConsole(f *Frame, s game.Snapshot) {
	l := s.Layout
	x := consoleX(l)
	bottom := l.FirstRow + l.Rows - 1

	f.put(x, bottom, ">"+consoleEntry(s), false)

	// entries stack upward from just above the console, newest lowest
	row := bottom - 2
	for i := len(s.Entries) - 1; i >= 0 && row >= l.FirstRow; i-- {
		lines := entryLines(s.Entries[i], s.WordLength)
		for j := range lines {
			y := row - (len(lines) - 1 - j)
			if y >= l.FirstRow {
				f.put(x, y, lines[j], false)
			}
		}
		row -= len(lines)
	}
}

// consoleEntry echoes what the cursor is over: the word, the bracket
// opener, or the character under it.
func consoleEntry(s game.Snapshot) string {
	if s.Under != nil {
		if s.Under.Kind == game.KindWord {
			return strings.ToUpper(s.Under.Word)
		}
		return string(s.Under.Open)
	}
	if !s.InColumn {
		return ""
	}
	_, idx, ok := s.Layout.BufferIndex(s.Cursor)
	if !ok {
		return ""
	}
	return string(glyph(s.Columns[s.CursorColumn].Cells[idx]))
}

// entryLines renders one log record, top line first.
func entryLines(e game.Entry, wordLength int) []string {
	switch e.Kind {
	case game.EntryCorrect:
		return []string{
			">" + strings.ToUpper(e.Word),
			">Exact match!",
			">Please wait",
			">while system",
			">is accessed.",
		}
	case game.EntryIncorrect:
		return []string{
			">" + strings.ToUpper(e.Word),
			">Entry denied",
			fmt.Sprintf(">%d/%d correct.", e.NumCorrect, wordLength),
		}
	case game.EntryDudRemoval:
		return []string{">", ">Dud removed."}
	case game.EntryAllowanceReplenish:
		return []string{">", ">Allowance", ">replenished."}
	}
	return nil
}
