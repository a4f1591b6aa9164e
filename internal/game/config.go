package game

import (
	"errors"
	"fmt"
)

// Layout is the fixed screen geometry of the two word columns. The
// renderer draws from it and the cursor resolver inverts it.
type Layout struct {
	Margin        int
	AddressWidth  int // "0xF964"
	InnerPadding  int // between address and words
	WordWidth     int // characters per buffer row
	ColumnPadding int // between the two columns
	Rows          int
	FirstRow      int // screen row of buffer row 0
}

// DefaultLayout matches the classic terminal: two columns of 17 rows by 12
// characters.
func DefaultLayout() Layout {
	return Layout{
		Margin:        1,
		AddressWidth:  6,
		InnerPadding:  1,
		WordWidth:     12,
		ColumnPadding: 2,
		Rows:          17,
		FirstRow:      6,
	}
}

// Capacity is the number of buffer characters per column.
func (l Layout) Capacity() int { return l.Rows * l.WordWidth }

// ColumnWidth is the full width of one column including its addresses.
func (l Layout) ColumnWidth() int { return l.AddressWidth + l.InnerPadding + l.WordWidth }

// AddressX returns the screen column where column col's addresses start.
func (l Layout) AddressX(col int) int {
	return l.Margin + col*(l.ColumnWidth()+l.ColumnPadding)
}

// WordX returns the screen column where column col's buffer starts.
func (l Layout) WordX(col int) int {
	return l.AddressX(col) + l.AddressWidth + l.InnerPadding
}

// Config holds the constants of a session.
type Config struct {
	Difficulty       int // word length
	WordCount        int // split evenly across the two columns
	Brackets         int // bracket pairs per column
	BracketLength    int
	StartingAttempts int
	ReplenishOdds    int // a bracket replenishes attempts one time in N
	Layout           Layout
}

// DefaultConfig returns the classic constants for a word length.
func DefaultConfig(difficulty int) Config {
	return Config{
		Difficulty:       difficulty,
		WordCount:        12,
		Brackets:         8,
		BracketLength:    8,
		StartingAttempts: 4,
		ReplenishOdds:    3,
		Layout:           DefaultLayout(),
	}
}

// ErrInvalidConfig is returned for constants no board can be built from.
var ErrInvalidConfig = errors.New("game: invalid config")

func (c Config) validate() error {
	switch {
	case c.Difficulty < 1:
		return fmt.Errorf("%w: difficulty %d", ErrInvalidConfig, c.Difficulty)
	case c.WordCount < 2 || c.WordCount%2 != 0:
		return fmt.Errorf("%w: word count %d must be even", ErrInvalidConfig, c.WordCount)
	case c.BracketLength < 1 || c.Brackets < 0:
		return fmt.Errorf("%w: brackets %d x %d", ErrInvalidConfig, c.Brackets, c.BracketLength)
	case c.StartingAttempts < 1:
		return fmt.Errorf("%w: starting attempts %d", ErrInvalidConfig, c.StartingAttempts)
	case c.Layout.Rows < 1 || c.Layout.WordWidth < 1:
		return fmt.Errorf("%w: layout %dx%d", ErrInvalidConfig, c.Layout.Rows, c.Layout.WordWidth)
	}
	return nil
}
