// internal/game/types.go
//
// Core type definitions for the terminal puzzle.
// Defines:
//   - Entity: a word or bracket pair placed in a column buffer.
//   - Entry: one line group in the terminal's console log.
//   - Outcome: the terminal result of a session (won/lost).
//   - Event: an input the state machine consumes.

package game

// EntityKind distinguishes the variants of Entity.
type EntityKind int

const (
	KindWord EntityKind = iota
	KindBrackets
)

func (k EntityKind) String() string {
	switch k {
	case KindWord:
		return "word"
	case KindBrackets:
		return "brackets"
	}
	return "unknown"
}

// Entity is a selectable thing in a column buffer. Word fields are set for
// KindWord, bracket fields for KindBrackets.
type Entity struct {
	Kind  EntityKind
	Start int // first buffer index of the span

	// Word
	Word    string
	Guessed bool // already submitted as a guess
	Removed bool // eliminated as a dud; inert

	// Brackets
	Open, Close byte
	Length      int  // span width; only Start is activatable
	Consumed    bool // bonus already claimed
}

// Span returns the half-open range of buffer indices the entity occupies.
func (e Entity) Span() (start, end int) {
	if e.Kind == KindWord {
		return e.Start, e.Start + len(e.Word)
	}
	return e.Start, e.Start + e.Length
}

// Highlighted reports whether the entity is still unresolved.
func (e Entity) Highlighted() bool {
	if e.Kind == KindWord {
		return !e.Guessed
	}
	return !e.Consumed
}

// EntryKind distinguishes the variants of Entry.
type EntryKind int

const (
	EntryCorrect EntryKind = iota
	EntryIncorrect
	EntryDudRemoval
	EntryAllowanceReplenish
)

func (k EntryKind) String() string {
	switch k {
	case EntryCorrect:
		return "correct"
	case EntryIncorrect:
		return "incorrect"
	case EntryDudRemoval:
		return "dud_removal"
	case EntryAllowanceReplenish:
		return "allowance_replenish"
	}
	return "unknown"
}

// Entry is an immutable console log record.
type Entry struct {
	Kind       EntryKind
	Word       string // Correct, Incorrect
	NumCorrect int    // Incorrect: matching letter positions
}

// Outcome is the terminal state of a session. OutcomeNone means still
// playing.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	}
	return "playing"
}

// Point is a screen coordinate. It is never clamped by the core.
type Point struct {
	X, Y int
}

// EventKind is the closed set of inputs the state machine accepts.
type EventKind int

const (
	MoveUp EventKind = iota
	MoveDown
	MoveLeft
	MoveRight
	Activate
	Quit
	// PointAt moves the cursor to an absolute coordinate (pointer input).
	PointAt
)

// Event is one input. X and Y are only read for PointAt.
type Event struct {
	Kind EventKind
	X, Y int
}
