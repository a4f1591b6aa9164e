// internal/game/engine.go
//
// Core game engine for a single terminal session.
// Responsibilities:
//   - Build both columns and choose the password once at construction.
//   - Apply input events: cursor movement, pointer override, quit, activate.
//   - Score guesses by matching letter positions and count down attempts.
//   - Resolve bracket bonuses (dud removal or allowance replenish).
//   - Track state transitions: playing → won/lost (absorbing).
//
// Notes:
//   - Word and random sources are injected; nothing here reads global
//     randomness, so a seeded source replays a session exactly.
//   - Lookups that miss (cursor over filler, game already over) are no-ops.

package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/euclio/robco-term/internal/random"
	"github.com/euclio/robco-term/internal/words"
)

// ErrInvalidEvent is returned by Update for an event kind outside the
// closed set.
var ErrInvalidEvent = errors.New("game: invalid event")

// Game is the state of one session. It is not safe for concurrent use.
type Game struct {
	ID string

	cfg      Config
	rng      random.Source
	attempts int
	columns  [2]*Column
	cursor   Point
	answer   string
	entries  []Entry
	outcome  Outcome
	playing  bool
}

// New draws words from src, lays out both columns and picks the password.
func New(cfg Config, src words.Source, rng random.Source) (*Game, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	list, err := src.WordsOfLength(cfg.Difficulty, cfg.WordCount)
	if err != nil {
		return nil, fmt.Errorf("generate words: %w", err)
	}
	if len(list) != cfg.WordCount {
		return nil, fmt.Errorf("generate words: %w: got %d of %d",
			words.ErrInsufficientWords, len(list), cfg.WordCount)
	}

	rows := cfg.Layout.Rows
	addrs := addresses(rng.IntN(addressLow, addressHigh), 2*rows)
	half := len(list) / 2

	left, err := newColumn(addrs[:rows], list[:half], cfg, rng)
	if err != nil {
		return nil, err
	}
	right, err := newColumn(addrs[rows:], list[half:], cfg, rng)
	if err != nil {
		return nil, err
	}

	placed := append(left.Words(), right.Words()...)
	g := &Game{
		ID:       uuid.NewString(),
		cfg:      cfg,
		rng:      rng,
		attempts: cfg.StartingAttempts,
		columns:  [2]*Column{left, right},
		answer:   placed[rng.IntN(0, len(placed))],
		playing:  true,
	}
	log.Debug().
		Str("session", g.ID).
		Int("difficulty", cfg.Difficulty).
		Int("words", len(placed)).
		Msg("game created")
	return g, nil
}

// Update applies one input event.
func (g *Game) Update(ev Event) error {
	switch ev.Kind {
	case MoveUp:
		g.cursor.Y--
	case MoveDown:
		g.cursor.Y++
	case MoveLeft:
		g.cursor.X--
	case MoveRight:
		g.cursor.X++
	case PointAt:
		g.cursor = Point{X: ev.X, Y: ev.Y}
	case Quit:
		g.playing = false
	case Activate:
		g.activate()
	default:
		return fmt.Errorf("%w: kind %d", ErrInvalidEvent, ev.Kind)
	}
	return nil
}

// activate resolves the entity under the cursor. Nothing happens once the
// game is over.
func (g *Game) activate() {
	if g.outcome != OutcomeNone {
		return
	}
	ref, ok := g.entityRefAt(g.cursor)
	if !ok {
		return
	}
	e := g.entity(ref)
	switch e.Kind {
	case KindWord:
		if !e.Guessed {
			g.guess(e)
		}
	case KindBrackets:
		if !e.Consumed {
			g.bonus(e)
		}
	}
}

// guess spends one attempt on e and scores it against the password.
func (g *Game) guess(e *Entity) {
	g.attempts--
	e.Guessed = true

	if e.Word == g.answer {
		g.entries = append(g.entries, Entry{Kind: EntryCorrect, Word: e.Word})
		g.outcome = OutcomeWon
		log.Debug().Str("session", g.ID).Str("word", e.Word).Msg("password accepted")
		return
	}

	n := Likeness(e.Word, g.answer)
	g.entries = append(g.entries, Entry{Kind: EntryIncorrect, Word: e.Word, NumCorrect: n})
	log.Debug().
		Str("session", g.ID).
		Str("word", e.Word).
		Int("likeness", n).
		Int("attempts", g.attempts).
		Msg("entry denied")
	if g.attempts <= 0 {
		g.outcome = OutcomeLost
		log.Debug().Str("session", g.ID).Msg("terminal locked")
	}
}

// bonus claims a bracket pair: attempts are replenished one time in
// ReplenishOdds, otherwise a dud is removed.
func (g *Game) bonus(e *Entity) {
	e.Consumed = true
	if g.rng.OneIn(g.cfg.ReplenishOdds) {
		g.entries = append(g.entries, Entry{Kind: EntryAllowanceReplenish})
		g.attempts = g.cfg.StartingAttempts
		log.Debug().Str("session", g.ID).Msg("allowance replenished")
		return
	}
	g.entries = append(g.entries, Entry{Kind: EntryDudRemoval})
	removed := g.removeDud()
	log.Debug().Str("session", g.ID).Str("dud", removed).Msg("dud removed")
}

// removeDud marks the first unrevealed wrong word, scanning the left column
// then the right in placement order. It returns the word, or "" if none is
// left.
func (g *Game) removeDud() string {
	for _, c := range g.columns {
		for i := range c.entities {
			e := &c.entities[i]
			if e.Kind != KindWord || e.Word == g.answer || e.Removed || e.Guessed {
				continue
			}
			e.Removed = true
			return e.Word
		}
	}
	return ""
}

// Likeness counts the positions where guess and answer hold the same
// letter, over their shared length.
func Likeness(guess, answer string) int {
	n := len(guess)
	if len(answer) < n {
		n = len(answer)
	}
	same := 0
	for i := 0; i < n; i++ {
		if guess[i] == answer[i] {
			same++
		}
	}
	return same
}

// Playing reports whether the play loop should keep running.
func (g *Game) Playing() bool { return g.playing }

// Outcome returns the terminal outcome, or OutcomeNone while playing.
func (g *Game) Outcome() Outcome { return g.outcome }

// Attempts returns the remaining attempts.
func (g *Game) Attempts() int { return g.attempts }

// Answer returns the password.
func (g *Game) Answer() string { return g.answer }

// Cursor returns the cursor position.
func (g *Game) Cursor() Point { return g.cursor }

// Config returns the session constants.
func (g *Game) Config() Config { return g.cfg }

// Entries returns a copy of the console log, oldest first.
func (g *Game) Entries() []Entry {
	return append([]Entry(nil), g.entries...)
}

// Column returns column i (0 or 1).
func (g *Game) Column(i int) *Column { return g.columns[i] }
