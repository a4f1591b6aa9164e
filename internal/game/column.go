// internal/game/column.go
//
// Column: one half of the puzzle.
// Responsibilities:
//   - Build a fixed-size character buffer with non-overlapping words and
//     bracket pairs (slot partitioning for words, eligibility filtering for
//     brackets).
//   - Hold the cosmetic hex addresses shown beside each row.
//   - Resolve a buffer index to the live entity covering it.
//
// Entities live in a flat slice and are referred to by position; nothing
// outside the owning Game holds a pointer into it.

package game

import (
	"errors"
	"fmt"

	"github.com/euclio/robco-term/internal/random"
)

// ErrInsufficientSpace is returned when the buffer cannot fit every word
// or bracket pair for the configured difficulty.
var ErrInsufficientSpace = errors.New("game: not enough room in column")

const garbageCharacters = `,|\!@#$%^&*-_+=.:;?,/`

var bracketPairs = [...][2]byte{{'<', '>'}, {'[', ']'}, {'{', '}'}, {'(', ')'}}

const (
	addressLow    = 0xF000
	addressHigh   = 0xF900
	addressStride = 0xC
)

// Column owns one buffer, its entities and its row addresses.
type Column struct {
	Addresses []uint16
	buffer    []byte
	entities  []Entity
}

// newColumn places words and brackets into a fresh buffer.
func newColumn(addresses []uint16, words []string, cfg Config, rng random.Source) (*Column, error) {
	capacity := cfg.Layout.Capacity()
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: no words for column", ErrInsufficientSpace)
	}

	wordEntities, err := placeWords(words, capacity, rng)
	if err != nil {
		return nil, err
	}
	brackets, err := placeBrackets(wordEntities, capacity, cfg.Brackets, cfg.BracketLength, rng)
	if err != nil {
		return nil, err
	}

	c := &Column{
		Addresses: addresses,
		buffer:    garbage(capacity, rng),
		entities:  append(wordEntities, brackets...),
	}
	c.overlay()
	return c, nil
}

// placeWords puts word i at a random offset inside slot i.
func placeWords(words []string, capacity int, rng random.Source) ([]Entity, error) {
	slot := capacity / len(words)
	out := make([]Entity, 0, len(words))
	for i, w := range words {
		if slot <= len(w) {
			return nil, fmt.Errorf("%w: word %q does not fit slot of %d", ErrInsufficientSpace, w, slot)
		}
		offset := rng.IntN(0, slot-len(w))
		out = append(out, Entity{Kind: KindWord, Word: w, Start: i*slot + offset})
	}
	return out, nil
}

// bracketEligible lists every start index whose span stays inside the
// buffer and clear of all words.
func bracketEligible(words []Entity, capacity, length int) []int {
	var eligible []int
	for i := 0; i+length <= capacity; i++ {
		ok := true
		for _, w := range words {
			s, e := w.Span()
			if !(i+length < s || i > e) {
				ok = false
				break
			}
		}
		if ok {
			eligible = append(eligible, i)
		}
	}
	return eligible
}

// placeBrackets draws count bracket spans from the eligible starts. After
// each draw the starts that would overlap it are discarded, so bracket
// spans stay disjoint from each other as well as from words.
func placeBrackets(words []Entity, capacity, count, length int, rng random.Source) ([]Entity, error) {
	eligible := bracketEligible(words, capacity, length)
	if len(eligible) < count {
		return nil, fmt.Errorf("%w: %d bracket starts for %d pairs", ErrInsufficientSpace, len(eligible), count)
	}

	out := make([]Entity, 0, count)
	for n := 0; n < count; n++ {
		if len(eligible) == 0 {
			return nil, fmt.Errorf("%w: placed %d of %d bracket pairs", ErrInsufficientSpace, n, count)
		}
		start := eligible[rng.IntN(0, len(eligible))]
		pair := bracketPairs[rng.IntN(0, len(bracketPairs))]
		out = append(out, Entity{
			Kind:   KindBrackets,
			Start:  start,
			Open:   pair[0],
			Close:  pair[1],
			Length: length,
		})

		kept := eligible[:0]
		for _, i := range eligible {
			if i+length <= start || i >= start+length {
				kept = append(kept, i)
			}
		}
		eligible = kept
	}
	return out, nil
}

// garbage fills a whole buffer with filler punctuation. Entities are
// written over it afterwards.
func garbage(capacity int, rng random.Source) []byte {
	buf := make([]byte, capacity)
	for i := range buf {
		buf[i] = garbageCharacters[rng.IntN(0, len(garbageCharacters))]
	}
	return buf
}

func (c *Column) overlay() {
	for _, e := range c.entities {
		switch e.Kind {
		case KindWord:
			copy(c.buffer[e.Start:], e.Word)
		case KindBrackets:
			c.buffer[e.Start] = e.Open
			c.buffer[e.Start+e.Length-1] = e.Close
		}
	}
}

// addresses returns n consecutive row addresses from start.
func addresses(start, n int) []uint16 {
	out := make([]uint16, n)
	for i := range out {
		out[i] = uint16(start + i*addressStride)
	}
	return out
}

// Words returns the words placed in the column, in placement order.
func (c *Column) Words() []string {
	var out []string
	for _, e := range c.entities {
		if e.Kind == KindWord {
			out = append(out, e.Word)
		}
	}
	return out
}

// Entities returns a copy of the column's entities.
func (c *Column) Entities() []Entity {
	return append([]Entity(nil), c.entities...)
}

// Buffer returns a copy of the raw buffer.
func (c *Column) Buffer() []byte {
	return append([]byte(nil), c.buffer...)
}

// entityAt returns the position of the live entity at buffer index i.
// Words match anywhere in their span, brackets only at their start. A
// removed word or a consumed bracket pair never matches.
func (c *Column) entityAt(i int) (int, bool) {
	for n, e := range c.entities {
		s, end := e.Span()
		switch e.Kind {
		case KindWord:
			if s <= i && i < end {
				return n, !e.Removed
			}
		case KindBrackets:
			if s == i {
				return n, !e.Consumed
			}
		}
	}
	return 0, false
}
