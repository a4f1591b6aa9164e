// internal/words/words.go
//
// Word sources for the terminal puzzle.
//
// Responsibilities:
//   - Define the Source contract the game draws candidate passwords from.
//   - Load dictionaries from the embedded list or a plain word file.
//   - Pick distinct words of an exact length using an injected random source.
//
// Word rules:
//   - Lowercase ASCII letters only (a–z), no punctuation or capitals.
//   - Duplicates are collapsed on load.
//
// The embedded list is parsed once (sync.Once) and shared.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/euclio/robco-term/assets"
	"github.com/euclio/robco-term/internal/random"
)

// ErrInsufficientWords is returned when a source cannot supply the requested
// number of distinct words at the requested length.
var ErrInsufficientWords = errors.New("words: not enough words of requested length")

// Source supplies candidate passwords.
type Source interface {
	// WordsOfLength returns count distinct words of exactly length letters.
	WordsOfLength(length, count int) ([]string, error)
}

var (
	embeddedOnce  sync.Once
	embeddedWords []string
	embeddedErr   error
)

// List is an in-memory Source over a fixed candidate set.
type List struct {
	byLength map[int][]string
	rng      random.Source
}

// NewList normalizes candidates and returns a List drawing from rng.
// Invalid entries are dropped.
func NewList(candidates []string, rng random.Source) *List {
	l := &List{byLength: make(map[int][]string), rng: rng}
	seen := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		w := strings.TrimSpace(c)
		if !Valid(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		l.byLength[len(w)] = append(l.byLength[len(w)], w)
	}
	for n := range l.byLength {
		sort.Strings(l.byLength[n])
	}
	return l
}

// Embedded returns a List over the dictionary compiled into the binary.
func Embedded(rng random.Source) (*List, error) {
	embeddedOnce.Do(func() {
		embeddedWords, embeddedErr = assets.WordList()
		if embeddedErr == nil && len(embeddedWords) == 0 {
			embeddedErr = errors.New("words: embedded list is empty")
		}
	})
	if embeddedErr != nil {
		return nil, embeddedErr
	}
	return NewList(embeddedWords, rng), nil
}

// FromFile returns a List over a one-word-per-line file such as
// /usr/share/dict/words.
func FromFile(path string, rng random.Source) (*List, error) {
	ws, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewList(ws, rng), nil
}

// WordsOfLength samples count distinct words of the given length.
func (l *List) WordsOfLength(length, count int) ([]string, error) {
	return pick(l.byLength[length], l.rng, length, count)
}

// Stats returns the number of words per length.
func (l *List) Stats() map[int]int {
	out := make(map[int]int, len(l.byLength))
	for n, ws := range l.byLength {
		out[n] = len(ws)
	}
	return out
}

// pick draws count distinct entries from candidates.
func pick(candidates []string, rng random.Source, length, count int) ([]string, error) {
	if count <= 0 {
		return []string{}, nil
	}
	if len(candidates) < count {
		return nil, fmt.Errorf("%w: want %d of length %d, have %d",
			ErrInsufficientWords, count, length, len(candidates))
	}
	idx := make([]int, len(candidates))
	for i := range idx {
		idx[i] = i
	}
	out := make([]string, 0, count)
	for _, i := range rng.Sample(idx, count) {
		out = append(out, candidates[i])
	}
	return out, nil
}

// ReadFile loads one word per line from a file, keeping only entries that
// are already lowercase alphabetic ASCII. Proper nouns and words with
// apostrophes in system dictionaries are skipped rather than folded.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if Valid(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// Valid reports whether w is non-empty and all lowercase ASCII letters.
func Valid(w string) bool {
	if w == "" {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}
