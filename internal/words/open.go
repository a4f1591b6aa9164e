package words

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/euclio/robco-term/internal/random"
)

// EmbeddedSpec is the dictionary spec for the built-in word list.
const EmbeddedSpec = "embedded"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open resolves a dictionary spec into a Source. Accepted forms:
//
//	embedded          the built-in list
//	file:<path>       a one-word-per-line file
//	sqlite:<path>     a dictionary database
//	<path>            .db/.sqlite/.sqlite3 opens a database, anything else a file
//
// The returned Closer must be closed once the game is built.
func Open(spec string, rng random.Source) (Source, io.Closer, error) {
	kind, path := ParseSpec(spec)
	switch kind {
	case "embedded":
		l, err := Embedded(rng)
		return l, nopCloser{}, err
	case "file":
		l, err := FromFile(path, rng)
		if err != nil {
			return nil, nil, fmt.Errorf("open dictionary %s: %w", path, err)
		}
		return l, nopCloser{}, nil
	case "sqlite":
		s, err := OpenSQLite(path, rng)
		if err != nil {
			return nil, nil, fmt.Errorf("open dictionary %s: %w", path, err)
		}
		return s, s, nil
	}
	return nil, nil, fmt.Errorf("unknown dictionary %q", spec)
}

// ParseSpec splits a dictionary spec into its kind and path.
func ParseSpec(spec string) (kind, path string) {
	spec = strings.TrimSpace(spec)
	switch {
	case spec == "" || spec == EmbeddedSpec:
		return "embedded", ""
	case strings.HasPrefix(spec, "file:"):
		return "file", strings.TrimPrefix(spec, "file:")
	case strings.HasPrefix(spec, "sqlite:"):
		return "sqlite", strings.TrimPrefix(spec, "sqlite:")
	}
	switch strings.ToLower(filepath.Ext(spec)) {
	case ".db", ".sqlite", ".sqlite3":
		return "sqlite", spec
	}
	return "file", spec
}
