// internal/words/sqlite.go
//
// SQLite-backed dictionary.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout).
//   - Applying schema migrations (idempotent, recorded in _migrations).
//   - Importing word lists and answering length queries for the game.
//
// A dictionary database is built once with `robco-term words import` and
// then passed to the game with --dictionary sqlite:<path>.

package words

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/euclio/robco-term/internal/random"
)

// migrations are applied in order; names are recorded once applied.
var migrations = []struct {
	name string
	sql  string
}{
	{"001_words", `CREATE TABLE IF NOT EXISTS words (
		word   TEXT PRIMARY KEY,
		length INTEGER NOT NULL
	);`},
	{"002_words_length_idx", `CREATE INDEX IF NOT EXISTS words_length_idx ON words(length);`},
}

// SQLite is a Source backed by a dictionary database.
type SQLite struct {
	db  *sql.DB
	rng random.Source
}

// OpenSQLite opens (and creates if missing) a dictionary database and
// brings its schema up to date.
func OpenSQLite(path string, rng random.Source) (*SQLite, error) {
	// Ensure directory exists for ./data/words.db, etc.
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLite{db: db, rng: rng}, nil
}

// Close releases the database handle.
func (s *SQLite) Close() error { return s.db.Close() }

func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	for _, m := range migrations {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, m.name).Scan(&done)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("query _migrations: %w", err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(m.sql); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", m.name, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, m.name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", m.name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", m.name, err)
		}
		log.Debug().Str("migration", m.name).Msg("applied")
	}
	return nil
}

// Import inserts every valid word and returns how many were new.
// Invalid entries are skipped silently.
func (s *SQLite) Import(ctx context.Context, list []string) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO words(word, length) VALUES (?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	added := 0
	for _, raw := range list {
		w := strings.TrimSpace(raw)
		if !Valid(w) {
			continue
		}
		res, err := stmt.ExecContext(ctx, w, len(w))
		if err != nil {
			return 0, fmt.Errorf("insert %q: %w", w, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			added++
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return added, nil
}

// Stats returns the number of stored words per length.
func (s *SQLite) Stats(ctx context.Context) (map[int]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT length, COUNT(1) FROM words GROUP BY length`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int]int)
	for rows.Next() {
		var n, c int
		if err := rows.Scan(&n, &c); err != nil {
			return nil, err
		}
		out[n] = c
	}
	return out, rows.Err()
}

// WordsOfLength loads every stored word of the given length and samples
// count of them.
func (s *SQLite) WordsOfLength(length, count int) ([]string, error) {
	rows, err := s.db.Query(`SELECT word FROM words WHERE length=? ORDER BY word`, length)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		candidates = append(candidates, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return pick(candidates, s.rng, length, count)
}
