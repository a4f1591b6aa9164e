package words

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/euclio/robco-term/internal/random"
)

func TestValid(t *testing.T) {
	assert.True(t, Valid("apple"))
	assert.False(t, Valid(""))
	assert.False(t, Valid("Apple"))
	assert.False(t, Valid("don't"))
	assert.False(t, Valid("café"))
	assert.False(t, Valid("abc1"))
}

func TestNewListNormalizes(t *testing.T) {
	l := NewList([]string{"apple", " mango ", "apple", "Chair", "grape", "x-ray", "pear"}, random.New(1))
	assert.Equal(t, map[int]int{5: 3, 4: 1}, l.Stats())
}

func TestWordsOfLengthDistinctAndExact(t *testing.T) {
	l := NewList([]string{"apple", "mango", "chair", "grape", "lemon", "pear", "plum"}, random.New(3))

	got, err := l.WordsOfLength(5, 4)
	require.NoError(t, err)
	require.Len(t, got, 4)

	seen := map[string]bool{}
	for _, w := range got {
		assert.Len(t, w, 5)
		assert.False(t, seen[w], "duplicate %q", w)
		seen[w] = true
	}
}

func TestWordsOfLengthInsufficient(t *testing.T) {
	l := NewList([]string{"apple", "mango"}, random.New(3))

	_, err := l.WordsOfLength(5, 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInsufficientWords))

	_, err = l.WordsOfLength(9, 1)
	assert.ErrorIs(t, err, ErrInsufficientWords)
}

func TestWordsOfLengthReproducible(t *testing.T) {
	pool := []string{"apple", "mango", "chair", "grape", "lemon", "melon", "peach", "guava"}
	a, err := NewList(pool, random.New(42)).WordsOfLength(5, 6)
	require.NoError(t, err)
	b, err := NewList(pool, random.New(42)).WordsOfLength(5, 6)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEmbeddedCoversDifficulties(t *testing.T) {
	l, err := Embedded(random.New(5))
	require.NoError(t, err)

	stats := l.Stats()
	for n := 4; n <= 12; n++ {
		assert.GreaterOrEqual(t, stats[n], 12, "length %d", n)
	}
	for n := range stats {
		assert.LessOrEqual(t, n, 12)
	}
}

func TestReadFileFiltersDictionary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dict")
	require.NoError(t, os.WriteFile(path, []byte("apple\nBoston\nit's\n  mango  \n\nchair\n"), 0o644))

	got, err := ReadFile(path)
	require.NoError(t, err)
	sort.Strings(got)
	assert.Equal(t, []string{"apple", "chair", "mango"}, got)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestParseSpec(t *testing.T) {
	cases := []struct {
		spec, kind, path string
	}{
		{"", "embedded", ""},
		{"embedded", "embedded", ""},
		{"file:/usr/share/dict/words", "file", "/usr/share/dict/words"},
		{"sqlite:data/words.db", "sqlite", "data/words.db"},
		{"words.sqlite", "sqlite", "words.sqlite"},
		{"/usr/share/dict/words", "file", "/usr/share/dict/words"},
	}
	for _, c := range cases {
		kind, path := ParseSpec(c.spec)
		assert.Equal(t, c.kind, kind, c.spec)
		assert.Equal(t, c.path, path, c.spec)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dict.txt")
	require.NoError(t, os.WriteFile(path, []byte("apple\nmango\nchair\n"), 0o644))

	src, closer, err := Open("file:"+path, random.New(1))
	require.NoError(t, err)
	defer closer.Close()

	got, err := src.WordsOfLength(5, 3)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"apple", "mango", "chair"}, got)

	_, _, err = Open("file:"+filepath.Join(t.TempDir(), "nope"), random.New(1))
	assert.Error(t, err)
}
