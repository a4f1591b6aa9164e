package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so the host environment does
// not leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"ROBCO_DIFFICULTY", "ROBCO_DICTIONARY", "ROBCO_SOUND", "ROBCO_DAILY_SALT", "LOG_LEVEL", "LOG_FILE"} {
		t.Setenv(k, "")
	}
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 5, cfg.Difficulty)
	assert.Equal(t, "embedded", cfg.Dictionary)
	assert.False(t, cfg.Sound)
	assert.Equal(t, zerolog.InfoLevel, cfg.Level())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "robco.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
difficulty: 8
dictionary: sqlite:words.db
sound: true
logging:
  level: debug
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Difficulty)
	assert.Equal(t, "sqlite:words.db", cfg.Dictionary)
	assert.True(t, cfg.Sound)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
	assert.Equal(t, "robco-term.log", cfg.Logging.File, "unset keys keep defaults")
	assert.Equal(t, "local_dev_salt", cfg.DailySalt)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "robco.yaml")
	require.NoError(t, os.WriteFile(path, []byte("difficulty: [nope"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "robco.yaml")
	require.NoError(t, os.WriteFile(path, []byte("difficulty: 8\n"), 0o644))

	t.Setenv("ROBCO_DIFFICULTY", "6")
	t.Setenv("ROBCO_DICTIONARY", "/usr/share/dict/words")
	t.Setenv("ROBCO_SOUND", "1")
	t.Setenv("ROBCO_DAILY_SALT", "vault-101")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FILE", "-")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Difficulty)
	assert.Equal(t, "/usr/share/dict/words", cfg.Dictionary)
	assert.True(t, cfg.Sound)
	assert.Equal(t, "vault-101", cfg.DailySalt)
	assert.Equal(t, zerolog.WarnLevel, cfg.Level())
	assert.Equal(t, "-", cfg.Logging.File)
}

func TestEnvRejectsMalformedValues(t *testing.T) {
	t.Run("difficulty", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ROBCO_DIFFICULTY", "five")
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.ErrorIs(t, err, ErrInvalidDifficulty)
	})
	t.Run("sound", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ROBCO_SOUND", "loud")
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
		ok      bool
	}{
		{"min difficulty", func(c *Config) { c.Difficulty = MinDifficulty }, nil, true},
		{"max difficulty", func(c *Config) { c.Difficulty = MaxDifficulty }, nil, true},
		{"too short", func(c *Config) { c.Difficulty = MinDifficulty - 1 }, ErrInvalidDifficulty, false},
		{"too long", func(c *Config) { c.Difficulty = MaxDifficulty + 1 }, ErrInvalidDifficulty, false},
		{"bare path", func(c *Config) { c.Dictionary = "words.txt" }, nil, true},
		{"empty file spec", func(c *Config) { c.Dictionary = "file:" }, nil, false},
		{"empty sqlite spec", func(c *Config) { c.Dictionary = "sqlite: " }, nil, false},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}
