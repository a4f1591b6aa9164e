// internal/config/config.go
//
// Runtime settings for robco-term.
// Responsibilities:
//   - Provide defaults for every setting.
//   - Layer an optional YAML file and the environment on top of them.
//   - Validate the result before a game is built.
//
// Precedence, lowest first: defaults, YAML file, environment (after .env
// is loaded by the caller), command-line flags (applied by main).

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/euclio/robco-term/internal/words"
)

// Supported word lengths. Longer words leave too little room in a column
// for every bracket pair to be placed reliably.
const (
	MinDifficulty = 4
	MaxDifficulty = 10
)

// DefaultFile is read when no --config flag is given, if it exists.
const DefaultFile = "robco.yaml"

// ErrInvalidDifficulty is returned for a word length outside
// [MinDifficulty, MaxDifficulty].
var ErrInvalidDifficulty = errors.New("config: invalid difficulty")

// Config holds all robco-term settings.
type Config struct {
	Difficulty int    `yaml:"difficulty"`
	Dictionary string `yaml:"dictionary"` // see words.Open
	Sound      bool   `yaml:"sound"`
	DailySalt  string `yaml:"daily_salt"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig controls the session log. The screen belongs to the game, so
// logs always go to a file; "-" discards them.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Difficulty: 5,
		Dictionary: words.EmbeddedSpec,
		DailySalt:  "local_dev_salt",
		Logging: LoggingConfig{
			Level: "info",
			File:  "robco-term.log",
		},
	}
}

// Load reads path over the defaults and applies environment overrides. A
// missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides copies ROBCO_* and LOG_* variables into c.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("ROBCO_DIFFICULTY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: ROBCO_DIFFICULTY=%q", ErrInvalidDifficulty, v)
		}
		c.Difficulty = n
	}
	if v := os.Getenv("ROBCO_DICTIONARY"); v != "" {
		c.Dictionary = v
	}
	if v := os.Getenv("ROBCO_SOUND"); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: ROBCO_SOUND=%q: %w", v, err)
		}
		c.Sound = on
	}
	if v := os.Getenv("ROBCO_DAILY_SALT"); v != "" {
		c.DailySalt = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		c.Logging.File = v
	}
	return nil
}

// Validate checks the settings a game depends on.
func (c *Config) Validate() error {
	if c.Difficulty < MinDifficulty || c.Difficulty > MaxDifficulty {
		return fmt.Errorf("%w: %d (valid: %d-%d)", ErrInvalidDifficulty, c.Difficulty, MinDifficulty, MaxDifficulty)
	}
	if kind, path := words.ParseSpec(c.Dictionary); kind != "embedded" && strings.TrimSpace(path) == "" {
		return fmt.Errorf("config: dictionary %q has no path", c.Dictionary)
	}
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("config: log level %q: %w", c.Logging.Level, err)
	}
	return nil
}

// Level returns the parsed log level, falling back to info.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.Logging.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
