// main.go
//
// Entry point for robco-term.
// Responsibilities:
//   - Load .env, the YAML config file and flags into one config.
//   - Route logs to a file so they never touch the game screen.
//   - Pick the seed (explicit, daily or clock), open the dictionary and
//     build a game.
//   - Hand the game to the terminal front end.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/euclio/robco-term/assets"
	"github.com/euclio/robco-term/internal/config"
	"github.com/euclio/robco-term/internal/daily"
	"github.com/euclio/robco-term/internal/game"
	"github.com/euclio/robco-term/internal/random"
	"github.com/euclio/robco-term/internal/sound"
	"github.com/euclio/robco-term/internal/terminal"
	"github.com/euclio/robco-term/internal/words"
)

// seedSalt separates --seed numbers from other uses of random.Seed.
const seedSalt = "robco-term"

// app carries flag values and the resolved config between cobra hooks.
type app struct {
	configPath string
	difficulty int
	seed       int64
	daily      bool
	dictionary string
	sound      bool
	dbPath     string

	cfg     *config.Config
	logFile io.Closer
	now     func() time.Time
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "robco-term",
		Short: "RobCo termlink password puzzle",
		Long: `robco-term hides a password among same-length words in two columns of
terminal garbage. Pick a word to learn how many letters sit in the right
place. Bracket pairs remove duds or restore attempts.

Move with the arrows, WASD or HJKL (or the mouse), Enter to select, Esc to quit.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logFile != nil {
				_ = a.logFile.Close()
			}
		},
		RunE: a.play,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default "+config.DefaultFile+" if present)")
	pf.StringVar(&a.dictionary, "dictionary", "", "word source: embedded, file:<path>, sqlite:<path> or a path")

	f := root.Flags()
	f.IntVarP(&a.difficulty, "difficulty", "d", 0, fmt.Sprintf("password length (%d-%d)", config.MinDifficulty, config.MaxDifficulty))
	f.Int64Var(&a.seed, "seed", 0, "replay the session logged with this seed")
	f.BoolVar(&a.daily, "daily", false, "play the puzzle of the day")
	f.BoolVar(&a.sound, "sound", false, "enable audio cues")

	root.AddCommand(newWordsCmd(a))
	return root
}

// setup resolves configuration and logging for every command.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	path := a.configPath
	if path == "" {
		path = config.DefaultFile
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	a.applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.logFile, err = setupLogging(cfg)
	return err
}

// applyFlags overrides cfg with flags given on the command line.
func (a *app) applyFlags(cmd *cobra.Command, cfg *config.Config) {
	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}
	if changed("difficulty") {
		cfg.Difficulty = a.difficulty
	}
	if changed("dictionary") {
		cfg.Dictionary = a.dictionary
	}
	if changed("sound") {
		cfg.Sound = a.sound
	}
}

// setupLogging points the global logger at the configured file.
func setupLogging(cfg *config.Config) (io.Closer, error) {
	zerolog.SetGlobalLevel(cfg.Level())
	if cfg.Logging.File == "-" {
		log.Logger = zerolog.Nop()
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return f, nil
}

// sessionSeed picks the seed for this run and a label for the log.
func (a *app) sessionSeed(cmd *cobra.Command) (uint64, string) {
	switch {
	case cmd.Flags().Changed("seed"):
		return random.Seed(a.seed, seedSalt), fmt.Sprintf("seed %d", a.seed)
	case a.daily:
		now := a.now()
		return daily.Seed(now, a.cfg.DailySalt), "daily " + daily.DateKey(now)
	}
	n := a.now().UnixNano()
	return random.Seed(n, seedSalt), fmt.Sprintf("seed %d", n)
}

// newGame builds a session from the resolved config.
func (a *app) newGame(cmd *cobra.Command) (*game.Game, error) {
	seed, label := a.sessionSeed(cmd)
	rng := random.New(seed)

	src, closer, err := words.Open(a.cfg.Dictionary, rng)
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	g, err := game.New(game.DefaultConfig(a.cfg.Difficulty), src, rng)
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("session", g.ID).
		Str("source", label).
		Str("dictionary", a.cfg.Dictionary).
		Int("difficulty", a.cfg.Difficulty).
		Msg("session started")
	return g, nil
}

func (a *app) play(cmd *cobra.Command, args []string) error {
	g, err := a.newGame(cmd)
	if err != nil {
		return err
	}

	banner, err := assets.GrantedBanner()
	if err != nil {
		log.Warn().Err(err).Msg("granted banner unavailable")
	}

	var snd terminal.Sounder = sound.Nop{}
	if a.cfg.Sound {
		p := sound.NewPlayer(0.5)
		if err := p.Init(); err == nil {
			defer p.Close()
			snd = p
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return terminal.Run(ctx, screen, g, terminal.Options{Sound: snd, Banner: banner})
}

func main() {
	if err := newRootCmd(&app{now: time.Now}).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
