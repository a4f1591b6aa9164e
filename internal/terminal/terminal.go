// internal/terminal/terminal.go
//
// tcell front end for the puzzle.
// Responsibilities:
//   - Pump screen events on their own goroutine.
//   - Feed translated input to the game on a single goroutine and redraw
//     after every event.
//   - Play audio cues for moves, denials and unlocks.
//   - Restore the terminal on exit.
//
// The Game is only touched by the loop goroutine.

package terminal

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/euclio/robco-term/internal/game"
)

// Sounder plays audio cues. sound.Player and sound.Nop satisfy it.
type Sounder interface {
	Click()
	Denied()
	Granted()
}

// Options tune a Run.
type Options struct {
	Sound  Sounder  // nil runs silent
	Banner []string // art above ACCESS GRANTED
}

// Run plays g on screen until the player quits or ctx is cancelled. The
// screen must already be initialized; Run finalizes it before returning.
func Run(ctx context.Context, screen tcell.Screen, g *game.Game, opts Options) error {
	screen.EnableMouse()
	screen.HideCursor()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})

	grp, gctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		// PollEvent returns nil once the screen is finalized.
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-done:
				return nil
			}
		}
	})
	grp.Go(func() error {
		defer screen.Fini()
		defer close(done)
		return loop(gctx, screen, g, opts, events)
	})
	return grp.Wait()
}

func loop(ctx context.Context, screen tcell.Screen, g *game.Game, opts Options, events <-chan tcell.Event) error {
	var in translator
	draw(screen, g, opts)

	for g.Playing() {
		select {
		case <-ctx.Done():
			log.Debug().Str("session", g.ID).Msg("terminal cancelled")
			return nil
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
			for _, ge := range in.translate(ev) {
				before := len(g.Entries())
				if err := g.Update(ge); err != nil {
					return err
				}
				cue(opts.Sound, ge, g.Entries()[before:])
			}
			draw(screen, g, opts)
		}
	}
	log.Info().
		Str("session", g.ID).
		Stringer("outcome", g.Outcome()).
		Int("attempts", g.Attempts()).
		Msg("session ended")
	return nil
}

// cue picks the sound for one applied event and the entries it produced.
func cue(s Sounder, ev game.Event, added []game.Entry) {
	if s == nil {
		return
	}
	for _, e := range added {
		switch e.Kind {
		case game.EntryCorrect:
			s.Granted()
		case game.EntryIncorrect:
			s.Denied()
		default:
			s.Click()
		}
	}
	switch ev.Kind {
	case game.MoveUp, game.MoveDown, game.MoveLeft, game.MoveRight:
		s.Click()
	}
}

func draw(screen tcell.Screen, g *game.Game, opts Options) {
	w, h := screen.Size()
	paint(screen, Compose(g.Snapshot(), opts.Banner, w, h))
}

// paint copies a Frame onto the screen and shows it.
func paint(screen tcell.Screen, f *Frame) {
	screen.Clear()
	normal := tcell.StyleDefault
	reverse := normal.Reverse(true)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := f.At(x, y)
			style := normal
			if c.Reverse {
				style = reverse
			}
			screen.SetContent(x, y, c.Ch, nil, style)
		}
	}
	if f.CursorVisible {
		screen.ShowCursor(f.Cursor.X, f.Cursor.Y)
	} else {
		screen.HideCursor()
	}
	screen.Show()
}
