package terminal

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/euclio/robco-term/internal/game"
)

// translator turns tcell input into game events. It remembers the mouse
// button state so a held button activates once, on press.
type translator struct {
	buttons tcell.ButtonMask
}

func (t *translator) translate(ev tcell.Event) []game.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if k, ok := keyEvent(ev); ok {
			return []game.Event{{Kind: k}}
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		point := game.Event{Kind: game.PointAt, X: x, Y: y}
		pressed := ev.Buttons()&tcell.Button1 != 0 && t.buttons&tcell.Button1 == 0
		t.buttons = ev.Buttons()
		if pressed {
			return []game.Event{point, {Kind: game.Activate}}
		}
		return []game.Event{point}
	}
	return nil
}

// keyEvent maps arrows, WASD and HJKL to movement.
func keyEvent(ev *tcell.EventKey) (game.EventKind, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.MoveUp, true
	case tcell.KeyDown:
		return game.MoveDown, true
	case tcell.KeyLeft:
		return game.MoveLeft, true
	case tcell.KeyRight:
		return game.MoveRight, true
	case tcell.KeyEnter:
		return game.Activate, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.Quit, true
	case tcell.KeyRune:
		r := unicode.ToLower(ev.Rune())
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return game.Quit, r == 'c'
		}
		switch r {
		case 'w', 'k':
			return game.MoveUp, true
		case 's', 'j':
			return game.MoveDown, true
		case 'a', 'h':
			return game.MoveLeft, true
		case 'd', 'l':
			return game.MoveRight, true
		case ' ':
			return game.Activate, true
		}
	}
	return 0, false
}
