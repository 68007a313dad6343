package tui

import (
	"github.com/awesome-gocui/gocui"
	"github.com/gdamore/tcell/v2"
	"github.com/kcaldas/console/pkg/console/keys"
	"github.com/kcaldas/console/pkg/console/session"
)

var metaMask = gocui.Modifier(tcell.ModAlt | tcell.ModMeta)

// translateKey maps a gocui key press onto a console key event. ok is false
// for keys the console never sees.
func translateKey(key gocui.Key, ch rune, mod gocui.Modifier) (keys.Event, bool) {
	meta := mod&metaMask != 0

	if ch != 0 {
		return keys.Event{Key: string(ch), Meta: meta}, true
	}

	var name string
	switch key {
	case gocui.KeyEnter:
		name = keys.Enter
	case gocui.KeyBackspace, gocui.KeyBackspace2:
		name = keys.Backspace
	case gocui.KeyArrowUp:
		name = keys.ArrowUp
	case gocui.KeyArrowDown:
		name = keys.ArrowDown
	case gocui.KeyArrowLeft:
		name = keys.ArrowLeft
	case gocui.KeyArrowRight:
		name = keys.ArrowRight
	case gocui.KeyTab:
		name = keys.Tab
	case gocui.KeySpace:
		name = " "
	default:
		return keys.Event{}, false
	}
	return keys.Event{Key: name, Meta: meta}, true
}

// consoleEditor feeds the console view's key presses to the session. The
// view buffer is never edited directly; it is redrawn from snapshots.
type consoleEditor struct {
	session *session.Session
}

func newConsoleEditor(s *session.Session) gocui.Editor {
	return &consoleEditor{session: s}
}

// Edit implements gocui.Editor.
func (e *consoleEditor) Edit(v *gocui.View, key gocui.Key, ch rune, mod gocui.Modifier) {
	if ev, ok := translateKey(key, ch, mod); ok {
		e.session.HandleKey(ev)
	}
}
