package tui

import (
	"fmt"

	"github.com/kcaldas/console/pkg/console/session"
	"github.com/mattn/go-runewidth"
)

// consoleFrame is the console view contents for one snapshot. CursorX and
// CursorY are absolute; subtract the origin for the view cursor.
type consoleFrame struct {
	Lines   []string
	OriginX int
	OriginY int
	CursorX int
	CursorY int
}

func layoutConsole(snap session.Snapshot, width, height int) consoleFrame {
	lines := snap.Lines()

	promptWidth := runewidth.StringWidth(snap.Prompt)
	if promptWidth > 0 {
		promptWidth++
	}

	frame := consoleFrame{
		Lines:   lines,
		CursorX: promptWidth + snap.CaretColumn,
		CursorY: len(lines) - 1,
	}
	if height > 0 && len(lines) > height {
		frame.OriginY = len(lines) - height
	}
	// keep the caret cell inside the view
	if width > 0 && frame.CursorX >= width {
		frame.OriginX = frame.CursorX - width + 1
	}
	return frame
}

func statusText(snap session.Snapshot, width int) string {
	focus := "focused"
	switch {
	case !snap.InputEnabled:
		focus = "input disabled"
	case !snap.Focused:
		focus = "blurred (click to focus)"
	}

	text := fmt.Sprintf(" %s | %s | %d entries", focus, snap.State, len(snap.Entries))
	if snap.HistoryCursor >= 0 {
		text += fmt.Sprintf(" | history %d", snap.HistoryCursor+1)
	}

	if width <= 0 {
		return text
	}
	return runewidth.Truncate(text, width, "…")
}
