package editor

import (
	"github.com/mattn/go-runewidth"
)

// LineEditor owns the single input line and the caret position within it.
// The caret counts runes, not bytes.
type LineEditor struct {
	line  []rune
	caret int
}

// New creates an empty line editor.
func New() *LineEditor {
	return &LineEditor{}
}

// InsertChar splices ch at the caret and advances the caret.
func (e *LineEditor) InsertChar(ch rune) {
	e.clamp()
	e.line = append(e.line, 0)
	copy(e.line[e.caret+1:], e.line[e.caret:])
	e.line[e.caret] = ch
	e.caret++
}

// DeleteBack removes the character before the caret. It reports whether
// anything was removed.
func (e *LineEditor) DeleteBack() bool {
	e.clamp()
	if e.caret == 0 {
		return false
	}
	e.line = append(e.line[:e.caret-1], e.line[e.caret:]...)
	e.caret--
	return true
}

// MoveLeft moves the caret one character left, stopping at the start.
func (e *LineEditor) MoveLeft() bool {
	e.clamp()
	if e.caret == 0 {
		return false
	}
	e.caret--
	return true
}

// MoveRight moves the caret one character right, stopping at the end.
func (e *LineEditor) MoveRight() bool {
	e.clamp()
	if e.caret == len(e.line) {
		return false
	}
	e.caret++
	return true
}

// Reset clears the line.
func (e *LineEditor) Reset() {
	e.line = e.line[:0]
	e.caret = 0
}

// SetLine replaces the whole line and puts the caret at the end.
func (e *LineEditor) SetLine(text string) {
	e.line = []rune(text)
	e.caret = len(e.line)
}

// Line returns the current input line.
func (e *LineEditor) Line() string {
	return string(e.line)
}

// Len returns the line length in characters.
func (e *LineEditor) Len() int {
	return len(e.line)
}

// Caret returns the caret index, always within [0, Len()].
func (e *LineEditor) Caret() int {
	e.clamp()
	return e.caret
}

// Before returns the part of the line left of the caret.
func (e *LineEditor) Before() string {
	e.clamp()
	return string(e.line[:e.caret])
}

// After returns the part of the line at and right of the caret.
func (e *LineEditor) After() string {
	e.clamp()
	return string(e.line[e.caret:])
}

// CaretColumn returns the terminal column of the caret relative to the
// start of the line, counting wide characters as two cells.
func (e *LineEditor) CaretColumn() int {
	return runewidth.StringWidth(e.Before())
}

// clamp pulls the caret back into range instead of failing.
func (e *LineEditor) clamp() {
	if e.caret < 0 {
		e.caret = 0
	}
	if e.caret > len(e.line) {
		e.caret = len(e.line)
	}
}
