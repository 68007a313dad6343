package keys

import (
	"unicode"
	"unicode/utf8"
)

// Raw key names delivered by the host.
const (
	Enter      = "Enter"
	Backspace  = "Backspace"
	ArrowUp    = "ArrowUp"
	ArrowDown  = "ArrowDown"
	ArrowLeft  = "ArrowLeft"
	ArrowRight = "ArrowRight"
	Tab        = "Tab"
)

// Event is a single raw keystroke as seen by the console.
type Event struct {
	Key  string
	Meta bool
}

// Kind identifies what a keystroke means to the console.
type Kind int

const (
	Ignore Kind = iota
	InsertChar
	DeleteBack
	MoveLeft
	MoveRight
	HistoryPrev
	HistoryNext
	Submit
)

func (k Kind) String() string {
	switch k {
	case InsertChar:
		return "insert-char"
	case DeleteBack:
		return "delete-back"
	case MoveLeft:
		return "move-left"
	case MoveRight:
		return "move-right"
	case HistoryPrev:
		return "history-prev"
	case HistoryNext:
		return "history-next"
	case Submit:
		return "submit"
	default:
		return "ignore"
	}
}

// Action is the classified form of an Event. Char is only set for InsertChar.
type Action struct {
	Kind Kind
	Char rune
}

// Classify maps a raw key event to an Action. Tab and every unrecognized key
// classify to Ignore. The meta flag does not change classification.
func Classify(ev Event) Action {
	switch ev.Key {
	case Enter:
		return Action{Kind: Submit}
	case Backspace:
		return Action{Kind: DeleteBack}
	case ArrowUp:
		return Action{Kind: HistoryPrev}
	case ArrowDown:
		return Action{Kind: HistoryNext}
	case ArrowLeft:
		return Action{Kind: MoveLeft}
	case ArrowRight:
		return Action{Kind: MoveRight}
	case Tab:
		return Action{Kind: Ignore}
	}

	if r, ok := printable(ev.Key); ok {
		return Action{Kind: InsertChar, Char: r}
	}
	return Action{Kind: Ignore}
}

// Char builds the event for a typed character.
func Char(r rune) Event {
	return Event{Key: string(r)}
}

// Type converts text into one event per character, the way a user would
// type it.
func Type(text string) []Event {
	events := make([]Event, 0, utf8.RuneCountInString(text))
	for _, r := range text {
		events = append(events, Char(r))
	}
	return events
}

// printable reports whether key is exactly one printable character.
func printable(key string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(key)
	if r == utf8.RuneError || size != len(key) {
		return 0, false
	}
	return r, unicode.IsPrint(r)
}
