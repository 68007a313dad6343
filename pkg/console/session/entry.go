package session

// Status is the state of an entry's output slot.
type Status int

const (
	EntryPending Status = iota
	EntryDone
	EntryFailed
)

func (s Status) String() string {
	switch s {
	case EntryDone:
		return "done"
	case EntryFailed:
		return "failed"
	default:
		return "pending"
	}
}

// Entry is one unit of scrollback: the prompt, the submitted line and the
// output produced for it. Output is empty while Status is EntryPending.
type Entry struct {
	ID     string
	Prompt string
	Line   string
	Output string
	Status Status
}

// Pending reports whether the output slot is still waiting for a handler.
func (e Entry) Pending() bool {
	return e.Status == EntryPending
}

// State is the resolution state of a session.
type State int

const (
	// Idle means no asynchronous handler is in flight.
	Idle State = iota
	// Resolving means at least one asynchronous handler is in flight.
	Resolving
)

func (s State) String() string {
	if s == Resolving {
		return "resolving"
	}
	return "idle"
}
