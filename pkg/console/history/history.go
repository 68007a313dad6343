package history

import (
	"strings"
)

// none marks the cursor as not navigating.
const none = -1

// Log is the ordered list of submitted lines plus a navigation cursor.
// The cursor counts back from the newest entry: 0 is the newest line,
// Len()-1 the oldest, and -1 means the user is not navigating.
type Log struct {
	entries []string
	maxSize int
	cursor  int
}

// Option configures a Log.
type Option func(*Log)

// WithMaxSize keeps only the newest n entries. Zero or negative means
// unlimited.
func WithMaxSize(n int) Option {
	return func(l *Log) {
		l.maxSize = n
	}
}

// New creates an empty history log.
func New(opts ...Option) *Log {
	l := &Log{
		entries: make([]string, 0),
		cursor:  none,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Push appends a submitted line and stops navigation. Blank lines are not
// recorded.
func (l *Log) Push(line string) {
	line = strings.TrimSpace(line)
	l.cursor = none
	if line == "" {
		return
	}

	l.entries = append(l.entries, line)

	if l.maxSize > 0 && len(l.entries) > l.maxSize {
		l.entries = l.entries[len(l.entries)-l.maxSize:]
	}
}

// Prev moves one step towards older entries and returns the entry under the
// cursor. It holds at the oldest entry. ok is false when there is no history.
func (l *Log) Prev() (string, bool) {
	if len(l.entries) == 0 {
		return "", false
	}

	next := l.cursor + 1
	if next >= len(l.entries) {
		next = len(l.entries) - 1
	}
	l.cursor = next

	return l.entries[len(l.entries)-1-l.cursor], true
}

// Next moves one step towards newer entries. Moving past the newest entry
// stops navigation and returns an empty line. ok is false when the cursor
// was not navigating, in which case nothing changes.
func (l *Log) Next() (string, bool) {
	if l.cursor == none {
		return "", false
	}

	l.cursor--
	if l.cursor == none {
		return "", true
	}

	return l.entries[len(l.entries)-1-l.cursor], true
}

// Reset stops navigation without touching the entries.
func (l *Log) Reset() {
	l.cursor = none
}

// Navigating reports whether the cursor points at an entry.
func (l *Log) Navigating() bool {
	return l.cursor != none
}

// Cursor returns the raw cursor, -1 when not navigating.
func (l *Log) Cursor() int {
	return l.cursor
}

// Len returns the number of entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the entries, oldest first.
func (l *Log) Entries() []string {
	result := make([]string, len(l.entries))
	copy(result, l.entries)
	return result
}
