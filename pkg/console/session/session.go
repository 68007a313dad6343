package session

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/kcaldas/console/pkg/console/command"
	"github.com/kcaldas/console/pkg/console/editor"
	"github.com/kcaldas/console/pkg/console/history"
	"github.com/kcaldas/console/pkg/console/keys"
	"github.com/kcaldas/console/pkg/events"
	"github.com/kcaldas/console/pkg/logging"
)

// Session is the state of one console: scrollback, the line being edited,
// history and focus. All methods are safe for concurrent use; key events are
// expected to arrive one at a time.
type Session struct {
	mu sync.Mutex

	id       string
	prompt   string
	welcome  string
	blink    bool
	resolver *command.Resolver
	editor   *editor.LineEditor
	history  *history.Log
	notifier Notifier
	logger   logging.Logger

	entries      []*Entry
	focused      bool
	inputEnabled bool
	caretOn      bool
	closed       bool

	// generation is bumped whenever pending output slots become invalid
	// (clear, close); settlements from an older generation are dropped.
	generation uint64
	ctx        context.Context
	cancel     context.CancelFunc
	tasks      map[string]context.CancelFunc
	inflight   sync.WaitGroup
}

// New creates a focused session.
func New(opts ...Option) *Session {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	resolverOpts := []command.ResolverOption{command.WithNotFoundMessage(o.notFound)}
	if o.defaultHandler != nil {
		resolverOpts = append(resolverOpts, command.WithDefaultHandler(*o.defaultHandler))
	}

	logger := o.logger
	if logger == nil {
		logger = logging.NewComponentLogger("session")
	}

	id := uuid.NewString()
	ctx, cancel := context.WithCancel(context.Background())

	return &Session{
		id:           id,
		prompt:       o.prompt,
		welcome:      o.welcome,
		blink:        o.blink,
		resolver:     command.NewResolver(o.commands, resolverOpts...),
		editor:       editor.New(),
		history:      history.New(history.WithMaxSize(o.historySize)),
		notifier:     o.notifier,
		logger:       logger.With("session", id),
		entries:      make([]*Entry, 0),
		focused:      true,
		inputEnabled: o.inputEnabled,
		caretOn:      true,
		ctx:          ctx,
		cancel:       cancel,
		tasks:        make(map[string]context.CancelFunc),
	}
}

// ID identifies the session in emitted events.
func (s *Session) ID() string {
	return s.id
}

// HandleKey applies one key event. It reports whether the visible state
// changed. Keys are ignored while the session is blurred, has input
// disabled or is closed.
func (s *Session) HandleKey(ev keys.Event) bool {
	s.mu.Lock()
	if s.closed || !s.inputEnabled || !s.focused {
		s.mu.Unlock()
		return false
	}

	action := keys.Classify(ev)
	changed := false
	var inline func()

	switch action.Kind {
	case keys.InsertChar:
		s.editor.InsertChar(action.Char)
		changed = true
	case keys.DeleteBack:
		changed = s.editor.DeleteBack()
	case keys.MoveLeft:
		changed = s.editor.MoveLeft()
	case keys.MoveRight:
		changed = s.editor.MoveRight()
	case keys.HistoryPrev:
		if line, ok := s.history.Prev(); ok {
			s.editor.SetLine(line)
			changed = true
		}
	case keys.HistoryNext:
		if line, ok := s.history.Next(); ok {
			s.editor.SetLine(line)
			changed = true
		}
	case keys.Submit:
		changed, inline = s.submitLocked()
	}

	if action.Kind != keys.Ignore {
		s.caretOn = true
	}
	s.mu.Unlock()

	if changed {
		s.notify()
	}
	// synchronous handlers may call back into the session
	if inline != nil {
		inline()
	}
	return changed
}

// HandleKeys applies events in order and returns how many changed the state.
func (s *Session) HandleKeys(evs []keys.Event) int {
	n := 0
	for _, ev := range evs {
		if s.HandleKey(ev) {
			n++
		}
	}
	return n
}

// submitLocked records the submitted line. The returned func, when set, runs
// a synchronous handler and must be called after s.mu is released.
func (s *Session) submitLocked() (bool, func()) {
	line := s.editor.Line()
	s.editor.Reset()

	out, ok := s.resolver.Prepare(line)
	if !ok {
		s.history.Reset()
		return line != "", nil
	}

	s.history.Push(line)

	if out.Kind == command.OutputClear {
		s.clearLocked()
		s.logger.Debug("scrollback cleared")
		return true, nil
	}

	entry := &Entry{
		ID:     uuid.NewString(),
		Prompt: s.prompt,
		Line:   line,
		Status: EntryPending,
	}
	s.entries = append(s.entries, entry)

	switch out.Kind {
	case command.OutputDeferred:
		s.startLocked(entry.ID, out)
	case command.OutputInline:
		id, generation := entry.ID, s.generation
		return true, func() {
			text, err := out.Task(s.ctx)
			s.settle(id, generation, out.Command, text, err)
		}
	default:
		s.fill(entry, out.Text, out.Err)
	}
	return true, nil
}

// startLocked runs a deferred output task for the entry with the given ID.
func (s *Session) startLocked(id string, out command.Output) {
	ctx, cancel := context.WithCancel(s.ctx)
	s.tasks[id] = cancel
	generation := s.generation

	s.logger.Debug("resolving command", "command", out.Command, "entry", id)

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		text, err := out.Task(ctx)
		s.settle(id, generation, out.Command, text, err)
	}()
}

// settle writes a task's result into its entry unless the slot is stale.
func (s *Session) settle(id string, generation uint64, name, text string, err error) {
	s.mu.Lock()
	if cancel, ok := s.tasks[id]; ok {
		cancel()
		delete(s.tasks, id)
	}

	if s.closed || generation != s.generation {
		s.mu.Unlock()
		s.logger.Debug("dropping stale command result", "command", name, "entry", id)
		return
	}

	entry := s.findLocked(id)
	if entry == nil || !entry.Pending() {
		s.mu.Unlock()
		return
	}

	if err != nil {
		s.fill(entry, command.FailureText(err), command.Rejected(name, err))
	} else {
		s.fill(entry, text, nil)
	}
	s.mu.Unlock()

	s.notify()
}

func (s *Session) fill(entry *Entry, text string, err error) {
	entry.Output = text
	entry.Status = EntryDone

	switch {
	case errors.Is(err, command.ErrCommandNotFound):
		s.logger.Debug("command not found", "line", entry.Line)
	case err != nil:
		entry.Status = EntryFailed
		s.logger.Warn("command failed", "line", entry.Line, "error", err)
	}
}

func (s *Session) findLocked(id string) *Entry {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].ID == id {
			return s.entries[i]
		}
	}
	return nil
}

// clearLocked empties the scrollback and abandons pending output slots.
func (s *Session) clearLocked() {
	s.generation++
	for id, cancel := range s.tasks {
		cancel()
		delete(s.tasks, id)
	}
	s.entries = make([]*Entry, 0)
}

// ClearScrollback empties the scrollback, as the clear command does. History is kept.
func (s *Session) ClearScrollback() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.clearLocked()
	s.mu.Unlock()
	s.notify()
}

// Focus lets key events through again.
func (s *Session) Focus() {
	s.setFocused(true)
}

// Blur makes the session ignore key events until Focus.
func (s *Session) Blur() {
	s.setFocused(false)
}

func (s *Session) setFocused(focused bool) {
	s.mu.Lock()
	changed := !s.closed && s.focused != focused
	if changed {
		s.focused = focused
		s.caretOn = true
	}
	s.mu.Unlock()

	if changed {
		s.notify()
	}
}

// Focused reports whether the session accepts key events.
func (s *Session) Focused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.focused
}

// SetInputEnabled turns key handling on or off.
func (s *Session) SetInputEnabled(enabled bool) {
	s.mu.Lock()
	changed := s.inputEnabled != enabled
	s.inputEnabled = enabled
	s.mu.Unlock()

	if changed {
		s.notify()
	}
}

// InputEnabled reports whether key handling is on.
func (s *Session) InputEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inputEnabled
}

// TickBlink flips the caret blink phase. It does nothing unless blinking is
// enabled.
func (s *Session) TickBlink() {
	s.mu.Lock()
	if !s.blink || s.closed {
		s.mu.Unlock()
		return
	}
	s.caretOn = !s.caretOn
	s.mu.Unlock()

	s.notify()
}

// State reports whether asynchronous handlers are in flight.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Session) stateLocked() State {
	if len(s.tasks) > 0 {
		return Resolving
	}
	return Idle
}

// Line returns the line being edited.
func (s *Session) Line() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editor.Line()
}

// Caret returns the caret index within the line being edited.
func (s *Session) Caret() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editor.Caret()
}

// Entries returns a copy of the scrollback.
func (s *Session) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entriesLocked()
}

func (s *Session) entriesLocked() []Entry {
	result := make([]Entry, len(s.entries))
	for i, e := range s.entries {
		result[i] = *e
	}
	return result
}

// History returns the submitted lines, oldest first.
func (s *Session) History() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Entries()
}

// HistoryCursor returns the history navigation cursor, -1 when not
// navigating.
func (s *Session) HistoryCursor() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Cursor()
}

// Snapshot is everything the presentation layer needs to draw the console.
type Snapshot struct {
	ID            string
	Welcome       string
	Prompt        string
	Entries       []Entry
	Before        string
	After         string
	CaretColumn   int
	CaretVisible  bool
	Focused       bool
	InputEnabled  bool
	State         State
	HistoryCursor int
}

// Line returns the full line being edited.
func (s Snapshot) Line() string {
	return s.Before + s.After
}

// Snapshot captures the visible state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		ID:            s.id,
		Welcome:       s.welcome,
		Prompt:        s.prompt,
		Entries:       s.entriesLocked(),
		Before:        s.editor.Before(),
		After:         s.editor.After(),
		CaretColumn:   s.editor.CaretColumn(),
		CaretVisible:  s.focused && s.inputEnabled && s.caretOn,
		Focused:       s.focused,
		InputEnabled:  s.inputEnabled,
		State:         s.stateLocked(),
		HistoryCursor: s.history.Cursor(),
	}
}

// Transcript renders the console as plain text: the welcome message, each
// entry's prompt line followed by its output, then the live prompt line.
func (s *Session) Transcript() string {
	return s.Snapshot().Transcript()
}

// Transcript renders the snapshot as plain text.
func (s Snapshot) Transcript() string {
	return strings.Join(s.Lines(), "\n")
}

// Lines returns the transcript split into display lines.
func (s Snapshot) Lines() []string {
	lines := make([]string, 0, 2*len(s.Entries)+2)
	if s.Welcome != "" {
		lines = append(lines, strings.Split(s.Welcome, "\n")...)
	}
	for _, e := range s.Entries {
		lines = append(lines, PromptLine(e.Prompt, e.Line))
		if !e.Pending() && e.Output != "" {
			lines = append(lines, strings.Split(e.Output, "\n")...)
		}
	}
	return append(lines, PromptLine(s.Prompt, s.Line()))
}

// PromptLine joins a prompt and a line the way the console shows them.
func PromptLine(prompt, line string) string {
	if line == "" {
		return prompt
	}
	if prompt == "" {
		return line
	}
	return prompt + " " + line
}

// Wait blocks until every asynchronous handler started so far settled.
func (s *Session) Wait() {
	s.inflight.Wait()
}

// Close tears the session down. Pending handlers are cancelled and their
// results discarded; further key events are ignored.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.generation++
	s.tasks = make(map[string]context.CancelFunc)
	s.mu.Unlock()

	s.cancel()
	s.logger.Debug("session closed")

	if s.notifier != nil {
		s.notifier.Emit(events.ConsoleClosed, s.id)
	}
}

func (s *Session) notify() {
	if s.notifier != nil {
		s.notifier.Emit(events.ConsoleUpdated, s.id)
	}
}
