package command

import (
	"context"
	"strings"
	"unicode"
)

// ClearCommand is reserved: it clears the scrollback instead of being looked
// up in the table.
const ClearCommand = "clear"

// OutputKind tags the variant held by an Output.
type OutputKind int

const (
	// OutputText carries text that is ready now.
	OutputText OutputKind = iota
	// OutputDeferred carries a task that produces the text later.
	OutputDeferred
	// OutputClear asks the session to clear the scrollback.
	OutputClear
	// OutputInline carries a synchronous handler for the caller to run. Only
	// Prepare returns it.
	OutputInline
)

// Task produces deferred output.
type Task func(ctx context.Context) (string, error)

// Output is the result of resolving a submitted line. Err is
// ErrCommandNotFound or wraps ErrHandlerRejected when Text describes a
// failure. Task is only set for OutputDeferred and OutputInline.
type Output struct {
	Kind    OutputKind
	Command string
	Text    string
	Err     error
	Task    Task
}

// Resolver resolves submitted lines against a snapshot of a command table.
type Resolver struct {
	table    *Table
	notFound Message
	fallback *Binding
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithNotFoundMessage sets the text shown for unbound commands.
func WithNotFoundMessage(m Message) ResolverOption {
	return func(r *Resolver) {
		r.notFound = m
	}
}

// WithDefaultHandler sets a binding used for every unbound command. It
// takes precedence over the not-found message.
func WithDefaultHandler(b Binding) ResolverOption {
	return func(r *Resolver) {
		r.fallback = &b
	}
}

// NewResolver creates a resolver over a copy of table. A nil table resolves
// every command as unbound.
func NewResolver(table *Table, opts ...ResolverOption) *Resolver {
	if table == nil {
		table = NewTable()
	}
	r := &Resolver{table: table.Clone()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Names returns the names of the commands the resolver knows.
func (r *Resolver) Names() []string {
	return r.table.Names()
}

// Resolve trims line and resolves it, running synchronous handlers. ok is
// false for a blank line, in which case nothing should happen.
func (r *Resolver) Resolve(line string) (out Output, ok bool) {
	out, ok = r.Prepare(line)
	if ok && out.Kind == OutputInline {
		out = RunInline(out)
	}
	return out, ok
}

// Prepare is Resolve without running synchronous handlers: a Func binding
// comes back as OutputInline so the caller can run it outside its own locks.
func (r *Resolver) Prepare(line string) (out Output, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Output{}, false
	}

	name := CommandName(line)
	if name == ClearCommand {
		return Output{Kind: OutputClear, Command: name}, true
	}

	if b, found := r.table.Lookup(name); found {
		return b.prepare(name, line), true
	}

	if r.fallback != nil {
		return r.fallback.prepare(name, line), true
	}

	return Output{
		Kind:    OutputText,
		Command: name,
		Text:    r.notFound.Render(name),
		Err:     ErrCommandNotFound,
	}, true
}

// RunInline runs an OutputInline handler and returns its text output. Other
// kinds are returned unchanged.
func RunInline(out Output) Output {
	if out.Kind != OutputInline {
		return out
	}
	text, err := out.Task(context.Background())
	if err != nil {
		return Output{
			Kind:    OutputText,
			Command: out.Command,
			Text:    FailureText(err),
			Err:     Rejected(out.Command, err),
		}
	}
	return Output{Kind: OutputText, Command: out.Command, Text: text}
}

// CommandName returns the part of line before the first whitespace.
func CommandName(line string) string {
	line = strings.TrimSpace(line)
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		return line[:i]
	}
	return line
}

// Args returns the whitespace separated words after the command name.
func Args(line string) []string {
	fields := strings.Fields(line)
	if len(fields) <= 1 {
		return nil
	}
	return fields[1:]
}
