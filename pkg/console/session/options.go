package session

import (
	"github.com/kcaldas/console/pkg/console/command"
	"github.com/kcaldas/console/pkg/logging"
)

// DefaultPrompt is shown before every line when no prompt is configured.
const DefaultPrompt = ">>>"

// Notifier receives an event whenever the visible state changes.
// *events.Bus satisfies it.
type Notifier interface {
	Emit(eventType string, event interface{})
}

type options struct {
	prompt         string
	welcome        string
	inputEnabled   bool
	blink          bool
	historySize    int
	commands       *command.Table
	notFound       command.Message
	defaultHandler *command.Binding
	notifier       Notifier
	logger         logging.Logger
}

func defaultOptions() options {
	return options{
		prompt:       DefaultPrompt,
		inputEnabled: true,
	}
}

// Option configures a Session.
type Option func(*options)

// WithPrompt sets the prompt shown before each line.
func WithPrompt(prompt string) Option {
	return func(o *options) {
		o.prompt = prompt
	}
}

// WithWelcomeMessage sets text shown once above the scrollback.
func WithWelcomeMessage(msg string) Option {
	return func(o *options) {
		o.welcome = msg
	}
}

// WithInputEnabled turns key handling on or off. Input is enabled by default.
func WithInputEnabled(enabled bool) Option {
	return func(o *options) {
		o.inputEnabled = enabled
	}
}

// WithBlink makes the caret blink on TickBlink.
func WithBlink(blink bool) Option {
	return func(o *options) {
		o.blink = blink
	}
}

// WithHistorySize limits the number of remembered lines.
func WithHistorySize(n int) Option {
	return func(o *options) {
		o.historySize = n
	}
}

// WithCommands sets the command table. The session keeps its own snapshot.
func WithCommands(table *command.Table) Option {
	return func(o *options) {
		o.commands = table
	}
}

// WithErrorMessage sets the text shown for unknown commands.
func WithErrorMessage(msg command.Message) Option {
	return func(o *options) {
		o.notFound = msg
	}
}

// WithDefaultHandler handles every unknown command instead of the error
// message.
func WithDefaultHandler(b command.Binding) Option {
	return func(o *options) {
		o.defaultHandler = &b
	}
}

// WithNotifier sets where state change events are sent.
func WithNotifier(n Notifier) Option {
	return func(o *options) {
		o.notifier = n
	}
}

// WithLogger sets the session logger.
func WithLogger(logger logging.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
