package command

// DefaultNotFound is shown for unbound commands when no message is
// configured.
const DefaultNotFound = "Command not found!"

type messageKind int

const (
	messageDefault messageKind = iota
	messageStatic
	messageFunc
	messageFuncFor
)

// Message is the configurable not-found text: a static string, a function
// of no arguments or a function of the command name.
type Message struct {
	kind  messageKind
	text  string
	fn    func() string
	fnFor func(name string) string
}

// StaticMessage always renders text.
func StaticMessage(text string) Message {
	return Message{kind: messageStatic, text: text}
}

// MessageFunc renders whatever fn returns.
func MessageFunc(fn func() string) Message {
	return Message{kind: messageFunc, fn: fn}
}

// MessageFuncFor renders whatever fn returns for the unresolved command name.
func MessageFuncFor(fn func(name string) string) Message {
	return Message{kind: messageFuncFor, fnFor: fn}
}

// IsZero reports whether the message was left unconfigured.
func (m Message) IsZero() bool {
	return m.kind == messageDefault
}

// Render produces the text for the unresolved command name.
func (m Message) Render(name string) string {
	switch m.kind {
	case messageStatic:
		return m.text
	case messageFunc:
		if m.fn != nil {
			return m.fn()
		}
	case messageFuncFor:
		if m.fnFor != nil {
			return m.fnFor(name)
		}
	}
	return DefaultNotFound
}
