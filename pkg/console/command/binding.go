package command

import (
	"context"
	"fmt"
)

// BindingKind tags the variant held by a Binding.
type BindingKind int

const (
	KindLiteral BindingKind = iota
	KindFunc
	KindAsync
)

func (k BindingKind) String() string {
	switch k {
	case KindFunc:
		return "func"
	case KindAsync:
		return "async"
	default:
		return "literal"
	}
}

// SyncFunc handles a command inline. It receives the full trimmed line.
type SyncFunc func(line string) (string, error)

// AsyncFunc handles a command off the input path. It receives the full
// trimmed line and must honour ctx cancellation.
type AsyncFunc func(ctx context.Context, line string) (string, error)

// Binding is what a command name resolves to: a literal value, a
// synchronous handler or an asynchronous handler.
type Binding struct {
	kind  BindingKind
	text  string
	fn    SyncFunc
	async AsyncFunc
}

// Literal binds a command to fixed output.
func Literal(text string) Binding {
	return Binding{kind: KindLiteral, text: text}
}

// Value binds a command to the string form of v.
func Value(v any) Binding {
	return Literal(fmt.Sprint(v))
}

// Func binds a command to a synchronous handler.
func Func(fn SyncFunc) Binding {
	return Binding{kind: KindFunc, fn: fn}
}

// Async binds a command to an asynchronous handler.
func Async(fn AsyncFunc) Binding {
	return Binding{kind: KindAsync, async: fn}
}

// Kind returns the variant tag.
func (b Binding) Kind() BindingKind {
	return b.kind
}

// prepare turns the binding into an Output for the given command without
// running it. Synchronous handlers come back as OutputInline.
func (b Binding) prepare(name, line string) Output {
	switch b.kind {
	case KindFunc:
		fn := b.fn
		return Output{
			Kind:    OutputInline,
			Command: name,
			Task: func(context.Context) (string, error) {
				return callSync(fn, line)
			},
		}
	case KindAsync:
		fn := b.async
		return Output{
			Kind:    OutputDeferred,
			Command: name,
			Task: func(ctx context.Context) (string, error) {
				return callAsync(ctx, fn, line)
			},
		}
	default:
		return Output{Kind: OutputText, Command: name, Text: b.text}
	}
}

func callSync(fn SyncFunc, line string) (text string, err error) {
	if fn == nil {
		return "", nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = panicError(r)
		}
	}()
	return fn(line)
}

func callAsync(ctx context.Context, fn AsyncFunc, line string) (text string, err error) {
	if fn == nil {
		return "", nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = panicError(r)
		}
	}()
	return fn(ctx, line)
}

func panicError(r any) error {
	if r == nil {
		return emptyError{}
	}
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%v", r)
}
