package command

import (
	"errors"
	"fmt"
)

var (
	// ErrCommandNotFound marks output produced for an unbound command name.
	ErrCommandNotFound = errors.New("command not found")

	// ErrHandlerRejected marks output produced by a handler that failed.
	ErrHandlerRejected = errors.New("command handler failed")

	// ErrDuplicateCommand is returned when a name is registered twice.
	ErrDuplicateCommand = errors.New("command already registered")
)

// genericFailure is shown when a failing handler gives no error text.
const genericFailure = "command failed"

// FailureText is the text shown in the scrollback for a failed handler.
func FailureText(err error) string {
	if err == nil || err.Error() == "" {
		return genericFailure
	}
	return err.Error()
}

// Rejected wraps a handler error so it matches ErrHandlerRejected.
func Rejected(name string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrHandlerRejected, name, err)
}

// emptyError is an error without text, used when a handler panics with nil.
type emptyError struct{}

func (emptyError) Error() string { return "" }
