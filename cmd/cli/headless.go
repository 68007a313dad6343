package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/kcaldas/console/pkg/console/keys"
	"github.com/kcaldas/console/pkg/console/session"
)

// maxLineSize caps a single piped input line.
const maxLineSize = 1 << 20

// runHeadless types each input line into the session followed by Enter,
// waits for its output and prints the scrollback the line produced.
func runHeadless(ctx context.Context, s *session.Session, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	printed := 0

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.HandleKeys(keys.Type(scanner.Text()))
		s.HandleKey(keys.Event{Key: keys.Enter})
		if err := waitSettled(ctx, s); err != nil {
			return err
		}

		entries := s.Entries()
		if len(entries) < printed {
			// cleared
			printed = 0
		}
		for _, e := range entries[printed:] {
			if _, err := fmt.Fprintln(out, session.PromptLine(e.Prompt, e.Line)); err != nil {
				return err
			}
			if e.Output != "" {
				if _, err := fmt.Fprintln(out, e.Output); err != nil {
					return err
				}
			}
		}
		printed = len(entries)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}
	return nil
}

// waitSettled waits for the session's pending handlers. When ctx ends first
// the session is closed, which cancels them.
func waitSettled(ctx context.Context, s *session.Session) error {
	done := make(chan struct{})
	go func() {
		s.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		s.Close()
		return ctx.Err()
	}
}
