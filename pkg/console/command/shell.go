package command

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
)

// Shell binds a command to a script run by sh. The command arguments are
// passed as positional parameters ($1, $2, ...). Standard output becomes
// the command output; on failure the trimmed standard error is reported.
func Shell(script string) Binding {
	return Async(func(ctx context.Context, line string) (string, error) {
		argv := append([]string{"-c", script, "sh"}, Args(line)...)
		cmd := exec.CommandContext(ctx, "sh", argv...)

		var stdout, stderr bytes.Buffer
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr

		if err := cmd.Run(); err != nil {
			if msg := strings.TrimSpace(stderr.String()); msg != "" {
				return "", errors.New(msg)
			}
			return "", err
		}
		return strings.TrimRight(stdout.String(), "\n"), nil
	})
}
