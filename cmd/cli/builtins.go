package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/kcaldas/console/pkg/console/command"
)

// registerBuiltins adds help, echo, date and sleep to table. Names the
// config file already binds are left alone.
func registerBuiltins(table *command.Table, now func() time.Time) error {
	builtins := []command.Command{
		{Name: "help", Description: "list available commands", Binding: command.Func(helpHandler(table))},
		{Name: "echo", Description: "print the arguments", Binding: command.Func(echoHandler)},
		{Name: "date", Description: "show the current date and time", Binding: command.Func(dateHandler(now))},
		{Name: "sleep", Description: "wait for the given number of seconds", Binding: command.Async(sleepHandler)},
	}

	for _, b := range builtins {
		if _, ok := table.Lookup(b.Name); ok {
			continue
		}
		if err := table.RegisterCommand(b); err != nil {
			return err
		}
	}
	return nil
}

func helpHandler(table *command.Table) command.SyncFunc {
	return func(string) (string, error) {
		cmds := append(table.Commands(), command.Command{
			Name:        command.ClearCommand,
			Description: "clear the screen",
		})
		sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name < cmds[j].Name })

		width := 0
		for _, c := range cmds {
			width = max(width, len(c.Name))
		}

		lines := make([]string, 0, len(cmds))
		for _, c := range cmds {
			lines = append(lines, strings.TrimRight(fmt.Sprintf("%-*s  %s", width, c.Name, c.Description), " "))
		}
		return strings.Join(lines, "\n"), nil
	}
}

func echoHandler(line string) (string, error) {
	return strings.Join(command.Args(line), " "), nil
}

func dateHandler(now func() time.Time) command.SyncFunc {
	return func(string) (string, error) {
		return now().Format(time.RFC1123), nil
	}
}

func sleepHandler(ctx context.Context, line string) (string, error) {
	args := command.Args(line)
	if len(args) != 1 {
		return "", errors.New("usage: sleep <seconds>")
	}

	seconds, err := strconv.ParseFloat(args[0], 64)
	if err != nil || seconds < 0 {
		return "", fmt.Errorf("invalid duration: %s", args[0])
	}
	d := time.Duration(seconds * float64(time.Second))

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return fmt.Sprintf("slept %s", d), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
