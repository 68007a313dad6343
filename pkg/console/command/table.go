package command

import (
	"errors"
	"fmt"
	"sort"
)

// Command is a named binding with optional help text.
type Command struct {
	Name        string
	Description string
	Binding     Binding
}

// Table maps command names to bindings. Names are case-sensitive and must
// be unique.
type Table struct {
	commands map[string]Command
}

// NewTable creates an empty command table.
func NewTable() *Table {
	return &Table{
		commands: make(map[string]Command),
	}
}

// TableOf builds a table from a name to binding map.
func TableOf(bindings map[string]Binding) *Table {
	t := NewTable()
	for name, b := range bindings {
		t.commands[name] = Command{Name: name, Binding: b}
	}
	return t
}

// Register binds name. Registering a name twice returns ErrDuplicateCommand.
func (t *Table) Register(name string, b Binding) error {
	return t.RegisterCommand(Command{Name: name, Binding: b})
}

// RegisterCommand adds a command with its help text.
func (t *Table) RegisterCommand(cmd Command) error {
	if cmd.Name == "" {
		return errors.New("command name must not be empty")
	}
	if _, ok := t.commands[cmd.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCommand, cmd.Name)
	}
	t.commands[cmd.Name] = cmd
	return nil
}

// Lookup returns the binding for an exact name.
func (t *Table) Lookup(name string) (Binding, bool) {
	cmd, ok := t.commands[name]
	return cmd.Binding, ok
}

// Len returns the number of commands.
func (t *Table) Len() int {
	return len(t.commands)
}

// Names returns all command names, sorted.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.commands))
	for name := range t.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Commands returns all commands sorted by name.
func (t *Table) Commands() []Command {
	result := make([]Command, 0, len(t.commands))
	for _, name := range t.Names() {
		result = append(result, t.commands[name])
	}
	return result
}

// Clone returns an independent copy of the table.
func (t *Table) Clone() *Table {
	c := NewTable()
	for name, cmd := range t.commands {
		c.commands[name] = cmd
	}
	return c
}
