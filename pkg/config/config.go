package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/kcaldas/console/pkg/console/command"
	"github.com/kcaldas/console/pkg/console/session"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// Environment overrides, applied on top of the config file.
const (
	EnvPrompt       = "CONSOLE_PROMPT"
	EnvWelcome      = "CONSOLE_WELCOME"
	EnvErrorMessage = "CONSOLE_ERROR_MESSAGE"
	EnvEnableInput  = "CONSOLE_ENABLE_INPUT"
	EnvBlink        = "CONSOLE_BLINK"
	EnvHistorySize  = "CONSOLE_HISTORY_SIZE"
)

// DefaultPath is where the config file is looked up when none is given.
const DefaultPath = "~/.console/config.yaml"

// Config holds the console settings read from YAML.
type Config struct {
	Prompt         string                   `yaml:"prompt"`
	WelcomeMessage string                   `yaml:"welcome_message"`
	ErrorMessage   string                   `yaml:"error_message"`
	EnableInput    bool                     `yaml:"enable_input"`
	Blink          bool                     `yaml:"blink"`
	HistorySize    int                      `yaml:"history_size"`
	Commands       map[string]CommandConfig `yaml:"commands"`
}

// CommandConfig binds one command. A bare string is shorthand for Output.
type CommandConfig struct {
	Output      string `yaml:"output,omitempty"`
	Run         string `yaml:"run,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// UnmarshalYAML accepts either a scalar or a mapping.
func (c *CommandConfig) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		c.Output = value.Value
		return nil
	}

	type plain CommandConfig
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	if p.Output != "" && p.Run != "" {
		return fmt.Errorf("line %d: command sets both output and run", value.Line)
	}
	*c = CommandConfig(p)
	return nil
}

// MarshalYAML writes output-only commands in the shorthand form.
func (c CommandConfig) MarshalYAML() (interface{}, error) {
	if c.Run == "" && c.Description == "" {
		return c.Output, nil
	}
	type plain CommandConfig
	return plain(c), nil
}

// Binding converts the entry into a command binding. Run entries become
// shell handlers.
func (c CommandConfig) Binding() command.Binding {
	if c.Run != "" {
		return command.Shell(c.Run)
	}
	return command.Literal(c.Output)
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{
		Prompt:      session.DefaultPrompt,
		EnableInput: true,
		Commands:    make(map[string]CommandConfig),
	}
}

// Sample returns the settings written by "console init".
func Sample() *Config {
	cfg := Default()
	cfg.WelcomeMessage = "Welcome! Type help to list the commands."
	cfg.Blink = true
	cfg.HistorySize = 500
	cfg.Commands["whoami"] = CommandConfig{Output: "jackharper"}
	cfg.Commands["uptime"] = CommandConfig{Run: "uptime", Description: "system uptime"}
	return cfg
}

// ExpandPath resolves path the way Load does, DefaultPath when empty.
func ExpandPath(path string) (string, error) {
	if path == "" {
		path = DefaultPath
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("error resolving config path %s: %w", path, err)
	}
	return filepath.Clean(expanded), nil
}

// Parse decodes YAML on top of the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	if cfg.HistorySize < 0 {
		return nil, fmt.Errorf("history_size must not be negative, got %d", cfg.HistorySize)
	}
	if cfg.Commands == nil {
		cfg.Commands = make(map[string]CommandConfig)
	}
	return cfg, nil
}

// Load reads the config file at path, expanding a leading ~. An empty path
// means DefaultPath, which may be absent.
func Load(path string) (*Config, error) {
	optional := path == ""
	expanded, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", expanded, err)
	}
	return cfg, nil
}

// ApplyEnv overrides settings with the CONSOLE_* values found in m.
// Invalid numbers and booleans are reported.
func (c *Config) ApplyEnv(m Manager) error {
	c.Prompt = m.GetStringWithDefault(EnvPrompt, c.Prompt)
	c.WelcomeMessage = m.GetStringWithDefault(EnvWelcome, c.WelcomeMessage)
	c.ErrorMessage = m.GetStringWithDefault(EnvErrorMessage, c.ErrorMessage)

	var errs []error
	if v, err := m.GetBool(EnvEnableInput); err == nil {
		c.EnableInput = v
	} else if !errors.Is(err, ErrKeyNotFound) {
		errs = append(errs, err)
	}
	if v, err := m.GetBool(EnvBlink); err == nil {
		c.Blink = v
	} else if !errors.Is(err, ErrKeyNotFound) {
		errs = append(errs, err)
	}
	if v, err := m.GetInt(EnvHistorySize); err == nil {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %d", EnvHistorySize, v))
		} else {
			c.HistorySize = v
		}
	} else if !errors.Is(err, ErrKeyNotFound) {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// CommandNames returns the configured command names, sorted.
func (c *Config) CommandNames() []string {
	names := make([]string, 0, len(c.Commands))
	for name := range c.Commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Table builds the command table for the configured commands.
func (c *Config) Table() (*command.Table, error) {
	table := command.NewTable()
	for _, name := range c.CommandNames() {
		entry := c.Commands[name]
		err := table.RegisterCommand(command.Command{
			Name:        name,
			Description: entry.Description,
			Binding:     entry.Binding(),
		})
		if err != nil {
			return nil, fmt.Errorf("error registering command %q: %w", name, err)
		}
	}
	return table, nil
}

// SessionOptions turns the settings into session options. Commands are not
// included; pass the table built by Table with session.WithCommands.
func (c *Config) SessionOptions() []session.Option {
	opts := []session.Option{
		session.WithPrompt(c.Prompt),
		session.WithWelcomeMessage(c.WelcomeMessage),
		session.WithInputEnabled(c.EnableInput),
		session.WithBlink(c.Blink),
		session.WithHistorySize(c.HistorySize),
	}
	if c.ErrorMessage != "" {
		opts = append(opts, session.WithErrorMessage(command.StaticMessage(c.ErrorMessage)))
	}
	return opts
}
