package config

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/kcaldas/console/pkg/console/command"
	"github.com/kcaldas/console/pkg/console/keys"
	"github.com/kcaldas/console/pkg/console/session"
	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
prompt: "$"
welcome_message: hello
error_message: nope
blink: true
history_size: 500
commands:
  whoami: jackharper
  uptime:
    run: echo up
    description: system uptime
  greet:
    output: hi there
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "$", cfg.Prompt)
	assert.Equal(t, "hello", cfg.WelcomeMessage)
	assert.Equal(t, "nope", cfg.ErrorMessage)
	assert.True(t, cfg.EnableInput, "unset keys keep their defaults")
	assert.True(t, cfg.Blink)
	assert.Equal(t, 500, cfg.HistorySize)
	assert.Equal(t, []string{"greet", "uptime", "whoami"}, cfg.CommandNames())
	assert.Equal(t, CommandConfig{Output: "jackharper"}, cfg.Commands["whoami"])
	assert.Equal(t, CommandConfig{Run: "echo up", Description: "system uptime"}, cfg.Commands["uptime"])
	assert.Equal(t, CommandConfig{Output: "hi there"}, cfg.Commands["greet"])
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"output and run", "commands:\n  x:\n    output: a\n    run: b\n"},
		{"negative history", "history_size: -1\n"},
		{"command list", "commands:\n  x: [a, b]\n"},
		{"not yaml", "prompt: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "$", cfg.Prompt)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err, "an explicit path must exist")
}

func TestLoad_DefaultPathIsOptional(t *testing.T) {
	homedir.DisableCache = true
	defer func() { homedir.DisableCache = false }()
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, session.DefaultPrompt, cfg.Prompt)
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(NewStaticManager(map[string]string{
		EnvPrompt:       "#",
		EnvWelcome:      "hi",
		EnvErrorMessage: "unknown",
		EnvEnableInput:  "false",
		EnvBlink:        "true",
		EnvHistorySize:  "10",
	}))
	require.NoError(t, err)

	assert.Equal(t, "#", cfg.Prompt)
	assert.Equal(t, "hi", cfg.WelcomeMessage)
	assert.Equal(t, "unknown", cfg.ErrorMessage)
	assert.False(t, cfg.EnableInput)
	assert.True(t, cfg.Blink)
	assert.Equal(t, 10, cfg.HistorySize)
}

func TestApplyEnv_Invalid(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(NewStaticManager(map[string]string{
		EnvBlink:       "sometimes",
		EnvHistorySize: "lots",
	}))
	assert.Error(t, err)
	assert.False(t, cfg.Blink)
	assert.Equal(t, 0, cfg.HistorySize)
}

func TestApplyEnv_NegativeHistorySize(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	err = cfg.ApplyEnv(NewStaticManager(map[string]string{EnvHistorySize: "-5"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvHistorySize)
	assert.Equal(t, 500, cfg.HistorySize)
}

func TestApplyEnv_Unset(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	require.NoError(t, cfg.ApplyEnv(NewStaticManager(nil)))
	assert.Equal(t, "$", cfg.Prompt)
	assert.Equal(t, 500, cfg.HistorySize)
}

func TestTable(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	table, err := cfg.Table()
	require.NoError(t, err)
	assert.Equal(t, []string{"greet", "uptime", "whoami"}, table.Names())

	whoami, ok := table.Lookup("whoami")
	require.True(t, ok)
	assert.Equal(t, command.KindLiteral, whoami.Kind())

	uptime, ok := table.Lookup("uptime")
	require.True(t, ok)
	assert.Equal(t, command.KindAsync, uptime.Kind())

	commands := table.Commands()
	require.Len(t, commands, 3)
	assert.Equal(t, "system uptime", commands[1].Description)
}

func TestSessionOptions(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)
	table, err := cfg.Table()
	require.NoError(t, err)

	s := session.New(append(cfg.SessionOptions(), session.WithCommands(table))...)
	defer s.Close()

	s.HandleKeys(typeLine("uptime"))
	s.HandleKeys(typeLine("missing"))
	s.Wait()

	assert.Equal(t, "hello\n$ uptime\nup\n$ missing\nnope\n$", s.Transcript())
	assert.True(t, s.Snapshot().CaretVisible)
}

func typeLine(line string) []keys.Event {
	return append(keys.Type(line), keys.Event{Key: keys.Enter})
}
