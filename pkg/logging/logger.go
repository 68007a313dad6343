package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Environment variables controlling the file logger used while the terminal
// is owned by the console UI.
const (
	EnvDebugFile  = "CONSOLE_DEBUG_FILE"
	EnvDebugLevel = "CONSOLE_DEBUG_LEVEL"
)

// Logger interface for dependency injection and testing
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
	WithGroup(name string) Logger
	SetLevel(level slog.Level)
}

// Config holds logger configuration
type Config struct {
	Level   slog.Level
	Format  Format
	Output  io.Writer
	AddTime bool
}

// Format represents the output format
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

type slogLogger struct {
	logger *slog.Logger
	config Config
	attrs  []any
	group  string
}

// NewLogger creates a new logger with the given configuration
func NewLogger(config Config) Logger {
	if config.Output == nil {
		config.Output = os.Stderr
	}
	return &slogLogger{
		logger: slog.New(newHandler(config)),
		config: config,
	}
}

func newHandler(config Config) slog.Handler {
	opts := &slog.HandlerOptions{Level: config.Level}

	if !config.AddTime {
		opts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		}
	}

	if config.Format == FormatJSON {
		return slog.NewJSONHandler(config.Output, opts)
	}
	return slog.NewTextHandler(config.Output, opts)
}

// NewDefaultLogger logs info and above to stderr.
func NewDefaultLogger() Logger {
	return NewLogger(Config{Level: slog.LevelInfo, Format: FormatText, Output: os.Stderr})
}

// NewQuietLogger only shows errors.
func NewQuietLogger() Logger {
	return NewLogger(Config{Level: slog.LevelError, Format: FormatText, Output: os.Stderr})
}

// NewVerboseLogger shows debug information.
func NewVerboseLogger() Logger {
	return NewLogger(Config{Level: slog.LevelDebug, Format: FormatText, Output: os.Stderr})
}

// NewDisabledLogger discards everything (useful for tests)
func NewDisabledLogger() Logger {
	return NewLogger(Config{Level: slog.Level(1000), Format: FormatText, Output: io.Discard})
}

// ParseLevel maps a level name to a slog level. Unknown names map to error.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// GetDebugFilePath returns the debug file path from CONSOLE_DEBUG_FILE or a
// file in the temp directory.
func GetDebugFilePath(defaultFileName string) string {
	if debugFile := os.Getenv(EnvDebugFile); debugFile != "" {
		return debugFile
	}
	return filepath.Join(os.TempDir(), defaultFileName)
}

// NewFileLoggerFromEnv creates a logger appending to the debug file, at the
// level named by CONSOLE_DEBUG_LEVEL (errors only by default). It falls back
// to discarding output when the file cannot be opened.
func NewFileLoggerFromEnv(defaultFileName string) Logger {
	level := ParseLevel(os.Getenv(EnvDebugLevel))

	file, err := os.OpenFile(GetDebugFilePath(defaultFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return NewLogger(Config{Level: level, Format: FormatText, Output: io.Discard})
	}
	return NewLogger(Config{Level: level, Format: FormatText, Output: file, AddTime: true})
}

func (l *slogLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

func (l *slogLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

func (l *slogLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

func (l *slogLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

// With returns a logger with additional attributes
func (l *slogLogger) With(args ...any) Logger {
	attrs := append(append([]any{}, l.attrs...), args...)
	return &slogLogger{
		logger: l.logger.With(args...),
		config: l.config,
		attrs:  attrs,
		group:  l.group,
	}
}

// WithGroup returns a logger with a group name
func (l *slogLogger) WithGroup(name string) Logger {
	return &slogLogger{
		logger: l.logger.WithGroup(name),
		config: l.config,
		attrs:  l.attrs,
		group:  name,
	}
}

// SetLevel rebuilds the handler with a new level, keeping attributes.
func (l *slogLogger) SetLevel(level slog.Level) {
	l.config.Level = level

	logger := slog.New(newHandler(l.config))
	if len(l.attrs) > 0 {
		logger = logger.With(l.attrs...)
	}
	if l.group != "" {
		logger = logger.WithGroup(l.group)
	}
	l.logger = logger
}

var globalLogger Logger = NewDefaultLogger()

// SetGlobalLogger sets the global logger instance
func SetGlobalLogger(logger Logger) {
	globalLogger = logger
}

// GetGlobalLogger returns the global logger instance
func GetGlobalLogger() Logger {
	return globalLogger
}

func Debug(msg string, args ...any) {
	globalLogger.Debug(msg, args...)
}

func Info(msg string, args ...any) {
	globalLogger.Info(msg, args...)
}

func Warn(msg string, args ...any) {
	globalLogger.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	globalLogger.Error(msg, args...)
}

// NewComponentLogger tags every record with the component name.
func NewComponentLogger(component string) Logger {
	return globalLogger.With("component", component)
}

// NewOperationLogger tags every record with component and operation.
func NewOperationLogger(component, operation string) Logger {
	return globalLogger.With(
		"component", component,
		"operation", operation,
	)
}

// LogError logs err under the "error" key.
func LogError(logger Logger, msg string, err error, args ...any) {
	logger.Error(msg, append(args, "error", err)...)
}
