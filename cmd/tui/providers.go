package tui

import (
	"github.com/kcaldas/console/pkg/logging"
)

const debugFileName = "console-debug.log"

// ProvideLogger returns the logger used while gocui owns the terminal. It
// writes to CONSOLE_DEBUG_FILE, or a file in the temp directory.
func ProvideLogger() logging.Logger {
	return logging.NewFileLoggerFromEnv(debugFileName)
}
