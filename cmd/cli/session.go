package cli

import (
	"fmt"
	"time"

	"github.com/kcaldas/console/pkg/config"
	"github.com/kcaldas/console/pkg/console/session"
	"github.com/kcaldas/console/pkg/logging"
)

type sessionSettings struct {
	ConfigPath string
	NoInput    bool
	Env        config.Manager
	Notifier   session.Notifier
	Logger     logging.Logger
	Now        func() time.Time
}

// newSession loads .env and the config file, applies environment overrides
// and builds a session with the configured and built-in commands.
func newSession(settings sessionSettings) (*session.Session, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}

	cfg, err := config.Load(settings.ConfigPath)
	if err != nil {
		return nil, err
	}

	env := settings.Env
	if env == nil {
		env = config.NewConfigManager()
	}
	if err := cfg.ApplyEnv(env); err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}

	table, err := cfg.Table()
	if err != nil {
		return nil, err
	}

	now := settings.Now
	if now == nil {
		now = time.Now
	}
	if err := registerBuiltins(table, now); err != nil {
		return nil, fmt.Errorf("failed to register built-in commands: %w", err)
	}

	opts := append(cfg.SessionOptions(), session.WithCommands(table))
	if settings.NoInput {
		opts = append(opts, session.WithInputEnabled(false))
	}
	if settings.Notifier != nil {
		opts = append(opts, session.WithNotifier(settings.Notifier))
	}
	if settings.Logger != nil {
		opts = append(opts, session.WithLogger(settings.Logger.With("component", "session")))
	}

	s := session.New(opts...)
	logging.Debug("session created", "session", s.ID(), "commands", table.Len())
	return s, nil
}
