//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build wireinject
// +build wireinject

package tui

import (
	"github.com/google/wire"
	"github.com/kcaldas/console/pkg/console/session"
	"github.com/kcaldas/console/pkg/events"
)

// AppDepsSet builds the App around an existing session and its bus.
var AppDepsSet = wire.NewSet(
	ProvideLogger,
	NewApp,
)

func InjectTUI(s *session.Session, bus *events.Bus, cfg Config) (*TUI, error) {
	wire.Build(AppDepsSet, New)
	return nil, nil
}
