package tui

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/awesome-gocui/gocui"
	"github.com/jesseduffield/lazycore/pkg/boxlayout"
	"github.com/kcaldas/console/pkg/console/session"
	"github.com/kcaldas/console/pkg/events"
	"github.com/kcaldas/console/pkg/logging"
)

const (
	consoleView = "console"
	statusView  = "status"

	// DefaultBlinkInterval is the caret blink half period.
	DefaultBlinkInterval = 530 * time.Millisecond
)

// Config holds host settings that do not belong to the session.
type Config struct {
	OutputMode    gocui.OutputMode
	BlinkInterval time.Duration
	Title         string
}

// DefaultConfig returns the settings used by the console binary.
func DefaultConfig() Config {
	return Config{
		OutputMode:    gocui.OutputNormal,
		BlinkInterval: DefaultBlinkInterval,
		Title:         " console ",
	}
}

// App hosts one session in a gocui screen: the console view plus a one line
// status bar.
type App struct {
	gui     *gocui.Gui
	session *session.Session
	bus     *events.Bus
	config  Config
	logger  logging.Logger

	unsubscribe      func()
	keybindingsSetup bool

	stopOnce sync.Once
	stop     chan struct{}
}

func NewApp(s *session.Session, bus *events.Bus, cfg Config, logger logging.Logger) (*App, error) {
	// gocui owns the terminal; stray log output would corrupt it
	log.SetOutput(io.Discard)
	logging.SetGlobalLogger(logger)

	g, err := gocui.NewGui(cfg.OutputMode, true)
	if err != nil {
		return nil, fmt.Errorf("failed to create gui: %w", err)
	}
	g.Mouse = true
	g.Cursor = true

	app := &App{
		gui:     g,
		session: s,
		bus:     bus,
		config:  cfg,
		logger:  logger.With("component", "tui"),
		stop:    make(chan struct{}),
	}

	g.SetManagerFunc(func(gui *gocui.Gui) error {
		if err := app.layout(gui); err != nil {
			return err
		}
		if !app.keybindingsSetup {
			if err := app.setupKeybindings(); err != nil {
				return err
			}
			app.keybindingsSetup = true
		}
		return app.render(gui)
	})

	app.unsubscribe = bus.Subscribe(events.ConsoleUpdated, func(event interface{}) {
		app.gui.Update(app.render)
	})

	return app, nil
}

// GetGui exposes the gui for tests that drive the simulator screen.
func (app *App) GetGui() *gocui.Gui {
	return app.gui
}

func buildLayout() *boxlayout.Box {
	return &boxlayout.Box{
		Direction: boxlayout.ROW,
		Children: []*boxlayout.Box{
			{Window: consoleView, Weight: 1},
			{Window: statusView, Size: 1},
		},
	}
}

func (app *App) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	if maxX <= 0 || maxY <= 0 {
		return nil
	}

	dims := boxlayout.ArrangeWindows(buildLayout(), 0, 0, maxX, maxY)

	if d, ok := dims[consoleView]; ok && d.X1 > d.X0 && d.Y1 > d.Y0 {
		v, err := g.SetView(consoleView, d.X0, d.Y0, d.X1, d.Y1, 0)
		if err != nil && !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		if err != nil {
			v.Title = app.config.Title
			v.Frame = true
			v.Editable = true
			v.Editor = newConsoleEditor(app.session)
			if _, err := g.SetCurrentView(consoleView); err != nil {
				return err
			}
		}
	}

	if d, ok := dims[statusView]; ok && d.X1 > d.X0 {
		// a view draws inside its border cells, so grow the box by one on each side
		v, err := g.SetView(statusView, d.X0-1, d.Y0-1, d.X1+1, d.Y1+1, 0)
		if err != nil && !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		if err != nil {
			v.Frame = false
		}
	}
	return nil
}

func (app *App) setupKeybindings() error {
	bindings := []struct {
		view    string
		key     interface{}
		handler func(*gocui.Gui, *gocui.View) error
	}{
		{"", gocui.KeyCtrlC, app.quit},
		{"", gocui.KeyEsc, app.blur},
		{consoleView, gocui.MouseLeft, app.focus},
		{statusView, gocui.MouseLeft, app.blur},
	}

	for _, b := range bindings {
		if err := app.gui.SetKeybinding(b.view, b.key, gocui.ModNone, b.handler); err != nil {
			return err
		}
	}
	return nil
}

func (app *App) focus(g *gocui.Gui, v *gocui.View) error {
	if _, err := g.SetCurrentView(consoleView); err != nil {
		return err
	}
	app.session.Focus()
	return nil
}

func (app *App) blur(g *gocui.Gui, v *gocui.View) error {
	app.session.Blur()
	return nil
}

func (app *App) quit(g *gocui.Gui, v *gocui.View) error {
	return gocui.ErrQuit
}

// render redraws both views from a fresh snapshot.
func (app *App) render(g *gocui.Gui) error {
	snap := app.session.Snapshot()

	if v, err := g.View(consoleView); err == nil {
		width, height := v.Size()
		frame := layoutConsole(snap, width, height)

		v.Clear()
		for _, line := range frame.Lines {
			fmt.Fprintln(v, line)
		}
		if err := v.SetOrigin(frame.OriginX, frame.OriginY); err != nil {
			return err
		}
		if err := v.SetCursor(frame.CursorX-frame.OriginX, frame.CursorY-frame.OriginY); err != nil {
			app.logger.Debug("cursor outside view", "x", frame.CursorX, "y", frame.CursorY)
		}
	}

	if v, err := g.View(statusView); err == nil {
		width, _ := v.Size()
		v.Clear()
		fmt.Fprint(v, statusText(snap, width))
	}

	g.Cursor = snap.CaretVisible
	return nil
}

// Run blocks in the gocui main loop until Ctrl+C.
func (app *App) Run() error {
	if app.config.BlinkInterval > 0 {
		go app.blinkLoop(app.config.BlinkInterval)
	}
	app.logger.Debug("starting console host", "session", app.session.ID())
	return app.gui.MainLoop()
}

func (app *App) blinkLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			app.session.TickBlink()
		case <-app.stop:
			return
		}
	}
}

// Close stops the blink ticker, detaches from the bus and releases the
// terminal.
func (app *App) Close() {
	app.stopOnce.Do(func() {
		close(app.stop)
		if app.unsubscribe != nil {
			app.unsubscribe()
		}
		if app.gui != nil {
			app.gui.Close()
		}
	})
}
