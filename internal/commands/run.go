package commands

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"magicbook/internal/config"
	"magicbook/internal/content"
	"magicbook/internal/eventbus"
	"magicbook/internal/ui"
)

// readyMarker is written once the first frame can be drawn, for the pty
// driven end-to-end tests
const readyMarker = "__READY__"

func run(cmd *cobra.Command, o *options) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	cfg, source, err := loadConfig(o, bus)
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg, o)

	// Set up logging
	logFile, err := openLog(cfg.UI.LogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	log.Printf("magicbook %s starting, config %s", Version, source)

	portfolio, err := content.Load(cfg.Content.Path)
	if err != nil {
		return err
	}

	if o.debug {
		subscribeDebugLog(bus)
	}

	var onReady func()
	if os.Getenv("MAGICBOOK_E2E_TEST") == "1" {
		out := cmd.OutOrStdout()
		onReady = func() { fmt.Fprint(out, readyMarker) }
	}

	model, err := ui.NewModel(ui.Options{
		Config:    cfg,
		Portfolio: portfolio,
		Bus:       bus,
		Debug:     o.debug,
		OnReady:   onReady,
	})
	if err != nil {
		return err
	}
	defer model.Close()

	// Create Bubble Tea program
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	if cfg.Content.Watch && cfg.Content.Path != "" {
		if err := watchContent(ctx, cfg.Content.Path, p, bus); err != nil {
			// Hot reload is optional; the book still opens
			log.Printf("Content watch disabled: %v", err)
		}
	}

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		return fmt.Errorf("error running program: %w", err)
	}
	log.Printf("UI exited normally")
	return nil
}

// loadConfig reads the config file, or only the environment with --no-config
func loadConfig(o *options, bus eventbus.EventBus) (*config.Config, string, error) {
	if o.noConfig {
		cfg, err := config.FromEnv()
		return cfg, "environment", err
	}
	svc := config.NewConfigServiceWithBus(o.configPath, bus)
	cfg, err := svc.Load()
	return cfg, svc.Path(), err
}

// applyFlags lets explicitly set flags win over the config file
func applyFlags(cmd *cobra.Command, cfg *config.Config, o *options) {
	flags := cmd.Flags()
	if flags.Changed("content") {
		cfg.Content.Path = o.contentPath
	}
	if flags.Changed("watch") {
		cfg.Content.Watch = o.watch
	}
	if flags.Changed("reduced-motion") {
		cfg.UI.ReducedMotion = o.reducedMotion
	}
	if flags.Changed("compact-width") && o.compactWidth > 0 {
		cfg.UI.CompactWidth = o.compactWidth
	}
	if flags.Changed("no-welcome") {
		cfg.UI.Welcome = !o.noWelcome
	}
	if flags.Changed("log-file") {
		cfg.UI.LogFile = o.logFile
	}
}

func openLog(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("could not open log file: %w", err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func watchContent(ctx context.Context, path string, p *tea.Program, bus eventbus.EventBus) error {
	w, err := content.NewWatcher(path)
	if err != nil {
		return err
	}
	log.Printf("Watching %s for changes", w.Path())

	go w.Run(ctx, reloadHandler(w.Path(), bus, p.Send))
	return nil
}

// reloadHandler publishes each reload outcome and hands it to the UI. The
// watcher has already logged it.
func reloadHandler(path string, bus eventbus.EventBus, send func(tea.Msg)) func(*content.Portfolio, error) {
	return func(portfolio *content.Portfolio, err error) {
		if err != nil {
			bus.Publish(eventbus.ErrorEvent{Message: "portfolio reload failed", Err: err})
		} else {
			bus.Publish(eventbus.ContentReloadedEvent{Path: path})
		}
		send(ui.ContentReloadedMsg{Portfolio: portfolio, Err: err})
	}
}

// subscribeDebugLog writes every navigation event to the log
func subscribeDebugLog(bus eventbus.EventBus) {
	for _, t := range []eventbus.EventType{
		eventbus.EventTransitionStarted,
		eventbus.EventPageChanged,
		eventbus.EventTransitionSettled,
		eventbus.EventNavigationRejected,
		eventbus.EventContactSubmitted,
		eventbus.EventContentReloaded,
		eventbus.EventError,
	} {
		bus.Subscribe(t, func(e eventbus.DomainEvent) {
			log.Printf("event %s: %+v", e.Type(), e)
		})
	}
}
