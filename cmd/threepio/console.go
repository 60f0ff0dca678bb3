package main

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/fortyfoot/threepio/internal/config"
	"github.com/fortyfoot/threepio/internal/logging"
	"github.com/fortyfoot/threepio/internal/session"
	"github.com/fortyfoot/threepio/internal/source"
	"github.com/fortyfoot/threepio/internal/stylesheet"
	"github.com/fortyfoot/threepio/internal/tui"
	"github.com/fortyfoot/threepio/pkg/models"
)

var (
	consoleSource string
	consoleSpeed  string

	// consoleDiscoverer locates the acquisition device for source.kind daq.
	// No driver is linked in by default.
	consoleDiscoverer source.Discoverer
)

// consoleOverrides holds command-line values that take precedence over
// the loaded config.
type consoleOverrides struct {
	Source string
	Speed  string
}

// buildConsole applies overrides to cfg, validates it and wires the
// reading source, session and main window.
func buildConsole(ctx context.Context, cfg *config.Config, logger *logging.DebugLogger, o consoleOverrides, discover source.Discoverer) (*tui.MainWindow, error) {
	if o.Source != "" {
		cfg.Source.Kind = o.Source
	}
	if o.Speed != "" {
		cfg.Chart.Speed = o.Speed
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	src, err := source.New(source.Kind(cfg.Source.Kind), source.Options{
		Step:     cfg.Source.Step,
		Seed:     cfg.Source.Seed,
		Channel:  cfg.Source.Channel,
		Discover: discover,
	})
	if err != nil {
		return nil, fmt.Errorf("source %s: %w", cfg.Source.Kind, err)
	}

	sheet, err := stylesheet.Load(cfg.Stylesheet.Path)
	if err != nil {
		return nil, err
	}

	s := session.New(src,
		session.WithLogger(logger),
		session.WithSpeed(models.SpeedPreset(cfg.Chart.Speed)),
	)

	return tui.NewMainWindow(ctx, s, tui.Options{
		TickRate:       cfg.TUI.TickRate,
		ChartHeight:    cfg.Chart.Height,
		StylesheetPath: cfg.Stylesheet.Path,
		Sheet:          sheet,
		Logger:         logger,
	}), nil
}

// runConsole loads configuration and runs the console until the user quits.
func runConsole(ctx context.Context) (retErr error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.NewDebugLogger(cfg.Log.Path)
	if err != nil {
		return err
	}
	defer logger.Close()

	window, err := buildConsole(ctx, cfg, logger, consoleOverrides{
		Source: consoleSource,
		Speed:  consoleSpeed,
	}, consoleDiscoverer)
	if err != nil {
		return err
	}

	// Suppress log output while TUI is active (it corrupts the display)
	originalOutput := log.Writer()
	log.SetOutput(io.Discard)
	defer log.SetOutput(originalOutput)

	program := tui.NewProgram(window)

	if cfg.Stylesheet.Watch {
		watcher, err := stylesheet.Watch(cfg.Stylesheet.Path, func(sheet stylesheet.Sheet, err error) {
			program.Send(tui.StylesheetChangedMsg{Sheet: sheet, Err: err})
		})
		if err != nil {
			logger.Log("stylesheet watch disabled: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	// Recover from panics so the terminal is restored with an error
	defer func() {
		if r := recover(); r != nil {
			retErr = fmt.Errorf("PANIC in console: %v", r)
		}
	}()

	_, err = program.Run()
	logger.Log("console exited after %s", window.Session().View().ElapsedText)
	return err
}
