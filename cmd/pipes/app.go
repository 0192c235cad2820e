package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pipes/internal/config"
	"github.com/vovakirdan/tui-pipes/internal/core"
	pipescore "github.com/vovakirdan/tui-pipes/internal/games/pipes/core"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes/levels"
	"github.com/vovakirdan/tui-pipes/internal/platform/tui"
	"github.com/vovakirdan/tui-pipes/internal/storage"
)

// app holds what every command needs, resolved from config and flags.
type app struct {
	cfg        config.PipesConfig
	complexity pipescore.Complexity
	catalog    []levels.Level
	theme      tui.Theme
	logger     *log.Logger
	logFile    *os.File
}

// loadApp loads the configuration, applies the global flags and reads the
// level catalog.
func loadApp() (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	if err := config.ApplyComplexityPreset(&cfg, flagComplexity); err != nil {
		return nil, err
	}
	if flagFPS > 0 {
		cfg.Display.TickRate = flagFPS
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLevelsDir != "" {
		cfg.Game.LevelsDir = flagLevelsDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	catalog, err := levels.Catalog(config.ExpandHome(cfg.Game.LevelsDir))
	if err != nil {
		return nil, fmt.Errorf("loading levels: %w", err)
	}

	a := &app{
		cfg:        cfg,
		complexity: cfg.Complexity(),
		catalog:    catalog,
		theme:      tui.ThemeByName(cfg.Display.Theme),
	}
	a.logger, a.logFile, err = newLogger(flagLogFile)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// newLogger returns a logger writing to path, or to stderr when path is empty.
func newLogger(path string) (*log.Logger, *os.File, error) {
	var (
		out  io.Writer = os.Stderr
		file *os.File
	)
	if path != "" {
		f, err := os.OpenFile(config.ExpandHome(path), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		out, file = f, f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "pipes",
	})
	return logger, file, nil
}

// tuiLogger is the logger handed to the terminal UI. Logging to stderr would
// corrupt the alternate screen, so it is silent without --log-file.
func (a *app) tuiLogger() *log.Logger {
	if a.logFile == nil {
		return log.New(io.Discard)
	}
	return a.logger
}

// openStore opens the results database. Failure is logged and yields nil:
// the game is still playable without history.
func (a *app) openStore() *storage.Store {
	store, err := storage.Open(a.cfg.Storage.DBPath)
	if err != nil {
		a.logger.Warn("could not open results database", "path", a.cfg.Storage.DBPath, "error", err)
		return nil
	}
	return store
}

// runtimeConfig returns the platform config for the current terminal.
func (a *app) runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = a.cfg.Display.TickRate
	if a.cfg.Game.Player != "" {
		cfg.Player = a.cfg.Game.Player
	}
	return cfg
}

// close releases the log file.
func (a *app) close() {
	if a.logFile != nil {
		a.logFile.Close()
	}
}
