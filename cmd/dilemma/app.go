package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/dilemma/internal/config"
	"github.com/vovakirdan/dilemma/internal/core"
	"github.com/vovakirdan/dilemma/internal/platform/tui"
	"github.com/vovakirdan/dilemma/internal/storage"
)

// app bundles everything the commands share.
type app struct {
	cfg    config.Config
	logger *log.Logger
	stats  *storage.StatsFile
	store  *storage.Store // nil when the archive could not be opened
}

// newApp loads configuration, applies flag overrides and opens storage.
// A config or archive problem is logged and the defaults are used instead.
func newApp() *app {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "dilemma",
		Level:           log.WarnLevel,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		logger.Warn("using default config", "error", err)
	}
	if flagStatsPath != "" {
		cfg.StatsFile = flagStatsPath
	}
	if flagDBPath != "" {
		cfg.HistoryDB = flagDBPath
	}
	if flagNoAnim {
		cfg.Animation.Enabled = false
	}

	a := &app{
		cfg:    cfg,
		logger: logger,
		stats:  storage.NewStatsFile(cfg.StatsFile),
	}

	if cfg.HistoryDB == "" {
		logger.Debug("game archive disabled")
	} else if store, err := storage.Open(cfg.HistoryDB); err != nil {
		logger.Warn("could not open game archive", "error", err)
		// Continue without the archive
	} else {
		a.store = store
	}

	logger.Debug("config loaded",
		"stats_file", cfg.StatsFile,
		"history_db", cfg.HistoryDB,
		"animation", cfg.Animation.Enabled,
	)
	return a
}

// archive returns the game archive, or a nil interface when there is none.
func (a *app) archive() core.Archive {
	if a.store == nil {
		return nil
	}
	return a.store
}

// lister returns the archive as a game lister, or a nil interface.
func (a *app) lister() tui.GameLister {
	if a.store == nil {
		return nil
	}
	return a.store
}

func (a *app) recorder() *core.Recorder {
	return core.NewRecorder(a.stats, a.archive(), a.logger)
}

// rng returns the opponent's random source, seeded by --seed when given.
func (a *app) rng() *rand.Rand {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	a.logger.Debug("opponent seeded", "seed", seed)
	return rand.New(rand.NewSource(seed))
}

// runtimeConfig sizes the screen from the terminal.
func (a *app) runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:       width,
		ScreenH:       height,
		Seed:          flagSeed,
		DefaultRounds: a.cfg.DefaultRounds,
		Animation:     a.cfg.Animation,
	}
}

func (a *app) close() {
	if a.store != nil {
		a.store.Close()
	}
}

// fatal reports a setup error and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
