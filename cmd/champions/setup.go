package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/math-champions/internal/config"
	"github.com/vovakirdan/math-champions/internal/core"
	"github.com/vovakirdan/math-champions/internal/platform/tui"
	"github.com/vovakirdan/math-champions/internal/storage"
)

// newLogger builds the process logger from --log-level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "champions",
	}), nil
}

// openLogFile opens path for appending. A leading ~ expands to the home
// directory and parent directories are created.
func openLogFile(path string) (*os.File, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// loadConfig reads champions.yaml following the usual search order.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// openStore opens the database. A failure is logged and play continues
// in memory.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database, progress will not be saved", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// arcade is what every local command works with.
type arcade struct {
	logger  *log.Logger
	logFile *os.File
	store   *storage.Store
	profile *tui.Profile
}

// openArcade loads config, logger, store and the --profile records.
// Interactive commands log to --log-file because the terminal belongs to
// the game while it runs.
func openArcade(interactive bool) (*arcade, error) {
	a := &arcade{}
	var out io.Writer = os.Stderr
	if interactive {
		f, err := openLogFile(flagLogFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
			out = io.Discard
		} else {
			a.logFile = f
			out = f
		}
	}

	logger, err := newLogger(out)
	if err != nil {
		a.Close()
		return nil, err
	}
	cfg, err := loadConfig()
	if err != nil {
		a.Close()
		return nil, err
	}
	a.logger = logger
	a.store = openStore(logger)
	a.profile = tui.NewProfile(a.store, flagProfile, cfg, logger)
	return a, nil
}

func (a *arcade) Close() {
	if a.store != nil {
		a.store.Close()
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}
