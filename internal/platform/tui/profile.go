package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/math-champions/internal/config"
	"github.com/vovakirdan/math-champions/internal/gamestats"
	"github.com/vovakirdan/math-champions/internal/progress"
	"github.com/vovakirdan/math-champions/internal/registry"
	"github.com/vovakirdan/math-champions/internal/storage"
)

// DefaultProfile is the profile used by local play.
const DefaultProfile = "local"

// Profile binds one player's records to the arcade configuration.
// Without a store the records live in memory for the life of the process.
type Profile struct {
	Name   string
	Config config.Config
	Store  *storage.Store
	Ledger *progress.Ledger
	Stats  *gamestats.Stats
	Logger *log.Logger
}

// NewProfile opens the records of name. store may be nil.
func NewProfile(store *storage.Store, name string, cfg config.Config, logger *log.Logger) *Profile {
	if name == "" {
		name = DefaultProfile
	}
	if logger == nil {
		logger = log.Default()
	}
	logger = logger.With("profile", name)

	var backend progress.Backend = storage.NewMemoryRecords()
	if store != nil {
		backend = store.Records(name)
	}
	return &Profile{
		Name:   name,
		Config: cfg,
		Store:  store,
		Ledger: progress.NewLedger(backend, cfg, progress.WithLogger(logger)),
		Stats:  gamestats.New(backend, logger),
		Logger: logger,
	}
}

// Env returns the environment a game is created with.
func (p *Profile) Env(level int, difficulty config.DifficultyPreset) registry.Env {
	return registry.Env{
		Config:     p.Config,
		Ledger:     p.Ledger,
		Stats:      p.Stats,
		Logger:     p.Logger,
		Level:      level,
		Difficulty: difficulty,
	}
}

// SaveScore adds a finished session to the score history. Failures are logged.
func (p *Profile) SaveScore(gameID string, score int) {
	if p.Store == nil {
		return
	}
	if _, err := p.Store.SaveScore(p.Name, gameID, score); err != nil {
		p.Logger.Warn("score not saved", "game", gameID, "error", err)
	}
}

// TopScores returns the best sessions of a game across every profile.
func (p *Profile) TopScores(gameID string, limit int) []storage.ScoreEntry {
	if p.Store == nil {
		return nil
	}
	scores, err := p.Store.TopScores(gameID, limit)
	if err != nil {
		p.Logger.Warn("scores unavailable", "game", gameID, "error", err)
		return nil
	}
	return scores
}
