// Package gamestats keeps the lifetime records of the companion mini-games.
// Each game has its own JSON record; none of them touch XP, stars or badges.
package gamestats

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/math-champions/internal/config"
	"github.com/vovakirdan/math-champions/internal/storage"
)

// Record keys.
const (
	MemoryKey     = "MemoryGameProgress"
	StackDropKey  = "StackDropProgress"
	TapPerfectKey = "TapPerfectProgress"

	// Older builds stored only the high score, as a bare integer.
	stackDropHighScoreKey  = "stackDrop_highScore"
	tapPerfectHighScoreKey = "tapPerfect_highScore"
)

// NoBest marks a best time or move count that has not been set.
const NoBest = 999

// Backend is the key/value store the records live in.
type Backend interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
}

// MemoryGameProgress is the Memory Match record.
type MemoryGameProgress struct {
	GamesPlayed       int                     `json:"games_played"`
	BestTime          int                     `json:"best_time"` // seconds
	BestMoves         int                     `json:"best_moves"`
	TotalWins         int                     `json:"total_wins"`
	CurrentDifficulty config.DifficultyPreset `json:"current_difficulty"`
}

// StackDropProgress is the Stack Drop record.
type StackDropProgress struct {
	HighScore    int `json:"high_score"`
	TotalGames   int `json:"total_games"`
	PerfectDrops int `json:"perfect_drops"`
	TotalBlocks  int `json:"total_blocks"`
}

// TapPerfectProgress is the Tap Perfect record.
type TapPerfectProgress struct {
	HighScore   int `json:"high_score"`
	TotalGames  int `json:"total_games"`
	PerfectTaps int `json:"perfect_taps"`
	TotalTaps   int `json:"total_taps"`
}

// Stats reads and writes the mini-game records of one profile.
// Like the progress ledger it never fails: bad or missing data means
// defaults, and failed writes are logged.
type Stats struct {
	mu      sync.Mutex
	backend Backend
	logger  *log.Logger
}

// New returns a Stats over backend. A nil logger uses log.Default().
func New(backend Backend, logger *log.Logger) *Stats {
	if logger == nil {
		logger = log.Default()
	}
	return &Stats{backend: backend, logger: logger}
}

func defaultMemory() MemoryGameProgress {
	return MemoryGameProgress{BestTime: NoBest, BestMoves: NoBest, CurrentDifficulty: config.DifficultyEasy}
}

// Memory returns the Memory Match record.
func (s *Stats) Memory() MemoryGameProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return load(s, MemoryKey, defaultMemory())
}

// MemoryResult is one finished or abandoned Memory Match board.
type MemoryResult struct {
	Won        bool
	Seconds    int
	Moves      int
	Difficulty config.DifficultyPreset
}

// RecordMemory folds a board into the record.
func (s *Stats) RecordMemory(r MemoryResult) MemoryGameProgress {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := load(s, MemoryKey, defaultMemory())
	p.GamesPlayed++
	if r.Difficulty != "" {
		p.CurrentDifficulty = r.Difficulty
	}
	if r.Won {
		p.TotalWins++
		p.BestTime = min(p.BestTime, r.Seconds)
		p.BestMoves = min(p.BestMoves, r.Moves)
	}
	save(s, MemoryKey, p)
	return p
}

// StackDrop returns the Stack Drop record.
func (s *Stats) StackDrop() StackDropProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := load(s, StackDropKey, StackDropProgress{})
	p.HighScore = max(p.HighScore, s.legacyHighScore(stackDropHighScoreKey))
	return p
}

// StackDropResult is one finished tower.
type StackDropResult struct {
	Score   int
	Perfect int
	Blocks  int
}

// RecordStackDrop folds a finished tower into the record.
func (s *Stats) RecordStackDrop(r StackDropResult) StackDropProgress {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := load(s, StackDropKey, StackDropProgress{})
	p.HighScore = max(p.HighScore, s.legacyHighScore(stackDropHighScoreKey), r.Score)
	p.TotalGames++
	p.PerfectDrops += r.Perfect
	p.TotalBlocks += r.Blocks
	save(s, StackDropKey, p)
	s.putLegacyHighScore(stackDropHighScoreKey, p.HighScore)
	return p
}

// TapPerfect returns the Tap Perfect record.
func (s *Stats) TapPerfect() TapPerfectProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := load(s, TapPerfectKey, TapPerfectProgress{})
	p.HighScore = max(p.HighScore, s.legacyHighScore(tapPerfectHighScoreKey))
	return p
}

// TapPerfectResult is one finished Tap Perfect game.
type TapPerfectResult struct {
	Score   int
	Perfect int
	Taps    int
}

// RecordTapPerfect folds a finished game into the record.
func (s *Stats) RecordTapPerfect(r TapPerfectResult) TapPerfectProgress {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := load(s, TapPerfectKey, TapPerfectProgress{})
	p.HighScore = max(p.HighScore, s.legacyHighScore(tapPerfectHighScoreKey), r.Score)
	p.TotalGames++
	p.PerfectTaps += r.Perfect
	p.TotalTaps += r.Taps
	save(s, TapPerfectKey, p)
	s.putLegacyHighScore(tapPerfectHighScoreKey, p.HighScore)
	return p
}

// load decodes key over defaults. Missing or corrupt data yields defaults.
func load[T any](s *Stats, key string, defaults T) T {
	data, err := s.backend.Get(key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("game record unreadable", "key", key, "error", err)
		}
		return defaults
	}
	out := defaults
	if err := json.Unmarshal(data, &out); err != nil {
		s.logger.Warn("game record corrupt, starting fresh", "key", key, "error", err)
		return defaults
	}
	return out
}

func save[T any](s *Stats, key string, v T) {
	data, err := json.Marshal(v)
	if err == nil {
		err = s.backend.Put(key, data)
	}
	if err != nil {
		s.logger.Warn("game record not saved", "key", key, "error", err)
	}
}

func (s *Stats) legacyHighScore(key string) int {
	data, err := s.backend.Get(key)
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func (s *Stats) putLegacyHighScore(key string, score int) {
	if err := s.backend.Put(key, []byte(strconv.Itoa(score))); err != nil {
		s.logger.Warn("high score not saved", "key", key, "error", err)
	}
}
