// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/math-champions/internal/config"
	"github.com/vovakirdan/math-champions/internal/core"
	"github.com/vovakirdan/math-champions/internal/gamestats"
	"github.com/vovakirdan/math-champions/internal/progress"
)

// Game is the interface every mini-game implements.
// Games hold pure logic; the platform handles input mapping, timing and drawing.
type Game interface {
	// ID returns the identifier used by the CLI and the score table.
	ID() string

	// Title returns the display name.
	Title() string

	// Reset starts the game over with the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a cleared screen.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Picker says what the menu must ask before a game starts.
type Picker int

const (
	PickNothing    Picker = iota
	PickLevel             // math level selector
	PickDifficulty        // easy / medium / hard
)

// Info describes a registered game.
type Info struct {
	ID          string
	Title       string
	Description string
	Order       int // menu position
	Picker      Picker
}

// Env carries everything a game needs from the platform for one profile.
type Env struct {
	Config     config.Config
	Ledger     *progress.Ledger
	Stats      *gamestats.Stats
	Logger     *log.Logger
	Level      int // math level to play, 0 continues at the current level
	Difficulty config.DifficultyPreset
}

// Factory creates a game bound to env.
type Factory func(env Env) Game

type entry struct {
	info    Info
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a game. Panics if the ID is already taken.
func Register(info Info, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[info.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}
	entries[info.ID] = entry{info: info, factory: f}
}

// List returns every registered game in menu order.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].ID < result[j].ID
	})
	return result
}

// Lookup returns the info of a registered game.
func Lookup(id string) (Info, bool) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := entries[id]
	return e.info, ok
}

// Create instantiates a game by ID.
func Create(id string, env Env) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(env), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
