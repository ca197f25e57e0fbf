// Package memory implements Memory Match: find every pair of symbols on a
// face-down board in as few moves and seconds as possible.
package memory

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/math-champions/internal/config"
	"github.com/vovakirdan/math-champions/internal/core"
	"github.com/vovakirdan/math-champions/internal/gamestats"
	"github.com/vovakirdan/math-champions/internal/games/hud"
	"github.com/vovakirdan/math-champions/internal/registry"
	"github.com/vovakirdan/math-champions/internal/session"
	"github.com/vovakirdan/math-champions/internal/storage"
)

// ID is the registry identifier.
const ID = "memory"

// Points per found pair and per move saved below the par of 2 moves per pair.
const (
	pairPoints  = 10
	bonusPoints = 5
)

type card struct {
	symbol  rune
	matched bool
}

// Option is an entry of the board complete menu.
type Option int

const (
	OptionNext Option = iota
	OptionAgain
	OptionMenu
)

func (o Option) String() string {
	switch o {
	case OptionNext:
		return "Harder board"
	case OptionAgain:
		return "Play again"
	case OptionMenu:
		return "Back to menu"
	}
	return ""
}

// Game is one Memory Match board.
type Game struct {
	stats  *gamestats.Stats
	cfg    config.MemoryConfig
	logger *log.Logger
	preset config.DifficultyPreset
	board  config.MemoryDifficulty

	rt   core.RuntimeConfig
	rng  *rand.Rand
	sess *session.Machine
	tick uint64

	screenW  int
	screenH  int
	tooSmall bool

	cards   []card
	flipped []int
	matched int
	moves   int
	cursor  int
	hideIn  int // ticks until a mismatched pair turns back

	recorded bool
	best     gamestats.MemoryGameProgress
	newBest  bool
	options  []Option
	choice   int
	exit     bool
}

func init() {
	registry.Register(registry.Info{
		ID:          ID,
		Title:       "Memory Match",
		Description: "Flip cards and find every pair",
		Order:       2,
		Picker:      registry.PickDifficulty,
	}, func(env registry.Env) registry.Game {
		return New(env)
	})
}

// New creates a game for env. A nil Stats gets an in-memory one.
func New(env registry.Env) *Game {
	logger := env.Logger
	if logger == nil {
		logger = log.Default()
	}
	stats := env.Stats
	if stats == nil {
		stats = gamestats.New(storage.NewMemoryRecords(), logger)
	}
	preset := env.Difficulty
	if preset == "" {
		preset = config.DifficultyMedium
	}
	return &Game{
		stats:  stats,
		cfg:    env.Config.Memory,
		logger: logger,
		preset: preset,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Memory Match" }

// Difficulty returns the preset of the current board.
func (g *Game) Difficulty() config.DifficultyPreset { return g.preset }

// Reset deals a new board. A board left with moves on it counts as played.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.abandon()
	g.rt = cfg
	if g.rt.Seed == 0 {
		g.rt.Seed = rand.Int63()
	}
	g.rng = rand.New(rand.NewSource(g.rt.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tooSmall = hud.TooSmall(g.screenW, g.screenH)
	g.tick = 0
	g.exit = false
	g.deal()
}

// Resize adapts to a new screen size without dealing again.
func (g *Game) Resize(w, h int) {
	g.rt.ScreenW, g.rt.ScreenH = w, h
	g.screenW, g.screenH = w, h
	g.tooSmall = hud.TooSmall(w, h)
}

func (g *Game) deal() {
	g.board = g.cfg.MemoryBoard(g.preset)
	symbols := []rune(g.cfg.Symbols)
	if len(symbols) < g.board.Pairs {
		symbols = []rune(config.DefaultConfig().Memory.Symbols)
	}

	g.cards = make([]card, 0, g.board.Pairs*2)
	for _, s := range symbols[:g.board.Pairs] {
		g.cards = append(g.cards, card{symbol: s}, card{symbol: s})
	}
	g.rng.Shuffle(len(g.cards), func(i, j int) {
		g.cards[i], g.cards[j] = g.cards[j], g.cards[i]
	})

	g.sess = session.New(session.Config{})
	g.flipped = g.flipped[:0]
	g.matched, g.moves, g.cursor, g.hideIn = 0, 0, 0, 0
	g.recorded = false
	g.newBest = false
	g.best = g.stats.Memory()
	g.options = nil
	g.choice = 0
}

// Close records the board as abandoned when the program quits mid-game.
func (g *Game) Close() {
	g.abandon()
}

// abandon records an unfinished board that has moves on it.
func (g *Game) abandon() {
	if g.sess == nil || g.recorded || g.moves == 0 || g.sess.Done() {
		return
	}
	g.recorded = true
	g.stats.RecordMemory(gamestats.MemoryResult{
		Won:        false,
		Seconds:    g.Seconds(),
		Moves:      g.moves,
		Difficulty: g.preset,
	})
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		if in.Has(core.ActionBack) {
			g.exit = true
		}
		return core.StepResult{State: g.State()}
	}

	switch g.sess.Phase() {
	case session.NotStarted:
		if in.Has(core.ActionBack) {
			g.exit = true
			break
		}
		g.stepBoard(in)
	case session.Active:
		if in.Has(core.ActionPause) || in.Has(core.ActionBack) {
			g.sess.TogglePause()
			break
		}
		g.sess.Tick()
		g.stepBoard(in)
	case session.Paused:
		if in.Has(core.ActionPause) {
			g.sess.TogglePause()
		} else if in.Has(core.ActionBack) {
			g.abandon()
			g.exit = true
		}
	case session.Complete:
		g.stepComplete(in)
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) stepBoard(in core.InputFrame) {
	if g.hideIn > 0 {
		g.hideIn--
		if g.hideIn == 0 {
			g.flipped = g.flipped[:0]
		}
	}

	cols := g.board.Columns
	n := len(g.cards)
	switch {
	case in.Has(core.ActionLeft):
		g.cursor = (g.cursor + n - 1) % n
	case in.Has(core.ActionRight):
		g.cursor = (g.cursor + 1) % n
	case in.Has(core.ActionUp):
		if g.cursor-cols >= 0 {
			g.cursor -= cols
		}
	case in.Has(core.ActionDown):
		if g.cursor+cols < n {
			g.cursor += cols
		}
	case in.Has(core.ActionSelect) || in.Has(core.ActionConfirm):
		g.flip(g.cursor)
	}
}

// flip turns card i face up. Matched cards, cards already up and flips
// while a mismatch is showing are ignored.
func (g *Game) flip(i int) {
	if i < 0 || i >= len(g.cards) || g.cards[i].matched || len(g.flipped) == 2 {
		return
	}
	for _, f := range g.flipped {
		if f == i {
			return
		}
	}
	if g.sess.Phase() == session.NotStarted {
		if err := g.sess.Start(); err != nil {
			return
		}
		g.logger.Debug("memory board started", "difficulty", g.preset, "session", g.sess.ID())
	}

	g.flipped = append(g.flipped, i)
	if len(g.flipped) < 2 {
		return
	}

	g.moves++
	a, b := g.flipped[0], g.flipped[1]
	if g.cards[a].symbol != g.cards[b].symbol {
		g.hideIn = g.rt.Ticks(g.cfg.MismatchMs)
		return
	}

	g.cards[a].matched = true
	g.cards[b].matched = true
	g.flipped = g.flipped[:0]
	g.matched++
	g.sess.AddScore(pairPoints) //nolint:errcheck
	if g.matched == g.board.Pairs {
		g.win()
	}
}

func (g *Game) win() {
	g.sess.AddScore(max(0, 2*g.board.Pairs-g.moves) * bonusPoints) //nolint:errcheck
	g.sess.Finish(session.EndGameRule)                              //nolint:errcheck
	g.recorded = true
	g.newBest = g.moves < g.best.BestMoves || g.Seconds() < g.best.BestTime
	g.best = g.stats.RecordMemory(gamestats.MemoryResult{
		Won:        true,
		Seconds:    g.Seconds(),
		Moves:      g.moves,
		Difficulty: g.preset,
	})

	g.options = g.options[:0]
	if _, ok := nextPreset(g.preset); ok {
		g.options = append(g.options, OptionNext)
	}
	g.options = append(g.options, OptionAgain, OptionMenu)
	g.choice = 0
}

func nextPreset(p config.DifficultyPreset) (config.DifficultyPreset, bool) {
	presets := config.Presets()
	for i, q := range presets {
		if q == p && i+1 < len(presets) {
			return presets[i+1], true
		}
	}
	return "", false
}

func (g *Game) stepComplete(in core.InputFrame) {
	n := len(g.options)
	switch {
	case in.Has(core.ActionBack):
		g.exit = true
	case in.Has(core.ActionRestart):
		g.pick(OptionAgain)
	case in.Has(core.ActionUp) || in.Has(core.ActionLeft):
		g.choice = (g.choice + n - 1) % n
	case in.Has(core.ActionDown) || in.Has(core.ActionRight):
		g.choice = (g.choice + 1) % n
	case in.Has(core.ActionConfirm) || in.Has(core.ActionSelect):
		g.pick(g.options[g.choice])
	}
}

func (g *Game) pick(o Option) {
	switch o {
	case OptionNext:
		if next, ok := nextPreset(g.preset); ok {
			g.preset = next
		}
		g.deal()
	case OptionAgain:
		g.deal()
	case OptionMenu:
		g.exit = true
	}
}

// Seconds returns the whole seconds played on this board.
func (g *Game) Seconds() int {
	rate := g.rt.TickRate
	if rate <= 0 {
		rate = 30
	}
	return g.sess.Elapsed() / rate
}

// Moves returns the pairs turned over so far.
func (g *Game) Moves() int { return g.moves }

// Options returns the board complete menu, empty before a win.
func (g *Game) Options() []Option { return g.options }

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.sess.Score(),
		GameOver: g.sess.Done(),
		Paused:   g.sess.Phase() == session.Paused || g.tooSmall,
		Exit:     g.exit,
		Status:   fmt.Sprintf("%s · Pairs %d/%d · Moves %d · %s", g.preset, g.matched, g.board.Pairs, g.moves, clock(g.Seconds())),
	}
}

func clock(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
