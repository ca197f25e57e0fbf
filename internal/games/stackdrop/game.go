// Package stackdrop implements Stack Drop: a block swings above the tower
// and the player drops it, keeping only the part that lands on the block
// below. Perfect drops win width back.
package stackdrop

import (
	"fmt"
	"math"

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
const ID = "stackdrop"

// Field width bounds in cells.
const (
	minFieldW = 24
	maxFieldW = 48
)

var palette = []core.Color{
	core.ColorRed, core.ColorCyan, core.ColorYellow, core.ColorGreen,
	core.ColorMagenta, core.ColorBlue, core.ColorWhite,
}

// Block is one placed tower segment.
type Block struct {
	core.Span
	Color core.Color
}

// Game is one Stack Drop tower.
type Game struct {
	stats  *gamestats.Stats
	cfg    config.StackDropConfig
	logger *log.Logger

	rt   core.RuntimeConfig
	sess *session.Machine
	tick uint64

	screenW  int
	screenH  int
	fieldW   int
	tooSmall bool

	tower   []Block
	x       float64 // left edge of the swinging block
	dir     float64 // +1 right, -1 left
	width   int
	speed   float64
	perfect int
	flash   int // ticks left on the perfect banner

	best gamestats.StackDropProgress
	exit bool
}

func init() {
	registry.Register(registry.Info{
		ID:          ID,
		Title:       "Stack Drop",
		Description: "Drop swinging blocks into the tallest tower",
		Order:       3,
		Picker:      registry.PickDifficulty,
	}, func(env registry.Env) registry.Game {
		return New(env)
	})
}

// New creates a game for env. The preset scales the swing speed.
func New(env registry.Env) *Game {
	logger := env.Logger
	if logger == nil {
		logger = log.Default()
	}
	stats := env.Stats
	if stats == nil {
		stats = gamestats.New(storage.NewMemoryRecords(), logger)
	}
	cfg := env.Config.StackDrop
	config.ApplyStackDropPreset(&cfg, env.Difficulty)
	return &Game{
		stats:  stats,
		cfg:    cfg,
		logger: logger,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Stack Drop" }

// Reset builds a fresh tower.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rt = cfg
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tooSmall = hud.TooSmall(g.screenW, g.screenH)
	g.fieldW = core.Clamp(g.screenW-4, minFieldW, maxFieldW)
	g.tick = 0
	g.exit = false
	g.setup()
}

// Resize adapts to a new screen size. The field keeps its width, so a
// screen that can no longer hold it counts as too small.
func (g *Game) Resize(w, h int) {
	g.rt.ScreenW, g.rt.ScreenH = w, h
	g.screenW, g.screenH = w, h
	g.tooSmall = hud.TooSmall(w, h) || w-4 < g.fieldW
}

func (g *Game) setup() {
	g.width = min(g.cfg.InitialWidth, g.fieldW)
	g.tower = []Block{{
		Span:  core.Span{X: (g.fieldW - g.width) / 2, W: g.width},
		Color: palette[0],
	}}
	g.x, g.dir = 0, 1
	g.speed = g.cfg.SwingSpeed
	g.perfect, g.flash = 0, 0
	g.sess = session.New(session.Config{})
	g.best = g.stats.StackDrop()
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
		switch {
		case in.Has(core.ActionBack):
			g.exit = true
		case in.Has(core.ActionSelect) || in.Has(core.ActionConfirm):
			if err := g.sess.Start(); err == nil {
				g.logger.Debug("stack drop started", "session", g.sess.ID())
			}
		}
	case session.Active:
		if in.Has(core.ActionPause) || in.Has(core.ActionBack) {
			g.sess.TogglePause()
			break
		}
		g.sess.Tick()
		if g.flash > 0 {
			g.flash--
		}
		if in.Has(core.ActionSelect) || in.Has(core.ActionConfirm) {
			g.drop()
		}
		if g.sess.Running() {
			g.swing()
		}
	case session.Paused:
		if in.Has(core.ActionPause) {
			g.sess.TogglePause()
		} else if in.Has(core.ActionBack) {
			g.exit = true
		}
	case session.Complete:
		switch {
		case in.Has(core.ActionBack):
			g.exit = true
		case in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) || in.Has(core.ActionSelect):
			g.setup()
		}
	}
	return core.StepResult{State: g.State()}
}

// swing moves the block and bounces it off the field edges.
func (g *Game) swing() {
	g.x += g.dir * g.speed
	limit := float64(g.fieldW - g.width)
	switch {
	case g.x <= 0:
		g.x, g.dir = 0, 1
	case g.x >= limit:
		g.x, g.dir = limit, -1
	}
}

// current is the swinging block snapped to the cell grid.
func (g *Game) current() core.Span {
	return core.Span{X: int(math.Round(g.x)), W: g.width}
}

// Top returns the highest placed block.
func (g *Game) Top() Block {
	return g.tower[len(g.tower)-1]
}

func (g *Game) drop() {
	top := g.Top()
	cur := g.current()
	overlap := cur.Overlap(top.Span)
	if overlap.W <= 0 {
		g.finish()
		return
	}

	color := palette[len(g.tower)%len(palette)]
	if core.Abs(cur.X-top.X) < g.cfg.PerfectThreshold {
		g.width = min(top.W+g.cfg.PerfectGrow, g.cfg.InitialWidth)
		g.tower = append(g.tower, Block{Span: core.Span{X: top.X, W: g.width}, Color: color})
		g.perfect++
		g.flash = g.rt.Ticks(500)
	} else {
		if overlap.W < g.cfg.MinWidth {
			g.finish()
			return
		}
		g.width = overlap.W
		g.tower = append(g.tower, Block{Span: overlap, Color: color})
		g.x, g.dir = 0, 1
	}

	g.sess.AddScore(1) //nolint:errcheck
	g.speed = math.Min(g.speed+g.cfg.SpeedStep, math.Max(g.cfg.MaxSpeed, g.cfg.SwingSpeed))
}

func (g *Game) finish() {
	if err := g.sess.Finish(session.EndGameRule); err != nil {
		return
	}
	g.best = g.stats.RecordStackDrop(gamestats.StackDropResult{
		Score:   g.sess.Score(),
		Perfect: g.perfect,
		Blocks:  len(g.tower) - 1,
	})
	g.logger.Debug("stack drop finished", "score", g.sess.Score(), "perfect", g.perfect)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.sess.Score(),
		GameOver: g.sess.Done(),
		Paused:   g.sess.Phase() == session.Paused || g.tooSmall,
		Exit:     g.exit,
		Status:   fmt.Sprintf("Height %d · Perfect %d · Best %d", g.sess.Score(), g.perfect, g.best.HighScore),
	}
}
