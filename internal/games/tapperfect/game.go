// Package tapperfect implements Tap Perfect: a power meter sweeps up and
// the player taps to shoot, scoring by how close the power lands to the
// target.
package tapperfect

import (
	"fmt"

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
const ID = "tapperfect"

// MaxPower is the top of the meter; it wraps back to zero there.
const MaxPower = 100

const flightMs = 500

// Grade is how close a shot landed to the target.
type Grade int

const (
	GradeNone Grade = iota
	GradePerfect
	GradeGood
	GradeMiss
)

func (g Grade) String() string {
	switch g {
	case GradePerfect:
		return "BULLSEYE!"
	case GradeGood:
		return "Good!"
	case GradeMiss:
		return "Miss!"
	}
	return ""
}

// Game is one Tap Perfect round of lives.
type Game struct {
	stats  *gamestats.Stats
	cfg    config.TapPerfectConfig
	logger *log.Logger

	rt   core.RuntimeConfig
	sess *session.Machine
	tick uint64

	screenW  int
	screenH  int
	tooSmall bool

	power   int
	shot    int // power at the moment of the tap
	flight  int // ticks until the shot lands
	wait    int // ticks until the meter restarts
	grade   Grade
	gained  int
	combo   int
	perfect int
	taps    int

	best gamestats.TapPerfectProgress
	exit bool
}

func init() {
	registry.Register(registry.Info{
		ID:          ID,
		Title:       "Tap Perfect",
		Description: "Stop the power meter on the target",
		Order:       4,
		Picker:      registry.PickDifficulty,
	}, func(env registry.Env) registry.Game {
		return New(env)
	})
}

// New creates a game for env. The preset scales the meter speed.
func New(env registry.Env) *Game {
	logger := env.Logger
	if logger == nil {
		logger = log.Default()
	}
	stats := env.Stats
	if stats == nil {
		stats = gamestats.New(storage.NewMemoryRecords(), logger)
	}
	cfg := env.Config.TapPerfect
	config.ApplyTapPerfectPreset(&cfg, env.Difficulty)
	return &Game{
		stats:  stats,
		cfg:    cfg,
		logger: logger,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Tap Perfect" }

// Reset starts a new round.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rt = cfg
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tooSmall = hud.TooSmall(g.screenW, g.screenH)
	g.tick = 0
	g.exit = false
	g.setup()
}

// Resize adapts to a new screen size without ending the round.
func (g *Game) Resize(w, h int) {
	g.rt.ScreenW, g.rt.ScreenH = w, h
	g.screenW, g.screenH = w, h
	g.tooSmall = hud.TooSmall(w, h)
}

func (g *Game) setup() {
	g.sess = session.New(session.Config{Lives: g.cfg.Lives})
	g.power, g.shot, g.flight, g.wait = 0, 0, 0, 0
	g.grade, g.gained = GradeNone, 0
	g.combo, g.perfect, g.taps = 0, 0, 0
	g.best = g.stats.TapPerfect()
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

	tap := in.Has(core.ActionSelect) || in.Has(core.ActionConfirm)
	switch g.sess.Phase() {
	case session.NotStarted:
		switch {
		case in.Has(core.ActionBack):
			g.exit = true
		case tap:
			if err := g.sess.Start(); err == nil {
				g.logger.Debug("tap perfect started", "session", g.sess.ID())
			}
		}
	case session.Active:
		if in.Has(core.ActionPause) || in.Has(core.ActionBack) {
			g.sess.TogglePause()
			break
		}
		g.sess.Tick()
		g.stepActive(tap)
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
		case in.Has(core.ActionRestart) || tap:
			g.setup()
		}
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) stepActive(tap bool) {
	switch {
	case g.flight > 0:
		g.flight--
		if g.flight == 0 {
			g.land()
		}
	case g.wait > 0:
		g.wait--
		if g.wait == 0 {
			g.power = 0
			g.grade, g.gained = GradeNone, 0
		}
	case tap:
		g.shot = g.power
		g.flight = g.rt.Ticks(flightMs)
	default:
		g.power += g.cfg.PowerStep
		if g.power >= MaxPower {
			g.power = 0
		}
	}
}

// Judge grades a shot at power against the target.
func (g *Game) Judge(power int) Grade {
	diff := core.Abs(power - g.cfg.Target)
	switch {
	case diff <= g.cfg.PerfectRange:
		return GradePerfect
	case diff <= g.cfg.GoodRange:
		return GradeGood
	}
	return GradeMiss
}

// land scores the shot in flight.
func (g *Game) land() {
	g.taps++
	g.grade = g.Judge(g.shot)
	g.gained = 0
	switch g.grade {
	case GradePerfect:
		g.gained = g.cfg.PerfectBase + g.cfg.ComboBonus*g.combo
		g.combo++
		g.perfect++
	case GradeGood:
		g.gained = g.cfg.GoodPoints
		g.combo = 0
	case GradeMiss:
		g.combo = 0
		g.sess.LoseLife() //nolint:errcheck
	}
	g.sess.AddScore(g.gained) //nolint:errcheck

	if g.sess.Done() {
		g.finish()
		return
	}
	g.wait = g.rt.Ticks(g.cfg.ResetMs)
}

func (g *Game) finish() {
	g.best = g.stats.RecordTapPerfect(gamestats.TapPerfectResult{
		Score:   g.sess.Score(),
		Perfect: g.perfect,
		Taps:    g.taps,
	})
	g.logger.Debug("tap perfect finished", "score", g.sess.Score(), "perfect", g.perfect, "taps", g.taps)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.sess.Score(),
		GameOver: g.sess.Done(),
		Paused:   g.sess.Phase() == session.Paused || g.tooSmall,
		Exit:     g.exit,
		Status:   fmt.Sprintf("Lives %d · Combo %d · Best %d", g.sess.Lives(), g.combo, g.best.HighScore),
	}
}
