// Package mathquiz implements Math Champions: timed multiple-choice
// arithmetic levels that feed the player's progress record.
package mathquiz

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/math-champions/internal/badges"
	"github.com/vovakirdan/math-champions/internal/config"
	"github.com/vovakirdan/math-champions/internal/core"
	"github.com/vovakirdan/math-champions/internal/games/hud"
	"github.com/vovakirdan/math-champions/internal/problem"
	"github.com/vovakirdan/math-champions/internal/progress"
	"github.com/vovakirdan/math-champions/internal/registry"
	"github.com/vovakirdan/math-champions/internal/session"
	"github.com/vovakirdan/math-champions/internal/storage"
)

// ID is the registry identifier.
const ID = "math"

// Option is an entry of the level complete menu.
type Option int

const (
	OptionNext Option = iota
	OptionRetry
	OptionMenu
)

func (o Option) String() string {
	switch o {
	case OptionNext:
		return "Next level"
	case OptionRetry:
		return "Try again"
	case OptionMenu:
		return "Back to menu"
	}
	return ""
}

// Game is one Math Champions level run.
type Game struct {
	ledger *progress.Ledger
	math   config.MathConfig
	logger *log.Logger

	rt    core.RuntimeConfig
	gen   *problem.Generator
	sess  *session.Machine
	tick  uint64
	level int
	lvl   config.LevelConfig

	screenW  int
	screenH  int
	tooSmall bool

	current  problem.Problem
	cursor   int
	picked   int // choice of the last answer, -1 for a timeout
	wasRight bool
	feedback int // ticks left on the answer feedback

	record   progress.PlayerProgress
	earned   []badges.ID // badges unlocked during this run
	latest   badges.ID   // badge to announce with the current feedback
	stars    int
	unlocked int

	options []Option
	choice  int
	exit    bool
}

func init() {
	registry.Register(registry.Info{
		ID:          ID,
		Title:       "Math Champions",
		Description: "Timed arithmetic levels, stars and badges",
		Order:       1,
		Picker:      registry.PickLevel,
	}, func(env registry.Env) registry.Game {
		return New(env)
	})
}

// New creates a game for env. A nil ledger gets an in-memory one.
func New(env registry.Env) *Game {
	logger := env.Logger
	if logger == nil {
		logger = log.Default()
	}
	ledger := env.Ledger
	if ledger == nil {
		ledger = progress.NewLedger(storage.NewMemoryRecords(), env.Config, progress.WithLogger(logger))
	}
	g := &Game{
		ledger: ledger,
		math:   ledger.Math(),
		logger: logger,
	}
	g.level = g.startLevel(env.Level)
	return g
}

// startLevel resolves the requested level against the record: 0 continues
// at the current level and locked levels fall back to it.
func (g *Game) startLevel(requested int) int {
	p := g.ledger.Load()
	level := requested
	if level <= 0 {
		level = p.CurrentLevel
	}
	if !p.IsUnlocked(level) {
		g.logger.Warn("level is locked, continuing at current level", "level", level, "current", p.CurrentLevel)
		level = p.CurrentLevel
	}
	if g.math.MaxLevel > 0 {
		level = min(level, g.math.MaxLevel)
	}
	return max(level, 1)
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Math Champions" }

// Level returns the level being played.
func (g *Game) Level() int { return g.level }

// Reset prepares the intro screen of the current level.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rt = cfg
	if g.rt.Seed == 0 {
		g.rt.Seed = rand.Int63()
	}
	g.gen = problem.NewGenerator(g.math, g.rt.Seed)
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tooSmall = hud.TooSmall(g.screenW, g.screenH)
	g.tick = 0
	g.exit = false
	g.loadLevel()
}

// Resize adapts to a new screen size without restarting the level.
func (g *Game) Resize(w, h int) {
	g.rt.ScreenW, g.rt.ScreenH = w, h
	g.screenW, g.screenH = w, h
	g.tooSmall = hud.TooSmall(w, h)
}

func (g *Game) loadLevel() {
	g.lvl = g.math.Level(g.level)
	g.sess = session.New(session.Config{
		Units:     g.lvl.Questions,
		UnitTicks: g.rt.Ticks(g.lvl.TimeLimit * 1000),
	})
	g.record = g.ledger.Load()
	g.current = problem.Problem{}
	g.cursor, g.picked, g.feedback = 0, 0, 0
	g.wasRight = false
	g.earned = nil
	g.latest = ""
	g.stars, g.unlocked = 0, 0
	g.options = nil
	g.choice = 0
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
		g.stepIntro(in)
	case session.Active:
		g.stepActive(in)
	case session.Paused:
		if in.Has(core.ActionPause) {
			g.sess.TogglePause()
		} else if in.Has(core.ActionBack) {
			g.exit = true
		}
	case session.Complete:
		g.stepComplete(in)
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) stepIntro(in core.InputFrame) {
	switch {
	case in.Has(core.ActionBack):
		g.exit = true
	case in.Has(core.ActionConfirm) || in.Has(core.ActionSelect):
		if err := g.sess.Start(); err != nil {
			return
		}
		g.logger.Debug("level started", "level", g.level, "session", g.sess.ID())
		g.nextProblem()
	}
}

func (g *Game) stepActive(in core.InputFrame) {
	if in.Has(core.ActionPause) || in.Has(core.ActionBack) {
		g.sess.TogglePause()
		return
	}

	// The question timer is frozen while feedback is shown.
	if g.feedback > 0 {
		g.feedback--
		if g.feedback == 0 {
			g.latest = ""
			g.nextProblem()
		}
		return
	}

	if c := in.Choice(); c >= 0 && c < len(g.current.Choices) {
		g.answer(c)
		return
	}
	n := len(g.current.Choices)
	switch {
	case in.Has(core.ActionLeft):
		g.cursor = (g.cursor + n - 1) % n
	case in.Has(core.ActionRight):
		g.cursor = (g.cursor + 1) % n
	case in.Has(core.ActionUp):
		g.cursor = (g.cursor + n - 2) % n
	case in.Has(core.ActionDown):
		g.cursor = (g.cursor + 2) % n
	case in.Has(core.ActionConfirm) || in.Has(core.ActionSelect):
		g.answer(g.cursor)
		return
	}

	if r := g.sess.Tick(); r.UnitExpired {
		g.answer(-1)
	}
}

func (g *Game) nextProblem() {
	g.current = g.gen.Generate(g.level)
	g.cursor = 0
}

// answer scores choice i of the current problem. A negative i is a timeout.
func (g *Game) answer(i int) {
	if !g.sess.Running() || len(g.current.Choices) == 0 {
		return
	}
	correct := i >= 0 && g.current.IsCorrect(i)
	used := g.sess.Config().UnitTicks - g.sess.UnitTicksLeft()
	xp := 0
	if correct {
		xp = g.math.XPPerCorrect
	}
	if err := g.sess.Record(correct, xp); err != nil {
		return
	}

	outcome := progress.Outcome{
		Correct:    correct,
		XP:         xp,
		AnswerTime: g.ticksToDuration(used),
	}
	if g.sess.Done() {
		total := g.sess.Config().Units
		g.stars = g.math.StarsFor(g.sess.Correct(), total)
		outcome.Level = g.level
		outcome.Stars = g.stars
		outcome.Perfect = g.sess.Correct() == total
	}
	res := g.ledger.Update(outcome)

	g.record = res.Progress
	g.earned = append(g.earned, res.Unlocked...)
	g.latest = res.Celebrated
	if res.LevelUnlocked > 0 {
		g.unlocked = res.LevelUnlocked
	}
	g.picked = i
	g.wasRight = correct
	g.feedback = g.rt.Ticks(g.math.FeedbackMs)

	if g.sess.Done() {
		g.options = g.completeOptions()
		g.choice = 0
		g.logger.Debug("level finished", "level", g.level, "correct", g.sess.Correct(), "stars", g.stars)
	}
}

func (g *Game) ticksToDuration(ticks int) time.Duration {
	rate := g.rt.TickRate
	if rate <= 0 {
		rate = 30
	}
	return time.Duration(max(ticks, 1)) * time.Second / time.Duration(rate)
}

func (g *Game) completeOptions() []Option {
	opts := make([]Option, 0, 3)
	next := g.level + 1
	if next <= g.record.CurrentLevel && (g.math.MaxLevel == 0 || next <= g.math.MaxLevel) {
		opts = append(opts, OptionNext)
	}
	return append(opts, OptionRetry, OptionMenu)
}

func (g *Game) stepComplete(in core.InputFrame) {
	if g.feedback > 0 {
		g.feedback--
		if g.feedback == 0 {
			g.latest = ""
		}
		return
	}
	n := len(g.options)
	switch {
	case in.Has(core.ActionBack):
		g.exit = true
	case in.Has(core.ActionRestart):
		g.pick(OptionRetry)
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
		g.level++
		g.loadLevel()
	case OptionRetry:
		g.loadLevel()
	case OptionMenu:
		g.exit = true
	}
}

// Options returns the level complete menu, empty before completion.
func (g *Game) Options() []Option { return g.options }

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.sess.Score(),
		GameOver: g.sess.Done() && g.feedback == 0,
		Paused:   g.sess.Phase() == session.Paused || g.tooSmall,
		Exit:     g.exit,
		Status:   g.status(),
	}
}

func (g *Game) status() string {
	switch g.sess.Phase() {
	case session.Active, session.Paused:
		return fmt.Sprintf("Level %d · Question %d/%d", g.level, min(g.sess.Unit()+1, g.lvl.Questions), g.lvl.Questions)
	case session.Complete:
		return fmt.Sprintf("Level %d complete %s", g.level, hud.Stars(g.stars))
	}
	return fmt.Sprintf("Level %d", g.level)
}
