// Package session implements the state machine every mini-game runs on:
// NotStarted -> Active <-> Paused -> Complete -> NotStarted.
// Games describe their shape with a Config (unit count, per-unit countdown,
// session time limit, lives) and drive the machine from their Step loop.
package session

import (
	"errors"

	"github.com/google/uuid"
)

// Phase is the lifecycle state of a session.
type Phase int

const (
	NotStarted Phase = iota
	Active
	Paused
	Complete
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not started"
	case Active:
		return "active"
	case Paused:
		return "paused"
	case Complete:
		return "complete"
	}
	return "unknown"
}

// EndReason says why a session completed.
type EndReason int

const (
	EndNone     EndReason = iota
	EndUnits              // every unit answered
	EndTime               // session time limit reached
	EndLives              // no lives left
	EndGameRule           // game-specific terminal condition
)

// ErrNotActive is returned by mutations attempted outside Active.
var ErrNotActive = errors.New("session: not active")

// ErrWrongPhase is returned by transitions that do not apply to the current phase.
var ErrWrongPhase = errors.New("session: transition not allowed")

// Config shapes a session. Zero values disable the matching rule.
type Config struct {
	Units          int // units before completion
	UnitTicks      int // countdown per unit
	TimeLimitTicks int // countdown for the whole session
	Lives          int // lives at start
}

// TickResult reports what a tick did.
type TickResult struct {
	UnitExpired bool // the unit countdown ran out this tick
	Completed   bool // the session completed this tick
}

// Machine is one session. It is not safe for concurrent use.
type Machine struct {
	cfg    Config
	id     string
	phase  Phase
	reason EndReason

	unit       int
	score      int
	correct    int
	streak     int
	bestStreak int
	lives      int
	unitLeft   int
	timeLeft   int
	elapsed    int
}

// New returns a machine in NotStarted.
func New(cfg Config) *Machine {
	m := &Machine{cfg: cfg}
	m.reset()
	return m
}

func (m *Machine) reset() {
	m.phase = NotStarted
	m.reason = EndNone
	m.unit, m.score, m.correct, m.streak, m.bestStreak, m.elapsed = 0, 0, 0, 0, 0, 0
	m.lives = m.cfg.Lives
	m.unitLeft = m.cfg.UnitTicks
	m.timeLeft = m.cfg.TimeLimitTicks
}

// Start moves NotStarted to Active with fresh counters and a new session ID.
func (m *Machine) Start() error {
	if m.phase != NotStarted {
		return ErrWrongPhase
	}
	m.reset()
	m.id = uuid.NewString()
	m.phase = Active
	return nil
}

// Pause freezes an active session.
func (m *Machine) Pause() error {
	if m.phase != Active {
		return ErrWrongPhase
	}
	m.phase = Paused
	return nil
}

// Resume continues a paused session.
func (m *Machine) Resume() error {
	if m.phase != Paused {
		return ErrWrongPhase
	}
	m.phase = Active
	return nil
}

// TogglePause pauses or resumes. It does nothing in other phases.
func (m *Machine) TogglePause() {
	switch m.phase {
	case Active:
		m.phase = Paused
	case Paused:
		m.phase = Active
	}
}

// Record scores one unit and advances to the next, completing the session
// after the last unit. Points are added only for correct units.
func (m *Machine) Record(correct bool, points int) error {
	if m.phase != Active {
		return ErrNotActive
	}
	if correct {
		m.correct++
		m.streak++
		m.bestStreak = max(m.bestStreak, m.streak)
		m.score += max(points, 0)
	} else {
		m.streak = 0
	}
	m.unit++
	m.unitLeft = m.cfg.UnitTicks
	if m.cfg.Units > 0 && m.unit >= m.cfg.Units {
		m.complete(EndUnits)
	}
	return nil
}

// AddScore adds points without consuming a unit.
func (m *Machine) AddScore(points int) error {
	if m.phase != Active {
		return ErrNotActive
	}
	m.score += max(points, 0)
	return nil
}

// LoseLife removes a life, completing the session at zero.
// Sessions configured without lives ignore it.
func (m *Machine) LoseLife() error {
	if m.phase != Active {
		return ErrNotActive
	}
	if m.cfg.Lives == 0 {
		return nil
	}
	m.lives--
	if m.lives <= 0 {
		m.lives = 0
		m.complete(EndLives)
	}
	return nil
}

// Tick advances timers by one simulation tick. Timers only run while Active.
func (m *Machine) Tick() TickResult {
	var r TickResult
	if m.phase != Active {
		return r
	}
	m.elapsed++

	if m.cfg.TimeLimitTicks > 0 {
		m.timeLeft--
		if m.timeLeft <= 0 {
			m.timeLeft = 0
			m.complete(EndTime)
			r.Completed = true
			return r
		}
	}
	if m.cfg.UnitTicks > 0 {
		m.unitLeft--
		if m.unitLeft <= 0 {
			m.unitLeft = 0
			r.UnitExpired = true
		}
	}
	return r
}

// Finish ends an active or paused session for a game-specific reason.
func (m *Machine) Finish(reason EndReason) error {
	if m.phase != Active && m.phase != Paused {
		return ErrWrongPhase
	}
	m.complete(reason)
	return nil
}

// Restart returns to NotStarted from any phase.
func (m *Machine) Restart() {
	m.reset()
}

func (m *Machine) complete(reason EndReason) {
	m.phase = Complete
	m.reason = reason
}

// ID returns the session ID assigned by Start, "" before the first start.
func (m *Machine) ID() string { return m.id }

// Phase returns the current phase.
func (m *Machine) Phase() Phase { return m.phase }

// Reason returns why the session completed.
func (m *Machine) Reason() EndReason { return m.reason }

// Config returns the session shape.
func (m *Machine) Config() Config { return m.cfg }

// Unit returns the zero-based index of the current unit.
func (m *Machine) Unit() int { return m.unit }

// Score returns the running score.
func (m *Machine) Score() int { return m.score }

// Correct returns the number of correct units.
func (m *Machine) Correct() int { return m.correct }

// Streak returns the current run of correct units.
func (m *Machine) Streak() int { return m.streak }

// BestStreak returns the longest run of correct units this session.
func (m *Machine) BestStreak() int { return m.bestStreak }

// Lives returns the remaining lives.
func (m *Machine) Lives() int { return m.lives }

// UnitTicksLeft returns the remaining ticks of the unit countdown.
func (m *Machine) UnitTicksLeft() int { return m.unitLeft }

// TimeLeft returns the remaining ticks of the session limit.
func (m *Machine) TimeLeft() int { return m.timeLeft }

// Elapsed returns the active ticks since Start.
func (m *Machine) Elapsed() int { return m.elapsed }

// Running reports whether the session is Active.
func (m *Machine) Running() bool { return m.phase == Active }

// Done reports whether the session is Complete.
func (m *Machine) Done() bool { return m.phase == Complete }
