package tapperfect

import "github.com/vovakirdan/math-champions/internal/session"

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Phase   session.Phase
	Power   int
	Shot    int
	Flight  int
	Wait    int
	Grade   Grade
	Score   int
	Lives   int
	Combo   int
	Perfect int
	Taps    int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:    g.tick,
		Phase:   g.sess.Phase(),
		Power:   g.power,
		Shot:    g.shot,
		Flight:  g.flight,
		Wait:    g.wait,
		Grade:   g.grade,
		Score:   g.sess.Score(),
		Lives:   g.sess.Lives(),
		Combo:   g.combo,
		Perfect: g.perfect,
		Taps:    g.taps,
	}
}
