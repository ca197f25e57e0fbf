package stackdrop

import "github.com/vovakirdan/math-champions/internal/session"

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Phase   session.Phase
	X       int
	Dir     float64
	Width   int
	Speed   float64
	Blocks  int
	TopX    int
	TopW    int
	Score   int
	Perfect int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	top := g.Top()
	return Snapshot{
		Tick:    g.tick,
		Phase:   g.sess.Phase(),
		X:       g.current().X,
		Dir:     g.dir,
		Width:   g.width,
		Speed:   g.speed,
		Blocks:  len(g.tower),
		TopX:    top.X,
		TopW:    top.W,
		Score:   g.sess.Score(),
		Perfect: g.perfect,
	}
}
