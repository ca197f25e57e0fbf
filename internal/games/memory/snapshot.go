package memory

import "github.com/vovakirdan/math-champions/internal/session"

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Phase   session.Phase
	Layout  string
	Flipped []int
	Matched int
	Moves   int
	Cursor  int
	Elapsed int
	Score   int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	layout := make([]rune, len(g.cards))
	for i, c := range g.cards {
		layout[i] = c.symbol
	}
	return Snapshot{
		Tick:    g.tick,
		Phase:   g.sess.Phase(),
		Layout:  string(layout),
		Flipped: append([]int(nil), g.flipped...),
		Matched: g.matched,
		Moves:   g.moves,
		Cursor:  g.cursor,
		Elapsed: g.sess.Elapsed(),
		Score:   g.sess.Score(),
	}
}
