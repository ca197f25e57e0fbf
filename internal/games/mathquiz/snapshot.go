package mathquiz

import "github.com/vovakirdan/math-champions/internal/session"

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Level    int
	Phase    session.Phase
	Unit     int
	Correct  int
	Score    int
	Question string
	Answer   int
	Choices  []int
	Cursor   int
	Feedback int
	TimeLeft int
	Stars    int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Level:    g.level,
		Phase:    g.sess.Phase(),
		Unit:     g.sess.Unit(),
		Correct:  g.sess.Correct(),
		Score:    g.sess.Score(),
		Question: g.current.Display(),
		Answer:   g.current.Answer,
		Choices:  append([]int(nil), g.current.Choices...),
		Cursor:   g.cursor,
		Feedback: g.feedback,
		TimeLeft: g.sess.UnitTicksLeft(),
		Stars:    g.stars,
	}
}
