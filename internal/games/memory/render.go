package memory

import (
	"fmt"

	"github.com/vovakirdan/math-champions/internal/core"
	"github.com/vovakirdan/math-champions/internal/games/hud"
	"github.com/vovakirdan/math-champions/internal/gamestats"
	"github.com/vovakirdan/math-champions/internal/session"
)

const (
	cardW = 7
	cardH = 3
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		hud.TooSmallNotice(dst)
		return
	}

	hud.Header(dst, "MEMORY MATCH · "+string(g.preset),
		fmt.Sprintf("Moves %d  ⏱ %s", g.moves, clock(g.Seconds())))

	if g.sess.Done() {
		g.renderComplete(dst)
		hud.Footer(dst, "↑↓ choose · Enter confirm · R again · Esc menu")
		return
	}

	g.renderBoard(dst)
	dst.DrawTextCenteredColored(dst.Height()-2, g.bestLine(), core.ColorGray)
	if g.sess.Phase() == session.Paused {
		hud.Paused(dst)
		return
	}
	hud.Footer(dst, "arrows move · Space flip · P pause · Esc back")
}

func (g *Game) bestLine() string {
	if g.best.TotalWins == 0 {
		return fmt.Sprintf("Pairs %d/%d", g.matched, g.board.Pairs)
	}
	return fmt.Sprintf("Pairs %d/%d · Best %d moves, %s", g.matched, g.board.Pairs, g.best.BestMoves, clock(g.best.BestTime))
}

func (g *Game) faceUp(i int) bool {
	if g.cards[i].matched {
		return true
	}
	for _, f := range g.flipped {
		if f == i {
			return true
		}
	}
	return false
}

func (g *Game) renderBoard(dst *core.Screen) {
	cols := g.board.Columns
	rows := (len(g.cards) + cols - 1) / cols
	area := core.NewRect(0, 2, dst.Width(), dst.Height()-4).Centered(cols*cardW, rows*cardH)

	mismatch := g.hideIn > 0
	for i, c := range g.cards {
		r := core.NewRect(area.X+(i%cols)*cardW, area.Y+(i/cols)*cardH, cardW-1, cardH)
		border := core.ColorGray
		switch {
		case i == g.cursor:
			border = core.ColorYellow
		case c.matched:
			border = core.ColorGreen
		case mismatch && g.faceUp(i):
			border = core.ColorRed
		}
		dst.DrawBox(r, border)

		face, color := '?', core.ColorBlue
		if g.faceUp(i) {
			face, color = c.symbol, core.ColorWhite
			if c.matched {
				color = core.ColorGreen
			}
		}
		dst.SetColored(r.X+r.W/2, r.Y+1, face, color)
	}
}

func (g *Game) renderComplete(dst *core.Screen) {
	y := 4
	dst.DrawTextCenteredColored(y, "All pairs found!", core.ColorMagenta)
	dst.DrawTextCentered(y+2, fmt.Sprintf("%d moves in %s · %d points", g.moves, clock(g.Seconds()), g.sess.Score()))
	dst.DrawTextCenteredColored(y+3, recordLine(g.best), core.ColorCyan)
	if g.newBest {
		dst.DrawTextCenteredColored(y+4, "New personal best!", core.ColorYellow)
	}

	y += 6
	for i, o := range g.options {
		label := "  " + o.String() + "  "
		color := core.ColorGray
		if i == g.choice {
			label = "> " + o.String() + " <"
			color = core.ColorYellow
		}
		dst.DrawTextCenteredColored(y+i, label, color)
	}
}

func recordLine(p gamestats.MemoryGameProgress) string {
	return fmt.Sprintf("Best %d moves · %s · %d wins in %d games", p.BestMoves, clock(p.BestTime), p.TotalWins, p.GamesPlayed)
}
