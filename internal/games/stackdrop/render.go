package stackdrop

import (
	"fmt"

	"github.com/vovakirdan/math-champions/internal/core"
	"github.com/vovakirdan/math-champions/internal/games/hud"
	"github.com/vovakirdan/math-champions/internal/session"
)

const blockChar = '█'

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		hud.TooSmallNotice(dst)
		return
	}

	hud.Header(dst, "STACK DROP", fmt.Sprintf("Height %d  Best %d", g.sess.Score(), g.best.HighScore))

	left := (dst.Width() - g.fieldW) / 2
	field := core.NewRect(left-1, 2, g.fieldW+2, dst.Height()-3)
	dst.DrawBox(field, core.ColorGray)
	g.renderTower(dst, left, field.Bottom()-2, field.Y+4)

	if g.sess.Running() || g.sess.Phase() == session.Paused {
		cur := g.current()
		dst.DrawHLine(left+cur.X, field.Y+2, cur.W, blockChar, palette[len(g.tower)%len(palette)])
	}
	if g.flash > 0 {
		dst.DrawTextCenteredColored(field.Y+1, "PERFECT!", core.ColorYellow)
	}

	switch g.sess.Phase() {
	case session.NotStarted:
		hud.Banner(dst, "Stack Drop", "", "Drop the block onto the tower.", "Line it up exactly to grow it back.", "", "Press Space to start")
		hud.Footer(dst, "Space start · Esc back")
	case session.Active:
		hud.Footer(dst, "Space drop · P pause · Esc pause")
	case session.Paused:
		hud.Paused(dst)
	case session.Complete:
		hud.Banner(dst, "Tower fell!", "",
			fmt.Sprintf("Height %d · %d perfect", g.sess.Score(), g.perfect),
			fmt.Sprintf("Best %d · %d games", g.best.HighScore, g.best.TotalGames),
			"", "Enter play again · Esc menu")
	}
}

// renderTower draws the highest blocks that fit between bottom and top rows.
func (g *Game) renderTower(dst *core.Screen, left, bottom, top int) {
	rows := bottom - top + 1
	if rows <= 0 {
		return
	}
	first := max(0, len(g.tower)-rows)
	for i, b := range g.tower[first:] {
		dst.DrawHLine(left+b.X, bottom-i, b.W, blockChar, b.Color)
	}
}
