package tapperfect

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/math-champions/internal/core"
	"github.com/vovakirdan/math-champions/internal/games/hud"
	"github.com/vovakirdan/math-champions/internal/session"
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		hud.TooSmallNotice(dst)
		return
	}

	hud.Header(dst, "TAP PERFECT", fmt.Sprintf("Score %d  Best %d", g.sess.Score(), g.best.HighScore))

	lives := strings.Repeat("♥", g.sess.Lives()) + strings.Repeat("♡", max(0, g.cfg.Lives-g.sess.Lives()))
	dst.DrawTextColored(2, 3, lives, core.ColorRed)
	if g.combo > 1 {
		combo := fmt.Sprintf("%dx COMBO", g.combo)
		dst.DrawTextColored(dst.Width()-len(combo)-2, 3, combo, core.ColorYellow)
	}

	meterW := min(dst.Width()-10, 50)
	left := (dst.Width() - meterW) / 2
	g.renderTarget(dst, left, meterW, 6)
	g.renderMeter(dst, left, meterW, 12)

	if g.grade != GradeNone {
		color := core.ColorGreen
		switch g.grade {
		case GradePerfect:
			color = core.ColorYellow
		case GradeMiss:
			color = core.ColorRed
		}
		msg := g.grade.String()
		if g.gained > 0 {
			msg += fmt.Sprintf(" +%d", g.gained)
		}
		dst.DrawTextCenteredColored(15, msg, color)
	}

	switch g.sess.Phase() {
	case session.NotStarted:
		hud.Banner(dst, "Tap Perfect", "",
			fmt.Sprintf("Tap when the power hits %d.", g.cfg.Target),
			"Bullseyes in a row build a combo.", "", "Press Space to start")
		hud.Footer(dst, "Space start · Esc back")
	case session.Active:
		hud.Footer(dst, "Space tap · P pause · Esc pause")
	case session.Paused:
		hud.Paused(dst)
	case session.Complete:
		hud.Banner(dst, "Out of lives!", "",
			fmt.Sprintf("Score %d · %d bullseyes in %d taps", g.sess.Score(), g.perfect, g.taps),
			fmt.Sprintf("Best %d · %d games", g.best.HighScore, g.best.TotalGames),
			"", "Enter play again · Esc menu")
	}
}

// cell maps a power value onto the meter.
func cell(power, width int) int {
	return core.Clamp(power*width/MaxPower, 0, width-1)
}

// renderTarget draws the target and the arrow in flight.
func (g *Game) renderTarget(dst *core.Screen, left, width, y int) {
	tx := left + width - 1
	for dy := -2; dy <= 2; dy++ {
		color := core.ColorWhite
		switch core.Abs(dy) {
		case 0:
			color = core.ColorRed
		case 1:
			color = core.ColorYellow
		}
		dst.SetColored(tx, y+dy, '█', color)
	}

	if g.flight == 0 && g.grade == GradeNone {
		return
	}
	total := g.rt.Ticks(flightMs)
	done := total - g.flight
	x := left + (width-2)*done/total
	// Misses drift off the target in proportion to the error.
	diff := g.shot - g.cfg.Target
	dy := core.Clamp(diff*2*done/(total*max(g.cfg.GoodRange, 1)), -3, 3)
	dst.SetColored(x, y+dy, '➤', core.ColorCyan)
}

func (g *Game) renderMeter(dst *core.Screen, left, width, y int) {
	dst.DrawBox(core.NewRect(left-1, y-1, width+2, 3), core.ColorGray)
	for i := 0; i < width; i++ {
		p := i * MaxPower / width
		diff := core.Abs(p - g.cfg.Target)
		color := core.ColorGray
		switch {
		case diff <= g.cfg.PerfectRange:
			color = core.ColorGreen
		case diff <= g.cfg.GoodRange:
			color = core.ColorYellow
		}
		dst.SetColored(left+i, y, '░', color)
	}
	power := g.power
	if g.flight > 0 || g.grade != GradeNone {
		power = g.shot
	}
	filled := cell(power, width)
	dst.DrawHLine(left, y, filled+1, '█', core.ColorCyan)
	dst.SetColored(left+cell(g.cfg.Target, width), y+2, '▲', core.ColorRed)
}
