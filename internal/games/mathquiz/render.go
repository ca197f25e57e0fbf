package mathquiz

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/math-champions/internal/config"
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

	hud.Header(dst, fmt.Sprintf("MATH CHAMPIONS · Level %d", g.level),
		fmt.Sprintf("XP %d  ★ %d", g.record.XPPoints, g.record.TotalStars))

	switch g.sess.Phase() {
	case session.NotStarted:
		g.renderIntro(dst)
		hud.Footer(dst, "Enter start · Esc back")
	case session.Active:
		g.renderQuestion(dst)
		hud.Footer(dst, "1-4 or arrows+Enter answer · P pause · Esc pause")
	case session.Paused:
		g.renderQuestion(dst)
		hud.Paused(dst)
	case session.Complete:
		if g.feedback > 0 {
			g.renderQuestion(dst)
			return
		}
		g.renderComplete(dst)
		hud.Footer(dst, "↑↓ choose · Enter confirm · R retry · Esc menu")
	}
}

func (g *Game) renderIntro(dst *core.Screen) {
	lines := []string{
		fmt.Sprintf("Level %d", g.level),
		"",
		"Operations: " + opsList(g.lvl.Ops),
		fmt.Sprintf("Numbers up to %d", g.lvl.MaxNum),
		fmt.Sprintf("%d questions · %ds each", g.lvl.Questions, g.lvl.TimeLimit),
	}
	if g.record.IsCompleted(g.level) {
		lines = append(lines, "Best: "+hud.Stars(g.record.StarsFor(g.level)))
	}
	lines = append(lines, "", "Press Enter to start")
	hud.Banner(dst, lines...)
}

func opsList(ops []config.Operation) string {
	parts := make([]string, len(ops))
	for i, op := range ops {
		parts[i] = string(op)
	}
	return strings.Join(parts, " ")
}

func (g *Game) renderQuestion(dst *core.Screen) {
	w := dst.Width()
	unit := min(g.sess.Unit()+1, g.lvl.Questions)
	if g.feedback > 0 {
		unit = g.sess.Unit()
	}
	dst.DrawText(2, 3, fmt.Sprintf("Question %d/%d", unit, g.lvl.Questions))
	streak := fmt.Sprintf("Streak %d", g.sess.Streak())
	dst.DrawTextColored(w-len(streak)-2, 3, streak, core.ColorYellow)

	limit := g.sess.Config().UnitTicks
	left := g.sess.UnitTicksLeft()
	secs := (left + max(g.rt.TickRate, 1) - 1) / max(g.rt.TickRate, 1)
	timerColor := core.ColorGreen
	if left*4 <= limit {
		timerColor = core.ColorRed
	}
	dst.DrawTextColored(2, 4, fmt.Sprintf("⏱ %2ds %s", secs, hud.Meter(left, limit, min(30, w-12))), timerColor)

	if len(g.current.Choices) == 0 {
		return
	}
	dst.DrawTextCenteredColored(7, g.current.Display(), core.ColorCyan)

	colW := min(18, (w-4)/2)
	left0 := w/2 - colW
	for i, c := range g.current.Choices {
		x := left0 + (i%2)*colW
		y := 10 + (i/2)*2
		label := fmt.Sprintf(" %d) %d ", i+1, c)
		color := core.ColorWhite
		switch {
		case g.feedback > 0 && g.current.IsCorrect(i):
			color = core.ColorGreen
		case g.feedback > 0 && i == g.picked:
			color = core.ColorRed
		case g.feedback == 0 && i == g.cursor:
			label = "[" + label[1:len(label)-1] + "]"
			color = core.ColorYellow
		}
		dst.DrawTextColored(x, y, label, color)
	}

	if g.feedback > 0 {
		msg, color := fmt.Sprintf("Correct! +%d XP", g.math.XPPerCorrect), core.ColorGreen
		if !g.wasRight {
			color = core.ColorRed
			msg = fmt.Sprintf("Not quite: %d %s %d = %d", g.current.Left, g.current.Op, g.current.Right, g.current.Answer)
			if g.picked < 0 {
				msg = "Time's up! " + msg
			}
		}
		dst.DrawTextCenteredColored(15, msg, color)
		if b, ok := g.ledger.Catalog().Lookup(g.latest); ok {
			dst.DrawTextCenteredColored(16, fmt.Sprintf("Badge unlocked: %s %s", b.Icon, b.Name), core.ColorMagenta)
		}
	}
}

func (g *Game) renderComplete(dst *core.Screen) {
	total := g.sess.Config().Units
	title := "Keep practicing"
	switch {
	case g.stars == 3:
		title = "Mastered!"
	case g.stars > 0:
		title = "Level complete"
	}
	y := 4
	dst.DrawTextCenteredColored(y, title, core.ColorMagenta)
	dst.DrawTextCenteredColored(y+2, hud.Stars(g.stars), core.ColorYellow)
	dst.DrawTextCentered(y+3, fmt.Sprintf("%d/%d correct · +%d XP · best streak %d",
		g.sess.Correct(), total, g.sess.Score(), g.sess.BestStreak()))
	y += 5
	if g.unlocked > 0 {
		dst.DrawTextCenteredColored(y, fmt.Sprintf("Level %d unlocked!", g.unlocked), core.ColorGreen)
		y++
	}
	for _, id := range g.earned {
		if b, ok := g.ledger.Catalog().Lookup(id); ok {
			dst.DrawTextCenteredColored(y, fmt.Sprintf("%s %s: %s", b.Icon, b.Name, b.Description), core.ColorCyan)
			y++
		}
	}
	y++
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
