// Package hud draws the pieces of screen every game shares: the title bar,
// the key hint footer, star strings and the pause and too-small overlays.
package hud

import (
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/math-champions/internal/core"
)

// Minimum screen size every game needs.
const (
	MinWidth  = 44
	MinHeight = 18
)

// TooSmall reports whether the screen cannot fit a game.
func TooSmall(w, h int) bool {
	return w < MinWidth || h < MinHeight
}

// Stars renders n of 3 stars, e.g. "★★☆".
func Stars(n int) string {
	n = core.Clamp(n, 0, 3)
	return strings.Repeat("★", n) + strings.Repeat("☆", 3-n)
}

// Header draws the title on the left and status on the right of row 0,
// with a rule under it.
func Header(dst *core.Screen, title, status string) {
	dst.DrawTextColored(1, 0, title, core.ColorMagenta)
	x := dst.Width() - utf8.RuneCountInString(status) - 1
	dst.DrawTextColored(x, 0, status, core.ColorYellow)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// Footer draws a key hint on the last row.
func Footer(dst *core.Screen, hint string) {
	dst.DrawTextCenteredColored(dst.Height()-1, hint, core.ColorGray)
}

// Banner draws a boxed message centred on the screen.
func Banner(dst *core.Screen, lines ...string) {
	w := 0
	for _, l := range lines {
		w = max(w, utf8.RuneCountInString(l))
	}
	box := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(w+4, len(lines)+2)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorCyan)
	for i, l := range lines {
		x := box.X + (box.W-utf8.RuneCountInString(l))/2
		dst.DrawText(x, box.Y+1+i, l)
	}
}

// Paused draws the pause overlay.
func Paused(dst *core.Screen) {
	Banner(dst, "PAUSED", "P resume · Esc menu")
}

// TooSmallNotice explains that the window must grow.
func TooSmallNotice(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// Meter renders a horizontal bar of width cells filled to value/limit.
func Meter(value, limit, width int) string {
	if limit <= 0 || width <= 0 {
		return ""
	}
	filled := core.Clamp(value*width/limit, 0, width)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
