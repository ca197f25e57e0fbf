// Package core holds the pure types shared by games and the platform layer:
// screen buffers, input frames, runtime config and small geometry helpers.
// It never imports Bubble Tea so game logic stays testable without a terminal.
package core

// Rect is an axis-aligned box in screen cells.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether the cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Centered returns a w x h rectangle centred inside r.
func (r Rect) Centered(w, h int) Rect {
	return Rect{X: r.X + (r.W-w)/2, Y: r.Y + (r.H-h)/2, W: w, H: h}
}

// Span is a horizontal segment [X, X+W).
type Span struct {
	X, W int
}

// End returns the first column past the span.
func (s Span) End() int {
	return s.X + s.W
}

// Overlap returns the shared part of two spans.
// The result has W == 0 when they do not touch.
func (s Span) Overlap(o Span) Span {
	start := max(s.X, o.X)
	end := min(s.End(), o.End())
	if end <= start {
		return Span{X: start}
	}
	return Span{X: start, W: end - start}
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Abs returns the absolute value of x.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
