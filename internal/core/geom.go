// Package core holds the screen buffer, input and runtime types shared by
// the platform and the games. It has no Bubble Tea dependency, so games
// stay testable without a terminal.
package core

// Rect is a screen area; X and Y name its top-left cell.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect returns the w×h area whose top-left cell is (x, y).
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the area.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past the area.
func (r Rect) Bottom() int { return r.Y + r.H }

// Clamp limits val to [lo, hi].
func Clamp(val, lo, hi int) int {
	return max(lo, min(val, hi))
}

// Wrap maps val into [0, n) cyclically. Returns 0 when n <= 0.
func Wrap(val, n int) int {
	if n <= 0 {
		return 0
	}
	val %= n
	if val < 0 {
		val += n
	}
	return val
}
