package motion

// MagneticStrength is the fraction of the pointer's offset from a button's
// centre that the button follows.
const MagneticStrength = 0.3

// Rect is a screen region in cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) is inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: float64(r.X) + float64(r.W)/2, Y: float64(r.Y) + float64(r.H)/2}
}

// MagneticOffset returns how far a button inside r should shift toward the
// pointer. Outside r the offset is zero, which resets the button.
func MagneticOffset(pointer Point, r Rect, strength float64) Point {
	px, py := pointer.Cell()
	if !r.Contains(px, py) {
		return Point{}
	}
	c := r.Center()
	return Point{
		X: (pointer.X - c.X) * strength,
		Y: (pointer.Y - c.Y) * strength,
	}
}

// Pointer is the latest sampled pointer position. When no device has
// reported yet, Present is false and consumers use a constant default.
type Pointer struct {
	Point
	Present bool
}

// Or returns the sampled point, or fallback when nothing was sampled.
func (p Pointer) Or(fallback Point) Point {
	if !p.Present {
		return fallback
	}
	return p.Point
}
