package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Rect is an axis-aligned box with a top-left origin.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// RectAround builds a rect of the given size centered on (x, y).
func RectAround(x, y, width, height float64) Rect {
	return Rect{X: x - width/2, Y: y - height/2, Width: width, Height: height}
}

// Intersects reports strict overlap. Touching edges do not count.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.Width &&
		r.X+r.Width > o.X &&
		r.Y < o.Y+o.Height &&
		r.Y+r.Height > o.Y
}

func (r Rect) Center() cp.Vector {
	return cp.Vector{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Radius is the radius of the circle used when a box is tested against
// circular geometry.
func (r Rect) Radius() float64 {
	return math.Max(r.Width, r.Height) / 2
}

func (r Rect) BB() cp.BB {
	return cp.BB{L: r.X, B: r.Y, R: r.X + r.Width, T: r.Y + r.Height}
}

// Clamp keeps the rect fully inside bounds.
func (r Rect) Clamp(bounds Rect) Rect {
	r.X = Clamp(r.X, bounds.X, bounds.X+bounds.Width-r.Width)
	r.Y = Clamp(r.Y, bounds.Y, bounds.Y+bounds.Height-r.Height)
	return r
}

// Contains reports whether a point lies inside the rect grown by margin.
func (r Rect) Contains(p cp.Vector, margin float64) bool {
	bb := r.BB()
	return cp.BB{L: bb.L - margin, B: bb.B - margin, R: bb.R + margin, T: bb.T + margin}.ContainsVect(p)
}
