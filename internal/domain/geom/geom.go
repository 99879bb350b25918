// Package geom holds the integer geometry shared by the docking core:
// points, sizes, rectangles and the split orientation.
package geom

import "math"

// HardcodedMinimumSize is the smallest size any layout item may take.
var HardcodedMinimumSize = Size{Width: 80, Height: 90}

// HardcodedMaximumSize is the largest size any layout item may take.
var HardcodedMaximumSize = Size{Width: 16777215, Height: 16777215}

// Orientation is the axis a container splits its children along.
type Orientation int

const (
	// Horizontal lays children out left to right.
	Horizontal Orientation = iota
	// Vertical lays children out top to bottom.
	Vertical
)

// String returns a lowercase name.
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Other returns the cross axis.
func (o Orientation) Other() Orientation {
	if o == Vertical {
		return Horizontal
	}
	return Vertical
}

// Point is a position in global (screen or terminal cell) coordinates.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// ManhattanLength returns |x| + |y|.
func (p Point) ManhattanLength() int {
	return abs(p.X) + abs(p.Y)
}

// Size is a width and height pair.
type Size struct {
	Width, Height int
}

// IsEmpty reports whether either dimension is zero or negative.
func (s Size) IsEmpty() bool { return s.Width <= 0 || s.Height <= 0 }

// ExpandedTo returns the component-wise maximum of s and o.
func (s Size) ExpandedTo(o Size) Size {
	return Size{Width: max(s.Width, o.Width), Height: max(s.Height, o.Height)}
}

// BoundedTo returns the component-wise minimum of s and o.
func (s Size) BoundedTo(o Size) Size {
	return Size{Width: min(s.Width, o.Width), Height: min(s.Height, o.Height)}
}

// Length returns the dimension along o.
func (s Size) Length(o Orientation) int {
	if o == Vertical {
		return s.Height
	}
	return s.Width
}

// WithLength returns s with the dimension along o replaced.
func (s Size) WithLength(o Orientation, n int) Size {
	if o == Vertical {
		s.Height = n
	} else {
		s.Width = n
	}
	return s
}

// Rect is an axis-aligned rectangle. X and Y are the top-left corner;
// the right and bottom edges are exclusive.
type Rect struct {
	X, Y          int
	Width, Height int
}

// RectFrom builds a rectangle from a position and a size.
func RectFrom(p Point, s Size) Rect {
	return Rect{X: p.X, Y: p.Y, Width: s.Width, Height: s.Height}
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }

// TopLeft returns the origin.
func (r Rect) TopLeft() Point { return Point{X: r.X, Y: r.Y} }

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool { return r.Width <= 0 || r.Height <= 0 }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// ContainsRect reports whether o lies fully inside r. An empty o is
// contained by anything.
func (r Rect) ContainsRect(o Rect) bool {
	if o.IsEmpty() {
		return true
	}
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// Intersect returns the overlapping area, or an empty Rect.
func (r Rect) Intersect(o Rect) Rect {
	x, y := max(r.X, o.X), max(r.Y, o.Y)
	w := min(r.Right(), o.Right()) - x
	h := min(r.Bottom(), o.Bottom()) - y
	if w <= 0 || h <= 0 {
		return Rect{}
	}
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Translate returns r moved by d.
func (r Rect) Translate(d Point) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Inset shrinks r by dx on the left and right and dy on the top and bottom.
func (r Rect) Inset(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width - 2*dx, Height: r.Height - 2*dy}
}

// Pos returns the coordinate of the leading edge along o.
func (r Rect) Pos(o Orientation) int {
	if o == Vertical {
		return r.Y
	}
	return r.X
}

// Length returns the dimension along o.
func (r Rect) Length(o Orientation) int { return r.Size().Length(o) }

// Clamp returns v constrained to [lo, hi]. When lo > hi, lo wins so a
// minimum is never violated.
func Clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// ClampSize clamps s component-wise between lo and hi, lo winning.
func ClampSize(s, lo, hi Size) Size {
	return Size{
		Width:  Clamp(s.Width, lo.Width, hi.Width),
		Height: Clamp(s.Height, lo.Height, hi.Height),
	}
}

// SaturatingAdd adds two lengths without overflowing past limit.
func SaturatingAdd(a, b, limit int) int {
	if a > limit-b {
		return limit
	}
	return a + b
}

// Round rounds half away from zero.
func Round(f float64) int { return int(math.Round(f)) }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
