package geometry

import "fmt"

// The scroll axis a pager pages along.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

type Point struct {
	X, Y float64
}

type Size struct {
	Width, Height float64
}

type Rect struct {
	Origin Point
	Size   Size
}

// Along returns the component of p on the given axis.
func (p Point) Along(a Axis) float64 {
	if a == AxisVertical {
		return p.Y
	}
	return p.X
}

// PointAlong builds a point that is v on the given axis and zero on the
// other one.
func PointAlong(a Axis, v float64) Point {
	if a == AxisVertical {
		return Point{Y: v}
	}
	return Point{X: v}
}

// Extent returns the length of s along the given axis.
func (s Size) Extent(a Axis) float64 {
	if a == AxisVertical {
		return s.Height
	}
	return s.Width
}

// WithExtent returns s with its length along a replaced by v. The cross
// axis is kept.
func (s Size) WithExtent(a Axis, v float64) Size {
	if a == AxisVertical {
		s.Height = v
	} else {
		s.Width = v
	}
	return s
}

func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

func (r Rect) String() string {
	return fmt.Sprintf("{(%g, %g) %gx%g}",
		r.Origin.X, r.Origin.Y, r.Size.Width, r.Size.Height)
}
