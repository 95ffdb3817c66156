// Package geom provides geometric value types shared across cadkit.
//
// The package fixes a single 3D point representation for the whole toolkit:
// 2D drawing operations set Z to zero rather than using a separate 2D type.
// Points are plain values with no identity; all operations return fresh
// values and never mutate their receiver.
package geom

import (
	"fmt"
	"math"
)

// Axis identifies one of the three coordinate axes.
type Axis int

// Coordinate axes. AxisX is the zero value, matching the convention that
// unqualified linear operations run along the X axis.
const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns the axis name ("x", "y", or "z").
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return fmt.Sprintf("axis(%d)", int(a))
}

// Valid reports whether the axis is one of the three coordinate axes.
func (a Axis) Valid() bool {
	return a == AxisX || a == AxisY || a == AxisZ
}

// Point is a location in model space. The zero value is the origin.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z,omitempty"`
}

// P is shorthand for constructing a 3D point.
func P(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// P2 constructs a point on the Z=0 plane.
func P2(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Translate returns the point shifted by the given deltas.
func (p Point) Translate(dx, dy, dz float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy, Z: p.Z + dz}
}

// Offset returns the point shifted by d along the given axis.
// Invalid axes leave the point unchanged.
func (p Point) Offset(axis Axis, d float64) Point {
	switch axis {
	case AxisX:
		p.X += d
	case AxisY:
		p.Y += d
	case AxisZ:
		p.Z += d
	}
	return p
}

// Coord returns the coordinate of the point along the given axis.
func (p Point) Coord(axis Axis) float64 {
	switch axis {
	case AxisY:
		return p.Y
	case AxisZ:
		return p.Z
	default:
		return p.X
	}
}

// Distance returns the Euclidean distance between two points.
func (p Point) Distance(q Point) float64 {
	dx, dy, dz := q.X-p.X, q.Y-p.Y, q.Z-p.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// String formats the point as "(x, y, z)" with minimal digits.
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}
