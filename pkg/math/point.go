package math

import (
	"fmt"

	"github.com/df07/go-raytracer-kernel/pkg/core"
)

// Point represents a location in 3D space.
// Points cannot be added to each other; only a Vector can displace a Point.
type Point struct {
	X, Y, Z float64
}

// NewPoint creates a new Point
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Origin returns the point at (0, 0, 0)
func Origin() Point {
	return Point{}
}

// Add displaces the point by a vector
func (p Point) Add(v Vector) Point {
	return Point{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Subtract returns the vector from other to p
func (p Point) Subtract(other Point) Vector {
	return Vector{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// SubtractVector displaces the point by the negated vector
func (p Point) SubtractVector(v Vector) Point {
	return Point{p.X - v.X, p.Y - v.Y, p.Z - v.Z}
}

// Equal reports whether both points agree on every coordinate to five decimal places
func (p Point) Equal(other Point) bool {
	return core.ApproxEqual(p.X, other.X) &&
		core.ApproxEqual(p.Y, other.Y) &&
		core.ApproxEqual(p.Z, other.Z)
}

func (p Point) String() string {
	return fmt.Sprintf("point(%g, %g, %g)", p.X, p.Y, p.Z)
}
