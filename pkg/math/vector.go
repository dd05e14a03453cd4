package math

import (
	"fmt"
	"math"

	"github.com/df07/go-raytracer-kernel/pkg/core"
)

// Vector represents a displacement or direction in 3D space
type Vector struct {
	X, Y, Z float64
}

// NewVector creates a new Vector
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// AddPoint displaces p by v. It is the commutative partner of Point.Add.
func (v Vector) AddPoint(p Point) Point {
	return Point{v.X + p.X, v.Y + p.Y, v.Z + p.Z}
}

// Subtract returns the difference of two vectors
func (v Vector) Subtract(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Negate returns the negative of the vector
func (v Vector) Negate() Vector {
	return Vector{-v.X, -v.Y, -v.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vector) Multiply(scalar float64) Vector {
	return Vector{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Divide returns the vector divided by a scalar
func (v Vector) Divide(scalar float64) Vector {
	return Vector{v.X / scalar, v.Y / scalar, v.Z / scalar}
}

// Dot returns the dot product of two vectors
func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the right-handed cross product of two vectors
func (v Vector) Cross(other Vector) Vector {
	return Vector{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Magnitude returns the length of the vector
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns a unit vector in the same direction.
// The zero vector has no direction and is returned unchanged.
func (v Vector) Normalize() Vector {
	mag := v.Magnitude()
	if mag == 0 {
		return Vector{}
	}
	return v.Divide(mag)
}

// Equal reports whether both vectors agree on every component to five decimal places
func (v Vector) Equal(other Vector) bool {
	return core.ApproxEqual(v.X, other.X) &&
		core.ApproxEqual(v.Y, other.Y) &&
		core.ApproxEqual(v.Z, other.Z)
}

func (v Vector) String() string {
	return fmt.Sprintf("vector(%g, %g, %g)", v.X, v.Y, v.Z)
}
