// Package transform composes affine transformations while remembering what
// kind of transformation each one is.
package transform

import (
	"fmt"

	"github.com/df07/go-raytracer-kernel/pkg/math"
)

// Kind identifies what a Transform does
type Kind int

const (
	// RawMatrix is an untagged matrix with no special treatment
	RawMatrix Kind = iota
	Translation
	Rotation
	Scaling
	Shear
)

func (k Kind) String() string {
	switch k {
	case RawMatrix:
		return "matrix"
	case Translation:
		return "translation"
	case Rotation:
		return "rotation"
	case Scaling:
		return "scaling"
	case Shear:
		return "shear"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Transform is an order 4 matrix tagged with its Kind.
// The zero Transform behaves as the identity RawMatrix.
type Transform struct {
	kind   Kind
	matrix math.Matrix
}

// New tags an order 4 matrix with a kind
func New(kind Kind, m math.Matrix) Transform {
	if m.Order() != 4 {
		panic(fmt.Sprintf("transform: matrix must have order 4, got %d", m.Order()))
	}
	return Transform{kind: kind, matrix: m}
}

// FromMatrix wraps an order 4 matrix as a RawMatrix transform
func FromMatrix(m math.Matrix) Transform {
	return New(RawMatrix, m)
}

// Identity returns the identity transform
func Identity() Transform {
	return FromMatrix(math.Identity(4))
}

// NewTranslation displaces points by (x, y, z). Vectors are left unchanged.
func NewTranslation(x, y, z float64) Transform {
	return New(Translation, math.Translation(x, y, z))
}

// NewRotationX rotates about the x axis by r radians
func NewRotationX(r float64) Transform {
	return New(Rotation, math.RotationX(r))
}

// NewRotationY rotates about the y axis by r radians
func NewRotationY(r float64) Transform {
	return New(Rotation, math.RotationY(r))
}

// NewRotationZ rotates about the z axis by r radians
func NewRotationZ(r float64) Transform {
	return New(Rotation, math.RotationZ(r))
}

// NewScaling scales each axis independently. Negative factors reflect.
func NewScaling(x, y, z float64) Transform {
	return New(Scaling, math.Scaling(x, y, z))
}

// NewShear moves each axis in proportion to the other two
func NewShear(xy, xz, yx, yz, zx, zy float64) Transform {
	return New(Shear, math.Shear(xy, xz, yx, yz, zx, zy))
}

// Kind returns the tag of the transform
func (t Transform) Kind() Kind {
	return t.kind
}

// Matrix returns a copy of the underlying matrix
func (t Transform) Matrix() math.Matrix {
	if t.matrix.Order() == 0 {
		return math.Identity(4)
	}
	return t.matrix
}

// Point applies the transform to a point
func (t Transform) Point(p math.Point) math.Point {
	return t.Matrix().MultiplyPoint(p)
}

// Vector applies the transform to a vector.
// A Translation returns the vector unchanged.
func (t Transform) Vector(v math.Vector) math.Vector {
	if t.kind == Translation {
		return v
	}
	return t.Matrix().MultiplyVector(v)
}

// Mul composes t with other; other is applied first.
//
// The result keeps t's kind unless t is a RawMatrix, in which case it takes
// other's kind. Only two RawMatrix operands produce a RawMatrix.
func (t Transform) Mul(other Transform) Transform {
	kind := t.kind
	if kind == RawMatrix {
		kind = other.kind
	}
	return Transform{kind: kind, matrix: t.Matrix().Multiply(other.Matrix())}
}

// Chain composes transforms left to right, so Chain(c, b, a) equals
// c.Mul(b).Mul(a) and applies a first. An empty chain is the identity.
func Chain(ts ...Transform) Transform {
	if len(ts) == 0 {
		return Identity()
	}
	result := ts[0]
	for _, t := range ts[1:] {
		result = result.Mul(t)
	}
	return result
}

// Inverse returns the inverse transform with the same kind.
// ok is false when the underlying matrix is singular.
func (t Transform) Inverse() (inv Transform, ok bool) {
	m, ok := t.Matrix().Inverse()
	if !ok {
		return Transform{}, false
	}
	return Transform{kind: t.kind, matrix: m}, true
}

// Equal reports whether both transforms have the same kind and approximately equal matrices
func (t Transform) Equal(other Transform) bool {
	return t.kind == other.kind && t.Matrix().Equal(other.Matrix())
}

func (t Transform) String() string {
	return fmt.Sprintf("%s%v", t.kind, t.Matrix())
}
