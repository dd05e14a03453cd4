package geometry

import (
	"errors"
	"math"

	mathpkg "github.com/df07/go-raytracer-kernel/pkg/math"
	"github.com/df07/go-raytracer-kernel/pkg/transform"
)

// ErrSingularTransform is returned when an object transform has no inverse
var ErrSingularTransform = errors.New("object transform is not invertible")

// ObjectID identifies an object within the scene that created it
type ObjectID uint64

// Sphere is a unit sphere centered at the origin of its own object space.
// An object transform places it in the world. The zero Sphere has
// identity 0 and the identity transform.
type Sphere struct {
	id        ObjectID
	transform transform.Transform
	inverse   mathpkg.Matrix // world space -> object space
}

// NewSphere creates a sphere with the given identity and the identity transform
func NewSphere(id ObjectID) Sphere {
	return Sphere{
		id:        id,
		transform: transform.Identity(),
		inverse:   mathpkg.Identity(4),
	}
}

// ID returns the sphere's identity
func (s Sphere) ID() ObjectID {
	return s.id
}

// Transform returns the object-to-world transform
func (s Sphere) Transform() transform.Transform {
	return s.transform
}

// WithTransform returns a copy of the sphere placed by t.
// It fails with ErrSingularTransform when t cannot be inverted.
func (s Sphere) WithTransform(t transform.Transform) (Sphere, error) {
	inv, ok := t.Matrix().Inverse()
	if !ok {
		return s, ErrSingularTransform
	}
	s.transform = t
	s.inverse = inv
	return s, nil
}

// Intersect solves the ray-sphere quadratic in object space.
// Both roots are reported in ascending order, including tangent hits and
// hits behind the ray origin.
func (s Sphere) Intersect(ray mathpkg.Ray) Interaction {
	inverse := s.inverse
	if inverse.Order() == 0 {
		inverse = mathpkg.Identity(4)
	}
	local := ray.Transform(inverse)

	// Vector from the sphere center to the ray origin
	ro := local.Origin.Subtract(mathpkg.Origin())

	// Quadratic equation coefficients: at² + bt + c = 0
	a := local.Direction.Dot(local.Direction)
	b := 2 * local.Direction.Dot(ro)
	c := ro.Dot(ro) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return Miss()
	}

	sqrtD := math.Sqrt(discriminant)
	return Collision(
		Intersection{T: (-b - sqrtD) / (2 * a), Object: s.id},
		Intersection{T: (-b + sqrtD) / (2 * a), Object: s.id},
	)
}
