package math

// Ray represents a ray with an origin and direction
type Ray struct {
	Origin    Point
	Direction Vector
}

// NewRay creates a new ray
func NewRay(origin Point, direction Vector) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Position returns the point at parameter t along the ray. t is unbounded.
func (r Ray) Position(t float64) Point {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Transform maps the ray through a 4x4 matrix: the origin as a point (w=1)
// and the direction as a vector (w=0). The direction is not renormalized.
func (r Ray) Transform(m Matrix) Ray {
	return Ray{
		Origin:    m.MultiplyPoint(r.Origin),
		Direction: m.MultiplyVector(r.Direction),
	}
}
