package math

import "math"

// Translation returns the order 4 matrix that displaces points by (x, y, z)
func Translation(x, y, z float64) Matrix {
	return Identity(4).With(0, 3, x).With(1, 3, y).With(2, 3, z)
}

// Scaling returns the order 4 matrix that scales each axis independently
func Scaling(x, y, z float64) Matrix {
	return Identity(4).With(0, 0, x).With(1, 1, y).With(2, 2, z)
}

// RotationX returns the right-handed rotation about the x axis by r radians
func RotationX(r float64) Matrix {
	cos, sin := math.Cos(r), math.Sin(r)
	return NewMatrix(
		[]float64{1, 0, 0, 0},
		[]float64{0, cos, -sin, 0},
		[]float64{0, sin, cos, 0},
		[]float64{0, 0, 0, 1},
	)
}

// RotationY returns the right-handed rotation about the y axis by r radians
func RotationY(r float64) Matrix {
	cos, sin := math.Cos(r), math.Sin(r)
	return NewMatrix(
		[]float64{cos, 0, sin, 0},
		[]float64{0, 1, 0, 0},
		[]float64{-sin, 0, cos, 0},
		[]float64{0, 0, 0, 1},
	)
}

// RotationZ returns the right-handed rotation about the z axis by r radians
func RotationZ(r float64) Matrix {
	cos, sin := math.Cos(r), math.Sin(r)
	return NewMatrix(
		[]float64{cos, -sin, 0, 0},
		[]float64{sin, cos, 0, 0},
		[]float64{0, 0, 1, 0},
		[]float64{0, 0, 0, 1},
	)
}

// Shear returns the order 4 shearing matrix. Each coefficient moves the first
// named axis in proportion to the second, e.g. xy moves x in proportion to y.
func Shear(xy, xz, yx, yz, zx, zy float64) Matrix {
	return NewMatrix(
		[]float64{1, xy, xz, 0},
		[]float64{yx, 1, yz, 0},
		[]float64{zx, zy, 1, 0},
		[]float64{0, 0, 0, 1},
	)
}
