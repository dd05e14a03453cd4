package math

import "fmt"

// column is a 4x1 homogeneous coordinate
type column [MaxOrder]float64

func pointColumn(p Point) column {
	return column{p.X, p.Y, p.Z, 1}
}

func vectorColumn(v Vector) column {
	return column{v.X, v.Y, v.Z, 0}
}

// multiplyColumn computes m * col. The w component of the result is left to the caller to discard.
func (m Matrix) multiplyColumn(col column) column {
	if m.order != MaxOrder {
		panic(fmt.Sprintf("matrix: homogeneous multiplication needs order %d, got %d", MaxOrder, m.order))
	}
	var result column
	for r := 0; r < MaxOrder; r++ {
		result[r] = m.m[r][0]*col[0] + m.m[r][1]*col[1] + m.m[r][2]*col[2] + m.m[r][3]*col[3]
	}
	return result
}
