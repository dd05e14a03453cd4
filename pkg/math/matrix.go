package math

import (
	"fmt"
	"strings"

	"github.com/df07/go-raytracer-kernel/pkg/core"
)

// MaxOrder is the largest supported matrix order
const MaxOrder = 4

// Matrix is a square matrix of order 2, 3 or 4.
//
// Every order shares the same fixed backing array, so a Matrix is a plain
// value: assigning or passing it copies the elements and no two matrices
// ever alias each other. Cells outside the active order are always zero.
type Matrix struct {
	order int
	m     [MaxOrder][MaxOrder]float64
}

// NewMatrix builds a matrix from its rows. The number of rows sets the order
// and every row must have exactly that many elements.
func NewMatrix(rows ...[]float64) Matrix {
	n := len(rows)
	checkOrder(n)
	result := Matrix{order: n}
	for r, row := range rows {
		if len(row) != n {
			panic(fmt.Sprintf("matrix: row %d has %d elements, expected %d", r, len(row), n))
		}
		copy(result.m[r][:n], row)
	}
	return result
}

// Identity returns the identity matrix of the given order
func Identity(order int) Matrix {
	checkOrder(order)
	result := Matrix{order: order}
	for i := 0; i < order; i++ {
		result.m[i][i] = 1
	}
	return result
}

func checkOrder(order int) {
	if order < 2 || order > MaxOrder {
		panic(fmt.Sprintf("matrix: unsupported order %d", order))
	}
}

// Order returns the number of rows (and columns) of the matrix
func (m Matrix) Order() int {
	return m.order
}

// At returns the element at row r, column c
func (m Matrix) At(r, c int) float64 {
	m.checkIndex(r, c)
	return m.m[r][c]
}

// With returns a copy of the matrix with the element at (r, c) replaced by v
func (m Matrix) With(r, c int, v float64) Matrix {
	m.checkIndex(r, c)
	m.m[r][c] = v
	return m
}

func (m Matrix) checkIndex(r, c int) {
	if r < 0 || r >= m.order || c < 0 || c >= m.order {
		panic(fmt.Sprintf("matrix: index (%d, %d) out of range for order %d", r, c, m.order))
	}
}

// Equal reports whether two matrices have the same order and agree on every
// element to five decimal places
func (m Matrix) Equal(other Matrix) bool {
	if m.order != other.order {
		return false
	}
	for r := 0; r < m.order; r++ {
		for c := 0; c < m.order; c++ {
			if !core.ApproxEqual(m.m[r][c], other.m[r][c]) {
				return false
			}
		}
	}
	return true
}

// Transpose returns the matrix with rows and columns swapped
func (m Matrix) Transpose() Matrix {
	result := Matrix{order: m.order}
	for r := 0; r < m.order; r++ {
		for c := 0; c < m.order; c++ {
			result.m[c][r] = m.m[r][c]
		}
	}
	return result
}

// Submatrix removes row r and column c. The remaining rows and columns are
// reindexed contiguously, so a matrix of order N yields one of order N-1.
// An order 2 matrix yields the single remaining element as an order 1 matrix,
// which only takes part in cofactor expansion.
func (m Matrix) Submatrix(r, c int) Matrix {
	m.checkIndex(r, c)
	result := Matrix{order: m.order - 1}
	nrow := 0
	for row := 0; row < m.order; row++ {
		if row == r {
			continue
		}
		ncol := 0
		for col := 0; col < m.order; col++ {
			if col == c {
				continue
			}
			result.m[nrow][ncol] = m.m[row][col]
			ncol++
		}
		nrow++
	}
	return result
}

// Minor returns the determinant of Submatrix(r, c)
func (m Matrix) Minor(r, c int) float64 {
	return m.Submatrix(r, c).Determinant()
}

// Cofactor returns the minor at (r, c), negated when r+c is odd
func (m Matrix) Cofactor(r, c int) float64 {
	minor := m.Minor(r, c)
	if (r+c)%2 == 0 {
		return minor
	}
	return -minor
}

// Determinant computes the determinant by cofactor expansion along row 0
func (m Matrix) Determinant() float64 {
	switch m.order {
	case 1:
		return m.m[0][0]
	case 2:
		return m.m[0][0]*m.m[1][1] - m.m[0][1]*m.m[1][0]
	}

	det := 0.0
	for c := 0; c < m.order; c++ {
		det += m.Cofactor(0, c) * m.m[0][c]
	}
	return det
}

// Invertible reports whether the determinant is non-zero
func (m Matrix) Invertible() bool {
	return m.Determinant() != 0
}

// Inverse returns the inverse matrix using the adjugate method.
// ok is false when the matrix is singular (determinant exactly 0).
func (m Matrix) Inverse() (inv Matrix, ok bool) {
	det := m.Determinant()
	if det == 0 {
		return Matrix{}, false
	}

	result := Matrix{order: m.order}
	for r := 0; r < m.order; r++ {
		for c := 0; c < m.order; c++ {
			// Writing to [c][r] transposes the cofactor matrix into the adjugate.
			result.m[c][r] = m.Cofactor(r, c) / det
		}
	}
	return result, true
}

// Multiply returns the matrix product m * other. Both operands must share an order.
func (m Matrix) Multiply(other Matrix) Matrix {
	if m.order != other.order {
		panic(fmt.Sprintf("matrix: cannot multiply order %d by order %d", m.order, other.order))
	}
	result := Matrix{order: m.order}
	for r := 0; r < m.order; r++ {
		for c := 0; c < m.order; c++ {
			sum := 0.0
			for k := 0; k < m.order; k++ {
				sum += m.m[r][k] * other.m[k][c]
			}
			result.m[r][c] = sum
		}
	}
	return result
}

// MultiplyPoint applies an order 4 matrix to a point (w=1)
func (m Matrix) MultiplyPoint(p Point) Point {
	out := m.multiplyColumn(pointColumn(p))
	return Point{out[0], out[1], out[2]}
}

// MultiplyVector applies an order 4 matrix to a vector (w=0)
func (m Matrix) MultiplyVector(v Vector) Vector {
	out := m.multiplyColumn(vectorColumn(v))
	return Vector{out[0], out[1], out[2]}
}

func (m Matrix) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for r := 0; r < m.order; r++ {
		if r > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString("[")
		for c := 0; c < m.order; c++ {
			if c > 0 {
				sb.WriteString(" ")
			}
			fmt.Fprintf(&sb, "%g", m.m[r][c])
		}
		sb.WriteString("]")
	}
	sb.WriteString("]")
	return sb.String()
}
