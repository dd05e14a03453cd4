package core

import "math"

// Precision is the number of decimal places kept by approximate comparisons.
const Precision = 5

// scale is 10^Precision
const scale = 100000.0

// Quantize rounds v to Precision decimal places and returns the scaled integer value.
func Quantize(v float64) float64 {
	return math.Round(v * scale)
}

// ApproxEqual reports whether a and b agree to Precision decimal places.
// Both values are scaled by 10^5 and rounded to the nearest integer before comparing.
func ApproxEqual(a, b float64) bool {
	return Quantize(a) == Quantize(b)
}
