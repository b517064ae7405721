//go:build !fastmath

package fx

import "math"

// mathTanh computes tanh(x) using the standard library.
func mathTanh(x float64) float64 {
	return math.Tanh(x)
}
