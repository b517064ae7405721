//go:build fastmath

package fx

import (
	"github.com/cwbudde/algo-approx"
)

// mathTanh computes tanh(x) using a fast exponential approximation.
// Uses the identity: tanh(x) = 1 - 2/(e^(2x) + 1)
func mathTanh(x float64) float64 {
	// Large |x| saturates; the identity would overflow FastExp's range.
	if x > 20 {
		return 1
	}
	if x < -20 {
		return -1
	}
	return 1 - 2/(approx.FastExp(2*x)+1)
}
