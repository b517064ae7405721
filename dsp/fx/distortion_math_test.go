//go:build !fastmath

package fx

// tanhTolerance is the permitted deviation from math.Tanh in the
// transfer-function test. The default build computes tanh exactly.
const tanhTolerance = 1e-12
