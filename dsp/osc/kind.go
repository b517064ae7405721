package osc

import "fmt"

// Kind selects the waveform shape produced by a Generator.
type Kind int

const (
	KindSine Kind = iota
	KindSquare
	KindSawtooth
	KindTriangle
	KindHarmonic
)

// String returns the lower-case waveform name.
func (k Kind) String() string {
	switch k {
	case KindSine:
		return "sine"
	case KindSquare:
		return "square"
	case KindSawtooth:
		return "sawtooth"
	case KindTriangle:
		return "triangle"
	case KindHarmonic:
		return "harmonic"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}
