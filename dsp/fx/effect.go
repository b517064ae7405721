package fx

import (
	"fmt"

	"github.com/iaaaanb/Keyboard/dsp/buffer"
)

// Effect is a deterministic, length-preserving transform applied to a
// rendered note buffer in place.
type Effect interface {
	Apply(buf []float64) error
}

// Chain applies effects to buf in order. The order is part of an
// instrument's identity and must not be reordered by callers.
func Chain(buf []float64, effects ...Effect) error {
	for i, e := range effects {
		if e == nil {
			continue
		}
		if err := e.Apply(buf); err != nil {
			return fmt.Errorf("effect %d: %w", i, err)
		}
	}
	return nil
}

// scratchPool serves short-lived working buffers for effects that need
// a copy of their input, such as the reverb tap accumulation.
var scratchPool = buffer.NewPool()
