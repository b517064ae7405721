package fx

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/iaaaanb/Keyboard/dsp/core"
)

const defaultDecayRate = 2.0

// DecayOption mutates decay construction parameters.
type DecayOption func(*decayConfig) error

type decayConfig struct {
	rate float64
}

// WithDecayRate sets the exponential decay rate relative to the note
// length: sample i of an N-sample buffer is scaled by exp(-rate*i/N).
func WithDecayRate(rate float64) DecayOption {
	return func(cfg *decayConfig) error {
		if rate <= 0 || !core.IsFinite(rate) {
			return fmt.Errorf("decay rate must be > 0 and finite: %f", rate)
		}
		cfg.rate = rate
		return nil
	}
}

// Decay applies an exponential amplitude decay over the whole note,
// the plucked-string shape used by the guitar and bell presets. The
// rate is relative to the buffer length, so the same Decay value suits
// notes of any duration.
type Decay struct {
	rate float64
}

// NewDecay creates an exponential decay with practical defaults and
// optional overrides.
func NewDecay(opts ...DecayOption) (*Decay, error) {
	cfg := decayConfig{rate: defaultDecayRate}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Decay{rate: cfg.rate}, nil
}

// Apply scales buf in place by exp(-rate*i/N).
func (d *Decay) Apply(buf []float64) error {
	n := len(buf)
	if n == 0 {
		return nil
	}

	curve := scratchPool.Get(n)
	defer scratchPool.Put(curve)
	dst := curve.Samples()

	k := -d.rate / float64(n)
	for i := range dst {
		dst[i] = math.Exp(k * float64(i))
	}

	vecmath.MulBlockInPlace(buf, dst)
	return nil
}

// Rate returns the decay rate.
func (d *Decay) Rate() float64 { return d.rate }
