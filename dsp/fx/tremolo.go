package fx

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/iaaaanb/Keyboard/dsp/core"
)

const (
	defaultTremoloRateHz = 6.0
	defaultTremoloDepth  = 0.3
)

// TremoloOption mutates tremolo construction parameters.
type TremoloOption func(*tremoloConfig) error

type tremoloConfig struct {
	rateHz float64
	depth  float64
}

func defaultTremoloConfig() tremoloConfig {
	return tremoloConfig{
		rateHz: defaultTremoloRateHz,
		depth:  defaultTremoloDepth,
	}
}

// WithTremoloRateHz sets modulation speed in Hz.
func WithTremoloRateHz(rateHz float64) TremoloOption {
	return func(cfg *tremoloConfig) error {
		if rateHz <= 0 || !core.IsFinite(rateHz) {
			return fmt.Errorf("tremolo rate must be > 0 and finite: %f", rateHz)
		}
		cfg.rateHz = rateHz
		return nil
	}
}

// WithTremoloDepth sets modulation depth in [0, 1].
func WithTremoloDepth(depth float64) TremoloOption {
	return func(cfg *tremoloConfig) error {
		if depth < 0 || depth > 1 || !core.IsFinite(depth) {
			return fmt.Errorf("tremolo depth must be in [0, 1]: %f", depth)
		}
		cfg.depth = depth
		return nil
	}
}

// Tremolo multiplies the buffer elementwise by 1 - depth*sin(2*pi*rate*t).
type Tremolo struct {
	sampleRate float64
	rateHz     float64
	depth      float64
}

// NewTremolo creates a tremolo with practical defaults and optional overrides.
func NewTremolo(sampleRate float64, opts ...TremoloOption) (*Tremolo, error) {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return nil, fmt.Errorf("tremolo sample rate must be > 0 and finite: %f", sampleRate)
	}

	cfg := defaultTremoloConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Tremolo{
		sampleRate: sampleRate,
		rateHz:     cfg.rateHz,
		depth:      cfg.depth,
	}, nil
}

// Apply modulates buf in place.
func (t *Tremolo) Apply(buf []float64) error {
	if len(buf) == 0 {
		return nil
	}

	lfo := scratchPool.Get(len(buf))
	defer scratchPool.Put(lfo)
	fillLFO(lfo.Samples(), t.sampleRate, t.rateHz, -t.depth)

	vecmath.MulBlockInPlace(buf, lfo.Samples())
	return nil
}

// RateHz returns LFO speed in Hz.
func (t *Tremolo) RateHz() float64 { return t.rateHz }

// Depth returns modulation depth in [0, 1].
func (t *Tremolo) Depth() float64 { return t.depth }
