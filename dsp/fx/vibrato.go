package fx

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/iaaaanb/Keyboard/dsp/core"
)

const (
	defaultVibratoRateHz = 5.0
	defaultVibratoDepth  = 0.02
)

// VibratoOption mutates vibrato construction parameters.
type VibratoOption func(*vibratoConfig) error

type vibratoConfig struct {
	rateHz float64
	depth  float64
}

func defaultVibratoConfig() vibratoConfig {
	return vibratoConfig{
		rateHz: defaultVibratoRateHz,
		depth:  defaultVibratoDepth,
	}
}

// WithVibratoRateHz sets modulation speed in Hz.
func WithVibratoRateHz(rateHz float64) VibratoOption {
	return func(cfg *vibratoConfig) error {
		if rateHz <= 0 || !core.IsFinite(rateHz) {
			return fmt.Errorf("vibrato rate must be > 0 and finite: %f", rateHz)
		}
		cfg.rateHz = rateHz
		return nil
	}
}

// WithVibratoDepth sets modulation depth in [0, 1].
func WithVibratoDepth(depth float64) VibratoOption {
	return func(cfg *vibratoConfig) error {
		if depth < 0 || depth > 1 || !core.IsFinite(depth) {
			return fmt.Errorf("vibrato depth must be in [0, 1]: %f", depth)
		}
		cfg.depth = depth
		return nil
	}
}

// Vibrato multiplies the buffer elementwise by
// 1 + depth*sin(2*pi*rate*t). This is an amplitude-domain approximation
// of pitch wobble rather than true frequency modulation; the
// multiplicative form is contractual and must not be replaced by
// resampling.
type Vibrato struct {
	sampleRate float64
	rateHz     float64
	depth      float64
}

// NewVibrato creates a vibrato with practical defaults and optional overrides.
func NewVibrato(sampleRate float64, opts ...VibratoOption) (*Vibrato, error) {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return nil, fmt.Errorf("vibrato sample rate must be > 0 and finite: %f", sampleRate)
	}

	cfg := defaultVibratoConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Vibrato{
		sampleRate: sampleRate,
		rateHz:     cfg.rateHz,
		depth:      cfg.depth,
	}, nil
}

// Apply modulates buf in place.
func (v *Vibrato) Apply(buf []float64) error {
	if len(buf) == 0 {
		return nil
	}

	lfo := scratchPool.Get(len(buf))
	defer scratchPool.Put(lfo)
	fillLFO(lfo.Samples(), v.sampleRate, v.rateHz, v.depth)

	vecmath.MulBlockInPlace(buf, lfo.Samples())
	return nil
}

// RateHz returns LFO speed in Hz.
func (v *Vibrato) RateHz() float64 { return v.rateHz }

// Depth returns modulation depth in [0, 1].
func (v *Vibrato) Depth() float64 { return v.depth }

// fillLFO writes 1 + depth*sin(2*pi*rate*t_i) into dst. Tremolo passes
// a negated depth to obtain its 1 - depth*sin form.
func fillLFO(dst []float64, sampleRate, rateHz, depth float64) {
	step := 2 * math.Pi * rateHz / sampleRate
	for i := range dst {
		dst[i] = 1 + depth*math.Sin(step*float64(i))
	}
}
