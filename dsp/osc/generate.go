// Package osc generates raw waveform buffers for the synthesis engine.
//
// Samples are taken at t_i = i/sampleRate for i = 0..N-1 with
// N = floor(sampleRate * duration); the endpoint t = duration is
// excluded so consecutive notes never double-sample the boundary.
package osc

import (
	"errors"
	"fmt"
	"math"

	"github.com/iaaaanb/Keyboard/dsp/core"
)

// ErrInvalidFrequency is returned when a waveform is requested at a
// non-positive or non-finite frequency.
var ErrInvalidFrequency = errors.New("frequency must be > 0 and finite")

// DefaultHarmonics is the harmonic weight list used when none is given.
var DefaultHarmonics = []float64{1, 0.5, 0.25, 0.125}

// Partial is one sinusoidal component at Ratio times the fundamental,
// scaled by Weight. Ratios need not be integer; bell-like sounds use
// inharmonic ratios such as 2.1 and 3.2.
type Partial struct {
	Ratio  float64
	Weight float64
}

// Generator creates deterministic waveform buffers from a shared configuration.
type Generator struct {
	cfg core.ProcessorConfig
}

// NewGenerator creates a configured waveform generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{
		cfg: core.ApplyProcessorOptions(opts...),
	}
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// SampleRate returns the configured sample rate in Hz.
func (g *Generator) SampleRate() float64 {
	return g.cfg.SampleRate
}

// SampleCount returns floor(sampleRate * durationSec), or 0 when the
// duration is not positive.
func (g *Generator) SampleCount(durationSec float64) int {
	if !(durationSec > 0) {
		return 0
	}
	return int(g.cfg.SampleRate * durationSec)
}

// Generate dispatches to the waveform method selected by kind. The
// weights argument applies only to KindHarmonic and may be nil to use
// DefaultHarmonics; other kinds ignore it.
func (g *Generator) Generate(kind Kind, freqHz, amplitude, durationSec float64, weights []float64) ([]float64, error) {
	switch kind {
	case KindSine:
		return g.Sine(freqHz, amplitude, durationSec)
	case KindSquare:
		return g.Square(freqHz, amplitude, durationSec)
	case KindSawtooth:
		return g.Sawtooth(freqHz, amplitude, durationSec)
	case KindTriangle:
		return g.Triangle(freqHz, amplitude, durationSec)
	case KindHarmonic:
		return g.Harmonic(freqHz, amplitude, durationSec, weights)
	default:
		return nil, fmt.Errorf("waveform kind is invalid: %d", kind)
	}
}

// Sine generates amplitude * sin(2*pi*f*t).
func (g *Generator) Sine(freqHz, amplitude, durationSec float64) ([]float64, error) {
	out, err := g.prepare(freqHz, amplitude, durationSec)
	if err != nil || len(out) == 0 {
		return out, err
	}
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// Square generates amplitude * sign(sin(2*pi*f*t)). Samples are drawn
// exactly from {-amplitude, 0, amplitude}.
func (g *Generator) Square(freqHz, amplitude, durationSec float64) ([]float64, error) {
	out, err := g.prepare(freqHz, amplitude, durationSec)
	if err != nil || len(out) == 0 {
		return out, err
	}
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * sign(math.Sin(step*float64(i)))
	}
	return out, nil
}

// Sawtooth generates amplitude * 2 * (f*t - floor(f*t + 0.5)), a ramp
// from -amplitude to +amplitude each period.
func (g *Generator) Sawtooth(freqHz, amplitude, durationSec float64) ([]float64, error) {
	out, err := g.prepare(freqHz, amplitude, durationSec)
	if err != nil || len(out) == 0 {
		return out, err
	}
	step := freqHz / g.cfg.SampleRate
	for i := range out {
		ft := step * float64(i)
		out[i] = amplitude * 2 * (ft - math.Floor(ft+0.5))
	}
	return out, nil
}

// Triangle folds the normalized sawtooth:
// amplitude * (2*|2*(f*t - floor(f*t + 0.5))| - 1).
func (g *Generator) Triangle(freqHz, amplitude, durationSec float64) ([]float64, error) {
	out, err := g.prepare(freqHz, amplitude, durationSec)
	if err != nil || len(out) == 0 {
		return out, err
	}
	step := freqHz / g.cfg.SampleRate
	for i := range out {
		ft := step * float64(i)
		saw := 2 * (ft - math.Floor(ft+0.5))
		out[i] = amplitude * (2*math.Abs(saw) - 1)
	}
	return out, nil
}

// Harmonic generates a weighted sum of sines at integer multiples of the
// fundamental, normalized by the weight count:
// amplitude/len(weights) * sum_k weights[k] * sin(2*pi*f*(k+1)*t).
// A nil or empty weights slice selects DefaultHarmonics.
func (g *Generator) Harmonic(freqHz, amplitude, durationSec float64, weights []float64) ([]float64, error) {
	if len(weights) == 0 {
		weights = DefaultHarmonics
	}
	out, err := g.prepare(freqHz, amplitude, durationSec)
	if err != nil || len(out) == 0 {
		return out, err
	}
	base := 2 * math.Pi * freqHz / g.cfg.SampleRate
	norm := amplitude / float64(len(weights))
	for i := range out {
		var sum float64
		for k, w := range weights {
			sum += w * math.Sin(base*float64(k+1)*float64(i))
		}
		out[i] = norm * sum
	}
	return out, nil
}

// Partials generates amplitude * sum_k weight_k * sin(2*pi*f*ratio_k*t)
// without weight-count normalization. Unlike Harmonic, component
// frequencies may be inharmonic.
func (g *Generator) Partials(freqHz, amplitude, durationSec float64, partials []Partial) ([]float64, error) {
	if len(partials) == 0 {
		return nil, fmt.Errorf("partials must not be empty")
	}
	out, err := g.prepare(freqHz, amplitude, durationSec)
	if err != nil || len(out) == 0 {
		return out, err
	}
	base := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		var sum float64
		for _, p := range partials {
			sum += p.Weight * math.Sin(base*p.Ratio*float64(i))
		}
		out[i] = amplitude * sum
	}
	return out, nil
}

// prepare validates shared parameters and allocates the output buffer.
// A non-positive duration yields an empty buffer and no error.
func (g *Generator) prepare(freqHz, amplitude, durationSec float64) ([]float64, error) {
	if freqHz <= 0 || !core.IsFinite(freqHz) {
		return nil, fmt.Errorf("%w: %f", ErrInvalidFrequency, freqHz)
	}
	if !core.IsFinite(amplitude) {
		return nil, fmt.Errorf("amplitude must be finite: %f", amplitude)
	}
	n := g.SampleCount(durationSec)
	return make([]float64, n), nil
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
