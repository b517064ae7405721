package fx

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/iaaaanb/Keyboard/dsp/core"
)

const (
	reverbTapCount   = 3
	reverbTapFalloff = 0.6

	defaultReverbAmount  = 0.3
	defaultReverbDelayMs = 100.0
)

// ReverbOption mutates reverb construction parameters.
type ReverbOption func(*reverbConfig) error

type reverbConfig struct {
	amount  float64
	delayMs float64
}

func defaultReverbConfig() reverbConfig {
	return reverbConfig{
		amount:  defaultReverbAmount,
		delayMs: defaultReverbDelayMs,
	}
}

// WithReverbAmount sets the level of the first tap in [0, 1].
func WithReverbAmount(amount float64) ReverbOption {
	return func(cfg *reverbConfig) error {
		if amount < 0 || amount > 1 || !core.IsFinite(amount) {
			return fmt.Errorf("reverb amount must be in [0, 1]: %f", amount)
		}
		cfg.amount = amount
		return nil
	}
}

// WithReverbDelayMs sets the base tap delay in milliseconds.
func WithReverbDelayMs(delayMs float64) ReverbOption {
	return func(cfg *reverbConfig) error {
		if delayMs <= 0 || !core.IsFinite(delayMs) {
			return fmt.Errorf("reverb delay must be > 0 and finite: %f", delayMs)
		}
		cfg.delayMs = delayMs
		return nil
	}
}

// Reverb adds three delayed, attenuated copies of the input to itself.
// Tap i (i = 0, 1, 2) is delayed by (i+1)*delay samples and scaled by
// amount*0.6^i. Taps that would land past the end of the buffer
// contribute nothing; the buffer length never changes.
type Reverb struct {
	sampleRate float64
	amount     float64
	delayMs    float64
}

// NewReverb creates a tap-delay reverb with practical defaults and
// optional overrides.
func NewReverb(sampleRate float64, opts ...ReverbOption) (*Reverb, error) {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return nil, fmt.Errorf("reverb sample rate must be > 0 and finite: %f", sampleRate)
	}

	cfg := defaultReverbConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Reverb{
		sampleRate: sampleRate,
		amount:     cfg.amount,
		delayMs:    cfg.delayMs,
	}, nil
}

// Apply adds the reverb taps to buf in place.
func (r *Reverb) Apply(buf []float64) error {
	n := len(buf)
	if n == 0 {
		return nil
	}

	delaySamples := int(r.sampleRate * r.delayMs / 1000)
	if delaySamples <= 0 {
		return nil
	}

	// Taps read the dry input, not earlier taps' output.
	dry := scratchPool.Get(n)
	defer scratchPool.Put(dry)
	copy(dry.Samples(), buf)

	tap := scratchPool.Get(n)
	defer scratchPool.Put(tap)

	amp := r.amount
	for i := 0; i < reverbTapCount; i++ {
		delay := delaySamples * (i + 1)
		if delay < n {
			scaled := tap.Samples()[:n-delay]
			vecmath.ScaleBlock(scaled, dry.Samples()[:n-delay], amp)
			vecmath.AddBlockInPlace(buf[delay:], scaled)
		}
		amp *= reverbTapFalloff
	}
	return nil
}

// Amount returns the first tap's level.
func (r *Reverb) Amount() float64 { return r.amount }

// DelayMs returns the base tap delay in milliseconds.
func (r *Reverb) DelayMs() float64 { return r.delayMs }
