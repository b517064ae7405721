package fx

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/iaaaanb/Keyboard/dsp/core"
)

const (
	defaultEnvelopeAttackSec  = 0.1
	defaultEnvelopeDecaySec   = 0.1
	defaultEnvelopeSustain    = 0.7
	defaultEnvelopeReleaseSec = 0.2
)

// EnvelopeOption mutates envelope construction parameters.
type EnvelopeOption func(*envelopeConfig) error

type envelopeConfig struct {
	attackSec  float64
	decaySec   float64
	sustain    float64
	releaseSec float64
}

func defaultEnvelopeConfig() envelopeConfig {
	return envelopeConfig{
		attackSec:  defaultEnvelopeAttackSec,
		decaySec:   defaultEnvelopeDecaySec,
		sustain:    defaultEnvelopeSustain,
		releaseSec: defaultEnvelopeReleaseSec,
	}
}

// WithAttack sets the attack ramp duration in seconds.
func WithAttack(attackSec float64) EnvelopeOption {
	return func(cfg *envelopeConfig) error {
		if attackSec < 0 || !core.IsFinite(attackSec) {
			return fmt.Errorf("envelope attack must be >= 0 and finite: %f", attackSec)
		}
		cfg.attackSec = attackSec
		return nil
	}
}

// WithDecay sets the decay ramp duration in seconds.
func WithDecay(decaySec float64) EnvelopeOption {
	return func(cfg *envelopeConfig) error {
		if decaySec < 0 || !core.IsFinite(decaySec) {
			return fmt.Errorf("envelope decay must be >= 0 and finite: %f", decaySec)
		}
		cfg.decaySec = decaySec
		return nil
	}
}

// WithSustain sets the sustain level as a fraction of peak in [0, 1].
func WithSustain(sustain float64) EnvelopeOption {
	return func(cfg *envelopeConfig) error {
		if sustain < 0 || sustain > 1 || !core.IsFinite(sustain) {
			return fmt.Errorf("envelope sustain must be in [0, 1]: %f", sustain)
		}
		cfg.sustain = sustain
		return nil
	}
}

// WithRelease sets the release ramp duration in seconds.
func WithRelease(releaseSec float64) EnvelopeOption {
	return func(cfg *envelopeConfig) error {
		if releaseSec < 0 || !core.IsFinite(releaseSec) {
			return fmt.Errorf("envelope release must be >= 0 and finite: %f", releaseSec)
		}
		cfg.releaseSec = releaseSec
		return nil
	}
}

// Envelope shapes a buffer with a linear ADSR curve: ramp 0..1 over the
// attack, 1..sustain over the decay, hold at exactly sustain, then ramp
// sustain..0 over the final release samples.
//
// When attack+decay+release exceeds the buffer, the three segment sample
// counts are scaled proportionally to fit and the sustain segment
// becomes the (non-negative) remainder. This is a deliberate
// clarification of the otherwise undefined over-length case.
type Envelope struct {
	sampleRate float64
	attackSec  float64
	decaySec   float64
	sustain    float64
	releaseSec float64
}

// NewEnvelope creates an ADSR envelope with practical defaults and
// optional overrides.
func NewEnvelope(sampleRate float64, opts ...EnvelopeOption) (*Envelope, error) {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return nil, fmt.Errorf("envelope sample rate must be > 0 and finite: %f", sampleRate)
	}

	cfg := defaultEnvelopeConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Envelope{
		sampleRate: sampleRate,
		attackSec:  cfg.attackSec,
		decaySec:   cfg.decaySec,
		sustain:    cfg.sustain,
		releaseSec: cfg.releaseSec,
	}, nil
}

// Apply multiplies buf elementwise by the envelope curve.
func (e *Envelope) Apply(buf []float64) error {
	n := len(buf)
	if n == 0 {
		return nil
	}

	a := int(e.attackSec * e.sampleRate)
	d := int(e.decaySec * e.sampleRate)
	r := int(e.releaseSec * e.sampleRate)

	if total := a + d + r; total > n {
		scale := float64(n) / float64(total)
		a = int(float64(a) * scale)
		d = int(float64(d) * scale)
		r = int(float64(r) * scale)
	}
	s := n - a - d - r

	env := scratchPool.Get(n)
	defer scratchPool.Put(env)
	curve := env.Samples()

	ramp(curve[:a], 0, 1)
	ramp(curve[a:a+d], 1, e.sustain)
	for i := a + d; i < a+d+s; i++ {
		curve[i] = e.sustain
	}
	ramp(curve[n-r:], e.sustain, 0)

	vecmath.MulBlockInPlace(buf, curve)
	return nil
}

// Attack returns the attack duration in seconds.
func (e *Envelope) Attack() float64 { return e.attackSec }

// Decay returns the decay duration in seconds.
func (e *Envelope) Decay() float64 { return e.decaySec }

// Sustain returns the sustain level fraction.
func (e *Envelope) Sustain() float64 { return e.sustain }

// Release returns the release duration in seconds.
func (e *Envelope) Release() float64 { return e.releaseSec }

// ramp fills dst with a linear ramp from from to to, endpoint included.
func ramp(dst []float64, from, to float64) {
	n := len(dst)
	if n == 0 {
		return
	}
	if n == 1 {
		dst[0] = from
		return
	}
	step := (to - from) / float64(n-1)
	for i := range dst {
		dst[i] = from + step*float64(i)
	}
}
