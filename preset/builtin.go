package preset

import (
	"github.com/iaaaanb/Keyboard/dsp/core"
	"github.com/iaaaanb/Keyboard/dsp/fx"
	"github.com/iaaaanb/Keyboard/dsp/osc"
)

// Builtin returns the library of the nine built-in instruments at the
// engine sample rate. Effect order within each chain is part of the
// instrument's identity.
func Builtin() *Library {
	const rate = core.DefaultSampleRate
	lib := NewLibrary()

	lib.MustRegister(mustPreset("piano", Config{
		Title:       "Electric Piano",
		Kind:        osc.KindHarmonic,
		Harmonics:   []float64{1, 0.7, 0.3, 0.1},
		Amplitude:   0.4,
		DurationSec: 1.0,
		Effects: []fx.Effect{
			mustTremolo(rate, 4, 0.15),
			mustEnvelope(rate, 0.01, 0.1, 0.7, 0.3),
		},
	}))

	lib.MustRegister(mustPreset("organ", Config{
		Title:       "Church Organ",
		Kind:        osc.KindHarmonic,
		Harmonics:   []float64{1, 0.8, 0.6, 0.4, 0.3, 0.2},
		Amplitude:   0.3,
		DurationSec: 2.0,
		Effects: []fx.Effect{
			mustReverb(rate, 0.4),
			mustEnvelope(rate, 0.2, 0.1, 0.8, 0.5),
		},
	}))

	lib.MustRegister(mustPreset("guitar", Config{
		Title:       "Acoustic Guitar",
		Kind:        osc.KindHarmonic,
		Harmonics:   []float64{1, 0.6, 0.3, 0.1},
		Amplitude:   0.4,
		DurationSec: 1.5,
		Effects: []fx.Effect{
			mustDecay(2),
			mustReverb(rate, 0.2),
		},
	}))

	lib.MustRegister(mustPreset("synth", Config{
		Title:       "Synthesizer",
		Kind:        osc.KindSawtooth,
		Amplitude:   0.3,
		DurationSec: 1.0,
		Effects: []fx.Effect{
			mustVibrato(rate, 5, 0.02),
			mustEnvelope(rate, 0.05, 0.1, 0.6, 0.3),
			mustReverb(rate, 0.3),
		},
	}))

	lib.MustRegister(mustPreset("bell", Config{
		Title: "Bell",
		Partials: []osc.Partial{
			{Ratio: 1, Weight: 1},
			{Ratio: 2.1, Weight: 0.6},
			{Ratio: 3.2, Weight: 0.4},
		},
		Amplitude:   0.4,
		DurationSec: 3.0,
		Effects: []fx.Effect{
			mustDecay(0.8),
			mustReverb(rate, 0.5),
		},
	}))

	lib.MustRegister(mustPreset("retro", Config{
		Title:       "8-bit Retro",
		Kind:        osc.KindSquare,
		Amplitude:   0.3,
		DurationSec: 0.5,
		Effects: []fx.Effect{
			mustEnvelope(rate, 0.01, 0.05, 0.6, 0.1),
		},
	}))

	lib.MustRegister(mustPreset("pad", Config{
		Title:       "Ambient Pad",
		Kind:        osc.KindHarmonic,
		Harmonics:   []float64{1, 0.6, 0.8, 0.4, 0.5},
		Amplitude:   0.2,
		DurationSec: 3.0,
		Effects: []fx.Effect{
			mustVibrato(rate, 3, 0.015),
			mustReverb(rate, 0.6),
			mustEnvelope(rate, 0.8, 0.2, 0.7, 1.0),
		},
	}))

	lib.MustRegister(mustPreset("bass", Config{
		Title:       "Bass",
		Kind:        osc.KindSawtooth,
		Amplitude:   0.5,
		DurationSec: 0.8,
		Effects: []fx.Effect{
			mustEnvelope(rate, 0.02, 0.1, 0.5, 0.2),
			mustDistortion(1.5),
		},
	}))

	lib.MustRegister(mustPreset("sine", Config{
		Title:       "Pure Sine",
		Kind:        osc.KindSine,
		Amplitude:   0.3,
		DurationSec: 1.0,
		Effects: []fx.Effect{
			mustEnvelope(rate, 0.05, 0.05, 0.8, 0.1),
		},
	}))

	return lib
}

func mustPreset(name string, cfg Config) *Preset {
	p, err := New(name, cfg)
	if err != nil {
		panic("preset builtin: " + err.Error())
	}
	return p
}

func mustEnvelope(rate, attack, decay, sustain, release float64) fx.Effect {
	e, err := fx.NewEnvelope(rate,
		fx.WithAttack(attack),
		fx.WithDecay(decay),
		fx.WithSustain(sustain),
		fx.WithRelease(release),
	)
	if err != nil {
		panic("preset builtin: " + err.Error())
	}
	return e
}

func mustReverb(rate, amount float64) fx.Effect {
	r, err := fx.NewReverb(rate, fx.WithReverbAmount(amount))
	if err != nil {
		panic("preset builtin: " + err.Error())
	}
	return r
}

func mustVibrato(rate, lfoHz, depth float64) fx.Effect {
	v, err := fx.NewVibrato(rate,
		fx.WithVibratoRateHz(lfoHz),
		fx.WithVibratoDepth(depth),
	)
	if err != nil {
		panic("preset builtin: " + err.Error())
	}
	return v
}

func mustTremolo(rate, lfoHz, depth float64) fx.Effect {
	t, err := fx.NewTremolo(rate,
		fx.WithTremoloRateHz(lfoHz),
		fx.WithTremoloDepth(depth),
	)
	if err != nil {
		panic("preset builtin: " + err.Error())
	}
	return t
}

func mustDistortion(drive float64) fx.Effect {
	d, err := fx.NewDistortion(fx.WithDrive(drive))
	if err != nil {
		panic("preset builtin: " + err.Error())
	}
	return d
}

func mustDecay(rate float64) fx.Effect {
	d, err := fx.NewDecay(fx.WithDecayRate(rate))
	if err != nil {
		panic("preset builtin: " + err.Error())
	}
	return d
}
