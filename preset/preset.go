// Package preset defines named instrument presets: one oscillator
// configuration composed with an ordered chain of effects. Presets are
// built once at startup and never mutated, so a single preset value can
// render any number of concurrent voices.
package preset

import (
	"fmt"

	"github.com/iaaaanb/Keyboard/dsp/core"
	"github.com/iaaaanb/Keyboard/dsp/fx"
	"github.com/iaaaanb/Keyboard/dsp/osc"
)

// Config describes a preset before construction. Either Kind (with
// optional Harmonics for KindHarmonic) or Partials must be set; Partials
// takes precedence and renders inharmonic components.
type Config struct {
	Title       string
	Kind        osc.Kind
	Harmonics   []float64
	Partials    []osc.Partial
	Amplitude   float64
	DurationSec float64
	Effects     []fx.Effect
}

// Preset is an immutable named instrument definition.
type Preset struct {
	name        string
	title       string
	kind        osc.Kind
	harmonics   []float64
	partials    []osc.Partial
	amplitude   float64
	durationSec float64
	effects     []fx.Effect
}

// New validates cfg and builds an immutable preset.
func New(name string, cfg Config) (*Preset, error) {
	if name == "" {
		return nil, fmt.Errorf("preset name must not be empty")
	}
	if !core.IsFinite(cfg.Amplitude) {
		return nil, fmt.Errorf("preset %q amplitude must be finite: %f", name, cfg.Amplitude)
	}
	if cfg.DurationSec <= 0 || !core.IsFinite(cfg.DurationSec) {
		return nil, fmt.Errorf("preset %q default duration must be > 0 and finite: %f", name, cfg.DurationSec)
	}

	p := &Preset{
		name:        name,
		title:       cfg.Title,
		kind:        cfg.Kind,
		harmonics:   append([]float64(nil), cfg.Harmonics...),
		partials:    append([]osc.Partial(nil), cfg.Partials...),
		amplitude:   cfg.Amplitude,
		durationSec: cfg.DurationSec,
		effects:     append([]fx.Effect(nil), cfg.Effects...),
	}
	if p.title == "" {
		p.title = name
	}
	return p, nil
}

// Render produces one voice at the preset's default amplitude. A
// non-positive duration selects the preset's default duration.
func (p *Preset) Render(gen *osc.Generator, freqHz, durationSec float64) ([]float64, error) {
	return p.RenderWithAmplitude(gen, freqHz, p.amplitude, durationSec)
}

// RenderWithAmplitude produces one voice at an explicit amplitude,
// running the oscillator and then the effect chain in its fixed order.
func (p *Preset) RenderWithAmplitude(gen *osc.Generator, freqHz, amplitude, durationSec float64) ([]float64, error) {
	if durationSec <= 0 {
		durationSec = p.durationSec
	}

	var (
		buf []float64
		err error
	)
	if len(p.partials) > 0 {
		buf, err = gen.Partials(freqHz, amplitude, durationSec, p.partials)
	} else {
		buf, err = gen.Generate(p.kind, freqHz, amplitude, durationSec, p.harmonics)
	}
	if err != nil {
		return nil, fmt.Errorf("preset %q oscillator: %w", p.name, err)
	}

	if err := fx.Chain(buf, p.effects...); err != nil {
		return nil, fmt.Errorf("preset %q effects: %w", p.name, err)
	}
	return buf, nil
}

// Name returns the registry key.
func (p *Preset) Name() string { return p.name }

// Title returns the human-readable instrument name.
func (p *Preset) Title() string { return p.title }

// Kind returns the oscillator waveform kind. Presets built from
// inharmonic partials report KindSine; check Partials first.
func (p *Preset) Kind() osc.Kind { return p.kind }

// Harmonics returns a copy of the harmonic weight list.
func (p *Preset) Harmonics() []float64 {
	return append([]float64(nil), p.harmonics...)
}

// Partials returns a copy of the inharmonic partial list.
func (p *Preset) Partials() []osc.Partial {
	return append([]osc.Partial(nil), p.partials...)
}

// DefaultAmplitude returns the amplitude used by Render.
func (p *Preset) DefaultAmplitude() float64 { return p.amplitude }

// DefaultDuration returns the duration in seconds used when a caller
// passes a non-positive duration.
func (p *Preset) DefaultDuration() float64 { return p.durationSec }

// EffectCount returns the length of the effect chain.
func (p *Preset) EffectCount() int { return len(p.effects) }
