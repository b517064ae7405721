// Package synth renders instrument voices and dispatches them to an
// audio sink. A Player resolves pitch names through a tuning, renders
// each request through a preset library, and submits the result without
// blocking the caller.
package synth

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/iaaaanb/Keyboard/dsp/buffer"
	"github.com/iaaaanb/Keyboard/dsp/core"
	"github.com/iaaaanb/Keyboard/dsp/osc"
	"github.com/iaaaanb/Keyboard/preset"
)

// chordAttenuation scales each chord voice before mixing so stacked
// notes stay inside the same headroom as a single voice.
const chordAttenuation = 0.7

var (
	// ErrRenderFailure wraps oscillator or effect errors raised while
	// rendering a voice.
	ErrRenderFailure = errors.New("render failure")

	// ErrSinkFailure wraps errors returned by the audio sink.
	ErrSinkFailure = errors.New("sink failure")

	// ErrEmptyChord is returned when a chord request names no notes.
	ErrEmptyChord = errors.New("empty chord")
)

// Sink consumes rendered sample buffers. Submit may return before the
// buffer has finished sounding; WaitForIdle blocks until all submitted
// buffers have drained.
type Sink interface {
	Submit(buf []float64, sampleRate float64) error
	WaitForIdle()
}

// Tuning resolves pitch names to frequencies.
type Tuning interface {
	Frequency(name string, octave int) (float64, error)
	IsValid(name string, octave int) bool
}

// Note names one pitch to play.
type Note struct {
	Name   string
	Octave int
}

func (n Note) String() string {
	return fmt.Sprintf("%s%d", n.Name, n.Octave)
}

type playerConfig struct {
	onError func(error)
}

// PlayerOption configures a Player.
type PlayerOption func(*playerConfig) error

// WithErrorHandler installs a callback invoked with errors from
// asynchronous playback. The callback may run on any goroutine. Without
// a handler, asynchronous errors are dropped.
func WithErrorHandler(fn func(error)) PlayerOption {
	return func(cfg *playerConfig) error {
		if fn == nil {
			return errors.New("error handler must not be nil")
		}
		cfg.onError = fn
		return nil
	}
}

// Player renders preset voices and hands them to a sink. PlayNote and
// PlayChord return immediately; Wait blocks until every outstanding
// request has been rendered and drained by the sink.
type Player struct {
	gen     *osc.Generator
	library *preset.Library
	tuning  Tuning
	sink    Sink
	pool    *buffer.Pool
	onError func(error)
	wg      sync.WaitGroup
}

// NewPlayer builds a player over the given preset library, tuning, and
// sink, rendering at the engine sample rate.
func NewPlayer(library *preset.Library, tuning Tuning, sink Sink, opts ...PlayerOption) (*Player, error) {
	if library == nil {
		return nil, errors.New("preset library must not be nil")
	}
	if tuning == nil {
		return nil, errors.New("tuning must not be nil")
	}
	if sink == nil {
		return nil, errors.New("sink must not be nil")
	}

	cfg := playerConfig{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Player{
		gen:     osc.NewGenerator(core.WithSampleRate(core.DefaultSampleRate)),
		library: library,
		tuning:  tuning,
		sink:    sink,
		pool:    buffer.NewPool(),
		onError: cfg.onError,
	}, nil
}

// SampleRate returns the rate the player renders at.
func (p *Player) SampleRate() float64 { return p.gen.SampleRate() }

// RenderNote synchronously renders one voice. A non-positive duration
// selects the preset's default duration. Unknown preset keys fall back
// to the library default.
func (p *Player) RenderNote(presetKey string, note Note, durationSec float64) ([]float64, error) {
	inst := p.library.Lookup(presetKey)
	if inst == nil {
		return nil, fmt.Errorf("%w: no preset for key %q", ErrRenderFailure, presetKey)
	}

	freq, err := p.tuning.Frequency(note.Name, note.Octave)
	if err != nil {
		return nil, fmt.Errorf("%w: note %s: %w", ErrRenderFailure, note, err)
	}

	buf, err := inst.Render(p.gen, freq, durationSec)
	if err != nil {
		return nil, fmt.Errorf("%w: note %s: %w", ErrRenderFailure, note, err)
	}
	return buf, nil
}

// RenderChord synchronously renders all notes through the same preset,
// attenuates each voice, and sums them. The mix is truncated to the
// shortest voice. Duplicate notes are mixed as distinct voices.
func (p *Player) RenderChord(presetKey string, chord []Note, durationSec float64) ([]float64, error) {
	if len(chord) == 0 {
		return nil, ErrEmptyChord
	}

	voices := make([][]float64, len(chord))
	minLen := -1
	for i, note := range chord {
		voice, err := p.RenderNote(presetKey, note, durationSec)
		if err != nil {
			return nil, err
		}
		voices[i] = voice
		if minLen < 0 || len(voice) < minLen {
			minLen = len(voice)
		}
	}

	mix := make([]float64, minLen)
	for _, voice := range voices {
		scaled := p.pool.Get(minLen)
		vecmath.ScaleBlock(scaled.Samples(), voice[:minLen], chordAttenuation)
		vecmath.AddBlockInPlace(mix, scaled.Samples())
		p.pool.Put(scaled)
	}
	return mix, nil
}

// PlayNote renders and submits one voice without blocking. Errors are
// reported through the error handler, if any.
func (p *Player) PlayNote(presetKey string, note Note, durationSec float64) {
	p.async(func() error {
		buf, err := p.RenderNote(presetKey, note, durationSec)
		if err != nil {
			return err
		}
		return p.submit(buf)
	})
}

// PlayChord renders and submits a chord without blocking. Errors are
// reported through the error handler, if any.
func (p *Player) PlayChord(presetKey string, chord []Note, durationSec float64) {
	p.async(func() error {
		buf, err := p.RenderChord(presetKey, chord, durationSec)
		if err != nil {
			return err
		}
		return p.submit(buf)
	})
}

// Wait blocks until every play request issued so far has been rendered
// and the sink has drained.
func (p *Player) Wait() {
	p.wg.Wait()
	p.sink.WaitForIdle()
}

func (p *Player) async(work func() error) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		if err := work(); err != nil && p.onError != nil {
			p.onError(err)
		}
	}()
}

func (p *Player) submit(buf []float64) error {
	if len(buf) == 0 {
		return nil
	}
	if err := p.sink.Submit(buf, p.gen.SampleRate()); err != nil {
		return fmt.Errorf("%w: %w", ErrSinkFailure, err)
	}
	return nil
}
