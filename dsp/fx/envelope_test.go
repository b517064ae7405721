package fx

import (
	"math"
	"testing"

	"github.com/iaaaanb/Keyboard/dsp/core"
)

func onesBuffer(n int) []float64 {
	buf := make([]float64, n)
	for i := range buf {
		buf[i] = 1
	}
	return buf
}

func TestEnvelopeSegments(t *testing.T) {
	const rate = 1000.0
	env, err := NewEnvelope(rate,
		WithAttack(0.1),  // 100 samples
		WithDecay(0.1),   // 100 samples
		WithSustain(0.7),
		WithRelease(0.2), // 200 samples
	)
	if err != nil {
		t.Fatalf("NewEnvelope() error = %v", err)
	}

	buf := onesBuffer(1000)
	if err := env.Apply(buf); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if buf[0] != 0 {
		t.Fatalf("attack start = %v, want 0", buf[0])
	}
	if !core.NearlyEqual(buf[99], 1, 1e-12) {
		t.Fatalf("attack end = %v, want 1", buf[99])
	}
	// Sustain segment spans samples 200..799 and must equal the sustain
	// level exactly, not approximately.
	for i := 200; i < 800; i++ {
		if buf[i] != 0.7 {
			t.Fatalf("sustain sample %d = %v, want exactly 0.7", i, buf[i])
		}
	}
	if last := buf[len(buf)-1]; last != 0 {
		t.Fatalf("release end = %v, want 0", last)
	}
}

func TestEnvelopePreservesLength(t *testing.T) {
	env, err := NewEnvelope(44100)
	if err != nil {
		t.Fatalf("NewEnvelope() error = %v", err)
	}
	buf := onesBuffer(4410)
	if err := env.Apply(buf); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if len(buf) != 4410 {
		t.Fatalf("len = %d, want 4410", len(buf))
	}
}

func TestEnvelopeOverlengthClamps(t *testing.T) {
	const rate = 1000.0
	env, err := NewEnvelope(rate,
		WithAttack(1), WithDecay(1), WithSustain(0.5), WithRelease(2),
	)
	if err != nil {
		t.Fatalf("NewEnvelope() error = %v", err)
	}

	// 400 samples against 4000 requested envelope samples: segments must
	// be rescaled 1:1:2 and tile the buffer exactly.
	buf := onesBuffer(400)
	if err := env.Apply(buf); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if buf[0] != 0 {
		t.Fatalf("attack start = %v, want 0", buf[0])
	}
	if !core.NearlyEqual(buf[99], 1, 1e-12) {
		t.Fatalf("attack end = %v, want 1", buf[99])
	}
	if last := buf[len(buf)-1]; last != 0 {
		t.Fatalf("release end = %v, want 0", last)
	}
	for i, v := range buf {
		if math.IsNaN(v) || v < 0 || v > 1 {
			t.Fatalf("buf[%d] = %v outside [0, 1]", i, v)
		}
	}
}

func TestEnvelopeEmptyBuffer(t *testing.T) {
	env, err := NewEnvelope(44100)
	if err != nil {
		t.Fatalf("NewEnvelope() error = %v", err)
	}
	if err := env.Apply(nil); err != nil {
		t.Fatalf("Apply(nil) error = %v", err)
	}
}

func TestEnvelopeOptionValidation(t *testing.T) {
	if _, err := NewEnvelope(0); err == nil {
		t.Fatal("zero sample rate should fail")
	}
	if _, err := NewEnvelope(44100, WithAttack(-1)); err == nil {
		t.Fatal("negative attack should fail")
	}
	if _, err := NewEnvelope(44100, WithSustain(1.5)); err == nil {
		t.Fatal("sustain above 1 should fail")
	}
	if _, err := NewEnvelope(44100, WithRelease(math.Inf(1))); err == nil {
		t.Fatal("infinite release should fail")
	}
}

func TestEnvelopeGetters(t *testing.T) {
	env, err := NewEnvelope(44100,
		WithAttack(0.01), WithDecay(0.05), WithSustain(0.6), WithRelease(0.1),
	)
	if err != nil {
		t.Fatalf("NewEnvelope() error = %v", err)
	}
	if env.Attack() != 0.01 || env.Decay() != 0.05 || env.Sustain() != 0.6 || env.Release() != 0.1 {
		t.Fatalf("getters = %v %v %v %v", env.Attack(), env.Decay(), env.Sustain(), env.Release())
	}
}
