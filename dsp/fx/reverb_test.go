package fx

import (
	"math"
	"testing"

	"github.com/iaaaanb/Keyboard/dsp/core"
)

func TestReverbShortBufferUnchanged(t *testing.T) {
	rv, err := NewReverb(44100, WithReverbAmount(0.5), WithReverbDelayMs(100))
	if err != nil {
		t.Fatalf("NewReverb() error = %v", err)
	}

	// 100 ms at 44100 Hz is 4410 samples; a shorter buffer is out of
	// range for every tap and must come back bit-identical.
	buf := make([]float64, 1000)
	for i := range buf {
		buf[i] = math.Sin(float64(i) / 7)
	}
	want := append([]float64(nil), buf...)

	if err := rv.Apply(buf); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if len(buf) != len(want) {
		t.Fatalf("len = %d, want %d", len(buf), len(want))
	}
	for i := range buf {
		if buf[i] != want[i] {
			t.Fatalf("buf[%d] = %v, want %v", i, buf[i], want[i])
		}
	}
}

func TestReverbTapArithmetic(t *testing.T) {
	const (
		rate    = 44100.0
		amount  = 0.4
		delayMs = 100.0
	)
	rv, err := NewReverb(rate, WithReverbAmount(amount), WithReverbDelayMs(delayMs))
	if err != nil {
		t.Fatalf("NewReverb() error = %v", err)
	}

	delay := int(rate * delayMs / 1000) // 4410

	buf := make([]float64, 4*delay+100)
	buf[0] = 1 // impulse
	if err := rv.Apply(buf); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if buf[0] != 1 {
		t.Fatalf("dry impulse = %v, want 1", buf[0])
	}
	taps := []struct {
		index int
		want  float64
	}{
		{delay, amount},
		{2 * delay, amount * 0.6},
		{3 * delay, amount * 0.36},
	}
	for _, tap := range taps {
		if !core.NearlyEqual(buf[tap.index], tap.want, 1e-12) {
			t.Fatalf("buf[%d] = %v, want %v", tap.index, buf[tap.index], tap.want)
		}
	}

	// Taps read the dry input: nothing may appear at multiples of the
	// delay beyond the third tap.
	if buf[4*delay] != 0 {
		t.Fatalf("buf[%d] = %v, want 0 (taps must not feed back)", 4*delay, buf[4*delay])
	}
}

func TestReverbPartialTaps(t *testing.T) {
	const rate = 44100.0
	rv, err := NewReverb(rate, WithReverbAmount(0.5), WithReverbDelayMs(100))
	if err != nil {
		t.Fatalf("NewReverb() error = %v", err)
	}

	delay := 4410

	// Room for the first tap only; the later taps fall past the end and
	// must contribute nothing.
	buf := make([]float64, delay+10)
	buf[0] = 1
	if err := rv.Apply(buf); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if !core.NearlyEqual(buf[delay], 0.5, 1e-12) {
		t.Fatalf("buf[%d] = %v, want 0.5", delay, buf[delay])
	}
	if len(buf) != delay+10 {
		t.Fatalf("len = %d, want %d (reverb must not extend the buffer)", len(buf), delay+10)
	}
}

func TestReverbOptionValidation(t *testing.T) {
	if _, err := NewReverb(0); err == nil {
		t.Fatal("zero sample rate should fail")
	}
	if _, err := NewReverb(44100, WithReverbAmount(1.5)); err == nil {
		t.Fatal("amount above 1 should fail")
	}
	if _, err := NewReverb(44100, WithReverbDelayMs(0)); err == nil {
		t.Fatal("zero delay should fail")
	}
}
