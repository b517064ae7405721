package fx

import (
	"math"
	"testing"

	"github.com/iaaaanb/Keyboard/dsp/core"
)

func TestDecayCurve(t *testing.T) {
	const rate = 2.0
	dc, err := NewDecay(WithDecayRate(rate))
	if err != nil {
		t.Fatalf("NewDecay() error = %v", err)
	}

	buf := onesBuffer(1000)
	if err := dc.Apply(buf); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if buf[0] != 1 {
		t.Fatalf("buf[0] = %v, want 1", buf[0])
	}
	for i := range buf {
		want := math.Exp(-rate * float64(i) / 1000)
		if !core.NearlyEqual(buf[i], want, 1e-12) {
			t.Fatalf("buf[%d] = %v, want %v", i, buf[i], want)
		}
	}
	// Strictly decreasing on a constant input.
	for i := 1; i < len(buf); i++ {
		if buf[i] >= buf[i-1] {
			t.Fatalf("decay not monotonic at %d: %v >= %v", i, buf[i], buf[i-1])
		}
	}
}

func TestDecayIsDurationRelative(t *testing.T) {
	dc, err := NewDecay(WithDecayRate(0.8))
	if err != nil {
		t.Fatalf("NewDecay() error = %v", err)
	}

	short := onesBuffer(100)
	long := onesBuffer(10000)
	if err := dc.Apply(short); err != nil {
		t.Fatalf("Apply(short) error = %v", err)
	}
	if err := dc.Apply(long); err != nil {
		t.Fatalf("Apply(long) error = %v", err)
	}

	// The final sample sits at the same point of the curve regardless of
	// buffer length.
	if !core.NearlyEqual(short[99]/long[9999], math.Exp(-0.8*99.0/100)/math.Exp(-0.8*9999.0/10000), 1e-9) {
		t.Fatalf("relative decay mismatch: %v vs %v", short[99], long[9999])
	}
}

func TestDecayValidation(t *testing.T) {
	if _, err := NewDecay(WithDecayRate(0)); err == nil {
		t.Fatal("zero rate should fail")
	}
	if _, err := NewDecay(WithDecayRate(math.Inf(1))); err == nil {
		t.Fatal("infinite rate should fail")
	}
}
