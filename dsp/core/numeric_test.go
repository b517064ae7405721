package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		name            string
		value, min, max float64
		want            float64
	}{
		{"inside", 0.5, 0, 1, 0.5},
		{"below", -2, 0, 1, 0},
		{"above", 3, 0, 1, 1},
		{"swapped bounds", 0.5, 1, 0, 0.5},
		{"at min", 0, 0, 1, 0},
		{"at max", 1, 0, 1, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Clamp(tc.value, tc.min, tc.max)
			if got != tc.want {
				t.Fatalf("Clamp(%v, %v, %v) = %v, want %v", tc.value, tc.min, tc.max, got, tc.want)
			}
		})
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1, 1+1e-13, 1e-12) {
		t.Fatal("values within eps should compare equal")
	}
	if NearlyEqual(1, 1.1, 1e-12) {
		t.Fatal("values outside eps should not compare equal")
	}
	if !NearlyEqual(0, 0, 0) {
		t.Fatal("zero eps should fall back to default epsilon")
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(1.5) || !IsFinite(0) || !IsFinite(-1e300) {
		t.Fatal("ordinary values must be finite")
	}
	if IsFinite(math.NaN()) {
		t.Fatal("NaN must not be finite")
	}
	if IsFinite(math.Inf(1)) || IsFinite(math.Inf(-1)) {
		t.Fatal("infinities must not be finite")
	}
}
