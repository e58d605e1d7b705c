package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(250, 1000, 1, 4)
	want := []float64{0, 1, 0, -1}
	for i := range s {
		if math.Abs(s[i]-want[i]) > 1e-12 {
			t.Fatalf("index %d: got %v, want %v", i, s[i], want[i])
		}
	}
}

func TestDeterministicNoiseReproducible(t *testing.T) {
	a := DeterministicNoise(3, 1, 64)
	b := DeterministicNoise(3, 1, 64)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d: %v != %v", i, a[i], b[i])
		}
		if a[i] < -1 || a[i] >= 1 {
			t.Fatalf("index %d: %v outside [-1,1)", i, a[i])
		}
	}
}

func TestConstant(t *testing.T) {
	c := Constant(0.5, 8)
	if len(c) != 8 {
		t.Fatalf("len = %d, want 8", len(c))
	}
	for i, v := range c {
		if v != 0.5 {
			t.Fatalf("index %d: %v, want 0.5", i, v)
		}
	}
}
