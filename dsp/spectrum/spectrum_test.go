package spectrum

import (
	"math"
	"testing"
)

func TestMagnitude(t *testing.T) {
	in := []complex128{complex(3, 4), complex(0, 0), complex(-1, 0)}
	got := Magnitude(in)
	want := []float64{5, 0, 1}
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("bin %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMagnitudeEmpty(t *testing.T) {
	if got := Magnitude(nil); got != nil {
		t.Fatalf("Magnitude(nil) = %v, want nil", got)
	}
}

func TestPower(t *testing.T) {
	in := []complex128{complex(3, 4), complex(2, 0)}
	got := Power(in)
	want := []float64{25, 4}
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("bin %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFromParts(t *testing.T) {
	re := []float64{3, 0}
	im := []float64{4, 2}
	mag := make([]float64, 2)
	pow := make([]float64, 2)

	MagnitudeFromParts(mag, re, im)
	PowerFromParts(pow, re, im)

	if math.Abs(mag[0]-5) > 1e-12 || math.Abs(mag[1]-2) > 1e-12 {
		t.Fatalf("magnitude = %v, want [5 2]", mag)
	}
	if math.Abs(pow[0]-25) > 1e-12 || math.Abs(pow[1]-4) > 1e-12 {
		t.Fatalf("power = %v, want [25 4]", pow)
	}
}
