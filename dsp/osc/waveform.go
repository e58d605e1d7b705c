package osc

import (
	"fmt"
	"math"
)

// Waveform selects the signal shape produced by an Oscillator.
type Waveform int

const (
	// WaveformTriangle is a linear ramp up and down between -1 and +1.
	WaveformTriangle Waveform = iota
	// WaveformPulse is a two-valued square shape whose transition point is
	// shifted by the duty control.
	WaveformPulse
	// WaveformSawtooth ramps linearly from -1 toward +1 once per cycle.
	WaveformSawtooth
	// WaveformSine is a pure sine.
	WaveformSine
	// WaveformWhiteNoise draws uniform noise, flat spectrum.
	WaveformWhiteNoise
	// WaveformPinkNoise filters white noise to roughly -3 dB/octave.
	WaveformPinkNoise
	// WaveformBrownNoise integrates white noise to roughly -6 dB/octave.
	WaveformBrownNoise

	waveformCount // sentinel for validation
)

var waveformNames = [waveformCount]string{
	"Triangle", "Pulse", "Sawtooth", "Sine", "WhiteNoise", "PinkNoise", "BrownNoise",
}

// String returns the name of the waveform.
func (w Waveform) String() string {
	if w >= 0 && w < waveformCount {
		return waveformNames[w]
	}
	return fmt.Sprintf("Waveform(%d)", w)
}

// Valid reports whether w is a known waveform.
func (w Waveform) Valid() bool {
	return w >= 0 && w < waveformCount
}

// Noise reports whether w is one of the noise colors.
func (w Waveform) Noise() bool {
	return w >= WaveformWhiteNoise && w <= WaveformBrownNoise
}

// frac returns the fractional part of x, the sawtooth primitive shared by
// several shapes.
func frac(x float64) float64 {
	return x - math.Floor(x)
}

// waveSample maps a normalized phase to one raw sample of a periodic shape
// in [-1, 1]. duty is only consulted for WaveformPulse. An unknown shape
// yields silence rather than an error, matching a selection among exclusive
// branches where nothing matched.
func waveSample(w Waveform, phase, duty float64) float64 {
	switch w {
	case WaveformTriangle:
		return math.Abs(frac(phase)-0.5)*4 - 1
	case WaveformPulse:
		// The sign of frac(phase) - frac(phase+duty) places the transition;
		// duty shifts where the edge falls, it does not weight the amplitude.
		// The resulting asymmetry for duty != 0.5 is intentional.
		if frac(phase)-frac(phase+duty) > 0 {
			return 1
		}
		return -1
	case WaveformSawtooth:
		return frac(phase)*2 - 1
	case WaveformSine:
		return math.Sin(phase * 2 * math.Pi)
	default:
		return 0
	}
}
