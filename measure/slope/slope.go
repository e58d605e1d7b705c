// Package slope estimates the spectral slope of a signal in dB per octave.
//
// The estimate answers "what color is this noise": white noise measures near
// 0 dB/octave, pink near -3, brown near -6.
package slope

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-osc/dsp/core"
	"github.com/cwbudde/algo-osc/dsp/spectrum"
)

const (
	defaultFFTSize = 4096
	defaultLowerHz = 100.0
	defaultUpperHz = 10000.0
)

// Config holds slope estimation parameters. Zero fields fall back to
// defaults; SampleRate is required.
type Config struct {
	SampleRate float64
	FFTSize    int     // segment/FFT length, power of two (default 4096)
	LowerFreq  float64 // lowest octave-band center in Hz (default 100)
	UpperFreq  float64 // highest octave-band center in Hz (default 10000)
}

// Band is the averaged level of one octave-wide analysis band.
type Band struct {
	CenterFreq float64
	LevelDB    float64
}

// Result holds the fitted slope and the per-band levels behind it.
type Result struct {
	DBPerOctave float64
	Bands       []Band
}

// Estimate computes the spectral slope of signal using Welch-averaged
// periodograms: Hann-windowed segments with 50% overlap are transformed,
// their power spectra averaged, collapsed into octave bands between
// LowerFreq and UpperFreq, and a least-squares line fitted to band level in
// dB against log2 of the band center frequency.
func Estimate(signal []float64, cfg Config) (Result, error) {
	cfg = normalizeConfig(cfg)

	if cfg.SampleRate <= 0 || math.IsNaN(cfg.SampleRate) || math.IsInf(cfg.SampleRate, 0) {
		return Result{}, fmt.Errorf("slope: sample rate must be > 0 and finite: %f", cfg.SampleRate)
	}
	if cfg.FFTSize < 16 || cfg.FFTSize&(cfg.FFTSize-1) != 0 {
		return Result{}, fmt.Errorf("slope: FFT size must be a power of two >= 16: %d", cfg.FFTSize)
	}
	if len(signal) < cfg.FFTSize {
		return Result{}, fmt.Errorf("slope: signal must hold at least one FFT segment: %d < %d", len(signal), cfg.FFTSize)
	}
	if cfg.LowerFreq <= 0 || cfg.UpperFreq <= cfg.LowerFreq*2 {
		return Result{}, fmt.Errorf("slope: band range must span at least one octave above 0 Hz: [%f, %f]", cfg.LowerFreq, cfg.UpperFreq)
	}
	if cfg.UpperFreq >= cfg.SampleRate/2 {
		return Result{}, fmt.Errorf("slope: upper band must stay below Nyquist: %f >= %f", cfg.UpperFreq, cfg.SampleRate/2)
	}

	avg, err := welchPower(signal, cfg.FFTSize)
	if err != nil {
		return Result{}, err
	}

	bands := octaveBands(avg, cfg)
	if len(bands) < 2 {
		return Result{}, fmt.Errorf("slope: need at least 2 octave bands, got %d", len(bands))
	}

	return Result{
		DBPerOctave: fitSlope(bands),
		Bands:       bands,
	}, nil
}

func normalizeConfig(cfg Config) Config {
	if cfg.FFTSize <= 0 {
		cfg.FFTSize = defaultFFTSize
	}
	if cfg.LowerFreq <= 0 {
		cfg.LowerFreq = defaultLowerHz
	}
	if cfg.UpperFreq <= 0 {
		cfg.UpperFreq = defaultUpperHz
	}
	return cfg
}

// welchPower averages Hann-windowed, half-overlapped periodograms and
// returns the one-sided power spectrum (bins 0..fftSize/2).
func welchPower(signal []float64, fftSize int) ([]float64, error) {
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("slope: fft plan: %w", err)
	}

	win := hann(fftSize)
	in := make([]complex128, fftSize)
	out := make([]complex128, fftSize)

	binCount := fftSize/2 + 1
	avg := make([]float64, binCount)

	hop := fftSize / 2
	segments := 0
	for start := 0; start+fftSize <= len(signal); start += hop {
		for i := 0; i < fftSize; i++ {
			in[i] = complex(signal[start+i]*win[i], 0)
		}
		if err := plan.Forward(out, in); err != nil {
			return nil, fmt.Errorf("slope: fft: %w", err)
		}

		power := spectrum.Power(out[:binCount])
		for i, p := range power {
			avg[i] += p
		}
		segments++
	}

	inv := 1 / float64(segments)
	for i := range avg {
		avg[i] *= inv
	}
	return avg, nil
}

func hann(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n)))
	}
	return w
}

// octaveBands collapses the averaged power spectrum into octave-wide bands
// with centers at LowerFreq * 2^k. Bands that catch no bins are skipped.
func octaveBands(power []float64, cfg Config) []Band {
	binHz := cfg.SampleRate / float64(cfg.FFTSize)
	sqrt2 := math.Sqrt2

	var bands []Band
	for center := cfg.LowerFreq; center <= cfg.UpperFreq; center *= 2 {
		lo := center / sqrt2
		hi := center * sqrt2

		sum := 0.0
		count := 0
		for i := 1; i < len(power); i++ {
			f := float64(i) * binHz
			if f >= lo && f < hi {
				sum += power[i]
				count++
			}
		}
		if count == 0 {
			continue
		}

		bands = append(bands, Band{
			CenterFreq: center,
			LevelDB:    core.LinearPowerToDB(sum / float64(count)),
		})
	}
	return bands
}

// fitSlope returns the least-squares slope of band level in dB over log2 of
// the band center frequency, which reads directly as dB per octave.
func fitSlope(bands []Band) float64 {
	n := float64(len(bands))

	var meanX, meanY float64
	for _, b := range bands {
		meanX += math.Log2(b.CenterFreq)
		meanY += b.LevelDB
	}
	meanX /= n
	meanY /= n

	var num, den float64
	for _, b := range bands {
		dx := math.Log2(b.CenterFreq) - meanX
		num += dx * (b.LevelDB - meanY)
		den += dx * dx
	}
	if den == 0 {
		return 0
	}
	return num / den
}
