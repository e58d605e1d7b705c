package osc

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/cwbudde/algo-osc/dsp/core"
)

// Oscillator produces blocks of a periodic or noise waveform, optionally
// hard-synced to an internal leader oscillator. It is created once, driven
// once per block, and keeps its phases and noise filter state across blocks.
type Oscillator struct {
	cfg   core.ProcessorConfig
	rng   *rand.Rand
	phase phaseState
	noise noiseState
}

// Option configures an Oscillator.
type Option func(*Oscillator)

// WithRNG sets a deterministic random source for the noise shapes.
func WithRNG(rng *rand.Rand) Option {
	return func(o *Oscillator) {
		if rng != nil {
			o.rng = rng
		}
	}
}

// New creates an oscillator with the given processor configuration.
func New(opts ...core.ProcessorOption) *Oscillator {
	return NewWithOptions(opts)
}

// NewWithOptions creates an oscillator with both processor configuration and
// oscillator-specific options.
func NewWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Oscillator {
	o := &Oscillator{
		cfg: core.ApplyProcessorOptions(coreOpts...),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return o
}

// Config returns the oscillator processor configuration.
func (o *Oscillator) Config() core.ProcessorConfig {
	return o.cfg
}

// Reset returns both phases and the noise filter state to zero.
func (o *Oscillator) Reset() {
	o.phase.reset()
	o.noise.reset()
}

// Process fills channel 0 of every output bus with one block of samples and
// reports whether the host should keep scheduling blocks (always true; the
// oscillator never self-terminates). The block length is taken from the
// first bus's first channel, and every bus receives the identical sample
// sequence. Channels beyond the first of each bus are left untouched.
//
// Each control in params must be block-rate (length 1) or sample-rate (block
// length). Any other shape is a host contract violation: Process fails
// before writing a single sample.
//
// Per sample, in order: the seven controls are resolved, the current
// follower phase is rendered through the selected shape (floor of
// signalType; 0-3 periodic, 4-6 noise, anything else silence), the raw
// sample is scaled by amplitude and hard-clipped to [-1, 1], and both
// phases advance by one sample.
func (o *Oscillator) Process(outputs [][][]float64, params Params) (bool, error) {
	if len(outputs) == 0 {
		return true, nil
	}
	if len(outputs[0]) == 0 {
		return false, fmt.Errorf("osc: output bus 0 has no channels")
	}

	primary := outputs[0][0]
	n := len(primary)
	if n == 0 {
		return false, fmt.Errorf("osc: output bus 0 channel 0 is empty")
	}
	for b := 1; b < len(outputs); b++ {
		if len(outputs[b]) == 0 {
			return false, fmt.Errorf("osc: output bus %d has no channels", b)
		}
		if len(outputs[b][0]) != n {
			return false, fmt.Errorf("osc: output bus %d channel 0 has %d samples, want %d", b, len(outputs[b][0]), n)
		}
	}
	if err := params.validate(n); err != nil {
		return false, err
	}

	sampleRate := o.cfg.SampleRate
	for i := 0; i < n; i++ {
		kind := Waveform(int(math.Floor(at(params.SignalType, i))))

		var raw float64
		switch kind {
		case WaveformWhiteNoise:
			raw = white(o.rng)
		case WaveformPinkNoise:
			raw = o.noise.pink(white(o.rng))
		case WaveformBrownNoise:
			raw = o.noise.brown(white(o.rng))
		default:
			raw = waveSample(kind, o.phase.follower, at(params.Duty, i))
		}

		primary[i] = core.Clamp(raw*at(params.Amplitude, i), -1, 1)

		o.phase.advance(sampleRate,
			at(params.Frequency, i),
			at(params.PhaseOffset, i),
			at(params.Vibrato, i),
			at(params.Sync, i))
	}

	// Every bus carries the same mono signal on channel 0.
	for b := 1; b < len(outputs); b++ {
		copy(outputs[b][0], primary)
	}

	return true, nil
}

// RenderBlock fills a single mono buffer, a convenience wrapper over Process
// for hosts with exactly one bus and one channel.
func (o *Oscillator) RenderBlock(buf []float64, params Params) error {
	_, err := o.Process([][][]float64{{buf}}, params)
	return err
}
