package osc

import "fmt"

// Params carries the control values for one processing block. Each slice
// holds either exactly one value (block-rate: constant across the block) or
// one value per sample (sample-rate: may vary within the block). The host is
// expected to clamp values to the ranges published by [Descriptors].
type Params struct {
	SignalType  []float64
	Frequency   []float64
	PhaseOffset []float64
	Vibrato     []float64
	Duty        []float64
	Sync        []float64
	Amplitude   []float64
}

// validate checks every control against the block length n. Any other length
// is a host contract violation and must fail before a sample is written.
func (p *Params) validate(n int) error {
	fields := [...]struct {
		name   string
		values []float64
	}{
		{"signalType", p.SignalType},
		{"frequency", p.Frequency},
		{"phaseOffset", p.PhaseOffset},
		{"vibrato", p.Vibrato},
		{"duty", p.Duty},
		{"sync", p.Sync},
		{"amplitude", p.Amplitude},
	}
	for _, f := range fields {
		if len(f.values) != 1 && len(f.values) != n {
			return fmt.Errorf("osc: parameter %s has %d values, want 1 or %d", f.name, len(f.values), n)
		}
	}
	return nil
}

// at resolves the value of one control at sample index i. Lengths must have
// been validated against the block length beforehand.
func at(values []float64, i int) float64 {
	if len(values) == 1 {
		return values[0]
	}
	return values[i]
}
