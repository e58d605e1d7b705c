package osc

import (
	"fmt"
	"math"
)

// Descriptor describes one automatable control for the host boundary.
type Descriptor struct {
	Name    string
	Default float64
	Min     float64
	Max     float64
}

// Descriptors returns the control schema for the given sample rate. The
// frequency ceiling is Nyquist; sync and amplitude are unbounded above.
func Descriptors(sampleRate float64) []Descriptor {
	return []Descriptor{
		{Name: "signalType", Default: 1, Min: 0, Max: 6},
		{Name: "frequency", Default: 440, Min: 0, Max: 0.5 * sampleRate},
		{Name: "phaseOffset", Default: 0, Min: 0, Max: 1},
		{Name: "vibrato", Default: 0.8, Min: 0, Max: 1},
		{Name: "duty", Default: 0.5, Min: 0, Max: 1},
		{Name: "sync", Default: 0, Min: 0, Max: math.Inf(1)},
		{Name: "amplitude", Default: 1, Min: 0, Max: math.Inf(1)},
	}
}

// ParamsFromMap builds Params from a host-supplied name-to-values map.
// Missing controls fall back to their schema defaults as block-rate
// constants; unknown names are rejected. Value lengths are checked later, at
// processing time, against the actual block length.
func ParamsFromMap(values map[string][]float64, sampleRate float64) (Params, error) {
	descs := Descriptors(sampleRate)

	known := make(map[string][]float64, len(descs))
	for _, d := range descs {
		v, ok := values[d.Name]
		if !ok {
			v = []float64{d.Default}
		}
		known[d.Name] = v
	}

	for name := range values {
		if _, ok := known[name]; !ok {
			return Params{}, fmt.Errorf("osc: unknown parameter %q", name)
		}
	}

	return Params{
		SignalType:  known["signalType"],
		Frequency:   known["frequency"],
		PhaseOffset: known["phaseOffset"],
		Vibrato:     known["vibrato"],
		Duty:        known["duty"],
		Sync:        known["sync"],
		Amplitude:   known["amplitude"],
	}, nil
}
