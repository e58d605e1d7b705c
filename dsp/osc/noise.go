package osc

import "math/rand/v2"

// noiseState carries the colored-noise filter memory across samples and
// blocks. Pink noise uses Kellett's 6-pole approximation, brown noise a
// leaky integrator. The filter and gain constants are empirically tuned;
// keep them exactly as written.
type noiseState struct {
	b0, b1, b2, b3, b4, b5, b6 float64
	brownLast                  float64
}

func (n *noiseState) reset() {
	*n = noiseState{}
}

// white returns one uniform draw in [-1, 1).
func white(rng *rand.Rand) float64 {
	return rng.Float64()*2 - 1
}

// pink filters one white draw to roughly -3 dB/octave. b6 enters the sum
// with the value computed during the previous sample; it is refreshed only
// after the output is formed.
func (n *noiseState) pink(w float64) float64 {
	n.b0 = 0.99886*n.b0 + w*0.0555179
	n.b1 = 0.99332*n.b1 + w*0.0750759
	n.b2 = 0.969*n.b2 + w*0.153852
	n.b3 = 0.8665*n.b3 + w*0.3104856
	n.b4 = 0.55*n.b4 + w*0.5329522
	n.b5 = -0.7616*n.b5 - w*0.016898
	out := (n.b0 + n.b1 + n.b2 + n.b3 + n.b4 + n.b5 + n.b6 + w*0.5362) * 0.11
	n.b6 = w * 0.115926
	return out
}

// brown integrates one white draw with leakage, roughly -6 dB/octave. The
// 3.5 factor compensates the gain lost to the leak.
func (n *noiseState) brown(w float64) float64 {
	n.brownLast = (n.brownLast + 0.02*w) / 1.02
	return n.brownLast * 3.5
}
