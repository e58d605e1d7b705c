package osc

import "math"

// vibratoDivisor scales the vibrato control inside the phase warp. The value
// is empirically tuned; changing it changes the audible character.
const vibratoDivisor = 500.0

// phaseState holds the leader/follower phase pair for hard sync. The leader
// runs at the sync frequency and forces the follower back to zero each time
// it completes a cycle; the follower is the phase that is heard.
type phaseState struct {
	leader   float64
	follower float64
}

func (p *phaseState) reset() {
	*p = phaseState{}
}

// advance steps both phases by one sample. freq and sync are in Hz;
// phaseOffset and vibrato are normalized controls. A sync frequency of zero
// lets the leader accumulate freely without ever retriggering.
//
// On retrigger the follower's free-running advance for this sample is
// discarded, not added on top of the reset. The reset point is not
// interpolated to sub-sample accuracy, so high sync ratios alias; that is
// the classic naive hard-sync behavior.
func (p *phaseState) advance(sampleRate, freq, phaseOffset, vibrato, sync float64) {
	p.leader += sync / sampleRate
	if sync != 0 && p.leader >= 1 {
		p.leader = mod1(p.leader)
		p.follower = 0
	} else {
		p.follower += freq / sampleRate
	}
	p.follower += phaseOffset
	// Nonlinear warp of the follower's own phase, not a separate LFO.
	p.follower += math.Sin(p.follower*2*math.Pi*vibrato/vibratoDivisor) * 2
	p.follower = mod1(p.follower)
}

// mod1 wraps x into [0, 1), mapping negative inputs into the positive range.
func mod1(x float64) float64 {
	m := math.Mod(x, 1)
	if m < 0 {
		m++
	}
	return m
}
