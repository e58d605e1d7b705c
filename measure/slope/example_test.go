package slope_test

import (
	"fmt"

	"github.com/cwbudde/algo-osc/dsp/core"
	"github.com/cwbudde/algo-osc/dsp/osc"
	"github.com/cwbudde/algo-osc/measure/slope"
)

func ExampleEstimate() {
	gen := osc.New(core.WithSampleRate(44100))

	pink := make([]float64, 1<<16)
	params, err := osc.ParamsFromMap(map[string][]float64{
		"signalType": {5},
		"vibrato":    {0},
	}, 44100)
	if err != nil {
		fmt.Println("bad parameters:", err)
		return
	}
	if err := gen.RenderBlock(pink, params); err != nil {
		fmt.Println("render failed:", err)
		return
	}

	res, err := slope.Estimate(pink, slope.Config{SampleRate: 44100})
	if err != nil {
		fmt.Println("estimate failed:", err)
		return
	}

	fmt.Printf("pink noise falls near -3 dB/octave: %v\n", res.DBPerOctave > -4.5 && res.DBPerOctave < -1.5)
	// Output:
	// pink noise falls near -3 dB/octave: true
}
