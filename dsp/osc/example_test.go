package osc_test

import (
	"fmt"

	"github.com/cwbudde/algo-osc/dsp/core"
	"github.com/cwbudde/algo-osc/dsp/osc"
)

func ExampleOscillator_RenderBlock() {
	// A 250 Hz sine at a 1 kHz sample rate lands on 0, 1, 0, -1.
	gen := osc.New(core.WithSampleRate(1000))

	buf := make([]float64, 4)
	err := gen.RenderBlock(buf, osc.Params{
		SignalType:  []float64{3},
		Frequency:   []float64{250},
		PhaseOffset: []float64{0},
		Vibrato:     []float64{0},
		Duty:        []float64{0.5},
		Sync:        []float64{0},
		Amplitude:   []float64{1},
	})
	if err != nil {
		fmt.Println("render failed:", err)
		return
	}

	fmt.Printf("%.0f %.0f %.0f %.0f\n", buf[0], buf[1], buf[2], buf[3])
	// Output:
	// 0 1 0 -1
}

func ExampleParamsFromMap() {
	params, err := osc.ParamsFromMap(map[string][]float64{
		"signalType": {2},
		"frequency":  {110},
	}, 44100)
	if err != nil {
		fmt.Println("bad parameters:", err)
		return
	}

	fmt.Println(params.Frequency[0], params.Amplitude[0], params.Duty[0])
	// Output:
	// 110 1 0.5
}
