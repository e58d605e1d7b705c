// Command oscplay plays the oscillator through the default audio output.
//
// Usage:
//
//	oscplay [flags]
//
// Examples:
//
//	oscplay -wave sine -freq 440
//	oscplay -wave saw -freq 110 -sync 330 -dur 5s
//	oscplay -wave pink -gain -12
//	oscplay -describe
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/cwbudde/algo-osc/dsp/core"
	"github.com/cwbudde/algo-osc/dsp/osc"
)

var waveByName = map[string]osc.Waveform{
	"triangle": osc.WaveformTriangle,
	"pulse":    osc.WaveformPulse,
	"square":   osc.WaveformPulse,
	"saw":      osc.WaveformSawtooth,
	"sawtooth": osc.WaveformSawtooth,
	"sine":     osc.WaveformSine,
	"white":    osc.WaveformWhiteNoise,
	"pink":     osc.WaveformPinkNoise,
	"brown":    osc.WaveformBrownNoise,
}

func main() {
	wave := flag.String("wave", "sine", "waveform: triangle, pulse, saw, sine, white, pink, brown")
	freq := flag.Float64("freq", 440, "oscillator frequency in Hz")
	duty := flag.Float64("duty", 0.5, "pulse duty cycle in [0,1]")
	vibrato := flag.Float64("vibrato", 0, "vibrato depth in [0,1]")
	sync := flag.Float64("sync", 0, "hard-sync leader frequency in Hz (0 disables)")
	gain := flag.Float64("gain", -6, "output gain in dB")
	dur := flag.Duration("dur", 2*time.Second, "playback duration")
	rate := flag.Int("rate", 44100, "sample rate in Hz")
	describe := flag.Bool("describe", false, "print the parameter schema and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: oscplay [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Plays a periodic or noise waveform on the default audio device.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  oscplay -wave sine -freq 440\n")
		fmt.Fprintf(os.Stderr, "  oscplay -wave saw -freq 110 -sync 330 -dur 5s\n")
		fmt.Fprintf(os.Stderr, "  oscplay -wave pink -gain -12\n")
	}
	flag.Parse()

	if *describe {
		printSchema(float64(*rate))
		return
	}

	w, ok := waveByName[strings.ToLower(strings.TrimSpace(*wave))]
	if !ok {
		fmt.Fprintf(os.Stderr, "error: unknown waveform %q\n", *wave)
		os.Exit(1)
	}

	if err := play(w, *freq, *duty, *vibrato, *sync, *gain, *rate, *dur); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printSchema(sampleRate float64) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Name\tDefault\tMin\tMax\n")
	fmt.Fprintf(tw, "----\t-------\t---\t---\n")
	for _, d := range osc.Descriptors(sampleRate) {
		fmt.Fprintf(tw, "%s\t%g\t%g\t%g\n", d.Name, d.Default, d.Min, d.Max)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func play(w osc.Waveform, freq, duty, vibrato, sync, gainDB float64, rate int, dur time.Duration) error {
	const blockLen = 128

	gen := osc.New(core.WithSampleRate(float64(rate)), core.WithBlockSize(blockLen))
	reader := &oscReader{
		gen:     gen,
		outputs: [][][]float64{{make([]float64, blockLen)}},
		params: osc.Params{
			SignalType:  []float64{float64(w)},
			Frequency:   []float64{freq},
			PhaseOffset: []float64{0},
			Vibrato:     []float64{vibrato},
			Duty:        []float64{duty},
			Sync:        []float64{sync},
			Amplitude:   []float64{core.DBToLinear(gainDB)},
		},
		pcm: make([]byte, blockLen*2),
		pos: blockLen * 2,
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   rate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return fmt.Errorf("audio context: %w", err)
	}
	<-ready

	player := ctx.NewPlayer(reader)
	player.Play()
	time.Sleep(dur)

	return player.Close()
}

// oscReader streams oscillator blocks as 16-bit little-endian PCM.
type oscReader struct {
	gen     *osc.Oscillator
	outputs [][][]float64
	params  osc.Params
	pcm     []byte
	pos     int
}

func (r *oscReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.pcm) {
		if _, err := r.gen.Process(r.outputs, r.params); err != nil {
			return 0, err
		}
		for i, s := range r.outputs[0][0] {
			v := int16(math.Round(s * 32767))
			r.pcm[2*i] = byte(v)
			r.pcm[2*i+1] = byte(uint16(v) >> 8)
		}
		r.pos = 0
	}

	n := copy(p, r.pcm[r.pos:])
	r.pos += n
	return n, nil
}
