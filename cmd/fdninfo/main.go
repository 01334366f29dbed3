// Command fdninfo prints the structure of the reverb engine: its controls,
// network topology, feedback matrix and tilt equalizer response. The render
// section also renders an impulse response offline and reports its decay
// metrics.
//
// Usage:
//
//	fdninfo [flags] [section ...]
//
// Sections are params, topology, matrix, tilt and render. Without arguments
// every section except render is printed.
//
// Examples:
//
//	fdninfo
//	fdninfo -tilt 0.5 -rate 48000 tilt
//	fdninfo -size 200 -decay 1 render
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-reverb/dsp/core"
	"github.com/cwbudde/algo-reverb/dsp/effects/reverb"
	"github.com/cwbudde/algo-reverb/measure/ir"
)

type options struct {
	sampleRate float64
	tilt       float64
	size       float64
	decay      float64
	absorb     float64
	seconds    float64
}

var sections = []string{"params", "topology", "matrix", "tilt", "render"}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("fdninfo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var o options
	fs.Float64Var(&o.sampleRate, "rate", 44100, "sample rate in Hz")
	fs.Float64Var(&o.tilt, "tilt", 1, "tilt control for the tilt section (-1..1)")
	fs.Float64Var(&o.size, "size", 80, "room size in ms for render")
	fs.Float64Var(&o.decay, "decay", 0.9, "decay for render (0..1.2)")
	fs.Float64Var(&o.absorb, "absorb", 0.5, "absorb for render (0..1)")
	fs.Float64Var(&o.seconds, "seconds", 3, "length of the rendered impulse response")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: fdninfo [flags] [section ...]\n\n")
		fmt.Fprintf(stderr, "Sections: %s\n\n", strings.Join(sections, ", "))
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if !(o.sampleRate > 0) {
		return fmt.Errorf("sample rate must be > 0: %v", o.sampleRate)
	}

	names := fs.Args()
	if len(names) == 0 {
		names = sections[:4]
	}

	for i, name := range names {
		if i > 0 {
			fmt.Fprintln(stdout)
		}

		var err error
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "params":
			err = printParams(stdout)
		case "topology":
			err = printTopology(stdout, o)
		case "matrix":
			err = printMatrix(stdout)
		case "tilt":
			err = printTilt(stdout, o)
		case "render":
			err = printRender(stdout, o)
		default:
			err = fmt.Errorf("unknown section %q (one of %s)", name, strings.Join(sections, ", "))
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printParams(w io.Writer) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "Control\tUnit\tMin\tMax\tDefault\tKnob centre\n")
	fmt.Fprintf(tw, "-------\t----\t---\t---\t-------\t-----------\n")
	for _, d := range reverb.Descriptors() {
		fmt.Fprintf(tw, "%s\t%s\t%g\t%g\t%g\t%.4g\n",
			d.Name, d.Unit, d.Range.Min, d.Range.Max, d.Default, d.Range.Unnormalize(0.5))
	}
	return tw.Flush()
}

func printTopology(w io.Writer, o options) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "Tap\tFraction\tMax delay [ms]\tMax delay [samples]\tDiffuser [ms]\tLFO offset\n")
	fmt.Fprintf(tw, "---\t--------\t--------------\t-------------------\t-------------\t----------\n")
	for i := 0; i < reverb.NumTaps; i++ {
		ms := reverb.TapFractions[i] * reverb.MaxSize
		fmt.Fprintf(tw, "%d\t%.4f\t%.2f\t%.0f\t%.3f\t%.2f\n",
			i, reverb.TapFractions[i], ms, math.Ceil(ms*o.sampleRate/1000),
			reverb.DiffuserTimes[i], reverb.LFOPhaseOffset[i])
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nEarly reflection level: %.1f dB at %g ms, %.1f dB at %g ms\n",
		core.LinearToDB(reverb.SizeGain(reverb.MinSize)), reverb.MinSize,
		core.LinearToDB(reverb.SizeGain(reverb.MaxSize)), reverb.MaxSize)
	return err
}

func printMatrix(w io.Writer) error {
	tw := newTable(w)
	for _, row := range reverb.FeedbackMatrix {
		for _, v := range row {
			fmt.Fprintf(tw, "%+.0f\t", v)
		}
		fmt.Fprintln(tw)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	orthogonal := true
	for i := range reverb.FeedbackMatrix {
		for j := range reverb.FeedbackMatrix {
			dot := 0.0
			for k := range reverb.FeedbackMatrix[i] {
				dot += reverb.FeedbackMatrix[i][k] * reverb.FeedbackMatrix[j][k]
			}
			want := 0.0
			if i == j {
				want = reverb.NumTaps
			}
			orthogonal = orthogonal && dot == want
		}
	}
	_, err := fmt.Fprintf(w, "\nM·Mᵀ = %d·I: %v\n", reverb.NumTaps, orthogonal)
	return err
}

func printTilt(w io.Writer, o options) error {
	if o.tilt < -1 || o.tilt > 1 {
		return fmt.Errorf("tilt must be in [-1, 1]: %v", o.tilt)
	}

	f, err := reverb.NewTiltFilter(o.sampleRate)
	if err != nil {
		return err
	}
	c := f.Coefficients(o.tilt)

	fmt.Fprintf(w, "Tilt %.2f at %g Hz (stable: %v)\n\n", o.tilt, o.sampleRate, c.Stable())

	tw := newTable(w)
	fmt.Fprintf(tw, "Frequency [Hz]\tGain [dB]\n")
	fmt.Fprintf(tw, "--------------\t---------\n")
	for hz := 31.25; hz < o.sampleRate/2; hz *= 2 {
		fmt.Fprintf(tw, "%g\t%+.2f\n", hz, c.MagnitudeDB(hz, o.sampleRate))
	}
	return tw.Flush()
}

func printRender(w io.Writer, o options) error {
	r, err := reverb.New(o.sampleRate)
	if err != nil {
		return err
	}

	p := reverb.DefaultParams()
	p.Size = o.size
	p.Decay = o.decay
	p.Absorb = o.absorb
	p.Depth = 0
	p.Mix = 1
	p = p.Clamp()

	n := int(o.seconds * o.sampleRate)
	if n <= 0 {
		return fmt.Errorf("render length must be > 0: %v s", o.seconds)
	}
	left := make([]float64, n)
	right := make([]float64, n)
	left[0], right[0] = 1, 1
	r.ProcessBlock(left, right, p)

	a := ir.NewAnalyzer(o.sampleRate)
	m, err := a.Analyze(left)
	if err != nil {
		return err
	}
	onset, err := a.Onset(left)
	if err != nil {
		return err
	}

	tw := newTable(w)
	fmt.Fprintf(tw, "Size\t%g ms\n", p.Size)
	fmt.Fprintf(tw, "Decay\t%g\n", p.Decay)
	fmt.Fprintf(tw, "Absorb\t%g\n", p.Absorb)
	fmt.Fprintf(tw, "Onset\t%.2f ms\n", float64(onset)*1000/o.sampleRate)
	fmt.Fprintf(tw, "RT60\t%.3f s\n", m.RT60)
	fmt.Fprintf(tw, "EDT\t%.3f s\n", m.EDT)
	fmt.Fprintf(tw, "C80\t%.2f dB\n", m.C80)
	fmt.Fprintf(tw, "D50\t%.3f\n", m.D50)
	fmt.Fprintf(tw, "Centre time\t%.3f s\n", m.CenterTime)

	bands := [][2]float64{{63, 250}, {250, 1000}, {1000, 4000}, {4000, 16000}}
	for _, b := range bands {
		if b[1] > o.sampleRate/2 {
			continue
		}
		e, err := ir.BandEnergy(left, o.sampleRate, b[0], b[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "Energy %g-%g Hz\t%.2f dB\n", b[0], b[1], core.PowerToDB(e))
	}

	return tw.Flush()
}
