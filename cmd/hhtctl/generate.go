package main

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/go-hht/internal/iosignal"
	"github.com/spf13/cobra"
)

var (
	genDuration  float64
	genRate      int
	genToneLevel float64
	genNoise     float64
)

var generateCmd = &cobra.Command{
	Use:   "generate-test [output.wav]",
	Short: "Generate a mono test WAV with a few tone bands plus white noise",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().Float64Var(&genDuration, "duration", 5.0, "duration in seconds")
	generateCmd.Flags().IntVar(&genRate, "rate", 256, "sample rate in Hz")
	generateCmd.Flags().Float64Var(&genToneLevel, "tone-level", 0.6, "tone amplitude (0-1)")
	generateCmd.Flags().Float64Var(&genNoise, "noise-level", 0.05, "white noise amplitude (0-1)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	outputFile := args[0]
	if genDuration <= 0 {
		return fmt.Errorf("duration must be > 0")
	}
	if genRate <= 0 {
		return fmt.Errorf("rate must be > 0")
	}
	if genToneLevel < 0 || genToneLevel > 1 {
		return fmt.Errorf("tone-level must be between 0 and 1")
	}
	if genNoise < 0 || genNoise > 1 {
		return fmt.Errorf("noise-level must be between 0 and 1")
	}

	numSamples := int(genDuration * float64(genRate))
	if numSamples <= 0 {
		return fmt.Errorf("duration too short for sample rate")
	}

	// A handful of well-separated bands, loosely modeling EEG rhythms
	// (delta/theta/alpha), is enough to produce a multi-IMF signal.
	freqs := []float64{1.5, 6.0, 11.0}
	samples := make([]float64, numSamples)

	rng := rand.New(rand.NewSource(1))
	for i := range samples {
		t := float64(i) / float64(genRate)
		var v float64
		for _, f := range freqs {
			v += genToneLevel / float64(len(freqs)) * math.Sin(2.0*math.Pi*f*t)
		}
		v += genNoise * (rng.Float64()*2.0 - 1.0)
		samples[i] = v
	}

	return iosignal.Save(outputFile, &iosignal.Signal{SampleRate: uint32(genRate), Samples: samples})
}
