package main

import (
	"fmt"

	"github.com/cwbudde/go-hht/internal/iosignal"
	"github.com/cwbudde/go-hht/pkg/hht"
	"github.com/spf13/cobra"
)

var (
	decomposeEnsembleCount int
	decomposeNoiseSD       float64
)

var decomposeCmd = &cobra.Command{
	Use:   "decompose [input.wav]",
	Short: "Run EMD (or, with --ensemble, EEMD) and print per-IMF stats",
	Args:  cobra.ExactArgs(1),
	RunE:  runDecompose,
}

func init() {
	decomposeCmd.Flags().BoolVar(&ensemble, "ensemble", false, "run noise-assisted EEMD instead of plain EMD")
	decomposeCmd.Flags().IntVar(&decomposeEnsembleCount, "ensemble-count", 100, "EEMD trial count")
	decomposeCmd.Flags().Float64Var(&decomposeNoiseSD, "noise-sd", 0.2, "EEMD noise standard deviation")
}

func runDecompose(cmd *cobra.Command, args []string) error {
	sig, err := iosignal.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to read input WAV: %w", err)
	}
	xs := sig.TimeAxis()

	if ensemble {
		d, err := hht.EnsembleDecompose(xs, sig.Samples, hht.EEMDOptions{
			EnsembleCount: decomposeEnsembleCount,
			NoiseSD:       decomposeNoiseSD,
			MaxIMFs:       maxIMFs,
		})
		if err != nil {
			return fmt.Errorf("ensemble decomposition failed: %w", err)
		}
		printIMFStats(d.IMFs, d.ActualCounts)
		return nil
	}

	d, err := hht.Decompose(xs, sig.Samples, hht.EMDOptions{MaxIMFs: maxIMFs})
	if err != nil {
		return fmt.Errorf("decomposition failed: %w", err)
	}
	printIMFStats(d.IMFs, nil)
	return nil
}

func printIMFStats(imfs [][]float64, counts []int) {
	fmt.Printf("Extracted %d IMFs\n\n", len(imfs))
	fmt.Printf("IMF  Samples   Trials\n")
	for i, imf := range imfs {
		trials := "-"
		if counts != nil {
			trials = fmt.Sprintf("%d", counts[i])
		}
		fmt.Printf("%-4d %-9d %s\n", i, len(imf), trials)
	}
}
