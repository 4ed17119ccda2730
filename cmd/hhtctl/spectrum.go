package main

import (
	"fmt"
	"math"

	"github.com/cwbudde/go-hht/internal/iosignal"
	"github.com/cwbudde/go-hht/pkg/hht"
	"github.com/spf13/cobra"
)

var spectrumTimestep float64

var spectrumCmd = &cobra.Command{
	Use:   "spectrum [input.wav]",
	Short: "Decompose and print a Hilbert spectrum energy report",
	Args:  cobra.ExactArgs(1),
	RunE:  runSpectrum,
}

func init() {
	spectrumCmd.Flags().Float64Var(&spectrumTimestep, "timestep", 0, "override the timestep implied by the WAV sample rate (seconds)")
}

func runSpectrum(cmd *cobra.Command, args []string) error {
	sig, err := iosignal.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to read input WAV: %w", err)
	}

	dt := 1.0 / float64(sig.SampleRate)
	if spectrumTimestep > 0 {
		dt = spectrumTimestep
	}

	d, err := hht.Decompose(sig.TimeAxis(), sig.Samples, hht.EMDOptions{MaxIMFs: maxIMFs})
	if err != nil {
		return fmt.Errorf("decomposition failed: %w", err)
	}

	hs, err := hht.NewHilbertSpectrum(d.IMFs, dt)
	if err != nil {
		return fmt.Errorf("spectral analysis failed: %w", err)
	}

	fmt.Printf("IMF  RMS         Energy(dB)  Fraction\n")
	for _, e := range hs.EnergyReport() {
		fmt.Printf("%-4d %-11.6f %-11s %.4f\n", e.Index, e.RMS, formatDB(e.EnergyDB), e.EnergyFrac)
	}

	return nil
}

func formatDB(db float64) string {
	if math.IsInf(db, -1) {
		return "-Inf"
	}
	return fmt.Sprintf("%.2f", db)
}
