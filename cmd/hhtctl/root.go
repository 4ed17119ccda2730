package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose  bool
	maxIMFs  int
	ensemble bool
)

var rootCmd = &cobra.Command{
	Use:   "hhtctl",
	Short: "Hilbert-Huang Transform demonstration tool",
	Long: `hhtctl

Generates synthetic test signals, decomposes sampled signals into intrinsic
mode functions via Empirical Mode Decomposition (or its noise-assisted
ensemble variant), and reports the resulting Hilbert spectrum.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().IntVar(&maxIMFs, "max-imfs", 0, "cap on extracted IMFs (0 = unlimited)")
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(decomposeCmd)
	rootCmd.AddCommand(spectrumCmd)
}
