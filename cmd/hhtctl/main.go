// Command hhtctl is a thin demonstration harness around pkg/hht: it
// generates synthetic test signals, runs EMD/EEMD decomposition, and prints
// a Hilbert spectrum energy report.
package main

func main() {
	Execute()
}
