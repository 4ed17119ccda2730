// Package iosignal loads and saves single-channel sampled signals as WAV
// files, adapted from the teacher's internal/wav package (multi-channel
// decode/encode I/O) down to the mono case the HHT pipeline operates on.
package iosignal

import (
	"fmt"
	"io"
	"os"

	"github.com/youpy/go-wav"
)

// Signal is a single mono sampled signal and its sample rate.
type Signal struct {
	SampleRate uint32
	Samples    []float64
}

// TimeAxis returns a uniformly spaced time axis matching Samples, one
// sample per 1/SampleRate seconds.
func (s *Signal) TimeAxis() []float64 {
	xs := make([]float64, len(s.Samples))
	dt := 1.0 / float64(s.SampleRate)
	for i := range xs {
		xs[i] = float64(i) * dt
	}
	return xs
}

// Load reads a mono WAV file into a Signal.
func Load(filename string) (*Signal, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open WAV file: %w", err)
	}
	defer file.Close()

	reader := wav.NewReader(file)
	format, err := reader.Format()
	if err != nil {
		return nil, fmt.Errorf("failed to read WAV format: %w", err)
	}
	if format.NumChannels != 1 {
		return nil, fmt.Errorf("input must be mono, got %d channels", format.NumChannels)
	}

	var samples []float64
	for {
		chunk, err := reader.ReadSamples()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read samples: %w", err)
		}
		for _, sample := range chunk {
			samples = append(samples, reader.FloatValue(sample, 0))
		}
	}

	return &Signal{SampleRate: format.SampleRate, Samples: samples}, nil
}

// Save writes sig to filename as a mono 16-bit PCM WAV file, clamping
// samples to [-1, 1] as the teacher's writer does.
func Save(filename string, sig *Signal) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create WAV file: %w", err)
	}
	defer file.Close()

	writer := wav.NewWriter(file, uint32(len(sig.Samples)), 1, sig.SampleRate, 16)
	for _, v := range sig.Samples {
		if v > 1.0 {
			v = 1.0
		} else if v < -1.0 {
			v = -1.0
		}
		sample := wav.Sample{}
		sample.Values[0] = int(v * 32767.0)
		if err := writer.WriteSamples([]wav.Sample{sample}); err != nil {
			return fmt.Errorf("failed to write samples: %w", err)
		}
	}
	return nil
}
