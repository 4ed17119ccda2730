package metrics_test

import (
	"math"
	"testing"

	"github.com/cwbudde/go-hht/internal/metrics"
)

func TestRMS(t *testing.T) {
	t.Parallel()

	got := metrics.RMS([]float64{1, -1, 1, -1})
	if math.Abs(got-1.0) > 1e-12 {
		t.Fatalf("RMS = %.12f, want 1.0", got)
	}
	if metrics.RMS(nil) != 0 {
		t.Fatalf("RMS(nil) = %v, want 0", metrics.RMS(nil))
	}
}

func TestPowerRatioDB(t *testing.T) {
	t.Parallel()

	got := metrics.PowerRatioDB(1.0, 100.0)
	want := -20.0
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("PowerRatioDB = %.9f, want %.9f", got, want)
	}

	if got := metrics.PowerRatioDB(0, 100.0); !math.IsInf(got, -1) {
		t.Fatalf("PowerRatioDB(0, ...) = %v, want -Inf", got)
	}
	if got := metrics.PowerRatioDB(5, 0); got != 0 {
		t.Fatalf("PowerRatioDB(part, 0) = %v, want 0", got)
	}
}
