package workerpool_test

import (
	"sync/atomic"
	"testing"

	"github.com/cwbudde/go-hht/pkg/hht/internal/workerpool"
)

func TestParallel_VisitsEveryIndexExactlyOnce(t *testing.T) {
	t.Parallel()

	const n = 1000
	var hits [n]int32
	workerpool.Parallel(n, func(i int) {
		atomic.AddInt32(&hits[i], 1)
	})
	for i, h := range hits {
		if h != 1 {
			t.Fatalf("hits[%d] = %d, want 1", i, h)
		}
	}
}

func TestParallel_ZeroAndNegativeAreNoOps(t *testing.T) {
	t.Parallel()

	called := false
	workerpool.Parallel(0, func(int) { called = true })
	workerpool.Parallel(-1, func(int) { called = true })
	if called {
		t.Fatalf("fn should not be called for n <= 0")
	}
}

func TestPair_RunsBothAndWaits(t *testing.T) {
	t.Parallel()

	var a, b bool
	workerpool.Pair(func() { a = true }, func() { b = true })
	if !a || !b {
		t.Fatalf("a=%v b=%v, want both true", a, b)
	}
}
