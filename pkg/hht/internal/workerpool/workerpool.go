// Package workerpool provides the single data-parallelism primitive used
// throughout the HHT pipeline: a range-splitting parallel-for over a bounded
// number of goroutines, joined before returning. It is modeled on the
// goroutine/sync.WaitGroup/runtime.NumCPU split used by the convolution
// worker in the module's reference FFT library, generalized so every stage
// of the pipeline (FFT butterflies, envelope spline fits, spectral analysis
// passes, EEMD trials, per-IMF analyses) can share one implementation.
package workerpool

import (
	"runtime"
	"sync"
)

// Parallel splits the index range [0, n) into contiguous chunks, one per
// worker, and runs fn over each chunk concurrently. It blocks until every
// worker has finished. With n <= 1 or a single available CPU, fn runs
// sequentially on the calling goroutine so single-threaded behaviour is
// identical to the parallel path.
func Parallel(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * chunk
		if start >= n {
			break
		}
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// Pair runs a and b concurrently and waits for both to finish. Used for the
// two-task splits the algorithm calls for explicitly: upper/lower envelope
// fitting, and the amplitude vs. phase/frequency passes of a spectral
// analysis.
func Pair(a, b func()) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		a()
	}()
	go func() {
		defer wg.Done()
		b()
	}()
	wg.Wait()
}
