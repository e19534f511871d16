// Package parallel provides bounded fork-join helpers for data-parallel
// loops over row indices.
package parallel

import (
	"runtime"
	"sync"
)

// Ranges splits [0, n) into contiguous chunks, one per available CPU
// core, runs fn on each chunk in its own goroutine, and returns once
// every chunk has finished. Chunks are disjoint, so fn may write to
// per-index slots without further synchronization.
func Ranges(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	workers := min(runtime.NumCPU(), n)
	chunk := n / workers
	rem := n % workers

	var wg sync.WaitGroup
	start := 0
	for i := 0; i < workers; i++ {
		// The first rem chunks absorb the remainder, one row each.
		end := start + chunk
		if i < rem {
			end++
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
		start = end
	}
	wg.Wait()
}

// RangesThreshold runs fn(0, n) inline on the calling goroutine when n is
// at or below threshold, and dispatches to Ranges otherwise.
func RangesThreshold(n, threshold int, fn func(start, end int)) {
	if n <= threshold {
		fn(0, n)
		return
	}
	Ranges(n, fn)
}
