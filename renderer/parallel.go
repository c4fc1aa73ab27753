package renderer

import (
	"runtime"
	"sync"
)

// minChunk is the smallest range worth handing to a goroutine.
const minChunk = 16

// parallelFor splits [0, n) into contiguous chunks and runs fn on each
// chunk concurrently. Chunks are disjoint, so fn may write to slot i of a
// shared buffer without locking. workers <= 0 means GOMAXPROCS.
func parallelFor(n, workers int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers <= 1 {
		fn(0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}
