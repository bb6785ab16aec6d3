package field

import (
	"runtime"
	"sync"
)

// parallelThreshold is the minimum pixel count to use parallel
// evaluation. Below this, single-threaded is faster due to goroutine
// overhead.
const parallelThreshold = 4096

// parallelFor splits [0, n) into one contiguous chunk per worker and
// runs body over each chunk, joining before it returns. Chunks are
// disjoint, so bodies may write their own output slots without locks.
func parallelFor(n int, body func(start, end int)) {
	if n < parallelThreshold {
		body(0, n)
		return
	}

	numWorkers := runtime.GOMAXPROCS(0)
	chunkSize := (n + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			body(start, end)
		}(start, end)
	}
	wg.Wait()
}

// Evaluate fills a w x h field by calling fn once per pixel, in
// parallel. fn must be pure with respect to shared state: it may read
// prebuilt tables but must not mutate anything. Output is row-major by
// pixel index regardless of scheduling.
func Evaluate(w, h int, fn func(x, y int) float32) (*Field, error) {
	f, err := New(w, h)
	if err != nil {
		return nil, err
	}

	parallelFor(len(f.Data), func(start, end int) {
		for i := start; i < end; i++ {
			f.Data[i] = fn(i%w, i/w)
		}
	})

	return f, nil
}
