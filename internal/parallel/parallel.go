// Package parallel provides parallel execution helpers.
package parallel

import (
	"runtime"
	"sync"
)

// NumWorkers returns the default number of workers for parallel operations.
func NumWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// Resolve maps a configured worker count to an effective one.
// Values <= 0 select NumWorkers. The result never exceeds tasks and is at least 1.
func Resolve(n, tasks int) int {
	if n <= 0 {
		n = NumWorkers()
	}
	if n > tasks {
		n = tasks
	}
	if n < 1 {
		n = 1
	}
	return n
}

// ParallelForDynamic executes fn for indices [start, end) using n workers
// that pull chunks of chunkSize indices from a shared queue. Use it when
// iteration cost varies with the index, such as the rows of a triangular loop.
func ParallelForDynamic(start, end, chunkSize, n int, fn func(i int)) {
	if end <= start {
		return
	}
	if chunkSize < 1 {
		chunkSize = 1
	}
	if n <= 1 {
		for i := start; i < end; i++ {
			fn(i)
		}
		return
	}

	chunks := make(chan [2]int, n)

	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range chunks {
				for i := c[0]; i < c[1]; i++ {
					fn(i)
				}
			}
		}()
	}

	for lo := start; lo < end; lo += chunkSize {
		chunks <- [2]int{lo, min(lo+chunkSize, end)}
	}
	close(chunks)

	wg.Wait()
}
