package utils

import (
	"runtime"
	"sync"
)

// ParallelRange executes fn for each i in [start,end), splitting the range
// across available CPUs. fn must not touch state owned by another index.
func ParallelRange(start, end int, fn func(i int)) {
	var (
		total   = end - start
		workers = runtime.GOMAXPROCS(0)
	)
	if total <= 0 {
		return
	}
	if workers > total {
		workers = total
	}
	var wg sync.WaitGroup
	chunk := (total + workers - 1) / workers
	for w := 0; w < workers; w++ {
		s := start + w*chunk
		e := s + chunk
		if e > end {
			e = end
		}
		if s >= end {
			break
		}
		wg.Add(1)
		go func(ss, ee int) {
			defer wg.Done()
			for i := ss; i < ee; i++ {
				fn(i)
			}
		}(s, e)
	}
	wg.Wait()
}
