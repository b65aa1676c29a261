// SPDX-License-Identifier: MIT

// Package parallel provides the bounded fan-out used by row-parallel kernels
// and batched forward passes.
package parallel

import (
	"runtime"
	"sync"

	"github.com/klauspost/cpuid/v2"
)

// DefaultLimit returns the number of logical cores reported by cpuid, falling
// back to runtime.NumCPU when the CPU could not be identified.
func DefaultLimit() int {
	if n := cpuid.CPU.LogicalCores; n > 0 {
		return n
	}

	return runtime.NumCPU()
}

// Limit normalizes a requested worker count: values <= 0 mean DefaultLimit.
func Limit(workers int) int {
	if workers <= 0 {
		return DefaultLimit()
	}

	return workers
}

// ForEach executes body(i) for i in [0, length) with at most limit concurrent
// goroutines and returns once every call has finished.
// A limit <= 0 falls back to 1.
func ForEach(length, limit int, body func(i int)) {
	if limit <= 0 {
		limit = 1
	}
	if length <= 0 {
		return
	}
	// Single worker: stay on the caller goroutine.
	if limit == 1 || length == 1 {
		for i := 0; i < length; i++ {
			body(i)
		}
		return
	}

	sem := make(chan struct{}, limit)
	var wg sync.WaitGroup
	wg.Add(length)

	for i := 0; i < length; i++ {
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			body(i)
		}(i)
	}

	wg.Wait()
}

// Chunks splits [0, n) into at most parts contiguous half-open ranges of
// near-equal size. Returned bounds are ordered and cover [0, n) exactly.
func Chunks(n, parts int) [][2]int {
	if n <= 0 {
		return nil
	}
	if parts <= 0 {
		parts = 1
	}
	if parts > n {
		parts = n
	}

	out := make([][2]int, 0, parts)
	size, rem := n/parts, n%parts
	lo := 0
	for p := 0; p < parts; p++ {
		hi := lo + size
		if p < rem {
			hi++
		}
		out = append(out, [2]int{lo, hi})
		lo = hi
	}

	return out
}
