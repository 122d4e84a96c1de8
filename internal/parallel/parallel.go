// Package parallel fans independent elementwise loops out over the
// available CPUs.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls whether and how loops are split across goroutines.
type Config struct {
	Enabled      bool // Run chunks on separate goroutines.
	NumWorkers   int  // Upper bound on goroutines per loop.
	MinChunkSize int  // Below this many items the loop stays sequential.
}

// DefaultConfig sizes the pool to the machine.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 1 << 12,
	}
}

// For executes f(i) for every i in [0, n). Iterations must be independent;
// the schedule is unspecified. Small loops run on the calling goroutine.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || n < cfg.MinChunkSize {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunk := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}
