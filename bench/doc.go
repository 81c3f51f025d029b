// Package bench times the sorting routines and samples process memory
// around each call.
//
// A run generates an input array, samples resident memory, starts a
// stopwatch, calls the sort exactly once, stops the stopwatch and samples
// memory again. Runs are strictly sequential; the worker pool is only used
// to fill inputs and to verify outputs, never while a sort is being timed.
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//
//	mem, _ := bench.NewMemorySampler(bench.MemoryRSS)
//	r := bench.NewRunner(bench.Options{Seed: 1, Verify: true, Memory: mem, Pool: pool})
//	results, err := r.Run(ctx, bench.Plan{
//	    Algorithms: sort.Algorithms(),
//	    Sizes:      []int{1000, 10000},
//	    Patterns:   []bench.Pattern{bench.PatternRandom},
//	})
package bench
