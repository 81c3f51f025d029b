// Copyright 2025 The go-sortlab Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for the data-parallel
// chores around a benchmark run: filling large input arrays and verifying
// sorted output. Sort calls themselves never run on the pool.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelForBatched(len(data), 1<<16, func(start, end int) {
//	    fill(data[start:end])
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of goroutines fed through a channel.
// Workers are spawned once by New and exit on Close.
type Pool struct {
	numWorkers int
	workC      chan task

	// mu guards closed; senders hold the read lock so Close cannot close
	// workC while a call is still enqueueing.
	mu     sync.RWMutex
	closed bool
}

type task struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers workers.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan task, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for t := range p.workC {
		t.fn()
		t.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers after pending work completes.
// Calling Close multiple times is safe, also concurrently with in-flight
// calls. A closed pool still accepts calls and runs them on the calling
// goroutine.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.workC)
}

// ParallelFor splits [0, n) into one contiguous chunk per worker and calls
// fn(start, end) for each chunk. Blocks until every chunk is done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	p.mu.RLock()
	if workers == 1 || p.closed {
		p.mu.RUnlock()
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		p.workC <- task{
			fn:      func() { fn(start, end) },
			barrier: &wg,
		}
	}
	p.mu.RUnlock()
	wg.Wait()
}

// ParallelForBatched calls fn for consecutive batches of batchSize indices
// (the last may be shorter). Batches are claimed atomically, so the batch
// boundaries depend only on n and batchSize, never on the worker count.
func (p *Pool) ParallelForBatched(n, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if batchSize <= 0 {
		batchSize = 1
	}

	numBatches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, numBatches)

	p.mu.RLock()
	if workers == 1 || p.closed {
		p.mu.RUnlock()
		for start := 0; start < n; start += batchSize {
			fn(start, min(start+batchSize, n))
		}
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- task{
			fn: func() {
				for {
					start := int(next.Add(1)-1) * batchSize
					if start >= n {
						return
					}
					fn(start, min(start+batchSize, n))
				}
			},
			barrier: &wg,
		}
	}
	p.mu.RUnlock()
	wg.Wait()
}

// All reports whether pred holds for every chunk of [0, n).
// It is ParallelFor with an AND over the chunk results; an empty range
// is vacuously true. Chunks already running are not interrupted when
// another chunk fails.
func (p *Pool) All(n int, pred func(start, end int) bool) bool {
	var failed atomic.Bool
	p.ParallelFor(n, func(start, end int) {
		if failed.Load() {
			return
		}
		if !pred(start, end) {
			failed.Store(true)
		}
	})
	return !failed.Load()
}
