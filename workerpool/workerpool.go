// Package workerpool provides a persistent, fixed-size worker pool for
// data-parallel loops. Workers are spawned once at construction and reused
// across calls, avoiding per-call goroutine spawn and channel allocation in
// hot evaluation paths.
//
//	pool := workerpool.New(0) // GOMAXPROCS workers
//	defer pool.Close()
//
//	pool.ParallelFor(len(data), func(start, end int) {
//	    process(data[start:end])
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed-size set of persistent worker goroutines. The zero value
// is not usable; construct with New.
type Pool struct {
	workers int
	tasks   chan task
	once    sync.Once
	closed  atomic.Bool
}

type task struct {
	run  func()
	done *sync.WaitGroup
}

// New creates a pool with the given number of workers, spawned immediately.
// workers <= 0 selects GOMAXPROCS.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: workers,
		tasks:   make(chan task, workers),
	}

	for range workers {
		go p.loop()
	}

	return p
}

func (p *Pool) loop() {
	for t := range p.tasks {
		t.run()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.workers
}

// Close shuts the pool down after pending work completes. Safe to call more
// than once. ParallelFor on a closed pool runs sequentially.
func (p *Pool) Close() {
	p.once.Do(func() {
		p.closed.Store(true)
		close(p.tasks)
	})
}

// ParallelFor partitions [0, n) into contiguous chunks, one per worker, and
// blocks until every chunk has been processed. fn receives half-open
// [start, end) ranges; ranges are disjoint and cover [0, n) exactly.
//
// With a single worker, or n smaller than the worker count allows splitting
// usefully, fn runs once on the full range in the calling goroutine.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	if p.closed.Load() {
		fn(0, n)
		return
	}

	workers := min(p.workers, n)
	if workers == 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup

	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)

		wg.Add(1)
		p.tasks <- task{
			run:  func() { fn(start, end) },
			done: &wg,
		}
	}

	wg.Wait()
}
