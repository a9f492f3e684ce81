// Package parallel provides the data-parallel execution layer for the
// softpipe rendering pipeline.
//
// Pipeline stages are expressed as kernels over contiguous index ranges
// (one logical worker per vertex, index, triangle, or pixel). The pool maps
// those ranges onto fixed-size groups executed by a bounded set of
// goroutines, and every dispatch call returns only after the whole range
// has been processed — the dispatch boundary is the pipeline's inter-stage
// barrier.
//
// Thread safety: WorkerPool is safe for concurrent use.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// GroupSize is the default number of indices handed to one worker group per
// dispatch. Large enough to amortize scheduling, small enough to balance
// skewed workloads (a few large triangles among many small ones).
const GroupSize = 256

// WorkerPool executes kernels across a fixed set of worker goroutines.
//
// Each worker owns a queue and steals from its peers when idle, which keeps
// all cores busy when group costs are uneven.
type WorkerPool struct {
	workers int

	// queues holds one work queue per worker.
	queues []chan func()

	// done signals workers to stop.
	done chan struct{}

	wg      sync.WaitGroup
	running atomic.Bool
}

// NewWorkerPool creates a pool with the given number of workers.
// If workers <= 0, GOMAXPROCS is used. Workers start immediately.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := workers * 4
	if queueSize < 8 {
		queueSize = 8
	}

	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range p.queues {
		p.queues[i] = make(chan func(), queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker(i)
	}
	return p
}

// worker is the main loop for each worker goroutine.
func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	mine := p.queues[id]
	for {
		select {
		case <-p.done:
			p.drain(mine)
			return

		case work := <-mine:
			if work != nil {
				work()
			}

		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
			} else {
				select {
				case <-p.done:
					p.drain(mine)
					return
				case work := <-mine:
					if work != nil {
						work()
					}
				}
			}
		}
	}
}

// drain executes all remaining work in a queue.
func (p *WorkerPool) drain(queue chan func()) {
	for {
		select {
		case work := <-queue:
			if work != nil {
				work()
			}
		default:
			return
		}
	}
}

// steal attempts to take work from another worker's queue.
func (p *WorkerPool) steal(myID int) func() {
	for i := 0; i < p.workers; i++ {
		if i == myID {
			continue
		}
		select {
		case work := <-p.queues[i]:
			return work
		default:
		}
	}
	return nil
}

// ExecuteAll distributes work items across workers and waits for all of
// them to complete. If the pool is closed, this is a no-op.
func (p *WorkerPool) ExecuteAll(work []func()) {
	if len(work) == 0 || !p.running.Load() {
		return
	}

	var barrier sync.WaitGroup
	barrier.Add(len(work))

	for i, fn := range work {
		workerID := i % p.workers
		workFn := fn

		wrapped := func() {
			defer barrier.Done()
			workFn()
		}

		select {
		case p.queues[workerID] <- wrapped:
		case <-p.done:
			barrier.Done()
		}
	}

	barrier.Wait()
}

// Range runs kernel over every index in [0, n), split into groups of
// GroupSize consecutive indices. It returns once the full range has been
// processed; callers rely on that as a stage barrier.
func (p *WorkerPool) Range(n int, kernel func(i int)) {
	p.RangeGroups(n, GroupSize, func(start, end int) {
		for i := start; i < end; i++ {
			kernel(i)
		}
	})
}

// RangeGroups runs kernel over [0, n) in groups of the given size, passing
// each group's [start, end) bounds. A group size <= 0 falls back to
// GroupSize. Like Range, it blocks until the whole range is done.
func (p *WorkerPool) RangeGroups(n, group int, kernel func(start, end int)) {
	if n <= 0 || !p.running.Load() {
		return
	}
	if group <= 0 {
		group = GroupSize
	}

	groups := (n + group - 1) / group
	work := make([]func(), groups)
	for g := 0; g < groups; g++ {
		start := g * group
		end := start + group
		if end > n {
			end = n
		}
		work[g] = func() { kernel(start, end) }
	}
	p.ExecuteAll(work)
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int { return p.workers }

// IsRunning reports whether the pool is still accepting work.
func (p *WorkerPool) IsRunning() bool { return p.running.Load() }

// Close gracefully shuts down the pool: it stops accepting new dispatches,
// finishes queued work, and joins all workers. Safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}
