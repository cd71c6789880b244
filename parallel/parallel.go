// Package parallel provides the Parallelizer capability: parallel_for and
// parallel_calls primitives with a fixed thread budget and a
// reentrancy-safe token so nested parallel regions never oversubscribe the
// machine. Two concrete implementations are provided: FixedThreads (an
// explicit worker-budget pool) and Omp (a GOMAXPROCS-driven delegate
// standing in for an OpenMP-style work-sharing region). A Sequential no-op
// implementation is provided for callers that want the single-threaded
// code path without a second set of functions.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Parallelizer schedules bounded concurrent work. A single instance may be
// used concurrently from multiple goroutines; two independent instances
// share no state.
type Parallelizer interface {
	// ParallelFor applies f(i) for every i in [lo, hi). Blocks until all
	// calls complete. f must not be called with overlapping i values more
	// than once; ordering across i is unspecified.
	ParallelFor(lo, hi int, f func(i int))
	// ParallelCalls runs every function in fs, each at most once, in any
	// order, and returns only once all have completed. Tasks must be
	// independent: data races between them are the caller's responsibility.
	ParallelCalls(fs []func())
}

// Sequential is the trivial Parallelizer: every call runs inline on the
// caller's goroutine. Useful as the "sequential variant" of any algorithm
// written against the Parallelizer interface.
type Sequential struct{}

func (Sequential) ParallelFor(lo, hi int, f func(i int)) {
	for i := lo; i < hi; i++ {
		f(i)
	}
}

func (Sequential) ParallelCalls(fs []func()) {
	for _, f := range fs {
		f()
	}
}

// FixedThreads is a Parallelizer bounded to at most Limit concurrently
// running worker goroutines (the caller's own goroutine counts as one of
// them). Nested calls on the same instance cooperate through an atomic
// claim counter: an inner parallel region entered while the outer region
// has already claimed the full budget sees no threads left to claim and
// simply runs on the goroutine that entered it.
type FixedThreads struct {
	Limit int32
	// claimed tracks threads currently in use, initialized to 1 to account
	// for the caller. Invariant: 1 <= claimed <= Limit at all times outside
	// the claim/release critical section.
	claimed int32
}

// NewFixedThreads constructs a FixedThreads bounded to limit concurrent
// workers. limit <= 0 defaults to runtime.NumCPU().
func NewFixedThreads(limit int) *FixedThreads {
	if limit <= 0 {
		limit = runtime.NumCPU()
	}
	return &FixedThreads{Limit: int32(limit), claimed: 1}
}

// claim reserves as many additional threads as are available right now,
// via a lock-free compare-and-swap loop so concurrent siblings entering a
// parallel region on the same instance each get a consistent view. Returns
// the number of additional threads claimed (0 means "run inline").
func (p *FixedThreads) claim() int {
	for {
		c := atomic.LoadInt32(&p.claimed)
		avail := p.Limit - c
		if avail <= 0 {
			return 0
		}
		if atomic.CompareAndSwapInt32(&p.claimed, c, p.Limit) {
			return int(avail)
		}
	}
}

func (p *FixedThreads) release(claimed int) {
	atomic.AddInt32(&p.claimed, -int32(claimed))
}

// ParallelFor partitions [lo, hi) into T = 1 + claimed contiguous blocks
// (the caller's own block plus one per claimed worker): each gets
// length/T items, and the first length%T blocks get one extra item. The
// last block never gets the remainder.
func (p *FixedThreads) ParallelFor(lo, hi int, f func(i int)) {
	length := hi - lo
	if length <= 0 {
		return
	}
	claimed := p.claim()
	defer p.release(claimed)

	workers := claimed + 1
	if workers <= 1 {
		for i := lo; i < hi; i++ {
			f(i)
		}
		return
	}

	base := length / workers
	rem := length % workers

	var wg sync.WaitGroup
	start := lo
	for w := 0; w < workers; w++ {
		size := base
		if w < rem {
			size++
		}
		end := start + size
		if w == workers-1 {
			// The last worker runs on the caller's own goroutine.
			for i := start; i < end; i++ {
				f(i)
			}
		} else {
			wg.Add(1)
			s, e := start, end
			go func() {
				defer wg.Done()
				for i := s; i < e; i++ {
					f(i)
				}
			}()
		}
		start = end
	}
	wg.Wait()
}

// ParallelCalls runs fs on errgroup goroutines, at most 1 + claimed at a
// time. The caller does not run tasks itself: it only blocks until all of
// them finish. errgroup already gives "each task runs at most once,
// return only after all complete" for free.
func (p *FixedThreads) ParallelCalls(fs []func()) {
	if len(fs) == 0 {
		return
	}
	claimed := p.claim()
	defer p.release(claimed)

	workers := claimed + 1
	if workers <= 1 || len(fs) == 1 {
		for _, f := range fs {
			f()
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for _, f := range fs {
		f := f
		g.Go(func() error {
			f()
			return nil
		})
	}
	_ = g.Wait()
}

// Omp is a Parallelizer that always claims runtime.GOMAXPROCS(0) worker
// threads for every region, the way an OpenMP `#pragma omp parallel`
// work-sharing construct spins up its full team regardless of nesting
// depth. There is no cgo/OpenMP runtime available here, so the team is
// modeled as fresh goroutines per call: a WaitGroup-joined block partition
// for ParallelFor, an errgroup for ParallelCalls.
type Omp struct{}

func (Omp) ParallelFor(lo, hi int, f func(i int)) {
	length := hi - lo
	if length <= 0 {
		return
	}
	workers := runtime.GOMAXPROCS(0)
	if workers > length {
		workers = length
	}
	if workers <= 1 {
		for i := lo; i < hi; i++ {
			f(i)
		}
		return
	}
	base := length / workers
	rem := length % workers

	var wg sync.WaitGroup
	start := lo
	for w := 0; w < workers; w++ {
		size := base
		if w < rem {
			size++
		}
		end := start + size
		s, e := start, end
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}()
		start = end
	}
	wg.Wait()
}

func (Omp) ParallelCalls(fs []func()) {
	if len(fs) == 0 {
		return
	}
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, f := range fs {
		f := f
		g.Go(func() error {
			f()
			return nil
		})
	}
	_ = g.Wait()
}
