// Package pool schedules batches of independent jobs over a fixed set of
// worker goroutines.
package pool

import (
	"runtime"
	"sync"
)

// Pool owns a fixed number of workers. A nil *Pool is valid and runs all
// jobs on the calling goroutine.
type Pool struct {
	jobs    chan func()
	workers sync.WaitGroup
	size    int
}

// NewPool creates a Pool with the given number of workers.
// A count of 0 selects one worker per CPU.
func NewPool(count int) *Pool {
	if count <= 0 {
		count = runtime.NumCPU()
	}
	p := &Pool{
		jobs: make(chan func()),
		size: count,
	}
	p.workers.Add(count)
	for i := 0; i < count; i++ {
		go func() {
			defer p.workers.Done()
			for job := range p.jobs {
				job()
			}
		}()
	}
	return p
}

// TearDown stops the workers. The pool must not be used afterwards.
func (p *Pool) TearDown() {
	close(p.jobs)
	p.workers.Wait()
}

// Parallelize runs f(0), …, f(count−1) on the pool and returns the results
// in argument order.
func (p *Pool) Parallelize(count int, f func(int) interface{}) []interface{} {
	results := make([]interface{}, count)
	if p == nil {
		for i := 0; i < count; i++ {
			results[i] = f(i)
		}
		return results
	}

	var wg sync.WaitGroup
	wg.Add(count)
	for i := 0; i < count; i++ {
		i := i
		p.jobs <- func() {
			defer wg.Done()
			results[i] = f(i)
		}
	}
	wg.Wait()
	return results
}

// Search runs f repeatedly on all workers until count non-nil results have
// been produced, and returns those results. f must be safe for concurrent
// use when the pool is non-nil.
func (p *Pool) Search(count int, f func() interface{}) []interface{} {
	results := make([]interface{}, count)
	if p == nil {
		for i := range results {
			for results[i] == nil {
				results[i] = f()
			}
		}
		return results
	}

	found := make(chan interface{}, count)
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(p.size)
	for i := 0; i < p.size; i++ {
		p.jobs <- func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
				}
				if r := f(); r != nil {
					select {
					case found <- r:
					case <-done:
						return
					}
				}
			}
		}
	}

	for i := range results {
		results[i] = <-found
	}
	close(done)
	wg.Wait()
	return results
}
