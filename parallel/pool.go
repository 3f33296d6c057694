package parallel

import (
	"runtime"
	"sync"
)

type (
	WorkerFunc func(func())
	WaitFunc   func()
)

// Pool spreads jobs over a fixed set of goroutines. A pool of one runs every
// job inline on the caller's goroutine.
type Pool struct {
	wg      sync.WaitGroup
	jobs    chan func()
	workers int
	stop    func()
}

func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{workers: numWorkers, stop: func() {}}
	if numWorkers == 1 {
		return p
	}

	p.jobs = make(chan func(), numWorkers)
	for i := 0; i < numWorkers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for f := range p.jobs {
				f()
			}
		}()
	}
	p.stop = sync.OnceFunc(func() { close(p.jobs) })

	return p
}

func (p *Pool) Workers() int {
	return p.workers
}

// Do queues f, blocking while every worker is busy and the queue is full.
// It must not be called after Wait.
func (p *Pool) Do(f func()) {
	if p.jobs == nil {
		f()
		return
	}
	p.jobs <- f
}

// Wait stops accepting jobs and returns once the queued ones have finished.
func (p *Pool) Wait() {
	p.stop()
	p.wg.Wait()
}
