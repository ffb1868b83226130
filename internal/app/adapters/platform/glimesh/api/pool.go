package api

import (
	"errors"
	"sync"
)

// Pool bounds the per-identity fan-out inside a batch.
type Pool struct {
	wg       sync.WaitGroup
	tasks    chan func()
	shutdown chan struct{}
}

func NewPool(workerCount, queueSize int) *Pool {
	p := &Pool{
		tasks:    make(chan func(), queueSize),
		shutdown: make(chan struct{}),
	}

	for range workerCount {
		p.wg.Add(1)
		go p.worker()
	}

	return p
}

func (p *Pool) Submit(task func()) error {
	select {
	case p.tasks <- task:
		return nil
	default:
		return errors.New("worker pool queue is full")
	}
}

func (p *Pool) Stop() {
	close(p.tasks)
	p.wg.Wait()
	close(p.shutdown)
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case task, ok := <-p.tasks:
			if !ok {
				return
			}
			task()
		case <-p.shutdown:
			return
		}
	}
}
