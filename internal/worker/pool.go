package worker

import (
	"context"
	"sync"
	"time"
)

type Task func(ctx context.Context) error

type Result struct {
	Err error
}

// Pool runs submitted tasks on a fixed set of workers, optionally rate
// limited.
type Pool struct {
	workers int
	tasks   chan Task
	wg      sync.WaitGroup
	mu      sync.RWMutex
	rate    <-chan time.Time
	ticker  *time.Ticker
}

func NewPool(workers, buffer int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	if buffer < 0 {
		buffer = 0
	}
	return &Pool{
		workers: workers,
		tasks:   make(chan Task, buffer),
	}
}

func (p *Pool) SetRateLimit(rps int) {
	if p == nil {
		return
	}
	p.mu.Lock()
	if p.ticker != nil {
		p.ticker.Stop()
		p.ticker = nil
		p.rate = nil
	}
	p.mu.Unlock()
	if rps <= 0 {
		return
	}
	t := time.NewTicker(time.Second / time.Duration(rps))
	p.mu.Lock()
	p.ticker = t
	p.rate = t.C
	p.mu.Unlock()
}

func (p *Pool) Submit(t Task) {
	if p == nil || t == nil {
		return
	}
	p.tasks <- t
}

// Close stops accepting tasks; workers drain what was already submitted.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	if p.ticker != nil {
		p.ticker.Stop()
		p.ticker = nil
		p.rate = nil
	}
	p.mu.Unlock()
	close(p.tasks)
}

// Run starts the workers and returns a channel carrying one Result per
// completed task. The channel closes when all workers exit.
func (p *Pool) Run(ctx context.Context) <-chan Result {
	results := make(chan Result, cap(p.tasks)+p.workers)

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for task := range p.tasks {
				p.mu.RLock()
				rate := p.rate
				p.mu.RUnlock()
				if rate != nil {
					select {
					case <-rate:
					case <-ctx.Done():
						results <- Result{Err: ctx.Err()}
						continue
					}
				}

				select {
				case <-ctx.Done():
					results <- Result{Err: ctx.Err()}
					continue
				default:
				}

				results <- Result{Err: task(ctx)}
			}
		}()
	}

	go func() {
		p.wg.Wait()
		close(results)
	}()

	return results
}
