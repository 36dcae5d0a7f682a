package middleware

import (
	"context"
	"fmt"
	"sync"

	domrepo "CropCast/internal/domain/repository"
)

// ComputePool runs CPU-bound jobs (model fits, forecasts) on a fixed set of
// workers so concurrent requests don't serialize behind one another's
// training time and request dispatch stays responsive. Jobs carry no state
// across requests; the pool only bounds parallelism.
type ComputePool struct {
	metrics   domrepo.Metrics
	workers   int
	queueSize int
	jobs      chan func()
	stopCh    chan struct{}
	started   bool
	mu        sync.Mutex
	wg        sync.WaitGroup
}

type PoolOption func(*ComputePool)

// WithWorkers sets the number of concurrent workers.
func WithWorkers(n int) PoolOption {
	return func(p *ComputePool) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithQueueSize sets the pending-job buffer.
func WithQueueSize(n int) PoolOption {
	return func(p *ComputePool) {
		if n > 0 {
			p.queueSize = n
		}
	}
}

// NewComputePool creates a pool; call Start before submitting work.
func NewComputePool(metrics domrepo.Metrics, opts ...PoolOption) *ComputePool {
	p := &ComputePool{
		metrics:   metrics,
		workers:   4,
		queueSize: 64,
		stopCh:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.jobs = make(chan func(), p.queueSize)
	return p
}

// Start launches the workers.
func (p *ComputePool) Start() {
	p.mu.Lock()
	if p.started {
		p.mu.Unlock()
		return
	}
	p.started = true
	p.mu.Unlock()

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-p.stopCh:
					return
				case job := <-p.jobs:
					job()
					if p.metrics != nil {
						p.metrics.RecordQueueDepth(len(p.jobs))
					}
				}
			}
		}()
	}
}

// Stop stops the workers after in-flight jobs finish.
func (p *ComputePool) Stop() {
	p.mu.Lock()
	if !p.started {
		p.mu.Unlock()
		return
	}
	p.started = false
	p.mu.Unlock()

	close(p.stopCh)
	p.wg.Wait()
}

// Do submits fn and waits for it to complete. It returns early with the
// context's error if the caller gives up while the job is queued or running;
// the job itself is not interrupted once a worker picks it up.
func (p *ComputePool) Do(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	job := func() {
		defer close(done)
		fn()
	}

	select {
	case p.jobs <- job:
		if p.metrics != nil {
			p.metrics.RecordQueueDepth(len(p.jobs))
		}
	case <-p.stopCh:
		return fmt.Errorf("compute pool stopped")
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
