// Package worker runs archive jobs taken off the queue.
package worker

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/okian/teamboard/internal/adapters/mq/queue"
	"github.com/okian/teamboard/pkg/logger"
	"github.com/okian/teamboard/pkg/metrics"
)

// Handler processes one job. A returned error is logged and counted; the job
// is not retried.
type Handler interface {
	Handle(ctx context.Context, j queue.Job) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, j queue.Job) error

// Handle implements Handler.
func (f HandlerFunc) Handle(ctx context.Context, j queue.Job) error { //nolint:gocritic // hugeParam
	return f(ctx, j)
}

// Queue defines how workers receive jobs.
type Queue interface {
	Dequeue(ctx context.Context) <-chan queue.Job
}

// Worker processes jobs using the provided handler.
type Worker interface {
	// Run starts the worker loop until ctx is canceled or the queue drains.
	Run(ctx context.Context)

	// Shutdown stops the worker after the job in flight, if any.
	Shutdown(ctx context.Context) error
}

// InMemoryWorker implements Worker.
type InMemoryWorker struct {
	queue   Queue
	handler Handler
	name    string

	// active is shared with the owning pool, if any.
	active *atomic.Int64

	shutdown chan struct{}
	stopped  atomic.Bool
	done     chan struct{}

	logger logger.Logger
}

// NewInMemoryWorker creates a new worker with configuration options.
func NewInMemoryWorker(q Queue, h Handler, opts ...Option) *InMemoryWorker {
	w := &InMemoryWorker{
		queue:    q,
		handler:  h,
		name:     "worker",
		active:   new(atomic.Int64),
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
		logger:   logger.Get().Named("worker"),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.name != "worker" {
		w.logger = w.logger.Named(w.name)
	}
	return w
}

// Run starts the worker loop.
func (w *InMemoryWorker) Run(ctx context.Context) {
	defer close(w.done)

	jobs := w.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.shutdown:
			return
		case j, ok := <-jobs:
			if !ok {
				return
			}
			if err := w.process(ctx, j); err != nil {
				w.logger.Error(ctx, "archive job failed",
					logger.String("job_id", j.ID),
					logger.String("key", j.Key),
					logger.Error(err),
				)
			}
		}
	}
}

// Shutdown gracefully stops the worker.
func (w *InMemoryWorker) Shutdown(ctx context.Context) error {
	w.stop()
	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		w.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

// Done is closed when Run returns.
func (w *InMemoryWorker) Done() <-chan struct{} { return w.done }

func (w *InMemoryWorker) stop() {
	if w.stopped.CompareAndSwap(false, true) {
		close(w.shutdown)
	}
}

func (w *InMemoryWorker) process(ctx context.Context, j queue.Job) (err error) { //nolint:gocritic // hugeParam
	w.active.Add(1)
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
		w.active.Add(-1)
		metrics.RecordWorkerJob(time.Since(start), err)
		if err != nil {
			metrics.RecordError("worker", "job_failed", "high")
		}
	}()
	if w.handler == nil {
		return errors.New("no handler configured")
	}
	return w.handler.Handle(ctx, j)
}

// Pool manages multiple workers sharing one queue.
type Pool struct {
	workers []*InMemoryWorker
	queue   Queue
	active  atomic.Int64
	started atomic.Bool

	stopMetrics chan struct{}
	stopped     atomic.Bool

	logger logger.Logger
}

const metricsUpdateInterval = 5 * time.Second

// NewPool creates a new worker pool. A non-positive count uses NumCPU.
func NewPool(workerCount int, q Queue, h Handler) *Pool {
	if workerCount < 1 {
		workerCount = runtime.NumCPU()
	}
	p := &Pool{
		workers:     make([]*InMemoryWorker, workerCount),
		queue:       q,
		stopMetrics: make(chan struct{}),
		logger:      logger.Get().Named("worker-pool"),
	}
	for i := range p.workers {
		w := NewInMemoryWorker(q, h, WithName("worker-"+strconv.Itoa(i)))
		w.active = &p.active
		p.workers[i] = w
	}
	metrics.UpdateWorkers(workerCount, 0)
	return p
}

// Size returns the number of workers.
func (p *Pool) Size() int { return len(p.workers) }

// Active returns the number of jobs currently being handled.
func (p *Pool) Active() int { return int(p.active.Load()) }

// Start starts all workers in the pool.
func (p *Pool) Start(ctx context.Context) {
	if !p.started.CompareAndSwap(false, true) {
		return
	}
	for _, w := range p.workers {
		go w.Run(ctx)
	}
	go p.reportMetrics(ctx)
}

func (p *Pool) reportMetrics(ctx context.Context) {
	ticker := time.NewTicker(metricsUpdateInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopMetrics:
			return
		case <-ticker.C:
			metrics.UpdateWorkers(len(p.workers), p.Active())
		}
	}
}

// Stop halts all workers without draining the queue.
func (p *Pool) Stop() {
	p.haltMetrics()
	for _, w := range p.workers {
		w.stop()
	}
	if !p.started.Load() {
		return
	}
	for _, w := range p.workers {
		<-w.done
	}
}

// Shutdown closes the queue, lets the workers drain what is already queued
// and waits until they exit or ctx expires. Workers still running at the
// deadline are told to stop after their current job.
func (p *Pool) Shutdown(ctx context.Context) error {
	if closer, ok := p.queue.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			p.logger.Error(ctx, "error closing queue", logger.Error(err))
		}
	}
	p.haltMetrics()
	if !p.started.Load() {
		return nil
	}

	var timedOut bool
	for i, w := range p.workers {
		select {
		case <-w.done:
		case <-ctx.Done():
			timedOut = true
			w.stop()
			p.logger.Warn(ctx, "worker shutdown timed out", logger.Int("worker_id", i))
		}
	}
	metrics.UpdateWorkers(0, p.Active())
	if timedOut {
		return fmt.Errorf("worker pool shutdown: %w", ctx.Err())
	}
	return nil
}

func (p *Pool) haltMetrics() {
	if p.stopped.CompareAndSwap(false, true) {
		close(p.stopMetrics)
	}
}
