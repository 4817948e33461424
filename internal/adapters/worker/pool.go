// Package worker runs queued background tasks on a bounded pool of
// goroutines. Job services enqueue their pipeline runs here instead of
// spawning unsupervised goroutines, so concurrency is capped and shutdown
// can wait for in-flight work.
package worker

import (
	"context"
	"errors"
	"log/slog"
	"runtime/debug"
	"sync"

	"golang.org/x/sync/errgroup"
)

const (
	defaultWorkers   = 4
	defaultQueueSize = 64
)

// Task is one unit of background work. The context is canceled when the pool
// shuts down; tasks should persist a failure state before returning. The
// alias keeps Pool assignable to the core.TaskQueue port.
type Task = func(ctx context.Context)

// ErrPoolClosed is returned by Enqueue after Stop has begun.
var ErrPoolClosed = errors.New("worker pool is closed")

// Options configures a Pool.
type Options struct {
	// Workers is the number of concurrent task goroutines.
	Workers int
	// QueueSize bounds how many tasks may wait for a worker.
	QueueSize int
	Logger    *slog.Logger
}

// Pool is a fixed-size background worker pool with a bounded queue.
type Pool struct {
	queue   chan Task
	workers int
	logger  *slog.Logger

	group *errgroup.Group
	gctx  context.Context

	startOnce sync.Once
	stopOnce  sync.Once
	closed    chan struct{}
}

// NewPool constructs a worker pool. Zero options get sensible defaults.
func NewPool(opts Options) *Pool {
	workers := opts.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	queueSize := opts.QueueSize
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Pool{
		queue:   make(chan Task, queueSize),
		workers: workers,
		logger:  logger.With("component", "worker_pool"),
		closed:  make(chan struct{}),
	}
}

// Start launches the worker goroutines. It must be called once before
// Enqueue; the workers run until Stop is called or ctx is canceled.
func (p *Pool) Start(ctx context.Context) {
	p.startOnce.Do(func() {
		p.group, p.gctx = errgroup.WithContext(ctx)
		p.logger.Info("starting worker pool", "workers", p.workers, "queue_size", cap(p.queue))
		for range p.workers {
			p.group.Go(func() error { return p.runWorkerLoop(p.gctx) })
		}
	})
}

func (p *Pool) runWorkerLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case task := <-p.queue:
			p.runTask(ctx, task)
		case <-p.closed:
			return p.drain(ctx)
		}
	}
}

// drain finishes tasks already queued at shutdown without accepting new ones.
func (p *Pool) drain(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case task := <-p.queue:
			p.runTask(ctx, task)
		default:
			return nil
		}
	}
}

func (p *Pool) runTask(ctx context.Context, task Task) {
	defer func() {
		if rec := recover(); rec != nil {
			p.logger.Error("worker task panicked",
				"panic", rec,
				"stack", string(debug.Stack()))
		}
	}()
	task(ctx)
}

// Enqueue submits a task, blocking while the queue is full. It returns
// ErrPoolClosed once shutdown has begun, or the context error if ctx is
// canceled while waiting.
func (p *Pool) Enqueue(ctx context.Context, task Task) error {
	if task == nil {
		return errors.New("task cannot be nil")
	}

	select {
	case <-p.closed:
		return ErrPoolClosed
	default:
	}

	select {
	case <-p.closed:
		return ErrPoolClosed
	case <-ctx.Done():
		return ctx.Err()
	case p.queue <- task:
		return nil
	}
}

// Stop signals shutdown, waits for queued and in-flight tasks to finish, and
// returns. Safe to call more than once.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.closed)
		if p.group != nil {
			if err := p.group.Wait(); err != nil {
				p.logger.Error("worker pool shutdown error", "error", err)
			}
		}
		p.logger.Info("worker pool stopped")
	})
}
