package workers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"crisisAlert/internal/domain"
)

type JobHandler interface {
	Handle(ctx context.Context, job domain.FanOutJob)
}

// FanOutPool runs notification jobs on a fixed number of goroutines. Jobs
// outlive the request that produced them and are bounded by jobTimeout.
type FanOutPool struct {
	handler    JobHandler
	jobs       chan domain.FanOutJob
	poolSize   int
	jobTimeout time.Duration
	logger     *slog.Logger
}

func NewFanOutPool(handler JobHandler, poolSize, queueSize int, jobTimeout time.Duration, logger *slog.Logger) *FanOutPool {
	if poolSize <= 0 {
		poolSize = 1
	}
	if queueSize <= 0 {
		queueSize = 100
	}
	return &FanOutPool{
		handler:    handler,
		jobs:       make(chan domain.FanOutJob, queueSize),
		poolSize:   poolSize,
		jobTimeout: jobTimeout,
		logger:     logger,
	}
}

// Submit enqueues job without blocking and reports false when the queue is full.
func (w *FanOutPool) Submit(job domain.FanOutJob) bool {
	select {
	case w.jobs <- job:
		return true
	default:
		return false
	}
}

// Run blocks until ctx is done and all workers have returned.
func (w *FanOutPool) Run(ctx context.Context) {
	var wg sync.WaitGroup

	for i := 0; i < w.poolSize; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			w.worker(ctx, id)
		}(i)
	}
	w.logger.Info("fan-out workers started", slog.Int("workers", w.poolSize))
	wg.Wait()
	w.logger.Info("fan-out workers stopped", slog.Int("pending", len(w.jobs)))
}

func (w *FanOutPool) worker(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-w.jobs:
			w.processJob(ctx, id, job)
		}
	}
}

func (w *FanOutPool) processJob(ctx context.Context, id int, job domain.FanOutJob) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Error("fan-out job panicked", slog.Int("worker", id), slog.Any("panic", r))
		}
	}()

	jctx := ctx
	if w.jobTimeout > 0 {
		var cancel context.CancelFunc
		jctx, cancel = context.WithTimeout(ctx, w.jobTimeout)
		defer cancel()
	}
	w.handler.Handle(jctx, job)
}
