package async

import (
	"context"
	"sync"
	"time"

	"log/slog"

	"github.com/google/uuid"
)

// Job is one dispatched executor run.
type Job struct {
	JobID       uuid.UUID
	OwnerID     string
	SubmittedAt time.Time
}

// Runner is what a worker invokes per job (the pipeline executor).
type Runner interface {
	ProcessJob(ctx context.Context, jobID uuid.UUID) error
}

// Pool fans admitted jobs out to workers. Admission already guarantees at most
// one live job per user, so workers only bound cross-user concurrency.
type Pool struct {
	runner  Runner
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*Pool)

func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.ch = make(chan Job, n)
		}
	}
}
func WithJobTimeout(d time.Duration) Option {
	return func(p *Pool) {
		if d > 0 {
			p.timeout = d
		}
	}
}

func NewPool(runner Runner, logger *slog.Logger, opts ...Option) *Pool {
	p := &Pool{
		runner:  runner,
		logger:  logger,
		workers: 4,
		timeout: 10 * time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(p)
	}
	p.start()
	return p
}

func (p *Pool) start() {
	p.once.Do(func() {
		for i := 0; i < p.workers; i++ {
			p.wg.Add(1)
			go func(workerID int) {
				defer p.wg.Done()
				p.logger.Info("worker started", "worker_id", workerID)

				for job := range p.ch {
					ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
					err := p.runner.ProcessJob(ctx, job.JobID)
					cancel()

					if err != nil {
						p.logger.Error("job run failed", "worker_id", workerID, "job_id", job.JobID, "owner_id", job.OwnerID, "error", err)
					} else {
						p.logger.Info("job run finished", "worker_id", workerID, "job_id", job.JobID, "owner_id", job.OwnerID)
					}
				}

				p.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (p *Pool) Enqueue(_ context.Context, job Job) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		p.logger.Warn("cannot enqueue: pool is shutting down", "job_id", job.JobID)
		return nil
	}
	select {
	case p.ch <- job:
		p.logger.Debug("job dispatched", "job_id", job.JobID, "owner_id", job.OwnerID)
	default:
		p.logger.Warn("dispatch queue full, applying backpressure", "job_id", job.JobID)
		p.ch <- job
	}
	return nil
}

func (p *Pool) Shutdown(ctx context.Context) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.ch)
	p.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); p.wg.Wait() }()

	select {
	case <-ctx.Done():
		p.logger.Warn("shutdown interrupted by context")
	case <-done:
		p.logger.Info("pool drained, shutdown complete")
	}
}
