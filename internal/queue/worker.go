package queue

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nota-music/nota-pipeline/internal/pipeline"
)

// JobSource is the claim surface the pool pulls work from. Claims are
// leases: a worker that dies mid-job simply lets the lease lapse and
// another worker picks the job back up.
type JobSource interface {
	ClaimNext(ctx context.Context, owner string, lease time.Duration) (*pipeline.Job, error)
	ExtendLease(ctx context.Context, job *pipeline.Job, lease time.Duration) error
}

// Processor runs one claimed job to a stopping point.
type Processor interface {
	Process(ctx context.Context, jobID uuid.UUID) error
}

// WorkerPool polls the job table for runnable work. Submission wakes a
// worker immediately; otherwise the poll ticker catches scheduled
// retries and leases abandoned by dead workers.
type WorkerPool struct {
	source    JobSource
	proc      Processor
	logger    *slog.Logger
	workers   int
	queueSize int
	poll      time.Duration
	lease     time.Duration
	timeout   time.Duration

	wake   chan struct{}
	wg     sync.WaitGroup
	cancel context.CancelFunc
	once   sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*WorkerPool)

func WithWorkers(n int) Option {
	return func(p *WorkerPool) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithQueueSize sets the wake-channel buffer; submissions beyond it
// fall back to the poll ticker.
func WithQueueSize(n int) Option {
	return func(p *WorkerPool) {
		if n > 0 {
			p.queueSize = n
		}
	}
}

func WithPollInterval(d time.Duration) Option {
	return func(p *WorkerPool) {
		if d > 0 {
			p.poll = d
		}
	}
}

func WithLease(d time.Duration) Option {
	return func(p *WorkerPool) {
		if d > 0 {
			p.lease = d
		}
	}
}

func WithProcessTimeout(d time.Duration) Option {
	return func(p *WorkerPool) {
		if d > 0 {
			p.timeout = d
		}
	}
}

func NewWorkerPool(source JobSource, proc Processor, logger *slog.Logger, opts ...Option) *WorkerPool {
	if logger == nil {
		logger = slog.Default()
	}
	p := &WorkerPool{
		source:    source,
		proc:      proc,
		logger:    logger,
		workers:   4,
		queueSize: 256,
		poll:      time.Minute,
		lease:     10 * time.Minute,
		timeout:   15 * time.Minute,
	}
	for _, o := range opts {
		o(p)
	}
	p.wake = make(chan struct{}, p.queueSize)
	return p
}

// Start launches the workers. They run until Shutdown.
func (p *WorkerPool) Start() {
	p.once.Do(func() {
		ctx, cancel := context.WithCancel(context.Background())
		p.cancel = cancel
		host, _ := os.Hostname()
		for i := 0; i < p.workers; i++ {
			p.wg.Add(1)
			owner := fmt.Sprintf("%s-%d", host, i+1)
			go p.run(ctx, i+1, owner)
		}
	})
}

// Notify wakes a worker after a job was enqueued. Safe to call from any
// goroutine; a full wake buffer is fine, the poll ticker is the backstop.
func (p *WorkerPool) Notify() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	select {
	case p.wake <- struct{}{}:
	default:
	}
}

func (p *WorkerPool) run(ctx context.Context, id int, owner string) {
	defer p.wg.Done()
	p.logger.Info("worker started", "worker_id", id, "owner", owner)

	ticker := time.NewTicker(p.poll)
	defer ticker.Stop()

	for {
		p.drain(ctx, id, owner)
		select {
		case <-ctx.Done():
			p.logger.Info("worker stopped", "worker_id", id)
			return
		case <-p.wake:
		case <-ticker.C:
		}
	}
}

// drain claims and processes jobs until the table has nothing runnable.
func (p *WorkerPool) drain(ctx context.Context, id int, owner string) {
	for {
		if ctx.Err() != nil {
			return
		}
		job, err := p.source.ClaimNext(ctx, owner, p.lease)
		if err != nil {
			p.logger.Error("claim failed", "worker_id", id, "error", err)
			return
		}
		if job == nil {
			return
		}
		p.process(ctx, id, job)
	}
}

func (p *WorkerPool) process(ctx context.Context, id int, job *pipeline.Job) {
	runCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	// heartbeat keeps the lease alive for the duration of the job
	hbDone := make(chan struct{})
	go p.heartbeat(runCtx, job, hbDone)

	err := p.proc.Process(runCtx, job.ID)
	cancel()
	<-hbDone

	if err != nil {
		p.logger.Error("processing failed", "worker_id", id, "job_id", job.ID, "error", err)
		return
	}
	p.logger.Info("job processed", "worker_id", id, "job_id", job.ID)
}

func (p *WorkerPool) heartbeat(ctx context.Context, job *pipeline.Job, done chan<- struct{}) {
	defer close(done)
	interval := p.lease / 3
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := p.source.ExtendLease(ctx, job, p.lease); err != nil {
				p.logger.Warn("lease extend failed", "job_id", job.ID, "error", err)
				return
			}
		}
	}
}

// Shutdown stops claiming and waits for in-flight jobs, bounded by ctx.
func (p *WorkerPool) Shutdown(ctx context.Context) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.mu.Unlock()

	if p.cancel != nil {
		p.cancel()
	}

	done := make(chan struct{})
	go func() { defer close(done); p.wg.Wait() }()

	select {
	case <-ctx.Done():
		p.logger.Warn("shutdown interrupted by context")
	case <-done:
		p.logger.Info("worker pool drained, shutdown complete")
	}
}
