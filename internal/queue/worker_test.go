package queue_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/nota-music/nota-pipeline/constants"
	"github.com/nota-music/nota-pipeline/internal/pipeline"
	"github.com/nota-music/nota-pipeline/internal/queue"
)

// fakeSource hands out a fixed backlog of jobs, one per claim.
type fakeSource struct {
	mu      sync.Mutex
	backlog []*pipeline.Job
	claimed []string // owners, in claim order
	extends int
}

func (s *fakeSource) add(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < n; i++ {
		s.backlog = append(s.backlog, &pipeline.Job{ID: uuid.New(), Stage: constants.StageConverting})
	}
}

func (s *fakeSource) ClaimNext(_ context.Context, owner string, _ time.Duration) (*pipeline.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.backlog) == 0 {
		return nil, nil
	}
	job := s.backlog[0]
	s.backlog = s.backlog[1:]
	s.claimed = append(s.claimed, owner)
	return job, nil
}

func (s *fakeSource) ExtendLease(_ context.Context, _ *pipeline.Job, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.extends++
	return nil
}

type fakeProcessor struct {
	mu        sync.Mutex
	processed map[uuid.UUID]int
	block     time.Duration
	done      chan struct{} // receives one token per processed job
}

func newFakeProcessor(capacity int) *fakeProcessor {
	return &fakeProcessor{
		processed: map[uuid.UUID]int{},
		done:      make(chan struct{}, capacity),
	}
}

func (p *fakeProcessor) Process(ctx context.Context, jobID uuid.UUID) error {
	if p.block > 0 {
		select {
		case <-time.After(p.block):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	p.mu.Lock()
	p.processed[jobID]++
	p.mu.Unlock()
	p.done <- struct{}{}
	return nil
}

func (p *fakeProcessor) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.processed)
}

func waitFor(t *testing.T, done <-chan struct{}, n int) {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for i := 0; i < n; i++ {
		select {
		case <-done:
		case <-deadline:
			t.Fatalf("timed out waiting for job %d of %d", i+1, n)
		}
	}
}

func TestWorkerPoolProcessesBacklog(t *testing.T) {
	src := &fakeSource{}
	src.add(5)
	proc := newFakeProcessor(8)

	pool := queue.NewWorkerPool(src, proc, nil,
		queue.WithWorkers(2),
		queue.WithPollInterval(10*time.Millisecond),
	)
	pool.Start()
	defer pool.Shutdown(context.Background())

	waitFor(t, proc.done, 5)
	if got := proc.count(); got != 5 {
		t.Fatalf("processed %d distinct jobs, want 5", got)
	}
}

func TestWorkerPoolNotifyWakesBeforePoll(t *testing.T) {
	src := &fakeSource{}
	proc := newFakeProcessor(4)

	// poll so slow that only Notify can explain a prompt claim
	pool := queue.NewWorkerPool(src, proc, nil,
		queue.WithWorkers(1),
		queue.WithPollInterval(time.Hour),
	)
	pool.Start()
	defer pool.Shutdown(context.Background())

	// allow the worker's initial drain to find an empty table
	time.Sleep(50 * time.Millisecond)

	src.add(1)
	pool.Notify()
	waitFor(t, proc.done, 1)
}

func TestWorkerPoolShutdownCancelsInflight(t *testing.T) {
	src := &fakeSource{}
	src.add(1)
	proc := newFakeProcessor(2)
	proc.block = time.Hour // only cancellation can unblock it

	pool := queue.NewWorkerPool(src, proc, nil,
		queue.WithWorkers(1),
		queue.WithPollInterval(10*time.Millisecond),
		queue.WithProcessTimeout(5*time.Second),
	)
	pool.Start()

	// let the worker pick up the job before shutting down
	time.Sleep(30 * time.Millisecond)

	done := make(chan struct{})
	go func() { defer close(done); pool.Shutdown(context.Background()) }()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("shutdown did not cancel the in-flight job")
	}
	if got := proc.count(); got != 0 {
		t.Fatalf("interrupted job must not count as processed, got %d", got)
	}
}

func TestWorkerPoolHeartbeatExtendsLease(t *testing.T) {
	src := &fakeSource{}
	src.add(1)
	proc := newFakeProcessor(2)
	proc.block = 250 * time.Millisecond

	pool := queue.NewWorkerPool(src, proc, nil,
		queue.WithWorkers(1),
		queue.WithPollInterval(10*time.Millisecond),
		queue.WithLease(150*time.Millisecond), // heartbeat every 50ms
	)
	pool.Start()
	defer pool.Shutdown(context.Background())

	waitFor(t, proc.done, 1)
	src.mu.Lock()
	extends := src.extends
	src.mu.Unlock()
	if extends == 0 {
		t.Fatal("expected at least one lease extension during a long job")
	}
}

func TestWorkerPoolNotifyNeverBlocks(t *testing.T) {
	src := &fakeSource{}
	proc := newFakeProcessor(1)
	// tiny wake buffer, no workers draining it
	pool := queue.NewWorkerPool(src, proc, nil, queue.WithQueueSize(1))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			pool.Notify()
		}
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked on a full wake buffer")
	}
}

func TestWorkerPoolNotifyAfterShutdown(t *testing.T) {
	src := &fakeSource{}
	proc := newFakeProcessor(1)
	pool := queue.NewWorkerPool(src, proc, nil, queue.WithWorkers(1))
	pool.Start()
	pool.Shutdown(context.Background())
	pool.Notify() // must not panic or block
}
