package pipeline_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/nota-music/nota-pipeline/constants"
	"github.com/nota-music/nota-pipeline/internal/common"
	"github.com/nota-music/nota-pipeline/internal/pipeline"
)

type fakeStore struct {
	mu         sync.Mutex
	job        *pipeline.Job
	retries    []time.Time
	failed     *pipeline.StageError
	cancelled  bool
	advances   []constants.Stage
	warnings   []*pipeline.StageError
	artifacts  map[constants.ArtifactKind]string
	processed  []uuid.UUID
	summaries  []string
	analyses   int
	textsSaved int
}

func newFakeStore(stage constants.Stage) *fakeStore {
	return &fakeStore{
		job: &pipeline.Job{
			ID:           uuid.New(),
			ScoreID:      uuid.New(),
			SourceKey:    "scores/x/input.pdf",
			SourceFormat: constants.PDF,
			SourceExt:    "pdf",
			Stage:        stage,
		},
		artifacts: map[constants.ArtifactKind]string{},
	}
}

func (f *fakeStore) GetJob(_ context.Context, id uuid.UUID) (*pipeline.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if id != f.job.ID {
		return nil, common.ErrNotFound
	}
	cp := *f.job
	return &cp, nil
}

func (f *fakeStore) requestCancel() {
	f.mu.Lock()
	f.job.CancelRequested = true
	f.mu.Unlock()
}

func (f *fakeStore) AdvanceStage(_ context.Context, job *pipeline.Job, next constants.Stage, warn *pipeline.StageError) error {
	f.advances = append(f.advances, next)
	f.warnings = append(f.warnings, warn)
	f.job.Stage = next
	f.job.AttemptCount = 0
	return nil
}

func (f *fakeStore) ScheduleRetry(_ context.Context, job *pipeline.Job, se *pipeline.StageError, notBefore time.Time) error {
	f.retries = append(f.retries, notBefore)
	f.job.AttemptCount++
	f.job.NotBefore = notBefore
	return nil
}

func (f *fakeStore) MarkFailed(_ context.Context, job *pipeline.Job, se *pipeline.StageError) error {
	f.failed = se
	f.job.Stage = constants.StageFailed
	f.job.AttemptCount = job.AttemptCount
	return nil
}

func (f *fakeStore) MarkCancelled(_ context.Context, job *pipeline.Job) error {
	f.cancelled = true
	f.job.Stage = constants.StageFailed
	return nil
}

func (f *fakeStore) RecordArtifact(_ context.Context, job *pipeline.Job, kind constants.ArtifactKind, key string) error {
	f.artifacts[kind] = key
	if f.job.Artifacts == nil {
		f.job.Artifacts = map[constants.ArtifactKind]string{}
	}
	f.job.Artifacts[kind] = key
	return nil
}

func (f *fakeStore) SaveAnalysis(_ context.Context, scoreID uuid.UUID, features []byte) error {
	f.analyses++
	return nil
}

func (f *fakeStore) SaveText(_ context.Context, scoreID uuid.UUID, title, composer string, lyrics []string) error {
	f.textsSaved++
	return nil
}

func (f *fakeStore) SaveSummary(_ context.Context, scoreID uuid.UUID, summary string) error {
	f.summaries = append(f.summaries, summary)
	return nil
}

func (f *fakeStore) MarkProcessed(_ context.Context, scoreID uuid.UUID) error {
	f.processed = append(f.processed, scoreID)
	return nil
}

type fakeHandler struct {
	stage constants.Stage
	runs  int
	fn    func(job *pipeline.Job) *pipeline.StageError
}

func (h *fakeHandler) Stage() constants.Stage { return h.stage }

func (h *fakeHandler) Run(_ context.Context, job *pipeline.Job) *pipeline.StageError {
	h.runs++
	if h.fn == nil {
		return nil
	}
	return h.fn(job)
}

func okHandlers() []pipeline.Handler {
	return []pipeline.Handler{
		&fakeHandler{stage: constants.StageConverting},
		&fakeHandler{stage: constants.StageExtractingText},
		&fakeHandler{stage: constants.StageSummarizing},
	}
}

func newPipeline(store *fakeStore, handlers ...pipeline.Handler) *pipeline.Pipeline {
	cfg := common.PipelineConfig{RetryCeiling: 3, BackoffBase: 30 * time.Second}
	return pipeline.New(store, store, cfg, nil, handlers...)
}

func TestProcessRunsAllStages(t *testing.T) {
	store := newFakeStore(constants.StageQueued)
	p := newPipeline(store, okHandlers()...)

	if err := p.Process(context.Background(), store.job.ID); err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	want := []constants.Stage{
		constants.StageConverting,
		constants.StageExtractingText,
		constants.StageSummarizing,
		constants.StageCompleted,
	}
	if len(store.advances) != len(want) {
		t.Fatalf("advances = %v, want %v", store.advances, want)
	}
	for i, s := range want {
		if store.advances[i] != s {
			t.Fatalf("advance %d = %s, want %s", i, store.advances[i], s)
		}
	}
	if len(store.processed) != 1 {
		t.Fatalf("expected score marked processed once, got %d", len(store.processed))
	}
}

func TestProcessTransientSchedulesRetryWithBackoff(t *testing.T) {
	store := newFakeStore(constants.StageConverting)
	h := &fakeHandler{stage: constants.StageConverting, fn: func(*pipeline.Job) *pipeline.StageError {
		return pipeline.Transientf("Timeout", "tool timed out")
	}}
	p := newPipeline(store, h)

	before := time.Now()
	if err := p.Process(context.Background(), store.job.ID); err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if len(store.retries) != 1 {
		t.Fatalf("expected one retry, got %d", len(store.retries))
	}
	delay := store.retries[0].Sub(before)
	if delay < 29*time.Second || delay > 31*time.Second {
		t.Fatalf("first retry delay = %v, want ~30s", delay)
	}
	if store.failed != nil {
		t.Fatal("job should not be failed yet")
	}
}

func TestProcessTransientExhaustsCeiling(t *testing.T) {
	store := newFakeStore(constants.StageConverting)
	h := &fakeHandler{stage: constants.StageConverting, fn: func(*pipeline.Job) *pipeline.StageError {
		return pipeline.Transientf("Timeout", "tool timed out")
	}}
	p := newPipeline(store, h)

	// three deliveries: two park the job for retry, the third exhausts
	for i := 0; i < 3; i++ {
		if err := p.Process(context.Background(), store.job.ID); err != nil {
			t.Fatalf("delivery %d failed: %v", i+1, err)
		}
	}
	if h.runs != 3 {
		t.Fatalf("handler ran %d times, want 3", h.runs)
	}
	if store.failed == nil {
		t.Fatal("expected job to fail after retry ceiling")
	}
	if store.failed.Kind != constants.FailureTransient {
		t.Fatalf("failure kind = %s, want TRANSIENT", store.failed.Kind)
	}
	if store.job.AttemptCount != 3 {
		t.Fatalf("terminal attempt count = %d, want the ceiling 3", store.job.AttemptCount)
	}
	if len(store.retries) != 2 {
		t.Fatalf("expected two retries before exhaustion, got %d", len(store.retries))
	}
}

func TestProcessFatalFailsImmediately(t *testing.T) {
	store := newFakeStore(constants.StageConverting)
	h := &fakeHandler{stage: constants.StageConverting, fn: func(*pipeline.Job) *pipeline.StageError {
		return pipeline.Fatalf("LowResolution", "image resolution too low")
	}}
	p := newPipeline(store, h)

	if err := p.Process(context.Background(), store.job.ID); err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if store.failed == nil || store.failed.Cause != "LowResolution" {
		t.Fatalf("expected fatal failure recorded, got %+v", store.failed)
	}
	if len(store.retries) != 0 {
		t.Fatal("fatal failures must not be retried")
	}
}

func TestProcessNonFatalSummaryStillCompletes(t *testing.T) {
	store := newFakeStore(constants.StageSummarizing)
	h := &fakeHandler{stage: constants.StageSummarizing, fn: func(*pipeline.Job) *pipeline.StageError {
		return pipeline.NonFatalf("SummaryFailed", "model unavailable")
	}}
	p := newPipeline(store, h)

	if err := p.Process(context.Background(), store.job.ID); err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if store.job.Stage != constants.StageCompleted {
		t.Fatalf("stage = %s, want COMPLETED", store.job.Stage)
	}
	if len(store.warnings) != 1 || store.warnings[0] == nil {
		t.Fatalf("expected the non-fatal error recorded on advance, got %v", store.warnings)
	}
	if len(store.processed) != 1 {
		t.Fatal("score must still be marked processed")
	}
}

func TestProcessCancelRequestedBetweenStages(t *testing.T) {
	store := newFakeStore(constants.StageExtractingText)
	store.job.CancelRequested = true
	h := &fakeHandler{stage: constants.StageExtractingText}
	p := newPipeline(store, h)

	if err := p.Process(context.Background(), store.job.ID); err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if !store.cancelled {
		t.Fatal("expected job cancelled")
	}
	if h.runs != 0 {
		t.Fatal("handler must not run after cancel was requested")
	}
}

func TestProcessTerminalJobIsNoop(t *testing.T) {
	store := newFakeStore(constants.StageCompleted)
	p := newPipeline(store, okHandlers()...)

	if err := p.Process(context.Background(), store.job.ID); err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if len(store.advances) != 0 || store.failed != nil {
		t.Fatal("terminal job must not be touched")
	}
}

func TestProcessShutdownLeavesJobForRedelivery(t *testing.T) {
	store := newFakeStore(constants.StageConverting)
	ctx, cancel := context.WithCancel(context.Background())
	h := &fakeHandler{stage: constants.StageConverting, fn: func(*pipeline.Job) *pipeline.StageError {
		cancel() // shutdown arrives mid-stage
		return pipeline.Transientf("StageFailed", "interrupted")
	}}
	p := newPipeline(store, h)

	if err := p.Process(ctx, store.job.ID); err == nil {
		t.Fatal("expected context error")
	}
	if store.failed != nil || len(store.retries) != 0 {
		t.Fatal("shutdown must not write an outcome; the lease reclaim handles it")
	}
}

type blockingHandler struct {
	stage   constants.Stage
	started chan struct{}
}

func (h *blockingHandler) Stage() constants.Stage { return h.stage }

func (h *blockingHandler) Run(ctx context.Context, _ *pipeline.Job) *pipeline.StageError {
	close(h.started)
	<-ctx.Done()
	return pipeline.Transientf("Interrupted", "tool killed")
}

func TestProcessKillOnCancelStopsInflightStage(t *testing.T) {
	store := newFakeStore(constants.StageConverting)
	h := &blockingHandler{stage: constants.StageConverting, started: make(chan struct{})}
	cfg := common.PipelineConfig{
		RetryCeiling: 3,
		BackoffBase:  30 * time.Second,
		KillOnCancel: true,
		CancelPoll:   10 * time.Millisecond,
	}
	p := pipeline.New(store, store, cfg, nil, h)

	done := make(chan error, 1)
	go func() { done <- p.Process(context.Background(), store.job.ID) }()

	<-h.started
	store.requestCancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Process failed: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Process did not return after the cancel request")
	}
	if !store.cancelled {
		t.Fatal("expected job marked cancelled")
	}
	if store.failed != nil || len(store.retries) != 0 {
		t.Fatal("a killed job must not record a failure or retry")
	}
}

func TestConvertStageSkipsWhenArtifactRecorded(t *testing.T) {
	store := newFakeStore(constants.StageConverting)
	store.job.Artifacts = map[constants.ArtifactKind]string{
		constants.ArtifactMusicXML: "jobs/x/musicxml.xml",
	}
	// redelivered job: the nil adapter would panic if the stage ran the tool
	stage := pipeline.NewConvertStage(nil, nil, store, nil)
	p := newPipeline(store, stage,
		&fakeHandler{stage: constants.StageExtractingText},
		&fakeHandler{stage: constants.StageSummarizing},
	)

	if err := p.Process(context.Background(), store.job.ID); err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if store.job.Stage != constants.StageCompleted {
		t.Fatalf("stage = %s, want COMPLETED", store.job.Stage)
	}
}
