package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nota-music/nota-pipeline/constants"
)

// Job is the pipeline's view of one processing_job row. Version backs
// the compare-and-swap transitions; stores must refuse writes when the
// row has moved on.
type Job struct {
	ID              uuid.UUID
	ScoreID         uuid.UUID
	SourceKey       string
	SourceFormat    string // constants.PDF or constants.IMAGE
	SourceExt       string // normalized, no dot
	Stage           constants.Stage
	AttemptCount    int // attempts used within the current stage
	Artifacts       map[constants.ArtifactKind]string
	ErrorKind       constants.FailureKind
	ErrorStage      constants.Stage
	ErrorMessage    string
	CancelRequested bool
	LeaseOwner      string
	LeaseExpiresAt  time.Time
	NotBefore       time.Time
	Version         int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HasArtifact reports whether the stage output for kind was already
// recorded, which lets a redelivered job skip finished work.
func (j *Job) HasArtifact(kind constants.ArtifactKind) bool {
	_, ok := j.Artifacts[kind]
	return ok
}

// JobStore is the persistence surface the orchestrator depends on.
// Every mutating call is a CAS on Job.Version and must return
// common.ErrConflict-wrapped errors when the row changed underneath.
type JobStore interface {
	GetJob(ctx context.Context, id uuid.UUID) (*Job, error)

	// AdvanceStage moves the job to next, resets the attempt counter
	// and clears the error fields. When warn is non-nil (non-fatal
	// summary failure) the error fields are recorded instead.
	AdvanceStage(ctx context.Context, job *Job, next constants.Stage, warn *StageError) error

	// ScheduleRetry keeps the job at its current stage, increments the
	// attempt counter, records the error and releases the lease so no
	// worker picks the job up before notBefore.
	ScheduleRetry(ctx context.Context, job *Job, se *StageError, notBefore time.Time) error

	MarkFailed(ctx context.Context, job *Job, se *StageError) error
	MarkCancelled(ctx context.Context, job *Job) error

	// RecordArtifact is write-once per kind; recording an existing kind
	// with a different key is an invariant violation.
	RecordArtifact(ctx context.Context, job *Job, kind constants.ArtifactKind, key string) error
}

// ScoreStore receives the per-stage results destined for the catalog.
type ScoreStore interface {
	SaveAnalysis(ctx context.Context, scoreID uuid.UUID, features []byte) error
	SaveText(ctx context.Context, scoreID uuid.UUID, title, composer string, lyrics []string) error
	SaveSummary(ctx context.Context, scoreID uuid.UUID, summary string) error
	MarkProcessed(ctx context.Context, scoreID uuid.UUID) error
}

// Handler runs the work of one stage. A nil return means the stage
// finished and the job may advance.
type Handler interface {
	Stage() constants.Stage
	Run(ctx context.Context, job *Job) *StageError
}
