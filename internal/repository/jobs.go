package repository

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/nota-music/nota-pipeline/constants"
	"github.com/nota-music/nota-pipeline/gen/ent"
	"github.com/nota-music/nota-pipeline/gen/ent/processingjob"
	"github.com/nota-music/nota-pipeline/internal/common"
	"github.com/nota-music/nota-pipeline/internal/pipeline"
)

// claimBatch bounds how many candidate rows one claim attempt inspects.
const claimBatch = 16

// JobRepository persists processing jobs. It is both the pipeline's
// JobStore and the worker queue's claim surface: a job row doubles as
// the queue entry, so delivery needs no separate broker.
type JobRepository interface {
	pipeline.JobStore

	Create(ctx context.Context, scoreID uuid.UUID, sourceKey, sourceFormat string) (*pipeline.Job, error)

	// ClaimNext leases the oldest runnable job whose not-before time
	// has passed and whose lease is absent or expired. Returns
	// (nil, nil) when nothing is ready.
	ClaimNext(ctx context.Context, owner string, lease time.Duration) (*pipeline.Job, error)

	ExtendLease(ctx context.Context, job *pipeline.Job, lease time.Duration) error
	RequestCancel(ctx context.Context, id uuid.UUID) error
	ListByScore(ctx context.Context, scoreID uuid.UUID) ([]*pipeline.Job, error)

	// CountActive counts jobs that have not reached a terminal stage.
	CountActive(ctx context.Context) (int, error)
}

type jobRepo struct {
	ent *ent.Client
	log *slog.Logger
	now func() time.Time
}

func NewJobRepository(entc *ent.Client, log *slog.Logger) JobRepository {
	if log == nil {
		log = slog.Default()
	}
	return &jobRepo{ent: entc, log: log, now: time.Now}
}

func (r *jobRepo) Create(ctx context.Context, scoreID uuid.UUID, sourceKey, sourceFormat string) (*pipeline.Job, error) {
	row, err := r.ent.ProcessingJob.
		Create().
		SetScoreID(scoreID).
		SetSourceKey(sourceKey).
		SetSourceFormat(sourceFormat).
		SetStage(string(constants.StageQueued)).
		Save(ctx)
	if err != nil {
		r.log.Error("job create failed", "score_id", scoreID, "err", err)
		return nil, common.WrapError(err, "create job")
	}
	r.log.Info("job created", "job_id", row.ID, "score_id", scoreID, "format", sourceFormat)
	return toDomain(row), nil
}

func (r *jobRepo) GetJob(ctx context.Context, id uuid.UUID) (*pipeline.Job, error) {
	row, err := r.ent.ProcessingJob.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, common.WrapError(err, "get job")
	}
	return toDomain(row), nil
}

func (r *jobRepo) ClaimNext(ctx context.Context, owner string, lease time.Duration) (*pipeline.Job, error) {
	now := r.now()
	rows, err := r.ent.ProcessingJob.
		Query().
		Where(
			processingjob.StageIn(runnableStages()...),
			processingjob.Or(
				processingjob.NotBeforeIsNil(),
				processingjob.NotBeforeLTE(now),
			),
			processingjob.Or(
				processingjob.LeaseExpiresAtIsNil(),
				processingjob.LeaseExpiresAtLT(now),
			),
		).
		Order(ent.Asc(processingjob.FieldCreatedAt)).
		Limit(claimBatch).
		All(ctx)
	if err != nil {
		return nil, common.WrapError(err, "query runnable jobs")
	}

	for _, row := range rows {
		n, err := r.ent.ProcessingJob.
			Update().
			Where(
				processingjob.ID(row.ID),
				processingjob.Version(row.Version),
			).
			SetLeaseOwner(owner).
			SetLeaseExpiresAt(now.Add(lease)).
			SetVersion(row.Version + 1).
			Save(ctx)
		if err != nil {
			return nil, common.WrapError(err, "claim job")
		}
		if n == 0 {
			// lost the race for this row, try the next candidate
			continue
		}
		job := toDomain(row)
		job.LeaseOwner = owner
		job.LeaseExpiresAt = now.Add(lease)
		job.Version = int64(row.Version) + 1
		r.log.Debug("job claimed", "job_id", job.ID, "owner", owner, "stage", job.Stage)
		return job, nil
	}
	return nil, nil
}

func (r *jobRepo) ExtendLease(ctx context.Context, job *pipeline.Job, lease time.Duration) error {
	expires := r.now().Add(lease)
	err := r.cas(ctx, job, func(u *ent.ProcessingJobUpdate) {
		u.SetLeaseExpiresAt(expires)
	})
	if err == nil {
		job.LeaseExpiresAt = expires
	}
	return err
}

func (r *jobRepo) AdvanceStage(ctx context.Context, job *pipeline.Job, next constants.Stage, warn *pipeline.StageError) error {
	if !job.Stage.CanAdvanceTo(next) {
		return fmt.Errorf("illegal transition %s -> %s: %w", job.Stage, next, common.ErrInvalidInput)
	}
	err := r.cas(ctx, job, func(u *ent.ProcessingJobUpdate) {
		u.SetStage(string(next)).
			SetAttemptCount(0).
			ClearNotBefore()
		if next.IsTerminal() {
			u.ClearLeaseOwner().ClearLeaseExpiresAt()
		}
		if warn != nil {
			u.SetErrorKind(string(warn.Kind)).
				SetErrorStage(string(job.Stage)).
				SetErrorMessage(warn.Message)
		} else {
			u.ClearErrorKind().ClearErrorStage().ClearErrorMessage()
		}
	})
	if err == nil {
		job.Stage = next
		job.AttemptCount = 0
	}
	return err
}

func (r *jobRepo) ScheduleRetry(ctx context.Context, job *pipeline.Job, se *pipeline.StageError, notBefore time.Time) error {
	err := r.cas(ctx, job, func(u *ent.ProcessingJobUpdate) {
		u.SetAttemptCount(job.AttemptCount + 1).
			SetNotBefore(notBefore).
			SetErrorKind(string(se.Kind)).
			SetErrorStage(string(job.Stage)).
			SetErrorMessage(se.Message).
			ClearLeaseOwner().
			ClearLeaseExpiresAt()
	})
	if err == nil {
		job.AttemptCount++
		job.NotBefore = notBefore
	}
	return err
}

func (r *jobRepo) MarkFailed(ctx context.Context, job *pipeline.Job, se *pipeline.StageError) error {
	return r.cas(ctx, job, func(u *ent.ProcessingJobUpdate) {
		u.SetStage(string(constants.StageFailed)).
			SetAttemptCount(job.AttemptCount).
			SetErrorKind(string(se.Kind)).
			SetErrorStage(string(job.Stage)).
			SetErrorMessage(se.Message).
			ClearLeaseOwner().
			ClearLeaseExpiresAt()
	})
}

func (r *jobRepo) MarkCancelled(ctx context.Context, job *pipeline.Job) error {
	return r.cas(ctx, job, func(u *ent.ProcessingJobUpdate) {
		u.SetStage(string(constants.StageFailed)).
			SetErrorKind(string(constants.FailureCancelled)).
			SetErrorStage(string(job.Stage)).
			SetErrorMessage(constants.CauseCancelled + ": stop requested by client").
			ClearLeaseOwner().
			ClearLeaseExpiresAt()
	})
}

func (r *jobRepo) RecordArtifact(ctx context.Context, job *pipeline.Job, kind constants.ArtifactKind, key string) error {
	if existing, ok := job.Artifacts[kind]; ok {
		if existing == key {
			return nil
		}
		return fmt.Errorf("artifact %s already recorded with a different key: %w", kind, common.ErrConflict)
	}
	arts := make(map[string]string, len(job.Artifacts)+1)
	for k, v := range job.Artifacts {
		arts[string(k)] = v
	}
	arts[string(kind)] = key
	err := r.cas(ctx, job, func(u *ent.ProcessingJobUpdate) {
		u.SetArtifacts(arts)
	})
	if err == nil {
		if job.Artifacts == nil {
			job.Artifacts = map[constants.ArtifactKind]string{}
		}
		job.Artifacts[kind] = key
	}
	return err
}

func (r *jobRepo) RequestCancel(ctx context.Context, id uuid.UUID) error {
	n, err := r.ent.ProcessingJob.
		Update().
		Where(
			processingjob.ID(id),
			processingjob.StageIn(runnableStages()...),
		).
		SetCancelRequested(true).
		Save(ctx)
	if err != nil {
		return common.WrapError(err, "request cancel")
	}
	if n == 0 {
		return fmt.Errorf("job not cancellable: %w", common.ErrConflict)
	}
	r.log.Info("job cancel requested", "job_id", id)
	return nil
}

func (r *jobRepo) CountActive(ctx context.Context) (int, error) {
	n, err := r.ent.ProcessingJob.
		Query().
		Where(processingjob.StageIn(runnableStages()...)).
		Count(ctx)
	if err != nil {
		return 0, common.WrapError(err, "count active jobs")
	}
	return n, nil
}

func (r *jobRepo) ListByScore(ctx context.Context, scoreID uuid.UUID) ([]*pipeline.Job, error) {
	rows, err := r.ent.ProcessingJob.
		Query().
		Where(processingjob.ScoreID(scoreID)).
		Order(ent.Desc(processingjob.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, common.WrapError(err, "list jobs")
	}
	out := make([]*pipeline.Job, len(rows))
	for i, row := range rows {
		out[i] = toDomain(row)
	}
	return out, nil
}

// cas applies one mutation guarded by the job's version. A zero row
// count means the row moved on under us and the caller must reload.
func (r *jobRepo) cas(ctx context.Context, job *pipeline.Job, apply func(*ent.ProcessingJobUpdate)) error {
	u := r.ent.ProcessingJob.
		Update().
		Where(
			processingjob.ID(job.ID),
			processingjob.Version(int(job.Version)),
		).
		SetVersion(int(job.Version) + 1)
	apply(u)
	n, err := u.Save(ctx)
	if err != nil {
		return common.WrapError(err, "update job")
	}
	if n == 0 {
		return fmt.Errorf("job %s version %d stale: %w", job.ID, job.Version, common.ErrConflict)
	}
	job.Version++
	return nil
}

func runnableStages() []string {
	var out []string
	for _, s := range constants.AllStages() {
		if s.IsRunnable() {
			out = append(out, string(s))
		}
	}
	return out
}

func toDomain(row *ent.ProcessingJob) *pipeline.Job {
	job := &pipeline.Job{
		ID:              row.ID,
		ScoreID:         row.ScoreID,
		SourceKey:       row.SourceKey,
		SourceFormat:    row.SourceFormat,
		SourceExt:       constants.NormalizeExt(filepath.Ext(row.SourceKey)),
		Stage:           constants.Stage(row.Stage),
		AttemptCount:    row.AttemptCount,
		CancelRequested: row.CancelRequested,
		Version:         int64(row.Version),
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
	if len(row.Artifacts) > 0 {
		job.Artifacts = make(map[constants.ArtifactKind]string, len(row.Artifacts))
		for k, v := range row.Artifacts {
			job.Artifacts[constants.ArtifactKind(k)] = v
		}
	}
	if row.ErrorKind != nil {
		job.ErrorKind = constants.FailureKind(*row.ErrorKind)
	}
	if row.ErrorStage != nil {
		job.ErrorStage = constants.Stage(*row.ErrorStage)
	}
	if row.ErrorMessage != nil {
		job.ErrorMessage = *row.ErrorMessage
	}
	if row.LeaseOwner != nil {
		job.LeaseOwner = *row.LeaseOwner
	}
	if row.LeaseExpiresAt != nil {
		job.LeaseExpiresAt = *row.LeaseExpiresAt
	}
	if row.NotBefore != nil {
		job.NotBefore = *row.NotBefore
	}
	return job
}
