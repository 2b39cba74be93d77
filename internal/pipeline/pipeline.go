package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/nota-music/nota-pipeline/constants"
	"github.com/nota-music/nota-pipeline/internal/common"
)

// Pipeline drives one claimed job through its remaining stages. It is
// safe to call Process for the same job more than once: stages
// short-circuit on recorded artifacts and every transition is a CAS.
type Pipeline struct {
	jobs     JobStore
	scores   ScoreStore
	handlers map[constants.Stage]Handler
	cfg      common.PipelineConfig
	logger   *slog.Logger
	now      func() time.Time
}

func New(jobs JobStore, scores ScoreStore, cfg common.PipelineConfig, logger *slog.Logger, handlers ...Handler) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.RetryCeiling <= 0 {
		cfg.RetryCeiling = 3
	}
	if cfg.BackoffBase <= 0 {
		cfg.BackoffBase = 30 * time.Second
	}
	if cfg.CancelPoll <= 0 {
		cfg.CancelPoll = 5 * time.Second
	}
	hs := make(map[constants.Stage]Handler, len(handlers))
	for _, h := range handlers {
		hs[h.Stage()] = h
	}
	return &Pipeline{
		jobs:     jobs,
		scores:   scores,
		handlers: hs,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

// Process advances the job stage by stage until it reaches a terminal
// stage, schedules a retry, or the worker's context ends. Transient
// failures return nil: the job is parked with a not-before time and a
// later delivery resumes it.
func (p *Pipeline) Process(ctx context.Context, jobID uuid.UUID) error {
	for {
		if err := ctx.Err(); err != nil {
			// shutdown: leave the lease to expire, redelivery resumes the job
			return err
		}

		job, err := p.jobs.GetJob(ctx, jobID)
		if err != nil {
			return fmt.Errorf("get job %s: %w", jobID, err)
		}
		if job.Stage.IsTerminal() {
			return nil
		}
		if job.CancelRequested {
			p.logger.Info("pipeline.cancelled", "job_id", job.ID, "stage", job.Stage)
			return p.jobs.MarkCancelled(ctx, job)
		}

		if job.Stage == constants.StageQueued {
			if err := p.jobs.AdvanceStage(ctx, job, constants.StageConverting, nil); err != nil {
				return err
			}
			continue
		}

		h, ok := p.handlers[job.Stage]
		if !ok {
			return fmt.Errorf("no handler for stage %s", job.Stage)
		}

		p.logger.Info("pipeline.stage.start",
			"job_id", job.ID,
			"stage", job.Stage,
			"attempt", job.AttemptCount+1,
		)
		se, killed := p.runStage(ctx, h, job)
		if killed {
			p.logger.Info("pipeline.cancelled", "job_id", job.ID, "stage", job.Stage, "killed", true)
			return p.jobs.MarkCancelled(ctx, job)
		}
		if se == nil {
			if err := p.advance(ctx, job, nil); err != nil {
				return err
			}
			continue
		}

		if ctx.Err() != nil {
			// the failure came from our own shutdown, not the job
			return ctx.Err()
		}

		switch se.Kind {
		case constants.FailureNonFatal:
			p.logger.Warn("pipeline.stage.nonfatal",
				"job_id", job.ID, "stage", job.Stage, "cause", se.Cause, "error", se.Message)
			if err := p.advance(ctx, job, se); err != nil {
				return err
			}
			continue

		case constants.FailureTransient:
			attempt := job.AttemptCount + 1
			if attempt >= p.cfg.RetryCeiling {
				// the exhausting attempt counts toward the terminal total
				job.AttemptCount = attempt
				p.logger.Error("pipeline.stage.exhausted",
					"job_id", job.ID, "stage", job.Stage, "attempts", attempt, "cause", se.Cause)
				return p.jobs.MarkFailed(ctx, job, se)
			}
			delay := backoff(p.cfg.BackoffBase, attempt)
			p.logger.Warn("pipeline.stage.retry",
				"job_id", job.ID, "stage", job.Stage,
				"attempt", attempt, "delay", delay, "cause", se.Cause)
			return p.jobs.ScheduleRetry(ctx, job, se, p.now().Add(delay))

		case constants.FailureCancelled:
			p.logger.Info("pipeline.cancelled", "job_id", job.ID, "stage", job.Stage)
			return p.jobs.MarkCancelled(ctx, job)

		default: // fatal
			p.logger.Error("pipeline.stage.failed",
				"job_id", job.ID, "stage", job.Stage, "cause", se.Cause, "error", se.Message)
			return p.jobs.MarkFailed(ctx, job, se)
		}
	}
}

// runStage executes one handler. With KillOnCancel set, a watcher
// re-reads the job while the stage runs and cancels the stage context
// as soon as a cancel request lands, killing any in-flight subprocess.
// killed reports that case; the stage's own error is then irrelevant.
func (p *Pipeline) runStage(ctx context.Context, h Handler, job *Job) (se *StageError, killed bool) {
	if !p.cfg.KillOnCancel {
		return h.Run(ctx, job), false
	}

	stageCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var hit atomic.Bool
	watchDone := make(chan struct{})
	go func() {
		defer close(watchDone)
		ticker := time.NewTicker(p.cfg.CancelPoll)
		defer ticker.Stop()
		for {
			select {
			case <-stageCtx.Done():
				return
			case <-ticker.C:
				cur, err := p.jobs.GetJob(stageCtx, job.ID)
				if err != nil {
					continue
				}
				if cur.CancelRequested {
					hit.Store(true)
					cancel()
					return
				}
			}
		}
	}()

	se = h.Run(stageCtx, job)
	cancel()
	<-watchDone
	return se, hit.Load()
}

func (p *Pipeline) advance(ctx context.Context, job *Job, warn *StageError) error {
	next, ok := job.Stage.Next()
	if !ok {
		return fmt.Errorf("no next stage after %s", job.Stage)
	}
	if err := p.jobs.AdvanceStage(ctx, job, next, warn); err != nil {
		return err
	}
	p.logger.Info("pipeline.stage.ok", "job_id", job.ID, "from", job.Stage, "to", next)
	if next == constants.StageCompleted {
		if err := p.scores.MarkProcessed(ctx, job.ScoreID); err != nil {
			p.logger.Error("pipeline.mark_processed.failed", "score_id", job.ScoreID, "error", err)
		}
	}
	return nil
}
