package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"github.com/nota-music/nota-pipeline/constants"
	"github.com/nota-music/nota-pipeline/internal/artifactstore"
	"github.com/nota-music/nota-pipeline/internal/omr"
)

// ConvertStage runs the external recognition tool and records the
// MusicXML (and, when rendered, MIDI) artifacts.
type ConvertStage struct {
	Adapter *omr.Adapter
	Store   artifactstore.Store
	Jobs    JobStore
	Logger  *slog.Logger
}

func NewConvertStage(adapter *omr.Adapter, store artifactstore.Store, jobs JobStore, logger *slog.Logger) *ConvertStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ConvertStage{Adapter: adapter, Store: store, Jobs: jobs, Logger: logger}
}

func (s *ConvertStage) Stage() constants.Stage { return constants.StageConverting }

// Run converts the source file. A redelivered job whose MusicXML was
// already recorded short-circuits, keeping the stage idempotent under
// at-least-once delivery.
func (s *ConvertStage) Run(ctx context.Context, job *Job) *StageError {
	if job.HasArtifact(constants.ArtifactMusicXML) {
		s.Logger.Info("pipeline.convert.skip", "job_id", job.ID, "reason", "artifact exists")
		return nil
	}

	res, err := s.Adapter.Convert(ctx, omr.ConvertRequest{
		JobID:     job.ID,
		SourceKey: job.SourceKey,
		SourceExt: job.SourceExt,
	})
	if err != nil {
		return classify(err)
	}
	for _, w := range res.Warnings {
		s.Logger.Warn("pipeline.convert.warning", "job_id", job.ID, "warning", w)
	}

	if se := s.record(ctx, job, constants.ArtifactMusicXML, res.MusicXML); se != nil {
		return se
	}
	if len(res.MIDI) > 0 {
		if se := s.record(ctx, job, constants.ArtifactMIDI, res.MIDI); se != nil {
			return se
		}
	}

	s.Logger.Info("pipeline.convert.ok",
		"job_id", job.ID,
		"musicxml_bytes", len(res.MusicXML),
		"midi_bytes", len(res.MIDI),
	)
	return nil
}

func (s *ConvertStage) record(ctx context.Context, job *Job, kind constants.ArtifactKind, data []byte) *StageError {
	key := artifactstore.ArtifactKey(job.ID, kind)
	if err := s.Store.Put(ctx, key, data, kind.ContentType()); err != nil {
		// an object left by a crashed attempt is not an error
		if !errors.Is(err, artifactstore.ErrAlreadyExists) {
			return Transientf("ArtifactStore", "put %s: %v", kind, err)
		}
	}
	if err := s.Jobs.RecordArtifact(ctx, job, kind, key); err != nil {
		return Transientf("ArtifactStore", "record %s: %v", kind, err)
	}
	return nil
}

var _ Handler = (*ConvertStage)(nil)
