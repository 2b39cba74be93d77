package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/nota-music/nota-pipeline/constants"
	"github.com/nota-music/nota-pipeline/internal/analysis"
	"github.com/nota-music/nota-pipeline/internal/artifactstore"
	"github.com/nota-music/nota-pipeline/internal/summarize"
	"github.com/nota-music/nota-pipeline/internal/textextract"
)

// SummarizeStage generates the beginner-facing summary. Its failures
// are non-fatal: a score without a summary is still a processed score.
type SummarizeStage struct {
	Summarizer summarize.Summarizer
	Store      artifactstore.Store
	Jobs       JobStore
	Scores     ScoreStore
	Logger     *slog.Logger
}

func NewSummarizeStage(sm summarize.Summarizer, store artifactstore.Store, jobs JobStore, scores ScoreStore, logger *slog.Logger) *SummarizeStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &SummarizeStage{Summarizer: sm, Store: store, Jobs: jobs, Scores: scores, Logger: logger}
}

func (s *SummarizeStage) Stage() constants.Stage { return constants.StageSummarizing }

func (s *SummarizeStage) Run(ctx context.Context, job *Job) *StageError {
	if job.HasArtifact(constants.ArtifactSummary) {
		s.Logger.Info("pipeline.summarize.skip", "job_id", job.ID, "reason", "artifact exists")
		return nil
	}

	musicXML, err := s.Store.Get(ctx, artifactstore.ArtifactKey(job.ID, constants.ArtifactMusicXML))
	if err != nil {
		return NonFatalf("MissingArtifact", "musicxml artifact: %v", err)
	}
	feats, err := analysis.Analyze(musicXML)
	if err != nil {
		return NonFatalf("AnalysisFailed", "analyze musicxml: %v", err)
	}

	var doc textextract.Result
	if raw, err := s.Store.Get(ctx, artifactstore.ArtifactKey(job.ID, constants.ArtifactExtractedText)); err == nil {
		_ = json.Unmarshal(raw, &doc)
	}

	sum, _, err := s.Summarizer.Summarize(ctx, summarize.Request{
		Title:    doc.Title,
		Composer: doc.Composer,
		Features: feats,
		Lyrics:   doc.Lyrics,
	})
	if err != nil {
		if ctx.Err() != nil {
			return Transientf(constants.CauseTimeout, "summary interrupted: %v", err)
		}
		if errors.Is(err, summarize.ErrNoAPIKey) {
			return NonFatalf("NotConfigured", "summarizer disabled: no api key")
		}
		return NonFatalf("SummaryFailed", "%v", err)
	}

	key := artifactstore.ArtifactKey(job.ID, constants.ArtifactSummary)
	if err := s.Store.Put(ctx, key, []byte(sum.Summary), constants.ArtifactSummary.ContentType()); err != nil && !errors.Is(err, artifactstore.ErrAlreadyExists) {
		return NonFatalf("ArtifactStore", "put summary: %v", err)
	}
	if err := s.Jobs.RecordArtifact(ctx, job, constants.ArtifactSummary, key); err != nil {
		return NonFatalf("ArtifactStore", "record summary: %v", err)
	}
	if err := s.Scores.SaveSummary(ctx, job.ScoreID, sum.Summary); err != nil {
		return NonFatalf("Database", "save summary: %v", err)
	}

	s.Logger.Info("pipeline.summarize.ok",
		"job_id", job.ID,
		"difficulty", sum.Difficulty,
		"summary_len", len(sum.Summary),
	)
	return nil
}

var _ Handler = (*SummarizeStage)(nil)
