package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nota-music/nota-pipeline/constants"
	"github.com/nota-music/nota-pipeline/internal/analysis"
	"github.com/nota-music/nota-pipeline/internal/artifactstore"
	"github.com/nota-music/nota-pipeline/internal/textextract"
)

// ExtractTextStage analyzes the recognized MusicXML and harvests the
// printed text (title, composer, lyrics) off the source file.
type ExtractTextStage struct {
	Extractor *textextract.Extractor
	Store     artifactstore.Store
	Jobs      JobStore
	Scores    ScoreStore
	Logger    *slog.Logger
}

func NewExtractTextStage(ex *textextract.Extractor, store artifactstore.Store, jobs JobStore, scores ScoreStore, logger *slog.Logger) *ExtractTextStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractTextStage{Extractor: ex, Store: store, Jobs: jobs, Scores: scores, Logger: logger}
}

func (s *ExtractTextStage) Stage() constants.Stage { return constants.StageExtractingText }

func (s *ExtractTextStage) Run(ctx context.Context, job *Job) *StageError {
	if job.HasArtifact(constants.ArtifactExtractedText) {
		s.Logger.Info("pipeline.extract_text.skip", "job_id", job.ID, "reason", "artifact exists")
		return nil
	}

	musicXML, err := s.Store.Get(ctx, artifactstore.ArtifactKey(job.ID, constants.ArtifactMusicXML))
	if err != nil {
		if errors.Is(err, artifactstore.ErrNotFound) {
			return Fatalf("MissingArtifact", "musicxml artifact missing for job %s", job.ID)
		}
		return Transientf("ArtifactStore", "get musicxml: %v", err)
	}

	feats, err := analysis.Analyze(musicXML)
	if err != nil {
		return Fatalf("AnalysisFailed", "analyze musicxml: %v", err)
	}

	srcPath, cleanup, se := s.stageSource(ctx, job)
	if se != nil {
		return se
	}
	defer cleanup()

	res, err := s.Extractor.Extract(ctx, srcPath, musicXML)
	if err != nil {
		if ctx.Err() != nil {
			return Transientf(constants.CauseTimeout, "text extraction interrupted: %v", err)
		}
		return Transientf("TextExtraction", "%v", err)
	}

	doc, err := json.Marshal(res)
	if err != nil {
		return Fatalf("Encode", "marshal extracted text: %v", err)
	}
	key := artifactstore.ArtifactKey(job.ID, constants.ArtifactExtractedText)
	if err := s.Store.Put(ctx, key, doc, constants.ArtifactExtractedText.ContentType()); err != nil && !errors.Is(err, artifactstore.ErrAlreadyExists) {
		return Transientf("ArtifactStore", "put extracted_text: %v", err)
	}
	if err := s.Jobs.RecordArtifact(ctx, job, constants.ArtifactExtractedText, key); err != nil {
		return Transientf("ArtifactStore", "record extracted_text: %v", err)
	}

	fb, err := json.Marshal(feats)
	if err != nil {
		return Fatalf("Encode", "marshal analysis: %v", err)
	}
	if err := s.Scores.SaveAnalysis(ctx, job.ScoreID, fb); err != nil {
		return Transientf("Database", "save analysis: %v", err)
	}
	if err := s.Scores.SaveText(ctx, job.ScoreID, res.Title, res.Composer, res.Lyrics); err != nil {
		return Transientf("Database", "save text: %v", err)
	}

	s.Logger.Info("pipeline.extract_text.ok",
		"job_id", job.ID,
		"method", res.Method,
		"pages", res.Pages,
		"title", res.Title,
		"lyric_lines", len(res.Lyrics),
		"key", feats.Key,
		"ensemble", feats.EnsembleType,
	)
	return nil
}

// stageSource copies the uploaded file into a scratch path so the
// extraction tools can read it from disk.
func (s *ExtractTextStage) stageSource(ctx context.Context, job *Job) (string, func(), *StageError) {
	data, err := s.Store.Get(ctx, job.SourceKey)
	if err != nil {
		if errors.Is(err, artifactstore.ErrNotFound) {
			return "", nil, Fatalf("MissingArtifact", "source object missing: %s", job.SourceKey)
		}
		return "", nil, Transientf("ArtifactStore", "get source: %v", err)
	}
	dir, err := os.MkdirTemp("", "nota-extract-*")
	if err != nil {
		return "", nil, Transientf("Scratch", "mkdir temp: %v", err)
	}
	path := filepath.Join(dir, "input."+job.SourceExt)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		_ = os.RemoveAll(dir)
		return "", nil, Transientf("Scratch", "stage source: %v", err)
	}
	return path, func() { _ = os.RemoveAll(dir) }, nil
}

var _ Handler = (*ExtractTextStage)(nil)
