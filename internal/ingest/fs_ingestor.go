package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/nota-music/nota-pipeline/constants"
	"github.com/nota-music/nota-pipeline/internal/artifactstore"
	"github.com/nota-music/nota-pipeline/internal/repository"
)

// Notifier wakes the worker pool after a job was submitted.
type Notifier interface {
	Notify()
}

// FSIngestor reads score files from the local filesystem, uploads them
// to the artifact store and submits a processing job per file.
type FSIngestor struct {
	Store  artifactstore.Store
	Scores repository.ScoreRepository
	Cats   repository.CategoryRepository
	Jobs   repository.JobRepository
	Pool   Notifier
	Logger *slog.Logger
}

func NewFSIngestor(store artifactstore.Store, scores repository.ScoreRepository, cats repository.CategoryRepository, jobs repository.JobRepository, pool Notifier, logger *slog.Logger) *FSIngestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &FSIngestor{Store: store, Scores: scores, Cats: cats, Jobs: jobs, Pool: pool, Logger: logger}
}

func (i *FSIngestor) IngestPath(ctx context.Context, path string, opts Options) (IngestionResult, error) {
	var out IngestionResult

	abs, err := filepath.Abs(path)
	if err != nil {
		return out, err
	}
	ext := constants.NormalizeExt(filepath.Ext(abs))
	if ext == "" || !AllowedExt(ext) {
		return out, fmt.Errorf("unsupported or missing extension: %q", ext)
	}
	format := constants.MapExtToFormat(ext)

	data, err := os.ReadFile(abs)
	if err != nil {
		return out, err
	}
	sum := sha256.Sum256(data)

	title := opts.Title
	if title == "" {
		title = TitleFromPath(abs)
	}

	var categoryIDs []uuid.UUID
	if len(opts.Categories) > 0 {
		categoryIDs, err = i.Cats.ResolveIDs(ctx, opts.Categories)
		if err != nil {
			return out, err
		}
	}

	score, err := i.Scores.Create(ctx, title, opts.Composer, opts.Year, categoryIDs)
	if err != nil {
		return out, err
	}

	key := artifactstore.SourceKey(score.ID, ext)
	if err := i.Store.Put(ctx, key, data, sourceContentType(ext)); err != nil {
		return out, fmt.Errorf("upload source: %w", err)
	}

	job, err := i.Jobs.Create(ctx, score.ID, key, format)
	if err != nil {
		return out, err
	}
	if i.Pool != nil {
		i.Pool.Notify()
	}

	i.Logger.Info("ingest.ok",
		"score_id", score.ID,
		"job_id", job.ID,
		"path", abs,
		"format", format,
	)
	return IngestionResult{
		SourcePath: abs,
		ScoreID:    score.ID.String(),
		JobID:      job.ID.String(),
		HashHex:    hex.EncodeToString(sum[:]),
		FileExt:    ext,
		UploadedAt: score.UploadedAt,
	}, nil
}

// IngestDirectory walks root, skips hidden entries if requested, and
// calls IngestPath for each matching file.
func (i *FSIngestor) IngestDirectory(ctx context.Context, root string, skipHidden bool) ([]IngestionResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}

	var results []IngestionResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: walkErr.Error()})
			stats.Failed++
			return nil
		}
		if skipHidden && IsHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !AllowedExt(filepath.Ext(path)) {
			return nil
		}
		stats.Matched++

		r, err := i.IngestPath(ctx, path, Options{})
		if err != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: err.Error()})
			stats.Failed++
			return nil
		}
		results = append(results, r)
		stats.Succeeded++
		return nil
	})
	if err != nil {
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	return results, stats, nil
}

func sourceContentType(ext string) string {
	switch ext {
	case "pdf":
		return "application/pdf"
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "tif", "tiff":
		return "image/tiff"
	default:
		return "application/octet-stream"
	}
}
