package ingest

import (
	"context"
	"time"
)

// IngestionResult is the per-file intake outcome.
type IngestionResult struct {
	SourcePath string
	ScoreID    string
	JobID      string
	HashHex    string
	FileExt    string
	UploadedAt time.Time
	Err        string
}

// DirStats summarizes a directory intake.
type DirStats struct {
	Scanned   uint32
	Matched   uint32
	Succeeded uint32
	Failed    uint32
}

// Options carries the optional metadata for one upload.
type Options struct {
	Title      string // defaults to the file name
	Composer   string
	Year       *int
	Categories []string
}

// Ingestor is the behavior the service depends on.
type Ingestor interface {
	// IngestPath uploads a single score file and submits its job.
	IngestPath(ctx context.Context, path string, opts Options) (IngestionResult, error)
	// IngestDirectory ingests all matching files under root.
	IngestDirectory(ctx context.Context, root string, skipHidden bool) ([]IngestionResult, DirStats, error)
}
