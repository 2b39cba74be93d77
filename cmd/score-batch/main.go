package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/nota-music/nota-pipeline/internal/artifactstore"
	"github.com/nota-music/nota-pipeline/internal/common"
	"github.com/nota-music/nota-pipeline/internal/export"
	"github.com/nota-music/nota-pipeline/internal/ingest"
	"github.com/nota-music/nota-pipeline/internal/omr"
	"github.com/nota-music/nota-pipeline/internal/pipeline"
	"github.com/nota-music/nota-pipeline/internal/queue"
	repo "github.com/nota-music/nota-pipeline/internal/repository"
	"github.com/nota-music/nota-pipeline/internal/summarize"
	"github.com/nota-music/nota-pipeline/internal/textextract"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

// score-batch processes a directory of score files end to end using a
// local SQLite database and a filesystem artifact store, then writes an
// XLSX catalog next to the input directory.
func main() {
	_ = godotenv.Load()

	var (
		dir     = flag.String("dir", "", "directory of score files to process (required)")
		out     = flag.String("out", "", "output XLSX path (defaults to parent directory)")
		workers = flag.Int("workers", 2, "concurrent pipeline workers")
		timeout = flag.Duration("timeout", 30*time.Minute, "overall run budget")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "scores.xlsx")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	cfg := common.LoadConfig()
	cfg.Database.DSN = "" // force local sqlite for batch runs
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = filepath.Join(os.TempDir(), "score-batch.db")
	}

	entc, pool, err := repo.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	storeDir := cfg.Storage.LocalDir
	if storeDir == "" {
		storeDir = filepath.Join(os.TempDir(), "score-batch-artifacts")
	}
	store, err := artifactstore.NewFSStore(storeDir, artifactstore.RejectOnExists)
	if err != nil {
		logger.Error("failed to initialize artifact store", "error", err)
		os.Exit(1)
	}

	jobsRepo := repo.NewJobRepository(entc, logger)
	scoresRepo := repo.NewScoreRepository(entc, logger)
	catsRepo := repo.NewCategoryRepository(entc, logger)

	adapter := omr.NewAdapter(cfg.OMR, store, logger)
	extractor := textextract.NewExtractor(cfg.Text, logger)
	summarizer := summarize.NewClient(cfg.Summarizer, logger)

	proc := pipeline.New(jobsRepo, scoresRepo, cfg.Pipeline, logger,
		pipeline.NewConvertStage(adapter, store, jobsRepo, logger),
		pipeline.NewExtractTextStage(extractor, store, jobsRepo, scoresRepo, logger),
		pipeline.NewSummarizeStage(summarizer, store, jobsRepo, scoresRepo, logger),
	)
	workerPool := queue.NewWorkerPool(jobsRepo, proc, logger,
		queue.WithWorkers(*workers),
		queue.WithPollInterval(2*time.Second),
		queue.WithLease(cfg.Pipeline.LeaseDuration),
	)
	workerPool.Start()

	ingestor := ingest.NewFSIngestor(store, scoresRepo, catsRepo, jobsRepo, workerPool, logger)
	results, stats, err := ingestor.IngestDirectory(ctx, *dir, true)
	if err != nil {
		logger.Error("directory ingest failed", "dir", *dir, "error", err)
		os.Exit(1)
	}
	logger.Info("ingest complete",
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
	)
	for _, r := range results {
		if r.Err != "" {
			printError("skipped %s: %s\n", r.SourcePath, r.Err)
		}
	}

	waitForDrain(ctx, jobsRepo, logger)

	shutdownCtx, stopCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer stopCancel()
	workerPool.Shutdown(shutdownCtx)

	exporter := export.NewService(scoresRepo, logger)
	data, rows, err := exporter.ExportScoresXLSX(ctx, false)
	if err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		logger.Error("write xlsx", "path", *out, "error", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%d scores)\n", *out, rows)
}

// waitForDrain polls until every submitted job reaches a terminal
// stage or the context expires.
func waitForDrain(ctx context.Context, jobs repo.JobRepository, logger *slog.Logger) {
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.Warn("run budget exhausted before all jobs finished")
			return
		case <-ticker.C:
			n, err := jobs.CountActive(ctx)
			if err != nil {
				logger.Error("count active jobs", "error", err)
				return
			}
			if n == 0 {
				return
			}
		}
	}
}
