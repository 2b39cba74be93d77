package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/nota-music/nota-pipeline/constants"
	"github.com/nota-music/nota-pipeline/internal/artifactstore"
	"github.com/nota-music/nota-pipeline/internal/common"
	"github.com/nota-music/nota-pipeline/internal/omr"
)

// runomr converts one local score file and writes the recognized
// MusicXML (and MIDI, when a renderer is configured) next to it.
// No database, no queue; a direct exercise of the conversion adapter.
func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runomr <score-file>")
		os.Exit(2)
	}
	path := os.Args[1]
	ext := constants.NormalizeExt(filepath.Ext(path))
	if constants.MapExtToFormat(ext) == "" {
		logger.Error("unsupported file extension", "path", path, "ext", ext)
		os.Exit(2)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("read input", "path", path, "error", err)
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	ctx, cancel := context.WithTimeout(context.Background(), cfg.OMR.Timeout)
	defer cancel()

	// a scratch filesystem store stands in for the real artifact store
	scratch, err := os.MkdirTemp("", "runomr-*")
	if err != nil {
		logger.Error("mkdir temp", "error", err)
		os.Exit(1)
	}
	defer func() { _ = os.RemoveAll(scratch) }()

	store, err := artifactstore.NewFSStore(scratch, artifactstore.RejectOnExists)
	if err != nil {
		logger.Error("init store", "error", err)
		os.Exit(1)
	}

	jobID := uuid.New()
	srcKey := "input/" + jobID.String() + "." + ext
	if err := store.Put(ctx, srcKey, data, "application/octet-stream"); err != nil {
		logger.Error("stage input", "error", err)
		os.Exit(1)
	}

	adapter := omr.NewAdapter(cfg.OMR, store, logger)
	res, err := adapter.Convert(ctx, omr.ConvertRequest{
		JobID:     jobID,
		SourceKey: srcKey,
		SourceExt: ext,
	})
	if err != nil {
		logger.Error("conversion failed", "path", path, "error", err)
		os.Exit(1)
	}

	base := path[:len(path)-len(filepath.Ext(path))]
	xmlOut := base + ".xml"
	if err := os.WriteFile(xmlOut, res.MusicXML, 0o644); err != nil {
		logger.Error("write musicxml", "path", xmlOut, "error", err)
		os.Exit(1)
	}
	logger.Info("musicxml written", "path", xmlOut, "bytes", len(res.MusicXML))

	if len(res.MIDI) > 0 {
		midiOut := base + ".mid"
		if err := os.WriteFile(midiOut, res.MIDI, 0o644); err != nil {
			logger.Error("write midi", "path", midiOut, "error", err)
			os.Exit(1)
		}
		logger.Info("midi written", "path", midiOut, "bytes", len(res.MIDI))
	}
	for _, w := range res.Warnings {
		logger.Warn("conversion warning", "warning", w)
	}
}
