package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nota-music/nota-pipeline/internal/analysis"
	"github.com/nota-music/nota-pipeline/internal/repository"
)

// Service produces XLSX bytes for catalog exports.
type Service struct {
	scoreRepo repository.ScoreRepository
	logger    *slog.Logger
}

func NewService(scores repository.ScoreRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{scoreRepo: scores, logger: logger}
}

// ExportScoresXLSX returns an XLSX workbook (as bytes) listing the
// catalog, one row per score, with the headline analysis columns.
func (s *Service) ExportScoresXLSX(ctx context.Context, processedOnly bool) ([]byte, int, error) {
	start := time.Now()

	scores, err := s.scoreRepo.List(ctx, processedOnly, 0, 0)
	if err != nil {
		return nil, 0, fmt.Errorf("query scores: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Scores"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, 0, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Title",
		"Composer",
		"Year",
		"Categories",
		"Key",
		"Time Signature",
		"Ensemble",
		"Processed",
		"Uploaded",
		"Summary",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, sc := range scores {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		var feats analysis.Features
		if len(sc.Results) > 0 {
			_ = json.Unmarshal(sc.Results, &feats)
		}

		var cats []string
		for _, c := range sc.Edges.Categories {
			cats = append(cats, c.Name)
		}

		write(1, sc.Title)
		write(2, sc.Composer)
		if sc.Year != nil {
			write(3, *sc.Year)
		}
		write(4, strings.Join(cats, ", "))
		write(5, feats.Key)
		write(6, feats.TimeSignature)
		write(7, feats.EnsembleType)
		write(8, sc.Processed)
		write(9, sc.UploadedAt.Format("2006-01-02"))
		if sc.Summary != nil {
			write(10, truncate(*sc.Summary, 200))
		}
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 32) // title
	_ = f.SetColWidth(sheet, "B", "B", 24) // composer
	_ = f.SetColWidth(sheet, "C", "C", 8)  // year
	_ = f.SetColWidth(sheet, "D", "D", 24) // categories
	_ = f.SetColWidth(sheet, "E", "G", 16) // analysis columns
	_ = f.SetColWidth(sheet, "I", "I", 12) // uploaded
	_ = f.SetColWidth(sheet, "J", "J", 60) // summary

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(scores),
		"processed_only", processedOnly,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), len(scores), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
