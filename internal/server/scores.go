package server

import (
	"context"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nota-music/nota-pipeline/gen/ent"
	scoresv1 "github.com/nota-music/nota-pipeline/gen/proto/scores/v1"
	"github.com/nota-music/nota-pipeline/internal/export"
	"github.com/nota-music/nota-pipeline/internal/ingest"
	"github.com/nota-music/nota-pipeline/internal/repository"
)

type ScoresService struct {
	scoresv1.UnimplementedScoresServiceServer
	ingestor  ingest.Ingestor
	scoreRepo repository.ScoreRepository
	catRepo   repository.CategoryRepository
	exporter  *export.Service
	logger    *slog.Logger
}

func NewScoresService(ing ingest.Ingestor, scores repository.ScoreRepository, cats repository.CategoryRepository, exporter *export.Service, logger *slog.Logger) *ScoresService {
	return &ScoresService{
		ingestor:  ing,
		scoreRepo: scores,
		catRepo:   cats,
		exporter:  exporter,
		logger:    logger,
	}
}

func (s *ScoresService) SubmitScore(ctx context.Context, req *scoresv1.SubmitScoreRequest) (*scoresv1.SubmitScoreResponse, error) {
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		s.logger.Error("submit request missing path")
		return nil, status.Error(codes.InvalidArgument, "path is required")
	}

	opts := ingest.Options{
		Title:      strings.TrimSpace(req.GetTitle()),
		Composer:   strings.TrimSpace(req.GetComposer()),
		Categories: req.GetCategories(),
	}
	if y := req.GetYear(); y != 0 {
		year := int(y)
		opts.Year = &year
	}

	s.logger.Info("submitting score", "path", path, "title", opts.Title)
	r, err := s.ingestor.IngestPath(ctx, path, opts)
	if err != nil {
		s.logger.Error("submit failed", "path", path, "error", err)
		return nil, status.Errorf(codes.InvalidArgument, "submit: %v", err)
	}

	return &scoresv1.SubmitScoreResponse{
		ScoreId:        r.ScoreID,
		JobId:          r.JobID,
		FileExt:        r.FileExt,
		ContentHashHex: r.HashHex,
		UploadedAt:     r.UploadedAt.UTC().Format(time.RFC3339),
	}, nil
}

func (s *ScoresService) SubmitDirectory(ctx context.Context, req *scoresv1.SubmitDirectoryRequest) (*scoresv1.SubmitDirectoryResponse, error) {
	root := strings.TrimSpace(req.GetRootPath())
	if root == "" {
		s.logger.Error("submit directory request missing root_path")
		return nil, status.Error(codes.InvalidArgument, "root_path is required")
	}

	s.logger.Info("submitting directory", "root", root, "skip_hidden", req.GetSkipHidden())
	results, stats, err := s.ingestor.IngestDirectory(ctx, root, req.GetSkipHidden())
	if err != nil {
		s.logger.Error("submit directory failed", "root", root, "error", err)
		return nil, status.Errorf(codes.Internal, "submit directory: %v", err)
	}

	out := make([]*scoresv1.SubmitScoreResponse, 0, len(results))
	for _, r := range results {
		out = append(out, &scoresv1.SubmitScoreResponse{
			ScoreId:        r.ScoreID,
			JobId:          r.JobID,
			FileExt:        r.FileExt,
			ContentHashHex: r.HashHex,
			Error:          r.Err,
		})
	}
	return &scoresv1.SubmitDirectoryResponse{
		Results:   out,
		Scanned:   stats.Scanned,
		Matched:   stats.Matched,
		Succeeded: stats.Succeeded,
		Failed:    stats.Failed,
	}, nil
}

func (s *ScoresService) GetScore(ctx context.Context, req *scoresv1.GetScoreRequest) (*scoresv1.GetScoreResponse, error) {
	id, err := parseUUID(req.GetScoreId(), "score_id")
	if err != nil {
		return nil, err
	}
	row, err := s.scoreRepo.Get(ctx, id)
	if err != nil {
		return nil, notFoundOrInternal(err, "score")
	}
	return &scoresv1.GetScoreResponse{Score: toPBScore(row)}, nil
}

func (s *ScoresService) ListScores(ctx context.Context, req *scoresv1.ListScoresRequest) (*scoresv1.ListScoresResponse, error) {
	rows, err := s.scoreRepo.List(ctx, req.GetProcessedOnly(), int(req.GetLimit()), int(req.GetOffset()))
	if err != nil {
		s.logger.Error("list scores failed", "error", err)
		return nil, status.Errorf(codes.Internal, "list scores: %v", err)
	}
	out := make([]*scoresv1.Score, 0, len(rows))
	for _, row := range rows {
		out = append(out, toPBScore(row))
	}
	return &scoresv1.ListScoresResponse{Scores: out}, nil
}

func (s *ScoresService) DeleteScore(ctx context.Context, req *scoresv1.DeleteScoreRequest) (*scoresv1.DeleteScoreResponse, error) {
	id, err := parseUUID(req.GetScoreId(), "score_id")
	if err != nil {
		return nil, err
	}
	if err := s.scoreRepo.Delete(ctx, id); err != nil {
		return nil, notFoundOrInternal(err, "score")
	}
	return &scoresv1.DeleteScoreResponse{}, nil
}

func (s *ScoresService) ListCategories(ctx context.Context, _ *scoresv1.ListCategoriesRequest) (*scoresv1.ListCategoriesResponse, error) {
	rows, err := s.catRepo.List(ctx)
	if err != nil {
		s.logger.Error("list categories failed", "error", err)
		return nil, status.Errorf(codes.Internal, "list categories: %v", err)
	}
	out := make([]*scoresv1.Category, 0, len(rows))
	for _, row := range rows {
		out = append(out, &scoresv1.Category{Id: row.ID.String(), Name: row.Name})
	}
	return &scoresv1.ListCategoriesResponse{Categories: out}, nil
}

func (s *ScoresService) CreateCategory(ctx context.Context, req *scoresv1.CreateCategoryRequest) (*scoresv1.CreateCategoryResponse, error) {
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}
	row, err := s.catRepo.Ensure(ctx, name)
	if err != nil {
		s.logger.Error("create category failed", "name", name, "error", err)
		return nil, status.Errorf(codes.Internal, "create category: %v", err)
	}
	return &scoresv1.CreateCategoryResponse{
		Category: &scoresv1.Category{Id: row.ID.String(), Name: row.Name},
	}, nil
}

func (s *ScoresService) ExportScores(ctx context.Context, req *scoresv1.ExportScoresRequest) (*scoresv1.ExportScoresResponse, error) {
	data, rows, err := s.exporter.ExportScoresXLSX(ctx, req.GetProcessedOnly())
	if err != nil {
		s.logger.Error("export failed", "error", err)
		return nil, status.Errorf(codes.Internal, "export: %v", err)
	}
	return &scoresv1.ExportScoresResponse{Xlsx: data, RowCount: uint32(rows)}, nil
}

func toPBScore(row *ent.Score) *scoresv1.Score {
	out := &scoresv1.Score{
		Id:         row.ID.String(),
		Title:      row.Title,
		Composer:   row.Composer,
		Processed:  row.Processed,
		UploadedAt: row.UploadedAt.UTC().Format(time.RFC3339),
	}
	if row.Year != nil {
		out.Year = int32(*row.Year)
	}
	if row.Lyrics != nil {
		out.Lyrics = *row.Lyrics
	}
	if row.Summary != nil {
		out.Summary = *row.Summary
	}
	if len(row.Results) > 0 {
		out.ResultsJson = string(row.Results)
	}
	for _, c := range row.Edges.Categories {
		out.Categories = append(out.Categories, &scoresv1.Category{Id: c.ID.String(), Name: c.Name})
	}
	return out
}

func parseUUID(raw, field string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s must be a UUID", field)
	}
	return id, nil
}
