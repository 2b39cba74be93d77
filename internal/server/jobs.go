package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nota-music/nota-pipeline/constants"
	scoresv1 "github.com/nota-music/nota-pipeline/gen/proto/scores/v1"
	"github.com/nota-music/nota-pipeline/internal/artifactstore"
	"github.com/nota-music/nota-pipeline/internal/common"
	"github.com/nota-music/nota-pipeline/internal/pipeline"
	"github.com/nota-music/nota-pipeline/internal/repository"
)

type JobsService struct {
	scoresv1.UnimplementedJobsServiceServer
	jobRepo repository.JobRepository
	store   artifactstore.Store
	logger  *slog.Logger
}

func NewJobsService(jobs repository.JobRepository, store artifactstore.Store, logger *slog.Logger) *JobsService {
	return &JobsService{jobRepo: jobs, store: store, logger: logger}
}

func (s *JobsService) GetJobStatus(ctx context.Context, req *scoresv1.GetJobStatusRequest) (*scoresv1.GetJobStatusResponse, error) {
	id, err := parseUUID(req.GetJobId(), "job_id")
	if err != nil {
		return nil, err
	}
	job, err := s.jobRepo.GetJob(ctx, id)
	if err != nil {
		return nil, notFoundOrInternal(err, "job")
	}
	return &scoresv1.GetJobStatusResponse{Job: toPBJob(job)}, nil
}

func (s *JobsService) ListJobs(ctx context.Context, req *scoresv1.ListJobsRequest) (*scoresv1.ListJobsResponse, error) {
	scoreID, err := parseUUID(req.GetScoreId(), "score_id")
	if err != nil {
		return nil, err
	}
	jobs, err := s.jobRepo.ListByScore(ctx, scoreID)
	if err != nil {
		s.logger.Error("list jobs failed", "score_id", scoreID, "error", err)
		return nil, status.Errorf(codes.Internal, "list jobs: %v", err)
	}
	out := make([]*scoresv1.JobStatus, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, toPBJob(job))
	}
	return &scoresv1.ListJobsResponse{Jobs: out}, nil
}

func (s *JobsService) CancelJob(ctx context.Context, req *scoresv1.CancelJobRequest) (*scoresv1.CancelJobResponse, error) {
	id, err := parseUUID(req.GetJobId(), "job_id")
	if err != nil {
		return nil, err
	}
	if err := s.jobRepo.RequestCancel(ctx, id); err != nil {
		if errors.Is(err, common.ErrConflict) {
			return nil, common.FailedPreconditionError("job already finished")
		}
		s.logger.Error("cancel failed", "job_id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "cancel: %v", err)
	}
	s.logger.Info("job cancel accepted", "job_id", id)
	return &scoresv1.CancelJobResponse{Accepted: true}, nil
}

func (s *JobsService) GetArtifact(ctx context.Context, req *scoresv1.GetArtifactRequest) (*scoresv1.GetArtifactResponse, error) {
	id, err := parseUUID(req.GetJobId(), "job_id")
	if err != nil {
		return nil, err
	}
	kind, ok := constants.ParseArtifactKind(req.GetKind())
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unknown artifact kind %q", req.GetKind())
	}

	job, err := s.jobRepo.GetJob(ctx, id)
	if err != nil {
		return nil, notFoundOrInternal(err, "job")
	}
	key, ok := job.Artifacts[kind]
	if !ok {
		return nil, status.Errorf(codes.NotFound, "artifact %s not produced", kind)
	}

	data, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, artifactstore.ErrNotFound) {
			return nil, status.Errorf(codes.NotFound, "artifact %s missing from store", kind)
		}
		s.logger.Error("artifact fetch failed", "job_id", id, "kind", kind, "error", err)
		return nil, status.Errorf(codes.Internal, "fetch artifact: %v", err)
	}

	return &scoresv1.GetArtifactResponse{
		Data:        data,
		ContentType: kind.ContentType(),
		FileName:    fmt.Sprintf("%s%s", kind, kind.Ext()),
	}, nil
}

func toPBJob(job *pipeline.Job) *scoresv1.JobStatus {
	out := &scoresv1.JobStatus{
		JobId:           job.ID.String(),
		ScoreId:         job.ScoreID.String(),
		Stage:           string(job.Stage),
		AttemptCount:    int32(job.AttemptCount),
		ErrorKind:       string(job.ErrorKind),
		ErrorStage:      string(job.ErrorStage),
		ErrorMessage:    job.ErrorMessage,
		CancelRequested: job.CancelRequested,
		CreatedAt:       job.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       job.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if !job.NotBefore.IsZero() {
		out.NotBefore = job.NotBefore.UTC().Format(time.RFC3339)
	}
	if len(job.Artifacts) > 0 {
		out.Artifacts = make(map[string]string, len(job.Artifacts))
		for k, v := range job.Artifacts {
			out.Artifacts[string(k)] = v
		}
	}
	return out
}

func notFoundOrInternal(err error, what string) error {
	if errors.Is(err, common.ErrNotFound) {
		return status.Errorf(codes.NotFound, "%s not found", what)
	}
	return status.Errorf(codes.Internal, "%s: %v", what, err)
}
