package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	scoresv1 "github.com/nota-music/nota-pipeline/gen/proto/scores/v1"
	"github.com/nota-music/nota-pipeline/internal/artifactstore"
	"github.com/nota-music/nota-pipeline/internal/common"
	"github.com/nota-music/nota-pipeline/internal/export"
	"github.com/nota-music/nota-pipeline/internal/ingest"
	"github.com/nota-music/nota-pipeline/internal/omr"
	"github.com/nota-music/nota-pipeline/internal/pipeline"
	"github.com/nota-music/nota-pipeline/internal/queue"
	repo "github.com/nota-music/nota-pipeline/internal/repository"
	svc "github.com/nota-music/nota-pipeline/internal/server"
	"github.com/nota-music/nota-pipeline/internal/summarize"
	"github.com/nota-music/nota-pipeline/internal/textextract"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	store, err := buildStore(ctx, cfg.Storage, logger)
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

	pool2 := queue.NewWorkerPool(jobsRepo, proc, logger,
		queue.WithWorkers(cfg.Pipeline.Workers),
		queue.WithQueueSize(cfg.Pipeline.QueueSize),
		queue.WithPollInterval(cfg.Pipeline.ReclaimInterval),
		queue.WithLease(cfg.Pipeline.LeaseDuration),
		queue.WithProcessTimeout(cfg.OMR.Timeout+10*time.Minute),
	)
	pool2.Start()

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(svc.UnaryRequestID(logger)))

	exporter := export.NewService(scoresRepo, logger)
	ingestor := ingest.NewFSIngestor(store, scoresRepo, catsRepo, jobsRepo, pool2, logger)

	scoresService := svc.NewScoresService(ingestor, scoresRepo, catsRepo, exporter, logger)
	scoresv1.RegisterScoresServiceServer(grpcServer, scoresService)
	jobsService := svc.NewJobsService(jobsRepo, store, logger)
	scoresv1.RegisterJobsServiceServer(grpcServer, jobsService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("notad listening", "addr", cfg.Server.GRPCAddr, "workers", cfg.Pipeline.Workers)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	grpcServer.GracefulStop()
	pool2.Shutdown(shutdownCtx)
	logger.Info("stopped")
}

func buildStore(ctx context.Context, cfg common.StorageConfig, logger *slog.Logger) (artifactstore.Store, error) {
	if cfg.Endpoint != "" {
		return artifactstore.NewMinioStore(ctx, cfg, artifactstore.RejectOnExists, logger)
	}
	return artifactstore.NewFSStore(cfg.LocalDir, artifactstore.RejectOnExists)
}
