package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/nota-music/nota-pipeline/internal/common"
)

// UnaryRequestID tags every RPC with a request ID and logs the call
// outcome. The ID travels in the context so downstream layers can
// correlate their log lines.
func UnaryRequestID(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		rid := uuid.New().String()
		ctx = common.WithRequestID(ctx, rid)

		start := time.Now()
		resp, err := handler(ctx, req)
		elapsed := time.Since(start)

		if err != nil {
			logger.Warn("rpc.error",
				"method", info.FullMethod,
				"req_id", rid,
				"code", status.Code(err).String(),
				"duration_ms", elapsed.Milliseconds(),
				"error", err,
			)
			return resp, err
		}
		logger.Info("rpc.ok",
			"method", info.FullMethod,
			"req_id", rid,
			"duration_ms", elapsed.Milliseconds(),
		)
		return resp, err
	}
}
