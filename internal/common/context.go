package common

import "context"

type contextKey string

const contextKeyRequestID contextKey = "request_id"

// WithRequestID tags the context with an RPC request ID for log
// correlation across service and repository layers.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKeyRequestID, requestID)
}

// RequestIDFromContext returns the request ID, or "" when absent.
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(contextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}
