package middleware

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc"
)

type contextKey string

const requestIDKey contextKey = "requestID"

// ContextMiddleware stamps every request with a unique id for log
// correlation.
func ContextMiddleware(
	ctx context.Context,
	req interface{},
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (interface{}, error) {
	ctx = context.WithValue(ctx, requestIDKey, uuid.NewString())
	return handler(ctx, req)
}

// RequestID returns the request id stamped by ContextMiddleware, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
