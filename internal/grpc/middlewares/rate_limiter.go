package middleware

import (
	"context"

	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// NewRateLimitInterceptor rejects requests beyond the configured rate with
// ResourceExhausted.
func NewRateLimitInterceptor(limit float64, burst int) grpc.UnaryServerInterceptor {
	limiter := rate.NewLimiter(rate.Limit(limit), burst)
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		if !limiter.Allow() {
			return nil, status.Errorf(codes.ResourceExhausted, "rate limit exceeded")
		}
		return handler(ctx, req)
	}
}
