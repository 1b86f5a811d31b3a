package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

func TestHealthChecker(t *testing.T) {
	h := NewHealthChecker()
	ctx := context.Background()

	// Unknown services report NotFound.
	_, err := h.Check(ctx, &grpc_health_v1.HealthCheckRequest{Service: "test@email.com"})
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.NotFound, st.Code())

	// An account starts NOT_SERVING and flips once bootstrapped.
	h.SetServingStatus("test@email.com", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	resp, err := h.Check(ctx, &grpc_health_v1.HealthCheckRequest{Service: "test@email.com"})
	require.NoError(t, err)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING, resp.Status)

	h.SetServingStatus("test@email.com", grpc_health_v1.HealthCheckResponse_SERVING)
	resp, err = h.Check(ctx, &grpc_health_v1.HealthCheckRequest{Service: "test@email.com"})
	require.NoError(t, err)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, resp.Status)
}

func TestHealthCheckerWatchUnsupported(t *testing.T) {
	h := NewHealthChecker()

	err := h.Watch(&grpc_health_v1.HealthCheckRequest{Service: "test@email.com"}, nil)
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.Unimplemented, st.Code())
}
