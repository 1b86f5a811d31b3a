package middleware

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
)

// Mock handler to simulate gRPC handler behavior.
func mockHandler(ctx context.Context, req interface{}) (interface{}, error) {
	return "response-" + req.(string), nil
}

func TestCachingInterceptor(t *testing.T) {
	require.NoError(t, InitializeCache(2), "Failed to initialize cache")

	ctx := context.Background()
	info := &grpc.UnaryServerInfo{
		FullMethod: "/jq300.AirMonitorService/ListDevices",
	}

	// cache miss
	req1 := "request1"
	resp, err := CachingInterceptor(ctx, req1, info, mockHandler)
	assert.NoError(t, err, "Error in first request")
	assert.Equal(t, "response-request1", resp, "Unexpected response for first request")

	// cache hit
	respCached, err := CachingInterceptor(ctx, req1, info, mockHandler)
	assert.NoError(t, err, "Error in cached request")
	assert.Equal(t, resp, respCached, "Cached response did not match original response")

	// Different request - cache miss
	req2 := "request2"
	resp2, err := CachingInterceptor(ctx, req2, info, mockHandler)
	assert.NoError(t, err, "Error in second request")
	assert.Equal(t, "response-request2", resp2, "Unexpected response for second request")

	// A third request evicts the first from the size-2 cache.
	req3 := "request3"
	_, err = CachingInterceptor(ctx, req3, info, mockHandler)
	assert.NoError(t, err, "Error in third request")

	respEvicted, ok := cache.Get(generateCacheKey(info.FullMethod, req1))
	assert.False(t, ok, "Expected first request to be evicted from cache")
	assert.Nil(t, respEvicted, "Evicted cache entry should be nil")
}

func TestCachingInterceptorSkipsSensorReads(t *testing.T) {
	require.NoError(t, InitializeCache(2))

	ctx := context.Background()
	info := &grpc.UnaryServerInfo{
		FullMethod: "/jq300.AirMonitorService/GetSensors",
	}

	calls := 0
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		calls++
		return calls, nil
	}

	resp, err := CachingInterceptor(ctx, "req", info, handler)
	require.NoError(t, err)
	assert.Equal(t, 1, resp)

	// The second identical request must reach the handler again.
	resp, err = CachingInterceptor(ctx, "req", info, handler)
	require.NoError(t, err)
	assert.Equal(t, 2, resp)
}
