package middleware

// Device lists change only on explicit refresh, so their responses are served
// from a small in-memory LRU for a short TTL. Sensor reads are never cached:
// the averaging window moves with every call.

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"google.golang.org/grpc"
)

const cacheTTL = 30 * time.Second

var cacheableMethods = map[string]bool{
	"/jq300.AirMonitorService/ListDevices": true,
}

type cacheEntry struct {
	resp      interface{}
	expiresAt time.Time
}

var cache *lru.Cache

// InitializeCache sets up the in-memory LRU cache.
func InitializeCache(size int) error {
	var err error
	cache, err = lru.New(size)
	return err
}

// CachingInterceptor is a gRPC middleware caching responses of cacheable
// methods in memory.
func CachingInterceptor(
	ctx context.Context,
	req interface{},
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (interface{}, error) {
	if !cacheableMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	key := generateCacheKey(info.FullMethod, req)
	if cached, ok := cache.Get(key); ok {
		entry := cached.(cacheEntry)
		if time.Now().Before(entry.expiresAt) {
			return entry.resp, nil
		}
		cache.Remove(key)
	}

	resp, err := handler(ctx, req)
	if err != nil {
		return nil, err
	}

	cache.Add(key, cacheEntry{resp: resp, expiresAt: time.Now().Add(cacheTTL)})
	return resp, nil
}

// generateCacheKey generates a cache key based on the gRPC method and request.
func generateCacheKey(method string, req interface{}) string {
	reqBytes, _ := json.Marshal(req)
	return fmt.Sprintf("%s:%s", method, string(reqBytes))
}
