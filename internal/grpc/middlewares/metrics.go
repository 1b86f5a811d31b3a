package middleware

import (
	"context"
	"path"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"
)

var (
	// Requests counts served requests per method.
	Requests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "airmonitor_requests_total",
			Help: "Number of gRPC requests served, per method.",
		},
		[]string{"method"},
	)
	// Latency observes request duration per method.
	Latency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "airmonitor_request_duration_seconds",
			Help:    "gRPC request latency, per method.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)

func MetricsInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	duration := time.Since(start).Seconds()
	method := path.Base(info.FullMethod)

	Requests.WithLabelValues(method).Inc()
	Latency.WithLabelValues(method).Observe(duration)

	return resp, err
}
