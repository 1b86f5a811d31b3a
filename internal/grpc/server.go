package server

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	middleware "github.com/openair/jq300/internal/grpc/middlewares"
	pb "github.com/openair/jq300/proto"
)

// ServerConfig holds configuration options for the gRPC server
type ServerConfig struct {
	CacheSize      int     // Size of the LRU cache for device-list responses
	RateLimit      float64 // Requests per second
	RateLimitBurst int     // Maximum burst size for rate limiting
	Logger         *logrus.Logger
}

// DefaultServerConfig returns a ServerConfig with sensible defaults
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		CacheSize:      128,
		RateLimit:      5.0,
		RateLimitBurst: 10,
		Logger:         logrus.StandardLogger(),
	}
}

// DeviceRecord is one device as the service reports it.
type DeviceRecord struct {
	ID        int64
	Name      string
	Model     string
	Brand     string
	Online    bool
	Available bool
}

// SensorRecord is one channel reading as the service reports it.
type SensorRecord struct {
	Channel int
	Name    string
	Value   float64
	Unit    string
}

// AccountProvider defines the read surface one account controller exposes to
// the service. Implementations serve from cache and never hit the cloud.
type AccountProvider interface {
	Devices(ctx context.Context) ([]DeviceRecord, error)
	// Sensors returns the device's readings, averaged over the trailing
	// window unless raw is set. ready is false while no data has arrived.
	Sensors(ctx context.Context, deviceID int64, raw bool) (values []SensorRecord, ready bool, err error)
}

// AirMonitorService encapsulates the read surface over all accounts.
type AirMonitorService struct {
	pb.UnimplementedAirMonitorServiceServer
	providers map[string]AccountProvider
	validator *RequestValidator
}

// NewAirMonitorService creates a new service instance over the given
// providers, keyed by account name.
func NewAirMonitorService(providers map[string]AccountProvider) *AirMonitorService {
	return &AirMonitorService{
		providers: providers,
		validator: NewRequestValidator(),
	}
}

func (s *AirMonitorService) provider(account string) (AccountProvider, error) {
	provider, ok := s.providers[account]
	if !ok {
		return nil, status.Errorf(codes.NotFound, "unknown account: %s", account)
	}
	return provider, nil
}

// ListDevices implements the gRPC service method
func (s *AirMonitorService) ListDevices(
	ctx context.Context,
	req *pb.ListDevicesRequest,
) (*pb.ListDevicesResponse, error) {
	if err := s.validator.ValidateAccount(req.Account); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%s", err.Error())
	}
	provider, err := s.provider(req.Account)
	if err != nil {
		return nil, err
	}

	devices, err := provider.Devices(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "device query failed: %v", err)
	}
	sort.Slice(devices, func(i, j int) bool { return devices[i].ID < devices[j].ID })

	resp := &pb.ListDevicesResponse{}
	for _, dev := range devices {
		resp.Devices = append(resp.Devices, &pb.DeviceInfo{
			Id:        dev.ID,
			Name:      dev.Name,
			Model:     dev.Model,
			Brand:     dev.Brand,
			Online:    dev.Online,
			Available: dev.Available,
		})
	}
	return resp, nil
}

// GetSensors implements the gRPC service method
func (s *AirMonitorService) GetSensors(
	ctx context.Context,
	req *pb.GetSensorsRequest,
) (*pb.GetSensorsResponse, error) {
	if err := s.validator.Validate(req.Account, req.DeviceId); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%s", err.Error())
	}
	provider, err := s.provider(req.Account)
	if err != nil {
		return nil, err
	}

	values, ready, err := provider.Sensors(ctx, req.DeviceId, req.Raw)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "sensor query failed: %v", err)
	}
	sort.Slice(values, func(i, j int) bool { return values[i].Channel < values[j].Channel })

	resp := &pb.GetSensorsResponse{Ready: ready}
	for _, val := range values {
		resp.Values = append(resp.Values, &pb.SensorValue{
			Channel: int32(val.Channel),
			Name:    val.Name,
			Value:   val.Value,
			Unit:    val.Unit,
		})
	}
	return resp, nil
}

// ConfigureGRPCServer creates the server without the middleware chain (for
// development and debug only).
func ConfigureGRPCServer(
	providers map[string]AccountProvider,
	opts ...grpc.ServerOption,
) *grpc.Server {
	srv := grpc.NewServer(opts...)
	pb.RegisterAirMonitorServiceServer(srv, NewAirMonitorService(providers))
	return srv
}

// SetupServer initializes and configures the gRPC server with all middleware
func SetupServer(providers map[string]AccountProvider, config ServerConfig) (*grpc.Server, error) {
	if err := middleware.InitializeCache(config.CacheSize); err != nil {
		return nil, err
	}
	if config.Logger == nil {
		config.Logger = logrus.StandardLogger()
	}

	if err := registerMetrics(middleware.Requests, middleware.Latency); err != nil {
		return nil, err
	}

	server := grpc.NewServer(
		grpc.UnaryInterceptor(
			chainUnaryInterceptors(
				middleware.ContextMiddleware, // Add request ID first
				middleware.NewRateLimitInterceptor(config.RateLimit, config.RateLimitBurst),
				middleware.NewLoggingInterceptor(config.Logger),
				middleware.MetricsInterceptor,
				middleware.CachingInterceptor, // Cache last to avoid caching errors
			),
		),
	)

	pb.RegisterAirMonitorServiceServer(server, NewAirMonitorService(providers))
	return server, nil
}

func registerMetrics(collectors ...prometheus.Collector) error {
	for _, collector := range collectors {
		if err := prometheus.Register(collector); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				continue
			}
			return fmt.Errorf("register metrics: %w", err)
		}
	}
	return nil
}

// chainUnaryInterceptors creates a single interceptor from multiple interceptors
func chainUnaryInterceptors(interceptors ...grpc.UnaryServerInterceptor) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		chain := handler
		for i := len(interceptors) - 1; i >= 0; i-- {
			interceptor := interceptors[i]
			chainedInterceptor := chain
			chain = func(currentCtx context.Context, currentReq interface{}) (interface{}, error) {
				return interceptor(currentCtx, currentReq, info, chainedInterceptor)
			}
		}
		return chain(ctx, req)
	}
}
