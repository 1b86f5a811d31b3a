package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/openair/jq300/internal/config"
	server "github.com/openair/jq300/internal/grpc"
	"github.com/openair/jq300/internal/jq300"
	"github.com/openair/jq300/internal/scheduler"
)

// Command jq300d polls the JQ-300 vendor cloud for the air quality meters of
// the configured accounts and serves the readings over gRPC.
//
// The service supports:
//   - Multiple cloud accounts with per-account device allow-lists
//   - Live sensor updates over the vendor MQTT broker
//   - Trailing-window time-weighted averaging of sensor readings
//   - gRPC health checking (one service per account)
//   - Prometheus metrics
//
// Usage:
//
//	jq300d [flags]
//
// The flags are:
//
//	-config string
//	      path to config file (default "config.yaml")
func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	appConfig, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := setupLogger(appConfig.Logging)

	logger.WithFields(logrus.Fields{
		"host": appConfig.Server.Host,
		"port": appConfig.Server.Port,
	}).Info("Starting server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registry := buildRegistry(appConfig, logger)
	defer registry.Close()

	providers := make(map[string]server.AccountProvider, len(registry.All()))
	for _, account := range registry.All() {
		providers[account.Name()] = &accountAdapter{account: account}
	}

	serverConfig := server.ServerConfig{
		CacheSize:      appConfig.Server.CacheSize,
		RateLimit:      appConfig.Server.RateLimit,
		RateLimitBurst: appConfig.Server.RateLimitBurst,
		Logger:         logger,
	}
	srv, err := server.SetupServer(providers, serverConfig)
	if err != nil {
		logger.Fatalf("Failed to setup server: %v", err)
	}

	health := server.NewHealthChecker()
	grpc_health_v1.RegisterHealthServer(srv, health)
	for _, account := range registry.All() {
		health.SetServingStatus(account.Name(), grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf("%s:%d", appConfig.Server.Host, appConfig.Server.Port))
	if err != nil {
		logger.Fatalf("Failed to listen: %v", err)
	}

	sched := scheduler.NewScheduler(ctx, registry, logger)

	errChan := make(chan error, 1)

	// Bootstrap every account in a goroutine: first device list, the
	// active-device set and the first sensor fetch. Accounts flip to
	// SERVING as they come up; failed accounts are retried until they do.
	go bootstrapAccounts(ctx, registry, health, logger, bootstrapRetryInterval)

	go func() {
		if err := sched.Start(); err != nil {
			errChan <- fmt.Errorf("scheduler error: %w", err)
		}
	}()

	metricsSrv := startMetricsServer(appConfig.Metrics.Port, logger, errChan)

	go handleShutdown(ctx, srv, metricsSrv, sched, registry, logger)

	logger.WithFields(logrus.Fields{
		"port": appConfig.Server.Port,
	}).Info("Starting gRPC server")

	go func() {
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	if err := <-errChan; err != nil {
		logger.Fatalf("Service error: %v", err)
	}
}

func setupLogger(cfg config.LoggingConfig) *logrus.Logger {
	logger := logrus.New()
	if cfg.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// buildRegistry creates the account controllers from configuration.
func buildRegistry(cfg *config.Config, logger *logrus.Logger) *jq300.Registry {
	registry := jq300.NewRegistry()
	for _, acc := range cfg.Accounts {
		opts := []jq300.AccountOption{
			jq300.WithLogger(logger),
			jq300.WithPPBUnits(acc.ReceiveTvocInPpb, acc.ReceiveHchoInPpb),
			jq300.WithDeviceFilter(acc.Devices),
		}
		if !cfg.MQTT.Enabled {
			opts = append(opts, jq300.WithoutMQTT())
		} else if cfg.MQTT.Broker != "" {
			opts = append(opts, jq300.WithMQTT(cfg.MQTT.Broker, cfg.MQTT.Username, cfg.MQTT.Password))
		}
		registry.Add(jq300.NewAccount(acc.Username, acc.Password, opts...))
	}
	return registry
}

// bootstrapRetryInterval is the pause between bootstrap rounds while any
// account is still waiting for its first device list.
const bootstrapRetryInterval = 30 * time.Second

// bootstrapAccounts performs the initial cloud round-trip per account.
// Accounts that fail stay NOT_SERVING and are retried every retry interval
// until their first device list lands; only then are devices activated and
// the health status flipped.
func bootstrapAccounts(
	ctx context.Context,
	registry *jq300.Registry,
	health *server.HealthChecker,
	logger *logrus.Logger,
	retry time.Duration,
) {
	pending := registry.All()
	for len(pending) > 0 {
		var failed []*jq300.Account
		for _, account := range pending {
			if err := bootstrapAccount(ctx, account, health, logger); err != nil {
				failed = append(failed, account)
			}
		}
		pending = failed
		if len(pending) == 0 {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(retry):
		}
	}
}

func bootstrapAccount(
	ctx context.Context,
	account *jq300.Account,
	health *server.HealthChecker,
	logger *logrus.Logger,
) error {
	log := logger.WithField("account", account.NameSecure())

	devices, err := account.UpdateDevicesWithTimeout(ctx, jq300.UpdateTimeout)
	if err != nil {
		log.WithError(err).Error("Bootstrap: cannot fetch devices, will retry")
		return err
	}
	account.SetActiveDevices(ctx, account.FilterDevices(devices))

	// A failed first sensor fetch is not fatal: the scheduler refreshes
	// sensors on its own cadence once devices are active.
	if err := account.UpdateSensorsWithTimeout(ctx, jq300.UpdateTimeout); err != nil {
		log.WithError(err).Error("Bootstrap: cannot fetch sensors")
	}

	health.SetServingStatus(account.Name(), grpc_health_v1.HealthCheckResponse_SERVING)
	log.WithField("devices", len(devices)).Info("Account ready")
	return nil
}

func startMetricsServer(port int, logger *logrus.Logger, errChan chan<- error) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}
	go func() {
		logger.WithField("port", port).Info("Starting metrics server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("metrics server error: %w", err)
		}
	}()
	return srv
}

// Handle graceful shutdown
func handleShutdown(
	ctx context.Context,
	srv *grpc.Server,
	metricsSrv *http.Server,
	sched *scheduler.Scheduler,
	registry *jq300.Registry,
	logger *logrus.Logger,
) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case <-ctx.Done():
		logger.Println("Context canceled, initiating shutdown")
	case sig := <-sigChan:
		logger.Printf("Received signal %v, initiating shutdown", sig)
	}

	logger.Println("Gracefully stopping server...")
	sched.Stop()
	srv.GracefulStop()
	if err := metricsSrv.Shutdown(context.Background()); err != nil {
		logger.WithError(err).Warn("Metrics server shutdown failed")
	}
	registry.Close()
	logger.Println("Server stopped")
	os.Exit(0)
}

// accountAdapter exposes one account controller through the read surface the
// gRPC service consumes. It serves from the account caches only; the cloud
// round-trips stay on the scheduler.
type accountAdapter struct {
	account *jq300.Account
}

func (aa *accountAdapter) Devices(ctx context.Context) ([]server.DeviceRecord, error) {
	devices := aa.account.Devices()
	records := make([]server.DeviceRecord, 0, len(devices))
	for id, dev := range devices {
		records = append(records, server.DeviceRecord{
			ID:        id,
			Name:      dev.Name,
			Model:     dev.Model,
			Brand:     dev.Brand,
			Online:    dev.Online == 1,
			Available: aa.account.DeviceAvailable(id),
		})
	}
	return records, nil
}

func (aa *accountAdapter) Sensors(
	ctx context.Context,
	deviceID int64,
	raw bool,
) ([]server.SensorRecord, bool, error) {
	var values map[jq300.Channel]float64
	if raw {
		values = aa.account.SensorsRaw(deviceID)
	} else {
		values = aa.account.Sensors(deviceID)
	}
	if values == nil {
		return nil, false, nil
	}

	units := aa.account.Units()
	records := make([]server.SensorRecord, 0, len(values))
	for ch, value := range values {
		records = append(records, server.SensorRecord{
			Channel: int(ch),
			Name:    jq300.Channels[ch].Name,
			Value:   value,
			Unit:    units[ch],
		})
	}
	return records, true, nil
}
