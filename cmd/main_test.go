package main

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/health/grpc_health_v1"

	server "github.com/openair/jq300/internal/grpc"
	"github.com/openair/jq300/internal/jq300"
)

// flakyCloud fakes the vendor cloud with a device-list endpoint that fails
// for the first few calls, the way the real cloud does after idle periods.
func flakyCloud(t *testing.T, deviceFailures int32) *httptest.Server {
	t.Helper()
	var deviceCalls int32

	mux := http.NewServeMux()
	mux.HandleFunc("/api/loginByEmail", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code":2000,"uid":12345,"safeToken":"token-1"}`)
	})
	mux.HandleFunc("/api/deviceManager", func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&deviceCalls, 1) <= deviceFailures {
			fmt.Fprint(w, `{"code":9999}`)
			return
		}
		fmt.Fprint(w, `{"code":2000,"deviceInfoBodyList":[`+
			`{"deviceid":43133,"pt_name":"Bedroom","pt_model":"JQ-300",`+
			`"brandname":"JQ","deviceToken":"tok-43133","onlinestat":1}]}`)
	})
	mux.HandleFunc("/dev/list", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `jsoncallback({"returnCode":"0","deviceValueVos":[`+
			`{"seq":6,"content":"14"}]})`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestBootstrapRetriesUntilAccountReady(t *testing.T) {
	logger := quietLogger()
	// Both device-list attempts of the first bootstrap round fail; the
	// retry round succeeds.
	cloud := flakyCloud(t, 2)

	account := jq300.NewAccount("test@email.com", "12345678",
		jq300.WithLogger(logger),
		jq300.WithoutMQTT(),
		jq300.WithBaseURLs(cloud.URL+"/api/", cloud.URL+"/dev/"),
	)
	t.Cleanup(account.Close)

	registry := jq300.NewRegistry()
	registry.Add(account)

	health := server.NewHealthChecker()
	health.SetServingStatus(account.Name(), grpc_health_v1.HealthCheckResponse_NOT_SERVING)

	ctx := context.Background()
	bootstrapAccounts(ctx, registry, health, logger, 10*time.Millisecond)

	resp, err := health.Check(ctx, &grpc_health_v1.HealthCheckRequest{Service: "test@email.com"})
	require.NoError(t, err)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, resp.Status)

	assert.Equal(t, []int64{43133}, account.ActiveDevices())
	assert.NotNil(t, account.SensorsRaw(43133))
}

func TestBootstrapStopsOnCanceledContext(t *testing.T) {
	logger := quietLogger()
	// The cloud never recovers; cancellation must end the retry loop.
	cloud := flakyCloud(t, 1<<30)

	account := jq300.NewAccount("test@email.com", "12345678",
		jq300.WithLogger(logger),
		jq300.WithoutMQTT(),
		jq300.WithBaseURLs(cloud.URL+"/api/", cloud.URL+"/dev/"),
	)
	t.Cleanup(account.Close)

	registry := jq300.NewRegistry()
	registry.Add(account)

	health := server.NewHealthChecker()
	health.SetServingStatus(account.Name(), grpc_health_v1.HealthCheckResponse_NOT_SERVING)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		bootstrapAccounts(ctx, registry, health, logger, time.Hour)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("bootstrap did not stop after context cancellation")
	}

	resp, err := health.Check(context.Background(),
		&grpc_health_v1.HealthCheckRequest{Service: "test@email.com"})
	require.NoError(t, err)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING, resp.Status)
}
