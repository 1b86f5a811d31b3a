//go:build integration
// +build integration

package integration_test

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	server "github.com/openair/jq300/internal/grpc"
	"github.com/openair/jq300/internal/jq300"
	pb "github.com/openair/jq300/proto"
)

const bufSize = 1024 * 1024

var (
	lis    *bufconn.Listener
	logger *logrus.Logger
)

// setupMockCloud fakes the vendor cloud: login, device list and one device's
// sensor readings.
func setupMockCloud(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/loginByEmail", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code":2000,"uid":12345,"safeToken":"token-1"}`)
	})
	mux.HandleFunc("/api/deviceManager", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code":2000,"deviceInfoBodyList":[`+
			`{"deviceid":43133,"pt_name":"Bedroom","pt_model":"JQ-300",`+
			`"brandname":"JQ","deviceToken":"tok-43133","onlinestat":1}]}`)
	})
	mux.HandleFunc("/dev/list", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `jsoncallback({"returnCode":"0","deviceValueVos":[`+
			`{"seq":1,"content":"0"},{"seq":4,"content":"23.4"},`+
			`{"seq":6,"content":"14"},{"seq":8,"content":"0.612"}]})`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func setupAccount(t *testing.T, cloud *httptest.Server) *jq300.Account {
	account := jq300.NewAccount("test@email.com", "12345678",
		jq300.WithLogger(logger),
		jq300.WithoutMQTT(),
		jq300.WithBaseURLs(cloud.URL+"/api/", cloud.URL+"/dev/"),
	)
	t.Cleanup(account.Close)

	ctx := context.Background()
	devices, err := account.UpdateDevices(ctx, false)
	require.NoError(t, err)
	account.SetActiveDevices(ctx, account.FilterDevices(devices))
	require.NoError(t, account.UpdateSensors(ctx))

	return account
}

func setupGRPCServer(t *testing.T, account *jq300.Account) func() {
	lis = bufconn.Listen(bufSize)

	srv, err := server.SetupServer(map[string]server.AccountProvider{
		account.Name(): &testAccountAdapter{account},
	}, server.ServerConfig{
		CacheSize:      16,
		RateLimit:      100.0,
		RateLimitBurst: 100,
		Logger:         logger,
	})
	require.NoError(t, err)

	go func() {
		if err := srv.Serve(lis); err != nil {
			logger.Errorf("Error serving: %v", err)
		}
	}()

	return func() {
		srv.Stop()
		lis.Close()
	}
}

func setupTestClient(ctx context.Context) (pb.AirMonitorServiceClient, error) {
	conn, err := grpc.DialContext(ctx, "bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
			return lis.Dial()
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, err
	}

	return pb.NewAirMonitorServiceClient(conn), nil
}

func setupTestEnvironment(t *testing.T) pb.AirMonitorServiceClient {
	logger = logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	cloud := setupMockCloud(t)
	account := setupAccount(t, cloud)
	cleanup := setupGRPCServer(t, account)
	t.Cleanup(cleanup)

	client, err := setupTestClient(context.Background())
	require.NoError(t, err)
	return client
}

func TestAirMonitorE2E(t *testing.T) {
	client := setupTestEnvironment(t)
	ctx := context.Background()

	resp, err := client.ListDevices(ctx, &pb.ListDevicesRequest{Account: "test@email.com"})
	require.NoError(t, err)
	require.Len(t, resp.Devices, 1)
	assert.Equal(t, int64(43133), resp.Devices[0].Id)
	assert.Equal(t, "Bedroom", resp.Devices[0].Name)
	assert.True(t, resp.Devices[0].Online)

	raw, err := client.GetSensors(ctx, &pb.GetSensorsRequest{
		Account:  "test@email.com",
		DeviceId: 43133,
		Raw:      true,
	})
	require.NoError(t, err)
	require.True(t, raw.Ready)
	require.Len(t, raw.Values, 4)
	// Values sorted by channel: alert, temperature, pm25, tvoc.
	assert.Equal(t, int32(1), raw.Values[0].Channel)
	assert.Equal(t, 23.0, raw.Values[1].Value)
	assert.Equal(t, 14.0, raw.Values[2].Value)
	assert.Equal(t, 0.612, raw.Values[3].Value)

	avg, err := client.GetSensors(ctx, &pb.GetSensorsRequest{
		Account:  "test@email.com",
		DeviceId: 43133,
	})
	require.NoError(t, err)
	require.True(t, avg.Ready)
	// A single point dominates the whole window, so the average equals it.
	assert.Equal(t, 14.0, avg.Values[2].Value)
}

func TestAirMonitorErrorCases(t *testing.T) {
	client := setupTestEnvironment(t)
	ctx := context.Background()

	testCases := []struct {
		name     string
		req      *pb.GetSensorsRequest
		wantCode codes.Code
	}{
		{
			name:     "unknown account",
			req:      &pb.GetSensorsRequest{Account: "other@email.com", DeviceId: 43133},
			wantCode: codes.NotFound,
		},
		{
			name:     "missing account",
			req:      &pb.GetSensorsRequest{DeviceId: 43133},
			wantCode: codes.InvalidArgument,
		},
		{
			name:     "bad device id",
			req:      &pb.GetSensorsRequest{Account: "test@email.com"},
			wantCode: codes.InvalidArgument,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := client.GetSensors(ctx, tc.req)
			require.Error(t, err)
			st, ok := status.FromError(err)
			require.True(t, ok)
			assert.Equal(t, tc.wantCode, st.Code())
		})
	}
}

func TestMiddlewareIntegration(t *testing.T) {
	client := setupTestEnvironment(t)
	ctx := context.Background()

	req := &pb.ListDevicesRequest{Account: "test@email.com"}

	// Device lists are cached; both responses must match.
	resp1, err := client.ListDevices(ctx, req)
	require.NoError(t, err)
	resp2, err := client.ListDevices(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, resp1.Devices, resp2.Devices, "Cache should return same response")
}

type testAccountAdapter struct {
	account *jq300.Account
}

func (ta *testAccountAdapter) Devices(ctx context.Context) ([]server.DeviceRecord, error) {
	devices := ta.account.Devices()
	records := make([]server.DeviceRecord, 0, len(devices))
	for id, dev := range devices {
		records = append(records, server.DeviceRecord{
			ID:        id,
			Name:      dev.Name,
			Model:     dev.Model,
			Brand:     dev.Brand,
			Online:    dev.Online == 1,
			Available: ta.account.DeviceAvailable(id),
		})
	}
	return records, nil
}

func (ta *testAccountAdapter) Sensors(
	ctx context.Context,
	deviceID int64,
	raw bool,
) ([]server.SensorRecord, bool, error) {
	var values map[jq300.Channel]float64
	if raw {
		values = ta.account.SensorsRaw(deviceID)
	} else {
		values = ta.account.Sensors(deviceID)
	}
	if values == nil {
		return nil, false, nil
	}

	units := ta.account.Units()
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
