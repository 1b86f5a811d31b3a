package server_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	server "github.com/openair/jq300/internal/grpc"
	"github.com/openair/jq300/internal/grpc/mocks"
	pb "github.com/openair/jq300/proto"
)

func TestListDevices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProvider := mocks.NewMockAccountProvider(ctrl)
	svc := server.NewAirMonitorService(map[string]server.AccountProvider{
		"test@email.com": mockProvider,
	})

	tests := []struct {
		name          string
		request       *pb.ListDevicesRequest
		setupMock     func()
		expectedCode  codes.Code
		expectedError string
	}{
		{
			name:    "Success case",
			request: &pb.ListDevicesRequest{Account: "test@email.com"},
			setupMock: func() {
				mockProvider.EXPECT().
					Devices(gomock.Any()).
					Return([]server.DeviceRecord{
						{ID: 43133, Name: "Bedroom", Model: "JQ-300", Online: true, Available: true},
					}, nil)
			},
			expectedCode: codes.OK,
		},
		{
			name:          "Empty account",
			request:       &pb.ListDevicesRequest{},
			setupMock:     func() {},
			expectedCode:  codes.InvalidArgument,
			expectedError: "account must not be empty",
		},
		{
			name:          "Unknown account",
			request:       &pb.ListDevicesRequest{Account: "other@email.com"},
			setupMock:     func() {},
			expectedCode:  codes.NotFound,
			expectedError: "unknown account",
		},
		{
			name:    "Provider failure",
			request: &pb.ListDevicesRequest{Account: "test@email.com"},
			setupMock: func() {
				mockProvider.EXPECT().
					Devices(gomock.Any()).
					Return(nil, errors.New("cannot connect to cloud"))
			},
			expectedCode:  codes.Internal,
			expectedError: "device query failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			resp, err := svc.ListDevices(context.Background(), tt.request)

			if tt.expectedCode != codes.OK {
				require.Error(t, err)
				st, ok := status.FromError(err)
				require.True(t, ok)
				assert.Equal(t, tt.expectedCode, st.Code())
				assert.Contains(t, st.Message(), tt.expectedError)
				assert.Nil(t, resp)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, resp)
			require.Len(t, resp.Devices, 1)
			assert.Equal(t, int64(43133), resp.Devices[0].Id)
			assert.Equal(t, "Bedroom", resp.Devices[0].Name)
		})
	}
}

func TestGetSensors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProvider := mocks.NewMockAccountProvider(ctrl)
	svc := server.NewAirMonitorService(map[string]server.AccountProvider{
		"test@email.com": mockProvider,
	})

	t.Run("Averaged values", func(t *testing.T) {
		mockProvider.EXPECT().
			Sensors(gomock.Any(), int64(43133), false).
			Return([]server.SensorRecord{
				{Channel: 8, Name: "tvoc", Value: 0.612, Unit: "mg/m³"},
				{Channel: 4, Name: "internal_temperature", Value: 23.4, Unit: "°C"},
			}, true, nil)

		resp, err := svc.GetSensors(context.Background(), &pb.GetSensorsRequest{
			Account:  "test@email.com",
			DeviceId: 43133,
		})
		require.NoError(t, err)
		require.True(t, resp.Ready)
		require.Len(t, resp.Values, 2)
		// Values come back ordered by channel.
		assert.Equal(t, int32(4), resp.Values[0].Channel)
		assert.Equal(t, int32(8), resp.Values[1].Channel)
		assert.Equal(t, 0.612, resp.Values[1].Value)
	})

	t.Run("Not ready", func(t *testing.T) {
		mockProvider.EXPECT().
			Sensors(gomock.Any(), int64(43133), true).
			Return(nil, false, nil)

		resp, err := svc.GetSensors(context.Background(), &pb.GetSensorsRequest{
			Account:  "test@email.com",
			DeviceId: 43133,
			Raw:      true,
		})
		require.NoError(t, err)
		assert.False(t, resp.Ready)
		assert.Empty(t, resp.Values)
	})

	t.Run("Invalid device id", func(t *testing.T) {
		resp, err := svc.GetSensors(context.Background(), &pb.GetSensorsRequest{
			Account: "test@email.com",
		})
		require.Error(t, err)
		st, ok := status.FromError(err)
		require.True(t, ok)
		assert.Equal(t, codes.InvalidArgument, st.Code())
		assert.Contains(t, st.Message(), "invalid device id")
		assert.Nil(t, resp)
	})
}

func TestSetupServer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProvider := mocks.NewMockAccountProvider(ctrl)

	config := server.DefaultServerConfig()
	srv, err := server.SetupServer(map[string]server.AccountProvider{
		"test@email.com": mockProvider,
	}, config)

	require.NoError(t, err)
	require.NotNil(t, srv)
	srv.Stop()
}
