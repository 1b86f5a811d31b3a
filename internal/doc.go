// Package jq300 implements an air quality monitoring service for JQ-300
// meters behind the vendor cloud.
//
// # Architecture
//
// The service is structured into several key packages:
//   - jq300: Cloud session, device registry, sensor ingestion and MQTT
//   - config: YAML/environment configuration
//   - grpc: gRPC service implementation
//   - scheduler: Background polling of the cloud
//
// Key Features
//
//   - Accounts:
//     Multiple cloud logins, each with its own device allow-list and
//     unit preferences (mg/m3 or ppb for TVOC and HCHO).
//
//   - Sensor Readings:
//     Raw readings arrive by polling and over the vendor MQTT broker;
//     reported values are time-weighted averages over a trailing
//     ten-minute window to smooth the meters' sporadic reporting.
//
//   - Performance:
//     Device lists are cached behind an LRU with a short TTL, cloud
//     fetches are throttled independently of caller polling.
//
// Example Usage
//
//	client := pb.NewAirMonitorServiceClient(conn)
//	resp, err := client.GetSensors(ctx, &pb.GetSensorsRequest{
//	    Account:  "user@example.com",
//	    DeviceId: 43133,
//	})
//
// For more information about specific packages, see their respective
// documentation.
package jq300
