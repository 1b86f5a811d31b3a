package jq300

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cloudRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jq300_cloud_requests_total",
			Help: "Cloud requests by endpoint family and result",
		},
		[]string{"family", "result"},
	)

	mqttMessages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jq300_mqtt_messages_total",
			Help: "MQTT messages by type",
		},
		[]string{"type"},
	)
)
