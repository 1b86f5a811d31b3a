package jq300

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/sirupsen/logrus"
)

// mqttEvent is one parsed broker message, handed from the paho network
// goroutine to the account's event loop. The queue keeps mutation of the
// sensor caches out of the broker callback thread.
type mqttEvent struct {
	deviceToken string
	msgType     string
	content     string
}

type mqttChannel struct {
	client mqtt.Client
	log    *logrus.Logger
	events chan mqttEvent
	done   chan struct{}
}

// mqttConnect lazily creates and connects the MQTT side-channel for an
// authenticated session. It is idempotent: a second call, or a call on an
// unauthenticated account, is a no-op.
func (a *Account) mqttConnect() {
	if !a.mqttEnabled {
		return
	}
	a.log.Debug("Start connecting to cloud MQTT-server")

	a.mu.Lock()
	if a.mqtt != nil || !a.cli.isConnected() {
		a.mu.Unlock()
		return
	}
	ch := &mqttChannel{
		log:    a.log,
		events: make(chan mqttEvent, 64),
		done:   make(chan struct{}),
	}
	a.mqtt = ch
	uid := a.cli.sessionUID()
	a.mu.Unlock()

	opts := mqtt.NewClientOptions().
		AddBroker(a.mqttBroker).
		SetClientID(fmt.Sprintf("%d_%d", uid, a.now().UnixMilli())).
		SetUsername(a.mqttUsername).
		SetPassword(a.mqttPassword).
		SetCleanSession(true).
		SetKeepAlive(60 * time.Second).
		SetAutoReconnect(true).
		SetMaxReconnectInterval(10 * time.Second)

	opts.SetOnConnectHandler(func(client mqtt.Client) {
		a.log.Debug("Connected to MQTT")
		ch.subscribe(a.deviceTopics(context.Background(), a.ActiveDevices()))
	})
	opts.SetConnectionLostHandler(func(client mqtt.Client, err error) {
		a.log.WithError(err).Warn("MQTT connection lost, reconnecting")
	})
	opts.SetDefaultPublishHandler(func(client mqtt.Client, msg mqtt.Message) {
		ch.enqueue(msg)
	})

	ch.client = mqtt.NewClient(opts)

	go a.mqttLoop(ch)
	go func() {
		if token := ch.client.Connect(); token.Wait() && token.Error() != nil {
			a.log.WithError(token.Error()).Error("Cannot connect to MQTT broker")
		}
	}()
}

// enqueue parses a broker message and hands it to the event loop. Events are
// dropped (with a log line) when the queue is full rather than blocking the
// network goroutine.
func (c *mqttChannel) enqueue(msg mqtt.Message) {
	var payload struct {
		Type        string          `json:"type"`
		DeviceToken string          `json:"deviceToken"`
		Content     json.RawMessage `json:"content"`
	}
	if err := json.Unmarshal(msg.Payload(), &payload); err != nil {
		c.log.WithError(err).Warn("Malformed MQTT message")
		return
	}

	content := string(payload.Content)
	var unquoted string
	if json.Unmarshal(payload.Content, &unquoted) == nil {
		content = unquoted
	}

	ev := mqttEvent{
		deviceToken: payload.DeviceToken,
		msgType:     payload.Type,
		content:     content,
	}
	select {
	case c.events <- ev:
	default:
		c.log.Warn("MQTT event queue full, dropping message")
	}
}

func (a *Account) mqttLoop(ch *mqttChannel) {
	for {
		select {
		case ev := <-ch.events:
			a.handleMQTTEvent(ev)
		case <-ch.done:
			return
		}
	}
}

// handleMQTTEvent routes one live update into the same caches the polling
// path writes. Messages for tokens not in the device map are ignored; they
// are late messages for devices no longer active.
func (a *Account) handleMQTTEvent(ev mqttEvent) {
	a.mu.RLock()
	deviceID := int64(-1)
	for id, dev := range a.devices {
		if dev.Token == ev.deviceToken {
			deviceID = id
		}
	}
	a.mu.RUnlock()
	if deviceID < 0 {
		return
	}

	switch ev.msgType {
	case "V":
		mqttMessages.WithLabelValues("V").Inc()
		a.log.WithField("device", deviceID).Debug("Update sensors for device")
		var readings []rawReading
		if err := json.Unmarshal([]byte(ev.content), &readings); err != nil {
			a.log.WithError(err).Warn("Malformed MQTT sensor payload")
			return
		}
		a.extractSensorsData(deviceID, a.now().Unix(), readings)

	case "C":
		mqttMessages.WithLabelValues("C").Inc()
		online, err := strconv.ParseInt(ev.content, 10, 64)
		if err != nil {
			a.log.WithError(err).Warn("Malformed MQTT online status")
			return
		}
		a.log.WithFields(logrus.Fields{
			"device": deviceID,
			"online": online,
		}).Debug("Update online status for device")
		a.mu.Lock()
		if dev, ok := a.devices[deviceID]; ok {
			if int64(dev.Online) != online {
				dev.SeenAt = a.now()
			}
			dev.Online = flexInt(online)
		}
		a.mu.Unlock()

	default:
		mqttMessages.WithLabelValues("unknown").Inc()
		a.log.WithField("type", ev.msgType).Warn("Unknown message type")
	}
}

func (c *mqttChannel) subscribe(topics []string) {
	if c == nil || len(topics) == 0 || !c.client.IsConnected() {
		return
	}
	filters := make(map[string]byte, len(topics))
	for _, topic := range topics {
		filters[topic] = 0
	}
	if token := c.client.SubscribeMultiple(filters, nil); token.Wait() && token.Error() != nil {
		c.log.WithError(token.Error()).Error("Failed to subscribe to MQTT topics")
	}
}

func (c *mqttChannel) unsubscribe(topics []string) {
	if c == nil || len(topics) == 0 || !c.client.IsConnected() {
		return
	}
	if token := c.client.Unsubscribe(topics...); token.Wait() && token.Error() != nil {
		c.log.WithError(token.Error()).Error("Failed to unsubscribe from MQTT topics")
	}
}

func (c *mqttChannel) close() {
	close(c.done)
	if c.client != nil && c.client.IsConnected() {
		c.client.Disconnect(250)
		c.log.Debug("MQTT client disconnected")
	}
}
