package jq300

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// ErrCannotConnect is returned when the account could not authenticate
// against the cloud after the forced retry.
var ErrCannotConnect = errors.New("cannot connect to cloud")

// Device is one JQ-300/200/100 meter bound to an account. The JSON tags match
// the deviceManager payload of the cloud.
type Device struct {
	ID     int64   `json:"deviceid"`
	Name   string  `json:"pt_name"`
	Model  string  `json:"pt_model"`
	Brand  string  `json:"brandname"`
	Token  string  `json:"deviceToken"`
	Online flexInt `json:"onlinestat"`

	// FetchedAt is the device-list fetch timestamp in unix milliseconds.
	FetchedAt int64 `json:"-"`
	// SeenAt is the local time of the last online-status report, either
	// from a list fetch or an MQTT connectivity push.
	SeenAt time.Time `json:"-"`
}

// Account is the controller for one cloud login. It owns the HTTP session,
// the device registry, the per-device sensor history and the optional MQTT
// live-update channel. All cached state sits behind one mutex; MQTT events
// are queued and applied by a goroutine owned by the account, so the polling
// path and the broker callbacks never interleave mid-update.
type Account struct {
	cli *client
	log *logrus.Logger

	username     string
	password     string
	tvocInPPB    bool
	hchoInPPB    bool
	deviceFilter []string

	units    map[Channel]string
	now      func() time.Time
	throttle *rate.Limiter

	mqttEnabled  bool
	mqttBroker   string
	mqttUsername string
	mqttPassword string

	apiBase    string
	deviceBase string

	mu            sync.RWMutex
	devicesLoaded bool
	devices       map[int64]*Device
	active        []int64
	sensors       map[int64]map[int64]map[Channel]float64
	sensorsRaw    map[int64]map[Channel]float64
	mqtt          *mqttChannel
}

// AccountOption configures an Account at construction time.
type AccountOption func(*Account)

// WithLogger replaces the default logger.
func WithLogger(log *logrus.Logger) AccountOption {
	return func(a *Account) { a.log = log }
}

// WithPPBUnits switches TVOC and/or HCHO reporting from mg/m3 to ppb.
func WithPPBUnits(tvoc, hcho bool) AccountOption {
	return func(a *Account) { a.tvocInPPB, a.hchoInPPB = tvoc, hcho }
}

// WithDeviceFilter restricts which devices become active, by display name.
// An empty filter admits every device.
func WithDeviceFilter(names []string) AccountOption {
	return func(a *Account) { a.deviceFilter = names }
}

// WithMQTT overrides the vendor broker and credentials.
func WithMQTT(broker, username, password string) AccountOption {
	return func(a *Account) {
		a.mqttBroker, a.mqttUsername, a.mqttPassword = broker, username, password
	}
}

// WithoutMQTT disables the live-update channel; all data comes from polling.
func WithoutMQTT() AccountOption {
	return func(a *Account) { a.mqttEnabled = false }
}

// WithBaseURLs points the client at alternate endpoint roots.
func WithBaseURLs(api, device string) AccountOption {
	return func(a *Account) { a.apiBase, a.deviceBase = api, device }
}

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) AccountOption {
	return func(a *Account) { a.now = now }
}

// NewAccount creates the controller for one configured cloud login. Login is
// performed lazily on first use.
func NewAccount(username, password string, opts ...AccountOption) *Account {
	a := &Account{
		log:          logrus.StandardLogger(),
		username:     username,
		password:     password,
		now:          time.Now,
		throttle:     rate.NewLimiter(rate.Every(SensorsUpdateMinInterval), 1),
		mqttEnabled:  true,
		mqttBroker:   DefaultMQTTBroker,
		mqttUsername: DefaultMQTTUsername,
		mqttPassword: DefaultMQTTPassword,
		devices:      make(map[int64]*Device),
		sensors:      make(map[int64]map[int64]map[Channel]float64),
		sensorsRaw:   make(map[int64]map[Channel]float64),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.cli = newClient(a.log)
	if a.apiBase != "" {
		a.cli.apiBase = a.apiBase
	}
	if a.deviceBase != "" {
		a.cli.deviceBase = a.deviceBase
	}

	a.units = make(map[Channel]string, len(Channels))
	for id, info := range Channels {
		switch {
		case info.Binary:
			a.units[id] = ""
		case (a.tvocInPPB && id == ChannelTVOC) || (a.hchoInPPB && id == ChannelHCHO):
			a.units[id] = UnitPPB
		default:
			a.units[id] = info.Unit
		}
	}
	return a
}

// UniqueID returns the controller unique id.
func (a *Account) UniqueID() string { return a.username }

// Name returns the account name.
func (a *Account) Name() string { return a.username }

// NameSecure returns the masked account name for log output.
func (a *Account) NameSecure() string { return MaskEmail(a.username) }

// IsConnected reports whether the account holds an authenticated session.
func (a *Account) IsConnected() bool { return a.cli.isConnected() }

// Available reports whether the account is usable.
func (a *Account) Available() bool { return a.IsConnected() }

// Units returns the unit of measurement per channel, honoring the ppb
// preference flags.
func (a *Account) Units() map[Channel]string {
	res := make(map[Channel]string, len(a.units))
	for id, unit := range a.units {
		res[id] = unit
	}
	return res
}

type loginResponse struct {
	UID       flexInt `json:"uid"`
	SafeToken string  `json:"safeToken"`
}

// Connect (re)connects to the cloud account and reports the connection
// status. Without force an existing session short-circuits. The login is
// attempted at most twice: the cloud intermittently fails the first request
// after idle periods, so one failure triggers a single forced retry.
func (a *Account) Connect(ctx context.Context, force bool) bool {
	if !force && a.cli.isConnected() {
		return true
	}

	attempts := 2
	if force {
		attempts = 1
	}
	for i := 0; i < attempts; i++ {
		forced := force || i > 0
		if forced {
			a.log.Debug("Connecting to cloud server (FORCE mode)")
		} else {
			a.log.Debug("Connecting to cloud server")
		}

		a.cli.resetSession()
		var resp loginResponse
		err := a.cli.query(ctx, QueryTypeAPI, "loginByEmail", url.Values{
			"chr":      {"clt"},
			"email":    {a.username},
			"password": {a.password},
			"os":       {"2"},
		}, &resp)
		if err != nil {
			continue
		}

		a.cli.setSession(int64(resp.UID), resp.SafeToken)

		// Force a fresh device list on next use.
		a.mu.Lock()
		a.devices = make(map[int64]*Device)
		a.devicesLoaded = false
		a.mu.Unlock()

		a.mqttConnect()
		return true
	}
	return false
}

type deviceListResponse struct {
	DeviceInfoBodyList []*Device `json:"deviceInfoBodyList"`
}

// UpdateDevices fetches the device list bound to the account, merging it into
// the registry keyed by device id. A cached non-empty list is returned as-is
// unless force is set. Transient failures are retried once forced.
func (a *Account) UpdateDevices(ctx context.Context, force bool) (map[int64]*Device, error) {
	if !a.Connect(ctx, false) {
		a.log.Error("Can't connect to cloud.")
		return nil, ErrCannotConnect
	}

	a.mu.RLock()
	loaded := a.devicesLoaded && len(a.devices) > 0
	a.mu.RUnlock()
	if !force && loaded {
		return a.Devices(), nil
	}

	a.log.WithField("account", a.NameSecure()).Debug("Updating devices list")

	attempts := 2
	if force {
		attempts = 1
	}
	var resp deviceListResponse
	var err error
	for i := 0; i < attempts; i++ {
		resp = deviceListResponse{}
		err = a.cli.query(ctx, QueryTypeAPI, "deviceManager", url.Values{
			"platform":   {"android"},
			"clientType": {"2"},
			"action":     {"deviceManager"},
		}, &resp)
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil, err
	}

	now := a.now()
	tstamp := now.UnixMilli()
	a.mu.Lock()
	for _, dev := range resp.DeviceInfoBodyList {
		dev.FetchedAt = tstamp
		dev.SeenAt = now
		a.devices[dev.ID] = dev
	}
	for id := range a.devices {
		if a.sensors[id] == nil {
			a.sensors[id] = make(map[int64]map[Channel]float64)
		}
	}
	a.devicesLoaded = true
	a.mu.Unlock()

	return a.Devices(), nil
}

// UpdateDevicesWithTimeout runs UpdateDevices under an end-to-end deadline,
// canceling the in-flight request when it expires.
func (a *Account) UpdateDevicesWithTimeout(ctx context.Context, timeout time.Duration) (map[int64]*Device, error) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	defer func() {
		a.log.WithFields(logrus.Fields{
			"account": a.NameSecure(),
			"elapsed": fmt.Sprintf("%.3fs", time.Since(start).Seconds()),
		}).Debug("Finished fetching devices list")
	}()

	devs, err := a.UpdateDevices(ctx, false)
	if ctx.Err() != nil {
		a.log.WithField("account", a.NameSecure()).Error("Timeout fetching devices list")
		return nil, ctx.Err()
	}
	return devs, err
}

// Devices returns a snapshot of the device registry.
func (a *Account) Devices() map[int64]*Device {
	a.mu.RLock()
	defer a.mu.RUnlock()
	res := make(map[int64]*Device, len(a.devices))
	for id, dev := range a.devices {
		cp := *dev
		res[id] = &cp
	}
	return res
}

// DeviceAvailable reports whether a device is usable: the account must be
// connected, the device's last online report truthy and recent enough that a
// stale MQTT push does not count.
func (a *Account) DeviceAvailable(deviceID int64) bool {
	a.mu.RLock()
	dev, ok := a.devices[deviceID]
	var online bool
	var fresh bool
	if ok {
		online = dev.Online == 1
		fresh = a.now().Sub(dev.SeenAt) <= AvailableTimeout
	}
	a.mu.RUnlock()

	available := a.Available() && online && fresh
	a.log.WithFields(logrus.Fields{
		"account": a.Available(),
		"device":  deviceID,
		"online":  online,
		"fresh":   fresh,
	}).Debug("Availability check")
	return available
}

// ActiveDevices returns the ids of devices sensor data is fetched for.
func (a *Account) ActiveDevices() []int64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	res := make([]int64, len(a.active))
	copy(res, a.active)
	return res
}

// SetActiveDevices replaces the active device set, adjusting MQTT
// subscriptions to the difference and ensuring every newly active device has
// a sensor-history slot.
func (a *Account) SetActiveDevices(ctx context.Context, ids []int64) {
	a.mu.RLock()
	prev := make(map[int64]bool, len(a.active))
	for _, id := range a.active {
		prev[id] = true
	}
	next := make(map[int64]bool, len(ids))
	for _, id := range ids {
		next[id] = true
	}
	a.mu.RUnlock()

	var removed, added []int64
	for id := range prev {
		if !next[id] {
			removed = append(removed, id)
		}
	}
	for id := range next {
		if !prev[id] {
			added = append(added, id)
		}
	}
	sort.Slice(removed, func(i, j int) bool { return removed[i] < removed[j] })
	sort.Slice(added, func(i, j int) bool { return added[i] < added[j] })

	unsub := a.deviceTopics(ctx, removed)
	sub := a.deviceTopics(ctx, added)

	a.mu.Lock()
	a.active = append([]int64(nil), ids...)
	for _, id := range ids {
		if a.sensors[id] == nil {
			a.sensors[id] = make(map[int64]map[Channel]float64)
		}
	}
	mqtt := a.mqtt
	a.mu.Unlock()

	if mqtt != nil {
		a.log.WithField("topics", unsub).Debug("Unsubscribe from MQTT topics")
		mqtt.unsubscribe(unsub)
		a.log.WithField("topics", sub).Debug("Subscribe for new MQTT topics")
		mqtt.subscribe(sub)
	}
}

// FilterDevices applies the configured device-name allow-list to a device
// map, returning the admitted ids.
func (a *Account) FilterDevices(devices map[int64]*Device) []int64 {
	allowed := make(map[string]bool, len(a.deviceFilter))
	for _, name := range a.deviceFilter {
		allowed[name] = true
	}
	var ids []int64
	for id, dev := range devices {
		if len(allowed) > 0 && !allowed[dev.Name] {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// deviceTopics maps device ids to their MQTT topics (the device tokens),
// fetching the device list first if it was never loaded.
func (a *Account) deviceTopics(ctx context.Context, ids []int64) []string {
	a.mu.RLock()
	loaded := len(a.devices) > 0
	a.mu.RUnlock()
	if !loaded {
		if _, err := a.UpdateDevices(ctx, false); err != nil {
			return nil
		}
	}

	a.mu.RLock()
	defer a.mu.RUnlock()
	var topics []string
	for _, id := range ids {
		if dev, ok := a.devices[id]; ok {
			topics = append(topics, dev.Token)
		}
	}
	return topics
}

type sensorListResponse struct {
	DeviceValueVos []rawReading `json:"deviceValueVos"`
}

// UpdateSensors refreshes the raw sensor snapshot of every active device that
// has none yet (devices fed live over MQTT are skipped). Refreshes are
// rate-limited to one per SensorsUpdateMinInterval regardless of how often
// callers poll; throttled calls return immediately.
func (a *Account) UpdateSensors(ctx context.Context) error {
	if !a.throttle.Allow() {
		a.log.WithField("account", a.NameSecure()).Debug("Sensors update throttled")
		return nil
	}
	a.log.WithField("account", a.NameSecure()).Debug("Updating sensors state")

	tsNow := a.now().Unix()
	for _, deviceID := range a.ActiveDevices() {
		if a.SensorsRaw(deviceID) != nil {
			continue
		}

		a.mu.RLock()
		dev, ok := a.devices[deviceID]
		var token string
		if ok {
			token = dev.Token
		}
		a.mu.RUnlock()
		if !ok {
			continue
		}

		ts := fmt.Sprintf("%d", tsNow)
		var resp sensorListResponse
		err := a.cli.query(ctx, QueryTypeDevice, "list", url.Values{
			"deviceToken": {token},
			"timestamp":   {ts},
			"callback":    {"jsoncallback"},
			"_":           {ts},
		}, &resp)
		if err != nil {
			return err
		}

		a.extractSensorsData(deviceID, tsNow, resp.DeviceValueVos)
	}
	return nil
}

// UpdateSensorsWithTimeout runs UpdateSensors under an end-to-end deadline.
func (a *Account) UpdateSensorsWithTimeout(ctx context.Context, timeout time.Duration) error {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	defer func() {
		a.log.WithFields(logrus.Fields{
			"account": a.NameSecure(),
			"elapsed": fmt.Sprintf("%.3fs", time.Since(start).Seconds()),
		}).Debug("Finished fetching device sensors")
	}()

	err := a.UpdateSensors(ctx)
	if ctx.Err() != nil {
		a.log.WithField("account", a.NameSecure()).Error("Timeout fetching device sensors")
		return ctx.Err()
	}
	return err
}

// Close tears the account down, disconnecting the MQTT channel.
func (a *Account) Close() {
	a.mu.Lock()
	mqtt := a.mqtt
	a.mqtt = nil
	a.mu.Unlock()
	if mqtt != nil {
		mqtt.close()
	}
}
