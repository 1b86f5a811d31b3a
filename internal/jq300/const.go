package jq300

import "time"

// Endpoint families of the JQ-300 cloud. The API family talks to the account
// backend, the DEVICE family to the sensor backend, which uses a different
// auth parameter name and JSONP-wrapped responses.
const (
	QueryTypeAPI    = "API"
	QueryTypeDevice = "DEVICE"
)

const (
	BaseURLAPI    = "http://www.youpinyuntai.com:32086/ypyt-api/api/app/"
	BaseURLDevice = "https://www.youpinyuntai.com:31447/device/"
)

const useragentSystem = "Android 6.0.1; RedMi Note 5 Build/RB3N5C"

// User agents mimic the vendor's mobile app (API) and its embedded
// WebView (DEVICE). The cloud rejects unknown agents on some endpoints.
const (
	UserAgentAPI    = "Dalvik/2.1.0 (Linux; U; " + useragentSystem + ")"
	UserAgentDevice = "Mozilla/5.0 (Linux; " + useragentSystem + "; wv) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Version/4.0 " +
		"Chrome/68.0.3440.91 Mobile Safari/537.36"
)

// Default MQTT broker of the vendor cloud. The credentials are baked into the
// mobile app. The password contains a literal percent sign, so it is kept as
// discrete fields instead of a broker URL.
const (
	DefaultMQTTBroker   = "tcp://www.youpinyuntai.com:55450"
	DefaultMQTTUsername = "ye5h8c3n"
	DefaultMQTTPassword = "T%4ran8c"
)

const (
	// QueryTimeout bounds every single HTTP request to the cloud.
	QueryTimeout = 12 * time.Second
	// UpdateTimeout is the end-to-end deadline for a device-list or
	// sensor refresh run.
	UpdateTimeout = 12 * time.Second
	// AvailableTimeout is how long an MQTT online-status push stays fresh.
	AvailableTimeout = 30 * time.Second
	// SensorsFilterFrame is the trailing window of the time-weighted average.
	SensorsFilterFrame = 10 * time.Minute
	// SensorsUpdateMinInterval throttles sensor fetches against the cloud
	// independent of how often callers poll.
	SensorsUpdateMinInterval = 10 * time.Minute
)

// Molar masses (g/mol) for the mg/m3 -> ppb ideal-gas conversion.
const (
	MolarMassTVOC = 56.106
	MolarMassHCHO = 30.026
)

// Units of measurement as reported to callers.
const (
	UnitCelsius    = "°C"
	UnitPercent    = "%"
	UnitUGM3       = "µg/m³"
	UnitMGM3       = "mg/m³"
	UnitPPM        = "ppm"
	UnitPPB        = "ppb"
)

// Channel identifies one measured quantity on a device. The ids are assigned
// by the vendor firmware (the "seq" field of sensor payloads).
type Channel int

const (
	ChannelAlert       Channel = 1
	ChannelTemperature Channel = 4
	ChannelHumidity    Channel = 5
	ChannelPM25        Channel = 6
	ChannelHCHO        Channel = 7
	ChannelTVOC        Channel = 8
	ChannelECO2        Channel = 9
)

// ChannelInfo describes one sensor channel: reporting metadata plus the
// rounding precision applied after averaging.
type ChannelInfo struct {
	Name        string
	Unit        string
	Icon        string
	DeviceClass string
	Precision   int
	Binary      bool
}

// Channels is the static table of every channel the cloud may report.
// Readings for ids outside this table are dropped.
var Channels = map[Channel]ChannelInfo{
	ChannelAlert: {
		Name:        "alert",
		Icon:        "mdi:alert",
		DeviceClass: "safety",
		Binary:      true,
	},
	ChannelTemperature: {
		Name:        "internal_temperature",
		Unit:        UnitCelsius,
		Icon:        "mdi:thermometer",
		DeviceClass: "temperature",
		Precision:   1,
	},
	ChannelHumidity: {
		Name:        "humidity",
		Unit:        UnitPercent,
		Icon:        "mdi:water-percent",
		DeviceClass: "humidity",
		Precision:   1,
	},
	ChannelPM25: {
		Name: "pm25",
		Unit: UnitUGM3,
		Icon: "mdi:air-filter",
	},
	ChannelHCHO: {
		Name:      "hcho",
		Unit:      UnitMGM3,
		Icon:      "mdi:cloud",
		Precision: 3,
	},
	ChannelTVOC: {
		Name:      "tvoc",
		Unit:      UnitMGM3,
		Icon:      "mdi:radiator",
		Precision: 3,
	},
	ChannelECO2: {
		Name: "eco2",
		Unit: UnitPPM,
		Icon: "mdi:periodic-table-co2",
	},
}
