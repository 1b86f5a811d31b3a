package jq300

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readings(t *testing.T, raw string) []rawReading {
	t.Helper()
	var res []rawReading
	require.NoError(t, json.Unmarshal([]byte(raw), &res))
	return res
}

func clockAccount(now *time.Time, opts ...AccountOption) *Account {
	opts = append([]AccountOption{
		WithLogger(testLogger()),
		WithoutMQTT(),
		WithClock(func() time.Time { return *now }),
	}, opts...)
	return NewAccount("test@email.com", "12345678", opts...)
}

func TestExtractSensorsData(t *testing.T) {
	now := time.Now()
	acc := clockAccount(&now)

	acc.extractSensorsData(43133, now.Unix(), readings(t,
		`[{"seq":1,"content":"0"},
		  {"seq":4,"content":"23.4"},
		  {"seq":6,"content":14},
		  {"seq":8,"content":"0.612"},
		  {"seq":3,"content":"1"},
		  {"seq":9,"content":null}]`))

	raw := acc.SensorsRaw(43133)
	require.NotNil(t, raw)
	assert.Equal(t, 0.0, raw[ChannelAlert])
	assert.Equal(t, 23.0, raw[ChannelTemperature])
	assert.Equal(t, 14.0, raw[ChannelPM25])
	assert.Equal(t, 0.612, raw[ChannelTVOC])
	// Unknown channels and null contents are dropped.
	assert.NotContains(t, raw, Channel(3))
	assert.NotContains(t, raw, ChannelECO2)
}

func TestExtractSensorsDataPPB(t *testing.T) {
	now := time.Now()
	acc := clockAccount(&now, WithPPBUnits(true, true))

	acc.extractSensorsData(43133, now.Unix(), readings(t,
		`[{"seq":7,"content":"0.026"},{"seq":8,"content":"0.612"}]`))

	raw := acc.SensorsRaw(43133)
	require.NotNil(t, raw)
	// 0.612 mg/m3 * 1000 * 24.45 / 56.106 = 266.69 -> 266 ppb
	assert.Equal(t, 266.0, raw[ChannelTVOC])
	// 0.026 mg/m3 * 1000 * 24.45 / 30.026 = 21.17 -> 21 ppb
	assert.Equal(t, 21.0, raw[ChannelHCHO])
}

func TestSensorsNoData(t *testing.T) {
	now := time.Now()
	acc := clockAccount(&now)

	assert.Nil(t, acc.Sensors(43133))

	// History without a raw snapshot is not ready either.
	acc.mu.Lock()
	acc.sensors[43133] = map[int64]map[Channel]float64{
		now.Unix(): {ChannelPM25: 14},
	}
	acc.mu.Unlock()
	assert.Nil(t, acc.Sensors(43133))
}

func TestSensorsSinglePoint(t *testing.T) {
	now := time.Now()
	acc := clockAccount(&now)

	acc.extractSensorsData(43133, now.Unix(), readings(t,
		`[{"seq":6,"content":"400"}]`))

	values := acc.Sensors(43133)
	require.NotNil(t, values)
	assert.Equal(t, 400.0, values[ChannelPM25])
}

func TestSensorsWeightedAverage(t *testing.T) {
	t0 := time.Now()
	now := t0
	acc := clockAccount(&now)

	acc.extractSensorsData(43133, t0.Unix(), readings(t,
		`[{"seq":4,"content":"20"},{"seq":6,"content":"200"}]`))
	now = t0.Add(590 * time.Second)
	acc.extractSensorsData(43133, now.Unix(), readings(t,
		`[{"seq":4,"content":"26"},{"seq":6,"content":"400"}]`))

	now = t0.Add(599 * time.Second)
	values := acc.Sensors(43133)
	require.NotNil(t, values)
	// The old value held for most of the window, so the average leans
	// toward it: (200*590 + 400*10) / 600 -> 203.
	assert.Equal(t, 203.0, values[ChannelPM25])
	// (20*590 + 26*10) / 600 = 20.1, rounded to one decimal.
	assert.Equal(t, 20.1, values[ChannelTemperature])
}

func TestSensorsAlertPassesThrough(t *testing.T) {
	t0 := time.Now()
	now := t0
	acc := clockAccount(&now)

	acc.extractSensorsData(43133, t0.Unix(), readings(t,
		`[{"seq":1,"content":"1"}]`))
	now = t0.Add(300 * time.Second)
	acc.extractSensorsData(43133, now.Unix(), readings(t,
		`[{"seq":1,"content":"0"}]`))

	// The alert flag is never averaged, only the latest value counts.
	values := acc.Sensors(43133)
	require.NotNil(t, values)
	assert.Equal(t, 0.0, values[ChannelAlert])
}

func TestSensorsPrunesHistory(t *testing.T) {
	t0 := time.Now()
	now := t0
	acc := clockAccount(&now)

	acc.extractSensorsData(43133, t0.Unix(), readings(t,
		`[{"seq":6,"content":"100"}]`))
	now = t0.Add(100 * time.Second)
	acc.extractSensorsData(43133, now.Unix(), readings(t,
		`[{"seq":6,"content":"200"}]`))

	// Move past the window: the first point is now strictly older than the
	// boundary point and gets dropped.
	now = t0.Add(SensorsFilterFrame + 100*time.Second)
	require.NotNil(t, acc.Sensors(43133))

	acc.mu.RLock()
	defer acc.mu.RUnlock()
	assert.NotContains(t, acc.sensors[43133], t0.Unix())
	assert.Contains(t, acc.sensors[43133], t0.Add(100*time.Second).Unix())
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 20.1, roundTo(20.1499, 1))
	assert.Equal(t, 20.2, roundTo(20.16, 1))
	assert.Equal(t, 0.613, roundTo(0.61251, 3))
}
