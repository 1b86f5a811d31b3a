package jq300

import (
	"bytes"
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"time"
)

// rawReading is one point-in-time observation of one channel as the cloud
// or the MQTT channel reports it.
type rawReading struct {
	Seq     flexInt         `json:"seq"`
	Content json.RawMessage `json:"content"`
}

// contentFloat parses a reading content, which arrives as a JSON number or a
// quoted numeric string. Null and malformed contents report false.
func contentFloat(raw json.RawMessage) (float64, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return 0, false
	}
	trimmed = bytes.Trim(trimmed, `"`)
	v, err := strconv.ParseFloat(string(trimmed), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// extractSensorsData converts raw readings into channel values and stores
// them both as a new point in the device's time series and as the latest-raw
// snapshot. Unknown channels and null contents are dropped. The ppb
// preference converts TVOC/HCHO from mg/m3 with the ideal-gas molar-volume
// approximation; channels not reported in mg/m3 are truncated to integers
// since their native scales are not fractional.
func (a *Account) extractSensorsData(deviceID int64, tsNow int64, readings []rawReading) {
	res := make(map[Channel]float64)
	for _, reading := range readings {
		ch := Channel(reading.Seq)
		if _, known := Channels[ch]; !known {
			continue
		}
		v, ok := contentFloat(reading.Content)
		if !ok {
			continue
		}

		if ch == ChannelTVOC && a.tvocInPPB {
			v *= 1000 * 24.45 / MolarMassTVOC
		} else if ch == ChannelHCHO && a.hchoInPPB {
			v *= 1000 * 24.45 / MolarMassHCHO
		}
		if a.units[ch] != UnitMGM3 {
			v = math.Trunc(v)
		}
		res[ch] = v
	}

	a.mu.Lock()
	if a.sensors[deviceID] == nil {
		a.sensors[deviceID] = make(map[int64]map[Channel]float64)
	}
	a.sensors[deviceID][tsNow] = res
	a.sensorsRaw[deviceID] = res
	a.mu.Unlock()
}

// SensorsRaw returns the latest raw snapshot for a device, or nil if no
// sensor fetch or MQTT push has happened yet.
func (a *Account) SensorsRaw(deviceID int64) map[Channel]float64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	raw, ok := a.sensorsRaw[deviceID]
	if !ok {
		return nil
	}
	res := make(map[Channel]float64, len(raw))
	for ch, v := range raw {
		res[ch] = v
	}
	return res
}

// Sensors returns the trailing-window time-weighted average of the device's
// sensor history, or nil while no data is ready. Each stored value is
// weighted by how long it stayed the most recent observation, which smooths
// the sporadic reporting of the meters. The alert channel is a boolean flag
// and passes through as the latest raw value.
//
// As a side effect the history is pruned: points strictly older than the
// latest one at-or-before the window start are discarded.
func (a *Account) Sensors(deviceID int64) map[Channel]float64 {
	tsNow := a.now().Unix()
	tsOverdue := tsNow - int64(SensorsFilterFrame/time.Second)

	a.mu.Lock()
	defer a.mu.Unlock()

	hist := a.sensors[deviceID]
	if hist == nil {
		hist = make(map[int64]map[Channel]float64)
		a.sensors[deviceID] = hist
	}

	// Keep the newest point at-or-before the window start plus everything
	// after it.
	tsMin := tsOverdue
	var boundary int64
	haveBoundary := false
	for ts := range hist {
		if ts <= tsOverdue && (!haveBoundary || ts > boundary) {
			boundary, haveBoundary = ts, true
		}
	}
	if haveBoundary {
		tsMin = boundary
	}
	for ts := range hist {
		if ts < tsMin {
			delete(hist, ts)
		}
	}
	if len(hist) == 0 {
		return nil
	}

	raw := a.sensorsRaw[deviceID]
	if raw == nil {
		return nil
	}

	keys := make([]int64, 0, len(hist))
	for ts := range hist {
		keys = append(keys, ts)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	// Right-continuous step-function integral over the window.
	sums := make(map[Channel]float64, len(raw))
	lastData := make(map[Channel]float64, len(raw))
	for ch := range raw {
		sums[ch] = 0
		lastData[ch] = 0
	}
	lastTs := tsOverdue
	for _, ts := range keys {
		if valT := ts - lastTs; valT > 0 {
			for ch, v := range lastData {
				sums[ch] += v * float64(valT)
			}
		}
		if ts > tsOverdue {
			lastTs = ts
		} else {
			lastTs = tsOverdue
		}
		lastData = hist[ts]
	}
	// The +1 keeps the weight non-zero when the last point coincides
	// with now.
	valT := tsNow - lastTs + 1
	for ch, v := range lastData {
		sums[ch] += v * float64(valT)
	}

	earliest := keys[0]
	if earliest < tsOverdue {
		earliest = tsOverdue
	}
	length := tsNow - earliest + 1
	if length < 1 {
		length = 1
	}

	res := make(map[Channel]float64, len(sums))
	for ch, sum := range sums {
		if ch == ChannelAlert {
			res[ch] = raw[ChannelAlert]
			continue
		}
		avg := sum / float64(length)
		unit := a.units[ch]
		if Channels[ch].Precision == 0 || unit == UnitPPM || unit == UnitPPB {
			res[ch] = math.Trunc(avg)
		} else {
			res[ch] = roundTo(avg, Channels[ch].Precision)
		}
	}
	return res
}

func roundTo(v float64, precision int) float64 {
	p := math.Pow(10, float64(precision))
	return math.Round(v*p) / p
}
