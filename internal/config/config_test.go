package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	err := os.WriteFile(configPath, []byte(content), 0o644)
	require.NoError(t, err)
	return configPath
}

func TestLoad(t *testing.T) {
	configPath := writeConfig(t, `
server:
  host: "0.0.0.0"
  port: 50051

metrics:
  port: 9091

mqtt:
  enabled: false

accounts:
  - username: "test@email.com"
    password: "test_password"
    devices: ["Bedroom"]
    receive_tvoc_in_ppb: true

logging:
  level: "debug"
  format: "json"
`)

	config, err := Load(configPath)
	require.NoError(t, err)
	require.NotNil(t, config)

	assert.Equal(t, "0.0.0.0", config.Server.Host)
	assert.Equal(t, 50051, config.Server.Port)
	assert.Equal(t, 9091, config.Metrics.Port)
	assert.False(t, config.MQTT.Enabled)
	assert.Equal(t, "debug", config.Logging.Level)

	require.Len(t, config.Accounts, 1)
	account := config.Accounts[0]
	assert.Equal(t, "test@email.com", account.Username)
	assert.Equal(t, []string{"Bedroom"}, account.Devices)
	assert.True(t, account.ReceiveTvocInPpb)
	assert.False(t, account.ReceiveHchoInPpb)
}

func TestLoadDefaults(t *testing.T) {
	configPath := writeConfig(t, `
accounts:
  - username: "test@email.com"
    password: "test_password"
`)

	config, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, 50051, config.Server.Port)
	assert.Equal(t, 128, config.Server.CacheSize)
	assert.Equal(t, 5.0, config.Server.RateLimit)
	assert.Equal(t, 9090, config.Metrics.Port)
	assert.True(t, config.MQTT.Enabled)
	assert.Equal(t, "info", config.Logging.Level)
}

func TestLoadRejectsMissingAccounts(t *testing.T) {
	configPath := writeConfig(t, `
logging:
  level: "info"
`)

	_, err := Load(configPath)
	assert.ErrorContains(t, err, "no accounts configured")
}

func TestLoadRejectsIncompleteAccount(t *testing.T) {
	configPath := writeConfig(t, `
accounts:
  - username: "test@email.com"
`)

	_, err := Load(configPath)
	assert.ErrorContains(t, err, "username and password are required")
}
