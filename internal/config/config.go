// Package config loads the service configuration from a YAML file with
// environment overrides (JQ300_* variables).
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the service.
type Config struct {
	Server   ServerConfig    `mapstructure:"server"`
	Metrics  MetricsConfig   `mapstructure:"metrics"`
	MQTT     MQTTConfig      `mapstructure:"mqtt"`
	Accounts []AccountConfig `mapstructure:"accounts"`
	Logging  LoggingConfig   `mapstructure:"logging"`
}

type ServerConfig struct {
	Host           string  `mapstructure:"host"`
	Port           int     `mapstructure:"port"`
	CacheSize      int     `mapstructure:"cache_size"`
	RateLimit      float64 `mapstructure:"rate_limit"`
	RateLimitBurst int     `mapstructure:"rate_limit_burst"`
}

type MetricsConfig struct {
	Port int `mapstructure:"port"`
}

// MQTTConfig overrides the vendor broker; empty fields keep the defaults
// baked into the core.
type MQTTConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Broker   string `mapstructure:"broker"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// AccountConfig is one cloud login. Devices is an optional allow-list of
// device display names; empty admits all.
type AccountConfig struct {
	Username         string   `mapstructure:"username"`
	Password         string   `mapstructure:"password"`
	Devices          []string `mapstructure:"devices"`
	ReceiveTvocInPpb bool     `mapstructure:"receive_tvoc_in_ppb"`
	ReceiveHchoInPpb bool     `mapstructure:"receive_hcho_in_ppb"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("JQ300")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) validate() error {
	if len(c.Accounts) == 0 {
		return fmt.Errorf("no accounts configured")
	}
	for i, account := range c.Accounts {
		if account.Username == "" || account.Password == "" {
			return fmt.Errorf("account %d: username and password are required", i)
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 50051)
	v.SetDefault("server.cache_size", 128)
	v.SetDefault("server.rate_limit", 5.0)
	v.SetDefault("server.rate_limit_burst", 10)

	v.SetDefault("metrics.port", 9090)

	v.SetDefault("mqtt.enabled", true)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}
