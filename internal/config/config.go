// Package config loads the fse configuration file. Missing files fall back
// to defaults; malformed files are an error.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// GeocoderConfig configures the address lookup collaborator. An empty
// BaseURL disables geocoding entirely.
type GeocoderConfig struct {
	// BaseURL is the root of a Nominatim-compatible geocoding API.
	BaseURL string `yaml:"base_url"`

	// Timeout bounds each lookup request.
	Timeout time.Duration `yaml:"-"`
}

// SMSConfig configures the notification gateway used to send the completion
// summary to the facility contact number.
type SMSConfig struct {
	// Enabled turns completion notifications on.
	Enabled bool `yaml:"enabled"`

	// GatewayURL is the HTTP endpoint messages are posted to.
	GatewayURL string `yaml:"gateway_url"`

	// Timeout bounds each delivery attempt.
	Timeout time.Duration `yaml:"-"`
}

// Config represents fse configuration options.
type Config struct {
	// LogLevel sets the logging verbosity (trace, debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	// ExportDir is where report exports are written.
	ExportDir string `yaml:"export_dir"`

	// Geocoder configures address lookups.
	Geocoder GeocoderConfig `yaml:"geocoder"`

	// SMS configures completion notifications.
	SMS SMSConfig `yaml:"sms"`
}

// DefaultConfigPath is where LoadConfig looks when no --config flag is set.
const DefaultConfigPath = ".fse/config.yaml"

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  "info",
		ExportDir: ".fse/reports",
		Geocoder: GeocoderConfig{
			BaseURL: "https://nominatim.openstreetmap.org",
			Timeout: 10 * time.Second,
		},
		SMS: SMSConfig{
			Enabled: false,
			Timeout: 10 * time.Second,
		},
	}
}

// LoadConfig loads configuration from the specified file path, merging it
// over the defaults. A missing file returns defaults without error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Durations arrive as strings in YAML; parse them separately.
	type yamlGeocoder struct {
		BaseURL string `yaml:"base_url"`
		Timeout string `yaml:"timeout"`
	}
	type yamlSMS struct {
		Enabled    *bool  `yaml:"enabled"`
		GatewayURL string `yaml:"gateway_url"`
		Timeout    string `yaml:"timeout"`
	}
	type yamlConfig struct {
		LogLevel  string       `yaml:"log_level"`
		ExportDir string       `yaml:"export_dir"`
		Geocoder  yamlGeocoder `yaml:"geocoder"`
		SMS       yamlSMS      `yaml:"sms"`
	}

	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if yc.LogLevel != "" {
		cfg.LogLevel = yc.LogLevel
	}
	if yc.ExportDir != "" {
		cfg.ExportDir = yc.ExportDir
	}
	if yc.Geocoder.BaseURL != "" {
		cfg.Geocoder.BaseURL = yc.Geocoder.BaseURL
	}
	if yc.Geocoder.Timeout != "" {
		d, err := time.ParseDuration(yc.Geocoder.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid geocoder timeout %q: %w", yc.Geocoder.Timeout, err)
		}
		cfg.Geocoder.Timeout = d
	}
	if yc.SMS.Enabled != nil {
		cfg.SMS.Enabled = *yc.SMS.Enabled
	}
	if yc.SMS.GatewayURL != "" {
		cfg.SMS.GatewayURL = yc.SMS.GatewayURL
	}
	if yc.SMS.Timeout != "" {
		d, err := time.ParseDuration(yc.SMS.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid sms timeout %q: %w", yc.SMS.Timeout, err)
		}
		cfg.SMS.Timeout = d
	}

	return cfg, nil
}
