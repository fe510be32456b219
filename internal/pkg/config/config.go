package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"pragyan-remote/internal/pkg/logging"
	"pragyan-remote/internal/types"

	"gopkg.in/yaml.v3"
)

const (
	DefaultLastOctet       = 236
	DefaultPort            = 5001
	DefaultAddress         = "192.168.151.236"
	DefaultLegacyInterface = "wlan0"
	DefaultRefreshInterval = 30 * time.Second
	DefaultDispatchTimeout = 4 * time.Second
	DefaultCommandPath     = "command"
	DefaultVideoPort       = 80
	DefaultVideoPath       = "/"
)

// EndpointConfig represents how the robot's control endpoint is located
type EndpointConfig struct {
	LastOctet       int           `yaml:"last_octet"`
	Port            int           `yaml:"port"`
	DefaultAddress  string        `yaml:"default_address"`
	ManualAddress   string        `yaml:"manual_address,omitempty"`
	LegacyInterface string        `yaml:"legacy_interface"`
	RefreshInterval time.Duration `yaml:"refresh_interval"`
}

// DispatchConfig represents command delivery settings
type DispatchConfig struct {
	Timeout time.Duration `yaml:"timeout"`
	Path    string        `yaml:"path"`
}

// VideoConfig represents where the robot's video stream is served.
// A non-empty URL overrides the address derived from the resolved endpoint.
type VideoConfig struct {
	URL  string `yaml:"url,omitempty"`
	Port int    `yaml:"port"`
	Path string `yaml:"path"`
}

// Config represents the main configuration structure
type Config struct {
	Logging  logging.LogConfig `yaml:"logging"`
	Endpoint EndpointConfig    `yaml:"endpoint"`
	Dispatch DispatchConfig    `yaml:"dispatch"`
	Video    VideoConfig       `yaml:"video"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Logging: logging.LogConfig{
			Level:  "info",
			Format: "simple",
		},
		Endpoint: EndpointConfig{
			LastOctet:       DefaultLastOctet,
			Port:            DefaultPort,
			DefaultAddress:  DefaultAddress,
			LegacyInterface: DefaultLegacyInterface,
			RefreshInterval: DefaultRefreshInterval,
		},
		Dispatch: DispatchConfig{
			Timeout: DefaultDispatchTimeout,
			Path:    DefaultCommandPath,
		},
		Video: VideoConfig{
			Port: DefaultVideoPort,
			Path: DefaultVideoPath,
		},
	}
}

// Load loads configuration from a YAML file on top of the defaults.
// An empty path returns the defaults.
func Load(configPath string) (*Config, error) {
	config := Default()
	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Endpoint.LastOctet < 0 || c.Endpoint.LastOctet > 255 {
		return fmt.Errorf("endpoint: last_octet %d out of range 0-255", c.Endpoint.LastOctet)
	}
	if c.Endpoint.Port < 1 || c.Endpoint.Port > 65535 {
		return fmt.Errorf("endpoint: port %d out of range 1-65535", c.Endpoint.Port)
	}
	if _, err := types.ParseNetworkAddress(c.Endpoint.DefaultAddress); err != nil {
		return fmt.Errorf("endpoint: default_address: %w", err)
	}
	if c.Endpoint.ManualAddress != "" {
		if _, err := types.ParseNetworkAddress(c.Endpoint.ManualAddress); err != nil {
			return fmt.Errorf("endpoint: manual_address: %w", err)
		}
	}
	if c.Endpoint.RefreshInterval < 0 {
		return fmt.Errorf("endpoint: refresh_interval must not be negative")
	}
	if c.Dispatch.Timeout <= 0 {
		return fmt.Errorf("dispatch: timeout must be positive")
	}
	if strings.TrimSpace(c.Dispatch.Path) == "" {
		return fmt.Errorf("dispatch: path is required")
	}
	if c.Video.URL == "" && (c.Video.Port < 1 || c.Video.Port > 65535) {
		return fmt.Errorf("video: port %d out of range 1-65535", c.Video.Port)
	}
	return nil
}

// EndpointDefaults converts the endpoint section into the resolver's initial state.
// Call Validate first; invalid values are not reported here.
func (c *Config) EndpointDefaults() types.EndpointConfig {
	fallback, _ := types.ParseNetworkAddress(c.Endpoint.DefaultAddress)

	cfg := types.EndpointConfig{
		Mode:           types.ModeAuto,
		FixedLastOctet: uint8(c.Endpoint.LastOctet),
		Port:           uint16(c.Endpoint.Port),
		DefaultAddress: fallback,
	}
	if manual, err := types.ParseNetworkAddress(c.Endpoint.ManualAddress); err == nil {
		cfg.Mode = types.ModeManual
		cfg.ManualAddress = manual.String()
	}
	return cfg
}
