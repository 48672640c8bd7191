// Package config loads the optional praxis.yaml file. Every field has a
// working default: a missing file is not an error, the gateway runs on
// defaults plus environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/praxislabs/praxis/internal/cache"
)

// GatewayConfig tunes the interaction pipeline. Durations are strings in
// Go syntax ("30s", "2m") and parsed on access.
type GatewayConfig struct {
	Temperature     float64 `yaml:"temperature"`
	MaxTokens       int     `yaml:"max_tokens"`
	ProviderTimeout string  `yaml:"provider_timeout"`
	HistoryLimit    int     `yaml:"history_limit"`
	ScanQueueSize   int     `yaml:"scan_queue_size"`
}

// Timeout parses the provider timeout.
func (g GatewayConfig) Timeout() (time.Duration, error) {
	if g.ProviderTimeout == "" {
		return 30 * time.Second, nil
	}
	d, err := time.ParseDuration(g.ProviderTimeout)
	if err != nil {
		return 0, fmt.Errorf("provider_timeout: %w", err)
	}
	return d, nil
}

// CacheConfig is the file shape of the response cache settings.
type CacheConfig struct {
	Capacity int    `yaml:"capacity"`
	TTL      string `yaml:"ttl"`
	Salt     string `yaml:"salt"`
}

// Build converts to the cache package's config.
func (c CacheConfig) Build() (cache.Config, error) {
	out := cache.Config{Capacity: c.Capacity, Salt: c.Salt}
	if c.TTL != "" {
		d, err := time.ParseDuration(c.TTL)
		if err != nil {
			return cache.Config{}, fmt.Errorf("cache ttl: %w", err)
		}
		out.TTL = d
	}
	return out, nil
}

// Config is the full file shape.
type Config struct {
	Gateway GatewayConfig `yaml:"gateway"`
	Cache   CacheConfig   `yaml:"cache"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Gateway: GatewayConfig{
			Temperature:     0.7,
			MaxTokens:       1024,
			ProviderTimeout: "30s",
			HistoryLimit:    20,
			ScanQueueSize:   32,
		},
	}
}

// DefaultPath resolves the config file location: PRAXIS_CONFIG, then
// ~/.config/praxis/praxis.yaml.
func DefaultPath() string {
	if p := os.Getenv("PRAXIS_CONFIG"); p != "" {
		return p
	}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "praxis", "praxis.yaml")
}

// Load reads the config at path, layering the file over defaults. An
// absent file returns the defaults; a malformed file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
