package server

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/elcukro/home-budget-sub004/internal/config"
	"github.com/elcukro/home-budget-sub004/pkg/constants"
	"gopkg.in/yaml.v3"
)

// Config defines runtime parameters for the HTTP server.
type Config struct {
	Address   string               `yaml:"address"`
	RateLimit RateLimitConfig      `yaml:"rateLimit"`
	Cache     CacheConfig          `yaml:"cache"`
	Logging   config.LoggingConfig `yaml:"logging"`
}

// RateLimitConfig defines the per-client request budget.
type RateLimitConfig struct {
	Requests      int `yaml:"requests"`
	WindowSeconds int `yaml:"windowSeconds"`
}

// CacheConfig defines the optional insights-report cache. When RedisAddress
// is empty an in-memory cache is used.
type CacheConfig struct {
	RedisAddress string `yaml:"redisAddress"`
	TTLSeconds   int    `yaml:"ttlSeconds"`
}

// Window returns the rate limit refill window as a duration.
func (r RateLimitConfig) Window() time.Duration {
	return time.Duration(r.WindowSeconds) * time.Second
}

// TTL returns the cache entry lifetime as a duration.
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// LoadConfig loads the server configuration from YAML. If the file does not
// exist, defaults are returned without error.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Address: constants.DefaultServerAddress,
		RateLimit: RateLimitConfig{
			Requests:      constants.DefaultRateLimitRequests,
			WindowSeconds: constants.DefaultRateLimitWindowSeconds,
		},
		Cache: CacheConfig{
			TTLSeconds: constants.DefaultCacheTTLSeconds,
		},
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read server config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	if c.Address == "" {
		c.Address = constants.DefaultServerAddress
	}
	if c.RateLimit.Requests <= 0 {
		c.RateLimit.Requests = constants.DefaultRateLimitRequests
	}
	if c.RateLimit.WindowSeconds <= 0 {
		c.RateLimit.WindowSeconds = constants.DefaultRateLimitWindowSeconds
	}
	if c.Cache.TTLSeconds < 0 {
		return fmt.Errorf("cache ttlSeconds must not be negative, got %d", c.Cache.TTLSeconds)
	}
	if c.Cache.TTLSeconds == 0 {
		c.Cache.TTLSeconds = constants.DefaultCacheTTLSeconds
	}
	return nil
}
