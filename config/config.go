package config

import (
	"fmt"
	"os"
	"strconv"
)

// Defaults applied when the environment leaves a knob unset.
const (
	DefaultPort          = 3001
	DefaultAllowedOrigin = "*"
)

// Config holds the server's runtime settings.
type Config struct {
	Host          string
	Port          int
	AllowedOrigin string
}

// Load reads configuration from the environment, applying defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Host:          os.Getenv("HOST"),
		Port:          DefaultPort,
		AllowedOrigin: DefaultAllowedOrigin,
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return nil, fmt.Errorf("invalid PORT %q", v)
		}
		cfg.Port = port
	}

	if v := os.Getenv("ALLOWED_ORIGIN"); v != "" {
		cfg.AllowedOrigin = v
	}

	return cfg, nil
}

// Addr returns the host:port listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
