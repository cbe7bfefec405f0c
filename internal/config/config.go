package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	DefaultPath = "configs/config.yaml"
	EnvPrefix   = "AUCTIONS_"
)

type Config struct {
	LogLevel string        `koanf:"log_level"`
	Server   ServerConfig  `koanf:"server"`
	Backend  BackendConfig `koanf:"backend"`
}

type ServerConfig struct {
	Port int `koanf:"port"`
}

type BackendConfig struct {
	BaseURL      string        `koanf:"base_url"`
	Timeout      time.Duration `koanf:"timeout"`
	ImageBaseURL string        `koanf:"image_base_url"`
}

// Addr is the listen address for the HTTP facade
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

func defaults() *Config {
	return &Config{
		LogLevel: "info",
		Server: ServerConfig{
			Port: 8081,
		},
		Backend: BackendConfig{
			BaseURL:      "http://localhost:8080/api/v1",
			Timeout:      30 * time.Second,
			ImageBaseURL: "http://localhost:8080/api/v1/vehicles/display",
		},
	}
}

// Load layers defaults, the optional YAML file at path and AUCTIONS_ env vars.
// Nested keys use a double underscore: AUCTIONS_BACKEND__BASE_URL.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaults(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d out of range", c.Server.Port)
	}
	if strings.TrimSpace(c.Backend.BaseURL) == "" {
		return errors.New("config: backend.base_url is required")
	}
	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("config: backend.timeout must be positive, got %s", c.Backend.Timeout)
	}
	return nil
}
