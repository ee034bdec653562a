// Package config loads roadpath settings from an optional YAML file and
// ROADPATH_* environment variables, in that order of precedence (env wins).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/roadpath/core"
)

// ErrInvalid indicates a configuration value out of its allowed range.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full roadpath configuration.
type Config struct {
	Logging Logging `yaml:"logging"`
	Server  Server  `yaml:"server"`
	Engine  Engine  `yaml:"engine"`
}

// Logging controls the zerolog logger.
type Logging struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// Server controls the HTTP query service.
type Server struct {
	Addr                string `yaml:"addr"`
	ReadTimeoutSeconds  int    `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `yaml:"write_timeout_seconds"`
	IdleTimeoutSeconds  int    `yaml:"idle_timeout_seconds"`
}

// Engine controls graph capacity and the shortest-path cache.
type Engine struct {
	MaxVertices  int  `yaml:"max_vertices"`
	RejectedMemo bool `yaml:"rejected_memo"`
}

// ReadTimeout returns ReadTimeoutSeconds as a Duration.
func (s Server) ReadTimeout() time.Duration { return time.Duration(s.ReadTimeoutSeconds) * time.Second }

// WriteTimeout returns WriteTimeoutSeconds as a Duration.
func (s Server) WriteTimeout() time.Duration { return time.Duration(s.WriteTimeoutSeconds) * time.Second }

// IdleTimeout returns IdleTimeoutSeconds as a Duration.
func (s Server) IdleTimeout() time.Duration { return time.Duration(s.IdleTimeoutSeconds) * time.Second }

// Default returns the built-in configuration.
func Default() Config {
	var c Config
	c.Logging.Level = "info"
	c.Logging.Pretty = false
	c.Server.Addr = ":8090"
	c.Server.ReadTimeoutSeconds = 5
	c.Server.WriteTimeoutSeconds = 10
	c.Server.IdleTimeoutSeconds = 60
	c.Engine.MaxVertices = core.DefaultMaxVertices
	c.Engine.RejectedMemo = false
	return c
}

// Load starts from Default, overlays the YAML file at path (if path is
// non-empty), then applies environment overrides and validates.
func Load(path string) (Config, error) {
	c := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err = yaml.Unmarshal(b, &c); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := c.applyEnv(os.Getenv); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv("ROADPATH_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := getenv("ROADPATH_LOG_PRETTY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: ROADPATH_LOG_PRETTY=%q", ErrInvalid, v)
		}
		c.Logging.Pretty = b
	}
	if v := getenv("ROADPATH_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := getenv("ROADPATH_MAX_VERTICES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: ROADPATH_MAX_VERTICES=%q", ErrInvalid, v)
		}
		c.Engine.MaxVertices = n
	}
	if v := getenv("ROADPATH_REJECTED_MEMO"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: ROADPATH_REJECTED_MEMO=%q", ErrInvalid, v)
		}
		c.Engine.RejectedMemo = b
	}
	return nil
}

// Validate checks ranges.
func (c Config) Validate() error {
	if c.Engine.MaxVertices < 1 {
		return fmt.Errorf("%w: engine.max_vertices=%d", ErrInvalid, c.Engine.MaxVertices)
	}
	if c.Server.ReadTimeoutSeconds < 0 || c.Server.WriteTimeoutSeconds < 0 || c.Server.IdleTimeoutSeconds < 0 {
		return fmt.Errorf("%w: negative server timeout", ErrInvalid)
	}
	return nil
}
