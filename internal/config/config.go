// Package config loads the service configuration from an optional TOML file,
// an optional per-environment overlay, and LITTERLENS_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/JaimeStill/litterlens/internal/prompts"
	"github.com/JaimeStill/litterlens/pkg/database"
	"github.com/JaimeStill/litterlens/pkg/inference"
	"github.com/JaimeStill/litterlens/pkg/storage"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvLitterlensEnv             = "LITTERLENS_ENV"
	EnvLitterlensShutdownTimeout = "LITTERLENS_SHUTDOWN_TIMEOUT"
	EnvLitterlensVersion         = "LITTERLENS_VERSION"
)

var databaseEnv = &database.Env{
	Host:            "LITTERLENS_DB_HOST",
	Port:            "LITTERLENS_DB_PORT",
	Name:            "LITTERLENS_DB_NAME",
	User:            "LITTERLENS_DB_USER",
	Password:        "LITTERLENS_DB_PASSWORD",
	SSLMode:         "LITTERLENS_DB_SSL_MODE",
	MaxOpenConns:    "LITTERLENS_DB_MAX_OPEN_CONNS",
	MaxIdleConns:    "LITTERLENS_DB_MAX_IDLE_CONNS",
	ConnMaxLifetime: "LITTERLENS_DB_CONN_MAX_LIFETIME",
	ConnTimeout:     "LITTERLENS_DB_CONN_TIMEOUT",
}

var storageEnv = &storage.Env{
	ContainerName:    "LITTERLENS_STORAGE_CONTAINER_NAME",
	ConnectionString: "LITTERLENS_STORAGE_CONNECTION_STRING",
}

var inferenceEnv = &inference.Env{
	MaxTokens: "LITTERLENS_INFERENCE_MAX_TOKENS",
}

var promptsEnv = &prompts.Env{
	Score:    "LITTERLENS_PROMPTS_SCORE",
	Category: "LITTERLENS_PROMPTS_CATEGORY",
}

// Config is the root configuration for the litterlens service.
type Config struct {
	Agent           gaconfig.AgentConfig `toml:"agent"`
	Server          ServerConfig         `toml:"server"`
	Database        database.Config      `toml:"database"`
	Storage         storage.Config       `toml:"storage"`
	Inference       inference.Config     `toml:"inference"`
	Prompts         prompts.Config       `toml:"prompts"`
	API             APIConfig            `toml:"api"`
	ShutdownTimeout string               `toml:"shutdown_timeout"`
	Version         string               `toml:"version"`
}

// Env returns the LITTERLENS_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvLitterlensEnv); env != "" {
		return env
	}
	return "local"
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Load reads the base config (if present), applies any environment overlay,
// and finalizes all values. Without a config.toml, defaults and environment
// variables provide all configuration. A missing inference token is not an
// error here; report submissions fail individually until one is set.
func Load() (*Config, error) {
	return LoadFrom(BaseConfigFile)
}

// LoadFrom is Load with an explicit base config path. The overlay is looked
// up next to it.
func LoadFrom(base string) (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(base); err == nil {
		loaded, err := load(base)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if path := overlayPath(base); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}

	if err := cfg.finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Agent.Merge(&overlay.Agent)
	c.Server.Merge(&overlay.Server)
	c.Database.Merge(&overlay.Database)
	c.Storage.Merge(&overlay.Storage)
	c.Inference.Merge(&overlay.Inference)
	c.Prompts.Merge(&overlay.Prompts)
	c.API.Merge(&overlay.API)
}

func (c *Config) finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := FinalizeAgent(&c.Agent); err != nil {
		return fmt.Errorf("agent: %w", err)
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Database.Finalize(databaseEnv); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.Storage.Finalize(storageEnv); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.Inference.Finalize(inferenceEnv); err != nil {
		return fmt.Errorf("inference: %w", err)
	}
	if err := c.Prompts.Finalize(promptsEnv); err != nil {
		return fmt.Errorf("prompts: %w", err)
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	return nil
}

func (c *Config) loadDefaults() {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvLitterlensShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvLitterlensVersion); v != "" {
		c.Version = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath(base string) string {
	env := os.Getenv(EnvLitterlensEnv)
	if env == "" {
		return ""
	}
	path := filepath.Join(filepath.Dir(base), fmt.Sprintf(OverlayConfigPattern, env))
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
