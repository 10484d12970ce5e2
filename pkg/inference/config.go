package inference

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds per-request generation limits applied on top of the agent's
// model configuration.
type Config struct {
	MaxTokens int `toml:"max_tokens"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	MaxTokens string
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.MaxTokens != 0 {
		c.MaxTokens = overlay.MaxTokens
	}
}

func (c *Config) loadDefaults() {
	if c.MaxTokens == 0 {
		c.MaxTokens = 1000
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.MaxTokens != "" {
		if v := os.Getenv(env.MaxTokens); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				c.MaxTokens = n
			}
		}
	}
}

func (c *Config) validate() error {
	if c.MaxTokens < 1 {
		return fmt.Errorf("max_tokens must be positive: %d", c.MaxTokens)
	}
	return nil
}
