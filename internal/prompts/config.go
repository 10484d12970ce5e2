package prompts

import "os"

// Config overrides the default instructions per stage. Empty fields keep
// the defaults.
type Config struct {
	Score    string `toml:"score"`
	Category string `toml:"category"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	Score    string
	Category string
}

// Finalize applies environment variable overrides.
func (c *Config) Finalize(env *Env) error {
	if env != nil {
		c.loadEnv(env)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Score != "" {
		c.Score = overlay.Score
	}
	if overlay.Category != "" {
		c.Category = overlay.Category
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.Score != "" {
		if v := os.Getenv(env.Score); v != "" {
			c.Score = v
		}
	}
	if env.Category != "" {
		if v := os.Getenv(env.Category); v != "" {
			c.Category = v
		}
	}
}

func (c *Config) override(stage Stage) string {
	switch stage {
	case StageScore:
		return c.Score
	case StageCategory:
		return c.Category
	}
	return ""
}
