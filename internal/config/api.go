package config

import (
	"fmt"
	"os"

	"github.com/JaimeStill/litterlens/pkg/formatting"
	"github.com/JaimeStill/litterlens/pkg/middleware"
	"github.com/JaimeStill/litterlens/pkg/openapi"
	"github.com/JaimeStill/litterlens/pkg/pagination"
)

const defaultMaxUploadSize = 10 * 1024 * 1024

var corsEnv = &middleware.CORSEnv{
	Enabled:          "LITTERLENS_CORS_ENABLED",
	Origins:          "LITTERLENS_CORS_ORIGINS",
	AllowedMethods:   "LITTERLENS_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "LITTERLENS_CORS_ALLOWED_HEADERS",
	AllowCredentials: "LITTERLENS_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "LITTERLENS_CORS_MAX_AGE",
}

var openAPIEnv = &openapi.ConfigEnv{
	Title:       "LITTERLENS_OPENAPI_TITLE",
	Description: "LITTERLENS_OPENAPI_DESCRIPTION",
}

var topEnv = &pagination.ConfigEnv{
	DefaultLimit: "LITTERLENS_TOP_DEFAULT_LIMIT",
	MaxLimit:     "LITTERLENS_TOP_MAX_LIMIT",
}

// APIConfig holds request size, CORS, OpenAPI, and top-records settings.
type APIConfig struct {
	MaxUploadSize string                `toml:"max_upload_size"`
	CORS          middleware.CORSConfig `toml:"cors"`
	OpenAPI       openapi.Config        `toml:"openapi"`
	Top           pagination.Config     `toml:"top"`
}

// MaxUploadSizeBytes returns MaxUploadSize in bytes.
func (c *APIConfig) MaxUploadSizeBytes() int64 {
	size, err := formatting.ParseBytes(c.MaxUploadSize)
	if err != nil {
		return defaultMaxUploadSize
	}
	return size
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested configs.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.OpenAPI.Finalize(openAPIEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	if err := c.Top.Finalize(topEnv); err != nil {
		return fmt.Errorf("top: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.MaxUploadSize != "" {
		c.MaxUploadSize = overlay.MaxUploadSize
	}
	c.CORS.Merge(&overlay.CORS)
	c.OpenAPI.Merge(&overlay.OpenAPI)
	c.Top.Merge(&overlay.Top)
}

func (c *APIConfig) loadDefaults() {
	if c.MaxUploadSize == "" {
		c.MaxUploadSize = "10MB"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv("LITTERLENS_API_MAX_UPLOAD_SIZE"); v != "" {
		c.MaxUploadSize = v
	}
}

func (c *APIConfig) validate() error {
	size, err := formatting.ParseBytes(c.MaxUploadSize)
	if err != nil {
		return fmt.Errorf("invalid max_upload_size: %w", err)
	}
	if size < 1 {
		return fmt.Errorf("max_upload_size must be positive")
	}
	return nil
}
