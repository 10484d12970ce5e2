package api

import (
	"github.com/JaimeStill/litterlens/internal/config"
	"github.com/JaimeStill/litterlens/internal/infrastructure"
	"github.com/JaimeStill/litterlens/internal/prompts"
	"github.com/JaimeStill/litterlens/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Prompts       prompts.Config
	Top           pagination.Config
	MaxUploadSize int64
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	scoped := *infra
	scoped.Logger = infra.Logger.With("module", "api")

	return &Runtime{
		Infrastructure: &scoped,
		Prompts:        cfg.Prompts,
		Top:            cfg.API.Top,
		MaxUploadSize:  cfg.API.MaxUploadSizeBytes(),
	}
}
