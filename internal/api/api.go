// Package api assembles the root HTTP module from the domain systems.
package api

import (
	"net/http"

	"github.com/JaimeStill/litterlens/internal/config"
	"github.com/JaimeStill/litterlens/internal/infrastructure"
	"github.com/JaimeStill/litterlens/pkg/middleware"
	"github.com/JaimeStill/litterlens/pkg/module"
)

// NewModule creates the API module, mounted at the server root, with all
// domain handlers and middleware.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	mux := http.NewServeMux()
	if err := registerRoutes(mux, domain, cfg, runtime); err != nil {
		return nil, err
	}

	m := module.New(module.RootPrefix, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))

	return m, nil
}
