package api

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/litterlens/internal/config"
	"github.com/JaimeStill/litterlens/internal/prompts"
	"github.com/JaimeStill/litterlens/internal/records"
	"github.com/JaimeStill/litterlens/internal/reports"
	"github.com/JaimeStill/litterlens/pkg/openapi"
	"github.com/JaimeStill/litterlens/pkg/routes"
)

// OpenAPIPath serves the generated API document.
const OpenAPIPath = "/openapi.json"

func registerRoutes(mux *http.ServeMux, domain *Domain, cfg *config.Config, runtime *Runtime) error {
	groups := []routes.Group{
		domain.Reports.Handler(runtime.MaxUploadSize).Routes(),
		domain.Records.Handler().Routes(),
		domain.Prompts.Handler().Routes(),
	}
	routes.Register(mux, groups...)

	spec, err := buildSpec(cfg, groups)
	if err != nil {
		return err
	}
	mux.HandleFunc("GET "+OpenAPIPath, openapi.ServeSpec(spec))

	return nil
}

func buildSpec(cfg *config.Config, groups []routes.Group) ([]byte, error) {
	spec := openapi.NewSpec(&cfg.API.OpenAPI, cfg.Version)
	spec.Components.AddSchemas(reports.Schemas())
	spec.Components.AddSchemas(records.Schemas())
	spec.Components.AddSchemas(prompts.Schemas())

	routes.Describe(spec, groups...)

	data, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, fmt.Errorf("marshal openapi spec: %w", err)
	}
	return data, nil
}
