package prompts

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/litterlens/pkg/handlers"
	"github.com/JaimeStill/litterlens/pkg/routes"
)

// Handler exposes the effective prompts read-only.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// StageContent is the response type for stage-scoped content endpoints.
type StageContent struct {
	Stage   Stage  `json:"stage"`
	Content string `json:"content"`
}

// NewHandler creates a Handler for the given system.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "prompts"),
	}
}

// Routes returns the route group definition for prompt endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/prompts",
		Tags:   []string{"Prompts"},
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/stages", Handler: h.Stages, OpenAPI: stagesOp},
			{Method: "GET", Pattern: "/{stage}/instructions", Handler: h.Instructions, OpenAPI: instructionsOp},
			{Method: "GET", Pattern: "/{stage}/spec", Handler: h.Spec, OpenAPI: specOp},
		},
	}
}

// Stages returns the valid stages.
func (h *Handler) Stages(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Stages())
}

// Instructions returns the effective instructions for a stage.
func (h *Handler) Instructions(w http.ResponseWriter, r *http.Request) {
	h.content(w, r, h.sys.Instructions)
}

// Spec returns the output constraints for a stage.
func (h *Handler) Spec(w http.ResponseWriter, r *http.Request) {
	h.content(w, r, h.sys.Spec)
}

func (h *Handler) content(w http.ResponseWriter, r *http.Request, get func(Stage) (string, error)) {
	stage, err := ParseStage(r.PathValue("stage"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	text, err := get(stage)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, StageContent{Stage: stage, Content: text})
}
