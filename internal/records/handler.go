package records

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/litterlens/pkg/handlers"
	"github.com/JaimeStill/litterlens/pkg/pagination"
	"github.com/JaimeStill/litterlens/pkg/routes"
)

// Handler provides HTTP endpoints for record queries.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// TopResponse is the body of the top-records endpoint.
type TopResponse struct {
	Records []Record `json:"records"`
}

// NewHandler creates a Handler with the given system, logger, and limit config.
func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "records"),
		pagination: pagination,
	}
}

// Routes returns the route group definition for record endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Tags: []string{"Records"},
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/top-records", Handler: h.Top, OpenAPI: topOp},
		},
	}
}

// Top returns the highest-scoring records. A store failure yields 500 with
// an empty list.
func (h *Handler) Top(w http.ResponseWriter, r *http.Request) {
	limit := pagination.LimitFromQuery(r.URL.Query(), h.pagination)

	recs, err := h.sys.Top(r.Context(), limit)
	if err != nil {
		h.logger.Error("top records query failed", "error", err, "limit", limit)
		handlers.RespondJSON(w, MapHTTPStatus(err), TopResponse{Records: []Record{}})
		return
	}

	handlers.RespondJSON(w, http.StatusOK, TopResponse{Records: recs})
}
