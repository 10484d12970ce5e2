package reports

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/JaimeStill/litterlens/pkg/handlers"
	"github.com/JaimeStill/litterlens/pkg/routes"
)

// IndexMessage is the body of the liveness response at the root path.
const IndexMessage = "litterlens is running"

// Response is the body of the index and report endpoints.
type Response struct {
	Response string `json:"response"`
}

// Handler provides HTTP endpoints for report submission.
type Handler struct {
	sys           System
	logger        *slog.Logger
	maxUploadSize int64
}

// NewHandler creates a Handler with the given system, logger, and body size limit.
func NewHandler(sys System, logger *slog.Logger, maxUploadSize int64) *Handler {
	return &Handler{
		sys:           sys,
		logger:        logger.With("handler", "reports"),
		maxUploadSize: maxUploadSize,
	}
}

// Routes returns the route group definition for report endpoints. The image
// route is registered only when the archive is enabled.
func (h *Handler) Routes() routes.Group {
	group := routes.Group{
		Tags: []string{"Reports"},
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/", Handler: h.Index, OpenAPI: indexOp},
			{Method: "POST", Pattern: "/report", Handler: h.Report, OpenAPI: reportOp},
		},
	}

	if h.sys.ArchiveEnabled() {
		group.Routes = append(group.Routes, routes.Route{
			Method: "GET", Pattern: "/reports/{id}/image", Handler: h.Image, OpenAPI: imageOp,
		})
	}

	return group
}

// Index reports that the service is running.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Response{Response: IndexMessage})
}

// Report accepts a base64 image with coordinates and responds with 200 when
// the report was stored, 206 when it was classified but not stored, 400 for
// a malformed body, and 500 for any other failure.
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	sub, err := DecodeSubmission(r.Body)
	if err != nil {
		h.sys.Reject(r.Context(), err)
		h.respondFailure(w, err)
		return
	}

	outcome, err := h.sys.Submit(r.Context(), sub)
	if err != nil {
		h.respondFailure(w, err)
		return
	}

	handlers.RespondJSON(w, outcome.HTTPStatus(), Response{Response: outcome.Message()})
}

// Image streams the archived image of a persisted report.
func (h *Handler) Image(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errors.New("invalid report id"))
		return
	}

	blob, err := h.sys.Image(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	defer blob.Body.Close()

	w.Header().Set("Content-Type", blob.ContentType)
	if blob.ContentLength > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(blob.ContentLength, 10))
	}
	w.WriteHeader(http.StatusOK)
	io.Copy(w, blob.Body)
}

func (h *Handler) respondFailure(w http.ResponseWriter, err error) {
	status := MapHTTPStatus(err)
	h.logger.Error("report failed", "error", err, "status", status)
	handlers.RespondJSON(w, status, Response{Response: err.Error()})
}
