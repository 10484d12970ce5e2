package api_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JaimeStill/litterlens/internal/api"
	"github.com/JaimeStill/litterlens/internal/config"
	"github.com/JaimeStill/litterlens/internal/infrastructure"
	"github.com/JaimeStill/litterlens/internal/observability"
	"github.com/JaimeStill/litterlens/internal/reports"
	"github.com/JaimeStill/litterlens/pkg/database"
	"github.com/JaimeStill/litterlens/pkg/inference"
	"github.com/JaimeStill/litterlens/pkg/lifecycle"
	"github.com/JaimeStill/litterlens/pkg/module"
)

// newRouter builds the API module over an unconnected database and an
// inference client without a token.
func newRouter(t *testing.T) http.Handler {
	t.Helper()
	t.Setenv("LITTERLENS_AGENT_TOKEN", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("LITTERLENS_ENV", "")

	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := database.New(&cfg.Database, nil, logger)
	if err != nil {
		t.Fatalf("database: %v", err)
	}

	infra := &infrastructure.Infrastructure{
		Lifecycle: lifecycle.New(),
		Logger:    logger,
		Database:  db,
		Inference: inference.New(&cfg.Agent, &cfg.Inference, logger),
		Metrics:   observability.NewMetricsForTesting(),
	}

	m, err := api.NewModule(cfg, infra)
	if err != nil {
		t.Fatalf("NewModule: %v", err)
	}

	router := module.NewRouter()
	router.Mount(m)
	return router
}

func TestIndex(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(t).ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}

	var resp reports.Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Response != reports.IndexMessage {
		t.Errorf("response: got %q", resp.Response)
	}
}

func TestPromptRoutesMounted(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(t).ServeHTTP(rec, httptest.NewRequest("GET", "/prompts/score/spec", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ONLY OUTPUT THE SCORE") {
		t.Errorf("body: got %s", rec.Body.String())
	}
}

func TestReportWithoutTokenFails(t *testing.T) {
	body := `{"image":"bGl0dGVy","latitude":1,"longitude":2}`
	req := httptest.NewRequest("POST", "/report", strings.NewReader(body))
	rec := httptest.NewRecorder()
	newRouter(t).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d, want 500", rec.Code)
	}

	var resp reports.Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Response != reports.ErrConfig.Error() {
		t.Errorf("response: got %q", resp.Response)
	}
}

func TestCORSPreflight(t *testing.T) {
	t.Setenv("LITTERLENS_CORS_ENABLED", "true")
	t.Setenv("LITTERLENS_CORS_ORIGINS", "*")

	req := httptest.NewRequest("OPTIONS", "/report", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	newRouter(t).ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status: got %d, want 204", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("allow origin: got %q", got)
	}
}

func TestImageRouteAbsentWithoutArchive(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(t).ServeHTTP(rec, httptest.NewRequest("GET", "/reports/1/image", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rec.Code)
	}
}

func TestOpenAPIDocument(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(t).ServeHTTP(rec, httptest.NewRequest("GET", api.OpenAPIPath, nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}

	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]map[string]any `json:"paths"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&doc); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if doc.Info.Title != "Litterlens API" {
		t.Errorf("title: got %q", doc.Info.Title)
	}
	for path, method := range map[string]string{
		"/":                             "get",
		"/report":                       "post",
		"/top-records":                  "get",
		"/prompts/{stage}/spec":         "get",
		"/prompts/{stage}/instructions": "get",
	} {
		if _, ok := doc.Paths[path][method]; !ok {
			t.Errorf("missing %s %s", method, path)
		}
	}
	if _, ok := doc.Paths["/reports/{id}/image"]; ok {
		t.Error("image path should be absent without an archive")
	}
}
