package module_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/litterlens/pkg/module"
)

func tagHandler(tag string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Handler", tag)
		w.WriteHeader(http.StatusOK)
	}
}

func newTestRouter() *module.Router {
	router := module.NewRouter()

	rootMux := http.NewServeMux()
	rootMux.HandleFunc("GET /{$}", tagHandler("root-index"))
	rootMux.HandleFunc("POST /report", tagHandler("root-report"))
	router.Mount(module.New(module.RootPrefix, rootMux))

	adminMux := http.NewServeMux()
	adminMux.HandleFunc("GET /status", tagHandler("admin-status"))
	router.Mount(module.New("/admin", adminMux))

	router.HandleNative("GET /healthz", tagHandler("native-healthz"))

	return router
}

func TestRouterDispatch(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantTag    string
	}{
		{"prefixed module", "GET", "/admin/status", http.StatusOK, "admin-status"},
		{"native route", "GET", "/healthz", http.StatusOK, "native-healthz"},
		{"root index", "GET", "/", http.StatusOK, "root-index"},
		{"root route", "POST", "/report", http.StatusOK, "root-report"},
		{"trailing slash normalized", "POST", "/report/", http.StatusOK, "root-report"},
		{"root unmatched", "GET", "/missing", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			if rec.Code != tt.wantStatus {
				t.Errorf("status: got %d, want %d", rec.Code, tt.wantStatus)
			}
			if got := rec.Header().Get("X-Handler"); got != tt.wantTag {
				t.Errorf("handler: got %q, want %q", got, tt.wantTag)
			}
		})
	}
}

func TestRouterWithoutRootFallsBackToNative(t *testing.T) {
	router := module.NewRouter()
	router.HandleNative("GET /healthz", tagHandler("native"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/unknown", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rec.Code)
	}
}
