package prompts_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/JaimeStill/litterlens/internal/prompts"
	"github.com/JaimeStill/litterlens/pkg/routes"
)

func newMux(t *testing.T, cfg *prompts.Config) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	routes.Register(mux, prompts.New(cfg, discardLogger()).Handler().Routes())
	return mux
}

func TestHandlerStages(t *testing.T) {
	rec := httptest.NewRecorder()
	newMux(t, &prompts.Config{}).ServeHTTP(rec, httptest.NewRequest("GET", "/prompts/stages", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}

	var got []prompts.Stage
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(prompts.Stages(), got); diff != "" {
		t.Errorf("stages mismatch (-want +got):\n%s", diff)
	}
}

func TestHandlerInstructions(t *testing.T) {
	rec := httptest.NewRecorder()
	mux := newMux(t, &prompts.Config{Score: "custom score"})
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/prompts/score/instructions", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}

	var got prompts.StageContent
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := prompts.StageContent{Stage: prompts.StageScore, Content: "custom score"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("content mismatch (-want +got):\n%s", diff)
	}
}

func TestHandlerSpec(t *testing.T) {
	rec := httptest.NewRecorder()
	newMux(t, &prompts.Config{}).ServeHTTP(rec, httptest.NewRequest("GET", "/prompts/category/spec", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}

	var got prompts.StageContent
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	spec, _ := prompts.Spec(prompts.StageCategory)
	if got.Content != spec {
		t.Errorf("content: got %q", got.Content)
	}
}

func TestHandlerInvalidStage(t *testing.T) {
	rec := httptest.NewRecorder()
	newMux(t, &prompts.Config{}).ServeHTTP(rec, httptest.NewRequest("GET", "/prompts/colour/spec", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}
