package storage_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/JaimeStill/litterlens/pkg/storage"
)

func TestConfigDisabledByDefault(t *testing.T) {
	var cfg storage.Config
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if cfg.Enabled() {
		t.Error("storage should be disabled without a connection string")
	}
	if cfg.ContainerName != "litter-reports" {
		t.Errorf("ContainerName: got %q", cfg.ContainerName)
	}
}

func TestConfigEnv(t *testing.T) {
	t.Setenv("TEST_STORAGE_CONN", "UseDevelopmentStorage=true")
	t.Setenv("TEST_STORAGE_CONTAINER", "archive")

	var cfg storage.Config
	err := cfg.Finalize(&storage.Env{
		ConnectionString: "TEST_STORAGE_CONN",
		ContainerName:    "TEST_STORAGE_CONTAINER",
	})
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if !cfg.Enabled() {
		t.Error("storage should be enabled")
	}
	if cfg.ContainerName != "archive" {
		t.Errorf("ContainerName: got %q", cfg.ContainerName)
	}
}

func TestValidateKey(t *testing.T) {
	tests := []struct {
		key  string
		want error
	}{
		{"reports/42", nil},
		{"", storage.ErrEmptyKey},
		{"reports/../secrets", storage.ErrInvalidKey},
	}

	for _, tt := range tests {
		if err := storage.ValidateKey(tt.key); !errors.Is(err, tt.want) {
			t.Errorf("ValidateKey(%q) = %v, want %v", tt.key, err, tt.want)
		}
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{storage.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("lookup: %w", storage.ErrNotFound), http.StatusNotFound},
		{storage.ErrEmptyKey, http.StatusBadRequest},
		{storage.ErrInvalidKey, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := storage.MapHTTPStatus(tt.err); got != tt.want {
			t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
