package pagination_test

import (
	"net/url"
	"testing"

	"github.com/JaimeStill/litterlens/pkg/pagination"
)

func TestFinalizeDefaults(t *testing.T) {
	var cfg pagination.Config
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if cfg.DefaultLimit != 5 {
		t.Errorf("DefaultLimit: got %d, want 5", cfg.DefaultLimit)
	}
	if cfg.MaxLimit != 50 {
		t.Errorf("MaxLimit: got %d, want 50", cfg.MaxLimit)
	}
}

func TestFinalizeEnv(t *testing.T) {
	t.Setenv("TEST_DEFAULT_LIMIT", "10")
	t.Setenv("TEST_MAX_LIMIT", "20")

	var cfg pagination.Config
	err := cfg.Finalize(&pagination.ConfigEnv{
		DefaultLimit: "TEST_DEFAULT_LIMIT",
		MaxLimit:     "TEST_MAX_LIMIT",
	})
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if cfg.DefaultLimit != 10 || cfg.MaxLimit != 20 {
		t.Errorf("got default=%d max=%d, want 10 and 20", cfg.DefaultLimit, cfg.MaxLimit)
	}
}

func TestFinalizeRejectsDefaultAboveMax(t *testing.T) {
	cfg := pagination.Config{DefaultLimit: 60, MaxLimit: 50}
	if err := cfg.Finalize(nil); err == nil {
		t.Error("expected error when default exceeds max")
	}
}

func TestMerge(t *testing.T) {
	cfg := pagination.Config{DefaultLimit: 5, MaxLimit: 50}
	cfg.Merge(&pagination.Config{MaxLimit: 100})

	if cfg.DefaultLimit != 5 {
		t.Errorf("DefaultLimit: got %d, want 5", cfg.DefaultLimit)
	}
	if cfg.MaxLimit != 100 {
		t.Errorf("MaxLimit: got %d, want 100", cfg.MaxLimit)
	}
}

func TestNormalize(t *testing.T) {
	cfg := pagination.Config{DefaultLimit: 5, MaxLimit: 50}

	tests := []struct {
		limit int
		want  int
	}{
		{1, 1},
		{20, 20},
		{50, 50},
		{0, 5},
		{-3, 5},
		{51, 5},
	}

	for _, tt := range tests {
		if got := cfg.Normalize(tt.limit); got != tt.want {
			t.Errorf("Normalize(%d) = %d, want %d", tt.limit, got, tt.want)
		}
	}
}

func TestLimitFromQuery(t *testing.T) {
	cfg := pagination.Config{DefaultLimit: 5, MaxLimit: 50}

	tests := []struct {
		query string
		want  int
	}{
		{"", 5},
		{"limit=10", 10},
		{"limit=abc", 5},
		{"limit=0", 5},
		{"limit=500", 5},
	}

	for _, tt := range tests {
		values, _ := url.ParseQuery(tt.query)
		if got := pagination.LimitFromQuery(values, cfg); got != tt.want {
			t.Errorf("LimitFromQuery(%q) = %d, want %d", tt.query, got, tt.want)
		}
	}
}
