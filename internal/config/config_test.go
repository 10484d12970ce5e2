package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/JaimeStill/litterlens/internal/config"
)

// clearEnv blanks variables a developer shell commonly sets so each test
// starts from defaults.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"LITTERLENS_ENV",
		"LITTERLENS_SERVER_HOST",
		"LITTERLENS_SERVER_PORT",
		"LITTERLENS_AGENT_TOKEN",
		"LITTERLENS_AGENT_MODEL_NAME",
		"LITTERLENS_AGENT_BASE_URL",
		"LITTERLENS_INFERENCE_MAX_TOKENS",
		"LITTERLENS_STORAGE_CONNECTION_STRING",
		"LITTERLENS_API_MAX_UPLOAD_SIZE",
		"LITTERLENS_PROMPTS_SCORE",
		"OPENAI_API_KEY",
		"PORT",
		"ADDRESS",
	} {
		t.Setenv(name, "")
	}
}

func agentToken(cfg *config.Config) string {
	token, _ := cfg.Agent.Provider.Options["token"].(string)
	return token
}

func missingBase(t *testing.T) string {
	return filepath.Join(t.TempDir(), "config.toml")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.LoadFrom(missingBase(t))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if cfg.Server.Port != 7504 {
		t.Errorf("Server.Port: got %d, want 7504", cfg.Server.Port)
	}
	if cfg.Server.Addr() != "0.0.0.0:7504" {
		t.Errorf("Server.Addr: got %q", cfg.Server.Addr())
	}
	if cfg.ShutdownTimeoutDuration() != 30*time.Second {
		t.Errorf("ShutdownTimeout: got %v", cfg.ShutdownTimeoutDuration())
	}
	if cfg.Agent.Name != "litterlens" {
		t.Errorf("Agent.Name: got %q", cfg.Agent.Name)
	}
	if cfg.Agent.Provider.Name != "ollama" || cfg.Agent.Provider.BaseURL != "https://api.openai.com" {
		t.Errorf("Agent.Provider: got %s %s", cfg.Agent.Provider.Name, cfg.Agent.Provider.BaseURL)
	}
	if cfg.Agent.Model.Name != "gpt-4o-mini" {
		t.Errorf("Agent.Model.Name: got %q", cfg.Agent.Model.Name)
	}
	if _, ok := cfg.Agent.Provider.Options["token"]; ok {
		t.Error("token should not be set without env")
	}
	if cfg.Inference.MaxTokens != 1000 {
		t.Errorf("Inference.MaxTokens: got %d", cfg.Inference.MaxTokens)
	}
	if cfg.Storage.Enabled() {
		t.Error("storage should be disabled by default")
	}
	if cfg.API.MaxUploadSizeBytes() != 10*1024*1024 {
		t.Errorf("MaxUploadSizeBytes: got %d", cfg.API.MaxUploadSizeBytes())
	}
	if cfg.API.Top.DefaultLimit != 5 {
		t.Errorf("Top.DefaultLimit: got %d", cfg.API.Top.DefaultLimit)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LITTERLENS_SERVER_PORT", "9000")
	t.Setenv("LITTERLENS_AGENT_TOKEN", "sk-primary")
	t.Setenv("OPENAI_API_KEY", "sk-fallback")
	t.Setenv("LITTERLENS_AGENT_BASE_URL", "http://localhost:11434")
	t.Setenv("LITTERLENS_AGENT_MODEL_NAME", "llava")
	t.Setenv("LITTERLENS_INFERENCE_MAX_TOKENS", "250")
	t.Setenv("LITTERLENS_API_MAX_UPLOAD_SIZE", "2MB")
	t.Setenv("LITTERLENS_PROMPTS_SCORE", "custom")

	cfg, err := config.LoadFrom(missingBase(t))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port: got %d", cfg.Server.Port)
	}
	if got := agentToken(cfg); got != "sk-primary" {
		t.Errorf("agent token: got %q", got)
	}
	if cfg.Agent.Provider.BaseURL != "http://localhost:11434" {
		t.Errorf("Agent.Provider.BaseURL: got %q", cfg.Agent.Provider.BaseURL)
	}
	if cfg.Agent.Model.Name != "llava" {
		t.Errorf("Agent.Model.Name: got %q", cfg.Agent.Model.Name)
	}
	if cfg.Inference.MaxTokens != 250 {
		t.Errorf("Inference.MaxTokens: got %d", cfg.Inference.MaxTokens)
	}
	if cfg.API.MaxUploadSizeBytes() != 2*1024*1024 {
		t.Errorf("MaxUploadSizeBytes: got %d", cfg.API.MaxUploadSizeBytes())
	}
	if cfg.Prompts.Score != "custom" {
		t.Errorf("Prompts.Score: got %q", cfg.Prompts.Score)
	}
}

func TestLoadHostingFallbacks(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("ADDRESS", "127.0.0.1")
	t.Setenv("OPENAI_API_KEY", "sk-fallback")

	cfg, err := config.LoadFrom(missingBase(t))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if cfg.Server.Addr() != "127.0.0.1:8080" {
		t.Errorf("Server.Addr: got %q", cfg.Server.Addr())
	}
	if got := agentToken(cfg); got != "sk-fallback" {
		t.Errorf("agent token: got %q", got)
	}
}

func TestLoadFileAndOverlay(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	base := filepath.Join(dir, "config.toml")

	writeFile(t, base, `
shutdown_timeout = "45s"

[server]
port = 8000

[agent.model]
name = "gpt-4o"

[api.top]
default_limit = 10
`)
	writeFile(t, filepath.Join(dir, "config.staging.toml"), `
[server]
port = 8100

[storage]
connection_string = "UseDevelopmentStorage=true"
`)

	t.Setenv("LITTERLENS_ENV", "staging")

	cfg, err := config.LoadFrom(base)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if cfg.Server.Port != 8100 {
		t.Errorf("overlay port: got %d, want 8100", cfg.Server.Port)
	}
	if cfg.Agent.Model.Name != "gpt-4o" {
		t.Errorf("base model: got %q", cfg.Agent.Model.Name)
	}
	if cfg.ShutdownTimeoutDuration() != 45*time.Second {
		t.Errorf("shutdown timeout: got %v", cfg.ShutdownTimeoutDuration())
	}
	if cfg.API.Top.DefaultLimit != 10 {
		t.Errorf("top default limit: got %d", cfg.API.Top.DefaultLimit)
	}
	if !cfg.Storage.Enabled() || cfg.Storage.ContainerName != "litter-reports" {
		t.Errorf("storage: got %+v", cfg.Storage)
	}
	if cfg.Env() != "staging" {
		t.Errorf("Env: got %q", cfg.Env())
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed toml", "[server\nport = 1"},
		{"bad port", "[server]\nport = 70000"},
		{"negative max tokens", "[inference]\nmax_tokens = -5"},
		{"bad upload size", "[api]\nmax_upload_size = \"lots\""},
		{"default above max", "[api.top]\ndefault_limit = 80\nmax_limit = 20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			base := filepath.Join(t.TempDir(), "config.toml")
			writeFile(t, base, tt.content)

			if _, err := config.LoadFrom(base); err == nil {
				t.Error("expected error")
			}
		})
	}
}
