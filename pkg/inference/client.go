// Package inference sends an image and an instruction to a vision model
// through a go-agents agent and returns the model's text completion.
package inference

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/JaimeStill/document-context/pkg/document"
	"github.com/JaimeStill/document-context/pkg/encoding"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

// Classifier returns the model's free-text answer to instruction about image.
// Every failure wraps ErrService.
type Classifier interface {
	Classify(ctx context.Context, image []byte, instruction string) (string, error)
}

// Client is a Classifier backed by a go-agents vision agent. Each call
// creates its own agent.
type Client struct {
	agent  gaconfig.AgentConfig
	cfg    Config
	logger *slog.Logger
}

// New creates a Client from a finalized agent config and inference Config.
func New(agentCfg *gaconfig.AgentConfig, cfg *Config, logger *slog.Logger) *Client {
	return &Client{
		agent:  *agentCfg,
		cfg:    *cfg,
		logger: logger.With("system", "inference"),
	}
}

// Configured reports whether a service credential is present.
func (c *Client) Configured() bool {
	if c.agent.Provider == nil {
		return false
	}
	token, _ := c.agent.Provider.Options["token"].(string)
	return token != ""
}

// Model returns the configured model name.
func (c *Client) Model() string {
	if c.agent.Model == nil {
		return ""
	}
	return c.agent.Model.Name
}

func (c *Client) Classify(ctx context.Context, image []byte, instruction string) (string, error) {
	a, err := agent.New(&c.agent)
	if err != nil {
		return "", fmt.Errorf("%w: create agent: %w", ErrService, err)
	}

	dataURI, err := DataURI(image)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrService, err)
	}

	resp, err := a.Vision(ctx, instruction, []string{dataURI}, c.options())
	if err != nil {
		return "", fmt.Errorf("%w: vision call: %w", ErrService, err)
	}

	content := resp.Content()
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("%w: empty completion", ErrService)
	}

	c.logger.DebugContext(ctx, "completion received", "model", c.Model(), "length", len(content))
	return content, nil
}

func (c *Client) options() map[string]any {
	return map[string]any{"max_tokens": c.cfg.MaxTokens}
}

// DataURI embeds image as a base64 data URI. PNG content keeps its type;
// everything else is labelled JPEG.
func DataURI(image []byte) (string, error) {
	format := document.JPEG
	if MediaType(image) == "image/png" {
		format = document.PNG
	}

	uri, err := encoding.EncodeImageDataURI(image, format)
	if err != nil {
		return "", fmt.Errorf("encode image: %w", err)
	}
	return uri, nil
}

// MediaType sniffs the image MIME type, defaulting to image/jpeg.
func MediaType(image []byte) string {
	mt := http.DetectContentType(image)
	if !strings.HasPrefix(mt, "image/") {
		return "image/jpeg"
	}
	return mt
}
