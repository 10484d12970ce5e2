// Package prompts holds the instruction text sent with each classification
// call. Instructions are tunable through configuration; the output specs
// that the response parser depends on are not.
package prompts

import (
	"log/slog"
	"strings"
)

// System resolves the effective prompt for each stage.
type System interface {
	Handler() *Handler

	// Instructions returns the configured override or the default.
	Instructions(stage Stage) (string, error)
	// Spec returns the fixed output constraints for a stage.
	Spec(stage Stage) (string, error)
	// Compose joins instructions and spec into the text sent to the model.
	Compose(stage Stage) (string, error)
}

type catalogue struct {
	cfg    Config
	logger *slog.Logger
}

// New creates a prompt System from the given overrides.
func New(cfg *Config, logger *slog.Logger) System {
	c := &catalogue{
		cfg:    *cfg,
		logger: logger.With("system", "prompts"),
	}
	for _, stage := range stages {
		if cfg.override(stage) != "" {
			c.logger.Info("instruction override active", "stage", stage)
		}
	}
	return c
}

func (c *catalogue) Handler() *Handler {
	return NewHandler(c, c.logger)
}

func (c *catalogue) Instructions(stage Stage) (string, error) {
	if _, err := ParseStage(string(stage)); err != nil {
		return "", err
	}
	if text := c.cfg.override(stage); text != "" {
		return text, nil
	}
	return Instructions(stage)
}

func (c *catalogue) Spec(stage Stage) (string, error) {
	return Spec(stage)
}

func (c *catalogue) Compose(stage Stage) (string, error) {
	instructions, err := c.Instructions(stage)
	if err != nil {
		return "", err
	}
	spec, err := c.Spec(stage)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(strings.TrimSpace(instructions))
	sb.WriteString("\n\n")
	sb.WriteString(spec)
	return sb.String(), nil
}
