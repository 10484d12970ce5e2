package workflow

import (
	"log/slog"

	"github.com/JaimeStill/litterlens/internal/observability"
	"github.com/JaimeStill/litterlens/internal/prompts"
	"github.com/JaimeStill/litterlens/pkg/inference"
)

// Runtime bundles the dependencies the workflow requires. It is constructed
// once by composition code and shared read-only across submissions.
type Runtime struct {
	Classifier inference.Classifier
	Prompts    prompts.System
	Metrics    *observability.Metrics
	Logger     *slog.Logger
}
