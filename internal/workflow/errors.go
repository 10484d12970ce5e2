package workflow

import (
	"errors"
	"fmt"

	"github.com/JaimeStill/litterlens/pkg/inference"
)

var (
	// ErrParse marks model output that does not match the expected format.
	ErrParse = errors.New("unparseable model output")
	// ErrTask marks a classification goroutine that did not run to completion.
	ErrTask = errors.New("classification task failed")
)

// Stage-specific failures, reported in this precedence order.
var (
	ErrScoreService    = fmt.Errorf("score call: %w", inference.ErrService)
	ErrScoreParse      = fmt.Errorf("score response: %w", ErrParse)
	ErrCategoryService = fmt.Errorf("category call: %w", inference.ErrService)
	ErrCategoryParse   = fmt.Errorf("category response: %w", ErrParse)
)
