// Package workflow classifies one report image with two concurrent calls to
// the inference service and validates both answers.
package workflow

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/litterlens/internal/prompts"
)

// Execute issues the score and category calls for in.Image concurrently and
// waits for both. Outcomes are evaluated score first, then category, so the
// reported error does not depend on which call finished first. A call that
// panics is reported as ErrTask.
func Execute(ctx context.Context, rt *Runtime, in Input) (*Result, error) {
	logger := rt.Logger.With("workflow", "report", "trace_id", in.TraceID)

	scorePrompt, err := rt.Prompts.Compose(prompts.StageScore)
	if err != nil {
		return nil, fmt.Errorf("%w: compose score prompt: %w", ErrTask, err)
	}
	categoryPrompt, err := rt.Prompts.Compose(prompts.StageCategory)
	if err != nil {
		return nil, fmt.Errorf("%w: compose category prompt: %w", ErrTask, err)
	}

	var score, category callResult

	// No shared cancellation: a failed call never stops its sibling.
	var g errgroup.Group
	g.Go(func() error {
		return run(ctx, rt, prompts.StageScore, in.Image, scorePrompt, &score)
	})
	g.Go(func() error {
		return run(ctx, rt, prompts.StageCategory, in.Image, categoryPrompt, &category)
	})

	if err := g.Wait(); err != nil {
		logger.ErrorContext(ctx, "classification task aborted", "error", err)
		return nil, err
	}

	result, err := validate(rt, score, category)
	if err != nil {
		logger.WarnContext(ctx, "classification rejected", "error", err)
		return nil, err
	}

	logger.InfoContext(
		ctx, "classification complete",
		"score", result.Score,
		"category", result.Category,
	)
	return result, nil
}

func run(
	ctx context.Context,
	rt *Runtime,
	stage prompts.Stage,
	image []byte,
	prompt string,
	out *callResult,
) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s call panicked: %v", ErrTask, stage, r)
		}
	}()

	start := time.Now()
	text, callErr := rt.Classifier.Classify(ctx, image, prompt)
	rt.Metrics.InferenceDuration.WithLabelValues(string(stage)).Observe(time.Since(start).Seconds())

	outcome := "success"
	if callErr != nil {
		outcome = "service_error"
	}
	rt.Metrics.InferenceRequests.WithLabelValues(string(stage), outcome).Inc()

	*out = callResult{Stage: stage, Text: text, Err: callErr}
	return nil
}

func validate(rt *Runtime, score, category callResult) (*Result, error) {
	if score.Err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScoreService, score.Err)
	}
	s, err := ParseScore(score.Text)
	if err != nil {
		parseFailed(rt, score.Stage)
		return nil, stageError(ErrScoreParse, err)
	}

	if category.Err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCategoryService, category.Err)
	}
	c, err := ParseCategory(category.Text)
	if err != nil {
		parseFailed(rt, category.Stage)
		return nil, stageError(ErrCategoryParse, err)
	}

	return &Result{Score: s, Category: c}, nil
}

// stageError attaches the parser's detail to a stage sentinel without
// repeating the ErrParse text.
func stageError(sentinel, err error) error {
	detail := strings.TrimPrefix(err.Error(), ErrParse.Error()+": ")
	return fmt.Errorf("%w: %s", sentinel, detail)
}

func parseFailed(rt *Runtime, stage prompts.Stage) {
	rt.Metrics.InferenceRequests.WithLabelValues(string(stage), "parse_error").Inc()
}
