package reports

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JaimeStill/litterlens/internal/observability"
	"github.com/JaimeStill/litterlens/internal/prompts"
	"github.com/JaimeStill/litterlens/internal/records"
	"github.com/JaimeStill/litterlens/internal/workflow"
	"github.com/JaimeStill/litterlens/pkg/formatting"
	"github.com/JaimeStill/litterlens/pkg/inference"
	"github.com/JaimeStill/litterlens/pkg/storage"
)

type repo struct {
	classifier Classifier
	records    records.System
	archive    storage.System
	rt         *workflow.Runtime
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// New creates a report system. archive may be nil, which disables image
// archiving. The workflow runtime is built from the given dependencies.
func New(
	classifier Classifier,
	ps prompts.System,
	recs records.System,
	archive storage.System,
	metrics *observability.Metrics,
	logger *slog.Logger,
) System {
	rt := &workflow.Runtime{
		Classifier: classifier,
		Prompts:    ps,
		Metrics:    metrics,
		Logger:     logger,
	}

	if archive != nil {
		metrics.ArchiveEnabled.Set(1)
	}

	return &repo{
		classifier: classifier,
		records:    recs,
		archive:    archive,
		rt:         rt,
		metrics:    metrics,
		logger:     logger.With("system", "reports"),
	}
}

func (r *repo) Handler(maxUploadSize int64) *Handler {
	return NewHandler(r, r.logger, maxUploadSize)
}

func (r *repo) ArchiveEnabled() bool {
	return r.archive != nil
}

func (r *repo) Reject(ctx context.Context, err error) {
	r.metrics.Reports.WithLabelValues("rejected").Inc()
	r.logger.WarnContext(ctx, "report rejected", "error", err)
}

func (r *repo) Submit(ctx context.Context, sub Submission) (*Outcome, error) {
	r.metrics.ReportsInFlight.Inc()
	defer r.metrics.ReportsInFlight.Dec()

	traceID := uuid.NewString()
	logger := r.logger.With("trace_id", traceID)

	if len(sub.Image) == 0 {
		r.metrics.Reports.WithLabelValues("rejected").Inc()
		return nil, fmt.Errorf("%w: image is empty", ErrInvalidSubmission)
	}

	if !r.classifier.Configured() {
		r.metrics.Reports.WithLabelValues("failed").Inc()
		logger.Error("report rejected", "error", ErrConfig)
		return nil, ErrConfig
	}

	logger.Info(
		"report received",
		"size", formatting.FormatBytes(int64(len(sub.Image)), 1),
		"latitude", sub.Latitude,
		"longitude", sub.Longitude,
	)

	result, err := workflow.Execute(ctx, r.rt, workflow.Input{
		TraceID: traceID,
		Image:   sub.Image,
	})
	if err != nil {
		r.metrics.Reports.WithLabelValues("failed").Inc()
		return nil, err
	}

	id, err := r.records.Insert(ctx, records.NewRecord{
		Latitude:    sub.Latitude,
		Longitude:   sub.Longitude,
		Description: Describe(result.Category),
		Score:       int32(result.Score),
		Status:      records.StatusPending,
	})
	if err != nil {
		r.metrics.Reports.WithLabelValues(string(StatusUnsaved)).Inc()
		logger.Error("report classified but not saved", "error", err)
		return &Outcome{
			Status:   StatusUnsaved,
			Score:    result.Score,
			Category: result.Category,
			Err:      err,
		}, nil
	}

	r.metrics.Reports.WithLabelValues(string(StatusPersisted)).Inc()
	logger.Info("report saved", "id", id)

	r.archiveImage(ctx, logger, id, sub.Image)

	return &Outcome{
		Status:   StatusPersisted,
		ID:       id,
		Score:    result.Score,
		Category: result.Category,
	}, nil
}

func (r *repo) Image(ctx context.Context, id int64) (*storage.Blob, error) {
	if r.archive == nil {
		return nil, ErrArchiveDisabled
	}
	return r.archive.Download(ctx, ArchiveKey(id))
}

// archiveImage failures are logged and counted; they never change the outcome.
func (r *repo) archiveImage(ctx context.Context, logger *slog.Logger, id int64, image []byte) {
	if r.archive == nil {
		return
	}

	key := ArchiveKey(id)
	if err := r.archive.Upload(ctx, key, image, inference.MediaType(image)); err != nil {
		r.metrics.ArchiveUploads.WithLabelValues("error").Inc()
		logger.Warn("image archive failed", "key", key, "error", err)
		return
	}

	r.metrics.ArchiveUploads.WithLabelValues("success").Inc()
	logger.Debug("image archived", "key", key)
}
