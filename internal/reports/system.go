// Package reports accepts geotagged litter images, classifies them, and
// persists the result.
package reports

import (
	"context"

	"github.com/JaimeStill/litterlens/pkg/inference"
	"github.com/JaimeStill/litterlens/pkg/storage"
)

// Classifier is an inference.Classifier that can report whether it holds a
// service credential.
type Classifier interface {
	inference.Classifier
	Configured() bool
}

// System defines the public contract for report operations.
type System interface {
	Handler(maxUploadSize int64) *Handler

	// Submit classifies and stores a submission. A returned error means
	// nothing was stored; an Outcome with StatusUnsaved means classification
	// succeeded but the insert failed.
	Submit(ctx context.Context, sub Submission) (*Outcome, error)
	// Reject records a submission refused before it reached Submit, such as
	// an undecodable or oversized body.
	Reject(ctx context.Context, err error)
	// Image returns the archived image of a persisted report.
	Image(ctx context.Context, id int64) (*storage.Blob, error)
	// ArchiveEnabled reports whether images are archived.
	ArchiveEnabled() bool
}
