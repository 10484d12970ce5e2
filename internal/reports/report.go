package reports

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/litterlens/internal/workflow"
)

// Submission is one geotagged image awaiting classification.
type Submission struct {
	Image     []byte
	Latitude  float64
	Longitude float64
}

// Status is the terminal state of a submission that passed classification.
type Status string

const (
	// StatusPersisted means the record was stored.
	StatusPersisted Status = "persisted"
	// StatusUnsaved means classification succeeded but the store failed.
	StatusUnsaved Status = "unsaved"
)

// Outcome reports what happened to a classified submission. Err is set only
// when Status is StatusUnsaved.
type Outcome struct {
	Status   Status
	ID       int64
	Score    workflow.Score
	Category workflow.Category
	Err      error
}

// HTTPStatus returns 200 for a persisted outcome and 206 for an unsaved one.
func (o *Outcome) HTTPStatus() int {
	if o.Status == StatusPersisted {
		return http.StatusOK
	}
	return http.StatusPartialContent
}

// Message describes the outcome for the caller.
func (o *Outcome) Message() string {
	if o.Status == StatusPersisted {
		return fmt.Sprintf(
			"report %d saved with score %d and category %s",
			o.ID, o.Score, o.Category,
		)
	}
	return fmt.Sprintf(
		"report processed with score %d and category %s but not saved: %v",
		o.Score, o.Category, o.Err,
	)
}

// Describe builds the stored description for a category.
func Describe(c workflow.Category) string {
	return "Reported litter classified as " + string(c)
}

// ArchiveKey is the blob key under which a report's image is archived.
func ArchiveKey(id int64) string {
	return fmt.Sprintf("reports/%d", id)
}
