package reports

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/litterlens/pkg/storage"
)

var (
	// ErrConfig means the inference credential is not configured.
	ErrConfig = errors.New("inference service is not configured")
	// ErrInvalidSubmission means the request body failed validation.
	ErrInvalidSubmission = errors.New("invalid submission")
	// ErrArchiveDisabled means no image archive is configured.
	ErrArchiveDisabled = errors.New("image archive is disabled")
)

// MapHTTPStatus maps report errors to HTTP status codes. Configuration,
// inference, parse, and task failures all surface as 500.
func MapHTTPStatus(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrInvalidSubmission):
		return http.StatusBadRequest
	case errors.Is(err, ErrArchiveDisabled), errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, storage.ErrEmptyKey), errors.Is(err, storage.ErrInvalidKey):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
