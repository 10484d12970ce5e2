package prompts

import (
	"errors"
	"net/http"
)

var ErrInvalidStage = errors.New("stage must be score or category")

// MapHTTPStatus maps prompt errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrInvalidStage) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
