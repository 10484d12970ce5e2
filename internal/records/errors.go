package records

import (
	"errors"
	"net/http"
)

// ErrStore marks any failure of the record store.
var ErrStore = errors.New("record store error")

// MapHTTPStatus maps record errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	return http.StatusInternalServerError
}
