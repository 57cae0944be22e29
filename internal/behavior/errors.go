package behavior

import (
	"errors"
	"net/http"
)

// ErrInvalidConfig indicates a configuration payload that could not be decoded.
var ErrInvalidConfig = errors.New("invalid behavior config")

// MapHTTPStatus maps behavior domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrInvalidConfig) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
