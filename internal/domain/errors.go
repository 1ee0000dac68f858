package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing destination, trip longer than the day cap).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrInvalidRange is returned when a trip's end date precedes its start date.
// It wraps ErrValidation so callers that only check for validation failures
// still catch it.
var ErrInvalidRange = fmt.Errorf("%w: end date precedes start date", ErrValidation)
