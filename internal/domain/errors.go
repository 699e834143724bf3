package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repo and service functions when the requested
// trip or share does not exist in the store.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, end date before start date).
// Handlers should map this to HTTP 400 Bad Request.
var ErrValidation = errors.New("validation error")

// ErrNoItinerary is returned when a trip exists but has no itinerary yet.
// It wraps ErrNotFound so callers that only care about "missing" can keep
// checking errors.Is(err, ErrNotFound).
var ErrNoItinerary = fmt.Errorf("itinerary %w", ErrNotFound)

// ErrInternal marks an unexpected fault (e.g. id generation failure).
// Handlers should map this to HTTP 500.
var ErrInternal = errors.New("internal error")
