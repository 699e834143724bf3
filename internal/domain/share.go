package domain

import (
	"time"

	"github.com/google/uuid"
)

// SharedItinerary is a read-only snapshot of a trip's itinerary, published
// under its own id. TripID is a back-reference only: later edits to the
// trip never reach an existing snapshot.
type SharedItinerary struct {
	ID          string
	TripID      uuid.UUID
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Itinerary   Itinerary
	SharedAt    time.Time
}

// Clone returns a deep copy of s.
func (s SharedItinerary) Clone() SharedItinerary {
	c := s
	c.Itinerary = s.Itinerary.Clone()
	return c
}
