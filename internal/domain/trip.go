// Package domain contains the core data types for the trip planner.
// This package has no external dependencies beyond uuid and is imported by
// every other internal package (catalog, itinerary, repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar-date format used for trip dates and Day.Date.
const DateLayout = "2006-01-02"

const (
	// MaxTripDays is the longest trip, in calendar days, the planner accepts.
	MaxTripDays = 366

	// MaxActivityHours is the longest single activity the planner accepts.
	MaxActivityHours = 24.0
)

// Trip is the top-level aggregate: a destination, a date range, the
// activities the traveller picked and the generated itinerary.
//
// Itinerary is nil until the first generation (or after a client saves a
// null itinerary). A non-nil empty Itinerary means "generated from zero
// activities", which still counts as having an itinerary.
type Trip struct {
	ID                 uuid.UUID
	Destination        string
	StartDate          time.Time
	EndDate            time.Time
	SelectedActivities []Activity
	Itinerary          Itinerary
	CreatedAt          time.Time
}

// HasItinerary reports whether an itinerary has been stored on the trip.
func (t Trip) HasItinerary() bool {
	return t.Itinerary != nil
}

// Clone returns a deep copy of t. Mutating the copy's activities or
// itinerary never affects t.
func (t Trip) Clone() Trip {
	c := t
	c.SelectedActivities = cloneActivities(t.SelectedActivities)
	c.Itinerary = t.Itinerary.Clone()
	return c
}

// DaySpan returns the inclusive number of calendar days between start and
// end. Both dates are truncated to midnight UTC first, so time-of-day never
// changes the count. A result below 1 means end is before start.
// Counting on Unix seconds keeps ranges longer than time.Duration can hold
// exact.
func DaySpan(start, end time.Time) int {
	s := TruncateDate(start).Unix()
	e := TruncateDate(end).Unix()
	return int((e-s)/secondsPerDay) + 1
}

const secondsPerDay = 24 * 60 * 60

// TruncateDate drops the time-of-day component of t, returning midnight UTC
// on the same calendar date.
func TruncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func cloneActivities(in []Activity) []Activity {
	if in == nil {
		return nil
	}
	out := make([]Activity, len(in))
	copy(out, in)
	return out
}
