// Package service contains the business logic of the trip planner.
// Services validate inputs, enforce business rules, and orchestrate repo
// calls. No storage details live here: services depend on repo interfaces,
// not implementations.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/wayfarer/trip-planner/internal/domain"
	"github.com/wayfarer/trip-planner/internal/itinerary"
	"github.com/wayfarer/trip-planner/internal/repo"
)

// TripService implements business logic for Trip operations.
type TripService struct {
	repo repo.TripRepo
	log  *slog.Logger
}

// NewTripService constructs a TripService backed by the provided TripRepo.
// A nil logger falls back to slog.Default().
func NewTripService(r repo.TripRepo, log *slog.Logger) *TripService {
	if log == nil {
		log = slog.Default()
	}
	return &TripService{repo: r, log: log}
}

// Create validates and stores a new trip. The trip starts without an
// itinerary.
// Returns domain.ErrValidation if input violates business rules.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}

	trip.Destination = strings.TrimSpace(trip.Destination)
	trip.StartDate = domain.TruncateDate(trip.StartDate)
	trip.EndDate = domain.TruncateDate(trip.EndDate)
	trip.Itinerary = nil

	created, err := s.repo.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}

	s.log.InfoContext(ctx, "trip created",
		"trip_id", created.ID,
		"destination", created.Destination,
		"days", domain.DaySpan(created.StartDate, created.EndDate),
	)
	return created, nil
}

// GetByID returns a single trip by ID.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	trip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return trip, nil
}

// GenerateItinerary builds a fresh itinerary for the trip and stores it,
// replacing any previous one.
//
// A non-nil activities slice first replaces the trip's selection (an empty
// slice clears it). A nil slice keeps the selection already stored.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) GenerateItinerary(ctx context.Context, id uuid.UUID, activities []domain.Activity) (domain.Itinerary, error) {
	if activities != nil {
		if err := validateActivities(activities); err != nil {
			return nil, fmt.Errorf("service.TripService.GenerateItinerary: %w", err)
		}
		if err := s.repo.SetSelectedActivities(ctx, id, activities); err != nil {
			return nil, fmt.Errorf("service.TripService.GenerateItinerary: %w", err)
		}
	}

	trip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.GenerateItinerary: %w", err)
	}

	it := itinerary.Generate(trip.StartDate, trip.EndDate, trip.SelectedActivities)
	if err := s.repo.SetItinerary(ctx, id, it); err != nil {
		return nil, fmt.Errorf("service.TripService.GenerateItinerary: %w", err)
	}

	s.log.InfoContext(ctx, "itinerary generated",
		"trip_id", id,
		"activities", len(trip.SelectedActivities),
		"days", len(it),
	)
	return it, nil
}

// UpdateItinerary overwrites the trip's itinerary with a client-edited one.
// No check is made that the new itinerary matches the trip's selection.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) UpdateItinerary(ctx context.Context, id uuid.UUID, it domain.Itinerary) (domain.Itinerary, error) {
	if err := s.repo.SetItinerary(ctx, id, it); err != nil {
		return nil, fmt.Errorf("service.TripService.UpdateItinerary: %w", err)
	}
	return it, nil
}

// MoveActivity applies itinerary.Move to the stored itinerary and saves the
// result. Days and indexes are 0-based.
// Returns domain.ErrNotFound if the trip does not exist,
// domain.ErrNoItinerary if it has no itinerary yet, and domain.ErrValidation
// for out-of-range positions.
func (s *TripService) MoveActivity(ctx context.Context, id uuid.UUID, fromDay, fromIndex, toDay int, toIndex *int) (domain.Itinerary, error) {
	return s.edit(ctx, id, "MoveActivity", func(it domain.Itinerary) (domain.Itinerary, error) {
		return itinerary.Move(it, fromDay, fromIndex, toDay, toIndex)
	})
}

// RemoveActivity applies itinerary.Remove to the stored itinerary and saves
// the result. Day and index are 0-based.
// Errors as for MoveActivity.
func (s *TripService) RemoveActivity(ctx context.Context, id uuid.UUID, day, index int) (domain.Itinerary, error) {
	return s.edit(ctx, id, "RemoveActivity", func(it domain.Itinerary) (domain.Itinerary, error) {
		return itinerary.Remove(it, day, index)
	})
}

// edit loads the stored itinerary, applies fn and saves the result.
// Concurrent edits of the same trip are not reconciled: last write wins.
func (s *TripService) edit(ctx context.Context, id uuid.UUID, op string, fn func(domain.Itinerary) (domain.Itinerary, error)) (domain.Itinerary, error) {
	trip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.%s: %w", op, err)
	}
	if !trip.HasItinerary() {
		return nil, fmt.Errorf("service.TripService.%s: %w", op, domain.ErrNoItinerary)
	}

	edited, err := fn(trip.Itinerary)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.%s: %w", op, err)
	}
	if err := s.repo.SetItinerary(ctx, id, edited); err != nil {
		return nil, fmt.Errorf("service.TripService.%s: %w", op, err)
	}
	return edited, nil
}

// validateTrip enforces business rules for a new trip.
//   - Destination must be non-empty (whitespace-only is rejected).
//   - Start and end dates must be set, end must not be before start, and the
//     trip may span at most domain.MaxTripDays days.
//   - SelectedActivities must be present (it may be empty).
func validateTrip(trip domain.Trip) error {
	var missing []string
	if strings.TrimSpace(trip.Destination) == "" {
		missing = append(missing, "destination")
	}
	if trip.StartDate.IsZero() {
		missing = append(missing, "startDate")
	}
	if trip.EndDate.IsZero() {
		missing = append(missing, "endDate")
	}
	if trip.SelectedActivities == nil {
		missing = append(missing, "selectedActivities")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s", domain.ErrValidation, strings.Join(missing, ", "))
	}

	days := domain.DaySpan(trip.StartDate, trip.EndDate)
	if days < 1 {
		return fmt.Errorf("%w: endDate must not be before startDate", domain.ErrValidation)
	}
	if days > domain.MaxTripDays {
		return fmt.Errorf("%w: trip spans %d days, the maximum is %d", domain.ErrValidation, days, domain.MaxTripDays)
	}
	return validateActivities(trip.SelectedActivities)
}

// validateActivities requires every duration to lie in
// (0, domain.MaxActivityHours], which keeps clock times representable.
func validateActivities(activities []domain.Activity) error {
	for i, a := range activities {
		if !(a.Duration > 0) || a.Duration > domain.MaxActivityHours {
			return fmt.Errorf("%w: selectedActivities[%d]: duration must be more than 0 and at most %g hours",
				domain.ErrValidation, i, domain.MaxActivityHours)
		}
	}
	return nil
}
