package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wayfarer/trip-planner/internal/domain"
	"github.com/wayfarer/trip-planner/internal/repo"
)

// ShareService publishes read-only snapshots of trip itineraries.
// It holds the trips repo because a share is built from the current state
// of a trip.
type ShareService struct {
	trips  repo.TripRepo
	shares repo.ShareRepo
	log    *slog.Logger
}

// NewShareService constructs a ShareService backed by the provided repos.
// A nil logger falls back to slog.Default().
func NewShareService(trips repo.TripRepo, shares repo.ShareRepo, log *slog.Logger) *ShareService {
	if log == nil {
		log = slog.Default()
	}
	return &ShareService{trips: trips, shares: shares, log: log}
}

// Create snapshots the trip's destination, dates and itinerary under a new
// share id. Every call creates an independent snapshot.
// Returns domain.ErrNotFound if the trip does not exist and
// domain.ErrNoItinerary (which also matches ErrNotFound) if it has no
// itinerary yet.
func (s *ShareService) Create(ctx context.Context, tripID uuid.UUID) (domain.SharedItinerary, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.SharedItinerary{}, fmt.Errorf("service.ShareService.Create: %w", err)
	}
	if !trip.HasItinerary() {
		return domain.SharedItinerary{}, fmt.Errorf("service.ShareService.Create: %w", domain.ErrNoItinerary)
	}

	share, err := s.shares.Create(ctx, domain.SharedItinerary{
		TripID:      trip.ID,
		Destination: trip.Destination,
		StartDate:   trip.StartDate,
		EndDate:     trip.EndDate,
		Itinerary:   trip.Itinerary,
	})
	if err != nil {
		return domain.SharedItinerary{}, fmt.Errorf("service.ShareService.Create: %w", err)
	}

	s.log.InfoContext(ctx, "itinerary shared", "trip_id", trip.ID, "share_id", share.ID)
	return share, nil
}

// GetByID returns a share by its id.
// Returns domain.ErrNotFound if the share does not exist.
func (s *ShareService) GetByID(ctx context.Context, id string) (domain.SharedItinerary, error) {
	share, err := s.shares.GetByID(ctx, id)
	if err != nil {
		return domain.SharedItinerary{}, fmt.Errorf("service.ShareService.GetByID: %w", err)
	}
	return share, nil
}
