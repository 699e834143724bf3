// Package repo contains the storage layer of the trip planner.
// Each resource has its own file with an interface and an in-memory
// implementation. No business logic lives here, only keyed storage and
// copying.
//
// Stores live for the lifetime of the process. Every operation runs under
// the store's mutex and touches a single entry, and values are deep-copied
// on the way in and out so callers never share memory with stored records.
package repo

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wayfarer/trip-planner/internal/domain"
)

// TripRepo defines the persistence operations for Trips.
// The service layer depends on this interface, not the concrete
// implementation, which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// Create stores a new trip and returns the stored record with a fresh
	// id and created_at populated. Any id on the input is ignored.
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// SetSelectedActivities replaces the trip's selected activities.
	// The stored itinerary is left as it is.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	SetSelectedActivities(ctx context.Context, id uuid.UUID, activities []domain.Activity) error

	// SetItinerary overwrites the stored itinerary unconditionally.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	SetItinerary(ctx context.Context, id uuid.UUID, it domain.Itinerary) error
}

// memTripRepo is the in-memory implementation of TripRepo.
type memTripRepo struct {
	mu    sync.RWMutex
	trips map[uuid.UUID]domain.Trip
	now   func() time.Time
}

// NewTripRepo constructs an empty in-memory TripRepo.
func NewTripRepo() TripRepo {
	return &memTripRepo{
		trips: make(map[uuid.UUID]domain.Trip),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Create assigns an id and creation time, then stores a copy of trip.
func (r *memTripRepo) Create(_ context.Context, trip domain.Trip) (domain.Trip, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w: %w", domain.ErrInternal, err)
	}

	stored := trip.Clone()
	stored.ID = id
	stored.CreatedAt = r.now()

	r.mu.Lock()
	r.trips[id] = stored
	r.mu.Unlock()

	return stored.Clone(), nil
}

// GetByID returns a copy of the stored trip.
func (r *memTripRepo) GetByID(_ context.Context, id uuid.UUID) (domain.Trip, error) {
	r.mu.RLock()
	t, ok := r.trips[id]
	r.mu.RUnlock()

	if !ok {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", domain.ErrNotFound)
	}
	return t.Clone(), nil
}

// SetSelectedActivities replaces the selection on the stored trip.
func (r *memTripRepo) SetSelectedActivities(_ context.Context, id uuid.UUID, activities []domain.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.trips[id]
	if !ok {
		return fmt.Errorf("repo.TripRepo.SetSelectedActivities: %w", domain.ErrNotFound)
	}
	t.SelectedActivities = slices.Clone(activities)
	r.trips[id] = t
	return nil
}

// SetItinerary overwrites the itinerary on the stored trip.
func (r *memTripRepo) SetItinerary(_ context.Context, id uuid.UUID, it domain.Itinerary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.trips[id]
	if !ok {
		return fmt.Errorf("repo.TripRepo.SetItinerary: %w", domain.ErrNotFound)
	}
	t.Itinerary = it.Clone()
	r.trips[id] = t
	return nil
}
