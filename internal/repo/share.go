package repo

import (
	"context"
	"fmt"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/wayfarer/trip-planner/internal/domain"
)

// ShareRepo defines the persistence operations for shared itineraries.
// Shares are write-once: there is no update or delete.
type ShareRepo interface {
	// Create stores a snapshot and returns it with a fresh URL-safe id and
	// shared_at populated. Any id on the input is ignored.
	Create(ctx context.Context, share domain.SharedItinerary) (domain.SharedItinerary, error)

	// GetByID retrieves a share by its id.
	// Returns domain.ErrNotFound if no share with that id exists.
	GetByID(ctx context.Context, id string) (domain.SharedItinerary, error)
}

// memShareRepo is the in-memory implementation of ShareRepo.
type memShareRepo struct {
	mu     sync.RWMutex
	shares map[string]domain.SharedItinerary
	newID  func() (string, error)
	now    func() time.Time
}

// NewShareRepo constructs an empty in-memory ShareRepo.
// Share ids are 21-character NanoIDs, short enough for a public link.
func NewShareRepo() ShareRepo {
	return &memShareRepo{
		shares: make(map[string]domain.SharedItinerary),
		newID:  func() (string, error) { return gonanoid.New() },
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Create stores a deep copy of share under a new id.
func (r *memShareRepo) Create(_ context.Context, share domain.SharedItinerary) (domain.SharedItinerary, error) {
	id, err := r.newID()
	if err != nil {
		return domain.SharedItinerary{}, fmt.Errorf("repo.ShareRepo.Create: generate id: %w: %w", domain.ErrInternal, err)
	}

	stored := share.Clone()
	stored.ID = id
	stored.SharedAt = r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.shares[id]; taken {
		return domain.SharedItinerary{}, fmt.Errorf("repo.ShareRepo.Create: id collision: %w", domain.ErrInternal)
	}
	r.shares[id] = stored

	return stored.Clone(), nil
}

// GetByID returns a copy of the stored share.
func (r *memShareRepo) GetByID(_ context.Context, id string) (domain.SharedItinerary, error) {
	r.mu.RLock()
	s, ok := r.shares[id]
	r.mu.RUnlock()

	if !ok {
		return domain.SharedItinerary{}, fmt.Errorf("repo.ShareRepo.GetByID: %w", domain.ErrNotFound)
	}
	return s.Clone(), nil
}
