// Package handler implements the HTTP handlers for the trip planner API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, trip.go, share.go, etc.) but share the same Server struct
// so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/wayfarer/trip-planner/internal/domain"
	"github.com/wayfarer/trip-planner/internal/validation"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the service or repo layers.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	GenerateItinerary(ctx context.Context, id uuid.UUID, activities []domain.Activity) (domain.Itinerary, error)
	UpdateItinerary(ctx context.Context, id uuid.UUID, it domain.Itinerary) (domain.Itinerary, error)
	MoveActivity(ctx context.Context, id uuid.UUID, fromDay, fromIndex, toDay int, toIndex *int) (domain.Itinerary, error)
	RemoveActivity(ctx context.Context, id uuid.UUID, day, index int) (domain.Itinerary, error)
}

// ShareServicer defines the share operations the share handlers depend on.
type ShareServicer interface {
	Create(ctx context.Context, tripID uuid.UUID) (domain.SharedItinerary, error)
	GetByID(ctx context.Context, id string) (domain.SharedItinerary, error)
}

// Catalog is the read-only activity catalog.
type Catalog interface {
	Regions() []string
	Activities(region string) []domain.Activity
}

// Server holds the dependencies of every API handler.
type Server struct {
	trips        TripServicer
	shares       ShareServicer
	catalog      Catalog
	validate     *validation.Validator
	shareBaseURL string
	log          *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// shareBaseURL is prefixed to "/share/{id}" in share links.
// A nil logger falls back to slog.Default().
func NewServer(trips TripServicer, shares ShareServicer, catalog Catalog, shareBaseURL string, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		trips:        trips,
		shares:       shares,
		catalog:      catalog,
		validate:     validation.New(),
		shareBaseURL: shareBaseURL,
		log:          log,
	}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, "", nil)
}

// Routes returns the API router. Cross-cutting middleware (request id,
// logging, CORS, body limits) is applied by the caller.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/api", func(r chi.Router) {
		r.Get("/states", s.ListRegions)
		r.Get("/locations/{region}", s.ListActivities)

		r.Post("/trips", s.CreateTrip)
		r.Route("/trips/{tripId}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Post("/generate-itinerary", s.GenerateItinerary)
			r.Put("/itinerary", s.UpdateItinerary)
			r.Post("/itinerary/move", s.MoveActivity)
			r.Delete("/itinerary/days/{day}/activities/{index}", s.RemoveActivity)
			r.Post("/share", s.CreateShare)
		})

		r.Get("/shared/{shareId}", s.GetShare)
	})
	return r
}
