package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CreateShare handles POST /api/trips/{tripId}/share.
// Each call publishes a new immutable snapshot of the trip's itinerary.
func (s *Server) CreateShare(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r, msgTripOrItineraryAbsent)
	if !ok {
		return
	}

	share, err := s.shares.Create(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err, msgTripOrItineraryAbsent, "Failed to create share link")
		return
	}

	writeJSON(w, http.StatusOK, createShareResponse{
		ShareID:  share.ID,
		ShareURL: s.shareBaseURL + "/share/" + share.ID,
	})
}

// GetShare handles GET /api/shared/{shareId}.
func (s *Server) GetShare(w http.ResponseWriter, r *http.Request) {
	share, err := s.shares.GetByID(r.Context(), chi.URLParam(r, "shareId"))
	if err != nil {
		s.writeServiceError(w, r, err, "Shared itinerary not found", "Failed to fetch shared itinerary")
		return
	}

	writeJSON(w, http.StatusOK, shareToResponse(share))
}
