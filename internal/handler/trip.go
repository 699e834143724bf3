package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/wayfarer/trip-planner/internal/domain"
)

const (
	msgTripNotFound          = "Trip not found"
	msgTripOrItineraryAbsent = "Trip or itinerary not found"
)

// CreateTrip handles POST /api/trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var body createTripRequest
	if !decodeJSON(w, r, &body, false) {
		return
	}
	if err := s.validate.Validate(body); err != nil {
		writeError(w, http.StatusBadRequest, unwrapMessage(err))
		return
	}

	created, err := s.trips.Create(r.Context(), domain.Trip{
		Destination:        body.Destination,
		StartDate:          body.StartDate.Time,
		EndDate:            body.EndDate.Time,
		SelectedActivities: toActivities(body.SelectedActivities),
	})
	if err != nil {
		s.writeServiceError(w, r, err, msgTripNotFound, "Failed to create trip")
		return
	}

	writeJSON(w, http.StatusCreated, createTripResponse{TripID: created.ID, Trip: tripToResponse(created)})
}

// GetTrip handles GET /api/trips/{tripId}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r, msgTripNotFound)
	if !ok {
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err, msgTripNotFound, "Failed to fetch trip")
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// GenerateItinerary handles POST /api/trips/{tripId}/generate-itinerary.
// The body is optional; a selectedActivities list, when given, replaces the
// trip's selection before generating.
func (s *Server) GenerateItinerary(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r, msgTripNotFound)
	if !ok {
		return
	}
	var body generateItineraryRequest
	if !decodeJSON(w, r, &body, true) {
		return
	}
	if err := s.validate.Validate(body); err != nil {
		writeError(w, http.StatusBadRequest, unwrapMessage(err))
		return
	}

	it, err := s.trips.GenerateItinerary(r.Context(), id, toActivities(body.SelectedActivities))
	if err != nil {
		s.writeServiceError(w, r, err, msgTripNotFound, "Failed to generate itinerary")
		return
	}

	writeJSON(w, http.StatusOK, itineraryResponse{Itinerary: nonNil(it)})
}

// UpdateItinerary handles PUT /api/trips/{tripId}/itinerary.
// The itinerary key is required; an explicit null clears the itinerary.
func (s *Server) UpdateItinerary(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r, msgTripNotFound)
	if !ok {
		return
	}
	var body struct {
		Itinerary json.RawMessage `json:"itinerary"`
	}
	if !decodeJSON(w, r, &body, false) {
		return
	}
	if len(body.Itinerary) == 0 {
		writeError(w, http.StatusBadRequest, "missing required fields: itinerary")
		return
	}
	var it domain.Itinerary
	if err := json.Unmarshal(body.Itinerary, &it); err != nil {
		writeError(w, http.StatusBadRequest, "invalid itinerary: "+err.Error())
		return
	}

	saved, err := s.trips.UpdateItinerary(r.Context(), id, it)
	if err != nil {
		s.writeServiceError(w, r, err, msgTripNotFound, "Failed to update itinerary")
		return
	}

	writeEdit(w, saved)
}

// MoveActivity handles POST /api/trips/{tripId}/itinerary/move.
// Days and indexes are 0-based positions in the stored itinerary.
func (s *Server) MoveActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r, msgTripOrItineraryAbsent)
	if !ok {
		return
	}
	var body moveActivityRequest
	if !decodeJSON(w, r, &body, false) {
		return
	}
	if err := s.validate.Validate(body); err != nil {
		writeError(w, http.StatusBadRequest, unwrapMessage(err))
		return
	}

	it, err := s.trips.MoveActivity(r.Context(), id, *body.FromDay, *body.FromIndex, *body.ToDay, body.ToIndex)
	if err != nil {
		s.writeServiceError(w, r, err, msgTripOrItineraryAbsent, "Failed to move activity")
		return
	}

	writeEdit(w, it)
}

// RemoveActivity handles DELETE /api/trips/{tripId}/itinerary/days/{day}/activities/{index}.
func (s *Server) RemoveActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r, msgTripOrItineraryAbsent)
	if !ok {
		return
	}
	day, err := strconv.Atoi(chi.URLParam(r, "day"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "day must be an integer")
		return
	}
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "index must be an integer")
		return
	}

	it, err := s.trips.RemoveActivity(r.Context(), id, day, index)
	if err != nil {
		s.writeServiceError(w, r, err, msgTripOrItineraryAbsent, "Failed to remove activity")
		return
	}

	writeEdit(w, it)
}

// --- helpers ----------------------------------------------------------------

// tripID parses the {tripId} path parameter. A value that is not a UUID
// cannot name a stored trip, so it is answered with 404 and notFoundMsg.
func tripID(w http.ResponseWriter, r *http.Request, notFoundMsg string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "tripId"))
	if err != nil {
		writeError(w, http.StatusNotFound, notFoundMsg)
		return uuid.Nil, false
	}
	return id, true
}

func writeEdit(w http.ResponseWriter, it domain.Itinerary) {
	resp := editResponse{Success: true}
	if it != nil {
		resp.Itinerary = &it
	}
	writeJSON(w, http.StatusOK, resp)
}
