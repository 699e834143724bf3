package handler

import (
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/wayfarer/trip-planner/internal/domain"
)

// --- request bodies ---------------------------------------------------------

type activityBody struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Duration    float64 `json:"duration" validate:"gt=0,lte=24"`
	BestTime    string  `json:"bestTime"`
}

type createTripRequest struct {
	Destination        string              `json:"destination" validate:"required"`
	StartDate          *openapi_types.Date `json:"startDate" validate:"required"`
	EndDate            *openapi_types.Date `json:"endDate" validate:"required"`
	SelectedActivities []activityBody      `json:"selectedActivities" validate:"required,dive"`
}

type generateItineraryRequest struct {
	SelectedActivities []activityBody `json:"selectedActivities" validate:"omitempty,dive"`
}

type moveActivityRequest struct {
	FromDay   *int `json:"fromDay" validate:"required,gte=0"`
	FromIndex *int `json:"fromIndex" validate:"required,gte=0"`
	ToDay     *int `json:"toDay" validate:"required,gte=0"`
	ToIndex   *int `json:"toIndex,omitempty" validate:"omitempty,gte=0"`
}

// --- response bodies --------------------------------------------------------

type tripResponse struct {
	ID                 uuid.UUID          `json:"id"`
	Destination        string             `json:"destination"`
	StartDate          openapi_types.Date `json:"startDate"`
	EndDate            openapi_types.Date `json:"endDate"`
	SelectedActivities []domain.Activity  `json:"selectedActivities"`
	Itinerary          *domain.Itinerary  `json:"itinerary,omitempty"`
	CreatedAt          time.Time          `json:"createdAt"`
}

type createTripResponse struct {
	TripID uuid.UUID    `json:"tripId"`
	Trip   tripResponse `json:"trip"`
}

type itineraryResponse struct {
	Itinerary domain.Itinerary `json:"itinerary"`
}

type editResponse struct {
	Success   bool              `json:"success"`
	Itinerary *domain.Itinerary `json:"itinerary"`
}

type createShareResponse struct {
	ShareID  string `json:"shareId"`
	ShareURL string `json:"shareUrl"`
}

type sharedItineraryResponse struct {
	ID          string             `json:"id"`
	TripID      uuid.UUID          `json:"tripId"`
	Destination string             `json:"destination"`
	StartDate   openapi_types.Date `json:"startDate"`
	EndDate     openapi_types.Date `json:"endDate"`
	Itinerary   domain.Itinerary   `json:"itinerary"`
	SharedAt    time.Time          `json:"sharedAt"`
}

// --- mapping helpers --------------------------------------------------------

// toActivities converts request activities into domain activities.
// A nil input stays nil so callers can tell "absent" from "empty".
func toActivities(in []activityBody) []domain.Activity {
	if in == nil {
		return nil
	}
	out := make([]domain.Activity, len(in))
	for i, a := range in {
		out[i] = domain.Activity(a)
	}
	return out
}

// tripToResponse converts a domain.Trip into its wire shape.
func tripToResponse(t domain.Trip) tripResponse {
	resp := tripResponse{
		ID:                 t.ID,
		Destination:        t.Destination,
		StartDate:          openapi_types.Date{Time: t.StartDate},
		EndDate:            openapi_types.Date{Time: t.EndDate},
		SelectedActivities: t.SelectedActivities,
		CreatedAt:          t.CreatedAt,
	}
	if resp.SelectedActivities == nil {
		resp.SelectedActivities = []domain.Activity{}
	}
	if t.HasItinerary() {
		it := t.Itinerary
		resp.Itinerary = &it
	}
	return resp
}

func shareToResponse(s domain.SharedItinerary) sharedItineraryResponse {
	it := s.Itinerary
	if it == nil {
		it = domain.Itinerary{}
	}
	return sharedItineraryResponse{
		ID:          s.ID,
		TripID:      s.TripID,
		Destination: s.Destination,
		StartDate:   openapi_types.Date{Time: s.StartDate},
		EndDate:     openapi_types.Date{Time: s.EndDate},
		Itinerary:   it,
		SharedAt:    s.SharedAt,
	}
}

// nonNil turns a nil itinerary into an empty one so it encodes as [].
func nonNil(it domain.Itinerary) domain.Itinerary {
	if it == nil {
		return domain.Itinerary{}
	}
	return it
}
