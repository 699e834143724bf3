package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ListRegions handles GET /api/states.
func (s *Server) ListRegions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.Regions())
}

// ListActivities handles GET /api/locations/{region}.
// An unknown region yields an empty list, not a 404.
func (s *Server) ListActivities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.Activities(chi.URLParam(r, "region")))
}
