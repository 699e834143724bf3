package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfarer/trip-planner/internal/catalog"
	"github.com/wayfarer/trip-planner/internal/domain"
	"github.com/wayfarer/trip-planner/internal/handler"
)

func catalogHandler(t *testing.T) http.Handler {
	t.Helper()
	c, err := catalog.New(map[string][]domain.Activity{
		"New York": {{ID: "ny-1", Name: "New York City", Category: "sightseeing", Duration: 4}},
		"Colorado": {{ID: "co-1", Name: "Denver", Category: "culture", Duration: 3}},
	})
	require.NoError(t, err)
	return handler.NewServer(nil, nil, c, "", nil).Routes()
}

func TestListRegions_200(t *testing.T) {
	rec := serve(catalogHandler(t), http.MethodGet, "/api/states", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["Colorado","New York"]`, rec.Body.String())
}

func TestListActivities_200(t *testing.T) {
	rec := serve(catalogHandler(t), http.MethodGet, "/api/locations/New%20York", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []domain.Activity
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "ny-1", got[0].ID)
}

func TestListActivities_SlugLookup(t *testing.T) {
	rec := serve(catalogHandler(t), http.MethodGet, "/api/locations/new-york", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ny-1"`)
}

func TestListActivities_UnknownRegionIsEmpty(t *testing.T) {
	rec := serve(catalogHandler(t), http.MethodGet, "/api/locations/Atlantis", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
