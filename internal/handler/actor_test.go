package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/filmbase/internal/model"
)

func TestListActors(t *testing.T) {
	th := newTestHandler()
	r := gin.New()
	r.GET("/actors", th.handler.ListActors)

	th.actors.On("ListAll").Return([]model.Actor{
		{ID: 1, Name: "Sigourney Weaver", Country: "USA"},
		{ID: 2, Name: "Toshiro Mifune", Country: "Japan"},
	}, nil)

	w := performRequest(r, http.MethodGet, "/actors", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var actors []model.Actor
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &actors))
	assert.Len(t, actors, 2)
}

func TestGetActorNotFound(t *testing.T) {
	th := newTestHandler()
	r := gin.New()
	r.GET("/actors/:id", th.handler.GetActor)

	th.actors.On("FindByID", 99).Return(nil, nil)

	w := performRequest(r, http.MethodGet, "/actors/99", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "actor not found", errorBody(t, w))
}

func TestGetMovieAwards(t *testing.T) {
	th := newTestHandler()
	r := gin.New()
	r.GET("/movies/:id/awards", th.handler.GetMovieAwards)

	th.awards.On("ByMovie", 7).Return([]model.Award{
		{ID: 1, Year: 1980, Name: "Academy Awards", Category: "Best Visual Effects"},
	}, nil)

	w := performRequest(r, http.MethodGet, "/movies/7/awards", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var awards []model.Award
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &awards))
	require.Len(t, awards, 1)
	assert.Equal(t, "Best Visual Effects", awards[0].Category)
}
