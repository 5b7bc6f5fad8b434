package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/filmbase/internal/config"
	"github.com/user/filmbase/internal/model"
)

// stubMovieFinder 目录查询桩
type stubMovieFinder struct {
	movies map[int]*model.Movie
}

func (s *stubMovieFinder) FindByID(id int) (*model.Movie, error) {
	return s.movies[id], nil
}

func newFakeProvider(t *testing.T, searches, details *atomic.Int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		switch r.URL.Path {
		case "/search/movie":
			searches.Add(1)
			w.Write([]byte(`{"results":[{
				"id": 27205,
				"title": "Inception",
				"overview": "A thief who steals corporate secrets",
				"poster_path": "/poster.jpg",
				"release_date": "2010-07-15",
				"vote_average": 8.4
			}]}`))
		case "/movie/27205":
			details.Add(1)
			w.Write([]byte(`{"runtime": 148}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func newTestService(baseURL string) *MetadataService {
	finder := &stubMovieFinder{movies: map[int]*model.Movie{
		7: {ID: 7, Title: "Inception", ReleaseYear: 2010},
	}}
	return NewMetadataService(finder, &config.Config{
		MetadataBaseURL: baseURL,
		MetadataToken:   "test-token",
	})
}

func TestForMovie(t *testing.T) {
	var searches, details atomic.Int64
	server := newFakeProvider(t, &searches, &details)
	defer server.Close()

	svc := newTestService(server.URL)

	meta, err := svc.ForMovie(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, "Inception", meta.Title)
	assert.Equal(t, "A thief who steals corporate secrets", meta.Overview)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/poster.jpg", meta.PosterURL)
	assert.Equal(t, "2010-07-15", meta.ReleaseDate)
	assert.Equal(t, 148, meta.Runtime)
	assert.Equal(t, 8.4, meta.Rating)
}

func TestForMovieCachesLookups(t *testing.T) {
	var searches, details atomic.Int64
	server := newFakeProvider(t, &searches, &details)
	defer server.Close()

	svc := newTestService(server.URL)

	for i := 0; i < 3; i++ {
		_, err := svc.ForMovie(context.Background(), 7)
		require.NoError(t, err)
	}

	// 搜索与详情都走缓存，只打一次外部请求
	assert.Equal(t, int64(1), searches.Load())
	assert.Equal(t, int64(1), details.Load())
}

func TestForMovieUnknownID(t *testing.T) {
	svc := newTestService("http://127.0.0.1:0")

	_, err := svc.ForMovie(context.Background(), 99)

	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestForMovieProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := newTestService(server.URL)

	_, err := svc.ForMovie(context.Background(), 7)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "metadata provider returned status 500")
}

func TestForMovieNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	svc := newTestService(server.URL)

	_, err := svc.ForMovie(context.Background(), 7)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no metadata found")
}
