package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/user/filmbase/internal/config"
	"github.com/user/filmbase/internal/middleware"
	"github.com/user/filmbase/internal/model"
	"github.com/user/filmbase/internal/repository"
	"github.com/user/filmbase/internal/service"
)

const testSecret = "test-secret"

// MockMovieStore 实现 MovieStore
type MockMovieStore struct {
	mock.Mock
}

func (m *MockMovieStore) Create(movie *model.Movie) error {
	args := m.Called(movie)
	return args.Error(0)
}

func (m *MockMovieStore) List(p repository.ListParams) ([]model.Movie, int64, error) {
	args := m.Called(p)
	return args.Get(0).([]model.Movie), args.Get(1).(int64), args.Error(2)
}

func (m *MockMovieStore) FindByID(id int) (*model.Movie, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Movie), args.Error(1)
}

func (m *MockMovieStore) Update(id int, updates map[string]interface{}) (*model.Movie, error) {
	args := m.Called(id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Movie), args.Error(1)
}

func (m *MockMovieStore) Delete(id int) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockMovieStore) ByWatchlist(watchlistID int) ([]model.Movie, error) {
	args := m.Called(watchlistID)
	return args.Get(0).([]model.Movie), args.Error(1)
}

// MockUserStore 实现 UserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(username, email, password string) (*model.User, error) {
	args := m.Called(username, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserStore) FindByEmail(email string) (*model.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserStore) FindByID(id int) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserStore) CheckPassword(user *model.User, password string) bool {
	args := m.Called(user, password)
	return args.Bool(0)
}

func (m *MockUserStore) Update(id int, updates map[string]interface{}) (*model.User, error) {
	args := m.Called(id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserStore) HashPassword(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockUserStore) Delete(id int) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

// MockReviewStore 实现 ReviewStore
type MockReviewStore struct {
	mock.Mock
}

func (m *MockReviewStore) Create(userID, movieID, rating int, comment string) (*model.Review, error) {
	args := m.Called(userID, movieID, rating, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Review), args.Error(1)
}

func (m *MockReviewStore) ListByMovie(movieID int) ([]model.Review, error) {
	args := m.Called(movieID)
	return args.Get(0).([]model.Review), args.Error(1)
}

func (m *MockReviewStore) Delete(reviewID, userID, movieID int) (bool, error) {
	args := m.Called(reviewID, userID, movieID)
	return args.Bool(0), args.Error(1)
}

// MockWatchlistStore 实现 WatchlistStore
type MockWatchlistStore struct {
	mock.Mock
}

func (m *MockWatchlistStore) Create(userID int, name string) (*model.Watchlist, error) {
	args := m.Called(userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Watchlist), args.Error(1)
}

func (m *MockWatchlistStore) ListByUser(userID int) ([]model.Watchlist, error) {
	args := m.Called(userID)
	return args.Get(0).([]model.Watchlist), args.Error(1)
}

func (m *MockWatchlistStore) FindOwned(watchlistID, userID int) (*model.Watchlist, error) {
	args := m.Called(watchlistID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Watchlist), args.Error(1)
}

func (m *MockWatchlistStore) AddMovie(watchlistID, movieID int) (*model.WatchlistSnapshot, error) {
	args := m.Called(watchlistID, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WatchlistSnapshot), args.Error(1)
}

func (m *MockWatchlistStore) RemoveMovie(watchlistID, movieID int) (bool, error) {
	args := m.Called(watchlistID, movieID)
	return args.Bool(0), args.Error(1)
}

// MockActorStore 实现 ActorStore
type MockActorStore struct {
	mock.Mock
}

func (m *MockActorStore) ListAll() ([]model.Actor, error) {
	args := m.Called()
	return args.Get(0).([]model.Actor), args.Error(1)
}

func (m *MockActorStore) FindByID(id int) (*model.Actor, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Actor), args.Error(1)
}

func (m *MockActorStore) ByMovie(movieID int) ([]model.Actor, error) {
	args := m.Called(movieID)
	return args.Get(0).([]model.Actor), args.Error(1)
}

// MockAwardStore 实现 AwardStore
type MockAwardStore struct {
	mock.Mock
}

func (m *MockAwardStore) ByMovie(movieID int) ([]model.Award, error) {
	args := m.Called(movieID)
	return args.Get(0).([]model.Award), args.Error(1)
}

// MockMetadataProvider 实现 MetadataProvider
type MockMetadataProvider struct {
	mock.Mock
}

func (m *MockMetadataProvider) ForMovie(ctx context.Context, movieID int) (*service.Metadata, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Metadata), args.Error(1)
}

// testHandler 组装带全部 mock 的 Handler
type testHandler struct {
	handler    *Handler
	movies     *MockMovieStore
	users      *MockUserStore
	reviews    *MockReviewStore
	watchlists *MockWatchlistStore
	actors     *MockActorStore
	awards     *MockAwardStore
	metadata   *MockMetadataProvider
}

func newTestHandler() *testHandler {
	gin.SetMode(gin.TestMode)
	registerValidations()

	th := &testHandler{
		movies:     new(MockMovieStore),
		users:      new(MockUserStore),
		reviews:    new(MockReviewStore),
		watchlists: new(MockWatchlistStore),
		actors:     new(MockActorStore),
		awards:     new(MockAwardStore),
		metadata:   new(MockMetadataProvider),
	}
	th.handler = &Handler{
		Movies:     th.movies,
		Users:      th.users,
		Reviews:    th.reviews,
		Watchlists: th.watchlists,
		Actors:     th.actors,
		Awards:     th.awards,
		Metadata:   th.metadata,
		Config: &config.Config{
			JWTSecret: testSecret,
			JWTExpiry: time.Hour,
		},
	}
	return th
}

// authToken 为测试签发一个有效的 Bearer Token
func authToken(userID int, email string) string {
	token, _ := middleware.GenerateToken(userID, email, testSecret, time.Hour)
	return token
}
