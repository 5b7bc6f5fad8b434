package handler

import (
	"context"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/user/filmbase/internal/config"
	"github.com/user/filmbase/internal/model"
	"github.com/user/filmbase/internal/repository"
	"github.com/user/filmbase/internal/service"
)

// MovieStore 电影数据访问接口
type MovieStore interface {
	Create(movie *model.Movie) error
	List(p repository.ListParams) ([]model.Movie, int64, error)
	FindByID(id int) (*model.Movie, error)
	Update(id int, updates map[string]interface{}) (*model.Movie, error)
	Delete(id int) (bool, error)
	ByWatchlist(watchlistID int) ([]model.Movie, error)
}

// UserStore 用户数据访问接口
type UserStore interface {
	Create(username, email, password string) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	FindByID(id int) (*model.User, error)
	CheckPassword(user *model.User, password string) bool
	Update(id int, updates map[string]interface{}) (*model.User, error)
	HashPassword(password string) (string, error)
	Delete(id int) (bool, error)
}

// ReviewStore 影评数据访问接口
type ReviewStore interface {
	Create(userID, movieID, rating int, comment string) (*model.Review, error)
	ListByMovie(movieID int) ([]model.Review, error)
	Delete(reviewID, userID, movieID int) (bool, error)
}

// WatchlistStore 片单数据访问接口
type WatchlistStore interface {
	Create(userID int, name string) (*model.Watchlist, error)
	ListByUser(userID int) ([]model.Watchlist, error)
	FindOwned(watchlistID, userID int) (*model.Watchlist, error)
	AddMovie(watchlistID, movieID int) (*model.WatchlistSnapshot, error)
	RemoveMovie(watchlistID, movieID int) (bool, error)
}

// ActorStore 演员数据访问接口
type ActorStore interface {
	ListAll() ([]model.Actor, error)
	FindByID(id int) (*model.Actor, error)
	ByMovie(movieID int) ([]model.Actor, error)
}

// AwardStore 奖项数据访问接口
type AwardStore interface {
	ByMovie(movieID int) ([]model.Award, error)
}

// MetadataProvider 外部元数据服务接口
type MetadataProvider interface {
	ForMovie(ctx context.Context, movieID int) (*service.Metadata, error)
}

// Handler HTTP 处理器
type Handler struct {
	Movies     MovieStore
	Users      UserStore
	Reviews    ReviewStore
	Watchlists WatchlistStore
	Actors     ActorStore
	Awards     AwardStore
	Metadata   MetadataProvider
	Config     *config.Config
}

// NewHandler 创建处理器并注册自定义校验规则
func NewHandler(repos *repository.Repositories, meta *service.MetadataService, cfg *config.Config) *Handler {
	registerValidations()

	return &Handler{
		Movies:     repos.Movie,
		Users:      repos.User,
		Reviews:    repos.Review,
		Watchlists: repos.Watchlist,
		Actors:     repos.Actor,
		Awards:     repos.Award,
		Metadata:   meta,
		Config:     cfg,
	}
}

// registerValidations 注册 releaseyear 校验：1888 年（最早的电影）到 2100 年
func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("releaseyear", func(fl validator.FieldLevel) bool {
			year := fl.Field().Int()
			return year >= 1888 && year <= 2100
		})
	}
}
