package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/user/filmbase/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ErrDuplicate 唯一约束冲突（用户名/邮箱重复、片单重复加入同一电影等）
var ErrDuplicate = errors.New("duplicate value for unique field")

// InitDB 初始化数据库连接并建表
func InitDB(databaseURL string) (*gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("无法连接数据库: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库 ping 失败: %w", err)
	}

	// 设置连接池
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("gorm 初始化失败: %w", err)
	}

	if err := db.AutoMigrate(
		&model.Movie{},
		&model.User{},
		&model.Actor{},
		&model.Award{},
		&model.Review{},
		&model.Watchlist{},
		&model.WatchlistMovie{},
		&model.MovieCast{},
		&model.MovieAward{},
	); err != nil {
		return nil, fmt.Errorf("建表失败: %w", err)
	}

	return db, nil
}

// Repositories 仓库集合
type Repositories struct {
	DB        *gorm.DB
	Movie     *MovieRepository
	User      *UserRepository
	Review    *ReviewRepository
	Watchlist *WatchlistRepository
	Actor     *ActorRepository
	Award     *AwardRepository
}

// NewRepositories 创建仓库集合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		DB:        db,
		Movie:     NewMovieRepository(db),
		User:      NewUserRepository(db),
		Review:    NewReviewRepository(db),
		Watchlist: NewWatchlistRepository(db),
		Actor:     NewActorRepository(db),
		Award:     NewAwardRepository(db),
	}
}

// isUniqueViolation 判断是否为 PostgreSQL 唯一约束错误 (23505)
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
