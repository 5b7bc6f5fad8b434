package repository

import (
	"errors"

	"github.com/user/filmbase/internal/model"
	"gorm.io/gorm"
)

type WatchlistRepository struct {
	db *gorm.DB
}

func NewWatchlistRepository(db *gorm.DB) *WatchlistRepository {
	return &WatchlistRepository{db: db}
}

// Create 创建片单
func (r *WatchlistRepository) Create(userID int, name string) (*model.Watchlist, error) {
	watchlist := &model.Watchlist{
		Name:   name,
		UserID: userID,
	}

	if err := r.db.Create(watchlist).Error; err != nil {
		return nil, err
	}

	return watchlist, nil
}

// ListByUser 查询用户的全部片单
func (r *WatchlistRepository) ListByUser(userID int) ([]model.Watchlist, error) {
	watchlists := []model.Watchlist{}
	err := r.db.Where("user_id = ?", userID).Order("id").Find(&watchlists).Error
	return watchlists, err
}

// FindOwned 按 (片单, 用户) 直接查询，归属不符或不存在都返回 nil
func (r *WatchlistRepository) FindOwned(watchlistID, userID int) (*model.Watchlist, error) {
	var watchlist model.Watchlist
	err := r.db.Where("id = ? AND user_id = ?", watchlistID, userID).First(&watchlist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &watchlist, nil
}

// AddMovie 插入关联后在同一事务内重读片单快照
func (r *WatchlistRepository) AddMovie(watchlistID, movieID int) (*model.WatchlistSnapshot, error) {
	var snapshot model.WatchlistSnapshot

	err := r.db.Transaction(func(tx *gorm.DB) error {
		entry := &model.WatchlistMovie{WatchlistID: watchlistID, MovieID: movieID}
		if err := tx.Create(entry).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicate
			}
			return err
		}

		var watchlist model.Watchlist
		if err := tx.First(&watchlist, watchlistID).Error; err != nil {
			return err
		}

		movies := []model.Movie{}
		if err := tx.Raw(`
			SELECT m.id, m.title, m.genre, m.director, m.release_year, m.language
			FROM watchlist_movies wm
			JOIN movies m ON wm.movie_id = m.id
			WHERE wm.watchlist_id = ?
			ORDER BY m.id
		`, watchlistID).Scan(&movies).Error; err != nil {
			return err
		}

		snapshot = model.WatchlistSnapshot{
			ID:     watchlist.ID,
			Name:   watchlist.Name,
			Movies: movies,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &snapshot, nil
}

// RemoveMovie 删除片单中的电影，未匹配到行返回 false
func (r *WatchlistRepository) RemoveMovie(watchlistID, movieID int) (bool, error) {
	tx := r.db.Where("watchlist_id = ? AND movie_id = ?", watchlistID, movieID).
		Delete(&model.WatchlistMovie{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
