package repository

import (
	"github.com/user/filmbase/internal/model"
	"gorm.io/gorm"
)

type AwardRepository struct {
	db *gorm.DB
}

func NewAwardRepository(db *gorm.DB) *AwardRepository {
	return &AwardRepository{db: db}
}

// ByMovie 通过关联表查询电影的获奖记录
func (r *AwardRepository) ByMovie(movieID int) ([]model.Award, error) {
	awards := []model.Award{}
	err := r.db.Raw(`
		SELECT a.id, a.year, a.name, a.category
		FROM movie_awards ma
		JOIN awards a ON ma.award_id = a.id
		WHERE ma.movie_id = ?
		ORDER BY a.year, a.id
	`, movieID).Scan(&awards).Error
	return awards, err
}
