package repository

import (
	"time"

	"github.com/user/filmbase/internal/model"
	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create 新增影评，评分约束由路由层校验过、数据库再次兜底
func (r *ReviewRepository) Create(userID, movieID, rating int, comment string) (*model.Review, error) {
	review := &model.Review{
		MovieID:    movieID,
		UserID:     userID,
		Rating:     rating,
		Comment:    comment,
		ReviewDate: time.Now(),
	}

	if err := r.db.Create(review).Error; err != nil {
		return nil, err
	}

	return review, nil
}

// ListByMovie 查询电影的全部影评，附带评论者用户名
func (r *ReviewRepository) ListByMovie(movieID int) ([]model.Review, error) {
	reviews := []model.Review{}
	err := r.db.Raw(`
		SELECT r.id, r.movie_id, r.user_id, r.rating, r.comment, r.review_date, u.username
		FROM reviews r
		JOIN users u ON r.user_id = u.id
		WHERE r.movie_id = ?
		ORDER BY r.id
	`, movieID).Scan(&reviews).Error
	return reviews, err
}

// Delete 按 (评论, 用户, 电影) 三元组删除，所有权检查即在 WHERE 中完成
func (r *ReviewRepository) Delete(reviewID, userID, movieID int) (bool, error) {
	tx := r.db.Where("id = ? AND user_id = ? AND movie_id = ?", reviewID, userID, movieID).
		Delete(&model.Review{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
