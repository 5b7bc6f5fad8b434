package repository

import (
	"errors"

	"github.com/user/filmbase/internal/model"
	"gorm.io/gorm"
)

type ActorRepository struct {
	db *gorm.DB
}

func NewActorRepository(db *gorm.DB) *ActorRepository {
	return &ActorRepository{db: db}
}

// ListAll 获取所有演员
func (r *ActorRepository) ListAll() ([]model.Actor, error) {
	actors := []model.Actor{}
	err := r.db.Order("id").Find(&actors).Error
	return actors, err
}

// FindByID 根据 ID 查找演员，未找到返回 nil
func (r *ActorRepository) FindByID(id int) (*model.Actor, error) {
	var actor model.Actor
	err := r.db.First(&actor, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &actor, nil
}

// ByMovie 通过关联表查询电影的演员表
func (r *ActorRepository) ByMovie(movieID int) ([]model.Actor, error) {
	actors := []model.Actor{}
	err := r.db.Raw(`
		SELECT a.id, a.name, a.country
		FROM movie_cast mc
		JOIN actors a ON mc.actor_id = a.id
		WHERE mc.movie_id = ?
		ORDER BY a.id
	`, movieID).Scan(&actors).Error
	return actors, err
}
