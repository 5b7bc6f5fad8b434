package repository

import (
	"errors"
	"strings"

	"github.com/user/filmbase/internal/model"
	"gorm.io/gorm"
)

type MovieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// ListParams 电影列表的分页/排序/过滤参数
type ListParams struct {
	Page          int
	PageSize      int
	SortBy        string
	SortDirection string
	Title         string
	Genre         string
	Director      string
	Language      string
	ReleaseYear   int
}

// sortableColumns 允许排序的列，请求参数名到列名的映射
var sortableColumns = map[string]string{
	"id":          "id",
	"title":       "title",
	"genre":       "genre",
	"director":    "director",
	"releaseYear": "release_year",
	"language":    "language",
}

// orderClause 未知列静默回退到按 id 升序
func orderClause(sortBy, sortDirection string) string {
	column, ok := sortableColumns[sortBy]
	if !ok {
		return "id ASC"
	}
	direction := "ASC"
	if strings.EqualFold(sortDirection, "desc") {
		direction = "DESC"
	}
	return column + " " + direction
}

// Create 新增电影，ID 由数据库生成
func (r *MovieRepository) Create(movie *model.Movie) error {
	return r.db.Create(movie).Error
}

// List 分页查询电影，字符串过滤为子串匹配，年份为等值匹配
func (r *MovieRepository) List(p ListParams) ([]model.Movie, int64, error) {
	query := r.db.Model(&model.Movie{})

	if p.Title != "" {
		query = query.Where("title ILIKE ?", "%"+p.Title+"%")
	}
	if p.Genre != "" {
		query = query.Where("genre ILIKE ?", "%"+p.Genre+"%")
	}
	if p.Director != "" {
		query = query.Where("director ILIKE ?", "%"+p.Director+"%")
	}
	if p.Language != "" {
		query = query.Where("language ILIKE ?", "%"+p.Language+"%")
	}
	if p.ReleaseYear != 0 {
		query = query.Where("release_year = ?", p.ReleaseYear)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	movies := []model.Movie{}
	err := query.
		Order(orderClause(p.SortBy, p.SortDirection)).
		Limit(p.PageSize).
		Offset((p.Page - 1) * p.PageSize).
		Find(&movies).Error
	if err != nil {
		return nil, 0, err
	}

	return movies, total, nil
}

// FindByID 根据 ID 查找电影，未找到返回 nil
func (r *MovieRepository) FindByID(id int) (*model.Movie, error) {
	var movie model.Movie
	err := r.db.First(&movie, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// Update 只更新给定的字段，未找到返回 nil
func (r *MovieRepository) Update(id int, updates map[string]interface{}) (*model.Movie, error) {
	if len(updates) == 0 {
		return nil, errors.New("no movie fields provided for update")
	}

	tx := r.db.Model(&model.Movie{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}

	return r.FindByID(id)
}

// Delete 删除电影，依赖行由数据库级联清理
func (r *MovieRepository) Delete(id int) (bool, error) {
	tx := r.db.Delete(&model.Movie{}, id)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// ByWatchlist 查询片单内的电影
func (r *MovieRepository) ByWatchlist(watchlistID int) ([]model.Movie, error) {
	movies := []model.Movie{}
	err := r.db.Raw(`
		SELECT m.id, m.title, m.genre, m.director, m.release_year, m.language
		FROM watchlist_movies wm
		JOIN movies m ON wm.movie_id = m.id
		WHERE wm.watchlist_id = ?
		ORDER BY m.id
	`, watchlistID).Scan(&movies).Error
	return movies, err
}
