package model

// Movie 电影目录条目
type Movie struct {
	ID          int    `json:"id" gorm:"primaryKey"`
	Title       string `json:"title" gorm:"size:255;not null"`
	Genre       string `json:"genre" gorm:"size:255"`
	Director    string `json:"director" gorm:"size:255"`
	ReleaseYear int    `json:"releaseYear" gorm:"column:release_year"`
	Language    string `json:"language" gorm:"size:255"`
}

// MovieDetail 电影详情（含评论与演员表）
type MovieDetail struct {
	Movie
	Reviews []Review `json:"reviews"`
	Cast    []Actor  `json:"cast"`
}

// MoviePage 分页结果
type MoviePage struct {
	Movies     []Movie `json:"movies"`
	Page       int     `json:"page"`
	PageSize   int     `json:"pageSize"`
	TotalCount int64   `json:"totalCount"`
	TotalPages int     `json:"totalPages"`
}
