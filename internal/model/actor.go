package model

// Actor 演员
type Actor struct {
	ID      int    `json:"id" gorm:"primaryKey"`
	Name    string `json:"name" gorm:"size:255;not null"`
	Country string `json:"country" gorm:"size:255"`
}

// MovieCast 电影与演员的关联表
type MovieCast struct {
	MovieID int `json:"movieId" gorm:"primaryKey"`
	ActorID int `json:"actorId" gorm:"primaryKey"`

	Movie *Movie `json:"-" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE"`
	Actor *Actor `json:"-" gorm:"foreignKey:ActorID;constraint:OnDelete:CASCADE"`
}

// TableName 固定表名 movie_cast
func (MovieCast) TableName() string {
	return "movie_cast"
}
