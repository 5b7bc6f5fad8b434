package model

// Award 奖项
type Award struct {
	ID       int    `json:"id" gorm:"primaryKey"`
	Year     int    `json:"year"`
	Name     string `json:"name" gorm:"size:255;not null"`
	Category string `json:"category" gorm:"size:255"`
}

// MovieAward 电影与奖项的关联表
type MovieAward struct {
	MovieID int `json:"movieId" gorm:"primaryKey"`
	AwardID int `json:"awardId" gorm:"primaryKey"`

	Movie *Movie `json:"-" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE"`
	Award *Award `json:"-" gorm:"foreignKey:AwardID;constraint:OnDelete:CASCADE"`
}
