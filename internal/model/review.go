package model

import (
	"time"
)

// Review 影评，属于一个电影和一个用户；任一方删除时级联删除
type Review struct {
	ID         int       `json:"id" gorm:"primaryKey"`
	MovieID    int       `json:"movieId" gorm:"not null"`
	UserID     int       `json:"userId" gorm:"not null"`
	Rating     int       `json:"rating" gorm:"check:rating BETWEEN 1 AND 10"`
	Comment    string    `json:"comment,omitempty"`
	ReviewDate time.Time `json:"reviewDate" gorm:"column:review_date"`

	// 仅在关联查询时填充，只读且不参与建表
	Username string `json:"username,omitempty" gorm:"->;-:migration"`

	Movie *Movie `json:"-" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE"`
	User  *User  `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
