package model

import (
	"time"
)

// User 用户模型
type User struct {
	ID               int       `json:"id" gorm:"primaryKey"`
	Username         string    `json:"username" gorm:"uniqueIndex;size:255;not null"`
	Email            string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash     string    `json:"-" gorm:"column:password_hash;size:255;not null"`
	RegistrationDate time.Time `json:"registrationDate" gorm:"column:registration_date"`
}
