package model

import "time"

type User struct {
	ID        uint64 `gorm:"primaryKey" json:"user_id"`
	Username  string `gorm:"size:32;not null" json:"username"`
	Email     string `gorm:"uniqueIndex;size:64;not null" json:"email"`
	Password  string `gorm:"column:password_hash;size:255;not null" json:"-"`
	Avatar    string `gorm:"size:255;not null;default:''" json:"avatar"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
