package model

import "time"

type Weibo struct {
	ID        uint64    `gorm:"primaryKey" json:"weibo_id"`
	UserID    uint64    `gorm:"not null;index:idx_user_time" json:"user_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Media     string    `gorm:"size:255;not null;default:''" json:"media"`
	CreatedAt time.Time `gorm:"index:idx_created_at;index:idx_user_time" json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Weibo) TableName() string {
	return "weibos"
}
