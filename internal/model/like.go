package model

import "time"

type Like struct {
	ID        uint64 `gorm:"primaryKey" json:"like_id"`
	UserID    uint64 `gorm:"not null;uniqueIndex:uk_user_weibo" json:"user_id"`
	WeiboID   uint64 `gorm:"not null;index;uniqueIndex:uk_user_weibo" json:"weibo_id"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User  User  `gorm:"foreignKey:UserID" json:"-"`
	Weibo Weibo `gorm:"foreignKey:WeiboID" json:"-"`
}

func (Like) TableName() string {
	return "likes"
}
