package model

import "time"

type Comment struct {
	ID      uint64 `gorm:"primaryKey" json:"comment_id"`
	WeiboID uint64 `gorm:"not null;index:idx_weibo_time" json:"weibo_id"`
	UserID  uint64 `gorm:"not null;index" json:"user_id"`
	Content string `gorm:"type:text;not null" json:"content"`
	// 0 表示一级评论，非 0 指向被回复的评论
	ParentID  uint64    `gorm:"not null;default:0" json:"parent_id"`
	CreatedAt time.Time `gorm:"index:idx_weibo_time" json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	User  User  `gorm:"foreignKey:UserID" json:"-"`
	Weibo Weibo `gorm:"foreignKey:WeiboID" json:"-"`
}
