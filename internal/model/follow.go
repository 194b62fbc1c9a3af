package model

import "time"

type Follow struct {
	ID         uint64 `gorm:"primaryKey" json:"follow_id"`
	FollowerID uint64 `gorm:"not null;uniqueIndex:uk_follower_followee;index:idx_follower_id" json:"follower_id"`
	FolloweeID uint64 `gorm:"not null;index:idx_followee_id;uniqueIndex:uk_follower_followee" json:"followee_id"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Follow) TableName() string {
	return "follows"
}

// FollowOutbox 关注事件外发表，与关注写操作同事务落库
type FollowOutbox struct {
	ID        uint64 `gorm:"primaryKey"`
	EventType string `gorm:"size:16;not null"` // follow / unfollow
	Follower  uint64 `gorm:"not null"`
	Followee  uint64 `gorm:"not null"`
	Payload   string `gorm:"type:json;not null"`
	Status    int8   `gorm:"not null;default:0;comment:'0=pending,1=sent,2=failed'"`
	Retry     int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (FollowOutbox) TableName() string { return "follow_outbox" }
