package mysql

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"Yuyu_Weibo/internal/model"

	"gorm.io/gorm"
)

type FollowRepository struct {
	DB *gorm.DB
}

type OutboxRepository struct {
	DB *gorm.DB
}

// FollowUser 关注/粉丝列表项
type FollowUser struct {
	UserID   uint64 `gorm:"column:user_id" json:"user_id"`
	Username string `gorm:"column:username" json:"username"`
}

// Create 尝试插入关注关系，事件与插入同事务落 outbox。
// 唯一索引 (follower_id, followee_id) 是并发去重的唯一依据：
// 撞上唯一键冲突说明关系已存在，回读现有 follow_id 按成功返回，
// 两个并发 follow 请求谁都不会拿到硬错误。其他后端错误原样归类上抛。
func (r *FollowRepository) Create(ctx context.Context, followerID, followeeID uint64) (uint64, error) {
	rel := model.Follow{FollowerID: followerID, FolloweeID: followeeID}
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&rel).Error; err != nil {
			return err
		}
		return insertOutbox(tx, "follow", followerID, followeeID)
	})
	if err == nil {
		return rel.ID, nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		var existing model.Follow
		if err2 := r.DB.WithContext(ctx).
			Select("id").
			Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
			First(&existing).Error; err2 != nil {
			return 0, translate(err2)
		}
		return existing.ID, nil
	}
	return 0, translate(err)
}

// Remove 幂等取关：没有这条关系也算成功，删到行才写 unfollow 事件
func (r *FollowRepository) Remove(ctx context.Context, followerID, followeeID uint64) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
			Delete(&model.Follow{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		return insertOutbox(tx, "unfollow", followerID, followeeID)
	})
	return translate(err)
}

// Followers 粉丝列表，按关注关系建立先后排序
func (r *FollowRepository) Followers(ctx context.Context, userID uint64) ([]FollowUser, error) {
	var rows []FollowUser
	err := r.DB.WithContext(ctx).
		Table("follows f").
		Select("u.id AS user_id, u.username").
		Joins("JOIN users u ON f.follower_id = u.id").
		Where("f.followee_id = ?", userID).
		Order("f.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

// Following 关注列表
func (r *FollowRepository) Following(ctx context.Context, userID uint64) ([]FollowUser, error) {
	var rows []FollowUser
	err := r.DB.WithContext(ctx).
		Table("follows f").
		Select("u.id AS user_id, u.username").
		Joins("JOIN users u ON f.followee_id = u.id").
		Where("f.follower_id = ?", userID).
		Order("f.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

func insertOutbox(tx *gorm.DB, event string, follower, followee uint64) error {
	payload, _ := json.Marshal(map[string]any{
		"event_time": time.Now().UTC().Format(time.RFC3339Nano),
		"follower":   follower,
		"followee":   followee,
	})
	ob := &model.FollowOutbox{
		EventType: event,
		Follower:  follower,
		Followee:  followee,
		Payload:   string(payload),
		Status:    0,
	}
	return tx.Create(ob).Error
}

// List 取一批待投递事件
func (r *OutboxRepository) List(ctx context.Context, batchSize int) ([]model.FollowOutbox, error) {
	var list []model.FollowOutbox
	if err := r.DB.WithContext(ctx).
		Where("status = 0").
		Order("id ASC").
		Limit(batchSize).
		Find(&list).Error; err != nil {
		return nil, translate(err)
	}
	return list, nil
}

// MarkFailed 投递失败，记一次重试
func (r *OutboxRepository) MarkFailed(ctx context.Context, id uint64) error {
	return translate(r.DB.WithContext(ctx).Model(&model.FollowOutbox{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": 2, "retry": gorm.Expr("retry + 1")}).Error)
}

// MarkSent 投递成功
func (r *OutboxRepository) MarkSent(ctx context.Context, id uint64) error {
	return translate(r.DB.WithContext(ctx).Model(&model.FollowOutbox{}).
		Where("id = ?", id).
		Update("status", 1).Error)
}
