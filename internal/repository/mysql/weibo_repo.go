package mysql

import (
	"context"
	"time"

	"Yuyu_Weibo/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WeiboRepository struct {
	DB *gorm.DB
}

// WeiboRow 列表项：作者信息和聚合计数在读取时一并算好
type WeiboRow struct {
	WeiboID      uint64    `gorm:"column:weibo_id" json:"weibo_id"`
	UserID       uint64    `gorm:"column:user_id" json:"user_id"`
	Username     string    `gorm:"column:username" json:"username"`
	Avatar       string    `gorm:"column:avatar" json:"avatar"`
	Content      string    `gorm:"column:content" json:"content"`
	Media        string    `gorm:"column:media" json:"media"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	LikeCount    int64     `gorm:"column:like_count" json:"like_count"`
	CommentCount int64     `gorm:"column:comment_count" json:"comment_count"`
}

func (r *WeiboRepository) Create(ctx context.Context, weibo *model.Weibo) error {
	return translate(r.DB.WithContext(ctx).Create(weibo).Error)
}

// List 最新在前，计数为查询时刻 likes/comments 表的真实行数
func (r *WeiboRepository) List(ctx context.Context, limit int) ([]WeiboRow, error) {
	rows := make([]WeiboRow, 0, limit)
	err := r.DB.WithContext(ctx).
		Table("weibos w").
		Select(`w.id AS weibo_id, w.user_id, u.username, u.avatar, w.content, w.media, w.created_at,
			(SELECT COUNT(*) FROM likes l WHERE l.weibo_id = w.id) AS like_count,
			(SELECT COUNT(*) FROM comments c WHERE c.weibo_id = w.id) AS comment_count`).
		Joins("JOIN users u ON w.user_id = u.id").
		Order("w.created_at DESC, w.id DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

// DeleteWithOwner 仅作者可删。同一事务内先锁行确认归属，再级联清掉
// 该微博的评论和点赞，不留孤儿行。查不到统一返回 ErrNotFound，
// 不区分不存在和无权限。
func (r *WeiboRepository) DeleteWithOwner(ctx context.Context, userID, weiboID uint64) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var w model.Weibo
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where("id = ? AND user_id = ?", weiboID, userID).
			First(&w).Error; err != nil {
			return err
		}
		if err := tx.Where("weibo_id = ?", weiboID).
			Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("weibo_id = ?", weiboID).
			Delete(&model.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Weibo{}, weiboID).Error
	})
	return translate(err)
}
