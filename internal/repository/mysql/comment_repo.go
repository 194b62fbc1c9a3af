package mysql

import (
	"context"
	"time"

	"Yuyu_Weibo/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	DB *gorm.DB
}

// CommentRow 列表项，带作者信息和父评论引用
type CommentRow struct {
	CommentID uint64    `gorm:"column:comment_id" json:"comment_id"`
	UserID    uint64    `gorm:"column:user_id" json:"user_id"`
	Username  string    `gorm:"column:username" json:"username"`
	Avatar    string    `gorm:"column:avatar" json:"avatar"`
	Content   string    `gorm:"column:content" json:"content"`
	ParentID  uint64    `gorm:"column:parent_id" json:"parent_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

// Create 用户或微博不存在时外键约束失败，归入 ErrStore
func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return translate(r.DB.WithContext(ctx).Create(comment).Error)
}

// DeleteWithOwner 仅作者可删；删 0 行返回 ErrNotFound（不存在和
// 无权限对外同一个错误）
func (r *CommentRepository) DeleteWithOwner(ctx context.Context, userID, commentID uint64) error {
	res := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", commentID, userID).
		Delete(&model.Comment{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByWeibo 一条微博下的全部评论，旧的在前
func (r *CommentRepository) ListByWeibo(ctx context.Context, weiboID uint64) ([]CommentRow, error) {
	var rows []CommentRow
	err := r.DB.WithContext(ctx).
		Table("comments c").
		Select("c.id AS comment_id, c.user_id, u.username, u.avatar, c.content, c.parent_id, c.created_at").
		Joins("JOIN users u ON c.user_id = u.id").
		Where("c.weibo_id = ?", weiboID).
		Order("c.created_at ASC, c.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err)
	}
	return rows, nil
}
