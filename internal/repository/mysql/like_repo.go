package mysql

import (
	"context"

	"Yuyu_Weibo/internal/model"

	"gorm.io/gorm"
)

type LikeRepository struct {
	DB *gorm.DB
}

// Add 依赖 (user_id, weibo_id) 唯一索引，重复点赞返回 ErrConflict
func (r *LikeRepository) Add(ctx context.Context, userID, weiboID uint64) (uint64, error) {
	like := model.Like{UserID: userID, WeiboID: weiboID}
	if err := r.DB.WithContext(ctx).Create(&like).Error; err != nil {
		return 0, translate(err)
	}
	return like.ID, nil
}

// Remove 成功当且仅当真的删掉了一行；没有点赞记录返回 ErrNotFound
func (r *LikeRepository) Remove(ctx context.Context, userID, weiboID uint64) error {
	res := r.DB.WithContext(ctx).
		Where("user_id = ? AND weibo_id = ?", userID, weiboID).
		Delete(&model.Like{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListWeiboIDs 某用户点过赞的微博 id 列表
func (r *LikeRepository) ListWeiboIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	ids := make([]uint64, 0)
	err := r.DB.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ?", userID).
		Order("id ASC").
		Pluck("weibo_id", &ids).Error
	if err != nil {
		return nil, translate(err)
	}
	return ids, nil
}

// CountByWeibo 某条微博当前的点赞总数
func (r *LikeRepository) CountByWeibo(ctx context.Context, weiboID uint64) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.Like{}).
		Where("weibo_id = ?", weiboID).
		Count(&n).Error
	if err != nil {
		return 0, translate(err)
	}
	return n, nil
}

// IsLiked 用户是否赞过该微博
func (r *LikeRepository) IsLiked(ctx context.Context, userID, weiboID uint64) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND weibo_id = ?", userID, weiboID).
		Count(&n).Error
	if err != nil {
		return false, translate(err)
	}
	return n > 0, nil
}
