package mysql

import (
	"context"

	"Yuyu_Weibo/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

// UserInfo 对外展示的用户信息
type UserInfo struct {
	UserID   uint64 `gorm:"column:id" json:"user_id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// Create 邮箱重复返回 ErrConflict
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	return translate(r.DB.WithContext(ctx).Create(user).Error)
}

// Authenticate 按 (email, password_hash) 精确匹配。匹配不到统一返回
// ErrNotFound，不区分"邮箱不存在"和"密码错误"，避免暴露注册情况。
func (r *UserRepository) Authenticate(ctx context.Context, email, passwordHash string) (uint64, error) {
	var user model.User
	err := r.DB.WithContext(ctx).
		Select("id").
		Where("email = ? AND password_hash = ?", email, passwordHash).
		First(&user).Error
	if err != nil {
		return 0, translate(err)
	}
	return user.ID, nil
}

// UpdateProfile 两个字段按调用方给的值整体写入，空串语义由上层决定。
// 值未变化时 RowsAffected 也可能为 0，需要再查一次确认用户是否存在。
func (r *UserRepository) UpdateProfile(ctx context.Context, userID uint64, username, avatar string) error {
	res := r.DB.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{"username": username, "avatar": avatar})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		var n int64
		if err := r.DB.WithContext(ctx).Model(&model.User{}).
			Where("id = ?", userID).
			Count(&n).Error; err != nil {
			return translate(err)
		}
		if n == 0 {
			return ErrNotFound
		}
	}
	return nil
}

// GetInfo 返回 {user_id, username, avatar}
func (r *UserRepository) GetInfo(ctx context.Context, userID uint64) (*UserInfo, error) {
	var info UserInfo
	err := r.DB.WithContext(ctx).Model(&model.User{}).
		Select("id", "username", "avatar").
		Where("id = ?", userID).
		First(&info).Error
	if err != nil {
		return nil, translate(err)
	}
	return &info, nil
}
