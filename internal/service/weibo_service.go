package service

import (
	"context"
	"fmt"

	"Yuyu_Weibo/internal/model"
	"Yuyu_Weibo/internal/repository/mysql"
	"Yuyu_Weibo/internal/repository/redis"
)

const (
	DefaultWeiboLimit = 50
	MaxWeiboLimit     = 200
)

type WeiboService struct {
	repo  *mysql.WeiboRepository
	cache *redis.LikeCacheRepository
}

func NewWeiboService() *WeiboService {
	return &WeiboService{
		repo:  &mysql.WeiboRepository{DB: mysql.DB},
		cache: redis.NewLikeCacheRepository(),
	}
}

// Create 内容不能为空，media 可选
func (s *WeiboService) Create(ctx context.Context, userID uint64, content, media string) (uint64, error) {
	if userID == 0 {
		return 0, fmt.Errorf("%w: invalid user id", ErrInvalidArgument)
	}
	if content == "" {
		return 0, fmt.Errorf("%w: content required", ErrInvalidArgument)
	}

	weibo := &model.Weibo{
		UserID:  userID,
		Content: content,
		Media:   media,
	}
	if err := s.repo.Create(ctx, weibo); err != nil {
		return 0, err
	}
	return weibo.ID, nil
}

// List 无游标分页：想看更多就带更大的 limit 再查一次
func (s *WeiboService) List(ctx context.Context, limit int) ([]mysql.WeiboRow, error) {
	if limit <= 0 {
		limit = DefaultWeiboLimit
	}
	if limit > MaxWeiboLimit {
		limit = MaxWeiboLimit
	}
	return s.repo.List(ctx, limit)
}

// Delete 只有作者本人能删，级联语义在仓储层。
// 库里删成功后把该微博的点赞缓存键一并清掉，缓存失败不影响结果。
func (s *WeiboService) Delete(ctx context.Context, userID, weiboID uint64) error {
	if userID == 0 || weiboID == 0 {
		return fmt.Errorf("%w: invalid id", ErrInvalidArgument)
	}
	if err := s.repo.DeleteWithOwner(ctx, userID, weiboID); err != nil {
		return err
	}
	_ = s.cache.DeleteCount(ctx, weiboID)
	_ = s.cache.DeleteSet(ctx, weiboID)
	return nil
}
