package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Yuyu_Weibo/internal/repository/mysql"
	"Yuyu_Weibo/internal/repository/redis"
)

type LikeService struct {
	repo  *mysql.LikeRepository
	cache *redis.LikeCacheRepository
	lock  *redis.DistLock
}

func NewLikeService() *LikeService {
	return &LikeService{
		repo:  &mysql.LikeRepository{DB: mysql.DB},
		cache: redis.NewLikeCacheRepository(),
		lock:  &redis.DistLock{RDB: redis.Client},
	}
}

// Like 重复点赞是 mysql.ErrConflict，直接上抛。
// 写库成功后尽力维护缓存，缓存失败不影响结果。
func (s *LikeService) Like(ctx context.Context, userID, weiboID uint64) (uint64, error) {
	if userID == 0 || weiboID == 0 {
		return 0, fmt.Errorf("%w: invalid id", ErrInvalidArgument)
	}

	likeID, err := s.repo.Add(ctx, userID, weiboID)
	if err != nil {
		if errors.Is(err, mysql.ErrConflict) {
			s.cache.WarmIsLiked(ctx, userID, weiboID, true)
		}
		return 0, err
	}

	_ = s.cache.AddLike(ctx, userID, weiboID)
	return likeID, nil
}

// Unlike 只有真删掉行才算成功（没点过赞返回 mysql.ErrNotFound）
func (s *LikeService) Unlike(ctx context.Context, userID, weiboID uint64) error {
	if userID == 0 || weiboID == 0 {
		return fmt.Errorf("%w: invalid id", ErrInvalidArgument)
	}

	if err := s.repo.Remove(ctx, userID, weiboID); err != nil {
		if errors.Is(err, mysql.ErrNotFound) {
			s.cache.WarmIsLiked(ctx, userID, weiboID, false)
		}
		return err
	}

	_ = s.cache.RemoveLike(ctx, userID, weiboID)
	return nil
}

// ListUserLikes 用户点过赞的微博 id 列表
func (s *LikeService) ListUserLikes(ctx context.Context, userID uint64) ([]uint64, error) {
	if userID == 0 {
		return nil, fmt.Errorf("%w: invalid user id", ErrInvalidArgument)
	}
	return s.repo.ListWeiboIDs(ctx, userID)
}

// Count 先读缓存；miss 时抢锁回源重建，抢不到锁短暂退避后再读一次，
// 避免缓存失效瞬间全体打到数据库
func (s *LikeService) Count(ctx context.Context, weiboID uint64) (int64, error) {
	if weiboID == 0 {
		return 0, fmt.Errorf("%w: invalid weibo id", ErrInvalidArgument)
	}

	if v, ok, err := s.cache.GetCountCached(ctx, weiboID); err == nil && ok {
		return v, nil
	}

	token := fmt.Sprintf("%d-%d", weiboID, time.Now().UnixNano())
	got, _ := s.lock.Acquire(ctx, weiboID, token)
	if got {
		defer func() {
			_ = s.lock.Release(ctx, weiboID, token)
		}()

		// 双检：拿锁期间别人可能已经回填
		if v, ok, err := s.cache.GetCountCached(ctx, weiboID); err == nil && ok {
			return v, nil
		}

		v, err := s.repo.CountByWeibo(ctx, weiboID)
		if err != nil {
			return 0, err
		}
		_ = s.cache.SetCount(ctx, weiboID, v)
		return v, nil
	}

	time.Sleep(50 * time.Millisecond)
	if v, ok, err := s.cache.GetCountCached(ctx, weiboID); err == nil && ok {
		return v, nil
	}
	return s.repo.CountByWeibo(ctx, weiboID)
}

// IsLiked 缓存命中直接答，miss 回源并惰性回填
func (s *LikeService) IsLiked(ctx context.Context, userID, weiboID uint64) (bool, error) {
	if userID == 0 || weiboID == 0 {
		return false, fmt.Errorf("%w: invalid id", ErrInvalidArgument)
	}

	if b, ok, err := s.cache.IsLikedCached(ctx, userID, weiboID); err == nil && ok {
		return b, nil
	}
	b, err := s.repo.IsLiked(ctx, userID, weiboID)
	if err == nil {
		s.cache.WarmIsLiked(ctx, userID, weiboID, b)
	}
	return b, err
}
