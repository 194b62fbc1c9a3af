package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	LikeSetTTL       = 24 * time.Hour
	LikeCntTTL       = 24 * time.Hour
	LockTTL          = 300 * time.Millisecond
	LikeSetKeyPrefix = "like:set:weibo" // 某条微博已点赞的用户ID集合
	LikeCntKeyPrefix = "like:cnt:weibo" // 某条微博的点赞计数
	LockKeyPrefix    = "lock:like:weibo"
)

// LikeCacheRepository 点赞读路径的旁路缓存。写库成功后尽力维护，
// 任何缓存失败都不影响主流程，读侧回源 MySQL 后惰性回填。
type LikeCacheRepository struct {
	likeSetTTL time.Duration
	likeCntTTL time.Duration
}

// DistLock 保护计数缓存重建，避免缓存失效时全体打到数据库
type DistLock struct {
	RDB *redis.Client
}

func NewLikeCacheRepository() *LikeCacheRepository {
	return &LikeCacheRepository{
		likeSetTTL: LikeSetTTL,
		likeCntTTL: LikeCntTTL,
	}
}

func (r *LikeCacheRepository) likeSetKey(weiboID uint64) string {
	return fmt.Sprintf("%s:%d", LikeSetKeyPrefix, weiboID)
}

func (r *LikeCacheRepository) likeCntKey(weiboID uint64) string {
	return fmt.Sprintf("%s:%d", LikeCntKeyPrefix, weiboID)
}

// AddLike 点赞落库后更新集合和计数
func (r *LikeCacheRepository) AddLike(ctx context.Context, userID, weiboID uint64) error {
	k := r.likeSetKey(weiboID)
	if err := Client.SAdd(ctx, k, userID).Err(); err != nil {
		return err
	}
	_ = Client.Expire(ctx, k, r.likeSetTTL).Err()

	ck := r.likeCntKey(weiboID)
	if err := Client.Incr(ctx, ck).Err(); err != nil {
		return err
	}
	_ = Client.Expire(ctx, ck, r.likeCntTTL).Err()
	return nil
}

// RemoveLike 取消点赞后更新集合，计数防负
func (r *LikeCacheRepository) RemoveLike(ctx context.Context, userID, weiboID uint64) error {
	k := r.likeSetKey(weiboID)
	if err := Client.SRem(ctx, k, userID).Err(); err != nil {
		return err
	}
	ck := r.likeCntKey(weiboID)
	return Client.Watch(ctx, func(tx *redis.Tx) error {
		val, err := tx.Get(ctx, ck).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if val <= 0 {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Decr(ctx, ck)
			return nil
		})
		return err
	}, ck)
}

// IsLikedCached 返回 (是否点赞, 缓存是否命中, err)；集合不存在视为未命中
func (r *LikeCacheRepository) IsLikedCached(ctx context.Context, userID, weiboID uint64) (bool, bool, error) {
	k := r.likeSetKey(weiboID)
	exists, err := Client.Exists(ctx, k).Result()
	if err != nil {
		return false, false, err
	}
	if exists == 0 {
		return false, false, nil
	}
	b, err := Client.SIsMember(ctx, k, userID).Result()
	return b, true, err
}

// GetCountCached 返回 (计数, 缓存是否命中, err)
func (r *LikeCacheRepository) GetCountCached(ctx context.Context, weiboID uint64) (int64, bool, error) {
	val, err := Client.Get(ctx, r.likeCntKey(weiboID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	return val, true, err
}

// SetCount 回源后回填计数
func (r *LikeCacheRepository) SetCount(ctx context.Context, weiboID uint64, cnt int64) error {
	return Client.Set(ctx, r.likeCntKey(weiboID), cnt, r.likeCntTTL).Err()
}

// WarmIsLiked 惰性回填：只在集合已存在时写，避免无界扩张
func (r *LikeCacheRepository) WarmIsLiked(ctx context.Context, userID, weiboID uint64, liked bool) {
	k := r.likeSetKey(weiboID)
	if ok, _ := Client.Exists(ctx, k).Result(); ok > 0 {
		if liked {
			_ = Client.SAdd(ctx, k, userID).Err()
		} else {
			_ = Client.SRem(ctx, k, userID).Err()
		}
		_ = Client.Expire(ctx, k, r.likeSetTTL).Err()
	}
}

// DeleteCount 删除计数键，交给读侧重建
func (r *LikeCacheRepository) DeleteCount(ctx context.Context, weiboID uint64) error {
	if err := Client.Del(ctx, r.likeCntKey(weiboID)).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	return nil
}

// DeleteSet 删除点赞用户集合键。微博删除后必须连同 DeleteCount 一起调用，
// 否则 TTL 内还会读到已删微博的旧计数和点赞状态
func (r *LikeCacheRepository) DeleteSet(ctx context.Context, weiboID uint64) error {
	if err := Client.Del(ctx, r.likeSetKey(weiboID)).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	return nil
}

// Acquire 加锁
func (l *DistLock) Acquire(ctx context.Context, weiboID uint64, token string) (bool, error) {
	key := fmt.Sprintf("%s:%d", LockKeyPrefix, weiboID)
	return l.RDB.SetNX(ctx, key, token, LockTTL).Result()
}

// Release 只释放自己持有的锁，用 lua 保证原子性
func (l *DistLock) Release(ctx context.Context, weiboID uint64, token string) error {
	key := fmt.Sprintf("%s:%d", LockKeyPrefix, weiboID)
	_, err := redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
  return redis.call("del", KEYS[1])
else
  return 0
end`).Run(ctx, l.RDB, []string{key}, token).Result()
	return err
}
