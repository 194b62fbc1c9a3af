package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// 会话放在 Redis 而不是进程内存：重启不丢、多实例共享，带 TTL 自动过期
const (
	SessionTokenPrefix = "login:user:token"
	SessionTokenTTL    = 30 * time.Minute
)

var (
	ErrTokenNotFound    = errors.New("token not found")
	ErrRedisUnavailable = errors.New("redis unavailable")
	ErrExtendFailed     = errors.New("token extend failed")
	ErrTokenDelFailed   = errors.New("token delete failed")
)

type SessionRepository struct{}

func (r *SessionRepository) sessionKey(userID uint64) string {
	return fmt.Sprintf("%s:%d", SessionTokenPrefix, userID)
}

// Save 登录/注册后把 access token 写入白名单，同一用户只保留最新一个
func (r *SessionRepository) Save(ctx context.Context, userID uint64, token string) error {
	if err := Client.Set(ctx, r.sessionKey(userID), token, SessionTokenTTL).Err(); err != nil {
		return ErrRedisUnavailable
	}
	return nil
}

// Get 取该用户当前有效的 access token
func (r *SessionRepository) Get(ctx context.Context, userID uint64) (string, error) {
	token, err := Client.Get(ctx, r.sessionKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		return "", ErrRedisUnavailable
	}
	return token, nil
}

// Extend 每次通过鉴权后顺延过期时间
func (r *SessionRepository) Extend(ctx context.Context, userID uint64) error {
	if _, err := Client.Expire(ctx, r.sessionKey(userID), SessionTokenTTL).Result(); err != nil {
		return ErrExtendFailed
	}
	return nil
}

// Delete 登出，键不存在也算成功
func (r *SessionRepository) Delete(ctx context.Context, userID uint64) error {
	if err := Client.Del(ctx, r.sessionKey(userID)).Err(); err != nil {
		return ErrTokenDelFailed
	}
	return nil
}
