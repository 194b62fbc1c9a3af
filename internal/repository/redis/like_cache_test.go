package redis

import (
	"context"
	"os"
	"testing"
)

// 集成测试：需要可用的 Redis，通过 TEST_REDIS_ADDR 指定（如 127.0.0.1:6379），
// 使用 DB 9 并在结束时清空。未设置则跳过。
func testRedis(t *testing.T) {
	t.Helper()
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	if err := Init(addr, "", 9); err != nil {
		t.Fatalf("redis init: %v", err)
	}
	t.Cleanup(func() {
		Client.FlushDB(context.Background())
		Close()
	})
}

func TestLikeCacheRoundTrip(t *testing.T) {
	testRedis(t)
	ctx := context.Background()
	cache := NewLikeCacheRepository()

	const userID, weiboID = 7, 100

	if err := cache.AddLike(ctx, userID, weiboID); err != nil {
		t.Fatalf("add like: %v", err)
	}

	cnt, hit, err := cache.GetCountCached(ctx, weiboID)
	if err != nil || !hit || cnt != 1 {
		t.Fatalf("expected cached count 1, got %d hit=%v (%v)", cnt, hit, err)
	}
	liked, hit, err := cache.IsLikedCached(ctx, userID, weiboID)
	if err != nil || !hit || !liked {
		t.Fatalf("expected cached liked=true, got %v hit=%v (%v)", liked, hit, err)
	}

	if err := cache.RemoveLike(ctx, userID, weiboID); err != nil {
		t.Fatalf("remove like: %v", err)
	}
	cnt, hit, err = cache.GetCountCached(ctx, weiboID)
	if err != nil || !hit || cnt != 0 {
		t.Fatalf("expected cached count 0, got %d hit=%v (%v)", cnt, hit, err)
	}
}

// 计数防负：集合里没人时反复 RemoveLike 不能把计数减成负数
func TestRemoveLikeNeverNegative(t *testing.T) {
	testRedis(t)
	ctx := context.Background()
	cache := NewLikeCacheRepository()

	const userID, weiboID = 7, 101

	if err := cache.SetCount(ctx, weiboID, 0); err != nil {
		t.Fatalf("set count: %v", err)
	}
	if err := cache.RemoveLike(ctx, userID, weiboID); err != nil {
		t.Fatalf("remove like: %v", err)
	}
	cnt, hit, err := cache.GetCountCached(ctx, weiboID)
	if err != nil || !hit || cnt != 0 {
		t.Fatalf("expected count 0, got %d hit=%v (%v)", cnt, hit, err)
	}
}

// 微博删除后两个缓存键都要清掉，后续读取必须是 miss 而不是旧值
func TestDeleteCountAndSetInvalidate(t *testing.T) {
	testRedis(t)
	ctx := context.Background()
	cache := NewLikeCacheRepository()

	const userID, weiboID = 7, 102

	if err := cache.AddLike(ctx, userID, weiboID); err != nil {
		t.Fatalf("add like: %v", err)
	}

	if err := cache.DeleteCount(ctx, weiboID); err != nil {
		t.Fatalf("delete count: %v", err)
	}
	if err := cache.DeleteSet(ctx, weiboID); err != nil {
		t.Fatalf("delete set: %v", err)
	}

	if _, hit, err := cache.GetCountCached(ctx, weiboID); err != nil || hit {
		t.Fatalf("expected count cache miss, hit=%v (%v)", hit, err)
	}
	if _, hit, err := cache.IsLikedCached(ctx, userID, weiboID); err != nil || hit {
		t.Fatalf("expected set cache miss, hit=%v (%v)", hit, err)
	}

	// 键不存在时重复删除也要成功
	if err := cache.DeleteCount(ctx, weiboID); err != nil {
		t.Fatalf("second delete count: %v", err)
	}
	if err := cache.DeleteSet(ctx, weiboID); err != nil {
		t.Fatalf("second delete set: %v", err)
	}
}

func TestSessionLifecycle(t *testing.T) {
	testRedis(t)
	ctx := context.Background()
	sessions := &SessionRepository{}

	const userID = 42

	if _, err := sessions.Get(ctx, userID); err != ErrTokenNotFound {
		t.Fatalf("expected ErrTokenNotFound, got %v", err)
	}

	if err := sessions.Save(ctx, userID, "token-a"); err != nil {
		t.Fatalf("save: %v", err)
	}
	token, err := sessions.Get(ctx, userID)
	if err != nil || token != "token-a" {
		t.Fatalf("expected token-a, got %q (%v)", token, err)
	}

	// 再次登录覆盖旧 token，同一用户只保留最新的
	if err := sessions.Save(ctx, userID, "token-b"); err != nil {
		t.Fatalf("save again: %v", err)
	}
	token, err = sessions.Get(ctx, userID)
	if err != nil || token != "token-b" {
		t.Fatalf("expected token-b, got %q (%v)", token, err)
	}

	if err := sessions.Extend(ctx, userID); err != nil {
		t.Fatalf("extend: %v", err)
	}
	if err := sessions.Delete(ctx, userID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := sessions.Get(ctx, userID); err != ErrTokenNotFound {
		t.Fatalf("expected ErrTokenNotFound after delete, got %v", err)
	}
}
