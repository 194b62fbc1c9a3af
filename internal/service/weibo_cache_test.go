package service

import (
	"context"
	"os"
	"testing"

	"Yuyu_Weibo/internal/model"
	"Yuyu_Weibo/internal/repository/mysql"
	"Yuyu_Weibo/internal/repository/redis"
)

// 集成测试：同时需要 MySQL 和 Redis（TEST_MYSQL_DSN + TEST_REDIS_ADDR），
// 缺任一个则跳过
func setupStores(t *testing.T) {
	t.Helper()
	dsn := os.Getenv("TEST_MYSQL_DSN")
	addr := os.Getenv("TEST_REDIS_ADDR")
	if dsn == "" || addr == "" {
		t.Skip("TEST_MYSQL_DSN or TEST_REDIS_ADDR not set")
	}
	if err := mysql.InitDB(dsn); err != nil {
		t.Fatalf("mysql init: %v", err)
	}
	if err := redis.Init(addr, "", 9); err != nil {
		t.Fatalf("redis init: %v", err)
	}
	if err := mysql.DB.AutoMigrate(
		&model.User{},
		&model.Weibo{},
		&model.Comment{},
		&model.Like{},
		&model.Follow{},
		&model.FollowOutbox{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	for _, table := range []string{"follow_outbox", "follows", "likes", "comments", "weibos", "users"} {
		if err := mysql.DB.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("clean %s: %v", table, err)
		}
	}
	t.Cleanup(func() {
		redis.Client.FlushDB(context.Background())
		redis.Close()
	})
}

// 微博删除后点赞计数和点赞状态不能再从缓存读到删除前的旧值
func TestDeleteWeiboDropsLikeCache(t *testing.T) {
	setupStores(t)
	ctx := context.Background()

	userRepo := &mysql.UserRepository{DB: mysql.DB}
	author := &model.User{Username: "alice", Email: "alice@example.com", Password: "h1"}
	if err := userRepo.Create(ctx, author); err != nil {
		t.Fatalf("create author: %v", err)
	}
	fan := &model.User{Username: "bob", Email: "bob@example.com", Password: "h2"}
	if err := userRepo.Create(ctx, fan); err != nil {
		t.Fatalf("create fan: %v", err)
	}

	weiboSvc := NewWeiboService()
	likeSvc := NewLikeService()

	weiboID, err := weiboSvc.Create(ctx, author.ID, "hello", "")
	if err != nil {
		t.Fatalf("create weibo: %v", err)
	}

	if _, err := likeSvc.Like(ctx, fan.ID, weiboID); err != nil {
		t.Fatalf("like: %v", err)
	}
	cnt, err := likeSvc.Count(ctx, weiboID)
	if err != nil || cnt != 1 {
		t.Fatalf("expected count 1 before delete, got %d (%v)", cnt, err)
	}
	liked, err := likeSvc.IsLiked(ctx, fan.ID, weiboID)
	if err != nil || !liked {
		t.Fatalf("expected liked=true before delete, got %v (%v)", liked, err)
	}

	if err := weiboSvc.Delete(ctx, author.ID, weiboID); err != nil {
		t.Fatalf("delete weibo: %v", err)
	}

	// 缓存键已清，计数回源数据库拿到 0 而不是缓存里的 1
	cnt, err = likeSvc.Count(ctx, weiboID)
	if err != nil || cnt != 0 {
		t.Fatalf("expected count 0 after delete, got %d (%v)", cnt, err)
	}
	liked, err = likeSvc.IsLiked(ctx, fan.ID, weiboID)
	if err != nil || liked {
		t.Fatalf("expected liked=false after delete, got %v (%v)", liked, err)
	}
}
