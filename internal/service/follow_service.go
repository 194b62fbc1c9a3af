package service

import (
	"context"
	"fmt"
	"time"

	"Yuyu_Weibo/internal/model"
	"Yuyu_Weibo/internal/pkg"
	"Yuyu_Weibo/internal/repository/mysql"

	"go.uber.org/zap"
)

type FollowService struct {
	repo *mysql.FollowRepository
}

// Sender 把一条 outbox 事件投递出去
type Sender func(ctx context.Context, ob *model.FollowOutbox) error

// OutboxRelayer 周期性扫 outbox 表，把待投递的关注事件交给 sender
type OutboxRelayer struct {
	repo      *mysql.OutboxRepository
	batchSize int
	interval  time.Duration
	sender    Sender
}

func NewFollowService() *FollowService {
	return &FollowService{
		repo: &mysql.FollowRepository{DB: mysql.DB},
	}
}

func NewOutboxRelayer(sender Sender) *OutboxRelayer {
	return &OutboxRelayer{
		repo:      &mysql.OutboxRepository{DB: mysql.DB},
		batchSize: 200,
		interval:  time.Second,
		sender:    sender,
	}
}

// Follow 自己关注自己直接拒掉；重复关注返回已有的 follow_id（幂等）
func (s *FollowService) Follow(ctx context.Context, followerID, followeeID uint64) (uint64, error) {
	if followerID == 0 || followeeID == 0 {
		return 0, fmt.Errorf("%w: invalid user id", ErrInvalidArgument)
	}
	if followerID == followeeID {
		return 0, fmt.Errorf("%w: cannot follow self", ErrInvalidArgument)
	}
	return s.repo.Create(ctx, followerID, followeeID)
}

// Unfollow 幂等：没关注过也算成功
func (s *FollowService) Unfollow(ctx context.Context, followerID, followeeID uint64) error {
	if followerID == 0 || followeeID == 0 {
		return fmt.Errorf("%w: invalid user id", ErrInvalidArgument)
	}
	return s.repo.Remove(ctx, followerID, followeeID)
}

func (s *FollowService) ListFollowers(ctx context.Context, userID uint64) ([]mysql.FollowUser, error) {
	if userID == 0 {
		return nil, fmt.Errorf("%w: invalid user id", ErrInvalidArgument)
	}
	return s.repo.Followers(ctx, userID)
}

func (s *FollowService) ListFollowing(ctx context.Context, userID uint64) ([]mysql.FollowUser, error) {
	if userID == 0 {
		return nil, fmt.Errorf("%w: invalid user id", ErrInvalidArgument)
	}
	return s.repo.Following(ctx, userID)
}

// Run 启动投递循环，ctx 取消即退出
func (r *OutboxRelayer) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.drainOnce(ctx)
		}
	}
}

func (r *OutboxRelayer) drainOnce(ctx context.Context) {
	rows, err := r.repo.List(ctx, r.batchSize)
	if err != nil {
		pkg.L.Warn("outbox query failed", zap.Error(err))
		return
	}
	for i := range rows {
		ob := rows[i]
		if err = r.sender(ctx, &ob); err != nil {
			_ = r.repo.MarkFailed(ctx, ob.ID)
			continue
		}
		_ = r.repo.MarkSent(ctx, ob.ID)
	}
}

// NewKafkaSender 事件投 Kafka，按 follower 分区保序
func NewKafkaSender(producer *pkg.KafkaProducer) Sender {
	return func(ctx context.Context, ob *model.FollowOutbox) error {
		return producer.Send(ctx, pkg.MakeKeyFromID(ob.Follower), []byte(ob.Payload))
	}
}

// LogSender 没配 Kafka 时的兜底 sender：只打日志
func LogSender(ctx context.Context, ob *model.FollowOutbox) error {
	pkg.L.Info("outbox send",
		zap.String("type", ob.EventType),
		zap.Uint64("follower", ob.Follower),
		zap.Uint64("followee", ob.Followee))
	return nil
}
