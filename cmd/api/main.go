package main

import (
	"context"
	"os/signal"
	"syscall"

	"Yuyu_Weibo/internal/config"
	"Yuyu_Weibo/internal/model"
	"Yuyu_Weibo/internal/pkg"
	"Yuyu_Weibo/internal/repository/mysql"
	"Yuyu_Weibo/internal/repository/redis"
	"Yuyu_Weibo/internal/router"
	"Yuyu_Weibo/internal/service"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	pkg.AccessSecret = []byte(cfg.AccessSecret)
	pkg.RefreshSecret = []byte(cfg.RefreshSecret)
	pkg.PasswordSalt = cfg.PasswordSalt

	if err := mysql.InitDB(cfg.DSN()); err != nil {
		pkg.L.Fatal("mysql init failed", zap.Error(err))
	}

	if err := redis.Init(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
		pkg.L.Fatal("redis init failed", zap.Error(err))
	}
	defer redis.Close()

	// 建表幂等，重复启动是 no-op
	if err := mysql.DB.AutoMigrate(
		&model.User{},
		&model.Weibo{},
		&model.Comment{},
		&model.Like{},
		&model.Follow{},
		&model.FollowOutbox{},
	); err != nil {
		pkg.L.Fatal("auto migrate failed", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 关注事件投递：配了 Kafka 就投 Kafka，否则只打日志
	sender := service.LogSender
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := pkg.NewKafkaProducer(pkg.KafkaConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaTopic,
		})
		if err != nil {
			pkg.L.Fatal("kafka init failed", zap.Error(err))
		}
		defer producer.Close()
		sender = service.NewKafkaSender(producer)
	}
	go service.NewOutboxRelayer(sender).Run(ctx)

	r := router.InitRouter()
	pkg.L.Info("server starting", zap.String("addr", cfg.HTTPAddr))
	if err := r.Run(cfg.HTTPAddr); err != nil {
		pkg.L.Fatal("server exited", zap.Error(err))
	}
}
