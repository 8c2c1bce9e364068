package main

import (
	"context"

	"Lee_Blog/internal/config"
	"Lee_Blog/internal/pkg"
	"Lee_Blog/internal/repository/mysql"
	"Lee_Blog/internal/repository/redis"
	"Lee_Blog/internal/router"
	"Lee_Blog/internal/service"
)

func main() {
	cfg := config.Load()
	pkg.InitJWT(cfg.JWTAccessSecret, cfg.JWTRefreshSecret)

	if err := mysql.InitDB(cfg.MySQLDSN); err != nil {
		pkg.Error.Fatalf("mysql init: %v", err)
	}
	if err := mysql.AutoMigrate(mysql.DB); err != nil {
		pkg.Error.Fatalf("migrate: %v", err)
	}

	if err := redis.Init(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
		pkg.Error.Fatalf("redis init: %v", err)
	}
	defer redis.Close()

	// 关注事件投递：配了 kafka 走 kafka，否则只打日志
	sender := service.LogSender
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := pkg.NewKafkaProducer(pkg.KafkaConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaTopic,
		})
		if err != nil {
			pkg.Error.Fatalf("kafka init: %v", err)
		}
		defer producer.Close()
		sender = service.KafkaSender(producer)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go service.NewOutboxRelayer(mysql.DB, sender).Run(ctx)

	r := router.InitRouter(mysql.DB, cfg)
	pkg.Info.Printf("listening on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		pkg.Error.Fatalf("server: %v", err)
	}
}
