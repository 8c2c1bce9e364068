package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"Lee_Blog/internal/model"
	"Lee_Blog/internal/pkg"
	"Lee_Blog/internal/repository/mysql"
)

type Sender func(ctx context.Context, ob *model.FollowOutbox) error

// OutboxRelayer 定时把待投递的关注事件交给 sender
type OutboxRelayer struct {
	repo      *mysql.OutboxRepository
	batchSize int
	interval  time.Duration
	sender    Sender
}

func NewOutboxRelayer(db *gorm.DB, sender Sender) *OutboxRelayer {
	return &OutboxRelayer{
		repo:      &mysql.OutboxRepository{DB: db},
		batchSize: 200,
		interval:  time.Second,
		sender:    sender,
	}
}

// Run outbox 启动器
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
		pkg.Error.Printf("outbox query err: %v", err)
		return
	}
	for i := range rows {
		ob := rows[i]
		if err = r.sender(ctx, &ob); err != nil {
			_ = r.repo.RetryUpdate(ctx, ob.ID)
			continue
		}
		_ = r.repo.SuccessUpdate(ctx, ob.ID)
	}
}

// LogSender 没配 kafka 时的兜底 sender：只打日志
func LogSender(ctx context.Context, ob *model.FollowOutbox) error {
	pkg.Info.Printf("OUTBOX SEND type=%s follower=%d author=%d payload=%s", ob.EventType, ob.Follower, ob.Author, ob.Payload)
	return nil
}

// KafkaSender 按 follower 分 key，同一用户的事件保持有序
func KafkaSender(p *pkg.KafkaProducer) Sender {
	return func(ctx context.Context, ob *model.FollowOutbox) error {
		return p.Send(ctx, pkg.MakeKeyFromID(ob.Follower), []byte(ob.Payload))
	}
}
