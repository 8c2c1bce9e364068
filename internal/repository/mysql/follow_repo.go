package mysql

import (
	"context"
	"encoding/json"
	"time"

	"Lee_Blog/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowRepository struct {
	DB *gorm.DB
}

type OutboxRepository struct {
	DB *gorm.DB
}

// Follow 原子 get-or-create：唯一索引 + ON CONFLICT DO NOTHING，
// 并发重复关注只会留下一条记录。真正新建时返回 changed=true。
func (r *FollowRepository) Follow(ctx context.Context, userID, authorID uint64) (bool, error) {
	var changed bool
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rel := model.Follow{
			UserID:   userID,
			AuthorID: authorID,
		}
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "author_id"}},
			DoNothing: true,
		}).Create(&rel)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// 已存在，幂等成功
			changed = false
			return nil
		}
		changed = true
		return r.insertOutbox(tx, "follow", userID, authorID)
	})
	return changed, err
}

// Unfollow 幂等删除，记录不存在时不报错
func (r *FollowRepository) Unfollow(ctx context.Context, userID, authorID uint64) (bool, error) {
	var changed bool
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND author_id = ?", userID, authorID).
			Delete(&model.Follow{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			changed = false
			return nil
		}
		changed = true
		return r.insertOutbox(tx, "unfollow", userID, authorID)
	})
	return changed, err
}

// IsFollowing 判断是否关注
func (r *FollowRepository) IsFollowing(ctx context.Context, userID, authorID uint64) (bool, error) {
	var n int64
	if err := r.DB.WithContext(ctx).
		Model(&model.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// 关注事件与关系变更同一事务写入 outbox 表。
// payload 自带 event 字段，消费端不依赖 outbox 表结构也能区分关注/取关。
func (r *FollowRepository) insertOutbox(tx *gorm.DB, event string, userID, authorID uint64) error {
	payload, _ := json.Marshal(map[string]any{
		"event":      event,
		"event_time": time.Now().UTC().Format(time.RFC3339Nano),
		"follower":   userID,
		"author":     authorID,
	})
	ob := &model.FollowOutbox{
		EventType: event,
		Follower:  userID,
		Author:    authorID,
		Payload:   string(payload),
		Status:    0,
	}
	return tx.Create(ob).Error
}

// List outbox 待投递记录查询
func (r *OutboxRepository) List(ctx context.Context, batchSize int) ([]model.FollowOutbox, error) {
	var list []model.FollowOutbox
	if err := r.DB.WithContext(ctx).
		Where("status = 0").
		Order("id ASC").
		Limit(batchSize).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// RetryUpdate 投递失败，记失败状态并累加重试次数
func (r *OutboxRepository) RetryUpdate(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.FollowOutbox{}).Where("id = ?", id).
		Updates(map[string]any{"status": 2, "retry": gorm.Expr("retry + 1")}).Error
}

// SuccessUpdate 投递成功
func (r *OutboxRepository) SuccessUpdate(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.FollowOutbox{}).Where("id = ?", id).
		Update("status", 1).Error
}
