package model

import "time"

// Follow 关注关系：user 关注 author。
// (user_id, author_id) 在存储层做唯一约束，配合 ON CONFLICT DO NOTHING
// 保证并发重复关注不会产生脏数据。
type Follow struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    uint64    `gorm:"not null;index:idx_user_id;uniqueIndex:uk_user_author" json:"user_id"`
	AuthorID  uint64    `gorm:"not null;index:idx_author_id;uniqueIndex:uk_user_author" json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName sets table name for Follow
func (Follow) TableName() string {
	return "follow"
}

// FollowOutbox 关注事件外发表
type FollowOutbox struct {
	ID        uint64 `gorm:"primaryKey"`
	EventType string `gorm:"size:16;not null"` // follow / unfollow
	Follower  uint64 `gorm:"not null"`
	Author    uint64 `gorm:"not null"`
	Payload   string `gorm:"type:json;not null"`
	Status    int8   `gorm:"not null;default:0;comment:'0=pending,1=sent,2=failed'"`
	Retry     int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (FollowOutbox) TableName() string { return "follow_outbox" }
