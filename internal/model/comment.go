package model

import "time"

// Comment 帖子评论。帖子删除时级联删除评论。
type Comment struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	AuthorID  uint64    `gorm:"not null;index" json:"author_id"`
	Author    User      `gorm:"constraint:OnDelete:CASCADE" json:"author"`
	PostID    uint64    `gorm:"not null;index" json:"post_id"`
	Post      Post      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"created"`
}
