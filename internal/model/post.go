package model

import "time"

// Post 帖子。创建时间由服务端生成，编辑不会改动；
// group 可选，分组删除时置空而不是级联删除帖子。
type Post struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	AuthorID  uint64    `gorm:"not null;index:idx_author_time" json:"author_id"`
	Author    User      `gorm:"constraint:OnDelete:CASCADE" json:"author"`
	GroupID   *uint64   `gorm:"index" json:"group_id,omitempty"`
	Group     *Group    `gorm:"constraint:OnDelete:SET NULL" json:"group,omitempty"`
	Image     string    `gorm:"size:255" json:"image,omitempty"`
	CreatedAt time.Time `gorm:"index:idx_author_time,sort:desc" json:"pub_date"`
	UpdatedAt time.Time `json:"-"`
}
