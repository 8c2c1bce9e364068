package mysql

import (
	"Lee_Blog/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	DB *gorm.DB
}

func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.DB.Create(comment).Error
}

// ListByPost 评论按创建时间倒序
func (r *CommentRepository) ListByPost(postID uint64) ([]model.Comment, error) {
	var list []model.Comment
	err := r.DB.Model(&model.Comment{}).
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at DESC, id DESC").
		Find(&list).Error
	return list, err
}

func (r *CommentRepository) CountByPost(postID uint64) (int64, error) {
	var n int64
	err := r.DB.Model(&model.Comment{}).Where("post_id = ?", postID).Count(&n).Error
	return n, err
}
