package mysql

import (
	"Lee_Blog/internal/model"

	"gorm.io/gorm"
)

type PostRepository struct {
	DB *gorm.DB
}

func (r *PostRepository) Create(post *model.Post) error {
	return r.DB.Create(post).Error
}

func (r *PostRepository) FindByID(id uint64) (*model.Post, error) {
	var post model.Post
	err := r.DB.Preload("Author").Preload("Group").First(&post, id).Error
	return &post, err
}

// Update 只更新给定字段，created_at 不会被触碰
func (r *PostRepository) Update(id uint64, fields map[string]any) error {
	return r.DB.Model(&model.Post{}).Where("id = ?", id).Updates(fields).Error
}

// ListAll 首页：全部帖子，新的在前
func (r *PostRepository) ListAll(offset, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.listQuery().
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *PostRepository) CountAll() (int64, error) {
	var n int64
	err := r.DB.Model(&model.Post{}).Count(&n).Error
	return n, err
}

func (r *PostRepository) ListByGroup(groupID uint64, offset, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.listQuery().
		Where("group_id = ?", groupID).
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *PostRepository) CountByGroup(groupID uint64) (int64, error) {
	var n int64
	err := r.DB.Model(&model.Post{}).Where("group_id = ?", groupID).Count(&n).Error
	return n, err
}

func (r *PostRepository) ListByAuthor(authorID uint64, offset, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.listQuery().
		Where("author_id = ?", authorID).
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *PostRepository) CountByAuthor(authorID uint64) (int64, error) {
	var n int64
	err := r.DB.Model(&model.Post{}).Where("author_id = ?", authorID).Count(&n).Error
	return n, err
}

// ListFeed 关注流：requester 关注的作者的帖子
func (r *PostRepository) ListFeed(userID uint64, offset, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.listQuery().
		Joins("JOIN follow ON follow.author_id = posts.author_id").
		Where("follow.user_id = ?", userID).
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *PostRepository) CountFeed(userID uint64) (int64, error) {
	var n int64
	err := r.DB.Model(&model.Post{}).
		Joins("JOIN follow ON follow.author_id = posts.author_id").
		Where("follow.user_id = ?", userID).
		Count(&n).Error
	return n, err
}

// 列表都显式按发布时间倒序，同一时刻用 id 兜底保证稳定
func (r *PostRepository) listQuery() *gorm.DB {
	return r.DB.Model(&model.Post{}).
		Preload("Author").
		Preload("Group").
		Order("posts.created_at DESC, posts.id DESC")
}
