package service

import (
	"gorm.io/gorm"

	"Lee_Blog/internal/form"
	"Lee_Blog/internal/model"
	"Lee_Blog/internal/repository/mysql"
)

type CommentService struct {
	repo     *mysql.CommentRepository
	postRepo *mysql.PostRepository
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{
		repo:     &mysql.CommentRepository{DB: db},
		postRepo: &mysql.PostRepository{DB: db},
	}
}

// Add 给帖子加评论。帖子不存在返回 ErrNotFound；
// 表单不合法返回 errs，什么都不写库。
func (s *CommentService) Add(userID, postID uint64, f *form.CommentForm) (form.Errors, error) {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		return nil, notFound(err)
	}

	if errs := f.Validate(); errs != nil {
		return errs, nil
	}

	comment := &model.Comment{
		Text:     f.Text,
		AuthorID: userID,
		PostID:   post.ID,
	}
	return nil, s.repo.Create(comment)
}

// ListForPost 帖子详情页的评论列表
func (s *CommentService) ListForPost(postID uint64) ([]model.Comment, error) {
	return s.repo.ListByPost(postID)
}
