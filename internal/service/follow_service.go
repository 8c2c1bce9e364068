package service

import (
	"context"

	"gorm.io/gorm"

	"Lee_Blog/internal/repository/mysql"
)

type FollowService struct {
	repo     *mysql.FollowRepository
	userRepo *mysql.UserRepository
}

func NewFollowService(db *gorm.DB) *FollowService {
	return &FollowService{
		repo:     &mysql.FollowRepository{DB: db},
		userRepo: &mysql.UserRepository{DB: db},
	}
}

// Follow 关注 username。作者不存在返回 ErrNotFound；
// 自己关注自己和重复关注都是无操作，不算错误。
func (s *FollowService) Follow(ctx context.Context, userID uint64, username string) (bool, error) {
	author, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return false, notFound(err)
	}
	if author.ID == userID {
		return false, nil
	}
	return s.repo.Follow(ctx, userID, author.ID)
}

// Unfollow 取关 username，关系不存在时无操作
func (s *FollowService) Unfollow(ctx context.Context, userID uint64, username string) (bool, error) {
	author, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return false, notFound(err)
	}
	return s.repo.Unfollow(ctx, userID, author.ID)
}

// IsFollowing 判断关注关系
func (s *FollowService) IsFollowing(ctx context.Context, userID, authorID uint64) (bool, error) {
	return s.repo.IsFollowing(ctx, userID, authorID)
}
