package service

import (
	"context"

	"gorm.io/gorm"

	"Lee_Blog/internal/form"
	"Lee_Blog/internal/model"
	"Lee_Blog/internal/pkg"
	"Lee_Blog/internal/repository/mysql"
)

type PostService struct {
	repo       *mysql.PostRepository
	groupRepo  *mysql.GroupRepository
	userRepo   *mysql.UserRepository
	followRepo *mysql.FollowRepository
	pageSize   int
}

func NewPostService(db *gorm.DB, pageSize int) *PostService {
	if pageSize <= 0 {
		pageSize = pkg.DefaultPageSize
	}
	return &PostService{
		repo:       &mysql.PostRepository{DB: db},
		groupRepo:  &mysql.GroupRepository{DB: db},
		userRepo:   &mysql.UserRepository{DB: db},
		followRepo: &mysql.FollowRepository{DB: db},
		pageSize:   pageSize,
	}
}

// Index 首页帖子列表
func (s *PostService) Index(pageStr string) ([]model.Post, pkg.Pagination, error) {
	total, err := s.repo.CountAll()
	if err != nil {
		return nil, pkg.Pagination{}, err
	}
	pg := pkg.NewPagination(pageStr, total, s.pageSize)
	list, err := s.repo.ListAll(pg.Offset(), pg.PageSize)
	return list, pg, err
}

// GroupPosts 按 slug 定位分组并列出组内帖子
func (s *PostService) GroupPosts(slug, pageStr string) (*model.Group, []model.Post, pkg.Pagination, error) {
	group, err := s.groupRepo.FindBySlug(slug)
	if err != nil {
		return nil, nil, pkg.Pagination{}, notFound(err)
	}

	total, err := s.repo.CountByGroup(group.ID)
	if err != nil {
		return nil, nil, pkg.Pagination{}, err
	}
	pg := pkg.NewPagination(pageStr, total, s.pageSize)
	list, err := s.repo.ListByGroup(group.ID, pg.Offset(), pg.PageSize)
	return group, list, pg, err
}

// Profile 作者主页。following 只对登录的 viewer 有意义：
// viewer 未登录恒为 false。
func (s *PostService) Profile(ctx context.Context, username, pageStr string, viewerID uint64) (*model.User, []model.Post, pkg.Pagination, bool, error) {
	author, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, nil, pkg.Pagination{}, false, notFound(err)
	}

	following := false
	if viewerID != 0 {
		following, err = s.followRepo.IsFollowing(ctx, viewerID, author.ID)
		if err != nil {
			return nil, nil, pkg.Pagination{}, false, err
		}
	}

	total, err := s.repo.CountByAuthor(author.ID)
	if err != nil {
		return nil, nil, pkg.Pagination{}, false, err
	}
	pg := pkg.NewPagination(pageStr, total, s.pageSize)
	list, err := s.repo.ListByAuthor(author.ID, pg.Offset(), pg.PageSize)
	return author, list, pg, following, err
}

func (s *PostService) Detail(id uint64) (*model.Post, error) {
	post, err := s.repo.FindByID(id)
	if err != nil {
		return nil, notFound(err)
	}
	return post, nil
}

// Create 校验表单，作者永远取登录态，不信任表单里的任何人。
// errs 非空表示表单不合法，什么都没有写库。
func (s *PostService) Create(authorID uint64, f *form.PostForm) (*model.Post, form.Errors, error) {
	groupID, errs, err := f.Validate(s.groupRepo)
	if err != nil {
		return nil, nil, err
	}
	if len(errs) > 0 {
		return nil, errs, nil
	}

	post := &model.Post{
		Text:     f.Text,
		AuthorID: authorID,
		GroupID:  groupID,
		Image:    f.Image,
	}
	if err := s.repo.Create(post); err != nil {
		return nil, nil, err
	}
	// 重定向需要作者用户名
	author, err := s.userRepo.FindByID(authorID)
	if err != nil {
		return nil, nil, err
	}
	post.Author = *author
	return post, nil, nil
}

// ForEdit 编辑页加载：非作者返回 ErrForbidden，调用方静默跳转详情页
func (s *PostService) ForEdit(userID, postID uint64) (*model.Post, error) {
	post, err := s.repo.FindByID(postID)
	if err != nil {
		return nil, notFound(err)
	}
	if post.AuthorID != userID {
		return post, ErrForbidden
	}
	return post, nil
}

// Update 编辑帖子。非作者一律 ErrForbidden 且不产生任何写入。
func (s *PostService) Update(userID, postID uint64, f *form.PostForm) (*model.Post, form.Errors, error) {
	post, err := s.repo.FindByID(postID)
	if err != nil {
		return nil, nil, notFound(err)
	}
	if post.AuthorID != userID {
		return post, nil, ErrForbidden
	}

	groupID, errs, err := f.Validate(s.groupRepo)
	if err != nil {
		return nil, nil, err
	}
	if len(errs) > 0 {
		return post, errs, nil
	}

	fields := map[string]any{
		"text":     f.Text,
		"group_id": groupID,
	}
	// 没传新图就保留旧图
	if f.Image != "" {
		fields["image"] = f.Image
	}
	if err := s.repo.Update(post.ID, fields); err != nil {
		return nil, nil, err
	}
	post.Text = f.Text
	post.GroupID = groupID
	if f.Image != "" {
		post.Image = f.Image
	}
	return post, nil, nil
}

// Feed 关注流
func (s *PostService) Feed(userID uint64, pageStr string) ([]model.Post, pkg.Pagination, error) {
	total, err := s.repo.CountFeed(userID)
	if err != nil {
		return nil, pkg.Pagination{}, err
	}
	pg := pkg.NewPagination(pageStr, total, s.pageSize)
	list, err := s.repo.ListFeed(userID, pg.Offset(), pg.PageSize)
	return list, pg, err
}
