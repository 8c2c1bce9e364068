package handler

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"Lee_Blog/internal/form"
	"Lee_Blog/internal/pkg"
	"Lee_Blog/internal/service"
)

type PostHandler struct {
	svc        *service.PostService
	commentSvc *service.CommentService
	uploadDir  string
}

func NewPostHandler(svc *service.PostService, commentSvc *service.CommentService, uploadDir string) *PostHandler {
	return &PostHandler{
		svc:        svc,
		commentSvc: commentSvc,
		uploadDir:  uploadDir,
	}
}

// Index 首页帖子列表接口。整页缓存在路由层挂 CachePage 中间件。
func (h *PostHandler) Index(c *gin.Context) {
	posts, pg, err := h.svc.Index(c.Query("page"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.JSON(http.StatusOK, pagePayload(gin.H{"posts": posts}, pg))
}

// GroupList 分组帖子列表接口
func (h *PostHandler) GroupList(c *gin.Context) {
	group, posts, pg, err := h.svc.GroupPosts(c.Param("slug"), c.Query("page"))
	if err != nil {
		if notFoundAbort(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.JSON(http.StatusOK, pagePayload(gin.H{"group": group, "posts": posts}, pg))
}

// Detail 帖子详情：帖子 + 评论 + 空评论表单
func (h *PostHandler) Detail(c *gin.Context) {
	postID, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "post not found"})
		return
	}

	post, err := h.svc.Detail(postID)
	if err != nil {
		if notFoundAbort(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "detail failed"})
		return
	}

	comments, err := h.commentSvc.ListForPost(post.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "detail failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"post":     post,
		"comments": comments,
		"form":     gin.H{"text": ""},
	})
}

// Create 发帖。GET 返回空表单，POST 校验入库后跳作者主页。
func (h *PostHandler) Create(c *gin.Context) {
	if c.Request.Method == http.MethodGet {
		c.JSON(http.StatusOK, gin.H{"form": gin.H{"text": "", "group": ""}})
		return
	}

	userID := userIDFromCtx(c)

	var f form.PostForm
	if err := c.ShouldBind(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	if !h.bindImage(c, &f) {
		return
	}

	post, errs, err := h.svc.Create(userID, &f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "create failed"})
		return
	}
	if len(errs) > 0 {
		// 回显表单和字段错误，不写库
		c.JSON(http.StatusBadRequest, gin.H{
			"form":   gin.H{"text": f.Text, "group": f.Group},
			"errors": errs,
		})
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+post.Author.Username)
}

// Edit 编辑帖子。非作者静默跳回详情页，不产生写入。
func (h *PostHandler) Edit(c *gin.Context) {
	postID, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "post not found"})
		return
	}
	userID := userIDFromCtx(c)
	detailPath := fmt.Sprintf("/posts/%d", postID)

	if c.Request.Method == http.MethodGet {
		post, err := h.svc.ForEdit(userID, postID)
		if err != nil {
			if err == service.ErrForbidden {
				c.Redirect(http.StatusFound, detailPath)
				return
			}
			if notFoundAbort(c, err) {
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "edit failed"})
			return
		}
		groupStr := ""
		if post.GroupID != nil {
			groupStr = strconv.FormatUint(*post.GroupID, 10)
		}
		c.JSON(http.StatusOK, gin.H{
			"form":    gin.H{"text": post.Text, "group": groupStr, "image": post.Image},
			"is_edit": true,
		})
		return
	}

	var f form.PostForm
	if err := c.ShouldBind(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	if !h.bindImage(c, &f) {
		return
	}

	_, errs, err := h.svc.Update(userID, postID, &f)
	if err != nil {
		if err == service.ErrForbidden {
			c.Redirect(http.StatusFound, detailPath)
			return
		}
		if notFoundAbort(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "edit failed"})
		return
	}
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"form":    gin.H{"text": f.Text, "group": f.Group},
			"errors":  errs,
			"is_edit": true,
		})
		return
	}

	c.Redirect(http.StatusFound, detailPath)
}

// Feed 关注流接口
func (h *PostHandler) Feed(c *gin.Context) {
	userID := userIDFromCtx(c)
	posts, pg, err := h.svc.Feed(userID, c.Query("page"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.JSON(http.StatusOK, pagePayload(gin.H{"posts": posts}, pg))
}

// 图片可选，传了就落盘并把路径写进表单。返回 false 表示已经响应了错误。
func (h *PostHandler) bindImage(c *gin.Context, f *form.PostForm) bool {
	file, err := c.FormFile("image")
	if err != nil {
		// 没传图片
		return true
	}
	dst := filepath.Join(h.uploadDir, fmt.Sprintf("%d_%s", time.Now().UnixNano(), filepath.Base(file.Filename)))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "image upload failed"})
		return false
	}
	f.Image = dst
	return true
}

func pagePayload(body gin.H, pg pkg.Pagination) gin.H {
	body["page"] = pg.Page
	body["total_pages"] = pg.TotalPages
	body["has_next"] = pg.HasNext()
	body["has_prev"] = pg.HasPrev()
	return body
}
