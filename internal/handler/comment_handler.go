package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"Lee_Blog/internal/form"
	"Lee_Blog/internal/service"
)

type CommentHandler struct {
	svc *service.CommentService
}

func NewCommentHandler(svc *service.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// Add 给帖子加评论。不论校验是否通过都跳回详情页，
// 校验失败时什么都不写库。
func (h *CommentHandler) Add(c *gin.Context) {
	postID, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "post not found"})
		return
	}
	userID := userIDFromCtx(c)

	var f form.CommentForm
	if err := c.ShouldBind(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	_, err = h.svc.Add(userID, postID, &f)
	if err != nil {
		if notFoundAbort(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "comment failed"})
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", postID))
}
