package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"Lee_Blog/internal/service"
)

type FollowHandler struct {
	svc *service.FollowService
}

func NewFollowHandler(svc *service.FollowService) *FollowHandler {
	return &FollowHandler{svc: svc}
}

// Follow 关注作者后跳关注流。重复关注、关注自己都是无操作。
func (h *FollowHandler) Follow(c *gin.Context) {
	userID := userIDFromCtx(c)
	_, err := h.svc.Follow(c.Request.Context(), userID, c.Param("username"))
	if err != nil {
		if notFoundAbort(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "follow failed"})
		return
	}
	c.Redirect(http.StatusFound, "/follow")
}

// Unfollow 取关后跳关注流，关系不存在时无操作
func (h *FollowHandler) Unfollow(c *gin.Context) {
	userID := userIDFromCtx(c)
	_, err := h.svc.Unfollow(c.Request.Context(), userID, c.Param("username"))
	if err != nil {
		if notFoundAbort(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "unfollow failed"})
		return
	}
	c.Redirect(http.StatusFound, "/follow")
}
