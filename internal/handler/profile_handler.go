package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"Lee_Blog/internal/service"
)

type ProfileHandler struct {
	svc *service.PostService
}

func NewProfileHandler(svc *service.PostService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

// Show 作者主页：作者信息 + 帖子分页 + 当前请求者是否已关注
func (h *ProfileHandler) Show(c *gin.Context) {
	viewerID := userIDFromCtx(c)

	author, posts, pg, following, err := h.svc.Profile(
		c.Request.Context(), c.Param("username"), c.Query("page"), viewerID)
	if err != nil {
		if notFoundAbort(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "profile failed"})
		return
	}

	c.JSON(http.StatusOK, pagePayload(gin.H{
		"author":    author,
		"posts":     posts,
		"following": following,
	}, pg))
}
