package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"Lee_Blog/internal/config"
	"Lee_Blog/internal/handler"
	"Lee_Blog/internal/middleware"
	"Lee_Blog/internal/repository/redis"
	"Lee_Blog/internal/service"
)

func InitRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	emailSvc := service.NewEmailService(cfg.SMTP)
	postSvc := service.NewPostService(db, cfg.PageSize)
	commentSvc := service.NewCommentService(db)

	user := handler.NewUserHandler(service.NewUserService(db, emailSvc))
	email := handler.NewEmailHandler(emailSvc)
	post := handler.NewPostHandler(postSvc, commentSvc, cfg.UploadDir)
	profile := handler.NewProfileHandler(postSvc)
	comment := handler.NewCommentHandler(commentSvc)
	follow := handler.NewFollowHandler(service.NewFollowService(db))

	login := middleware.LoginRequired()
	pageCache := middleware.CachePage(&redis.PageRepository{}, cfg.IndexCacheTTL)

	// 页面流程
	r.GET("/", pageCache, post.Index)
	r.GET("/group/:slug", post.GroupList)
	r.GET("/profile/:username", middleware.OptionalAuth(), profile.Show)
	r.GET("/posts/:id", post.Detail)

	r.GET("/create", login, post.Create)
	r.POST("/create", login, post.Create)
	r.GET("/posts/:id/edit", login, post.Edit)
	r.POST("/posts/:id/edit", login, post.Edit)
	r.POST("/posts/:id/comment", login, comment.Add)
	r.GET("/follow", login, post.Feed)
	r.GET("/profile/:username/follow", login, follow.Follow)
	r.GET("/profile/:username/unfollow", login, follow.Unfollow)

	// 邮件相关接口
	emailGroup := r.Group("/api/email")
	{
		emailGroup.POST("/:scope/code", email.SendCode)
	}

	// 用户相关接口
	userGroup := r.Group("/api/user")
	{
		userGroup.POST("/register", user.Register)
		userGroup.POST("/login", user.Login)
		userGroup.POST("/reset", user.ResetPassword)
	}

	// token相关接口
	tokenGroup := r.Group("/api/token")
	{
		tokenGroup.POST("/refresh", user.TokenRefresh)
	}

	// 登录态接口
	authGroup := r.Group("/api/auth")
	authGroup.Use(middleware.AuthMiddleware())
	{
		authGroup.POST("/logout", user.Logout)
		authGroup.POST("/change-password", user.ChangePassword)
	}

	// 自定义 404 页
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "page not found"})
	})

	return r
}
