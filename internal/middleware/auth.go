package middleware

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"Lee_Blog/internal/pkg"
	"Lee_Blog/internal/repository/redis"
)

const ContextUserIDKey = "user_id"

// LoginPath 登录流程入口，带 next 参数回跳
const LoginPath = "/auth/login"

var errNoToken = errors.New("no token")

// token 可以走 Bearer 头，也可以走 cookie（页面跳转流程用 cookie）
func extractToken(c *gin.Context) (string, error) {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return "", errNoToken
		}
		return parts[1], nil
	}
	if cookie, err := c.Cookie("access_token"); err == nil && cookie != "" {
		return cookie, nil
	}
	return "", errNoToken
}

// 校验 token 本身 + redis 登录态，通过则顺延过期时间
func authenticate(c *gin.Context) (uint64, error) {
	tokenStr, err := extractToken(c)
	if err != nil {
		return 0, err
	}

	claims, err := pkg.ParseAccess(tokenStr)
	if err != nil {
		return 0, err
	}

	ctx := c.Request.Context()
	userRep := &redis.UserRepository{}
	originToken, err := userRep.GetUserToken(ctx, claims.UserID)
	if err != nil {
		return 0, err
	}
	if originToken != tokenStr {
		return 0, errors.New("account has been logging elsewhere")
	}

	if err = userRep.ExtendUserToken(ctx, claims.UserID); err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

// LoginRequired 页面流程的登录校验：没有有效登录态时 302 到登录流程，
// next 指回原路径。
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := authenticate(c)
		if err != nil {
			next := url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusFound, LoginPath+"?next="+next)
			c.Abort()
			return
		}
		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}

// OptionalAuth 公开页面的可选登录态：有有效 token 就注入 user_id，
// 没有也放行。
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, err := authenticate(c); err == nil {
			c.Set(ContextUserIDKey, userID)
		}
		c.Next()
	}
}

// AuthMiddleware JSON API 的登录校验，失败直接 401
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := authenticate(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "invalid or expired token"})
			return
		}
		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}
