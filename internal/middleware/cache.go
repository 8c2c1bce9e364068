package middleware

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// PageCache 整页缓存的最小能力集：get/set，过期由实现的 TTL 负责
type PageCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, body []byte, ttl time.Duration) error
}

// CachePage 整页缓存中间件，key 为 path+query。
// 命中时直接回放冻结的渲染结果，后续 handler 不会执行；
// 写操作不做失效，页面最多落后一个 TTL。
func CachePage(cache PageCache, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := c.Request.URL.Path
		if q := c.Request.URL.RawQuery; q != "" {
			key += "?" + q
		}

		if body, ok := cache.Get(c.Request.Context(), key); ok {
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			c.Abort()
			return
		}

		w := &cacheWriter{ResponseWriter: c.Writer, buf: &bytes.Buffer{}}
		c.Writer = w
		c.Next()

		if w.Status() == http.StatusOK {
			_ = cache.Set(c.Request.Context(), key, w.buf.Bytes(), ttl)
		}
	}
}

type cacheWriter struct {
	gin.ResponseWriter
	buf *bytes.Buffer
}

func (w *cacheWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *cacheWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
