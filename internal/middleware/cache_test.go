package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// mapCache 内存版 PageCache，测试里不关心 TTL 到期
type mapCache struct {
	data map[string][]byte
	ttl  map[string]time.Duration
}

func newMapCache() *mapCache {
	return &mapCache{data: map[string][]byte{}, ttl: map[string]time.Duration{}}
}

func (m *mapCache) Get(_ context.Context, key string) ([]byte, bool) {
	body, ok := m.data[key]
	return body, ok
}

func (m *mapCache) Set(_ context.Context, key string, body []byte, ttl time.Duration) error {
	m.data[key] = body
	m.ttl[key] = ttl
	return nil
}

func newCachedRouter(cache PageCache, hits *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := func(c *gin.Context) {
		*hits++
		c.JSON(http.StatusOK, gin.H{"hits": *hits})
	}
	r.GET("/", CachePage(cache, 20*time.Second), handler)
	r.POST("/", CachePage(cache, 20*time.Second), handler)
	return r
}

func do(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCachePageServesFrozenBody(t *testing.T) {
	cache := newMapCache()
	hits := 0
	r := newCachedRouter(cache, &hits)

	first := do(r, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, first.Code)

	// 第二次命中缓存：handler 不执行，响应体与第一次逐字节一致
	second := do(r, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, second.Code)
	require.Equal(t, 1, hits)
	require.Equal(t, first.Body.String(), second.Body.String())
	require.Equal(t, 20*time.Second, cache.ttl["/"])
}

func TestCachePageKeyIncludesQuery(t *testing.T) {
	cache := newMapCache()
	hits := 0
	r := newCachedRouter(cache, &hits)

	do(r, http.MethodGet, "/?page=1")
	do(r, http.MethodGet, "/?page=2")
	require.Equal(t, 2, hits)
	require.Contains(t, cache.data, "/?page=1")
	require.Contains(t, cache.data, "/?page=2")
}

func TestCachePageSkipsNonGet(t *testing.T) {
	cache := newMapCache()
	hits := 0
	r := newCachedRouter(cache, &hits)

	do(r, http.MethodPost, "/")
	do(r, http.MethodPost, "/")
	require.Equal(t, 2, hits)
	require.Empty(t, cache.data)
}

func TestCachePageSkipsErrorResponses(t *testing.T) {
	cache := newMapCache()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/boom", CachePage(cache, 20*time.Second), func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "boom"})
	})

	w := do(r, http.MethodGet, "/boom")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Empty(t, cache.data)
}

func TestCachedBodyStableAcrossWrites(t *testing.T) {
	cache := newMapCache()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	version := 0
	r.GET("/posts", CachePage(cache, 20*time.Second), func(c *gin.Context) {
		version++
		c.JSON(http.StatusOK, gin.H{"version": version})
	})

	first := do(r, http.MethodGet, "/posts")
	version = 99 // 模拟后续写操作改了底层数据

	// TTL 内仍然回放旧页面
	second := do(r, http.MethodGet, "/posts")
	require.Equal(t, first.Body.String(), second.Body.String())
	require.JSONEq(t, `{"version":1}`, first.Body.String())
}
