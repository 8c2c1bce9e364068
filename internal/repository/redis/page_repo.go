package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const PageCachePrefix = "cache:page"

// PageRepository 整页渲染结果缓存。只有 get/set，过期交给 TTL，
// 写操作不做失效：读到的页面最多落后一个 TTL，这是接受的行为。
type PageRepository struct{}

func pageKey(key string) string {
	return PageCachePrefix + ":" + key
}

func (r *PageRepository) Get(ctx context.Context, key string) ([]byte, bool) {
	body, err := Client.Get(ctx, pageKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		// 缓存故障按未命中处理，请求继续走数据库
		return nil, false
	}
	return body, true
}

func (r *PageRepository) Set(ctx context.Context, key string, body []byte, ttl time.Duration) error {
	return Client.Set(ctx, pageKey(key), body, ttl).Err()
}
