package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrTokenNotFound    = errors.New("token not found")
	ErrRedisUnavailable = errors.New("redis unavailable")
	ErrExtendFailed     = errors.New("token extend failed")
	ErrTokenDeleted     = errors.New("token delete failed")
)

const (
	userTokenPrefix = "login:user:token"
	// UserTokenTTL 登录态有效期，每次通过校验顺延一个周期
	UserTokenTTL = 30 * time.Minute
)

// UserRepository 登录态 token 存储，一个用户同时只保留一个有效 token
type UserRepository struct{}

func userTokenKey(userID uint64) string {
	return fmt.Sprintf("%s:%d", userTokenPrefix, userID)
}

func (r *UserRepository) AddUserToken(ctx context.Context, userID uint64, token string) error {
	if err := Client.Set(ctx, userTokenKey(userID), token, UserTokenTTL).Err(); err != nil {
		return ErrRedisUnavailable
	}
	return nil
}

func (r *UserRepository) GetUserToken(ctx context.Context, userID uint64) (string, error) {
	token, err := Client.Get(ctx, userTokenKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		return "", ErrRedisUnavailable
	}
	return token, nil
}

func (r *UserRepository) ExtendUserToken(ctx context.Context, userID uint64) error {
	ok, err := Client.Expire(ctx, userTokenKey(userID), UserTokenTTL).Result()
	if err != nil {
		return ErrExtendFailed
	}
	if !ok {
		// key 已经过期，登录态随之失效
		return ErrTokenNotFound
	}
	return nil
}

func (r *UserRepository) DeleteUserToken(ctx context.Context, userID uint64) error {
	if err := Client.Del(ctx, userTokenKey(userID)).Err(); err != nil {
		return ErrTokenDeleted
	}
	return nil
}
