package auth

import (
	"context"
	"errors"
	"time"

	"lullaby/internal/pkg/cache"
)

// ErrTokenNotFound Refresh Token 不存在或已过期
var ErrTokenNotFound = errors.New("refresh token not found")

// refreshTokenKeyPrefix Redis key 前缀
const refreshTokenKeyPrefix = "refresh_token:"

// RefreshTokenRepo RefreshToken仓库
// 存储在 Redis 中，以 token 为 key、userID 为 value，过期由 Redis TTL 负责
type RefreshTokenRepo struct {
	cache *cache.RedisCache
}

// NewRefreshTokenRepo 创建RefreshToken仓库
func NewRefreshTokenRepo(c *cache.RedisCache) *RefreshTokenRepo {
	return &RefreshTokenRepo{cache: c}
}

// Save 保存RefreshToken（带过期时间）
func (r *RefreshTokenRepo) Save(ctx context.Context, token, userID string, ttl time.Duration) error {
	return r.cache.Set(ctx, refreshTokenKeyPrefix+token, userID, ttl)
}

// FindUserID 根据Token查询所属用户
func (r *RefreshTokenRepo) FindUserID(ctx context.Context, token string) (string, error) {
	userID, err := r.cache.Get(ctx, refreshTokenKeyPrefix+token)
	if err != nil {
		if cache.IsNil(err) {
			return "", ErrTokenNotFound
		}
		return "", err
	}
	return userID, nil
}

// Delete 删除Token（登出或轮换时调用）
func (r *RefreshTokenRepo) Delete(ctx context.Context, token string) error {
	return r.cache.Delete(ctx, refreshTokenKeyPrefix+token)
}
