package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"lullaby/internal/config"
)

// RedisCache Redis 客户端封装
// 目前用于 Refresh Token 的带过期存储
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache 创建 Redis 客户端
func NewRedisCache(cfg *config.RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// 测试连接
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{client: client}, nil
}

// Set 设置带过期时间的字符串值
func (c *RedisCache) Set(ctx context.Context, key, value string, expiration time.Duration) error {
	return c.client.Set(ctx, key, value, expiration).Err()
}

// Get 获取字符串值
func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	return c.client.Get(ctx, key).Result()
}

// Delete 删除指定的 key
func (c *RedisCache) Delete(ctx context.Context, keys ...string) error {
	return c.client.Del(ctx, keys...).Err()
}

// IsNil 判断错误是否为 key 不存在
func IsNil(err error) bool {
	return err == redis.Nil
}

// Close 关闭连接
func (c *RedisCache) Close() error {
	return c.client.Close()
}
