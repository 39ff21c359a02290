// internal/cache/redis.go
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"womenrisehub/internal/common/config"
	apperrors "womenrisehub/internal/common/errors"
	"womenrisehub/internal/models"
)

// RedisSnapshots persists the project snapshot in Redis.
type RedisSnapshots struct {
	Client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedis creates a Redis-backed snapshot store.
func NewRedis(cfg config.RedisConfig, cacheCfg config.CacheConfig) *RedisSnapshots {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})
	return NewRedisWithClient(rdb, cacheCfg)
}

// NewRedisWithClient wraps an existing client (tests use miniredis here).
func NewRedisWithClient(client *redis.Client, cacheCfg config.CacheConfig) *RedisSnapshots {
	key := cacheCfg.Key
	if key == "" {
		key = "womenrisehub:projects"
	}
	return &RedisSnapshots{
		Client: client,
		key:    key,
		ttl:    cacheCfg.Expiry(),
	}
}

// Ping tests the Redis connection.
func (s *RedisSnapshots) Ping(ctx context.Context) error {
	if err := s.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (s *RedisSnapshots) Close() error {
	if s.Client != nil {
		return s.Client.Close()
	}
	return nil
}

func (s *RedisSnapshots) Load(ctx context.Context) ([]models.Project, error) {
	val, err := s.Client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewStorageError("load", err)
	}
	var projects []models.Project
	if err := json.Unmarshal([]byte(val), &projects); err != nil {
		return nil, apperrors.NewStorageError("load", err)
	}
	return projects, nil
}

func (s *RedisSnapshots) Store(ctx context.Context, projects []models.Project) error {
	data, err := json.Marshal(projects)
	if err != nil {
		return apperrors.NewStorageError("store", err)
	}
	if err := s.Client.Set(ctx, s.key, data, s.ttl).Err(); err != nil {
		return apperrors.NewStorageError("store", err)
	}
	return nil
}

func (s *RedisSnapshots) Clear(ctx context.Context) error {
	if err := s.Client.Del(ctx, s.key).Err(); err != nil {
		return apperrors.NewStorageError("clear", err)
	}
	return nil
}
