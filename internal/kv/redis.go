package kv

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/skillbridge/skillbridge-backend/internal/logger"
	"github.com/skillbridge/skillbridge-backend/internal/utils"
)

// RedisStore backs Store with redis. Keys are namespaced with a fixed prefix
// so the instance can be shared with other services.
type RedisStore struct {
	log    *logger.Logger
	rdb    *goredis.Client
	prefix string
}

func NewRedisStore(log *logger.Logger) (*RedisStore, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(utils.GetEnv("REDIS_ADDR", "", log))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	prefix := strings.TrimSpace(utils.GetEnv("REDIS_KEY_PREFIX", "skillbridge", log))

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisStore{
		log:    log.With("service", "RedisStore"),
		rdb:    rdb,
		prefix: prefix,
	}, nil
}

func (s *RedisStore) key(key string) string {
	return s.prefix + ":" + key
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	if s == nil || s.rdb == nil {
		return nil, fmt.Errorf("redis store not initialized")
	}
	val, err := s.rdb.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return val, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if s == nil || s.rdb == nil {
		return fmt.Errorf("redis store not initialized")
	}
	return s.rdb.Set(ctx, s.key(key), value, 0).Err()
}

func (s *RedisStore) Remove(ctx context.Context, key string) error {
	if s == nil || s.rdb == nil {
		return fmt.Errorf("redis store not initialized")
	}
	return s.rdb.Del(ctx, s.key(key)).Err()
}

func (s *RedisStore) Close() error {
	if s == nil || s.rdb == nil {
		return nil
	}
	return s.rdb.Close()
}
