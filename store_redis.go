package menucache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient captures the subset of redis.Client used by the store.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd
}

type redisStore struct {
	client     RedisClient
	defaultTTL time.Duration
	prefix     string
}

func newRedisStore(client RedisClient, defaultTTL time.Duration, prefix string) Store {
	if defaultTTL <= 0 {
		defaultTTL = defaultStoreTTL
	}
	if prefix == "" {
		prefix = defaultStorePrefix
	}
	return &redisStore{
		client:     client,
		defaultTTL: defaultTTL,
		prefix:     prefix,
	}
}

func (s *redisStore) Driver() Driver {
	return DriverRedis
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if s.client == nil {
		return nil, false, errors.New("redis client unavailable")
	}
	value, err := s.client.Get(ctx, s.storeKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return value, true, nil
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if s.client == nil {
		return errors.New("redis client unavailable")
	}
	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	return s.client.Set(ctx, s.storeKey(key), value, ttl).Err()
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	if s.client == nil {
		return errors.New("redis client unavailable")
	}
	return s.client.Del(ctx, s.storeKey(key)).Err()
}

func (s *redisStore) DeleteMany(ctx context.Context, keys ...string) error {
	if s.client == nil {
		return errors.New("redis client unavailable")
	}
	if len(keys) == 0 {
		return nil
	}
	storeKeys := make([]string, 0, len(keys))
	for _, key := range keys {
		storeKeys = append(storeKeys, s.storeKey(key))
	}
	return s.client.Del(ctx, storeKeys...).Err()
}

func (s *redisStore) Flush(ctx context.Context) error {
	if s.client == nil {
		return errors.New("redis client unavailable")
	}
	pattern := s.storeKey("*")
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := s.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

func (s *redisStore) storeKey(key string) string {
	return s.prefix + ":" + key
}
