package storage

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists the slots in Redis, for deployments that want the
// storefront state to outlive the process's data directory.
type RedisStore struct {
	Client *redis.Client
	ctx    context.Context
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		Client: client,
		ctx:    context.Background(),
	}
}

func (s *RedisStore) Get(key string) ([]byte, error) {
	data, err := s.Client.Get(s.ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *RedisStore) Set(key string, value []byte) error {
	return s.Client.Set(s.ctx, key, value, 0).Err()
}

func (s *RedisStore) Delete(key string) error {
	return s.Client.Del(s.ctx, key).Err()
}

var _ KV = (*RedisStore)(nil)
