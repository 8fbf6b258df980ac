package endpoint

import (
	"context"

	backend "github.com/redis/go-redis/v9"

	"github.com/Iron-Ham/tripplan/internal/errors"
)

// DefaultRedisPrefix is prepended to StorageKey when no prefix is configured.
const DefaultRedisPrefix = "tripplan:"

// RedisStore keeps the endpoint in a single redis string key so several
// machines can share the last-used endpoint.
type RedisStore struct {
	client *backend.Client
	prefix string
}

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		s.prefix = prefix
	}
}

// NewRedisStore connects to the redis server at address.
func NewRedisStore(address, password string, db int, opts ...RedisOption) *RedisStore {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewRedisStoreFromClient(rdb, opts...)
}

// NewRedisStoreFromClient wraps an existing client.
func NewRedisStoreFromClient(client *backend.Client, opts ...RedisOption) *RedisStore {
	s := &RedisStore{
		client: client,
		prefix: DefaultRedisPrefix,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the redis key holding the endpoint.
func (s *RedisStore) Key() string {
	return s.prefix + StorageKey
}

// Load implements Store.
func (s *RedisStore) Load(ctx context.Context) (string, error) {
	val, err := s.client.Get(ctx, s.Key()).Result()
	if err == backend.Nil {
		return DefaultEndpoint, nil
	}
	if err != nil {
		return DefaultEndpoint, errors.NewStoreError("get endpoint", errors.Join(errors.ErrStoreUnavailable, err)).WithBackend("redis")
	}
	return orDefault(val), nil
}

// Save implements Store.
func (s *RedisStore) Save(ctx context.Context, value string) error {
	if err := s.client.Set(ctx, s.Key(), Normalize(value), 0).Err(); err != nil {
		return errors.NewStoreError("set endpoint", errors.Join(errors.ErrStoreUnavailable, err)).WithBackend("redis")
	}
	return nil
}

// Close releases the redis connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
