package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Key prefixes namespacing each store in a shared Redis database.
const (
	DefaultSessionPrefix = "fraudcheck:session:"
	DefaultLimiterPrefix = "fraudcheck:limiter:"
)

// Storage adapts a Redis client to fiber.Storage so session data and rate
// limiter counters can live in Redis.
type Storage struct {
	client  *redis.Client
	prefix  string
	timeout time.Duration
}

func NewStorage(client *redis.Client, prefix string) *Storage {
	return &Storage{
		client:  client,
		prefix:  prefix,
		timeout: 3 * time.Second,
	}
}

// Get returns nil, nil when the key does not exist.
func (s *Storage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	ctx, cancel := s.context()
	defer cancel()

	val, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return val, err
}

func (s *Storage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	ctx, cancel := s.context()
	defer cancel()

	return s.client.Set(ctx, s.key(key), val, exp).Err()
}

func (s *Storage) Delete(key string) error {
	if key == "" {
		return nil
	}
	ctx, cancel := s.context()
	defer cancel()

	return s.client.Del(ctx, s.key(key)).Err()
}

// Reset removes every key under the storage prefix.
func (s *Storage) Reset() error {
	ctx := context.Background()
	iter := s.client.Scan(ctx, 0, s.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (s *Storage) Close() error {
	return s.client.Close()
}

func (s *Storage) key(k string) string {
	return s.prefix + k
}

func (s *Storage) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}
