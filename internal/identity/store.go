package identity

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// The display name is stored under one fixed key per device, the way a
// browser keeps it in local storage. It is written when first prompted and
// cleared on session teardown.
const nameKey = "playerName"

// Store is the durable local key-value store for the session identity.
type Store interface {
	LoadName(ctx context.Context) (string, error)
	SaveName(ctx context.Context, name string) error
	ClearName(ctx context.Context) error
}

// RedisStore keeps the identity in redis, namespaced by device ID so
// multiple clients can share one redis.
type RedisStore struct {
	rdclient *redis.Client
	deviceID string
}

func NewRedisStore(redisAddr string, redisPW string, redisDB int, deviceID string) *RedisStore {
	rdclient := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPW,
		DB:       redisDB,
	})
	return &RedisStore{
		rdclient: rdclient,
		deviceID: deviceID,
	}
}

func (s *RedisStore) key() string {
	return fmt.Sprintf("tableclient:%s:%s", s.deviceID, nameKey)
}

// LoadName returns "" without error when no name has been stored yet.
func (s *RedisStore) LoadName(ctx context.Context) (string, error) {
	name, err := s.rdclient.Get(ctx, s.key()).Result()
	if err == redis.Nil {
		return "", nil
	} else if err != nil {
		return "", err
	}
	return name, nil
}

func (s *RedisStore) SaveName(ctx context.Context, name string) error {
	return s.rdclient.Set(ctx, s.key(), name, 0).Err()
}

func (s *RedisStore) ClearName(ctx context.Context) error {
	return s.rdclient.Del(ctx, s.key()).Err()
}

// MemoryStore is the redis-less fallback. The identity then lives only as
// long as the process.
type MemoryStore struct {
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[string]string),
	}
}

func (s *MemoryStore) LoadName(ctx context.Context) (string, error) {
	return s.values[nameKey], nil
}

func (s *MemoryStore) SaveName(ctx context.Context, name string) error {
	s.values[nameKey] = name
	return nil
}

func (s *MemoryStore) ClearName(ctx context.Context) error {
	delete(s.values, nameKey)
	return nil
}
