package kvstore

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"costr/internal/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Compile-time contract assertion
var _ Store = (*RedisStore)(nil)

// RedisStore keeps every key as a plain redis string under prefix and
// publishes change payloads on the prefix's change channel.
type RedisStore struct {
	client *redis.Client
	prefix string
	origin string
	log    *logrus.Logger
	subs   subscribers

	mu     sync.Mutex
	pubsub *redis.PubSub
}

func NewRedisStore(client *redis.Client, prefix string, log *logrus.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
		origin: uuid.NewString(),
		log:    log,
	}
}

func (s *RedisStore) channel() string {
	return s.prefix + "kv-changes"
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return val, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	if err := s.client.Publish(ctx, s.channel(), encodeChange(s.origin, key)).Err(); err != nil {
		logger.LogError(s.log, "kvstore", "Set", key, nil, fmt.Errorf("publish failed: %w", err))
	}
	return nil
}

func (s *RedisStore) Subscribe(key string, fn func()) func() {
	return s.subs.add(key, fn)
}

// Listen subscribes to the change channel and relays payloads from other
// processes until Close is called.
func (s *RedisStore) Listen(ctx context.Context) error {
	ps := s.client.Subscribe(ctx, s.channel())
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return fmt.Errorf("failed to subscribe to %s: %w", s.channel(), err)
	}

	s.mu.Lock()
	s.pubsub = ps
	s.mu.Unlock()

	go func() {
		for msg := range ps.Channel() {
			dispatchExternal(&s.subs, s.origin, msg.Payload)
		}
	}()
	return nil
}

func (s *RedisStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pubsub != nil {
		err := s.pubsub.Close()
		s.pubsub = nil
		return err
	}
	return nil
}
