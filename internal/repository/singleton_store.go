package repository

import (
	"context"

	"costr/internal/kvstore"

	"github.com/sirupsen/logrus"
)

// SingletonStore persists one value under a single key, e.g. the app settings.
// It shares the failure semantics of RecordStore.
type SingletonStore[T any] struct {
	state *persisted[T]
}

// NewSingletonStore loads key from kv. initial supplies the value used when the
// key is absent or unreadable.
func NewSingletonStore[T any](kv kvstore.Store, key string, initial func() T, log *logrus.Logger, opts ...Option) *SingletonStore[T] {
	return &SingletonStore[T]{
		state: newPersisted(kv, key, initial, log, opts),
	}
}

func (s *SingletonStore[T]) Key() string {
	return s.state.key
}

// Get returns the current value. Reference fields are shared with the store;
// callers must not modify them.
func (s *SingletonStore[T]) Get() T {
	return s.state.get()
}

// Put replaces the value
func (s *SingletonStore[T]) Put(ctx context.Context, value T) {
	s.state.mutate(ctx, func(T) (T, bool) { return value, true })
}

func (s *SingletonStore[T]) Close() {
	s.state.close()
}
