package repository

import (
	"context"
	"encoding/json"
	"sync"

	"costr/internal/kvstore"
	"costr/internal/logger"

	"github.com/sirupsen/logrus"
)

// Option configures a store
type Option func(*options)

type options struct {
	onChange func(key string)
}

// WithChangeHook registers fn to run after every local commit and every reload
// caused by an external change
func WithChangeHook(fn func(key string)) Option {
	return func(o *options) { o.onChange = fn }
}

// persisted keeps one JSON value in memory and in the backing store.
// Writers are serialised by writeMu and hold it across the store write; readers
// and external reloads only take mu, so a reload never waits on a write.
type persisted[T any] struct {
	key     string
	kv      kvstore.Store
	log     *logrus.Logger
	initial func() T
	opts    options

	writeMu sync.Mutex
	mu      sync.RWMutex
	value   T
	cancel  func()
}

func newPersisted[T any](kv kvstore.Store, key string, initial func() T, log *logrus.Logger, opts []Option) *persisted[T] {
	p := &persisted[T]{
		key:     key,
		kv:      kv,
		log:     log,
		initial: initial,
		value:   initial(),
	}
	for _, opt := range opts {
		opt(&p.opts)
	}

	if v, err := p.load(context.Background()); err != nil {
		logger.LogError(p.log, "repository", "load", key, nil, err)
	} else {
		p.value = v
	}

	p.cancel = kv.Subscribe(key, p.refresh)
	return p
}

func (p *persisted[T]) load(ctx context.Context) (T, error) {
	raw, ok, err := p.kv.Get(ctx, p.key)
	if err != nil {
		var zero T
		return zero, &PersistenceReadError{Key: p.key, Err: err}
	}
	if !ok {
		return p.initial(), nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		var zero T
		return zero, &PersistenceReadError{Key: p.key, Err: err}
	}
	return v, nil
}

// refresh replaces the snapshot with whatever the backing store now holds
func (p *persisted[T]) refresh() {
	v, err := p.load(context.Background())
	if err != nil {
		logger.LogError(p.log, "repository", "refresh", p.key, nil, err)
		return
	}
	p.mu.Lock()
	p.value = v
	p.mu.Unlock()
	p.changed()
}

func (p *persisted[T]) get() T {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.value
}

// mutate derives the next value from the current one and commits it. fn must
// not modify cur in place; returning false leaves everything untouched.
func (p *persisted[T]) mutate(ctx context.Context, fn func(cur T) (T, bool)) {
	p.writeMu.Lock()
	defer p.writeMu.Unlock()

	next, ok := fn(p.get())
	if !ok {
		return
	}

	raw, err := json.Marshal(next)
	if err != nil {
		logger.LogError(p.log, "repository", "mutate", p.key, nil, &PersistenceWriteError{Key: p.key, Err: err})
		return
	}
	if err := p.kv.Set(ctx, p.key, raw); err != nil {
		logger.LogError(p.log, "repository", "mutate", p.key, nil, &PersistenceWriteError{Key: p.key, Err: err})
		return
	}

	p.mu.Lock()
	p.value = next
	p.mu.Unlock()
	p.changed()
}

func (p *persisted[T]) changed() {
	if p.opts.onChange != nil {
		p.opts.onChange(p.key)
	}
}

func (p *persisted[T]) close() {
	if p.cancel != nil {
		p.cancel()
	}
}
