package kvstore

import (
	"context"
	"sync"
)

// Compile-time contract assertion
var _ Store = (*Memory)(nil)

// MemoryBackend is the shared state behind any number of Memory handles
type MemoryBackend struct {
	mu      sync.RWMutex
	values  map[string][]byte
	handles map[*Memory]struct{}
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		values:  make(map[string][]byte),
		handles: make(map[*Memory]struct{}),
	}
}

// Open returns a new handle onto the backend
func (b *MemoryBackend) Open() *Memory {
	m := &Memory{backend: b}
	b.mu.Lock()
	b.handles[m] = struct{}{}
	b.mu.Unlock()
	return m
}

// NewMemory returns a handle onto a private backend
func NewMemory() *Memory {
	return NewMemoryBackend().Open()
}

// Memory is one handle onto a MemoryBackend
type Memory struct {
	backend *MemoryBackend
	subs    subscribers
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.backend.mu.RLock()
	defer m.backend.mu.RUnlock()
	v, ok := m.backend.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	b := m.backend
	b.mu.Lock()
	b.values[key] = append([]byte(nil), value...)
	others := make([]*Memory, 0, len(b.handles))
	for h := range b.handles {
		if h != m {
			others = append(others, h)
		}
	}
	b.mu.Unlock()

	for _, h := range others {
		h.subs.notify(key)
	}
	return nil
}

func (m *Memory) Subscribe(key string, fn func()) func() {
	return m.subs.add(key, fn)
}

// Close detaches the handle; it stops receiving change notifications
func (m *Memory) Close() error {
	m.backend.mu.Lock()
	delete(m.backend.handles, m)
	m.backend.mu.Unlock()
	return nil
}
