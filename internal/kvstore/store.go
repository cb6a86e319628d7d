// Package kvstore holds the key-value backends the record stores persist into.
//
// Subscribers are only told about writes made through another handle or
// process, never about their own, the same way a browser only raises storage
// events in the other tabs.
package kvstore

import (
	"context"
	"strings"
	"sync"
)

// Store is the persistence capability injected into record stores
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	// Subscribe registers fn for external changes to key and returns a cancel func
	Subscribe(key string, fn func()) (cancel func())
	Close() error
}

type subscribers struct {
	mu    sync.Mutex
	next  int
	byKey map[string]map[int]func()
}

func (s *subscribers) add(key string, fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.byKey == nil {
		s.byKey = make(map[string]map[int]func())
	}
	if s.byKey[key] == nil {
		s.byKey[key] = make(map[int]func())
	}
	id := s.next
	s.next++
	s.byKey[key][id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.byKey[key], id)
		})
	}
}

// notify calls every callback for key outside the lock
func (s *subscribers) notify(key string) {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.byKey[key]))
	for _, fn := range s.byKey[key] {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Change payloads travel as "<origin>|<key>" on NOTIFY and pub/sub channels.
func encodeChange(origin, key string) string {
	return origin + "|" + key
}

func decodeChange(payload string) (origin, key string, ok bool) {
	origin, key, ok = strings.Cut(payload, "|")
	if !ok || key == "" {
		return "", "", false
	}
	return origin, key, true
}

// dispatchExternal forwards a change payload unless it was written by self
func dispatchExternal(subs *subscribers, self, payload string) {
	origin, key, ok := decodeChange(payload)
	if !ok || origin == self {
		return
	}
	subs.notify(key)
}
