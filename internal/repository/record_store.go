package repository

import (
	"context"

	"costr/internal/kvstore"

	"github.com/sirupsen/logrus"
)

// Record is anything stored in a RecordStore
type Record interface {
	RecordID() string
}

// RecordStore is an ordered collection of records persisted as one JSON array
// under a single key. Mutators do not return errors: a failed write is logged
// and the previous collection stays in place, so callers that must know the
// outcome read it back with GetByID.
type RecordStore[T Record] struct {
	state *persisted[[]T]
}

// NewRecordStore loads key from kv, falling back to an empty collection when
// the key is absent or unreadable, and follows external changes to it.
func NewRecordStore[T Record](kv kvstore.Store, key string, log *logrus.Logger, opts ...Option) *RecordStore[T] {
	return &RecordStore[T]{
		state: newPersisted(kv, key, func() []T { return []T{} }, log, opts),
	}
}

// Key returns the storage key backing the store
func (s *RecordStore[T]) Key() string {
	return s.state.key
}

// List returns a copy of the collection in insertion order
func (s *RecordStore[T]) List() []T {
	items := s.state.get()
	out := make([]T, len(items))
	copy(out, items)
	return out
}

// GetByID returns the first record with the given id
func (s *RecordStore[T]) GetByID(id string) (T, bool) {
	for _, item := range s.state.get() {
		if item.RecordID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Add appends item. Ids are not checked for uniqueness.
func (s *RecordStore[T]) Add(ctx context.Context, item T) {
	s.state.mutate(ctx, func(cur []T) ([]T, bool) {
		next := make([]T, 0, len(cur)+1)
		next = append(next, cur...)
		return append(next, item), true
	})
}

// Update replaces every record whose id matches item's id, in place.
// Nothing is written when no record matches.
func (s *RecordStore[T]) Update(ctx context.Context, item T) {
	id := item.RecordID()
	s.state.mutate(ctx, func(cur []T) ([]T, bool) {
		next := make([]T, len(cur))
		copy(next, cur)
		found := false
		for i := range next {
			if next[i].RecordID() == id {
				next[i] = item
				found = true
			}
		}
		return next, found
	})
}

// Delete removes every record with the given id.
// Nothing is written when no record matches.
func (s *RecordStore[T]) Delete(ctx context.Context, id string) {
	s.state.mutate(ctx, func(cur []T) ([]T, bool) {
		next := make([]T, 0, len(cur))
		for _, item := range cur {
			if item.RecordID() != id {
				next = append(next, item)
			}
		}
		return next, len(next) != len(cur)
	})
}

// Close stops following external changes
func (s *RecordStore[T]) Close() {
	s.state.close()
}
