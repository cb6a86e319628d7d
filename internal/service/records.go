package service

import (
	"context"
	"reflect"
	"strings"

	"costr/internal/repository"
)

// The record stores log write failures instead of returning them, so every
// mutation is confirmed by reading the record back.

func addRecord[T repository.Record](ctx context.Context, store *repository.RecordStore[T], item T) error {
	store.Add(ctx, item)
	if _, ok := store.GetByID(item.RecordID()); !ok {
		return ErrNotSaved
	}
	return nil
}

func updateRecord[T repository.Record](ctx context.Context, store *repository.RecordStore[T], item T) error {
	store.Update(ctx, item)
	got, ok := store.GetByID(item.RecordID())
	if !ok || !reflect.DeepEqual(got, item) {
		return ErrNotSaved
	}
	return nil
}

func deleteRecord[T repository.Record](ctx context.Context, store *repository.RecordStore[T], id string) error {
	if _, ok := store.GetByID(id); !ok {
		return ErrNotFound
	}
	store.Delete(ctx, id)
	if _, ok := store.GetByID(id); ok {
		return ErrNotSaved
	}
	return nil
}

func findRecord[T repository.Record](store *repository.RecordStore[T], id string) (T, error) {
	item, ok := store.GetByID(id)
	if !ok {
		return item, ErrNotFound
	}
	return item, nil
}

// containsFold reports whether any of fields contains query, ignoring case
func containsFold(query string, fields ...string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}
