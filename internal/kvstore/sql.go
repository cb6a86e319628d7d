package kvstore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"costr/internal/logger"
	"costr/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NotifyChannel is the postgres channel carrying change payloads
const NotifyChannel = "costr_kv_changes"

// Compile-time contract assertion
var _ Store = (*SQLStore)(nil)

// SQLStore keeps every key as one row of kv_entries. On postgres each write
// also raises a NOTIFY so other processes can refresh; on sqlite other
// processes find changes through Poll.
type SQLStore struct {
	db     *gorm.DB
	origin string
	log    *logrus.Logger
	subs   subscribers

	mu         sync.Mutex
	stopListen context.CancelFunc
}

func NewSQLStore(db *gorm.DB, log *logrus.Logger) *SQLStore {
	return &SQLStore{
		db:     db,
		origin: uuid.NewString(),
		log:    log,
	}
}

func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var entry model.KVEntry
	if err := s.db.WithContext(ctx).First(&entry, "entry_key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return []byte(entry.Value), true, nil
}

func (s *SQLStore) Set(ctx context.Context, key string, value []byte) error {
	entry := model.KVEntry{
		Key:       key,
		Value:     string(value),
		Origin:    s.origin,
		UpdatedAt: time.Now(),
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "origin", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}

	if s.db.Dialector.Name() == "postgres" {
		// Best-effort: the value is already committed
		if err := s.db.WithContext(ctx).Exec("SELECT pg_notify(?, ?)", NotifyChannel, encodeChange(s.origin, key)).Error; err != nil {
			logger.LogError(s.log, "kvstore", "Set", key, nil, fmt.Errorf("pg_notify failed: %w", err))
		}
	}
	return nil
}

func (s *SQLStore) Subscribe(key string, fn func()) func() {
	return s.subs.add(key, fn)
}

// Listen opens a dedicated postgres connection and relays NOTIFY payloads from
// other processes to subscribers until ctx is done or Close is called.
func (s *SQLStore) Listen(ctx context.Context, dsn string) error {
	listenCtx, cancel := context.WithCancel(ctx)

	conn, err := pgx.Connect(listenCtx, dsn)
	if err != nil {
		cancel()
		return fmt.Errorf("failed to open listen connection: %w", err)
	}
	if _, err := conn.Exec(listenCtx, "LISTEN "+NotifyChannel); err != nil {
		cancel()
		_ = conn.Close(context.Background())
		return fmt.Errorf("failed to listen on %s: %w", NotifyChannel, err)
	}

	s.mu.Lock()
	s.stopListen = cancel
	s.mu.Unlock()

	go func() {
		defer func() {
			_ = conn.Close(context.Background())
		}()
		for {
			n, err := conn.WaitForNotification(listenCtx)
			if err != nil {
				if listenCtx.Err() == nil {
					logger.LogError(s.log, "kvstore", "Listen", NotifyChannel, nil, err)
				}
				return
			}
			dispatchExternal(&s.subs, s.origin, n.Payload)
		}
	}()
	return nil
}

// Poll is the change feed for dialects without LISTEN/NOTIFY. Every interval
// it reads all rows and notifies subscribers of keys whose value was changed
// by another handle, until ctx is done or Close is called.
func (s *SQLStore) Poll(ctx context.Context, interval time.Duration) error {
	seen, err := s.snapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to start polling: %w", err)
	}

	pollCtx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.stopListen = cancel
	s.mu.Unlock()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-pollCtx.Done():
				return
			case <-ticker.C:
			}

			var entries []model.KVEntry
			if err := s.db.WithContext(pollCtx).Find(&entries).Error; err != nil {
				if pollCtx.Err() == nil {
					logger.LogError(s.log, "kvstore", "Poll", "kv_entries", nil, err)
				}
				continue
			}
			for _, e := range entries {
				if prev, ok := seen[e.Key]; ok && prev == e.Value {
					continue
				}
				seen[e.Key] = e.Value
				if e.Origin != s.origin {
					s.subs.notify(e.Key)
				}
			}
		}
	}()
	return nil
}

func (s *SQLStore) snapshot(ctx context.Context) (map[string]string, error) {
	var entries []model.KVEntry
	if err := s.db.WithContext(ctx).Find(&entries).Error; err != nil {
		return nil, err
	}
	seen := make(map[string]string, len(entries))
	for _, e := range entries {
		seen[e.Key] = e.Value
	}
	return seen, nil
}

func (s *SQLStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopListen != nil {
		s.stopListen()
		s.stopListen = nil
	}
	return nil
}
