package main

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"costr/internal/config"
	"costr/internal/kvstore"
	"costr/internal/logger"
)

func TestOpenStoreRejectsUnknownDriver(t *testing.T) {
	cfg := config.Config{KVDriver: "postgress"}
	if _, err := openStore(context.Background(), cfg, logger.Discard()); err == nil {
		t.Fatal("expected an error for an unknown driver")
	}
}

func TestOpenStoreDrivers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mem, err := openStore(ctx, config.Config{KVDriver: config.DriverMemory}, logger.Discard())
	if err != nil {
		t.Fatalf("memory: %v", err)
	}
	if _, ok := mem.(*kvstore.Memory); !ok {
		t.Fatalf("memory driver returned %T", mem)
	}

	cfg := config.Config{
		KVDriver:     config.DriverSQLite,
		SQLitePath:   filepath.Join(t.TempDir(), "costr.db"),
		PollInterval: time.Second,
	}
	sqlStore, err := openStore(ctx, cfg, logger.Discard())
	if err != nil {
		t.Fatalf("sqlite: %v", err)
	}
	defer func() {
		_ = sqlStore.Close()
	}()
	if _, ok := sqlStore.(*kvstore.SQLStore); !ok {
		t.Fatalf("sqlite driver returned %T", sqlStore)
	}
}
