package service

import (
	"context"
	"errors"
	"testing"

	"costr/internal/kvstore"
	"costr/internal/logger"
	"costr/internal/model"
	"costr/internal/repository"
	"costr/internal/theme"
)

type recordingApplier struct {
	themes []theme.Theme
}

func (r *recordingApplier) ApplyTheme(t theme.Theme) {
	r.themes = append(r.themes, t)
}

// brokenStore accepts reads but fails every write once armed
type brokenStore struct {
	*kvstore.Memory
	broken bool
}

func (b *brokenStore) Set(ctx context.Context, key string, value []byte) error {
	if b.broken {
		return errors.New("quota exceeded")
	}
	return b.Memory.Set(ctx, key, value)
}

type fixture struct {
	kv        *brokenStore
	applier   *recordingApplier
	settings  SettingsService
	documents DocumentService
	customers CustomerService
	inventory InventoryService
	payments  PaymentService
	stats     StatisticsService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureOn(t, &brokenStore{Memory: kvstore.NewMemory()})
}

func newFixtureOn(t *testing.T, kv *brokenStore) *fixture {
	t.Helper()
	log := logger.Discard()

	settingsStore := repository.NewSingletonStore(kv, model.KeyAppSettings, model.DefaultSettings, log)
	docStore := repository.NewRecordStore[model.Document](kv, model.KeyDocuments, log)
	customerStore := repository.NewRecordStore[model.Customer](kv, model.KeyCustomers, log)
	itemStore := repository.NewRecordStore[model.InventoryItem](kv, model.KeyInventoryItems, log)
	paymentStore := repository.NewRecordStore[model.PaymentTransaction](kv, model.KeyPaymentTransactions, log)

	applier := &recordingApplier{}
	settings := NewSettingsService(settingsStore, applier)

	return &fixture{
		kv:        kv,
		applier:   applier,
		settings:  settings,
		documents: NewDocumentService(docStore, customerStore, settings),
		customers: NewCustomerService(customerStore),
		inventory: NewInventoryService(itemStore),
		payments:  NewPaymentService(paymentStore, settings),
		stats:     NewStatisticsService(docStore, paymentStore, itemStore, settings),
	}
}

// setUp completes first-run setup with the values used across the tests
func (f *fixture) setUp(t *testing.T) model.AppSettings {
	t.Helper()
	s, err := f.settings.CompleteSetup(context.Background(), SetupRequest{
		CompanyName:    "Acme",
		CompanyEmail:   "a@acme.com",
		Currency:       "USD",
		PrimaryColor:   "#111111",
		SecondaryColor: "#222222",
	})
	if err != nil {
		t.Fatalf("CompleteSetup: %v", err)
	}
	return s
}
