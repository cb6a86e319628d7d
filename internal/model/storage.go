package model

import (
	"time"
)

// Storage keys. Each key holds one JSON value: an array of records, or the
// settings object for KeyAppSettings. Renaming a key is a schema migration.
const (
	KeyDocuments           = "documents"
	KeyAppSettings         = "appSettings"
	KeyCustomers           = "customers"
	KeyInventoryItems      = "inventoryItems"
	KeyPaymentTransactions = "paymentTransactions"
)

// KVEntry is one row of the SQL-backed key-value store
type KVEntry struct {
	Key       string    `gorm:"column:entry_key;type:varchar(100);primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	Origin    string    `gorm:"type:varchar(36)"` // Handle that wrote the value last
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (KVEntry) TableName() string { return "kv_entries" }
