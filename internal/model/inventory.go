package model

import (
	"time"
)

// InventoryItem represents a stocked product. QuantityOnHand never drops below zero.
type InventoryItem struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	SKU             string    `json:"sku,omitempty"`
	Description     string    `json:"description,omitempty"`
	QuantityOnHand  float64   `json:"quantityOnHand"`
	UnitPrice       float64   `json:"unitPrice"`
	CostPrice       *float64  `json:"costPrice,omitempty"` // Optional: for profit calculation
	Supplier        string    `json:"supplier,omitempty"`
	LastReorderDate string    `json:"lastReorderDate,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (i InventoryItem) RecordID() string { return i.ID }

// InStock reports whether at least one unit is available
func (i InventoryItem) InStock() bool {
	return i.QuantityOnHand > 0
}
