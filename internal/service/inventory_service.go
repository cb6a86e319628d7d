package service

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"costr/internal/model"
	"costr/internal/repository"

	"github.com/google/uuid"
)

// --- DTOs ---

type InventoryItemRequest struct {
	Name            string  `json:"name" binding:"required"`
	SKU             string  `json:"sku"`
	Description     string  `json:"description"`
	QuantityOnHand  Number  `json:"quantityOnHand" swaggertype:"number"`
	UnitPrice       Number  `json:"unitPrice" swaggertype:"number"`
	CostPrice       *Number `json:"costPrice" swaggertype:"number"`
	Supplier        string  `json:"supplier"`
	LastReorderDate string  `json:"lastReorderDate"`
}

type AdjustStockRequest struct {
	QuantityChange float64 `json:"quantityChange"`
}

// --- Interface ---

type InventoryService interface {
	ListItems(search string) []model.InventoryItem
	GetItem(id string) (model.InventoryItem, error)
	CreateItem(ctx context.Context, req InventoryItemRequest) (model.InventoryItem, error)
	UpdateItem(ctx context.Context, id string, req InventoryItemRequest) (model.InventoryItem, error)
	DeleteItem(ctx context.Context, id string) error
	AdjustStock(ctx context.Context, id string, quantityChange float64) (model.InventoryItem, error)
}

type inventoryService struct {
	mu    sync.Mutex // serialises read-modify-write of stock levels
	store *repository.RecordStore[model.InventoryItem]
}

func NewInventoryService(store *repository.RecordStore[model.InventoryItem]) InventoryService {
	return &inventoryService{store: store}
}

// --- Implementation ---

func (s *inventoryService) ListItems(search string) []model.InventoryItem {
	items := s.store.List()
	res := make([]model.InventoryItem, 0, len(items))
	for _, item := range items {
		if containsFold(search, item.Name, item.SKU, item.Supplier) {
			res = append(res, item)
		}
	}
	return res
}

func (s *inventoryService) GetItem(id string) (model.InventoryItem, error) {
	return findRecord(s.store, id)
}

func (s *inventoryService) CreateItem(ctx context.Context, req InventoryItemRequest) (model.InventoryItem, error) {
	now := time.Now().UTC()
	item := model.InventoryItem{
		ID:        uuid.NewString(),
		CreatedAt: now,
	}
	applyItemRequest(&item, req, now)

	if err := addRecord(ctx, s.store, item); err != nil {
		return model.InventoryItem{}, fmt.Errorf("failed to create inventory item: %w", err)
	}
	return item, nil
}

func (s *inventoryService) UpdateItem(ctx context.Context, id string, req InventoryItemRequest) (model.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := findRecord(s.store, id)
	if err != nil {
		return model.InventoryItem{}, err
	}
	applyItemRequest(&item, req, time.Now().UTC())

	if err := updateRecord(ctx, s.store, item); err != nil {
		return model.InventoryItem{}, fmt.Errorf("failed to update inventory item: %w", err)
	}
	return item, nil
}

func (s *inventoryService) DeleteItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return deleteRecord(ctx, s.store, id)
}

// AdjustStock adds quantityChange to the stock on hand, never going below zero
func (s *inventoryService) AdjustStock(ctx context.Context, id string, quantityChange float64) (model.InventoryItem, error) {
	if math.IsNaN(quantityChange) || math.IsInf(quantityChange, 0) {
		return model.InventoryItem{}, fmt.Errorf("%w: quantity change must be finite", ErrInvalidRecord)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := findRecord(s.store, id)
	if err != nil {
		return model.InventoryItem{}, err
	}
	item.QuantityOnHand = math.Max(0, item.QuantityOnHand+quantityChange)
	item.UpdatedAt = time.Now().UTC()

	if err := updateRecord(ctx, s.store, item); err != nil {
		return model.InventoryItem{}, fmt.Errorf("failed to adjust stock: %w", err)
	}
	return item, nil
}

func applyItemRequest(item *model.InventoryItem, req InventoryItemRequest, now time.Time) {
	item.Name = req.Name
	item.SKU = req.SKU
	item.Description = req.Description
	item.QuantityOnHand = req.QuantityOnHand.Float64()
	item.UnitPrice = req.UnitPrice.Float64()
	item.CostPrice = nil
	if req.CostPrice != nil {
		cost := req.CostPrice.Float64()
		item.CostPrice = &cost
	}
	item.Supplier = req.Supplier
	item.LastReorderDate = req.LastReorderDate
	item.UpdatedAt = now
}
