package service

import (
	"context"
	"fmt"
	"time"

	"costr/internal/model"
	"costr/internal/repository"

	"github.com/google/uuid"
)

// --- DTOs ---

type CustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// --- Interface ---

type CustomerService interface {
	ListCustomers(search string) []model.Customer
	GetCustomer(id string) (model.Customer, error)
	CreateCustomer(ctx context.Context, req CustomerRequest) (model.Customer, error)
	UpdateCustomer(ctx context.Context, id string, req CustomerRequest) (model.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}

type customerService struct {
	store *repository.RecordStore[model.Customer]
}

func NewCustomerService(store *repository.RecordStore[model.Customer]) CustomerService {
	return &customerService{store: store}
}

// --- Implementation ---

func (s *customerService) ListCustomers(search string) []model.Customer {
	customers := s.store.List()
	res := make([]model.Customer, 0, len(customers))
	for _, c := range customers {
		if containsFold(search, c.Name, c.Email, c.Phone) {
			res = append(res, c)
		}
	}
	return res
}

func (s *customerService) GetCustomer(id string) (model.Customer, error) {
	return findRecord(s.store, id)
}

func (s *customerService) CreateCustomer(ctx context.Context, req CustomerRequest) (model.Customer, error) {
	now := time.Now().UTC()
	customer := model.Customer{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Notes:     req.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := addRecord(ctx, s.store, customer); err != nil {
		return model.Customer{}, fmt.Errorf("failed to create customer: %w", err)
	}
	return customer, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, id string, req CustomerRequest) (model.Customer, error) {
	customer, err := findRecord(s.store, id)
	if err != nil {
		return model.Customer{}, err
	}

	customer.Name = req.Name
	customer.Email = req.Email
	customer.Phone = req.Phone
	customer.Address = req.Address
	customer.Notes = req.Notes
	customer.UpdatedAt = time.Now().UTC()

	if err := updateRecord(ctx, s.store, customer); err != nil {
		return model.Customer{}, fmt.Errorf("failed to update customer: %w", err)
	}
	return customer, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, id string) error {
	return deleteRecord(ctx, s.store, id)
}
