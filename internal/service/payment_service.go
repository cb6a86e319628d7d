package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"costr/internal/model"
	"costr/internal/repository"

	"github.com/google/uuid"
)

// --- DTOs ---

type PaymentRequest struct {
	Direction         model.PaymentDirection `json:"direction" binding:"required,oneof=In Out"`
	Date              string                 `json:"date"`
	Amount            Number                 `json:"amount" swaggertype:"number"`
	Currency          string                 `json:"currency"`
	Description       string                 `json:"description"`
	Category          string                 `json:"category"`
	RelatedDocumentID string                 `json:"relatedDocumentId"`
	PaymentMethod     string                 `json:"paymentMethod"`
	Notes             string                 `json:"notes"`
}

type PaymentFilter struct {
	Direction         model.PaymentDirection // empty for both
	RelatedDocumentID string
}

// --- Interface ---

type PaymentService interface {
	ListPayments(filter PaymentFilter) []model.PaymentTransaction
	GetPayment(id string) (model.PaymentTransaction, error)
	CreatePayment(ctx context.Context, req PaymentRequest) (model.PaymentTransaction, error)
	UpdatePayment(ctx context.Context, id string, req PaymentRequest) (model.PaymentTransaction, error)
	DeletePayment(ctx context.Context, id string) error
}

type paymentService struct {
	store    *repository.RecordStore[model.PaymentTransaction]
	settings SettingsService
}

func NewPaymentService(store *repository.RecordStore[model.PaymentTransaction], settings SettingsService) PaymentService {
	return &paymentService{store: store, settings: settings}
}

// --- Implementation ---

func (s *paymentService) ListPayments(filter PaymentFilter) []model.PaymentTransaction {
	payments := s.store.List()
	res := make([]model.PaymentTransaction, 0, len(payments))
	for _, p := range payments {
		if filter.Direction != "" && p.Direction != filter.Direction {
			continue
		}
		if filter.RelatedDocumentID != "" && p.RelatedDocumentID != filter.RelatedDocumentID {
			continue
		}
		res = append(res, p)
	}
	return res
}

func (s *paymentService) GetPayment(id string) (model.PaymentTransaction, error) {
	return findRecord(s.store, id)
}

func (s *paymentService) CreatePayment(ctx context.Context, req PaymentRequest) (model.PaymentTransaction, error) {
	if req.Direction != model.PaymentIn && req.Direction != model.PaymentOut {
		return model.PaymentTransaction{}, fmt.Errorf("%w: unknown direction %q", ErrInvalidRecord, req.Direction)
	}

	now := time.Now().UTC()
	payment := model.PaymentTransaction{
		ID:        uuid.NewString(),
		CreatedAt: now,
	}
	s.apply(&payment, req, now)

	if err := addRecord(ctx, s.store, payment); err != nil {
		return model.PaymentTransaction{}, fmt.Errorf("failed to record payment: %w", err)
	}
	return payment, nil
}

func (s *paymentService) UpdatePayment(ctx context.Context, id string, req PaymentRequest) (model.PaymentTransaction, error) {
	if req.Direction != model.PaymentIn && req.Direction != model.PaymentOut {
		return model.PaymentTransaction{}, fmt.Errorf("%w: unknown direction %q", ErrInvalidRecord, req.Direction)
	}

	payment, err := findRecord(s.store, id)
	if err != nil {
		return model.PaymentTransaction{}, err
	}
	s.apply(&payment, req, time.Now().UTC())

	if err := updateRecord(ctx, s.store, payment); err != nil {
		return model.PaymentTransaction{}, fmt.Errorf("failed to update payment: %w", err)
	}
	return payment, nil
}

func (s *paymentService) DeletePayment(ctx context.Context, id string) error {
	return deleteRecord(ctx, s.store, id)
}

func (s *paymentService) apply(p *model.PaymentTransaction, req PaymentRequest, now time.Time) {
	p.Direction = req.Direction
	p.Date = req.Date
	if p.Date == "" {
		p.Date = now.Format(time.DateOnly)
	}
	p.Amount = req.Amount.Float64()
	p.Currency = strings.ToUpper(strings.TrimSpace(req.Currency))
	if p.Currency == "" {
		p.Currency = s.settings.Settings().DefaultCurrency
	}
	p.Description = req.Description
	p.Category = req.Category
	p.RelatedDocumentID = req.RelatedDocumentID
	p.PaymentMethod = req.PaymentMethod
	p.Notes = req.Notes
	p.UpdatedAt = now
}
