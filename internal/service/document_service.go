package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"costr/internal/model"
	"costr/internal/repository"

	"github.com/google/uuid"
)

// --- DTOs ---

type LineItemRequest struct {
	ID              string `json:"id"`
	Description     string `json:"description"`
	Quantity        Number `json:"quantity" swaggertype:"number"`
	UnitPrice       Number `json:"unitPrice" swaggertype:"number"`
	InventoryItemID string `json:"inventoryItemId"`
}

// DocumentRequest is the editable part of a document. Totals are always
// derived from Items and TaxRate. Empty Company, Currency and TaxRate fall
// back to the settings; an empty DocNumber is generated on create and kept on update.
type DocumentRequest struct {
	DocType    model.DocumentType `json:"docType" binding:"required,oneof=Invoice Quotation"`
	DocNumber  string             `json:"docNumber"`
	Client     model.ClientInfo   `json:"client"`
	CustomerID string             `json:"customerId"`
	Company    *model.CompanyInfo `json:"company"`
	IssueDate  string             `json:"issueDate"`
	DueDate    string             `json:"dueDate"`
	Items      []LineItemRequest  `json:"items"`
	Notes      string             `json:"notes"`
	Currency   string             `json:"currency"`
	TaxRate    *Number            `json:"taxRate" swaggertype:"number"`
	Status     string             `json:"status" binding:"omitempty,oneof=Draft Sent Paid Overdue Void"`
}

type DocumentFilter struct {
	DocType model.DocumentType // empty for all
	Status  string             // empty for all
	Search  string             // partial match on number or client name
}

// --- Interface ---

type DocumentService interface {
	ListDocuments(filter DocumentFilter) []model.Document
	GetDocument(id string) (model.Document, error)
	NextNumber(docType model.DocumentType) string
	CreateDocument(ctx context.Context, req DocumentRequest) (model.Document, error)
	UpdateDocument(ctx context.Context, id string, req DocumentRequest) (model.Document, error)
	DeleteDocument(ctx context.Context, id string) error
}

type documentService struct {
	mu        sync.Mutex // serialises number generation with the write that uses it
	store     *repository.RecordStore[model.Document]
	customers *repository.RecordStore[model.Customer]
	settings  SettingsService
	now       func() time.Time
}

func NewDocumentService(
	store *repository.RecordStore[model.Document],
	customers *repository.RecordStore[model.Customer],
	settings SettingsService,
) DocumentService {
	return &documentService{
		store:     store,
		customers: customers,
		settings:  settings,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// --- Implementation ---

func (s *documentService) ListDocuments(filter DocumentFilter) []model.Document {
	docs := s.store.List()
	res := make([]model.Document, 0, len(docs))
	for _, d := range docs {
		if filter.DocType != "" && d.DocType != filter.DocType {
			continue
		}
		if filter.Status != "" && d.Status != filter.Status {
			continue
		}
		if !containsFold(filter.Search, d.DocNumber, d.Client.Name) {
			continue
		}
		res = append(res, d)
	}
	return res
}

func (s *documentService) GetDocument(id string) (model.Document, error) {
	return findRecord(s.store, id)
}

func (s *documentService) NextNumber(docType model.DocumentType) string {
	return NextDocumentNumber(s.store.List(), docType)
}

func (s *documentService) CreateDocument(ctx context.Context, req DocumentRequest) (model.Document, error) {
	if !validDocType(req.DocType) {
		return model.Document{}, fmt.Errorf("%w: unknown document type %q", ErrInvalidRecord, req.DocType)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	doc := model.Document{
		ID:        uuid.NewString(),
		CreatedAt: now,
	}
	s.apply(&doc, req, now)

	if doc.DocNumber == "" {
		doc.DocNumber = NextDocumentNumber(s.store.List(), doc.DocType)
	}
	if doc.DocType == model.DocTypeInvoice && doc.Status == "" {
		doc.Status = model.DocStatusDraft
	}
	if err := s.check(doc); err != nil {
		return model.Document{}, err
	}

	if err := addRecord(ctx, s.store, doc); err != nil {
		return model.Document{}, fmt.Errorf("failed to create document: %w", err)
	}
	return doc, nil
}

func (s *documentService) UpdateDocument(ctx context.Context, id string, req DocumentRequest) (model.Document, error) {
	if !validDocType(req.DocType) {
		return model.Document{}, fmt.Errorf("%w: unknown document type %q", ErrInvalidRecord, req.DocType)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := findRecord(s.store, id)
	if err != nil {
		return model.Document{}, err
	}

	previousType := doc.DocType
	keptNumber := doc.DocNumber
	s.apply(&doc, req, s.now())
	if doc.DocNumber == "" {
		if doc.DocType == previousType {
			doc.DocNumber = keptNumber
		} else {
			doc.DocNumber = NextDocumentNumber(s.store.List(), doc.DocType)
		}
	}
	if err := s.check(doc); err != nil {
		return model.Document{}, err
	}

	if err := updateRecord(ctx, s.store, doc); err != nil {
		return model.Document{}, fmt.Errorf("failed to update document: %w", err)
	}
	return doc, nil
}

func (s *documentService) DeleteDocument(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return deleteRecord(ctx, s.store, id)
}

// apply copies req onto doc, fills defaults from the settings and the linked
// customer, and recomputes the totals
func (s *documentService) apply(doc *model.Document, req DocumentRequest, now time.Time) {
	settings := s.settings.Settings()

	doc.DocType = req.DocType
	doc.DocNumber = strings.TrimSpace(req.DocNumber)
	doc.CustomerID = req.CustomerID
	doc.Client = req.Client
	if doc.Client.Name == "" && req.CustomerID != "" {
		if c, ok := s.customers.GetByID(req.CustomerID); ok {
			doc.Client = c.ClientInfo()
		}
	}

	doc.Company = settings.Company
	if req.Company != nil {
		doc.Company = *req.Company
	}

	doc.IssueDate = req.IssueDate
	if doc.IssueDate == "" {
		doc.IssueDate = now.Format(time.DateOnly)
	}
	doc.DueDate = req.DueDate
	doc.Notes = req.Notes

	doc.Currency = strings.ToUpper(strings.TrimSpace(req.Currency))
	if doc.Currency == "" {
		doc.Currency = settings.DefaultCurrency
	}
	doc.TaxRate = settings.DefaultTaxRate
	if req.TaxRate != nil {
		doc.TaxRate = req.TaxRate.Float64()
	}
	if req.Status != "" {
		doc.Status = req.Status
	}

	doc.Items = make([]model.LineItem, 0, len(req.Items))
	for _, item := range req.Items {
		id := item.ID
		if id == "" {
			id = uuid.NewString()
		}
		doc.Items = append(doc.Items, model.LineItem{
			ID:              id,
			Description:     item.Description,
			Quantity:        item.Quantity.Float64(),
			UnitPrice:       item.UnitPrice.Float64(),
			InventoryItemID: item.InventoryItemID,
		})
	}

	applyTotals(doc)
	doc.UpdatedAt = now
}

// check rejects totals that cannot be stored and numbers already held by
// another document of the same type. Callers hold s.mu.
func (s *documentService) check(doc model.Document) error {
	for _, v := range []float64{doc.Subtotal, doc.TaxAmount, doc.Total} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: document totals are out of range", ErrInvalidRecord)
		}
	}
	for _, other := range s.store.List() {
		if other.ID != doc.ID && other.DocType == doc.DocType && other.DocNumber == doc.DocNumber {
			return fmt.Errorf("%w: document number %q already used", ErrInvalidRecord, doc.DocNumber)
		}
	}
	return nil
}

func validDocType(t model.DocumentType) bool {
	return t == model.DocTypeInvoice || t == model.DocTypeQuotation
}
