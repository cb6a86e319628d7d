package service

import (
	"context"
	"errors"
	"testing"

	"costr/internal/model"
)

func invoiceRequest(items ...LineItemRequest) DocumentRequest {
	return DocumentRequest{
		DocType: model.DocTypeInvoice,
		Client:  model.ClientInfo{Name: "Globex", Email: "ap@globex.test"},
		Items:   items,
	}
}

func TestCreateDocumentDefaults(t *testing.T) {
	f := newFixture(t)
	f.setUp(t)
	ctx := context.Background()

	doc, err := f.documents.CreateDocument(ctx, invoiceRequest(
		LineItemRequest{Description: "Consulting", Quantity: 2, UnitPrice: 100},
		LineItemRequest{Description: "Travel", Quantity: 1, UnitPrice: 50},
	))
	if err != nil {
		t.Fatalf("CreateDocument: %v", err)
	}

	if doc.ID == "" || doc.DocNumber != "INV-0001" || doc.Status != model.DocStatusDraft {
		t.Fatalf("unexpected identity fields %+v", doc)
	}
	if doc.Currency != "USD" || doc.TaxRate != model.DefaultTaxRate || doc.Company.Name != "Acme" {
		t.Fatalf("settings defaults not applied %+v", doc)
	}
	if doc.Subtotal != 250 || doc.TaxAmount != 37.5 || doc.Total != 287.5 {
		t.Fatalf("unexpected totals %v %v %v", doc.Subtotal, doc.TaxAmount, doc.Total)
	}
	if doc.IssueDate == "" || doc.CreatedAt.IsZero() || !doc.CreatedAt.Equal(doc.UpdatedAt) {
		t.Fatalf("dates not stamped %+v", doc)
	}
	for _, item := range doc.Items {
		if item.ID == "" {
			t.Fatal("line item id not generated")
		}
	}

	got, err := f.documents.GetDocument(doc.ID)
	if err != nil || got.DocNumber != doc.DocNumber {
		t.Fatalf("GetDocument = %+v, %v", got, err)
	}
}

func TestCreateDocumentNumbering(t *testing.T) {
	f := newFixture(t)
	f.setUp(t)
	ctx := context.Background()

	first, _ := f.documents.CreateDocument(ctx, invoiceRequest())
	second, _ := f.documents.CreateDocument(ctx, invoiceRequest())
	quote, _ := f.documents.CreateDocument(ctx, DocumentRequest{DocType: model.DocTypeQuotation})

	if first.DocNumber != "INV-0001" || second.DocNumber != "INV-0002" || quote.DocNumber != "QT-0001" {
		t.Fatalf("numbers = %s %s %s", first.DocNumber, second.DocNumber, quote.DocNumber)
	}
	if quote.Status != "" {
		t.Fatalf("quotations carry no status, got %q", quote.Status)
	}
	if next := f.documents.NextNumber(model.DocTypeInvoice); next != "INV-0003" {
		t.Fatalf("NextNumber = %s", next)
	}

	if err := f.documents.DeleteDocument(ctx, second.ID); err != nil {
		t.Fatalf("DeleteDocument: %v", err)
	}
	if next := f.documents.NextNumber(model.DocTypeInvoice); next != "INV-0002" {
		t.Fatalf("highest number should be reused after delete, got %s", next)
	}
}

func TestCreateDocumentCoercesItemsAndKeepsExplicitValues(t *testing.T) {
	f := newFixture(t)
	f.setUp(t)

	rate := Number(0)
	req := invoiceRequest(LineItemRequest{Description: "Widget", Quantity: 3, UnitPrice: 0})
	req.DocNumber = "ACME-100"
	req.Currency = "eur"
	req.TaxRate = &rate
	req.IssueDate = "2024-05-01"

	doc, err := f.documents.CreateDocument(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateDocument: %v", err)
	}
	if doc.DocNumber != "ACME-100" || doc.Currency != "EUR" || doc.TaxRate != 0 || doc.IssueDate != "2024-05-01" {
		t.Fatalf("explicit values overridden %+v", doc)
	}
	if doc.Total != 0 || doc.Total != doc.Subtotal+doc.TaxAmount {
		t.Fatalf("unexpected totals %+v", doc)
	}
}

func TestCreateDocumentFillsClientFromCustomer(t *testing.T) {
	f := newFixture(t)
	f.setUp(t)
	ctx := context.Background()

	customer, err := f.customers.CreateCustomer(ctx, CustomerRequest{Name: "Initech", Email: "bill@initech.test", Phone: "021 555 0100"})
	if err != nil {
		t.Fatalf("CreateCustomer: %v", err)
	}

	doc, err := f.documents.CreateDocument(ctx, DocumentRequest{DocType: model.DocTypeInvoice, CustomerID: customer.ID})
	if err != nil {
		t.Fatalf("CreateDocument: %v", err)
	}
	if doc.Client.Name != "Initech" || doc.Client.Phone != "021 555 0100" || doc.CustomerID != customer.ID {
		t.Fatalf("client not filled from customer %+v", doc.Client)
	}
}

func TestUpdateDocumentRecomputesTotals(t *testing.T) {
	f := newFixture(t)
	f.setUp(t)
	ctx := context.Background()

	doc, _ := f.documents.CreateDocument(ctx, invoiceRequest(LineItemRequest{Quantity: 1, UnitPrice: 100}))

	req := invoiceRequest(LineItemRequest{Quantity: 4, UnitPrice: 100})
	req.Status = model.DocStatusSent
	updated, err := f.documents.UpdateDocument(ctx, doc.ID, req)
	if err != nil {
		t.Fatalf("UpdateDocument: %v", err)
	}
	if updated.ID != doc.ID || updated.DocNumber != doc.DocNumber || !updated.CreatedAt.Equal(doc.CreatedAt) {
		t.Fatalf("identity changed on update %+v", updated)
	}
	if updated.Subtotal != 400 || updated.Total != 460 || updated.Status != model.DocStatusSent {
		t.Fatalf("unexpected update result %+v", updated)
	}

	stored, _ := f.documents.GetDocument(doc.ID)
	if stored.Total != 460 {
		t.Fatalf("stored total = %v", stored.Total)
	}

	again, err := f.documents.UpdateDocument(ctx, doc.ID, invoiceRequest())
	if err != nil || again.Status != model.DocStatusSent {
		t.Fatalf("status should be kept when omitted, got %q, %v", again.Status, err)
	}
}

func TestUpdateDocumentTypeChangeRenumbers(t *testing.T) {
	f := newFixture(t)
	f.setUp(t)
	ctx := context.Background()

	quote, _ := f.documents.CreateDocument(ctx, DocumentRequest{DocType: model.DocTypeQuotation})
	inv, err := f.documents.UpdateDocument(ctx, quote.ID, invoiceRequest())
	if err != nil {
		t.Fatalf("UpdateDocument: %v", err)
	}
	if inv.DocType != model.DocTypeInvoice || inv.DocNumber != "INV-0001" {
		t.Fatalf("converted document = %s %s", inv.DocType, inv.DocNumber)
	}
}

func TestDocumentNotFoundAndInvalid(t *testing.T) {
	f := newFixture(t)
	f.setUp(t)
	ctx := context.Background()

	if _, err := f.documents.GetDocument("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetDocument: expected ErrNotFound, got %v", err)
	}
	if _, err := f.documents.UpdateDocument(ctx, "missing", invoiceRequest()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("UpdateDocument: expected ErrNotFound, got %v", err)
	}
	if err := f.documents.DeleteDocument(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("DeleteDocument: expected ErrNotFound, got %v", err)
	}
	if _, err := f.documents.CreateDocument(ctx, DocumentRequest{DocType: "Receipt"}); !errors.Is(err, ErrInvalidRecord) {
		t.Fatalf("CreateDocument: expected ErrInvalidRecord, got %v", err)
	}
}

func TestListDocumentsFilters(t *testing.T) {
	f := newFixture(t)
	f.setUp(t)
	ctx := context.Background()

	_, _ = f.documents.CreateDocument(ctx, invoiceRequest())
	paid := invoiceRequest()
	paid.Status = model.DocStatusPaid
	paid.Client.Name = "Umbrella"
	_, _ = f.documents.CreateDocument(ctx, paid)
	_, _ = f.documents.CreateDocument(ctx, DocumentRequest{DocType: model.DocTypeQuotation})

	if got := len(f.documents.ListDocuments(DocumentFilter{})); got != 3 {
		t.Fatalf("all = %d", got)
	}
	if got := len(f.documents.ListDocuments(DocumentFilter{DocType: model.DocTypeInvoice})); got != 2 {
		t.Fatalf("invoices = %d", got)
	}
	if got := len(f.documents.ListDocuments(DocumentFilter{Status: model.DocStatusPaid})); got != 1 {
		t.Fatalf("paid = %d", got)
	}
	if got := f.documents.ListDocuments(DocumentFilter{Search: "umbr"}); len(got) != 1 || got[0].Client.Name != "Umbrella" {
		t.Fatalf("search = %+v", got)
	}
}

func TestCreateDocumentWriteFailure(t *testing.T) {
	f := newFixture(t)
	f.setUp(t)
	f.kv.broken = true

	if _, err := f.documents.CreateDocument(context.Background(), invoiceRequest()); !errors.Is(err, ErrNotSaved) {
		t.Fatalf("expected ErrNotSaved, got %v", err)
	}
	if got := len(f.documents.ListDocuments(DocumentFilter{})); got != 0 {
		t.Fatalf("failed create left %d documents", got)
	}
}

func TestDocumentNumberUniquePerType(t *testing.T) {
	f := newFixture(t)
	f.setUp(t)
	ctx := context.Background()

	first, err := f.documents.CreateDocument(ctx, invoiceRequest())
	if err != nil {
		t.Fatalf("CreateDocument: %v", err)
	}

	dup := invoiceRequest()
	dup.DocNumber = first.DocNumber
	if _, err := f.documents.CreateDocument(ctx, dup); !errors.Is(err, ErrInvalidRecord) {
		t.Fatalf("duplicate create: expected ErrInvalidRecord, got %v", err)
	}

	quote := DocumentRequest{DocType: model.DocTypeQuotation, DocNumber: first.DocNumber}
	if _, err := f.documents.CreateDocument(ctx, quote); err != nil {
		t.Fatalf("same number on another type should be allowed: %v", err)
	}

	second, err := f.documents.CreateDocument(ctx, invoiceRequest())
	if err != nil {
		t.Fatalf("CreateDocument: %v", err)
	}
	renumber := invoiceRequest()
	renumber.DocNumber = first.DocNumber
	if _, err := f.documents.UpdateDocument(ctx, second.ID, renumber); !errors.Is(err, ErrInvalidRecord) {
		t.Fatalf("duplicate update: expected ErrInvalidRecord, got %v", err)
	}

	keep := invoiceRequest()
	keep.DocNumber = first.DocNumber
	if _, err := f.documents.UpdateDocument(ctx, first.ID, keep); err != nil {
		t.Fatalf("a document may keep its own number: %v", err)
	}

	if got, _ := f.documents.GetDocument(second.ID); got.DocNumber != second.DocNumber {
		t.Fatalf("rejected update changed the number to %q", got.DocNumber)
	}
	if n := len(f.documents.ListDocuments(DocumentFilter{DocType: model.DocTypeInvoice})); n != 2 {
		t.Fatalf("expected 2 invoices, got %d", n)
	}
}

func TestDocumentRejectsUnrepresentableTotals(t *testing.T) {
	f := newFixture(t)
	f.setUp(t)
	ctx := context.Background()

	huge := invoiceRequest(LineItemRequest{Description: "Galaxy", Quantity: 1e200, UnitPrice: 1e200})
	if _, err := f.documents.CreateDocument(ctx, huge); !errors.Is(err, ErrInvalidRecord) {
		t.Fatalf("create: expected ErrInvalidRecord, got %v", err)
	}

	doc, err := f.documents.CreateDocument(ctx, invoiceRequest(LineItemRequest{Quantity: 1, UnitPrice: 10}))
	if err != nil {
		t.Fatalf("CreateDocument: %v", err)
	}
	if _, err := f.documents.UpdateDocument(ctx, doc.ID, huge); !errors.Is(err, ErrInvalidRecord) {
		t.Fatalf("update: expected ErrInvalidRecord, got %v", err)
	}
	if got, _ := f.documents.GetDocument(doc.ID); got.Total != 11.5 {
		t.Fatalf("rejected update changed the stored total to %v", got.Total)
	}
}
