package model

import (
	"time"
)

// DocumentType distinguishes invoices from quotations
type DocumentType string

const (
	DocTypeInvoice   DocumentType = "Invoice"
	DocTypeQuotation DocumentType = "Quotation"
)

// DocumentStatus enum constants (invoices only)
const (
	DocStatusDraft   = "Draft"
	DocStatusSent    = "Sent"
	DocStatusPaid    = "Paid"
	DocStatusOverdue = "Overdue"
	DocStatusVoid    = "Void"
)

// ClientInfo is the billed party as printed on the document
type ClientInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone,omitempty"`
}

// CompanyInfo is the issuing business
type CompanyInfo struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	LogoURL     string `json:"logoUrl,omitempty"`
	BankDetails string `json:"bankDetails,omitempty"`
	TaxID       string `json:"taxId,omitempty"`
}

// LineItem is a single row of a document. It has no lifecycle outside its parent.
type LineItem struct {
	ID              string  `json:"id"`
	Description     string  `json:"description"`
	Quantity        float64 `json:"quantity"`
	UnitPrice       float64 `json:"unitPrice"`
	InventoryItemID string  `json:"inventoryItemId,omitempty"`
}

// Document is an invoice or quotation. Subtotal, TaxAmount and Total are derived
// from Items and TaxRate and are never edited directly.
type Document struct {
	ID         string       `json:"id"`
	DocType    DocumentType `json:"docType"`
	DocNumber  string       `json:"docNumber"`
	Client     ClientInfo   `json:"client"`
	CustomerID string       `json:"customerId,omitempty"`
	Company    CompanyInfo  `json:"company"`
	IssueDate  string       `json:"issueDate"`         // YYYY-MM-DD
	DueDate    string       `json:"dueDate,omitempty"` // YYYY-MM-DD
	Items      []LineItem   `json:"items"`
	Notes      string       `json:"notes,omitempty"`
	Currency   string       `json:"currency"`
	TaxRate    float64      `json:"taxRate"` // Percentage
	Subtotal   float64      `json:"subtotal"`
	TaxAmount  float64      `json:"taxAmount"`
	Total      float64      `json:"total"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
	Status     string       `json:"status,omitempty"`
}

func (d Document) RecordID() string { return d.ID }
