package model

import (
	"time"
)

// PaymentDirection tells money received from money paid out
type PaymentDirection string

const (
	PaymentIn  PaymentDirection = "In"
	PaymentOut PaymentDirection = "Out"
)

// PaymentTransaction records a single payment received or made
type PaymentTransaction struct {
	ID                string           `json:"id"`
	Direction         PaymentDirection `json:"direction"`
	Date              string           `json:"date"` // YYYY-MM-DD
	Amount            float64          `json:"amount"`
	Currency          string           `json:"currency"`
	Description       string           `json:"description"`
	Category          string           `json:"category,omitempty"`
	RelatedDocumentID string           `json:"relatedDocumentId,omitempty"` // Invoice or bill this settles
	PaymentMethod     string           `json:"paymentMethod,omitempty"`
	Notes             string           `json:"notes,omitempty"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`
}

func (p PaymentTransaction) RecordID() string { return p.ID }
