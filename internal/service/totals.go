package service

import (
	"costr/internal/model"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Totals are the derived amounts of a document
type Totals struct {
	Subtotal  float64 `json:"subtotal"`
	TaxAmount float64 `json:"taxAmount"`
	Total     float64 `json:"total"`
}

// ComputeTotals sums quantity*unitPrice over items and applies taxRatePercent.
// Amounts are not rounded; Total is always exactly Subtotal + TaxAmount.
func ComputeTotals(items []model.LineItem, taxRatePercent float64) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(lineAmount(item))
	}
	tax := subtotal.Mul(decimal.NewFromFloat(taxRatePercent)).Div(hundred)

	t := Totals{
		Subtotal:  subtotal.InexactFloat64(),
		TaxAmount: tax.InexactFloat64(),
	}
	t.Total = t.Subtotal + t.TaxAmount
	return t
}

// LineTotal returns quantity*unitPrice for a single row
func LineTotal(item model.LineItem) float64 {
	return lineAmount(item).InexactFloat64()
}

func lineAmount(item model.LineItem) decimal.Decimal {
	return decimal.NewFromFloat(item.Quantity).Mul(decimal.NewFromFloat(item.UnitPrice))
}

// applyTotals recomputes the derived fields of doc in place
func applyTotals(doc *model.Document) {
	t := ComputeTotals(doc.Items, doc.TaxRate)
	doc.Subtotal = t.Subtotal
	doc.TaxAmount = t.TaxAmount
	doc.Total = t.Total
}
