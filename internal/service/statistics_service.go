package service

import (
	"fmt"
	"strings"
	"time"

	"costr/internal/model"
	"costr/internal/money"
	"costr/internal/repository"

	"github.com/shopspring/decimal"
)

// StatisticsRange bounds the summary by issue/payment date, both inclusive.
// Empty bounds are open.
type StatisticsRange struct {
	StartDate string
	EndDate   string
}

type StatisticsService interface {
	Summary(r StatisticsRange) (model.DashboardSummary, error)
}

type statisticsService struct {
	documents *repository.RecordStore[model.Document]
	payments  *repository.RecordStore[model.PaymentTransaction]
	inventory *repository.RecordStore[model.InventoryItem]
	settings  SettingsService
}

func NewStatisticsService(
	documents *repository.RecordStore[model.Document],
	payments *repository.RecordStore[model.PaymentTransaction],
	inventory *repository.RecordStore[model.InventoryItem],
	settings SettingsService,
) StatisticsService {
	return &statisticsService{
		documents: documents,
		payments:  payments,
		inventory: inventory,
		settings:  settings,
	}
}

// Summary totals documents and payments in the default currency. Records in
// any other currency are counted in SkippedForeign and left out of the sums.
func (s *statisticsService) Summary(r StatisticsRange) (model.DashboardSummary, error) {
	for _, d := range []string{r.StartDate, r.EndDate} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(time.DateOnly, d); err != nil {
			return model.DashboardSummary{}, fmt.Errorf("%w: date %q is not YYYY-MM-DD", ErrInvalidRecord, d)
		}
	}

	currency := s.settings.Settings().DefaultCurrency
	res := model.DashboardSummary{
		Currency:        currency,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		StatusBreakdown: map[string]int{},
	}

	var invoiced, quoted, paid, outstanding, in, out decimal.Decimal

	for _, doc := range s.documents.List() {
		if !inRange(doc.IssueDate, r) {
			continue
		}
		if !sameCurrency(doc.Currency, currency) {
			res.SkippedForeign++
			continue
		}
		total := decimal.NewFromFloat(doc.Total)

		switch doc.DocType {
		case model.DocTypeInvoice:
			res.InvoiceCount++
			invoiced = invoiced.Add(total)
			status := doc.Status
			if status == "" {
				status = model.DocStatusDraft
			}
			res.StatusBreakdown[status]++
			switch status {
			case model.DocStatusPaid:
				paid = paid.Add(total)
			case model.DocStatusVoid:
			default:
				outstanding = outstanding.Add(total)
			}
		case model.DocTypeQuotation:
			res.QuotationCount++
			quoted = quoted.Add(total)
		}
	}

	for _, p := range s.payments.List() {
		if !inRange(p.Date, r) {
			continue
		}
		if !sameCurrency(p.Currency, currency) {
			res.SkippedForeign++
			continue
		}
		amount := decimal.NewFromFloat(p.Amount)
		if p.Direction == model.PaymentOut {
			out = out.Add(amount)
		} else {
			in = in.Add(amount)
		}
	}

	for _, item := range s.inventory.List() {
		if !item.InStock() {
			res.OutOfStockItems++
		}
	}

	res.InvoicedTotal = invoiced.InexactFloat64()
	res.QuotedTotal = quoted.InexactFloat64()
	res.PaidTotal = paid.InexactFloat64()
	res.OutstandingTotal = outstanding.InexactFloat64()
	res.PaymentsIn = in.InexactFloat64()
	res.PaymentsOut = out.InexactFloat64()
	res.NetCashFlow = in.Sub(out).InexactFloat64()

	res.FormattedAmounts = map[string]string{
		"invoicedTotal":    money.Format(res.InvoicedTotal, currency),
		"quotedTotal":      money.Format(res.QuotedTotal, currency),
		"paidTotal":        money.Format(res.PaidTotal, currency),
		"outstandingTotal": money.Format(res.OutstandingTotal, currency),
		"paymentsIn":       money.Format(res.PaymentsIn, currency),
		"paymentsOut":      money.Format(res.PaymentsOut, currency),
		"netCashFlow":      money.Format(res.NetCashFlow, currency),
	}

	return res, nil
}

// inRange compares YYYY-MM-DD strings, which sort chronologically
func inRange(date string, r StatisticsRange) bool {
	if r.StartDate != "" && date < r.StartDate {
		return false
	}
	if r.EndDate != "" && date > r.EndDate {
		return false
	}
	return true
}

func sameCurrency(code, want string) bool {
	return code == "" || strings.EqualFold(code, want)
}
