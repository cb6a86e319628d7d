package model

// DashboardSummary aggregates document and payment totals in the default currency
type DashboardSummary struct {
	Currency         string            `json:"currency"`
	StartDate        string            `json:"startDate,omitempty"`
	EndDate          string            `json:"endDate,omitempty"`
	InvoiceCount     int               `json:"invoiceCount"`
	QuotationCount   int               `json:"quotationCount"`
	InvoicedTotal    float64           `json:"invoicedTotal"`
	QuotedTotal      float64           `json:"quotedTotal"`
	PaidTotal        float64           `json:"paidTotal"`
	OutstandingTotal float64           `json:"outstandingTotal"` // Invoices neither Paid nor Void
	PaymentsIn       float64           `json:"paymentsIn"`
	PaymentsOut      float64           `json:"paymentsOut"`
	NetCashFlow      float64           `json:"netCashFlow"`
	SkippedForeign   int               `json:"skippedForeign"` // Records in another currency, not summed
	StatusBreakdown  map[string]int    `json:"statusBreakdown"`
	FormattedAmounts map[string]string `json:"formattedAmounts"`
	OutOfStockItems  int               `json:"outOfStockItems"`
}
