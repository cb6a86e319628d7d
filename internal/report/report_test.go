package report

import (
	"bytes"
	"testing"

	"costr/internal/model"

	"github.com/xuri/excelize/v2"
)

func open(t *testing.T, buf *bytes.Buffer) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestExportDocuments(t *testing.T) {
	docs := []model.Document{{
		DocType:   model.DocTypeInvoice,
		DocNumber: "INV-0001",
		Status:    model.DocStatusSent,
		Client:    model.ClientInfo{Name: "Globex"},
		IssueDate: "2024-03-01",
		Currency:  "ZAR",
		TaxRate:   15,
		Subtotal:  200,
		TaxAmount: 30,
		Total:     230,
		Items: []model.LineItem{
			{Description: "Consulting", Quantity: 2, UnitPrice: 75},
			{Description: "Support", Quantity: 1, UnitPrice: 50},
		},
	}}
	customers := []model.Customer{
		{Name: "Google", Phone: "+1 650-253-0000"},
		{Name: "Walk-in", Phone: "call the front desk"},
	}

	var buf bytes.Buffer
	if err := NewExporter("ZA").ExportDocuments(&buf, docs, customers); err != nil {
		t.Fatalf("ExportDocuments: %v", err)
	}
	f := open(t, &buf)

	rows, err := f.GetRows(SheetDocuments)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 2 || rows[0][0] != "Number" || rows[1][0] != "INV-0001" || rows[1][10] != "230" {
		t.Fatalf("unexpected documents sheet %v", rows)
	}

	items, _ := f.GetRows(SheetLineItems)
	if len(items) != 3 || items[1][4] != "150" || items[2][0] != "INV-0001" {
		t.Fatalf("unexpected line items sheet %v", items)
	}

	people, _ := f.GetRows(SheetCustomers)
	if len(people) != 3 {
		t.Fatalf("unexpected customers sheet %v", people)
	}
	if people[1][2] != "+1 650-253-0000" {
		t.Fatalf("phone = %q", people[1][2])
	}
	if people[2][2] != "call the front desk" {
		t.Fatalf("unparseable phone should be kept, got %q", people[2][2])
	}
}

func TestExportPaymentsRunningBalance(t *testing.T) {
	payments := []model.PaymentTransaction{
		{Date: "2024-01-01", Direction: model.PaymentIn, Amount: 100, Currency: "USD"},
		{Date: "2024-01-02", Direction: model.PaymentOut, Amount: 30, Currency: "USD"},
		{Date: "2024-01-03", Direction: model.PaymentIn, Amount: 5, Currency: "EUR"},
	}

	var buf bytes.Buffer
	if err := NewExporter("ZA").ExportPayments(&buf, payments); err != nil {
		t.Fatalf("ExportPayments: %v", err)
	}
	rows, err := open(t, &buf).GetRows(SheetPayments)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header and 3 rows, got %d", len(rows))
	}
	if rows[2][6] != "-30" || rows[2][7] != "70" || rows[3][7] != "5" {
		t.Fatalf("unexpected balances %v", rows)
	}
}

func TestExportInventory(t *testing.T) {
	cost := 3.5
	items := []model.InventoryItem{{Name: "Bolt", SKU: "B-1", QuantityOnHand: 12, UnitPrice: 5, CostPrice: &cost}}

	var buf bytes.Buffer
	if err := NewExporter("ZA").ExportInventory(&buf, items); err != nil {
		t.Fatalf("ExportInventory: %v", err)
	}
	rows, _ := open(t, &buf).GetRows(SheetInventory)
	if len(rows) != 2 || rows[1][1] != "B-1" || rows[1][4] != "3.5" {
		t.Fatalf("unexpected inventory sheet %v", rows)
	}
}

func TestFormatPhone(t *testing.T) {
	e := NewExporter("US")
	if got := e.FormatPhone("650-253-0000"); got != "+1 650-253-0000" {
		t.Fatalf("FormatPhone = %q", got)
	}
	if got := e.FormatPhone(""); got != "" {
		t.Fatalf("FormatPhone(\"\") = %q", got)
	}
}
