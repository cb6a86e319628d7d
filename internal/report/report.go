// Package report writes spreadsheet exports of the stored records.
package report

import (
	"fmt"
	"io"

	"costr/internal/model"
	"costr/internal/service"

	"github.com/ttacon/libphonenumber"
	"github.com/xuri/excelize/v2"
)

const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Sheet names
const (
	SheetDocuments = "Documents"
	SheetLineItems = "Line Items"
	SheetCustomers = "Customers"
	SheetPayments  = "Payments"
	SheetInventory = "Inventory"
)

// Exporter builds XLSX workbooks. Region is the default region used to parse
// phone numbers stored without a country code.
type Exporter struct {
	region string
}

func NewExporter(region string) *Exporter {
	return &Exporter{region: region}
}

// ExportDocuments writes the documents, their line items and the customer list
func (e *Exporter) ExportDocuments(w io.Writer, docs []model.Document, customers []model.Customer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetDocuments); err != nil {
		return err
	}

	docRows := [][]interface{}{{
		"Number", "Type", "Status", "Client", "Issue Date", "Due Date",
		"Currency", "Tax Rate %", "Subtotal", "Tax", "Total",
	}}
	itemRows := [][]interface{}{{
		"Document", "Description", "Quantity", "Unit Price", "Line Total", "Inventory Item",
	}}
	for _, d := range docs {
		docRows = append(docRows, []interface{}{
			d.DocNumber, string(d.DocType), d.Status, d.Client.Name, d.IssueDate, d.DueDate,
			d.Currency, d.TaxRate, d.Subtotal, d.TaxAmount, d.Total,
		})
		for _, item := range d.Items {
			itemRows = append(itemRows, []interface{}{
				d.DocNumber, item.Description, item.Quantity, item.UnitPrice,
				service.LineTotal(item), item.InventoryItemID,
			})
		}
	}

	customerRows := [][]interface{}{{"Name", "Email", "Phone", "Address", "Notes"}}
	for _, c := range customers {
		customerRows = append(customerRows, []interface{}{
			c.Name, c.Email, e.FormatPhone(c.Phone), c.Address, c.Notes,
		})
	}

	if err := writeSheet(f, SheetDocuments, docRows); err != nil {
		return err
	}
	if err := writeSheet(f, SheetLineItems, itemRows); err != nil {
		return err
	}
	if err := writeSheet(f, SheetCustomers, customerRows); err != nil {
		return err
	}
	return f.Write(w)
}

// ExportPayments writes the payments ledger with a running balance per currency
func (e *Exporter) ExportPayments(w io.Writer, payments []model.PaymentTransaction) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetPayments); err != nil {
		return err
	}

	rows := [][]interface{}{{
		"Date", "Direction", "Description", "Category", "Method", "Currency", "Amount", "Balance", "Related Document",
	}}
	balance := map[string]float64{}
	for _, p := range payments {
		signed := p.Amount
		if p.Direction == model.PaymentOut {
			signed = -signed
		}
		balance[p.Currency] += signed
		rows = append(rows, []interface{}{
			p.Date, string(p.Direction), p.Description, p.Category, p.PaymentMethod,
			p.Currency, signed, balance[p.Currency], p.RelatedDocumentID,
		})
	}

	if err := writeSheet(f, SheetPayments, rows); err != nil {
		return err
	}
	return f.Write(w)
}

// ExportInventory writes the stock list
func (e *Exporter) ExportInventory(w io.Writer, items []model.InventoryItem) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetInventory); err != nil {
		return err
	}

	rows := [][]interface{}{{
		"Name", "SKU", "Quantity On Hand", "Unit Price", "Cost Price", "Supplier", "Last Reorder",
	}}
	for _, item := range items {
		var cost interface{}
		if item.CostPrice != nil {
			cost = *item.CostPrice
		}
		rows = append(rows, []interface{}{
			item.Name, item.SKU, item.QuantityOnHand, item.UnitPrice, cost, item.Supplier, item.LastReorderDate,
		})
	}

	if err := writeSheet(f, SheetInventory, rows); err != nil {
		return err
	}
	return f.Write(w)
}

// FormatPhone renders a valid number in international format and returns
// anything it cannot parse unchanged
func (e *Exporter) FormatPhone(raw string) string {
	if raw == "" {
		return ""
	}
	num, err := libphonenumber.Parse(raw, e.region)
	if err != nil || !libphonenumber.IsValidNumber(num) {
		return raw
	}
	return libphonenumber.Format(num, libphonenumber.INTERNATIONAL)
}

// writeSheet creates sheet when missing and fills it from A1 with a bold header row
func writeSheet(f *excelize.File, sheet string, rows [][]interface{}) error {
	if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
		}
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}

	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil
	}
	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, header); err != nil {
		return err
	}
	lastCol, _ := excelize.ColumnNumberToName(len(rows[0]))
	return f.SetColWidth(sheet, "A", lastCol, 16)
}
