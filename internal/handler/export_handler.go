package handler

import (
	"bytes"
	"net/http"
	"time"

	"costr/internal/report"
	"costr/internal/service"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	exporter  *report.Exporter
	documents service.DocumentService
	customers service.CustomerService
	payments  service.PaymentService
	inventory service.InventoryService
}

func NewExportHandler(
	exporter *report.Exporter,
	documents service.DocumentService,
	customers service.CustomerService,
	payments service.PaymentService,
	inventory service.InventoryService,
) *ExportHandler {
	return &ExportHandler{
		exporter:  exporter,
		documents: documents,
		customers: customers,
		payments:  payments,
		inventory: inventory,
	}
}

func (h *ExportHandler) RegisterRoutes(router *gin.RouterGroup) {
	exports := router.Group("/api/exports")
	{
		exports.GET("/documents.xlsx", h.ExportDocuments)
		exports.GET("/payments.xlsx", h.ExportPayments)
		exports.GET("/inventory.xlsx", h.ExportInventory)
	}
}

// ExportDocuments downloads every document and its line items as a workbook
// @Summary      Export documents
// @Tags         exports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    file
// @Failure      500  {object}  response.Response
// @Router       /api/exports/documents.xlsx [get]
func (h *ExportHandler) ExportDocuments(c *gin.Context) {
	var buf bytes.Buffer
	docs := h.documents.ListDocuments(service.DocumentFilter{})
	if err := h.exporter.ExportDocuments(&buf, docs, h.customers.ListCustomers("")); err != nil {
		respondError(c, err)
		return
	}
	sendWorkbook(c, "documents", buf.Bytes())
}

// ExportPayments downloads the payment ledger with running balances
// @Summary      Export payments
// @Tags         exports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    file
// @Failure      500  {object}  response.Response
// @Router       /api/exports/payments.xlsx [get]
func (h *ExportHandler) ExportPayments(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.exporter.ExportPayments(&buf, h.payments.ListPayments(service.PaymentFilter{})); err != nil {
		respondError(c, err)
		return
	}
	sendWorkbook(c, "payments", buf.Bytes())
}

// ExportInventory downloads the stock list
// @Summary      Export inventory
// @Tags         exports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    file
// @Failure      500  {object}  response.Response
// @Router       /api/exports/inventory.xlsx [get]
func (h *ExportHandler) ExportInventory(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.exporter.ExportInventory(&buf, h.inventory.ListItems("")); err != nil {
		respondError(c, err)
		return
	}
	sendWorkbook(c, "inventory", buf.Bytes())
}

func sendWorkbook(c *gin.Context, name string, data []byte) {
	filename := name + "-" + time.Now().Format("2006-01-02") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, report.ContentType, data)
}
