package handler

import (
	"net/http"

	"costr/internal/model"
	"costr/internal/service"
	"costr/pkg/pagination"
	"costr/pkg/response"

	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	documentService service.DocumentService
}

func NewDocumentHandler(documentService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

func (h *DocumentHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/api")
	{
		api.GET("/documents", h.ListDocuments)
		api.POST("/documents", h.CreateDocument)
		api.GET("/documents/:id", h.GetDocument)
		api.PUT("/documents/:id", h.UpdateDocument)
		api.DELETE("/documents/:id", h.DeleteDocument)
		api.GET("/document-numbers/next", h.NextNumber)
	}
}

// ListDocuments handles retrieving paginated invoices and quotations
// @Summary      List documents
// @Description  Retrieves documents in creation order, optionally filtered
// @Tags         documents
// @Produce      json
// @Param        type    query     string  false  "Invoice or Quotation"
// @Param        status  query     string  false  "Draft, Sent, Paid, Overdue or Void"
// @Param        search  query     string  false  "Search by number or client name"
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Number of items per page (default 20)"
// @Success      200     {object}  response.Response{data=response.Page{items=[]model.Document}}
// @Failure      428     {object}  response.Response
// @Router       /api/documents [get]
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	p := pagination.Parse(c)
	docs := h.documentService.ListDocuments(service.DocumentFilter{
		DocType: model.DocumentType(c.Query("type")),
		Status:  c.Query("status"),
		Search:  c.Query("search"),
	})

	c.JSON(http.StatusOK, response.Paged(http.StatusOK, pagination.Window(docs, p), len(docs), p.Page, p.Limit))
}

// GetDocument returns one document
// @Summary      Get document
// @Tags         documents
// @Produce      json
// @Param        id   path      string  true  "Document ID"
// @Success      200  {object}  response.Response{data=model.Document}
// @Failure      404  {object}  response.Response
// @Router       /api/documents/{id} [get]
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	doc, err := h.documentService.GetDocument(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, doc))
}

// CreateDocument creates an invoice or quotation
// @Summary      Create document
// @Description  Generates the number when omitted and always derives the totals from the line items
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        payload  body      service.DocumentRequest  true  "Document Payload"
// @Success      201      {object}  response.Response{data=model.Document}
// @Failure      400      {object}  response.Response
// @Failure      503      {object}  response.Response "Storage unavailable"
// @Router       /api/documents [post]
func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	var req service.DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	doc, err := h.documentService.CreateDocument(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, doc))
}

// UpdateDocument replaces the editable fields of a document
// @Summary      Update document
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        id       path      string                   true  "Document ID"
// @Param        payload  body      service.DocumentRequest  true  "Document Payload"
// @Success      200      {object}  response.Response{data=model.Document}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/documents/{id} [put]
func (h *DocumentHandler) UpdateDocument(c *gin.Context) {
	var req service.DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	doc, err := h.documentService.UpdateDocument(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, doc))
}

// DeleteDocument removes a document
// @Summary      Delete document
// @Description  Deleting the highest-numbered document lets its number be generated again
// @Tags         documents
// @Produce      json
// @Param        id   path      string  true  "Document ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/documents/{id} [delete]
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	if err := h.documentService.DeleteDocument(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, "Document deleted successfully"))
}

// NextNumber previews the number the next document of a type would get
// @Summary      Next document number
// @Tags         documents
// @Produce      json
// @Param        type  query     string  true  "Invoice or Quotation"
// @Success      200   {object}  response.Response{data=object}
// @Failure      400   {object}  response.Response
// @Router       /api/document-numbers/next [get]
func (h *DocumentHandler) NextNumber(c *gin.Context) {
	docType := model.DocumentType(c.Query("type"))
	if docType != model.DocTypeInvoice && docType != model.DocTypeQuotation {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "type must be Invoice or Quotation"))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{
		"docType":   docType,
		"docNumber": h.documentService.NextNumber(docType),
	}))
}
