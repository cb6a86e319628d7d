package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"costr/internal/kvstore"
	"costr/internal/logger"
	"costr/internal/middleware"
	"costr/internal/model"
	"costr/internal/report"
	"costr/internal/repository"
	"costr/internal/service"

	"github.com/gin-gonic/gin"
)

type envelope struct {
	Status     string          `json:"status"`
	StatusCode int             `json:"status_code"`
	Data       json.RawMessage `json:"data"`
	Error      string          `json:"error"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	kv := kvstore.NewMemory()
	log := logger.Discard()
	settingsStore := repository.NewSingletonStore(kv, model.KeyAppSettings, model.DefaultSettings, log)
	documentStore := repository.NewRecordStore[model.Document](kv, model.KeyDocuments, log)
	customerStore := repository.NewRecordStore[model.Customer](kv, model.KeyCustomers, log)
	inventoryStore := repository.NewRecordStore[model.InventoryItem](kv, model.KeyInventoryItems, log)
	paymentStore := repository.NewRecordStore[model.PaymentTransaction](kv, model.KeyPaymentTransactions, log)

	settingsService := service.NewSettingsService(settingsStore, nil)
	documentService := service.NewDocumentService(documentStore, customerStore, settingsService)
	customerService := service.NewCustomerService(customerStore)
	inventoryService := service.NewInventoryService(inventoryStore)
	paymentService := service.NewPaymentService(paymentStore, settingsService)
	statisticsService := service.NewStatisticsService(documentStore, paymentStore, inventoryStore, settingsService)

	router := gin.New()
	NewSettingsHandler(settingsService).RegisterRoutes(router.Group(""))
	gated := router.Group("", middleware.RequireSetup(settingsService))
	NewDocumentHandler(documentService).RegisterRoutes(gated)
	NewCustomerHandler(customerService).RegisterRoutes(gated)
	NewInventoryHandler(inventoryService).RegisterRoutes(gated)
	NewPaymentHandler(paymentService).RegisterRoutes(gated)
	NewStatisticsHandler(statisticsService).RegisterRoutes(gated)
	NewExportHandler(report.NewExporter("ZA"), documentService, customerService, paymentService, inventoryService).RegisterRoutes(gated)
	return router
}

func do(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("%s %s: decode response: %v", method, path, err)
		}
	}
	return w, env
}

func setUp(t *testing.T, router *gin.Engine) {
	t.Helper()
	w, env := do(t, router, http.MethodPost, "/api/setup", `{"companyName":"Acme","currency":"USD"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("setup status = %d (%s)", w.Code, env.Error)
	}
}

func TestEntityRoutesRequireSetup(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/api/documents", "/api/customers", "/api/inventory", "/api/payments", "/api/statistics"} {
		w, _ := do(t, router, http.MethodGet, path, "")
		if w.Code != http.StatusPreconditionRequired {
			t.Fatalf("GET %s before setup = %d, want 428", path, w.Code)
		}
	}

	if w, _ := do(t, router, http.MethodGet, "/api/settings", ""); w.Code != http.StatusOK {
		t.Fatalf("settings should be reachable before setup, got %d", w.Code)
	}
	if w, _ := do(t, router, http.MethodPost, "/api/user-slots", `{"name":"Ann","role":"Sales"}`); w.Code != http.StatusPreconditionRequired {
		t.Fatalf("slot add before setup = %d, want 428", w.Code)
	}
}

func TestSetupRunsOnce(t *testing.T) {
	router := newTestRouter(t)
	setUp(t, router)

	w, env := do(t, router, http.MethodPost, "/api/setup", `{"companyName":"Other","currency":"EUR"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("second setup = %d, want 409", w.Code)
	}
	if env.Status != "error" || env.Error == "" {
		t.Fatalf("unexpected error envelope %+v", env)
	}

	_, env = do(t, router, http.MethodGet, "/api/settings", "")
	var settings model.AppSettings
	if err := json.Unmarshal(env.Data, &settings); err != nil {
		t.Fatalf("decode settings: %v", err)
	}
	if settings.Company.Name != "Acme" || settings.DefaultCurrency != "USD" || !settings.IsSetupComplete {
		t.Fatalf("settings changed by rejected setup: %+v", settings)
	}
}

func TestSetupValidation(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"malformed json", `{"companyName":`, http.StatusBadRequest},
		{"missing company", `{"currency":"USD"}`, http.StatusUnprocessableEntity},
		{"unknown currency", `{"companyName":"Acme","currency":"XYZ"}`, http.StatusUnprocessableEntity},
		{"bad colour", `{"companyName":"Acme","currency":"USD","primaryColor":"red"}`, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := do(t, router, http.MethodPost, "/api/setup", tt.body)
			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestPatchSettingsRejectsBadColour(t *testing.T) {
	router := newTestRouter(t)
	setUp(t, router)

	w, _ := do(t, router, http.MethodPatch, "/api/settings", `{"primaryColor":"#12"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}

	w, env := do(t, router, http.MethodPatch, "/api/settings", `{"primaryColor":"#336699"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("valid patch = %d (%s)", w.Code, env.Error)
	}
	_, env = do(t, router, http.MethodGet, "/api/theme", "")
	var body struct {
		Colors struct {
			Primary string `json:"primary"`
		} `json:"colors"`
	}
	if err := json.Unmarshal(env.Data, &body); err != nil {
		t.Fatalf("decode theme: %v", err)
	}
	if body.Colors.Primary != "#336699" {
		t.Fatalf("theme primary = %q", body.Colors.Primary)
	}
}

func TestDocumentLifecycle(t *testing.T) {
	router := newTestRouter(t)
	setUp(t, router)

	w, env := do(t, router, http.MethodPost, "/api/documents",
		`{"docType":"Invoice","client":{"name":"Bob"},"taxRate":15,"items":[{"description":"Widget","quantity":2,"unitPrice":10}]}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create = %d (%s)", w.Code, env.Error)
	}
	var doc model.Document
	if err := json.Unmarshal(env.Data, &doc); err != nil {
		t.Fatalf("decode document: %v", err)
	}
	if doc.DocNumber != "INV-0001" || doc.Subtotal != 20 || doc.TaxAmount != 3 || doc.Total != 23 {
		t.Fatalf("unexpected document %+v", doc)
	}
	if doc.Currency != "USD" || doc.Company.Name != "Acme" {
		t.Fatalf("settings defaults not applied: %+v", doc)
	}

	_, env = do(t, router, http.MethodGet, "/api/document-numbers/next?type=Invoice", "")
	var next struct {
		DocNumber string `json:"docNumber"`
	}
	if err := json.Unmarshal(env.Data, &next); err != nil {
		t.Fatalf("decode next number: %v", err)
	}
	if next.DocNumber != "INV-0002" {
		t.Fatalf("next number = %q", next.DocNumber)
	}

	if w, _ := do(t, router, http.MethodGet, "/api/document-numbers/next?type=Receipt", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("unknown type = %d, want 400", w.Code)
	}

	_, env = do(t, router, http.MethodGet, "/api/documents?type=Invoice", "")
	var page struct {
		Items []model.Document `json:"items"`
		Total int              `json:"total"`
	}
	if err := json.Unmarshal(env.Data, &page); err != nil {
		t.Fatalf("decode page: %v", err)
	}
	if page.Total != 1 || len(page.Items) != 1 || page.Items[0].ID != doc.ID {
		t.Fatalf("unexpected page %+v", page)
	}

	if w, _ := do(t, router, http.MethodDelete, "/api/documents/"+doc.ID, ""); w.Code != http.StatusOK {
		t.Fatalf("delete = %d", w.Code)
	}
	if w, _ := do(t, router, http.MethodGet, "/api/documents/"+doc.ID, ""); w.Code != http.StatusNotFound {
		t.Fatalf("get deleted = %d, want 404", w.Code)
	}
}

func TestDocumentRejectsInvalidRequests(t *testing.T) {
	router := newTestRouter(t)
	setUp(t, router)

	w, _ := do(t, router, http.MethodPost, "/api/documents", `{"docType":"Receipt"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}

	if w, env := do(t, router, http.MethodPost, "/api/documents", `{"docType":"Invoice","docNumber":"INV-0007"}`); w.Code != http.StatusCreated {
		t.Fatalf("create = %d (%s)", w.Code, env.Error)
	}
	if w, _ := do(t, router, http.MethodPost, "/api/documents", `{"docType":"Invoice","docNumber":"INV-0007"}`); w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("duplicate number = %d, want 422", w.Code)
	}
}

func TestUserSlotConflicts(t *testing.T) {
	router := newTestRouter(t)
	setUp(t, router)

	_, env := do(t, router, http.MethodGet, "/api/settings", "")
	var settings model.AppSettings
	if err := json.Unmarshal(env.Data, &settings); err != nil {
		t.Fatalf("decode settings: %v", err)
	}
	adminID := settings.UserSlots[0].ID

	if w, _ := do(t, router, http.MethodDelete, "/api/user-slots/"+adminID, ""); w.Code != http.StatusConflict {
		t.Fatalf("delete admin = %d, want 409", w.Code)
	}

	for i := 0; i < settings.MaxUserSlots-1; i++ {
		if w, env := do(t, router, http.MethodPost, "/api/user-slots", `{"name":"Ann","role":"Sales"}`); w.Code != http.StatusCreated {
			t.Fatalf("add slot %d = %d (%s)", i, w.Code, env.Error)
		}
	}
	if w, _ := do(t, router, http.MethodPost, "/api/user-slots", `{"name":"Extra","role":"Sales"}`); w.Code != http.StatusConflict {
		t.Fatalf("add past capacity = %d, want 409", w.Code)
	}
}

func TestExportDocumentsWorkbook(t *testing.T) {
	router := newTestRouter(t)
	setUp(t, router)

	w, _ := do(t, router, http.MethodGet, "/api/exports/documents.xlsx", "")
	if w.Code != http.StatusOK {
		t.Fatalf("export = %d", w.Code)
	}
	if got := w.Header().Get("Content-Type"); got != report.ContentType {
		t.Fatalf("content type = %q", got)
	}
	if w.Header().Get("Content-Disposition") == "" || w.Body.Len() == 0 {
		t.Fatal("expected an attachment body")
	}
}
