package model

import (
	"github.com/google/uuid"
)

// PDFTemplate selects the print layout used by the presentation layer
type PDFTemplate string

const (
	PDFTemplateStandard PDFTemplate = "Template1"
	PDFTemplateModern   PDFTemplate = "Template2"
	PDFTemplateReceipt  PDFTemplate = "Template3"
)

const (
	DefaultCurrency       = "ZAR"
	DefaultTaxRate        = 15.0
	MaxUserSlots          = 5
	DefaultPrimaryColor   = "#A95DF9"
	DefaultSecondaryColor = "#5C75FA"
)

// SupportedCurrencies lists the currencies offered during setup
var SupportedCurrencies = []string{"ZAR", "USD", "EUR", "GBP", "JPY", "CAD", "AUD"}

// UserSlot is a named seat within the account. It is not a login identity.
type UserSlot struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Role           string `json:"role"`     // e.g. Administrator, Sales User
	IsActive       bool   `json:"isActive"` // Managed by the admin, not used for login
	IsPrimaryAdmin bool   `json:"isPrimaryAdmin"`
}

// AppSettings is the single settings record of the application
type AppSettings struct {
	Company             CompanyInfo `json:"company"`
	DefaultCurrency     string      `json:"defaultCurrency"`
	DefaultTaxRate      float64     `json:"defaultTaxRate"`             // Percentage
	SecondaryTaxRate    *float64    `json:"secondaryTaxRate,omitempty"` // Percentage
	SelectedPDFTemplate PDFTemplate `json:"selectedPdfTemplate"`
	IsSetupComplete     bool        `json:"isSetupComplete"`
	PrimaryColor        string      `json:"primaryColor"`
	SecondaryColor      string      `json:"secondaryColor"`
	UserSlots           []UserSlot  `json:"userSlots"`
	MaxUserSlots        int         `json:"maxUserSlots"`
}

// NewPrimaryAdminSlot builds the protected administrator seat with a fresh id
func NewPrimaryAdminSlot(name string) UserSlot {
	return UserSlot{
		ID:             uuid.NewString(),
		Name:           name,
		Role:           "Administrator",
		IsActive:       true,
		IsPrimaryAdmin: true,
	}
}

// DefaultSettings returns the settings used before first-run setup
func DefaultSettings() AppSettings {
	return AppSettings{
		Company:             CompanyInfo{},
		DefaultCurrency:     DefaultCurrency,
		DefaultTaxRate:      DefaultTaxRate,
		SelectedPDFTemplate: PDFTemplateStandard,
		IsSetupComplete:     false,
		PrimaryColor:        DefaultPrimaryColor,
		SecondaryColor:      DefaultSecondaryColor,
		UserSlots:           []UserSlot{NewPrimaryAdminSlot("Admin User")},
		MaxUserSlots:        MaxUserSlots,
	}
}

// Clone returns a copy that shares no slices or pointers with s
func (s AppSettings) Clone() AppSettings {
	out := s
	out.UserSlots = append([]UserSlot(nil), s.UserSlots...)
	if s.SecondaryTaxRate != nil {
		rate := *s.SecondaryTaxRate
		out.SecondaryTaxRate = &rate
	}
	return out
}
