package service

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"costr/internal/model"
	"costr/internal/repository"
	"costr/internal/theme"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// --- DTOs ---

type SetupRequest struct {
	CompanyName    string `json:"companyName" binding:"required"`
	CompanyEmail   string `json:"companyEmail" binding:"omitempty,email"`
	Currency       string `json:"currency" binding:"required,iso4217"`
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
}

// SettingsPatch carries the fields to change; nil fields are left alone.
// ClearSecondaryTaxRate removes the secondary rate and wins over SecondaryTaxRate.
type SettingsPatch struct {
	Company               *model.CompanyInfo `json:"company"`
	DefaultCurrency       *string            `json:"defaultCurrency" binding:"omitempty,iso4217"`
	DefaultTaxRate        *float64           `json:"defaultTaxRate" binding:"omitempty,gte=0,lte=100"`
	SecondaryTaxRate      *float64           `json:"secondaryTaxRate" binding:"omitempty,gte=0,lte=100"`
	ClearSecondaryTaxRate bool               `json:"clearSecondaryTaxRate"`
	SelectedPDFTemplate   *model.PDFTemplate `json:"selectedPdfTemplate" binding:"omitempty,oneof=Template1 Template2 Template3"`
	PrimaryColor          *string            `json:"primaryColor"`
	SecondaryColor        *string            `json:"secondaryColor"`
	MaxUserSlots          *int               `json:"maxUserSlots" binding:"omitempty,gte=1"`
}

type UserSlotRequest struct {
	Name string `json:"name" binding:"required"`
	Role string `json:"role" binding:"required"`
}

// ThemeApplier receives the derived theme whenever the colours change
type ThemeApplier interface {
	ApplyTheme(t theme.Theme)
}

// --- Interface ---

type SettingsService interface {
	Settings() model.AppSettings
	IsSetupComplete() bool
	Theme() theme.Theme
	CompleteSetup(ctx context.Context, req SetupRequest) (model.AppSettings, error)
	UpdateSettings(ctx context.Context, patch SettingsPatch) (model.AppSettings, error)
	AddUserSlot(ctx context.Context, name, role string) (string, error)
	UpdateUserSlot(ctx context.Context, id, name, role string) error
	DeleteUserSlot(ctx context.Context, id string) error
}

type settingsService struct {
	mu       sync.Mutex
	store    *repository.SingletonStore[model.AppSettings]
	applier  ThemeApplier
	validate *validator.Validate
}

// NewSettingsService wraps the settings store. applier may be nil.
func NewSettingsService(store *repository.SingletonStore[model.AppSettings], applier ThemeApplier) SettingsService {
	v := validator.New()
	v.SetTagName("binding")
	return &settingsService{
		store:    store,
		applier:  applier,
		validate: v,
	}
}

// --- Implementation ---

func (s *settingsService) Settings() model.AppSettings {
	return s.store.Get().Clone()
}

func (s *settingsService) IsSetupComplete() bool {
	return s.store.Get().IsSetupComplete
}

// Theme derives the active theme. Before setup, and for stored colours that no
// longer parse, the default colours are used.
func (s *settingsService) Theme() theme.Theme {
	settings := s.store.Get()
	if settings.IsSetupComplete {
		if t, err := theme.Derive(settings.PrimaryColor, settings.SecondaryColor); err == nil {
			return t
		}
	}
	t, _ := theme.Derive(model.DefaultPrimaryColor, model.DefaultSecondaryColor)
	return t
}

func (s *settingsService) CompleteSetup(ctx context.Context, req SetupRequest) (model.AppSettings, error) {
	req.CompanyName = strings.TrimSpace(req.CompanyName)
	req.Currency = strings.ToUpper(strings.TrimSpace(req.Currency))
	if req.PrimaryColor == "" {
		req.PrimaryColor = model.DefaultPrimaryColor
	}
	if req.SecondaryColor == "" {
		req.SecondaryColor = model.DefaultSecondaryColor
	}

	if err := s.validate.Struct(req); err != nil {
		return model.AppSettings{}, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	derived, err := theme.Derive(req.PrimaryColor, req.SecondaryColor)
	if err != nil {
		return model.AppSettings{}, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.store.Get()
	if prev.IsSetupComplete {
		return model.AppSettings{}, ErrSetupAlreadyComplete
	}

	next := model.DefaultSettings()
	next.Company = model.CompanyInfo{Name: req.CompanyName, Email: req.CompanyEmail}
	next.DefaultCurrency = req.Currency
	next.PrimaryColor = req.PrimaryColor
	next.SecondaryColor = req.SecondaryColor
	if prev.SelectedPDFTemplate != "" {
		next.SelectedPDFTemplate = prev.SelectedPDFTemplate
	}
	next.UserSlots = []model.UserSlot{model.NewPrimaryAdminSlot(req.CompanyName + " Admin")}
	next.MaxUserSlots = model.MaxUserSlots
	next.IsSetupComplete = true

	if err := s.commit(ctx, next); err != nil {
		return model.AppSettings{}, err
	}
	s.applyTheme(derived)
	return next.Clone(), nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, patch SettingsPatch) (model.AppSettings, error) {
	if err := s.validate.Struct(patch); err != nil {
		return model.AppSettings{}, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.store.Get()
	if !current.IsSetupComplete {
		return model.AppSettings{}, ErrSetupIncomplete
	}

	next := current.Clone()
	if patch.Company != nil {
		next.Company = *patch.Company
	}
	if patch.DefaultCurrency != nil {
		next.DefaultCurrency = strings.ToUpper(*patch.DefaultCurrency)
	}
	if patch.DefaultTaxRate != nil {
		next.DefaultTaxRate = *patch.DefaultTaxRate
	}
	if patch.SecondaryTaxRate != nil {
		rate := *patch.SecondaryTaxRate
		next.SecondaryTaxRate = &rate
	}
	if patch.ClearSecondaryTaxRate {
		next.SecondaryTaxRate = nil
	}
	if patch.SelectedPDFTemplate != nil {
		next.SelectedPDFTemplate = *patch.SelectedPDFTemplate
	}
	if patch.PrimaryColor != nil {
		next.PrimaryColor = *patch.PrimaryColor
	}
	if patch.SecondaryColor != nil {
		next.SecondaryColor = *patch.SecondaryColor
	}
	if patch.MaxUserSlots != nil {
		if *patch.MaxUserSlots < 1 || *patch.MaxUserSlots < len(next.UserSlots) {
			return model.AppSettings{}, fmt.Errorf("%w: maxUserSlots %d is below the %d slots in use",
				ErrInvalidSettings, *patch.MaxUserSlots, len(next.UserSlots))
		}
		next.MaxUserSlots = *patch.MaxUserSlots
	}

	colorsChanged := patch.PrimaryColor != nil || patch.SecondaryColor != nil
	var derived theme.Theme
	if colorsChanged {
		t, err := theme.Derive(next.PrimaryColor, next.SecondaryColor)
		if err != nil {
			return model.AppSettings{}, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
		}
		derived = t
	}

	if err := s.commit(ctx, next); err != nil {
		return model.AppSettings{}, err
	}
	if colorsChanged {
		s.applyTheme(derived)
	}
	return next.Clone(), nil
}

// AddUserSlot appends an active, non-admin slot and returns its id
func (s *settingsService) AddUserSlot(ctx context.Context, name, role string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.store.Get()
	if !current.IsSetupComplete {
		return "", ErrSetupIncomplete
	}
	if len(current.UserSlots) >= current.MaxUserSlots {
		return "", ErrSlotCapacityExceeded
	}

	slot := model.UserSlot{
		ID:       uuid.NewString(),
		Name:     name,
		Role:     role,
		IsActive: true,
	}
	next := current.Clone()
	next.UserSlots = append(next.UserSlots, slot)

	if err := s.commit(ctx, next); err != nil {
		return "", err
	}
	return slot.ID, nil
}

// UpdateUserSlot renames a slot and changes its role. Unknown ids are ignored.
func (s *settingsService) UpdateUserSlot(ctx context.Context, id, name, role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.store.Get()
	if !current.IsSetupComplete {
		return ErrSetupIncomplete
	}

	next := current.Clone()
	found := false
	for i := range next.UserSlots {
		if next.UserSlots[i].ID == id {
			next.UserSlots[i].Name = name
			next.UserSlots[i].Role = role
			found = true
		}
	}
	if !found {
		return nil
	}
	return s.commit(ctx, next)
}

// DeleteUserSlot removes a slot. The primary admin and the last remaining
// slot are protected; unknown ids are ignored.
func (s *settingsService) DeleteUserSlot(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.store.Get()
	if !current.IsSetupComplete {
		return ErrSetupIncomplete
	}

	for _, slot := range current.UserSlots {
		if slot.ID == id && slot.IsPrimaryAdmin {
			return ErrCannotDeletePrimaryAdmin
		}
	}
	if len(current.UserSlots) <= 1 {
		return ErrMinimumOneSlotRequired
	}

	next := current.Clone()
	next.UserSlots = next.UserSlots[:0]
	for _, slot := range current.UserSlots {
		if slot.ID != id {
			next.UserSlots = append(next.UserSlots, slot)
		}
	}
	if len(next.UserSlots) == len(current.UserSlots) {
		return nil
	}
	return s.commit(ctx, next)
}

// commit writes next and confirms the store accepted it
func (s *settingsService) commit(ctx context.Context, next model.AppSettings) error {
	s.store.Put(ctx, next)
	if !reflect.DeepEqual(s.store.Get(), next) {
		return ErrNotSaved
	}
	return nil
}

func (s *settingsService) applyTheme(t theme.Theme) {
	if s.applier != nil {
		s.applier.ApplyTheme(t)
	}
}
