package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lpg-backoffice/internal/database/models"
	apperrors "lpg-backoffice/internal/errors"
	"lpg-backoffice/internal/logger"
	"lpg-backoffice/internal/repository"
	"lpg-backoffice/internal/tenant"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// AddCylinderRequest records a batch of cylinders entering stock
type AddCylinderRequest struct {
	CylinderType models.CylinderType `json:"cylinder_type" validate:"required,oneof=DOMESTIC_14_2 COMMERCIAL_19 COMMERCIAL_47_5 FTL_5" example:"DOMESTIC_14_2"`
	Quantity     int                 `json:"quantity" validate:"required,gt=0,lte=100000"`
	Filled       *bool               `json:"filled" example:"true" default:"true"`
	UnitCost     float64             `json:"unit_cost" validate:"gte=0"`
	Supplier     string              `json:"supplier" validate:"max=150"`
	ReceivedOn   *time.Time          `json:"received_on"`
	Note         string              `json:"note" validate:"max=500"`
}

// StockSummary is the inventory per cylinder type
type StockSummary struct {
	Types        []repository.CylinderStock `json:"types"`
	TotalFilled  int64                      `json:"total_filled"`
	TotalEmpty   int64                      `json:"total_empty"`
	LowStock     []models.CylinderType      `json:"low_stock"`
	LowThreshold int64                      `json:"low_stock_threshold"`
}

// CylinderService handles cylinder stock entries
type CylinderService struct {
	repo      repository.CylinderRepositoryInterface
	settings  SettingServiceInterface
	validator *validator.Validate
	now       func() time.Time
}

// NewCylinderService creates a new cylinder service
func NewCylinderService(repo repository.CylinderRepositoryInterface, settings SettingServiceInterface, validator *validator.Validate) *CylinderService {
	return &CylinderService{
		repo:      repo,
		settings:  settings,
		validator: validator,
		now:       time.Now,
	}
}

// Add records a stock entry in the scope's tenant
func (s *CylinderService) Add(ctx context.Context, scope tenant.Scope, req *AddCylinderRequest) (*models.CylinderEntry, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	filled := true
	if req.Filled != nil {
		filled = *req.Filled
	}
	receivedOn := s.now().UTC()
	if req.ReceivedOn != nil {
		receivedOn = req.ReceivedOn.UTC()
	}
	entry := &models.CylinderEntry{
		CylinderType: req.CylinderType,
		Quantity:     req.Quantity,
		Filled:       filled,
		UnitCost:     roundMoney(req.UnitCost),
		Supplier:     strings.TrimSpace(req.Supplier),
		ReceivedOn:   receivedOn,
		Note:         strings.TrimSpace(req.Note),
	}
	if err := scope.Stamp(&entry.AdminID); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("add cylinders: %w", err)
	}
	return entry, nil
}

// List returns stock entries, optionally of one type
func (s *CylinderService) List(ctx context.Context, scope tenant.Scope, cylinderType models.CylinderType, page, pageSize int) (*PageResult[models.CylinderEntry], error) {
	if cylinderType != "" && !cylinderType.IsValid() {
		return nil, apperrors.NewValidationError("cylinder_type", "unknown cylinder type")
	}
	limit, offset, page := Pagination(page, pageSize)
	entries, total, err := s.repo.List(ctx, scope, cylinderType, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list cylinders: %w", err)
	}
	if entries == nil {
		entries = []models.CylinderEntry{}
	}
	return &PageResult[models.CylinderEntry]{Items: entries, Total: total, Page: page, PageSize: limit}, nil
}

// Get returns one stock entry
func (s *CylinderService) Get(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*models.CylinderEntry, error) {
	entry, err := s.repo.GetByID(ctx, scope, id)
	if err != nil {
		return nil, translate(err, apperrors.ErrCylinderEntryNotFound, "load cylinder entry")
	}
	return entry, nil
}

// Delete removes one stock entry
func (s *CylinderService) Delete(ctx context.Context, scope tenant.Scope, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, scope, id); err != nil {
		return translate(err, apperrors.ErrCylinderEntryNotFound, "delete cylinder entry")
	}
	return nil
}

// DeleteAll removes every stock entry of the scope's tenant and returns the count
func (s *CylinderService) DeleteAll(ctx context.Context, scope tenant.Scope) (int64, error) {
	n, err := s.repo.DeleteAll(ctx, scope)
	if err != nil {
		if apperrors.IsAuthorization(err) {
			return 0, err
		}
		return 0, fmt.Errorf("delete cylinders: %w", err)
	}
	logger.WithContext(ctx).WithField("deleted", n).Warn("all cylinder entries deleted")
	return n, nil
}

// Summary totals stock per type and flags types whose filled stock is under the tenant's
// low_stock_threshold setting
func (s *CylinderService) Summary(ctx context.Context, scope tenant.Scope) (*StockSummary, error) {
	types, err := s.repo.Summary(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("summarize stock: %w", err)
	}
	threshold := s.settings.Int(ctx, scope, SettingLowStockThreshold)

	summary := &StockSummary{
		Types:        types,
		LowStock:     []models.CylinderType{},
		LowThreshold: int64(threshold),
	}
	if summary.Types == nil {
		summary.Types = []repository.CylinderStock{}
	}
	for _, t := range types {
		summary.TotalFilled += t.Filled
		summary.TotalEmpty += t.Empty
		if t.Filled < int64(threshold) {
			summary.LowStock = append(summary.LowStock, t.CylinderType)
		}
	}
	return summary, nil
}
