package service

import (
	"context"
	"encoding/json"
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

const billNumberAttempts = 3

// CreateBillRequest represents the data needed to bill a customer
type CreateBillRequest struct {
	CustomerID uuid.UUID         `json:"customer_id" validate:"required"`
	Items      []models.BillItem `json:"items" validate:"required,min=1,max=50,dive"`
	TaxPercent *float64          `json:"tax_percent" validate:"omitempty,gte=0,lte=100"`
	IssuedOn   *time.Time        `json:"issued_on"`
	Note       string            `json:"note" validate:"max=500"`
}

// BillListParams narrows a bill listing
type BillListParams struct {
	CustomerID *uuid.UUID
	Status     models.BillStatus
	Page       int
	PageSize   int
}

// BillingService handles bills
type BillingService struct {
	repo      repository.BillRepositoryInterface
	settings  SettingServiceInterface
	validator *validator.Validate
	now       func() time.Time
}

// NewBillingService creates a new billing service
func NewBillingService(repo repository.BillRepositoryInterface, settings SettingServiceInterface, validator *validator.Validate) *BillingService {
	return &BillingService{
		repo:      repo,
		settings:  settings,
		validator: validator,
		now:       time.Now,
	}
}

// SetClock overrides the time source
func (s *BillingService) SetClock(now func() time.Time) {
	s.now = now
}

// Create prices the items, numbers the bill and adds its total to the customer's balance
func (s *BillingService) Create(ctx context.Context, scope tenant.Scope, req *CreateBillRequest) (*models.Bill, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	taxPercent := 0.0
	if req.TaxPercent != nil {
		taxPercent = *req.TaxPercent
	} else {
		taxPercent = s.settings.Float(ctx, scope, SettingTaxPercent)
	}

	items := make([]models.BillItem, len(req.Items))
	subtotal := 0.0
	for i, item := range req.Items {
		if item.CylinderType != "" && !item.CylinderType.IsValid() {
			return nil, apperrors.NewValidationError("items", "unknown cylinder type")
		}
		item.Description = strings.TrimSpace(item.Description)
		item.UnitPrice = roundMoney(item.UnitPrice)
		item.Amount = roundMoney(float64(item.Quantity) * item.UnitPrice)
		subtotal += item.Amount
		items[i] = item
	}
	subtotal = roundMoney(subtotal)
	tax := roundMoney(subtotal * taxPercent / 100)

	encoded, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode bill items: %w", err)
	}

	issuedOn := s.now().UTC()
	if req.IssuedOn != nil {
		issuedOn = req.IssuedOn.UTC()
	}

	bill := &models.Bill{
		CustomerID: req.CustomerID,
		Items:      encoded,
		Subtotal:   subtotal,
		TaxPercent: taxPercent,
		Tax:        tax,
		Total:      roundMoney(subtotal + tax),
		Status:     models.BillStatusUnpaid,
		IssuedOn:   issuedOn,
		Note:       strings.TrimSpace(req.Note),
	}
	if err := scope.Stamp(&bill.AdminID); err != nil {
		return nil, err
	}

	prefix := fmt.Sprintf("INV-%s-", s.now().UTC().Format("20060102"))
	// a duplicate means a concurrent create took the number; re-read and try the next one
	for attempt := 0; attempt < billNumberAttempts; attempt++ {
		last, err := s.repo.LastSequence(ctx, scope, prefix)
		if err != nil {
			return nil, fmt.Errorf("number bill: %w", err)
		}
		bill.ID = uuid.Nil
		bill.BillNumber = fmt.Sprintf("%s%04d", prefix, last+1)

		err = s.repo.CreateForCustomer(ctx, bill)
		if err == nil {
			logger.WithContext(ctx).WithFields(map[string]interface{}{
				"bill_number": bill.BillNumber,
				"customer_id": bill.CustomerID,
				"total":       bill.Total,
			}).Info("bill created")
			return bill, nil
		}
		if !isDuplicate(err) {
			return nil, translate(err, apperrors.ErrCustomerNotFound, "create bill")
		}
	}
	return nil, apperrors.ErrBillNumberExists
}

// List returns bills, newest first
func (s *BillingService) List(ctx context.Context, scope tenant.Scope, params BillListParams) (*PageResult[models.Bill], error) {
	switch params.Status {
	case "", models.BillStatusUnpaid, models.BillStatusPartial, models.BillStatusPaid:
	default:
		return nil, apperrors.NewValidationError("status", "unknown bill status")
	}
	limit, offset, page := Pagination(params.Page, params.PageSize)
	filter := repository.BillFilter{CustomerID: params.CustomerID, Status: params.Status}
	bills, total, err := s.repo.List(ctx, scope, filter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	if bills == nil {
		bills = []models.Bill{}
	}
	return &PageResult[models.Bill]{Items: bills, Total: total, Page: page, PageSize: limit}, nil
}

// Get returns one bill
func (s *BillingService) Get(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*models.Bill, error) {
	bill, err := s.repo.GetByID(ctx, scope, id)
	if err != nil {
		return nil, translate(err, apperrors.ErrBillNotFound, "load bill")
	}
	return bill, nil
}

// Delete removes a bill. Payments made against it stay on the customer as credit.
func (s *BillingService) Delete(ctx context.Context, scope tenant.Scope, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, scope, id); err != nil {
		return translate(err, apperrors.ErrBillNotFound, "delete bill")
	}
	logger.WithContext(ctx).WithField("bill_id", id).Info("bill deleted")
	return nil
}
