package service

import (
	"context"
	"errors"
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
	"gorm.io/gorm"
)

// CreatePaymentRequest represents a payment received from a customer
type CreatePaymentRequest struct {
	CustomerID uuid.UUID            `json:"customer_id" validate:"required"`
	BillID     *uuid.UUID           `json:"bill_id"`
	Amount     float64              `json:"amount" validate:"required,gt=0"`
	Method     models.PaymentMethod `json:"method" validate:"required,oneof=CASH UPI CARD BANK_TRANSFER CHEQUE" example:"UPI"`
	Reference  string               `json:"reference" validate:"max=100"`
	PaidOn     *time.Time           `json:"paid_on"`
	Note       string               `json:"note" validate:"max=500"`
}

// PaymentService handles payments
type PaymentService struct {
	repo      repository.PaymentRepositoryInterface
	validator *validator.Validate
	now       func() time.Time
}

// NewPaymentService creates a new payment service
func NewPaymentService(repo repository.PaymentRepositoryInterface, validator *validator.Validate) *PaymentService {
	return &PaymentService{
		repo:      repo,
		validator: validator,
		now:       time.Now,
	}
}

// Create records a payment, updating the bill and the customer's balance together
func (s *PaymentService) Create(ctx context.Context, scope tenant.Scope, req *CreatePaymentRequest) (*models.Payment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	amount := roundMoney(req.Amount)
	if amount <= 0 {
		return nil, apperrors.NewValidationError("amount", "must be at least 0.01")
	}

	paidOn := s.now().UTC()
	if req.PaidOn != nil {
		paidOn = req.PaidOn.UTC()
	}
	payment := &models.Payment{
		CustomerID: req.CustomerID,
		BillID:     req.BillID,
		Amount:     amount,
		Method:     req.Method,
		Reference:  strings.TrimSpace(req.Reference),
		PaidOn:     paidOn,
		Note:       strings.TrimSpace(req.Note),
	}
	if err := scope.Stamp(&payment.AdminID); err != nil {
		return nil, err
	}

	if err := s.repo.Apply(ctx, payment); err != nil {
		switch {
		case apperrors.IsValidation(err):
			return nil, err
		case errors.Is(err, gorm.ErrRecordNotFound) && req.BillID != nil:
			return nil, apperrors.ErrBillNotFound
		default:
			return nil, translate(err, apperrors.ErrCustomerNotFound, "record payment")
		}
	}
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"payment_id":  payment.ID,
		"customer_id": payment.CustomerID,
		"amount":      payment.Amount,
	}).Info("payment recorded")
	return payment, nil
}

// List returns payments, optionally of one customer
func (s *PaymentService) List(ctx context.Context, scope tenant.Scope, customerID *uuid.UUID, page, pageSize int) (*PageResult[models.Payment], error) {
	limit, offset, page := Pagination(page, pageSize)
	payments, total, err := s.repo.List(ctx, scope, customerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	if payments == nil {
		payments = []models.Payment{}
	}
	return &PageResult[models.Payment]{Items: payments, Total: total, Page: page, PageSize: limit}, nil
}

// Get returns one payment
func (s *PaymentService) Get(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*models.Payment, error) {
	payment, err := s.repo.GetByID(ctx, scope, id)
	if err != nil {
		return nil, translate(err, apperrors.ErrPaymentNotFound, "load payment")
	}
	return payment, nil
}

// Delete removes a payment and reverses its effect on the bill and balance
func (s *PaymentService) Delete(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*models.Payment, error) {
	payment, err := s.repo.Revert(ctx, scope, id)
	if err != nil {
		return nil, translate(err, apperrors.ErrPaymentNotFound, "delete payment")
	}
	logger.WithContext(ctx).WithField("payment_id", id).Info("payment reverted")
	return payment, nil
}
