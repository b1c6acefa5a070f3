package service

import (
	"context"
	"fmt"
	"strings"

	"lpg-backoffice/internal/database/models"
	apperrors "lpg-backoffice/internal/errors"
	"lpg-backoffice/internal/logger"
	"lpg-backoffice/internal/repository"
	"lpg-backoffice/internal/tenant"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CreateCustomerRequest represents the data needed to create a customer
type CreateCustomerRequest struct {
	Name             string  `json:"name" validate:"required,max=150"`
	Phone            string  `json:"phone" validate:"max=20"`
	Email            string  `json:"email" validate:"omitempty,email,max=255"`
	Address          string  `json:"address" validate:"max=500"`
	ConnectionNumber string  `json:"connection_number" validate:"required,max=50"`
	CylindersHeld    int     `json:"cylinders_held" validate:"gte=0"`
	DepositAmount    float64 `json:"deposit_amount" validate:"gte=0"`
	IsActive         *bool   `json:"is_active" example:"true" default:"true"`
}

// UpdateCustomerRequest represents a partial customer update
type UpdateCustomerRequest struct {
	Name             *string  `json:"name" validate:"omitempty,max=150"`
	Phone            *string  `json:"phone" validate:"omitempty,max=20"`
	Email            *string  `json:"email" validate:"omitempty,email,max=255"`
	Address          *string  `json:"address" validate:"omitempty,max=500"`
	ConnectionNumber *string  `json:"connection_number" validate:"omitempty,min=1,max=50"`
	CylindersHeld    *int     `json:"cylinders_held" validate:"omitempty,gte=0"`
	DepositAmount    *float64 `json:"deposit_amount" validate:"omitempty,gte=0"`
	IsActive         *bool    `json:"is_active"`
}

// CustomerService handles business logic for customers
type CustomerService struct {
	repo      repository.CustomerRepositoryInterface
	validator *validator.Validate
}

// NewCustomerService creates a new customer service
func NewCustomerService(repo repository.CustomerRepositoryInterface, validator *validator.Validate) *CustomerService {
	return &CustomerService{
		repo:      repo,
		validator: validator,
	}
}

// List returns customers matching an optional search
func (s *CustomerService) List(ctx context.Context, scope tenant.Scope, query string, page, pageSize int) (*PageResult[models.Customer], error) {
	limit, offset, page := Pagination(page, pageSize)
	customers, total, err := s.repo.List(ctx, scope, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	if customers == nil {
		customers = []models.Customer{}
	}
	return &PageResult[models.Customer]{Items: customers, Total: total, Page: page, PageSize: limit}, nil
}

// Get returns one customer
func (s *CustomerService) Get(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*models.Customer, error) {
	customer, err := s.repo.GetByID(ctx, scope, id)
	if err != nil {
		return nil, translate(err, apperrors.ErrCustomerNotFound, "load customer")
	}
	return customer, nil
}

// Create adds a customer to the scope's tenant
func (s *CustomerService) Create(ctx context.Context, scope tenant.Scope, req *CreateCustomerRequest) (*models.Customer, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	customer := &models.Customer{
		Name:             strings.TrimSpace(req.Name),
		Phone:            strings.TrimSpace(req.Phone),
		Email:            normalizeEmail(req.Email),
		Address:          strings.TrimSpace(req.Address),
		ConnectionNumber: strings.TrimSpace(req.ConnectionNumber),
		CylindersHeld:    req.CylindersHeld,
		DepositAmount:    roundMoney(req.DepositAmount),
		IsActive:         isActive,
	}
	if err := scope.Stamp(&customer.AdminID); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, customer); err != nil {
		if isDuplicate(err) {
			return nil, apperrors.ErrCustomerExists
		}
		return nil, fmt.Errorf("create customer: %w", err)
	}
	logger.WithContext(ctx).WithField("customer_id", customer.ID).Info("customer created")
	return customer, nil
}

// Update changes a customer of the scope's tenant
func (s *CustomerService) Update(ctx context.Context, scope tenant.Scope, id uuid.UUID, req *UpdateCustomerRequest) (*models.Customer, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	customer, err := s.repo.GetByID(ctx, scope, id)
	if err != nil {
		return nil, translate(err, apperrors.ErrCustomerNotFound, "load customer")
	}

	if req.Name != nil {
		customer.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		customer.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Email != nil {
		customer.Email = normalizeEmail(*req.Email)
	}
	if req.Address != nil {
		customer.Address = strings.TrimSpace(*req.Address)
	}
	if req.ConnectionNumber != nil {
		customer.ConnectionNumber = strings.TrimSpace(*req.ConnectionNumber)
	}
	if req.CylindersHeld != nil {
		customer.CylindersHeld = *req.CylindersHeld
	}
	if req.DepositAmount != nil {
		customer.DepositAmount = roundMoney(*req.DepositAmount)
	}
	if req.IsActive != nil {
		customer.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, scope, customer); err != nil {
		if isDuplicate(err) {
			return nil, apperrors.ErrCustomerExists
		}
		return nil, translate(err, apperrors.ErrCustomerNotFound, "update customer")
	}
	return customer, nil
}

// Delete removes a customer with its bills and payments
func (s *CustomerService) Delete(ctx context.Context, scope tenant.Scope, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, scope, id); err != nil {
		return translate(err, apperrors.ErrCustomerNotFound, "delete customer")
	}
	logger.WithContext(ctx).WithField("customer_id", id).Info("customer deleted")
	return nil
}
