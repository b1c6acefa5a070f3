package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lpg-backoffice/internal/auth"
	"lpg-backoffice/internal/database/models"
	apperrors "lpg-backoffice/internal/errors"
	"lpg-backoffice/internal/logger"
	"lpg-backoffice/internal/repository"
	"lpg-backoffice/internal/tenant"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateStaffRequest represents the data needed to add a staff member
type CreateStaffRequest struct {
	Email    string      `json:"email" validate:"required,email,max=255"`
	Password string      `json:"password" validate:"required,min=8,max=72"`
	Name     string      `json:"name" validate:"required,max=100"`
	Phone    string      `json:"phone" validate:"max=20"`
	Role     models.Role `json:"role" validate:"required,oneof=MANAGER ACCOUNTANT STAFF" example:"STAFF"`
}

// UpdateStaffRequest represents a partial staff update
type UpdateStaffRequest struct {
	Name     *string            `json:"name" validate:"omitempty,max=100"`
	Phone    *string            `json:"phone" validate:"omitempty,max=20"`
	Role     *models.Role       `json:"role" validate:"omitempty,oneof=MANAGER ACCOUNTANT STAFF"`
	Status   *models.UserStatus `json:"status" validate:"omitempty,oneof=ACTIVE SUSPENDED"`
	Password *string            `json:"password" validate:"omitempty,min=8,max=72"`
}

// StaffResponse is a staff member with their effective module access
type StaffResponse struct {
	*UserResponse
	Access map[models.Module]models.AccessLevel `json:"access,omitempty"`
}

// StaffService handles business logic for an admin's employees
type StaffService struct {
	users     repository.UserRepositoryInterface
	access    AccessServiceInterface
	validator *validator.Validate
}

// NewStaffService creates a new staff service
func NewStaffService(users repository.UserRepositoryInterface, access AccessServiceInterface, validator *validator.Validate) *StaffService {
	return &StaffService{
		users:     users,
		access:    access,
		validator: validator,
	}
}

// List returns the tenant's staff
func (s *StaffService) List(ctx context.Context, scope tenant.Scope, page, pageSize int) (*PageResult[UserResponse], error) {
	limit, offset, page := Pagination(page, pageSize)
	users, total, err := s.users.ListStaff(ctx, scope, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	items := make([]UserResponse, 0, len(users))
	for i := range users {
		items = append(items, *NewUserResponse(&users[i]))
	}
	return &PageResult[UserResponse]{Items: items, Total: total, Page: page, PageSize: limit}, nil
}

// Get returns one staff member with their effective access
func (s *StaffService) Get(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*StaffResponse, error) {
	user, err := s.users.GetStaff(ctx, scope, id)
	if err != nil {
		return nil, translate(err, apperrors.ErrStaffNotFound, "load staff member")
	}
	access, err := s.access.AccessMap(ctx, auth.NewIdentity(user))
	if err != nil {
		return nil, err
	}
	return &StaffResponse{UserResponse: NewUserResponse(user), Access: access}, nil
}

// Create adds a verified staff member to the scope's tenant
func (s *StaffService) Create(ctx context.Context, scope tenant.Scope, req *CreateStaffRequest) (*UserResponse, error) {
	req.Email = normalizeEmail(req.Email)
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Role.IsStaff() {
		return nil, apperrors.ErrInvalidRole
	}
	adminID, err := scope.TenantID()
	if err != nil {
		return nil, err
	}

	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(req.Name),
		Phone:        strings.TrimSpace(req.Phone),
		Role:         req.Role,
		Status:       models.UserStatusActive,
		IsVerified:   true,
		AdminID:      &adminID,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if isDuplicate(err) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("create staff member: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"staff_id": user.ID,
		"role":     user.Role,
	}).Info("staff member created")
	return NewUserResponse(user), nil
}

// Update changes a staff member of the scope's tenant
func (s *StaffService) Update(ctx context.Context, scope tenant.Scope, id uuid.UUID, req *UpdateStaffRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	user, err := s.users.GetStaff(ctx, scope, id)
	if err != nil {
		return nil, translate(err, apperrors.ErrStaffNotFound, "load staff member")
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		user.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Role != nil {
		if !req.Role.IsStaff() {
			return nil, apperrors.ErrInvalidRole
		}
		user.Role = *req.Role
	}
	if req.Status != nil {
		user.Status = *req.Status
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update staff member: %w", err)
	}
	return NewUserResponse(user), nil
}

// Delete removes a staff member and their explicit permissions
func (s *StaffService) Delete(ctx context.Context, scope tenant.Scope, id uuid.UUID) error {
	user, err := s.users.GetStaff(ctx, scope, id)
	if err != nil {
		return translate(err, apperrors.ErrStaffNotFound, "load staff member")
	}
	if err := s.users.Delete(ctx, user.ID); err != nil {
		return translate(err, apperrors.ErrStaffNotFound, "delete staff member")
	}
	logger.WithContext(ctx).WithField("staff_id", user.ID).Info("staff member deleted")
	return nil
}
