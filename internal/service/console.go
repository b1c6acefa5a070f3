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

	"github.com/google/uuid"
)

// SetAdminStatusRequest suspends or reactivates a tenant
type SetAdminStatusRequest struct {
	Status models.UserStatus `json:"status" binding:"required" example:"SUSPENDED"`
}

// AdminStatusResult reports how many accounts a status change touched
type AdminStatusResult struct {
	AdminID  uuid.UUID         `json:"admin_id"`
	Status   models.UserStatus `json:"status"`
	Accounts int64             `json:"accounts"`
}

// ConsoleService backs the platform operator console
type ConsoleService struct {
	platform repository.PlatformRepositoryInterface
	users    repository.UserRepositoryInterface
	backups  BackupServiceInterface
}

// NewConsoleService creates a new console service
func NewConsoleService(platform repository.PlatformRepositoryInterface, users repository.UserRepositoryInterface, backups BackupServiceInterface) *ConsoleService {
	return &ConsoleService{
		platform: platform,
		users:    users,
		backups:  backups,
	}
}

// ListAdmins returns tenants with their staff and customer counts
func (s *ConsoleService) ListAdmins(ctx context.Context, query string, page, pageSize int) (*PageResult[repository.TenantSummary], error) {
	limit, offset, page := Pagination(page, pageSize)
	tenants, total, err := s.platform.ListTenants(ctx, strings.TrimSpace(query), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	if tenants == nil {
		tenants = []repository.TenantSummary{}
	}
	return &PageResult[repository.TenantSummary]{Items: tenants, Total: total, Page: page, PageSize: limit}, nil
}

func (s *ConsoleService) loadAdmin(ctx context.Context, adminID uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(ctx, adminID)
	if err != nil {
		return nil, translate(err, apperrors.ErrAdminNotFound, "load admin")
	}
	if user.Role != models.RoleAdmin {
		return nil, apperrors.ErrAdminNotFound
	}
	return user, nil
}

// SetAdminStatus changes the status of an admin and every staff member of its tenant
func (s *ConsoleService) SetAdminStatus(ctx context.Context, adminID uuid.UUID, status models.UserStatus) (*AdminStatusResult, error) {
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("status", "must be ACTIVE or SUSPENDED")
	}
	if _, err := s.loadAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	n, err := s.users.SetTenantStatus(ctx, adminID, status)
	if err != nil {
		return nil, fmt.Errorf("set tenant status: %w", err)
	}
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"admin_id": adminID,
		"status":   status,
		"accounts": n,
	}).Warn("tenant status changed")
	return &AdminStatusResult{AdminID: adminID, Status: status, Accounts: n}, nil
}

// PlatformStats returns platform-wide totals
func (s *ConsoleService) PlatformStats(ctx context.Context) (*repository.PlatformStats, error) {
	stats, err := s.platform.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("platform stats: %w", err)
	}
	return stats, nil
}

// BackupTenant stores a manual backup on behalf of one tenant
func (s *ConsoleService) BackupTenant(ctx context.Context, adminID uuid.UUID) (*models.Backup, error) {
	if _, err := s.loadAdmin(ctx, adminID); err != nil {
		return nil, err
	}
	return s.backups.Create(ctx, tenant.ForAdmin(adminID))
}
