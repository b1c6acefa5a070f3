package service

import (
	"context"
	"errors"
	"fmt"

	"lpg-backoffice/internal/auth"
	"lpg-backoffice/internal/database/models"
	apperrors "lpg-backoffice/internal/errors"
	"lpg-backoffice/internal/logger"
	"lpg-backoffice/internal/repository"
	"lpg-backoffice/internal/seed"
	"lpg-backoffice/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PageDecision tells the front end how to treat a module page
type PageDecision struct {
	Module     models.Module      `json:"module"`
	Access     models.AccessLevel `json:"access"`
	Allowed    bool               `json:"allowed"`
	ReadOnly   bool               `json:"read_only"`
	Redirect   bool               `json:"redirect"`
	RedirectTo string             `json:"redirect_to,omitempty"`
	Restricted bool               `json:"restricted"`
}

// PageFallback is where a hidden page sends the user
const PageFallback = "/dashboard"

// GuardPage turns an access level into a page decision. A NOT_SHOW page is hidden and redirects
// to the dashboard; a NO_ACCESS page stays put and is rendered under a restricted overlay.
func GuardPage(level models.AccessLevel) PageDecision {
	d := PageDecision{Access: level}
	switch level {
	case models.AccessNotShow:
		d.Redirect = true
		d.RedirectTo = PageFallback
	case models.AccessView, models.AccessEdit, models.AccessFullAccess:
		d.Allowed = true
		d.ReadOnly = level == models.AccessView
	default:
		d.Access = models.AccessNoAccess
		d.Restricted = true
	}
	return d
}

// SetPermissionsRequest carries module levels to store
type SetPermissionsRequest struct {
	Permissions map[models.Module]models.AccessLevel `json:"permissions"`
}

// AccessService evaluates and manages module permissions
type AccessService struct {
	perms    repository.PermissionRepositoryInterface
	users    repository.UserRepositoryInterface
	defaults seed.RoleDefaults
}

// NewAccessService creates a new access service
func NewAccessService(perms repository.PermissionRepositoryInterface, users repository.UserRepositoryInterface, defaults seed.RoleDefaults) *AccessService {
	return &AccessService{
		perms:    perms,
		users:    users,
		defaults: defaults,
	}
}

// CheckModuleAccess evaluates the identity's level on a module. Admins and the super admin hold
// FULL_ACCESS everywhere. Staff get their explicit record, else their role's tenant default,
// else NO_ACCESS.
func (s *AccessService) CheckModuleAccess(ctx context.Context, identity *auth.Identity, module models.Module) (models.AccessLevel, error) {
	if !module.IsValid() {
		return models.AccessNoAccess, apperrors.ErrUnknownModule
	}
	if identity == nil {
		return models.AccessNoAccess, nil
	}
	if identity.IsSuperAdmin() || identity.IsAdmin() {
		return models.AccessFullAccess, nil
	}

	perm, err := s.perms.GetUserPermission(ctx, identity.UserID, module)
	if err == nil {
		return normalizeLevel(perm.Access), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.AccessNoAccess, fmt.Errorf("load user permission: %w", err)
	}

	if identity.AdminID == nil {
		return models.AccessNoAccess, nil
	}
	rolePerm, err := s.perms.GetRolePermission(ctx, *identity.AdminID, identity.Role, module)
	if err == nil {
		return normalizeLevel(rolePerm.Access), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.AccessNoAccess, fmt.Errorf("load role permission: %w", err)
	}
	return models.AccessNoAccess, nil
}

// normalizeLevel maps an unrecognized stored level to NO_ACCESS
func normalizeLevel(level models.AccessLevel) models.AccessLevel {
	if !level.IsValid() {
		return models.AccessNoAccess
	}
	return level
}

// AccessMap evaluates every module for the identity
func (s *AccessService) AccessMap(ctx context.Context, identity *auth.Identity) (map[models.Module]models.AccessLevel, error) {
	result := make(map[models.Module]models.AccessLevel, len(models.AllModules()))
	for _, module := range models.AllModules() {
		level, err := s.CheckModuleAccess(ctx, identity, module)
		if err != nil {
			return nil, err
		}
		result[module] = level
	}
	return result, nil
}

// GuardModulePage evaluates the identity on a module and decides how its page renders
func (s *AccessService) GuardModulePage(ctx context.Context, identity *auth.Identity, module models.Module) (*PageDecision, error) {
	level, err := s.CheckModuleAccess(ctx, identity, module)
	if err != nil {
		return nil, err
	}
	d := GuardPage(level)
	d.Module = module
	return &d, nil
}

func validatePermissions(perms map[models.Module]models.AccessLevel) error {
	if len(perms) == 0 {
		return apperrors.NewValidationError("permissions", "at least one module is required")
	}
	for module, level := range perms {
		if !module.IsValid() {
			return apperrors.ErrUnknownModule
		}
		if !level.IsValid() {
			return apperrors.ErrInvalidAccessLevel
		}
	}
	return nil
}

// SetUserPermissions stores explicit levels for a staff member of the scope's tenant
func (s *AccessService) SetUserPermissions(ctx context.Context, scope tenant.Scope, userID uuid.UUID, req *SetPermissionsRequest) (map[models.Module]models.AccessLevel, error) {
	if err := validatePermissions(req.Permissions); err != nil {
		return nil, err
	}
	adminID, err := scope.TenantID()
	if err != nil {
		return nil, err
	}

	target, err := s.users.GetStaff(ctx, scope, userID)
	if err != nil {
		return nil, translate(err, apperrors.ErrStaffNotFound, "load staff member")
	}

	records := make([]models.UserPermission, 0, len(req.Permissions))
	for module, level := range req.Permissions {
		records = append(records, models.UserPermission{
			AdminID: adminID,
			UserID:  target.ID,
			Module:  module,
			Access:  level,
		})
	}
	if err := s.perms.UpsertUserPermissions(ctx, records); err != nil {
		return nil, fmt.Errorf("store user permissions: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"target_user": target.ID,
		"modules":     len(records),
	}).Info("user permissions updated")

	return s.AccessMap(ctx, auth.NewIdentity(target))
}

// SetRolePermissions stores the scope's tenant default levels for a staff role
func (s *AccessService) SetRolePermissions(ctx context.Context, scope tenant.Scope, role models.Role, req *SetPermissionsRequest) (map[models.Module]models.AccessLevel, error) {
	if !role.IsStaff() {
		return nil, apperrors.ErrInvalidRole
	}
	if err := validatePermissions(req.Permissions); err != nil {
		return nil, err
	}
	adminID, err := scope.TenantID()
	if err != nil {
		return nil, err
	}

	records := make([]models.RolePermission, 0, len(req.Permissions))
	for module, level := range req.Permissions {
		records = append(records, models.RolePermission{
			AdminID: adminID,
			Role:    role,
			Module:  module,
			Access:  level,
		})
	}
	if err := s.perms.UpsertRolePermissions(ctx, records); err != nil {
		return nil, fmt.Errorf("store role permissions: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"role":    role,
		"modules": len(records),
	}).Info("role permissions updated")

	return s.RolePermissions(ctx, scope, role)
}

// RolePermissions lists the scope's tenant defaults for a staff role, NO_ACCESS where unset
func (s *AccessService) RolePermissions(ctx context.Context, scope tenant.Scope, role models.Role) (map[models.Module]models.AccessLevel, error) {
	if !role.IsStaff() {
		return nil, apperrors.ErrInvalidRole
	}
	adminID, err := scope.TenantID()
	if err != nil {
		return nil, err
	}
	records, err := s.perms.ListRolePermissions(ctx, adminID, role)
	if err != nil {
		return nil, fmt.Errorf("list role permissions: %w", err)
	}
	result := make(map[models.Module]models.AccessLevel, len(models.AllModules()))
	for _, module := range models.AllModules() {
		result[module] = models.AccessNoAccess
	}
	for _, r := range records {
		result[r.Module] = normalizeLevel(r.Access)
	}
	return result, nil
}

// ResetRoleDefaults writes the role-default template for a tenant, overwriting its role records
func (s *AccessService) ResetRoleDefaults(ctx context.Context, adminID uuid.UUID) error {
	if err := s.perms.UpsertRolePermissions(ctx, s.defaults.Records(adminID)); err != nil {
		return fmt.Errorf("seed role defaults: %w", err)
	}
	return nil
}
