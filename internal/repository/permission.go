package repository

import (
	"context"

	"lpg-backoffice/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PermissionRepository stores per-user and per-role module access records
type PermissionRepository struct {
	db *gorm.DB
}

var _ PermissionRepositoryInterface = (*PermissionRepository)(nil)

// NewPermissionRepository creates a new permission repository
func NewPermissionRepository(db *gorm.DB) *PermissionRepository {
	return &PermissionRepository{db: db}
}

// GetUserPermission retrieves the explicit record of a user on a module
func (r *PermissionRepository) GetUserPermission(ctx context.Context, userID uuid.UUID, module models.Module) (*models.UserPermission, error) {
	var perm models.UserPermission
	err := r.db.WithContext(ctx).First(&perm, "user_id = ? AND module = ?", userID, module).Error
	if err != nil {
		return nil, err
	}
	return &perm, nil
}

// GetRolePermission retrieves a tenant's default for a role on a module
func (r *PermissionRepository) GetRolePermission(ctx context.Context, adminID uuid.UUID, role models.Role, module models.Module) (*models.RolePermission, error) {
	var perm models.RolePermission
	err := r.db.WithContext(ctx).
		First(&perm, "admin_id = ? AND role = ? AND module = ?", adminID, role, module).Error
	if err != nil {
		return nil, err
	}
	return &perm, nil
}

// ListUserPermissions retrieves every explicit record of a user
func (r *PermissionRepository) ListUserPermissions(ctx context.Context, userID uuid.UUID) ([]models.UserPermission, error) {
	var perms []models.UserPermission
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("module").Find(&perms).Error
	return perms, err
}

// ListRolePermissions retrieves a tenant's defaults for a role
func (r *PermissionRepository) ListRolePermissions(ctx context.Context, adminID uuid.UUID, role models.Role) ([]models.RolePermission, error) {
	var perms []models.RolePermission
	err := r.db.WithContext(ctx).
		Where("admin_id = ? AND role = ?", adminID, role).
		Order("module").
		Find(&perms).Error
	return perms, err
}

// UpsertUserPermissions inserts or overwrites user records keyed by (user_id, module)
func (r *PermissionRepository) UpsertUserPermissions(ctx context.Context, perms []models.UserPermission) error {
	if len(perms) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "module"}},
		DoUpdates: clause.AssignmentColumns([]string{"access", "updated_at"}),
	}).Create(&perms).Error
}

// UpsertRolePermissions inserts or overwrites role records keyed by (admin_id, role, module)
func (r *PermissionRepository) UpsertRolePermissions(ctx context.Context, perms []models.RolePermission) error {
	if len(perms) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "admin_id"}, {Name: "role"}, {Name: "module"}},
		DoUpdates: clause.AssignmentColumns([]string{"access", "updated_at"}),
	}).Create(&perms).Error
}

// DeleteUserPermissions removes every explicit record of a user
func (r *PermissionRepository) DeleteUserPermissions(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.UserPermission{}, "user_id = ?", userID).Error
}
