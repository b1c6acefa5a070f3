package repository

import (
	"context"
	"time"

	"lpg-backoffice/internal/database/models"
	"lpg-backoffice/internal/tenant"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetStaff(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*models.User, error)
	ListStaff(ctx context.Context, scope tenant.Scope, limit, offset int) ([]models.User, int64, error)
	SetTenantStatus(ctx context.Context, adminID uuid.UUID, status models.UserStatus) (int64, error)
}

// PermissionRepositoryInterface defines the interface for permission record operations
type PermissionRepositoryInterface interface {
	GetUserPermission(ctx context.Context, userID uuid.UUID, module models.Module) (*models.UserPermission, error)
	GetRolePermission(ctx context.Context, adminID uuid.UUID, role models.Role, module models.Module) (*models.RolePermission, error)
	ListUserPermissions(ctx context.Context, userID uuid.UUID) ([]models.UserPermission, error)
	ListRolePermissions(ctx context.Context, adminID uuid.UUID, role models.Role) ([]models.RolePermission, error)
	UpsertUserPermissions(ctx context.Context, perms []models.UserPermission) error
	UpsertRolePermissions(ctx context.Context, perms []models.RolePermission) error
	DeleteUserPermissions(ctx context.Context, userID uuid.UUID) error
}

// OTPRepositoryInterface defines the interface for one-time code storage
type OTPRepositoryInterface interface {
	Upsert(ctx context.Context, otp *models.OTPCode) error
	GetByEmail(ctx context.Context, email string) (*models.OTPCode, error)
	ReserveAttempt(ctx context.Context, id uuid.UUID, codeHash string, maxAttempts int) (bool, error)
	Consume(ctx context.Context, id uuid.UUID, codeHash string) (bool, error)
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

// CustomerRepositoryInterface defines the interface for customer repository operations
type CustomerRepositoryInterface interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*models.Customer, error)
	List(ctx context.Context, scope tenant.Scope, query string, limit, offset int) ([]models.Customer, int64, error)
	Update(ctx context.Context, scope tenant.Scope, customer *models.Customer) error
	Delete(ctx context.Context, scope tenant.Scope, id uuid.UUID) error
}

// CylinderRepositoryInterface defines the interface for cylinder stock operations
type CylinderRepositoryInterface interface {
	Create(ctx context.Context, entry *models.CylinderEntry) error
	GetByID(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*models.CylinderEntry, error)
	List(ctx context.Context, scope tenant.Scope, cylinderType models.CylinderType, limit, offset int) ([]models.CylinderEntry, int64, error)
	Delete(ctx context.Context, scope tenant.Scope, id uuid.UUID) error
	DeleteAll(ctx context.Context, scope tenant.Scope) (int64, error)
	Summary(ctx context.Context, scope tenant.Scope) ([]CylinderStock, error)
}

// BillRepositoryInterface defines the interface for bill repository operations
type BillRepositoryInterface interface {
	CreateForCustomer(ctx context.Context, bill *models.Bill) error
	GetByID(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*models.Bill, error)
	List(ctx context.Context, scope tenant.Scope, filter BillFilter, limit, offset int) ([]models.Bill, int64, error)
	LastSequence(ctx context.Context, scope tenant.Scope, prefix string) (int64, error)
	Delete(ctx context.Context, scope tenant.Scope, id uuid.UUID) error
}

// PaymentRepositoryInterface defines the interface for payment repository operations
type PaymentRepositoryInterface interface {
	Apply(ctx context.Context, payment *models.Payment) error
	Revert(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*models.Payment, error)
	GetByID(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*models.Payment, error)
	List(ctx context.Context, scope tenant.Scope, customerID *uuid.UUID, limit, offset int) ([]models.Payment, int64, error)
}

// SettingRepositoryInterface defines the interface for tenant settings
type SettingRepositoryInterface interface {
	List(ctx context.Context, scope tenant.Scope) ([]models.Setting, error)
	Upsert(ctx context.Context, settings []models.Setting) error
}

// BackupRepositoryInterface defines the interface for backup storage and tenant snapshots
type BackupRepositoryInterface interface {
	Create(ctx context.Context, backup *models.Backup) error
	GetByID(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*models.Backup, error)
	List(ctx context.Context, scope tenant.Scope, limit, offset int) ([]models.Backup, int64, error)
	Delete(ctx context.Context, scope tenant.Scope, id uuid.UUID) error
	PruneAutomatic(ctx context.Context, adminID uuid.UUID, keep int) (int64, error)
	Snapshot(ctx context.Context, adminID uuid.UUID) (*TenantSnapshot, error)
	Restore(ctx context.Context, adminID uuid.UUID, snapshot *TenantSnapshot) error
}

// PlatformRepositoryInterface defines the super admin console queries
type PlatformRepositoryInterface interface {
	ListTenants(ctx context.Context, query string, limit, offset int) ([]TenantSummary, int64, error)
	Stats(ctx context.Context) (*PlatformStats, error)
}
