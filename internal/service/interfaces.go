package service

import (
	"context"

	"lpg-backoffice/internal/auth"
	"lpg-backoffice/internal/database/models"
	"lpg-backoffice/internal/repository"
	"lpg-backoffice/internal/tenant"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AccessServiceInterface evaluates and edits module access
type AccessServiceInterface interface {
	CheckModuleAccess(ctx context.Context, identity *auth.Identity, module models.Module) (models.AccessLevel, error)
	AccessMap(ctx context.Context, identity *auth.Identity) (map[models.Module]models.AccessLevel, error)
	GuardModulePage(ctx context.Context, identity *auth.Identity, module models.Module) (*PageDecision, error)
	SetUserPermissions(ctx context.Context, scope tenant.Scope, userID uuid.UUID, req *SetPermissionsRequest) (map[models.Module]models.AccessLevel, error)
	SetRolePermissions(ctx context.Context, scope tenant.Scope, role models.Role, req *SetPermissionsRequest) (map[models.Module]models.AccessLevel, error)
	RolePermissions(ctx context.Context, scope tenant.Scope, role models.Role) (map[models.Module]models.AccessLevel, error)
	ResetRoleDefaults(ctx context.Context, adminID uuid.UUID) error
}

// OTPServiceInterface issues and verifies one-time codes
type OTPServiceInterface interface {
	IssueOTP(ctx context.Context, email string, purpose models.OTPPurpose) (*OTPIssue, error)
	WithheldIssue(email string, purpose models.OTPPurpose) *OTPIssue
	VerifyOTP(ctx context.Context, email, code string, purpose models.OTPPurpose) error
	PurgeExpired(ctx context.Context) (int64, error)
}

// AccountServiceInterface covers registration, login and password recovery
type AccountServiceInterface interface {
	RegisterAdmin(ctx context.Context, req *RegisterAdminRequest) (*UserResponse, error)
	VerifyEmail(ctx context.Context, req *OTPVerifyRequest) (*UserResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*SessionResponse, error)
	RequestOTP(ctx context.Context, req *OTPRequest) (*OTPIssue, error)
	VerifyOTP(ctx context.Context, req *OTPVerifyRequest) (*OTPVerifyResponse, error)
	LoginWithOTP(ctx context.Context, req *OTPVerifyRequest) (*SessionResponse, error)
	RequestPasswordReset(ctx context.Context, email string) (*OTPIssue, error)
	ResetPassword(ctx context.Context, req *ResetPasswordRequest) error
	Me(ctx context.Context, identity *auth.Identity) (*MeResponse, error)
}

// StaffServiceInterface manages the staff of a tenant
type StaffServiceInterface interface {
	List(ctx context.Context, scope tenant.Scope, page, pageSize int) (*PageResult[UserResponse], error)
	Get(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*StaffResponse, error)
	Create(ctx context.Context, scope tenant.Scope, req *CreateStaffRequest) (*UserResponse, error)
	Update(ctx context.Context, scope tenant.Scope, id uuid.UUID, req *UpdateStaffRequest) (*UserResponse, error)
	Delete(ctx context.Context, scope tenant.Scope, id uuid.UUID) error
}

// CustomerServiceInterface manages customers
type CustomerServiceInterface interface {
	List(ctx context.Context, scope tenant.Scope, query string, page, pageSize int) (*PageResult[models.Customer], error)
	Get(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*models.Customer, error)
	Create(ctx context.Context, scope tenant.Scope, req *CreateCustomerRequest) (*models.Customer, error)
	Update(ctx context.Context, scope tenant.Scope, id uuid.UUID, req *UpdateCustomerRequest) (*models.Customer, error)
	Delete(ctx context.Context, scope tenant.Scope, id uuid.UUID) error
}

// CylinderServiceInterface manages cylinder stock
type CylinderServiceInterface interface {
	Add(ctx context.Context, scope tenant.Scope, req *AddCylinderRequest) (*models.CylinderEntry, error)
	List(ctx context.Context, scope tenant.Scope, cylinderType models.CylinderType, page, pageSize int) (*PageResult[models.CylinderEntry], error)
	Get(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*models.CylinderEntry, error)
	Delete(ctx context.Context, scope tenant.Scope, id uuid.UUID) error
	DeleteAll(ctx context.Context, scope tenant.Scope) (int64, error)
	Summary(ctx context.Context, scope tenant.Scope) (*StockSummary, error)
}

// BillingServiceInterface manages bills
type BillingServiceInterface interface {
	Create(ctx context.Context, scope tenant.Scope, req *CreateBillRequest) (*models.Bill, error)
	List(ctx context.Context, scope tenant.Scope, params BillListParams) (*PageResult[models.Bill], error)
	Get(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*models.Bill, error)
	Delete(ctx context.Context, scope tenant.Scope, id uuid.UUID) error
}

// PaymentServiceInterface manages payments
type PaymentServiceInterface interface {
	Create(ctx context.Context, scope tenant.Scope, req *CreatePaymentRequest) (*models.Payment, error)
	List(ctx context.Context, scope tenant.Scope, customerID *uuid.UUID, page, pageSize int) (*PageResult[models.Payment], error)
	Get(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*models.Payment, error)
	Delete(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*models.Payment, error)
}

// SettingServiceInterface reads and writes tenant settings
type SettingServiceInterface interface {
	GetSettings(ctx context.Context, scope tenant.Scope) map[string]string
	UpdateSettings(ctx context.Context, scope tenant.Scope, values map[string]string) (map[string]string, error)
	Int(ctx context.Context, scope tenant.Scope, key string) int
	Float(ctx context.Context, scope tenant.Scope, key string) float64
	Bool(ctx context.Context, scope tenant.Scope, key string) bool
}

// BackupServiceInterface generates, stores and restores backups
type BackupServiceInterface interface {
	Generate(ctx context.Context, scope tenant.Scope, kind models.BackupKind) (*BackupDocument, error)
	Create(ctx context.Context, scope tenant.Scope) (*models.Backup, error)
	CreateAutomatic(ctx context.Context, scope tenant.Scope) (*AutomaticBackupResult, error)
	List(ctx context.Context, scope tenant.Scope, page, pageSize int) (*PageResult[models.Backup], error)
	Get(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*models.Backup, error)
	Download(ctx context.Context, scope tenant.Scope, id uuid.UUID) ([]byte, string, error)
	Delete(ctx context.Context, scope tenant.Scope, id uuid.UUID) error
	Restore(ctx context.Context, scope tenant.Scope, doc *BackupDocument) (*RestoreResult, error)
}

// ConsoleServiceInterface backs the platform operator console
type ConsoleServiceInterface interface {
	ListAdmins(ctx context.Context, query string, page, pageSize int) (*PageResult[repository.TenantSummary], error)
	SetAdminStatus(ctx context.Context, adminID uuid.UUID, status models.UserStatus) (*AdminStatusResult, error)
	PlatformStats(ctx context.Context) (*repository.PlatformStats, error)
	BackupTenant(ctx context.Context, adminID uuid.UUID) (*models.Backup, error)
}

var (
	_ AccessServiceInterface   = (*AccessService)(nil)
	_ OTPServiceInterface      = (*OTPService)(nil)
	_ AccountServiceInterface  = (*AccountService)(nil)
	_ StaffServiceInterface    = (*StaffService)(nil)
	_ CustomerServiceInterface = (*CustomerService)(nil)
	_ CylinderServiceInterface = (*CylinderService)(nil)
	_ BillingServiceInterface  = (*BillingService)(nil)
	_ PaymentServiceInterface  = (*PaymentService)(nil)
	_ SettingServiceInterface  = (*SettingService)(nil)
	_ BackupServiceInterface   = (*BackupService)(nil)
	_ ConsoleServiceInterface  = (*ConsoleService)(nil)
)
