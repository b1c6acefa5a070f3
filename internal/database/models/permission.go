package models

import "github.com/google/uuid"

// UserPermission is an explicit access grant for one user on one module
type UserPermission struct {
	BaseModel
	AdminID uuid.UUID   `json:"admin_id" gorm:"type:uuid;not null;index"`
	UserID  uuid.UUID   `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_permissions_user_module"`
	Module  Module      `json:"module" gorm:"type:varchar(40);not null;uniqueIndex:idx_user_permissions_user_module"`
	Access  AccessLevel `json:"access" gorm:"type:varchar(20);not null"`
}

// TableName returns the table name for UserPermission
func (UserPermission) TableName() string {
	return "user_permissions"
}

// RolePermission is a tenant's default access for every user holding a role
type RolePermission struct {
	BaseModel
	AdminID uuid.UUID   `json:"admin_id" gorm:"type:uuid;not null;uniqueIndex:idx_role_permissions_tenant_role_module"`
	Role    Role        `json:"role" gorm:"type:varchar(20);not null;uniqueIndex:idx_role_permissions_tenant_role_module"`
	Module  Module      `json:"module" gorm:"type:varchar(40);not null;uniqueIndex:idx_role_permissions_tenant_role_module"`
	Access  AccessLevel `json:"access" gorm:"type:varchar(20);not null"`
}

// TableName returns the table name for RolePermission
func (RolePermission) TableName() string {
	return "role_permissions"
}
