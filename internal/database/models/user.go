package models

import (
	"github.com/google/uuid"
)

// User is anyone who can sign in: the platform super admin, a distributor (ADMIN) or one of
// the distributor's staff. AdminID points to the owning admin; for an ADMIN it is its own id.
type User struct {
	BaseModel
	Email        string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string     `json:"-" gorm:"not null;size:100"`
	Name         string     `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Phone        string     `json:"phone" gorm:"size:20" validate:"max=20"`
	Role         Role       `json:"role" gorm:"type:varchar(20);not null;index"`
	Status       UserStatus `json:"status" gorm:"type:varchar(20);not null;default:'ACTIVE'"`
	IsVerified   bool       `json:"is_verified" gorm:"not null;default:false"`
	AdminID      *uuid.UUID `json:"admin_id,omitempty" gorm:"type:uuid;index"`
	BusinessName string     `json:"business_name,omitempty" gorm:"size:150"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// IsActive reports whether the user may sign in
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}
