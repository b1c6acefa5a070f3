package models

import "github.com/google/uuid"

// Setting is one key/value preference of a tenant
type Setting struct {
	BaseModel
	AdminID uuid.UUID `json:"admin_id" gorm:"type:uuid;not null;uniqueIndex:idx_settings_tenant_key"`
	Key     string    `json:"key" gorm:"size:60;not null;uniqueIndex:idx_settings_tenant_key"`
	Value   string    `json:"value" gorm:"size:500"`
}

// TableName returns the table name for Setting
func (Setting) TableName() string {
	return "settings"
}
