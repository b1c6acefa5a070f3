package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Backup is a stored snapshot of a tenant's data
type Backup struct {
	BaseModel
	AdminID   uuid.UUID       `json:"admin_id" gorm:"type:uuid;not null;index"`
	Kind      BackupKind      `json:"kind" gorm:"type:varchar(20);not null;index"`
	Document  json.RawMessage `json:"-" gorm:"type:jsonb;not null"`
	SizeBytes int             `json:"size_bytes"`
	RowCounts json.RawMessage `json:"row_counts" gorm:"type:jsonb"`
}

// TableName returns the table name for Backup
func (Backup) TableName() string {
	return "backups"
}
