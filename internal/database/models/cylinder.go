package models

import (
	"time"

	"github.com/google/uuid"
)

// CylinderEntry records a batch of cylinders added to the distributor's stock
type CylinderEntry struct {
	BaseModel
	AdminID      uuid.UUID    `json:"admin_id" gorm:"type:uuid;not null;index"`
	CylinderType CylinderType `json:"cylinder_type" gorm:"type:varchar(20);not null;index"`
	Quantity     int          `json:"quantity" gorm:"not null"`
	Filled       bool         `json:"filled" gorm:"not null"`
	UnitCost     float64      `json:"unit_cost" gorm:"type:numeric(12,2);not null;default:0"`
	Supplier     string       `json:"supplier" gorm:"size:150"`
	ReceivedOn   time.Time    `json:"received_on" gorm:"not null"`
	Note         string       `json:"note" gorm:"size:500"`
}

// TableName returns the table name for CylinderEntry
func (CylinderEntry) TableName() string {
	return "cylinder_entries"
}
