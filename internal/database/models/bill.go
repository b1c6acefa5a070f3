package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// BillItem is one line of a bill. Items are stored as jsonb on the bill row.
type BillItem struct {
	Description  string       `json:"description" validate:"required,max=200"`
	CylinderType CylinderType `json:"cylinder_type,omitempty"`
	Quantity     int          `json:"quantity" validate:"required,gt=0"`
	UnitPrice    float64      `json:"unit_price" validate:"gte=0"`
	Amount       float64      `json:"amount"`
}

// Bill is an invoice raised for a customer
type Bill struct {
	BaseModel
	AdminID    uuid.UUID       `json:"admin_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_bills_tenant_number"`
	BillNumber string          `json:"bill_number" gorm:"size:40;not null;uniqueIndex:idx_bills_tenant_number"`
	CustomerID uuid.UUID       `json:"customer_id" gorm:"type:uuid;not null;index"`
	Items      json.RawMessage `json:"items" gorm:"type:jsonb"`
	Subtotal   float64         `json:"subtotal" gorm:"type:numeric(12,2);not null"`
	TaxPercent float64         `json:"tax_percent" gorm:"type:numeric(5,2);not null;default:0"`
	Tax        float64         `json:"tax" gorm:"type:numeric(12,2);not null;default:0"`
	Total      float64         `json:"total" gorm:"type:numeric(12,2);not null"`
	AmountPaid float64         `json:"amount_paid" gorm:"type:numeric(12,2);not null;default:0"`
	Status     BillStatus      `json:"status" gorm:"type:varchar(20);not null;default:'UNPAID';index"`
	IssuedOn   time.Time       `json:"issued_on" gorm:"not null"`
	Note       string          `json:"note" gorm:"size:500"`
}

// TableName returns the table name for Bill
func (Bill) TableName() string {
	return "bills"
}

// Outstanding returns what is still owed on the bill
func (b *Bill) Outstanding() float64 {
	return b.Total - b.AmountPaid
}

// RefreshStatus derives Status from AmountPaid. Amounts within half a paisa of the total count as paid.
func (b *Bill) RefreshStatus() {
	switch {
	case b.AmountPaid <= 0:
		b.Status = BillStatusUnpaid
	case b.Total-b.AmountPaid < 0.005:
		b.Status = BillStatusPaid
	default:
		b.Status = BillStatusPartial
	}
}
