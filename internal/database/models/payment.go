package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment is money received from a customer, optionally settled against a bill
type Payment struct {
	BaseModel
	AdminID    uuid.UUID     `json:"admin_id" gorm:"type:uuid;not null;index"`
	CustomerID uuid.UUID     `json:"customer_id" gorm:"type:uuid;not null;index"`
	BillID     *uuid.UUID    `json:"bill_id,omitempty" gorm:"type:uuid;index"`
	Amount     float64       `json:"amount" gorm:"type:numeric(12,2);not null"`
	Method     PaymentMethod `json:"method" gorm:"type:varchar(20);not null"`
	Reference  string        `json:"reference" gorm:"size:100"`
	PaidOn     time.Time     `json:"paid_on" gorm:"not null"`
	Note       string        `json:"note" gorm:"size:500"`
}

// TableName returns the table name for Payment
func (Payment) TableName() string {
	return "payments"
}
