package models

import "github.com/google/uuid"

// Customer is a gas connection holder served by a distributor
type Customer struct {
	BaseModel
	AdminID          uuid.UUID `json:"admin_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_customers_tenant_connection"`
	Name             string    `json:"name" gorm:"not null;size:150"`
	Phone            string    `json:"phone" gorm:"size:20;index"`
	Email            string    `json:"email" gorm:"size:255"`
	Address          string    `json:"address" gorm:"size:500"`
	ConnectionNumber string    `json:"connection_number" gorm:"size:50;not null;uniqueIndex:idx_customers_tenant_connection"`
	CylindersHeld    int       `json:"cylinders_held" gorm:"not null;default:0"`
	DepositAmount    float64   `json:"deposit_amount" gorm:"type:numeric(12,2);not null;default:0"`
	Balance          float64   `json:"balance" gorm:"type:numeric(12,2);not null;default:0"`
	IsActive         bool      `json:"is_active" gorm:"not null"`
}

// TableName returns the table name for Customer
func (Customer) TableName() string {
	return "customers"
}
