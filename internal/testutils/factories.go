package testutils

import (
	"encoding/json"
	"fmt"
	"time"

	"lpg-backoffice/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Admin creates a verified, active distributor whose AdminID points to itself
func (f *UserFactory) Admin() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:        fmt.Sprintf("owner-%s@gasagency.in", id.String()[:8]),
		PasswordHash: "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z3ZyQd5n7uSg6bQ0pG6pN1iO",
		Name:         "Ravi Kumar",
		Phone:        "+91-98450-00000",
		Role:         models.RoleAdmin,
		Status:       models.UserStatusActive,
		IsVerified:   true,
		AdminID:      &id,
		BusinessName: "Ravi Gas Agencies",
	}
}

// Staff creates a staff member of the given tenant
func (f *UserFactory) Staff(adminID uuid.UUID, role models.Role) *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:        fmt.Sprintf("staff-%s@gasagency.in", id.String()[:8]),
		PasswordHash: "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z3ZyQd5n7uSg6bQ0pG6pN1iO",
		Name:         "Counter Staff",
		Role:         role,
		Status:       models.UserStatusActive,
		IsVerified:   true,
		AdminID:      &adminID,
	}
}

// SuperAdmin creates the platform operator
func (f *UserFactory) SuperAdmin() *models.User {
	return &models.User{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Email:        "root@lpg-backoffice.in",
		PasswordHash: "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z3ZyQd5n7uSg6bQ0pG6pN1iO",
		Name:         "Platform Operator",
		Role:         models.RoleSuperAdmin,
		Status:       models.UserStatusActive,
		IsVerified:   true,
	}
}

// CustomerFactory provides methods to create test Customer data
type CustomerFactory struct{}

// NewCustomerFactory creates a new CustomerFactory
func NewCustomerFactory() *CustomerFactory {
	return &CustomerFactory{}
}

// Create creates a test Customer of the given tenant
func (f *CustomerFactory) Create(adminID uuid.UUID) *models.Customer {
	id := uuid.New()
	return &models.Customer{
		BaseModel:        models.BaseModel{ID: id},
		AdminID:          adminID,
		Name:             "Lakshmi Devi",
		Phone:            "+91-90000-11111",
		Address:          "12 MG Road, Bengaluru",
		ConnectionNumber: "CN-" + id.String()[:8],
		CylindersHeld:    1,
		DepositAmount:    2200,
		IsActive:         true,
	}
}

// WithName creates a customer with a custom name
func (f *CustomerFactory) WithName(adminID uuid.UUID, name string) *models.Customer {
	c := f.Create(adminID)
	c.Name = name
	return c
}

// CylinderFactory provides methods to create test CylinderEntry data
type CylinderFactory struct{}

// NewCylinderFactory creates a new CylinderFactory
func NewCylinderFactory() *CylinderFactory {
	return &CylinderFactory{}
}

// Create creates a batch of filled domestic cylinders
func (f *CylinderFactory) Create(adminID uuid.UUID) *models.CylinderEntry {
	return &models.CylinderEntry{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		AdminID:      adminID,
		CylinderType: models.CylinderDomestic142,
		Quantity:     20,
		Filled:       true,
		UnitCost:     850,
		Supplier:     "IOCL Bottling Plant",
		ReceivedOn:   time.Now().UTC().Truncate(time.Second),
	}
}

// WithType creates a batch of the given type and fill state
func (f *CylinderFactory) WithType(adminID uuid.UUID, t models.CylinderType, quantity int, filled bool) *models.CylinderEntry {
	e := f.Create(adminID)
	e.CylinderType = t
	e.Quantity = quantity
	e.Filled = filled
	return e
}

// BillFactory provides methods to create test Bill data
type BillFactory struct{}

// NewBillFactory creates a new BillFactory
func NewBillFactory() *BillFactory {
	return &BillFactory{}
}

// Create creates an unpaid bill of one domestic refill for the customer
func (f *BillFactory) Create(adminID, customerID uuid.UUID) *models.Bill {
	items, _ := json.Marshal([]models.BillItem{{
		Description:  "Domestic refill 14.2kg",
		CylinderType: models.CylinderDomestic142,
		Quantity:     1,
		UnitPrice:    1000,
		Amount:       1000,
	}})
	id := uuid.New()
	return &models.Bill{
		BaseModel:  models.BaseModel{ID: id},
		AdminID:    adminID,
		BillNumber: "INV-TEST-" + id.String()[:8],
		CustomerID: customerID,
		Items:      items,
		Subtotal:   1000,
		TaxPercent: 5,
		Tax:        50,
		Total:      1050,
		Status:     models.BillStatusUnpaid,
		IssuedOn:   time.Now().UTC().Truncate(time.Second),
	}
}

// PaymentFactory provides methods to create test Payment data
type PaymentFactory struct{}

// NewPaymentFactory creates a new PaymentFactory
func NewPaymentFactory() *PaymentFactory {
	return &PaymentFactory{}
}

// Create creates a cash payment of the given amount
func (f *PaymentFactory) Create(adminID, customerID uuid.UUID, amount float64) *models.Payment {
	return &models.Payment{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		AdminID:    adminID,
		CustomerID: customerID,
		Amount:     amount,
		Method:     models.PaymentCash,
		PaidOn:     time.Now().UTC().Truncate(time.Second),
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	User     *UserFactory
	Customer *CustomerFactory
	Cylinder *CylinderFactory
	Bill     *BillFactory
	Payment  *PaymentFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:     NewUserFactory(),
		Customer: NewCustomerFactory(),
		Cylinder: NewCylinderFactory(),
		Bill:     NewBillFactory(),
		Payment:  NewPaymentFactory(),
	}
}
