package repository

import (
	"time"

	"lpg-backoffice/internal/database/models"

	"github.com/google/uuid"
)

// CylinderStock is the stock total of one cylinder type
type CylinderStock struct {
	CylinderType models.CylinderType `json:"cylinder_type"`
	Filled       int64               `json:"filled"`
	Empty        int64               `json:"empty"`
}

// BillFilter narrows a bill listing
type BillFilter struct {
	CustomerID *uuid.UUID
	Status     models.BillStatus
}

// TenantSnapshot holds every backed-up row of one tenant
type TenantSnapshot struct {
	Customers []models.Customer      `json:"customers"`
	Cylinders []models.CylinderEntry `json:"cylinders"`
	Bills     []models.Bill          `json:"bills"`
	Payments  []models.Payment       `json:"payments"`
	Settings  []models.Setting       `json:"settings"`
}

// RowCounts returns the number of rows per table
func (s *TenantSnapshot) RowCounts() map[string]int {
	return map[string]int{
		"customers": len(s.Customers),
		"cylinders": len(s.Cylinders),
		"bills":     len(s.Bills),
		"payments":  len(s.Payments),
		"settings":  len(s.Settings),
	}
}

// TenantSummary is one admin as listed in the super admin console
type TenantSummary struct {
	AdminID       uuid.UUID         `json:"admin_id"`
	Email         string            `json:"email"`
	Name          string            `json:"name"`
	BusinessName  string            `json:"business_name"`
	Status        models.UserStatus `json:"status"`
	IsVerified    bool              `json:"is_verified"`
	CreatedAt     time.Time         `json:"created_at"`
	StaffCount    int64             `json:"staff_count"`
	CustomerCount int64             `json:"customer_count"`
}

// PlatformStats are platform-wide totals
type PlatformStats struct {
	Admins    int64 `json:"admins"`
	Staff     int64 `json:"staff"`
	Customers int64 `json:"customers"`
	Bills     int64 `json:"bills"`
	Payments  int64 `json:"payments"`
}
