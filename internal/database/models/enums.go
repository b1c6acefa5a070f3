package models

// Role is the platform role of a user
type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleManager    Role = "MANAGER"
	RoleAccountant Role = "ACCOUNTANT"
	RoleStaff      Role = "STAFF"
)

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleManager, RoleAccountant, RoleStaff:
		return true
	}
	return false
}

// IsStaff reports whether the role belongs to an admin's employees
func (r Role) IsStaff() bool {
	switch r {
	case RoleManager, RoleAccountant, RoleStaff:
		return true
	}
	return false
}

// StaffRoles lists the roles an admin may assign
func StaffRoles() []Role {
	return []Role{RoleManager, RoleAccountant, RoleStaff}
}

// UserStatus defines whether a user may sign in
type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
)

// IsValid checks if the UserStatus is valid
func (s UserStatus) IsValid() bool {
	return s == UserStatusActive || s == UserStatusSuspended
}

// AccessLevel is the result of evaluating a user's rights on a module
type AccessLevel string

const (
	AccessNoAccess   AccessLevel = "NO_ACCESS"
	AccessNotShow    AccessLevel = "NOT_SHOW"
	AccessView       AccessLevel = "VIEW"
	AccessEdit       AccessLevel = "EDIT"
	AccessFullAccess AccessLevel = "FULL_ACCESS"
)

// IsValid checks if the AccessLevel is valid
func (a AccessLevel) IsValid() bool {
	switch a {
	case AccessNoAccess, AccessNotShow, AccessView, AccessEdit, AccessFullAccess:
		return true
	}
	return false
}

// rank orders levels that grant something; NOT_SHOW and NO_ACCESS grant nothing.
func (a AccessLevel) rank() int {
	switch a {
	case AccessView:
		return 1
	case AccessEdit:
		return 2
	case AccessFullAccess:
		return 3
	}
	return 0
}

// Allows reports whether a holds at least the rights of required
func (a AccessLevel) Allows(required AccessLevel) bool {
	if required.rank() == 0 {
		return false
	}
	return a.rank() >= required.rank()
}

// Module names an application section subject to access control
type Module string

const (
	ModuleDashboard Module = "dashboard"
	ModuleCustomers Module = "customers"
	ModuleInventory Module = "inventory"
	ModuleBilling   Module = "billing"
	ModulePayments  Module = "payments"
	ModuleReports   Module = "reports"
	ModuleStaff     Module = "staff"
	ModuleSettings  Module = "settings"
	ModuleBackup    Module = "backup"
)

// AllModules returns every module in navigation order
func AllModules() []Module {
	return []Module{
		ModuleDashboard,
		ModuleCustomers,
		ModuleInventory,
		ModuleBilling,
		ModulePayments,
		ModuleReports,
		ModuleStaff,
		ModuleSettings,
		ModuleBackup,
	}
}

// IsValid checks if the Module is known
func (m Module) IsValid() bool {
	for _, known := range AllModules() {
		if m == known {
			return true
		}
	}
	return false
}

// OTPPurpose tells what an OTP was issued for
type OTPPurpose string

const (
	OTPPurposeVerifyEmail   OTPPurpose = "VERIFY_EMAIL"
	OTPPurposeResetPassword OTPPurpose = "RESET_PASSWORD"
	OTPPurposeLogin         OTPPurpose = "LOGIN"
)

// IsValid checks if the OTPPurpose is valid
func (p OTPPurpose) IsValid() bool {
	switch p {
	case OTPPurposeVerifyEmail, OTPPurposeResetPassword, OTPPurposeLogin:
		return true
	}
	return false
}

// CylinderType is the LPG cylinder size class
type CylinderType string

const (
	CylinderDomestic142   CylinderType = "DOMESTIC_14_2"
	CylinderCommercial19  CylinderType = "COMMERCIAL_19"
	CylinderCommercial475 CylinderType = "COMMERCIAL_47_5"
	CylinderFreeTradeLPG5 CylinderType = "FTL_5"
)

// IsValid checks if the CylinderType is valid
func (c CylinderType) IsValid() bool {
	switch c {
	case CylinderDomestic142, CylinderCommercial19, CylinderCommercial475, CylinderFreeTradeLPG5:
		return true
	}
	return false
}

// BillStatus is derived from the amount paid against a bill
type BillStatus string

const (
	BillStatusUnpaid  BillStatus = "UNPAID"
	BillStatusPartial BillStatus = "PARTIAL"
	BillStatusPaid    BillStatus = "PAID"
)

// PaymentMethod defines how a payment was received
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "CASH"
	PaymentUPI          PaymentMethod = "UPI"
	PaymentCard         PaymentMethod = "CARD"
	PaymentBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentCheque       PaymentMethod = "CHEQUE"
)

// IsValid checks if the PaymentMethod is valid
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentUPI, PaymentCard, PaymentBankTransfer, PaymentCheque:
		return true
	}
	return false
}

// BackupKind tells how a backup was triggered
type BackupKind string

const (
	BackupAutomatic BackupKind = "AUTOMATIC"
	BackupManual    BackupKind = "MANUAL"
)
