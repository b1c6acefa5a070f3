package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this email"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// OTPReason classifies a failed OTP verification
type OTPReason string

const (
	OTPReasonExpired OTPReason = "EXPIRED"
	OTPReasonInvalid OTPReason = "INVALID"
)

// OTPError is returned when a one-time code cannot be accepted
type OTPError struct {
	Reason OTPReason
}

func (e *OTPError) Error() string {
	switch e.Reason {
	case OTPReasonExpired:
		return "verification code has expired"
	default:
		return "verification code is invalid"
	}
}

// Is enables errors.Is() comparison on the reason
func (e *OTPError) Is(target error) bool {
	t, ok := target.(*OTPError)
	if !ok {
		return false
	}
	return e.Reason == t.Reason
}

// Entity Not Found Errors
var (
	ErrUserNotFound          = &NotFoundError{Entity: "user"}
	ErrAdminNotFound         = &NotFoundError{Entity: "admin"}
	ErrStaffNotFound         = &NotFoundError{Entity: "staff member"}
	ErrCustomerNotFound      = &NotFoundError{Entity: "customer"}
	ErrCylinderEntryNotFound = &NotFoundError{Entity: "cylinder entry"}
	ErrBillNotFound          = &NotFoundError{Entity: "bill"}
	ErrPaymentNotFound       = &NotFoundError{Entity: "payment"}
	ErrBackupNotFound        = &NotFoundError{Entity: "backup"}
)

// Already Exists Errors
var (
	ErrUserExists       = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrCustomerExists   = &AlreadyExistsError{Entity: "customer", Context: "with this connection number"}
	ErrBillNumberExists = &AlreadyExistsError{Entity: "bill", Context: "with this number"}
)

// OTP Errors
var (
	ErrOTPExpired = &OTPError{Reason: OTPReasonExpired}
	ErrOTPInvalid = &OTPError{Reason: OTPReasonInvalid}
)

// Business Logic Errors
var (
	ErrUnknownModule        = &ValidationError{Field: "module", Message: "unknown module"}
	ErrInvalidAccessLevel   = &ValidationError{Field: "access", Message: "unknown access level"}
	ErrInvalidRole          = &ValidationError{Field: "role", Message: "role is not assignable"}
	ErrOTPCooldown          = &ValidationError{Field: "email", Message: "please wait before requesting another code"}
	ErrPaymentExceedsBill   = &ValidationError{Field: "amount", Message: "payment exceeds outstanding bill amount"}
	ErrBillCustomerMismatch = &ValidationError{Field: "bill_id", Message: "bill belongs to another customer"}
	ErrBackupVersion        = &ValidationError{Field: "version", Message: "unsupported backup version"}
	ErrBackupForeignRows    = &ValidationError{Field: "tables", Message: "backup contains rows of another tenant"}
)

// Authentication Errors
var (
	ErrNotAuthenticated   = &AuthenticationError{Message: "authentication required"}
	ErrInvalidSession     = &AuthenticationError{Message: "invalid or expired session"}
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
)

// Authorization Errors
var (
	ErrEmailNotVerified = &AuthorizationError{Message: "email not verified"}
	ErrAccountSuspended = &AuthorizationError{Message: "account is suspended"}
	ErrNoTenant         = &AuthorizationError{Message: "user is not attached to a tenant"}
	ErrTenantRequired   = &AuthorizationError{Message: "operation requires a tenant scope"}
)

// Classification. Each helper unwraps, so wrapped sentinels keep their HTTP mapping.

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsAlreadyExists(err error) bool {
	var target *AlreadyExistsError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsAuthentication(err error) bool {
	var target *AuthenticationError
	return errors.As(err, &target)
}

func IsAuthorization(err error) bool {
	var target *AuthorizationError
	return errors.As(err, &target)
}

// AsOTP returns the code rejection carried by err, if any
func AsOTP(err error) (*OTPError, bool) {
	var target *OTPError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// NewAlreadyExistsError builds a conflict for an entity without a predeclared sentinel
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError reports a rejected field value
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
