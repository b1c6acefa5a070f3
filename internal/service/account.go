package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lpg-backoffice/internal/auth"
	"lpg-backoffice/internal/database/models"
	apperrors "lpg-backoffice/internal/errors"
	"lpg-backoffice/internal/logger"
	"lpg-backoffice/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RegisterAdminRequest represents a distributor signing up
type RegisterAdminRequest struct {
	Email        string `json:"email" validate:"required,email,max=255"`
	Password     string `json:"password" validate:"required,min=8,max=72"`
	Name         string `json:"name" validate:"required,max=100"`
	Phone        string `json:"phone" validate:"max=20"`
	BusinessName string `json:"business_name" validate:"required,max=150"`
}

// LoginRequest represents password sign-in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// OTPRequest asks for a one-time code
type OTPRequest struct {
	Email   string            `json:"email" validate:"required,email"`
	Purpose models.OTPPurpose `json:"purpose" validate:"omitempty,oneof=VERIFY_EMAIL RESET_PASSWORD LOGIN"`
}

// OTPVerifyRequest submits a one-time code
type OTPVerifyRequest struct {
	Email   string            `json:"email" validate:"required,email"`
	Code    string            `json:"code" validate:"required,numeric"`
	Purpose models.OTPPurpose `json:"purpose" validate:"omitempty,oneof=VERIFY_EMAIL RESET_PASSWORD LOGIN"`
}

// ResetPasswordRequest sets a new password with a RESET_PASSWORD code
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Code        string `json:"code" validate:"required,numeric"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=72"`
}

// UserResponse represents a user as returned by the API
type UserResponse struct {
	ID           uuid.UUID         `json:"id"`
	Email        string            `json:"email"`
	Name         string            `json:"name"`
	Phone        string            `json:"phone,omitempty"`
	Role         models.Role       `json:"role"`
	Status       models.UserStatus `json:"status"`
	IsVerified   bool              `json:"is_verified"`
	AdminID      *uuid.UUID        `json:"admin_id,omitempty"`
	BusinessName string            `json:"business_name,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
}

// NewUserResponse converts a stored user
func NewUserResponse(u *models.User) *UserResponse {
	return &UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Phone:        u.Phone,
		Role:         u.Role,
		Status:       u.Status,
		IsVerified:   u.IsVerified,
		AdminID:      u.AdminID,
		BusinessName: u.BusinessName,
		CreatedAt:    u.CreatedAt,
	}
}

// SessionResponse is returned on sign-in; the handler also sets the token as a cookie
type SessionResponse struct {
	Token     string                               `json:"token"`
	ExpiresAt time.Time                            `json:"expires_at"`
	User      *UserResponse                        `json:"user"`
	Access    map[models.Module]models.AccessLevel `json:"access"`
}

// MeResponse is the profile of the caller
type MeResponse struct {
	User   *UserResponse                        `json:"user"`
	Access map[models.Module]models.AccessLevel `json:"access"`
}

// OTPVerifyResponse reports a verified code, with a session for LOGIN codes
type OTPVerifyResponse struct {
	Verified bool              `json:"verified"`
	Purpose  models.OTPPurpose `json:"purpose"`
	Session  *SessionResponse  `json:"session,omitempty"`
}

// AccountService handles sign-up, sign-in and account recovery
type AccountService struct {
	users     repository.UserRepositoryInterface
	access    AccessServiceInterface
	otp       OTPServiceInterface
	sessions  *auth.SessionManager
	validator *validator.Validate
}

// NewAccountService creates a new account service
func NewAccountService(users repository.UserRepositoryInterface, access AccessServiceInterface, otp OTPServiceInterface, sessions *auth.SessionManager, validator *validator.Validate) *AccountService {
	return &AccountService{
		users:     users,
		access:    access,
		otp:       otp,
		sessions:  sessions,
		validator: validator,
	}
}

// RegisterAdmin creates an unverified distributor account whose tenant is itself, seeds its role
// defaults and sends a VERIFY_EMAIL code.
func (s *AccountService) RegisterAdmin(ctx context.Context, req *RegisterAdminRequest) (*UserResponse, error) {
	req.Email = normalizeEmail(req.Email)
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	id := uuid.New()
	user := &models.User{
		BaseModel:    models.BaseModel{ID: id},
		Email:        req.Email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(req.Name),
		Phone:        strings.TrimSpace(req.Phone),
		Role:         models.RoleAdmin,
		Status:       models.UserStatusActive,
		IsVerified:   false,
		AdminID:      &id,
		BusinessName: strings.TrimSpace(req.BusinessName),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if isDuplicate(err) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("create admin: %w", err)
	}

	if err := s.access.ResetRoleDefaults(ctx, id); err != nil {
		return nil, err
	}
	if _, err := s.otp.IssueOTP(ctx, user.Email, models.OTPPurposeVerifyEmail); err != nil {
		// the account exists; the user can ask for a new code
		logger.WithContext(ctx).WithError(err).Warn("failed to issue verification code")
	}

	logger.WithContext(ctx).WithField("admin_id", id).Info("admin registered")
	return NewUserResponse(user), nil
}

// VerifyEmail consumes a VERIFY_EMAIL code and marks the account verified
func (s *AccountService) VerifyEmail(ctx context.Context, req *OTPVerifyRequest) (*UserResponse, error) {
	req.Email = normalizeEmail(req.Email)
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := s.otp.VerifyOTP(ctx, req.Email, req.Code, models.OTPPurposeVerifyEmail); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, translate(err, apperrors.ErrUserNotFound, "load user")
	}
	if !user.IsVerified {
		user.IsVerified = true
		if err := s.users.Update(ctx, user); err != nil {
			return nil, fmt.Errorf("mark verified: %w", err)
		}
	}
	return NewUserResponse(user), nil
}

// Login checks the password and opens a session
func (s *AccountService) Login(ctx context.Context, req *LoginRequest) (*SessionResponse, error) {
	req.Email = normalizeEmail(req.Email)
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsVerified {
		return nil, apperrors.ErrEmailNotVerified
	}
	return s.openSession(ctx, user)
}

func (s *AccountService) openSession(ctx context.Context, user *models.User) (*SessionResponse, error) {
	if !user.IsActive() {
		return nil, apperrors.ErrAccountSuspended
	}
	token, expiresAt, err := s.sessions.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("issue session: %w", err)
	}
	access, err := s.access.AccessMap(ctx, auth.NewIdentity(user))
	if err != nil {
		return nil, err
	}
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("session opened")
	return &SessionResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      NewUserResponse(user),
		Access:    access,
	}, nil
}

// RequestOTP sends a code for the given purpose. Unknown, suspended and already verified
// accounts get the same envelope as a real issue and no code is sent.
func (s *AccountService) RequestOTP(ctx context.Context, req *OTPRequest) (*OTPIssue, error) {
	req.Email = normalizeEmail(req.Email)
	if req.Purpose == "" {
		req.Purpose = models.OTPPurposeLogin
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	var reason string
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		reason = "unknown email"
	case err != nil:
		return nil, fmt.Errorf("load user: %w", err)
	case !user.IsActive():
		reason = "account suspended"
	case req.Purpose == models.OTPPurposeVerifyEmail && user.IsVerified:
		reason = "email already verified"
	default:
		return s.otp.IssueOTP(ctx, req.Email, req.Purpose)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"purpose": req.Purpose,
		"reason":  reason,
	}).Info("code request withheld")
	return s.otp.WithheldIssue(req.Email, req.Purpose), nil
}

// VerifyOTP consumes a code. VERIFY_EMAIL marks the account verified; LOGIN opens a session and
// marks the email verified. RESET_PASSWORD codes are redeemed through ResetPassword only.
func (s *AccountService) VerifyOTP(ctx context.Context, req *OTPVerifyRequest) (*OTPVerifyResponse, error) {
	if req.Purpose == "" {
		req.Purpose = models.OTPPurposeLogin
	}
	switch req.Purpose {
	case models.OTPPurposeVerifyEmail:
		if _, err := s.VerifyEmail(ctx, req); err != nil {
			return nil, err
		}
		return &OTPVerifyResponse{Verified: true, Purpose: req.Purpose}, nil
	case models.OTPPurposeLogin:
		session, err := s.LoginWithOTP(ctx, req)
		if err != nil {
			return nil, err
		}
		return &OTPVerifyResponse{Verified: true, Purpose: req.Purpose, Session: session}, nil
	default:
		return nil, apperrors.NewValidationError("purpose", "use /api/auth/reset-password for password reset codes")
	}
}

// LoginWithOTP opens a session with a LOGIN code instead of a password
func (s *AccountService) LoginWithOTP(ctx context.Context, req *OTPVerifyRequest) (*SessionResponse, error) {
	req.Email = normalizeEmail(req.Email)
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := s.otp.VerifyOTP(ctx, req.Email, req.Code, models.OTPPurposeLogin); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOTPInvalid
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	if !user.IsVerified {
		user.IsVerified = true
		if err := s.users.Update(ctx, user); err != nil {
			return nil, fmt.Errorf("mark verified: %w", err)
		}
	}
	return s.openSession(ctx, user)
}

// RequestPasswordReset sends a RESET_PASSWORD code
func (s *AccountService) RequestPasswordReset(ctx context.Context, email string) (*OTPIssue, error) {
	return s.RequestOTP(ctx, &OTPRequest{Email: email, Purpose: models.OTPPurposeResetPassword})
}

// ResetPassword consumes a RESET_PASSWORD code and stores the new password
func (s *AccountService) ResetPassword(ctx context.Context, req *ResetPasswordRequest) error {
	req.Email = normalizeEmail(req.Email)
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if err := s.otp.VerifyOTP(ctx, req.Email, req.Code, models.OTPPurposeResetPassword); err != nil {
		return err
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return translate(err, apperrors.ErrUserNotFound, "load user")
	}
	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = hash
	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("store password: %w", err)
	}
	logger.WithContext(ctx).WithField("user_id", user.ID).Info("password reset")
	return nil
}

// Me returns the caller's current profile and module access
func (s *AccountService) Me(ctx context.Context, identity *auth.Identity) (*MeResponse, error) {
	if identity == nil {
		return nil, apperrors.ErrNotAuthenticated
	}
	user, err := s.users.GetByID(ctx, identity.UserID)
	if err != nil {
		return nil, translate(err, apperrors.ErrUserNotFound, "load user")
	}
	access, err := s.access.AccessMap(ctx, auth.NewIdentity(user))
	if err != nil {
		return nil, err
	}
	return &MeResponse{User: NewUserResponse(user), Access: access}, nil
}
