package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"lpg-backoffice/internal/database/models"
	apperrors "lpg-backoffice/internal/errors"
	"lpg-backoffice/internal/logger"
	"lpg-backoffice/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// OTPOptions configures code issuance
type OTPOptions struct {
	Length         int
	TTL            time.Duration
	MaxAttempts    int
	ResendCooldown time.Duration
}

// OTPIssue describes an issued code without revealing it
type OTPIssue struct {
	Email     string            `json:"email"`
	Purpose   models.OTPPurpose `json:"purpose"`
	ExpiresAt time.Time         `json:"expires_at"`
}

// OTPService issues and verifies one-time numeric codes. Each email has at most one active code;
// issuing a new one overwrites the previous code.
type OTPService struct {
	repo    repository.OTPRepositoryInterface
	limiter CooldownLimiter
	mailer  Mailer
	opts    OTPOptions
	now     func() time.Time
}

// NewOTPService creates a new OTP service
func NewOTPService(repo repository.OTPRepositoryInterface, limiter CooldownLimiter, mailer Mailer, opts OTPOptions) *OTPService {
	if limiter == nil {
		limiter = NoopCooldownLimiter{}
	}
	if opts.Length <= 0 {
		opts.Length = 6
	}
	if opts.TTL <= 0 {
		opts.TTL = 10 * time.Minute
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 5
	}
	return &OTPService{
		repo:    repo,
		limiter: limiter,
		mailer:  mailer,
		opts:    opts,
		now:     time.Now,
	}
}

// SetClock replaces the time source
func (s *OTPService) SetClock(now func() time.Time) {
	s.now = now
}

// IssueOTP generates a code for the email, stores its hash and hands the plain code to the mailer
func (s *OTPService) IssueOTP(ctx context.Context, email string, purpose models.OTPPurpose) (*OTPIssue, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, apperrors.NewValidationError("email", "email is required")
	}
	if !purpose.IsValid() {
		return nil, apperrors.NewValidationError("purpose", "unknown purpose")
	}

	allowed, err := s.limiter.Allow(ctx, email, s.opts.ResendCooldown)
	if err != nil {
		// fail open while the limiter is unavailable
		logger.WithContext(ctx).WithError(err).Warn("otp cooldown check failed")
	} else if !allowed {
		return nil, apperrors.ErrOTPCooldown
	}

	code, err := generateCode(s.opts.Length)
	if err != nil {
		return nil, fmt.Errorf("generate code: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash code: %w", err)
	}

	record := &models.OTPCode{
		Email:     email,
		CodeHash:  string(hash),
		Purpose:   purpose,
		ExpiresAt: s.now().Add(s.opts.TTL),
		Consumed:  false,
		Attempts:  0,
	}
	if err := s.repo.Upsert(ctx, record); err != nil {
		return nil, fmt.Errorf("store code: %w", err)
	}

	if err := s.mailer.SendOTP(ctx, email, code, purpose); err != nil {
		return nil, fmt.Errorf("deliver code: %w", err)
	}

	return &OTPIssue{Email: email, Purpose: purpose, ExpiresAt: record.ExpiresAt}, nil
}

// WithheldIssue returns the envelope a real issue would produce without storing or sending a code
func (s *OTPService) WithheldIssue(email string, purpose models.OTPPurpose) *OTPIssue {
	return &OTPIssue{Email: normalizeEmail(email), Purpose: purpose, ExpiresAt: s.now().Add(s.opts.TTL)}
}

// VerifyOTP accepts a code once. It fails with ErrOTPExpired when the code lapsed and with
// ErrOTPInvalid for any other rejection. At most MaxAttempts comparisons are made per code.
func (s *OTPService) VerifyOTP(ctx context.Context, email, code string, purpose models.OTPPurpose) error {
	email = normalizeEmail(email)
	code = strings.TrimSpace(code)

	record, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOTPInvalid
		}
		return fmt.Errorf("load code: %w", err)
	}
	if record.Consumed || record.Purpose != purpose {
		return apperrors.ErrOTPInvalid
	}
	if record.IsExpired(s.now()) {
		return apperrors.ErrOTPExpired
	}
	if record.Attempts >= s.opts.MaxAttempts {
		return apperrors.ErrOTPInvalid
	}

	// the attempt is spent before the comparison, whatever its outcome
	reserved, err := s.repo.ReserveAttempt(ctx, record.ID, record.CodeHash, s.opts.MaxAttempts)
	if err != nil {
		return fmt.Errorf("reserve attempt: %w", err)
	}
	if !reserved {
		return apperrors.ErrOTPInvalid
	}

	if bcrypt.CompareHashAndPassword([]byte(record.CodeHash), []byte(code)) != nil {
		return apperrors.ErrOTPInvalid
	}

	consumed, err := s.repo.Consume(ctx, record.ID, record.CodeHash)
	if err != nil {
		return fmt.Errorf("consume code: %w", err)
	}
	if !consumed {
		return apperrors.ErrOTPInvalid
	}
	return nil
}

// PurgeExpired deletes codes that expired before now
func (s *OTPService) PurgeExpired(ctx context.Context) (int64, error) {
	return s.repo.DeleteExpired(ctx, s.now())
}

// generateCode returns a numeric code of n digits drawn from crypto/rand
func generateCode(n int) (string, error) {
	var b strings.Builder
	b.Grow(n)
	ten := big.NewInt(10)
	for i := 0; i < n; i++ {
		d, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", err
		}
		b.WriteByte(byte('0' + d.Int64()))
	}
	return b.String(), nil
}
