package repository

import (
	"context"
	"time"

	"lpg-backoffice/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OTPRepository stores the single active one-time code of each email
type OTPRepository struct {
	db *gorm.DB
}

var _ OTPRepositoryInterface = (*OTPRepository)(nil)

// NewOTPRepository creates a new OTP repository
func NewOTPRepository(db *gorm.DB) *OTPRepository {
	return &OTPRepository{db: db}
}

// Upsert writes the code row of an email, replacing any previous code and resetting its counters
func (r *OTPRepository) Upsert(ctx context.Context, otp *models.OTPCode) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"code_hash", "purpose", "expires_at", "consumed", "attempts", "updated_at",
		}),
	}).Create(otp).Error
}

// GetByEmail retrieves the code row of an email
func (r *OTPRepository) GetByEmail(ctx context.Context, email string) (*models.OTPCode, error) {
	var otp models.OTPCode
	err := r.db.WithContext(ctx).First(&otp, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &otp, nil
}

// ReserveAttempt counts one verification attempt against the code before it is compared. It
// reports false when the code was consumed, replaced, or has used up maxAttempts; the check and
// the increment are a single UPDATE so parallel guesses cannot exceed the limit.
func (r *OTPRepository) ReserveAttempt(ctx context.Context, id uuid.UUID, codeHash string, maxAttempts int) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.OTPCode{}).
		Where("id = ? AND code_hash = ? AND consumed = ? AND attempts < ?", id, codeHash, false, maxAttempts).
		Update("attempts", gorm.Expr("attempts + 1"))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// Consume marks the code used if it is still unconsumed and has not been replaced since it was
// read. It reports whether this call won.
func (r *OTPRepository) Consume(ctx context.Context, id uuid.UUID, codeHash string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.OTPCode{}).
		Where("id = ? AND consumed = ? AND code_hash = ?", id, false, codeHash).
		Update("consumed", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// DeleteExpired removes codes that expired before the given instant
func (r *OTPRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.OTPCode{}, "expires_at < ?", before)
	return res.RowsAffected, res.Error
}
