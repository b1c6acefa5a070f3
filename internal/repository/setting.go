package repository

import (
	"context"

	"lpg-backoffice/internal/database/models"
	"lpg-backoffice/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingRepository stores tenant key/value settings
type SettingRepository struct {
	db *gorm.DB
}

var _ SettingRepositoryInterface = (*SettingRepository)(nil)

// NewSettingRepository creates a new setting repository
func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// List retrieves the stored settings visible through the scope
func (r *SettingRepository) List(ctx context.Context, scope tenant.Scope) ([]models.Setting, error) {
	var settings []models.Setting
	err := r.db.WithContext(ctx).Scopes(scope.Apply).Order("key").Find(&settings).Error
	return settings, err
}

// Upsert inserts or overwrites settings keyed by (admin_id, key)
func (r *SettingRepository) Upsert(ctx context.Context, settings []models.Setting) error {
	if len(settings) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "admin_id"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&settings).Error
}
