package repository

import (
	"context"

	"lpg-backoffice/internal/database/models"
	"lpg-backoffice/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CylinderRepository handles database operations for cylinder stock entries
type CylinderRepository struct {
	db *gorm.DB
}

var _ CylinderRepositoryInterface = (*CylinderRepository)(nil)

// NewCylinderRepository creates a new cylinder repository
func NewCylinderRepository(db *gorm.DB) *CylinderRepository {
	return &CylinderRepository{db: db}
}

// Create records a new stock entry. AdminID must already be stamped.
func (r *CylinderRepository) Create(ctx context.Context, entry *models.CylinderEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// GetByID retrieves an entry visible through the scope
func (r *CylinderRepository) GetByID(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*models.CylinderEntry, error) {
	var entry models.CylinderEntry
	err := r.db.WithContext(ctx).Scopes(scope.Apply).First(&entry, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// List retrieves entries, newest first, optionally of one cylinder type
func (r *CylinderRepository) List(ctx context.Context, scope tenant.Scope, cylinderType models.CylinderType, limit, offset int) ([]models.CylinderEntry, int64, error) {
	var entries []models.CylinderEntry
	var total int64

	q := r.db.WithContext(ctx).Model(&models.CylinderEntry{}).Scopes(scope.Apply)
	if cylinderType != "" {
		q = q.Where("cylinder_type = ?", cylinderType)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := q.Order("received_on DESC, created_at DESC").Limit(limit).Offset(offset).Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

// Delete deletes one entry visible through the scope
func (r *CylinderRepository) Delete(ctx context.Context, scope tenant.Scope, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Scopes(scope.Apply).Delete(&models.CylinderEntry{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteAll deletes every entry of the tenant and returns how many were removed.
// An unscoped scope is refused so a bulk delete can never span tenants.
func (r *CylinderRepository) DeleteAll(ctx context.Context, scope tenant.Scope) (int64, error) {
	adminID, err := scope.TenantID()
	if err != nil {
		return 0, err
	}
	var deleted int64
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("admin_id = ?", adminID).Delete(&models.CylinderEntry{})
		deleted = res.RowsAffected
		return res.Error
	})
	return deleted, err
}

// Summary totals filled and empty stock per cylinder type
func (r *CylinderRepository) Summary(ctx context.Context, scope tenant.Scope) ([]CylinderStock, error) {
	var rows []CylinderStock
	err := r.db.WithContext(ctx).Model(&models.CylinderEntry{}).Scopes(scope.Apply).
		Select(`cylinder_type,
			COALESCE(SUM(CASE WHEN filled THEN quantity ELSE 0 END), 0) AS filled,
			COALESCE(SUM(CASE WHEN filled THEN 0 ELSE quantity END), 0) AS empty`).
		Group("cylinder_type").
		Order("cylinder_type").
		Scan(&rows).Error
	return rows, err
}
