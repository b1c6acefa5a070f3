package repository

import (
	"context"

	"lpg-backoffice/internal/database/models"
	"lpg-backoffice/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const restoreBatchSize = 200

// BackupRepository stores backups and reads or replaces the tenant data they cover
type BackupRepository struct {
	db *gorm.DB
}

var _ BackupRepositoryInterface = (*BackupRepository)(nil)

// NewBackupRepository creates a new backup repository
func NewBackupRepository(db *gorm.DB) *BackupRepository {
	return &BackupRepository{db: db}
}

// Create stores a backup
func (r *BackupRepository) Create(ctx context.Context, backup *models.Backup) error {
	return r.db.WithContext(ctx).Create(backup).Error
}

// GetByID retrieves a backup including its document
func (r *BackupRepository) GetByID(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*models.Backup, error) {
	var backup models.Backup
	err := r.db.WithContext(ctx).Scopes(scope.Apply).First(&backup, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &backup, nil
}

// List retrieves backups, newest first, without their documents
func (r *BackupRepository) List(ctx context.Context, scope tenant.Scope, limit, offset int) ([]models.Backup, int64, error) {
	var backups []models.Backup
	var total int64

	q := r.db.WithContext(ctx).Model(&models.Backup{}).Scopes(scope.Apply)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := q.Omit("document").Order("created_at DESC").Limit(limit).Offset(offset).Find(&backups).Error; err != nil {
		return nil, 0, err
	}

	return backups, total, nil
}

// Delete deletes a backup visible through the scope
func (r *BackupRepository) Delete(ctx context.Context, scope tenant.Scope, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Scopes(scope.Apply).Delete(&models.Backup{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// PruneAutomatic keeps the newest keep automatic backups of a tenant and deletes the rest
func (r *BackupRepository) PruneAutomatic(ctx context.Context, adminID uuid.UUID, keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}
	db := r.db.WithContext(ctx)
	newest := db.Model(&models.Backup{}).
		Select("id").
		Where("admin_id = ? AND kind = ?", adminID, models.BackupAutomatic).
		Order("created_at DESC").
		Limit(keep)

	res := db.Where("admin_id = ? AND kind = ?", adminID, models.BackupAutomatic).
		Where("id NOT IN (?)", newest).
		Delete(&models.Backup{})
	return res.RowsAffected, res.Error
}

// Snapshot reads every backed-up table of a tenant
func (r *BackupRepository) Snapshot(ctx context.Context, adminID uuid.UUID) (*TenantSnapshot, error) {
	db := r.db.WithContext(ctx)
	snap := &TenantSnapshot{}
	for _, dest := range []interface{}{
		&snap.Customers,
		&snap.Cylinders,
		&snap.Bills,
		&snap.Payments,
		&snap.Settings,
	} {
		if err := db.Where("admin_id = ?", adminID).Order("created_at").Find(dest).Error; err != nil {
			return nil, err
		}
	}
	return snap, nil
}

// Restore replaces the tenant's rows of every backed-up table with the snapshot's rows, all in
// one transaction. Rows are re-stamped with adminID before insert.
func (r *BackupRepository) Restore(ctx context.Context, adminID uuid.UUID, snap *TenantSnapshot) error {
	for i := range snap.Customers {
		snap.Customers[i].AdminID = adminID
	}
	for i := range snap.Cylinders {
		snap.Cylinders[i].AdminID = adminID
	}
	for i := range snap.Bills {
		snap.Bills[i].AdminID = adminID
	}
	for i := range snap.Payments {
		snap.Payments[i].AdminID = adminID
	}
	for i := range snap.Settings {
		snap.Settings[i].AdminID = adminID
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// children first
		for _, model := range []interface{}{
			&models.Payment{},
			&models.Bill{},
			&models.CylinderEntry{},
			&models.Customer{},
			&models.Setting{},
		} {
			if err := tx.Where("admin_id = ?", adminID).Delete(model).Error; err != nil {
				return err
			}
		}

		if len(snap.Customers) > 0 {
			if err := tx.CreateInBatches(&snap.Customers, restoreBatchSize).Error; err != nil {
				return err
			}
		}
		if len(snap.Cylinders) > 0 {
			if err := tx.CreateInBatches(&snap.Cylinders, restoreBatchSize).Error; err != nil {
				return err
			}
		}
		if len(snap.Bills) > 0 {
			if err := tx.CreateInBatches(&snap.Bills, restoreBatchSize).Error; err != nil {
				return err
			}
		}
		if len(snap.Payments) > 0 {
			if err := tx.CreateInBatches(&snap.Payments, restoreBatchSize).Error; err != nil {
				return err
			}
		}
		if len(snap.Settings) > 0 {
			if err := tx.CreateInBatches(&snap.Settings, restoreBatchSize).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
