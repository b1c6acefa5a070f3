package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"lpg-backoffice/internal/database/models"
	apperrors "lpg-backoffice/internal/errors"
	"lpg-backoffice/internal/logger"
	"lpg-backoffice/internal/repository"
	"lpg-backoffice/internal/tenant"

	"github.com/google/uuid"
)

// BackupVersion is the document format version written and accepted by this service
const BackupVersion = 1

// BackupDocument is the portable form of a tenant's data
type BackupDocument struct {
	Version     int                       `json:"version"`
	AdminID     uuid.UUID                 `json:"admin_id"`
	GeneratedAt time.Time                 `json:"generated_at"`
	Kind        models.BackupKind         `json:"kind"`
	Tables      repository.TenantSnapshot `json:"tables"`
}

// AutomaticBackupResult reports what an automatic backup run did
type AutomaticBackupResult struct {
	Skipped bool           `json:"skipped"`
	Reason  string         `json:"reason,omitempty"`
	Backup  *models.Backup `json:"backup,omitempty"`
	Pruned  int64          `json:"pruned"`
}

// RestoreResult reports the rows written by a restore
type RestoreResult struct {
	RestoredFrom uuid.UUID      `json:"restored_from"`
	GeneratedAt  time.Time      `json:"generated_at"`
	Rows         map[string]int `json:"rows"`
}

// BackupService generates, stores and restores tenant backups
type BackupService struct {
	repo      repository.BackupRepositoryInterface
	settings  SettingServiceInterface
	retention int
	now       func() time.Time
}

// NewBackupService creates a new backup service keeping retention automatic backups per tenant
func NewBackupService(repo repository.BackupRepositoryInterface, settings SettingServiceInterface, retention int) *BackupService {
	if retention < 1 {
		retention = 1
	}
	return &BackupService{
		repo:      repo,
		settings:  settings,
		retention: retention,
		now:       time.Now,
	}
}

// SetClock overrides the time source
func (s *BackupService) SetClock(now func() time.Time) {
	s.now = now
}

// Generate reads the scope's tenant data into a backup document
func (s *BackupService) Generate(ctx context.Context, scope tenant.Scope, kind models.BackupKind) (*BackupDocument, error) {
	adminID, err := scope.TenantID()
	if err != nil {
		return nil, err
	}
	if kind != models.BackupAutomatic && kind != models.BackupManual {
		return nil, apperrors.NewValidationError("kind", "unknown backup kind")
	}
	snap, err := s.repo.Snapshot(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("snapshot tenant: %w", err)
	}
	return &BackupDocument{
		Version:     BackupVersion,
		AdminID:     adminID,
		GeneratedAt: s.now().UTC(),
		Kind:        kind,
		Tables:      *snap,
	}, nil
}

func (s *BackupService) store(ctx context.Context, doc *BackupDocument) (*models.Backup, error) {
	encoded, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode backup: %w", err)
	}
	counts, err := json.Marshal(doc.Tables.RowCounts())
	if err != nil {
		return nil, fmt.Errorf("encode row counts: %w", err)
	}
	backup := &models.Backup{
		AdminID:   doc.AdminID,
		Kind:      doc.Kind,
		Document:  encoded,
		SizeBytes: len(encoded),
		RowCounts: counts,
	}
	if err := s.repo.Create(ctx, backup); err != nil {
		return nil, fmt.Errorf("store backup: %w", err)
	}
	return backup, nil
}

// Create generates and stores a manual backup
func (s *BackupService) Create(ctx context.Context, scope tenant.Scope) (*models.Backup, error) {
	doc, err := s.Generate(ctx, scope, models.BackupManual)
	if err != nil {
		return nil, err
	}
	backup, err := s.store(ctx, doc)
	if err != nil {
		return nil, err
	}
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"backup_id": backup.ID,
		"size":      backup.SizeBytes,
	}).Info("manual backup created")
	return backup, nil
}

// CreateAutomatic stores an automatic backup unless the tenant turned them off, then prunes
// automatic backups beyond the retention count
func (s *BackupService) CreateAutomatic(ctx context.Context, scope tenant.Scope) (*AutomaticBackupResult, error) {
	if _, err := scope.TenantID(); err != nil {
		return nil, err
	}
	if !s.settings.Bool(ctx, scope, SettingAutoBackup) {
		return &AutomaticBackupResult{Skipped: true, Reason: "automatic backups are disabled"}, nil
	}

	doc, err := s.Generate(ctx, scope, models.BackupAutomatic)
	if err != nil {
		return nil, err
	}
	backup, err := s.store(ctx, doc)
	if err != nil {
		return nil, err
	}

	pruned, err := s.repo.PruneAutomatic(ctx, doc.AdminID, s.retention)
	if err != nil {
		logger.WithContext(ctx).WithError(err).Warn("failed to prune automatic backups")
	}
	return &AutomaticBackupResult{Backup: backup, Pruned: pruned}, nil
}

// List returns stored backups without their documents
func (s *BackupService) List(ctx context.Context, scope tenant.Scope, page, pageSize int) (*PageResult[models.Backup], error) {
	limit, offset, page := Pagination(page, pageSize)
	backups, total, err := s.repo.List(ctx, scope, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list backups: %w", err)
	}
	if backups == nil {
		backups = []models.Backup{}
	}
	return &PageResult[models.Backup]{Items: backups, Total: total, Page: page, PageSize: limit}, nil
}

// Get returns one stored backup
func (s *BackupService) Get(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*models.Backup, error) {
	backup, err := s.repo.GetByID(ctx, scope, id)
	if err != nil {
		return nil, translate(err, apperrors.ErrBackupNotFound, "load backup")
	}
	return backup, nil
}

// Download returns the stored document and a file name for it
func (s *BackupService) Download(ctx context.Context, scope tenant.Scope, id uuid.UUID) ([]byte, string, error) {
	backup, err := s.Get(ctx, scope, id)
	if err != nil {
		return nil, "", err
	}
	name := fmt.Sprintf("backup-%s-%s.json", backup.CreatedAt.UTC().Format("20060102-150405"), backup.ID.String()[:8])
	return backup.Document, name, nil
}

// Delete removes a stored backup
func (s *BackupService) Delete(ctx context.Context, scope tenant.Scope, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, scope, id); err != nil {
		return translate(err, apperrors.ErrBackupNotFound, "delete backup")
	}
	return nil
}

// ValidateDocument checks the version and that every row belongs to the document's tenant
func ValidateDocument(doc *BackupDocument) error {
	if doc == nil || doc.Version != BackupVersion {
		return apperrors.ErrBackupVersion
	}
	if doc.AdminID == uuid.Nil {
		return apperrors.NewValidationError("admin_id", "backup has no tenant")
	}
	owner := doc.AdminID
	t := doc.Tables
	for _, r := range t.Customers {
		if r.AdminID != owner {
			return apperrors.ErrBackupForeignRows
		}
	}
	for _, r := range t.Cylinders {
		if r.AdminID != owner {
			return apperrors.ErrBackupForeignRows
		}
	}
	for _, r := range t.Bills {
		if r.AdminID != owner {
			return apperrors.ErrBackupForeignRows
		}
	}
	for _, r := range t.Payments {
		if r.AdminID != owner {
			return apperrors.ErrBackupForeignRows
		}
	}
	for _, r := range t.Settings {
		if r.AdminID != owner {
			return apperrors.ErrBackupForeignRows
		}
	}
	return nil
}

// Restore replaces the scope's tenant data with the document's rows
func (s *BackupService) Restore(ctx context.Context, scope tenant.Scope, doc *BackupDocument) (*RestoreResult, error) {
	adminID, err := scope.TenantID()
	if err != nil {
		return nil, err
	}
	if err := ValidateDocument(doc); err != nil {
		return nil, err
	}

	snap := doc.Tables
	if err := s.repo.Restore(ctx, adminID, &snap); err != nil {
		if isDuplicate(err) {
			return nil, apperrors.NewAlreadyExistsError("backup rows", "in another tenant")
		}
		return nil, fmt.Errorf("restore backup: %w", err)
	}

	rows := snap.RowCounts()
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"restored_from": doc.AdminID,
		"generated_at":  doc.GeneratedAt,
		"rows":          rows,
	}).Warn("tenant data restored from backup")
	return &RestoreResult{RestoredFrom: doc.AdminID, GeneratedAt: doc.GeneratedAt, Rows: rows}, nil
}
