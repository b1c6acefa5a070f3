package repository

import (
	"context"
	"strings"

	"lpg-backoffice/internal/database/models"

	"gorm.io/gorm"
)

// PlatformRepository answers the cross-tenant queries of the super admin console
type PlatformRepository struct {
	db *gorm.DB
}

var _ PlatformRepositoryInterface = (*PlatformRepository)(nil)

// NewPlatformRepository creates a new platform repository
func NewPlatformRepository(db *gorm.DB) *PlatformRepository {
	return &PlatformRepository{db: db}
}

func (r *PlatformRepository) admins(ctx context.Context, query string) *gorm.DB {
	q := r.db.WithContext(ctx).Table("users AS u").Where("u.role = ?", models.RoleAdmin)
	if s := strings.TrimSpace(query); s != "" {
		like := "%" + s + "%"
		q = q.Where("u.email ILIKE ? OR u.name ILIKE ? OR u.business_name ILIKE ?", like, like, like)
	}
	return q
}

// ListTenants lists admins with their staff and customer counts
func (r *PlatformRepository) ListTenants(ctx context.Context, query string, limit, offset int) ([]TenantSummary, int64, error) {
	var rows []TenantSummary
	var total int64

	if err := r.admins(ctx, query).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.admins(ctx, query).
		Select(`u.id AS admin_id, u.email, u.name, u.business_name, u.status, u.is_verified, u.created_at,
			(SELECT COUNT(*) FROM users s WHERE s.admin_id = u.id AND s.role IN ?) AS staff_count,
			(SELECT COUNT(*) FROM customers c WHERE c.admin_id = u.id) AS customer_count`, models.StaffRoles()).
		Order("u.created_at DESC").
		Limit(limit).Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

// Stats counts rows across all tenants
func (r *PlatformRepository) Stats(ctx context.Context) (*PlatformStats, error) {
	db := r.db.WithContext(ctx)
	stats := &PlatformStats{}

	if err := db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&stats.Admins).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.User{}).Where("role IN ?", models.StaffRoles()).Count(&stats.Staff).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Customer{}).Count(&stats.Customers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Bill{}).Count(&stats.Bills).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Payment{}).Count(&stats.Payments).Error; err != nil {
		return nil, err
	}
	return stats, nil
}
