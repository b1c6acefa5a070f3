package repository

import (
	"context"

	"lpg-backoffice/internal/database/models"
	"lpg-backoffice/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

var _ UserRepositoryInterface = (*UserRepository)(nil)

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update updates a user
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// Delete deletes a user together with its explicit permission records
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.UserPermission{}, "user_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.User{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// staffRoles restricts a query to users holding a staff role
func staffRoles(db *gorm.DB) *gorm.DB {
	return db.Where("role IN ?", models.StaffRoles())
}

// GetStaff retrieves one staff member visible through the scope
func (r *UserRepository) GetStaff(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Scopes(scope.Apply, staffRoles).First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListStaff retrieves the staff of a tenant with pagination
func (r *UserRepository) ListStaff(ctx context.Context, scope tenant.Scope, limit, offset int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	query := r.db.WithContext(ctx).Model(&models.User{}).Scopes(scope.Apply, staffRoles)

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// SetTenantStatus sets the status of an admin and every user attached to its tenant
func (r *UserRepository) SetTenantStatus(ctx context.Context, adminID uuid.UUID, status models.UserStatus) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ? OR admin_id = ?", adminID, adminID).
		Update("status", status)
	return res.RowsAffected, res.Error
}
