package repository

import (
	"context"
	"strings"

	"lpg-backoffice/internal/database/models"
	"lpg-backoffice/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerRepository handles database operations for customers
type CustomerRepository struct {
	db *gorm.DB
}

var _ CustomerRepositoryInterface = (*CustomerRepository)(nil)

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Create creates a new customer. AdminID must already be stamped.
func (r *CustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

// GetByID retrieves a customer visible through the scope
func (r *CustomerRepository) GetByID(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.WithContext(ctx).Scopes(scope.Apply).First(&customer, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// List retrieves customers with an optional name, phone or connection number search
func (r *CustomerRepository) List(ctx context.Context, scope tenant.Scope, query string, limit, offset int) ([]models.Customer, int64, error) {
	var customers []models.Customer
	var total int64

	q := r.db.WithContext(ctx).Model(&models.Customer{}).Scopes(scope.Apply)
	if s := strings.TrimSpace(query); s != "" {
		like := "%" + s + "%"
		q = q.Where("name ILIKE ? OR phone ILIKE ? OR connection_number ILIKE ?", like, like, like)
	}

	// Get total count
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	if err := q.Order("name").Limit(limit).Offset(offset).Find(&customers).Error; err != nil {
		return nil, 0, err
	}

	return customers, total, nil
}

// Update writes every mutable column of a customer visible through the scope
func (r *CustomerRepository) Update(ctx context.Context, scope tenant.Scope, customer *models.Customer) error {
	res := r.db.WithContext(ctx).Model(customer).Scopes(scope.Apply).
		Select("*").Omit("id", "admin_id", "created_at").
		Updates(customer)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete deletes a customer with its bills and payments
func (r *CustomerRepository) Delete(ctx context.Context, scope tenant.Scope, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Scopes(scope.Apply).Delete(&models.Customer{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Scopes(scope.Apply).Delete(&models.Payment{}, "customer_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Scopes(scope.Apply).Delete(&models.Bill{}, "customer_id = ?", id).Error
	})
}
