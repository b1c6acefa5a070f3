package repository

import (
	"context"

	"lpg-backoffice/internal/database/models"
	"lpg-backoffice/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BillRepository handles database operations for bills
type BillRepository struct {
	db *gorm.DB
}

var _ BillRepositoryInterface = (*BillRepository)(nil)

// NewBillRepository creates a new bill repository
func NewBillRepository(db *gorm.DB) *BillRepository {
	return &BillRepository{db: db}
}

// CreateForCustomer stores a bill and adds its total to the customer's balance. The customer
// must belong to the bill's tenant.
func (r *BillRepository) CreateForCustomer(ctx context.Context, bill *models.Bill) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Customer{}).
			Where("id = ? AND admin_id = ?", bill.CustomerID, bill.AdminID).
			Update("balance", gorm.Expr("balance + ?", bill.Total))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Create(bill).Error
	})
}

// GetByID retrieves a bill visible through the scope
func (r *BillRepository) GetByID(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*models.Bill, error) {
	var bill models.Bill
	err := r.db.WithContext(ctx).Scopes(scope.Apply).First(&bill, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

// List retrieves bills, newest first
func (r *BillRepository) List(ctx context.Context, scope tenant.Scope, filter BillFilter, limit, offset int) ([]models.Bill, int64, error) {
	var bills []models.Bill
	var total int64

	q := r.db.WithContext(ctx).Model(&models.Bill{}).Scopes(scope.Apply)
	if filter.CustomerID != nil {
		q = q.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := q.Order("issued_on DESC, bill_number DESC").Limit(limit).Offset(offset).Find(&bills).Error; err != nil {
		return nil, 0, err
	}

	return bills, total, nil
}

// LastSequence returns the highest numeric suffix among the tenant's bill numbers starting with
// prefix, or 0 when there is none. Gaps left by deleted bills are never reused.
func (r *BillRepository) LastSequence(ctx context.Context, scope tenant.Scope, prefix string) (int64, error) {
	var last int64
	err := r.db.WithContext(ctx).Model(&models.Bill{}).Scopes(scope.Apply).
		Select(`COALESCE(MAX(CAST(SUBSTRING(bill_number FROM '[0-9]+$') AS BIGINT)), 0)`).
		Where("bill_number LIKE ?", prefix+"%").
		Where("bill_number ~ ?", `[0-9]+$`).
		Scan(&last).Error
	return last, err
}

// Delete removes a bill, takes its total off the customer's balance and detaches payments made
// against it. Those payments stay on the customer's account as credit.
func (r *BillRepository) Delete(ctx context.Context, scope tenant.Scope, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var bill models.Bill
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Scopes(scope.Apply).
			First(&bill, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Payment{}).
			Where("bill_id = ? AND admin_id = ?", bill.ID, bill.AdminID).
			Update("bill_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Customer{}).
			Where("id = ? AND admin_id = ?", bill.CustomerID, bill.AdminID).
			Update("balance", gorm.Expr("balance - ?", bill.Total)).Error; err != nil {
			return err
		}
		return tx.Delete(&bill).Error
	})
}
