package repository

import (
	"context"
	"errors"

	"lpg-backoffice/internal/database/models"
	apperrors "lpg-backoffice/internal/errors"
	"lpg-backoffice/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PaymentRepository handles database operations for payments
type PaymentRepository struct {
	db *gorm.DB
}

var _ PaymentRepositoryInterface = (*PaymentRepository)(nil)

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Apply stores a payment and, in the same transaction, settles it against the bill (when one
// is given) and reduces the customer's balance. The bill row is locked for the duration.
func (r *PaymentRepository) Apply(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if payment.BillID != nil {
			var bill models.Bill
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&bill, "id = ? AND admin_id = ?", *payment.BillID, payment.AdminID).Error; err != nil {
				return err
			}
			if bill.CustomerID != payment.CustomerID {
				return apperrors.ErrBillCustomerMismatch
			}
			if payment.Amount-bill.Outstanding() > 0.005 {
				return apperrors.ErrPaymentExceedsBill
			}
			bill.AmountPaid += payment.Amount
			bill.RefreshStatus()
			if err := tx.Model(&bill).Updates(map[string]interface{}{
				"amount_paid": bill.AmountPaid,
				"status":      bill.Status,
			}).Error; err != nil {
				return err
			}
		}

		res := tx.Model(&models.Customer{}).
			Where("id = ? AND admin_id = ?", payment.CustomerID, payment.AdminID).
			Update("balance", gorm.Expr("balance - ?", payment.Amount))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Create(payment).Error
	})
}

// Revert deletes a payment and undoes its effect on the bill and the customer's balance
func (r *PaymentRepository) Revert(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Scopes(scope.Apply).
			First(&payment, "id = ?", id).Error; err != nil {
			return err
		}

		if payment.BillID != nil {
			var bill models.Bill
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&bill, "id = ? AND admin_id = ?", *payment.BillID, payment.AdminID).Error
			switch {
			case err == nil:
				bill.AmountPaid -= payment.Amount
				if bill.AmountPaid < 0 {
					bill.AmountPaid = 0
				}
				bill.RefreshStatus()
				if err := tx.Model(&bill).Updates(map[string]interface{}{
					"amount_paid": bill.AmountPaid,
					"status":      bill.Status,
				}).Error; err != nil {
					return err
				}
			case !errors.Is(err, gorm.ErrRecordNotFound):
				return err
			}
		}

		if err := tx.Model(&models.Customer{}).
			Where("id = ? AND admin_id = ?", payment.CustomerID, payment.AdminID).
			Update("balance", gorm.Expr("balance + ?", payment.Amount)).Error; err != nil {
			return err
		}

		return tx.Delete(&payment).Error
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// GetByID retrieves a payment visible through the scope
func (r *PaymentRepository) GetByID(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.WithContext(ctx).Scopes(scope.Apply).First(&payment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// List retrieves payments, newest first, optionally for one customer
func (r *PaymentRepository) List(ctx context.Context, scope tenant.Scope, customerID *uuid.UUID, limit, offset int) ([]models.Payment, int64, error) {
	var payments []models.Payment
	var total int64

	q := r.db.WithContext(ctx).Model(&models.Payment{}).Scopes(scope.Apply)
	if customerID != nil {
		q = q.Where("customer_id = ?", *customerID)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := q.Order("paid_on DESC, created_at DESC").Limit(limit).Offset(offset).Find(&payments).Error; err != nil {
		return nil, 0, err
	}

	return payments, total, nil
}
