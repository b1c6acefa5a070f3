//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"lpg-backoffice/internal/database/models"
	apperrors "lpg-backoffice/internal/errors"
	"lpg-backoffice/internal/tenant"
	"lpg-backoffice/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// BillingRepositoryTestSuite tests the BillRepository and PaymentRepository
type BillingRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	bills         *BillRepository
	payments      *PaymentRepository
	customers     *CustomerRepository
	factories     *testutils.FactorySet
	ctx           context.Context
	admin         *models.User
	customer      *models.Customer
	scope         tenant.Scope
}

func (suite *BillingRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB
	suite.bills = NewBillRepository(db)
	suite.payments = NewPaymentRepository(db)
	suite.customers = NewCustomerRepository(db)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

func (suite *BillingRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *BillingRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.admin = suite.factories.User.Admin()
	suite.Require().NoError(NewUserRepository(suite.baseTestSuite.DB).Create(suite.ctx, suite.admin))
	suite.customer = suite.factories.Customer.Create(suite.admin.ID)
	suite.Require().NoError(suite.customers.Create(suite.ctx, suite.customer))
	suite.scope = tenant.ForAdmin(suite.admin.ID)
}

func (suite *BillingRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *BillingRepositoryTestSuite) balance() float64 {
	c, err := suite.customers.GetByID(suite.ctx, suite.scope, suite.customer.ID)
	suite.Require().NoError(err)
	return c.Balance
}

func (suite *BillingRepositoryTestSuite) TestBillLifecycle() {
	bill := suite.factories.Bill.Create(suite.admin.ID, suite.customer.ID)
	bill.BillNumber = "INV-20261017-0001"
	suite.Require().NoError(suite.bills.CreateForCustomer(suite.ctx, bill))
	suite.InDelta(1050, suite.balance(), 0.001)

	last, err := suite.bills.LastSequence(suite.ctx, suite.scope, "INV-20261017-")
	suite.NoError(err)
	suite.Equal(int64(1), last)

	dup := suite.factories.Bill.Create(suite.admin.ID, suite.customer.ID)
	dup.BillNumber = bill.BillNumber
	suite.ErrorIs(suite.bills.CreateForCustomer(suite.ctx, dup), gorm.ErrDuplicatedKey)
	suite.InDelta(1050, suite.balance(), 0.001)

	list, total, err := suite.bills.List(suite.ctx, suite.scope, BillFilter{Status: models.BillStatusUnpaid}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(bill.ID, list[0].ID)

	suite.NoError(suite.bills.Delete(suite.ctx, suite.scope, bill.ID))
	suite.InDelta(0, suite.balance(), 0.001)
}

func (suite *BillingRepositoryTestSuite) TestLastSequenceIgnoresDeletedGaps() {
	var keep []models.Bill
	for _, number := range []string{"INV-20261017-0001", "INV-20261017-0002", "INV-20261017-0009", "INV-20261016-0042"} {
		bill := suite.factories.Bill.Create(suite.admin.ID, suite.customer.ID)
		bill.BillNumber = number
		suite.Require().NoError(suite.bills.CreateForCustomer(suite.ctx, bill))
		keep = append(keep, *bill)
	}
	suite.Require().NoError(suite.bills.Delete(suite.ctx, suite.scope, keep[0].ID))
	suite.Require().NoError(suite.bills.Delete(suite.ctx, suite.scope, keep[1].ID))

	last, err := suite.bills.LastSequence(suite.ctx, suite.scope, "INV-20261017-")
	suite.NoError(err)
	suite.Equal(int64(9), last)

	last, err = suite.bills.LastSequence(suite.ctx, suite.scope, "INV-20261018-")
	suite.NoError(err)
	suite.Equal(int64(0), last)
}

func (suite *BillingRepositoryTestSuite) TestBillForForeignCustomerIsRejected() {
	other := suite.factories.User.Admin()
	suite.Require().NoError(NewUserRepository(suite.baseTestSuite.DB).Create(suite.ctx, other))

	bill := suite.factories.Bill.Create(other.ID, suite.customer.ID)
	suite.ErrorIs(suite.bills.CreateForCustomer(suite.ctx, bill), gorm.ErrRecordNotFound)
}

func (suite *BillingRepositoryTestSuite) TestPaymentSettlesBill() {
	bill := suite.factories.Bill.Create(suite.admin.ID, suite.customer.ID)
	suite.Require().NoError(suite.bills.CreateForCustomer(suite.ctx, bill))

	partial := suite.factories.Payment.Create(suite.admin.ID, suite.customer.ID, 500)
	partial.BillID = &bill.ID
	suite.NoError(suite.payments.Apply(suite.ctx, partial))

	got, _ := suite.bills.GetByID(suite.ctx, suite.scope, bill.ID)
	suite.Equal(models.BillStatusPartial, got.Status)
	suite.InDelta(500, got.AmountPaid, 0.001)
	suite.InDelta(550, suite.balance(), 0.001)

	tooMuch := suite.factories.Payment.Create(suite.admin.ID, suite.customer.ID, 600)
	tooMuch.BillID = &bill.ID
	suite.ErrorIs(suite.payments.Apply(suite.ctx, tooMuch), apperrors.ErrPaymentExceedsBill)
	suite.InDelta(550, suite.balance(), 0.001)

	rest := suite.factories.Payment.Create(suite.admin.ID, suite.customer.ID, 550)
	rest.BillID = &bill.ID
	suite.NoError(suite.payments.Apply(suite.ctx, rest))
	got, _ = suite.bills.GetByID(suite.ctx, suite.scope, bill.ID)
	suite.Equal(models.BillStatusPaid, got.Status)

	reverted, err := suite.payments.Revert(suite.ctx, suite.scope, rest.ID)
	suite.NoError(err)
	suite.Equal(rest.ID, reverted.ID)
	got, _ = suite.bills.GetByID(suite.ctx, suite.scope, bill.ID)
	suite.Equal(models.BillStatusPartial, got.Status)
	suite.InDelta(550, suite.balance(), 0.001)

	payments, total, err := suite.payments.List(suite.ctx, suite.scope, &suite.customer.ID, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(partial.ID, payments[0].ID)
}

func (suite *BillingRepositoryTestSuite) TestPaymentAgainstAnotherCustomersBill() {
	bill := suite.factories.Bill.Create(suite.admin.ID, suite.customer.ID)
	suite.Require().NoError(suite.bills.CreateForCustomer(suite.ctx, bill))
	second := suite.factories.Customer.Create(suite.admin.ID)
	suite.Require().NoError(suite.customers.Create(suite.ctx, second))

	p := suite.factories.Payment.Create(suite.admin.ID, second.ID, 100)
	p.BillID = &bill.ID
	suite.ErrorIs(suite.payments.Apply(suite.ctx, p), apperrors.ErrBillCustomerMismatch)
}

func (suite *BillingRepositoryTestSuite) TestAdvancePaymentWithoutBill() {
	p := suite.factories.Payment.Create(suite.admin.ID, suite.customer.ID, 300)
	suite.NoError(suite.payments.Apply(suite.ctx, p))
	suite.InDelta(-300, suite.balance(), 0.001)

	_, err := suite.payments.Revert(suite.ctx, tenant.ForAdmin(suite.factories.User.Admin().ID), p.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestBillingRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(BillingRepositoryTestSuite))
}
