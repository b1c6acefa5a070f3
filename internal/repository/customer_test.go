//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"lpg-backoffice/internal/database/models"
	"lpg-backoffice/internal/tenant"
	"lpg-backoffice/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// CustomerRepositoryTestSuite tests the CustomerRepository and CylinderRepository
type CustomerRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	customers     *CustomerRepository
	cylinders     *CylinderRepository
	users         *UserRepository
	factories     *testutils.FactorySet
	ctx           context.Context
	adminA        *models.User
	adminB        *models.User
}

func (suite *CustomerRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.customers = NewCustomerRepository(suite.baseTestSuite.DB)
	suite.cylinders = NewCylinderRepository(suite.baseTestSuite.DB)
	suite.users = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

func (suite *CustomerRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *CustomerRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.adminA = suite.factories.User.Admin()
	suite.adminB = suite.factories.User.Admin()
	suite.Require().NoError(suite.users.Create(suite.ctx, suite.adminA))
	suite.Require().NoError(suite.users.Create(suite.ctx, suite.adminB))
}

func (suite *CustomerRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *CustomerRepositoryTestSuite) TestConnectionNumberUniquePerTenant() {
	c1 := suite.factories.Customer.Create(suite.adminA.ID)
	suite.Require().NoError(suite.customers.Create(suite.ctx, c1))

	dup := suite.factories.Customer.Create(suite.adminA.ID)
	dup.ConnectionNumber = c1.ConnectionNumber
	suite.ErrorIs(suite.customers.Create(suite.ctx, dup), gorm.ErrDuplicatedKey)

	other := suite.factories.Customer.Create(suite.adminB.ID)
	other.ConnectionNumber = c1.ConnectionNumber
	suite.NoError(suite.customers.Create(suite.ctx, other))
}

func (suite *CustomerRepositoryTestSuite) TestTenantIsolation() {
	mine := suite.factories.Customer.WithName(suite.adminA.ID, "Anita Sharma")
	theirs := suite.factories.Customer.WithName(suite.adminB.ID, "Anil Shetty")
	suite.Require().NoError(suite.customers.Create(suite.ctx, mine))
	suite.Require().NoError(suite.customers.Create(suite.ctx, theirs))

	scopeA := tenant.ForAdmin(suite.adminA.ID)

	list, total, err := suite.customers.List(suite.ctx, scopeA, "ani", 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(mine.ID, list[0].ID)

	_, err = suite.customers.GetByID(suite.ctx, scopeA, theirs.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	theirs.Name = "Hijacked"
	suite.ErrorIs(suite.customers.Update(suite.ctx, scopeA, theirs), gorm.ErrRecordNotFound)
	suite.ErrorIs(suite.customers.Delete(suite.ctx, scopeA, theirs.ID), gorm.ErrRecordNotFound)

	_, total, err = suite.customers.List(suite.ctx, tenant.Unscoped(), "", 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)

	// the zero scope matches nothing
	_, total, err = suite.customers.List(suite.ctx, tenant.Scope{}, "", 10, 0)
	suite.NoError(err)
	suite.Zero(total)
}

func (suite *CustomerRepositoryTestSuite) TestUpdateWritesZeroValues() {
	c := suite.factories.Customer.Create(suite.adminA.ID)
	suite.Require().NoError(suite.customers.Create(suite.ctx, c))

	c.IsActive = false
	c.CylindersHeld = 0
	c.AdminID = suite.adminB.ID
	suite.NoError(suite.customers.Update(suite.ctx, tenant.ForAdmin(suite.adminA.ID), c))

	got, err := suite.customers.GetByID(suite.ctx, tenant.ForAdmin(suite.adminA.ID), c.ID)
	suite.NoError(err)
	suite.False(got.IsActive)
	suite.Zero(got.CylindersHeld)
	suite.Equal(suite.adminA.ID, got.AdminID)
}

func (suite *CustomerRepositoryTestSuite) TestCylinderSummaryAndDeleteAll() {
	a := suite.adminA.ID
	for _, e := range []*models.CylinderEntry{
		suite.factories.Cylinder.WithType(a, models.CylinderDomestic142, 20, true),
		suite.factories.Cylinder.WithType(a, models.CylinderDomestic142, 5, false),
		suite.factories.Cylinder.WithType(a, models.CylinderCommercial19, 4, true),
		suite.factories.Cylinder.WithType(suite.adminB.ID, models.CylinderDomestic142, 99, true),
	} {
		suite.Require().NoError(suite.cylinders.Create(suite.ctx, e))
	}

	scope := tenant.ForAdmin(a)
	stock, err := suite.cylinders.Summary(suite.ctx, scope)
	suite.NoError(err)
	suite.Equal([]CylinderStock{
		{CylinderType: models.CylinderCommercial19, Filled: 4, Empty: 0},
		{CylinderType: models.CylinderDomestic142, Filled: 20, Empty: 5},
	}, stock)

	entries, total, err := suite.cylinders.List(suite.ctx, scope, models.CylinderDomestic142, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(entries, 2)

	_, err = suite.cylinders.DeleteAll(suite.ctx, tenant.Unscoped())
	suite.Error(err)

	n, err := suite.cylinders.DeleteAll(suite.ctx, scope)
	suite.NoError(err)
	suite.Equal(int64(3), n)

	_, total, _ = suite.cylinders.List(suite.ctx, tenant.ForAdmin(suite.adminB.ID), "", 10, 0)
	suite.Equal(int64(1), total)

	suite.ErrorIs(suite.cylinders.Delete(suite.ctx, scope, uuid.New()), gorm.ErrRecordNotFound)
}

func TestCustomerRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerRepositoryTestSuite))
}
