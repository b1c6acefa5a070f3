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

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *UserRepositoryTestSuite) TestCreate() {
	admin := suite.factories.User.Admin()

	err := suite.repo.Create(suite.ctx, admin)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, admin.ID)
	suite.NotZero(admin.CreatedAt)
}

func (suite *UserRepositoryTestSuite) TestCreateDuplicateEmail() {
	first := suite.factories.User.Admin()
	suite.Require().NoError(suite.repo.Create(suite.ctx, first))

	second := suite.factories.User.Admin()
	second.Email = first.Email
	err := suite.repo.Create(suite.ctx, second)

	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

func (suite *UserRepositoryTestSuite) TestGetByIDAndEmail() {
	admin := suite.factories.User.Admin()
	suite.Require().NoError(suite.repo.Create(suite.ctx, admin))

	byID, err := suite.repo.GetByID(suite.ctx, admin.ID)
	suite.NoError(err)
	suite.Equal(admin.Email, byID.Email)
	suite.Equal(admin.ID, *byID.AdminID)

	byEmail, err := suite.repo.GetByEmail(suite.ctx, admin.Email)
	suite.NoError(err)
	suite.Equal(admin.ID, byEmail.ID)

	_, err = suite.repo.GetByID(suite.ctx, uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *UserRepositoryTestSuite) TestListStaffIsTenantScoped() {
	adminA := suite.factories.User.Admin()
	adminB := suite.factories.User.Admin()
	suite.Require().NoError(suite.repo.Create(suite.ctx, adminA))
	suite.Require().NoError(suite.repo.Create(suite.ctx, adminB))

	for _, role := range models.StaffRoles() {
		suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factories.User.Staff(adminA.ID, role)))
	}
	suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factories.User.Staff(adminB.ID, models.RoleStaff)))

	staff, total, err := suite.repo.ListStaff(suite.ctx, tenant.ForAdmin(adminA.ID), 10, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	for _, u := range staff {
		suite.Equal(adminA.ID, *u.AdminID)
		suite.True(u.Role.IsStaff())
	}

	all, total, err := suite.repo.ListStaff(suite.ctx, tenant.Unscoped(), 10, 0)
	suite.NoError(err)
	suite.Equal(int64(4), total)
	suite.Len(all, 4)
}

func (suite *UserRepositoryTestSuite) TestGetStaffRejectsOtherTenant() {
	adminA := suite.factories.User.Admin()
	adminB := suite.factories.User.Admin()
	suite.Require().NoError(suite.repo.Create(suite.ctx, adminA))
	suite.Require().NoError(suite.repo.Create(suite.ctx, adminB))
	staff := suite.factories.User.Staff(adminB.ID, models.RoleManager)
	suite.Require().NoError(suite.repo.Create(suite.ctx, staff))

	_, err := suite.repo.GetStaff(suite.ctx, tenant.ForAdmin(adminA.ID), staff.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	// the admin itself is not staff
	_, err = suite.repo.GetStaff(suite.ctx, tenant.ForAdmin(adminA.ID), adminA.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	got, err := suite.repo.GetStaff(suite.ctx, tenant.ForAdmin(adminB.ID), staff.ID)
	suite.NoError(err)
	suite.Equal(staff.Email, got.Email)
}

func (suite *UserRepositoryTestSuite) TestSetTenantStatusCascades() {
	admin := suite.factories.User.Admin()
	other := suite.factories.User.Admin()
	suite.Require().NoError(suite.repo.Create(suite.ctx, admin))
	suite.Require().NoError(suite.repo.Create(suite.ctx, other))
	staff := suite.factories.User.Staff(admin.ID, models.RoleAccountant)
	suite.Require().NoError(suite.repo.Create(suite.ctx, staff))

	n, err := suite.repo.SetTenantStatus(suite.ctx, admin.ID, models.UserStatusSuspended)
	suite.NoError(err)
	suite.Equal(int64(2), n)

	got, _ := suite.repo.GetByID(suite.ctx, staff.ID)
	suite.Equal(models.UserStatusSuspended, got.Status)
	untouched, _ := suite.repo.GetByID(suite.ctx, other.ID)
	suite.Equal(models.UserStatusActive, untouched.Status)
}

func (suite *UserRepositoryTestSuite) TestDelete() {
	admin := suite.factories.User.Admin()
	suite.Require().NoError(suite.repo.Create(suite.ctx, admin))
	staff := suite.factories.User.Staff(admin.ID, models.RoleStaff)
	suite.Require().NoError(suite.repo.Create(suite.ctx, staff))

	perms := NewPermissionRepository(suite.baseTestSuite.DB)
	suite.Require().NoError(perms.UpsertUserPermissions(suite.ctx, []models.UserPermission{
		{AdminID: admin.ID, UserID: staff.ID, Module: models.ModuleBilling, Access: models.AccessEdit},
	}))

	suite.NoError(suite.repo.Delete(suite.ctx, staff.ID))
	_, err := perms.GetUserPermission(suite.ctx, staff.ID, models.ModuleBilling)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	suite.ErrorIs(suite.repo.Delete(suite.ctx, staff.ID), gorm.ErrRecordNotFound)
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
