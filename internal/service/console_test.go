package service_test

import (
	"context"
	"testing"

	"lpg-backoffice/internal/database/models"
	apperrors "lpg-backoffice/internal/errors"
	"lpg-backoffice/internal/mocks"
	"lpg-backoffice/internal/repository"
	"lpg-backoffice/internal/service"
	"lpg-backoffice/internal/tenant"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ConsoleServiceTestSuite defines the test suite for ConsoleService
type ConsoleServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockPlatform *mocks.MockPlatformRepositoryInterface
	mockUsers    *mocks.MockUserRepositoryInterface
	mockBackups  *mocks.MockBackupServiceInterface
	svc          *service.ConsoleService
	ctx          context.Context
}

func (suite *ConsoleServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPlatform = mocks.NewMockPlatformRepositoryInterface(suite.ctrl)
	suite.mockUsers = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockBackups = mocks.NewMockBackupServiceInterface(suite.ctrl)
	suite.svc = service.NewConsoleService(suite.mockPlatform, suite.mockUsers, suite.mockBackups)
	suite.ctx = context.Background()
}

func (suite *ConsoleServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func admin() *models.User {
	id := uuid.New()
	return &models.User{BaseModel: models.BaseModel{ID: id}, Role: models.RoleAdmin, AdminID: &id}
}

func (suite *ConsoleServiceTestSuite) TestListAdmins() {
	suite.mockPlatform.EXPECT().ListTenants(suite.ctx, "ravi", 20, 0).Return([]repository.TenantSummary{
		{Email: "owner@gasagency.in", StaffCount: 3, CustomerCount: 120},
	}, int64(1), nil)

	page, err := suite.svc.ListAdmins(suite.ctx, " ravi ", 0, 0)
	suite.NoError(err)
	suite.Equal(int64(120), page.Items[0].CustomerCount)
}

func (suite *ConsoleServiceTestSuite) TestSetAdminStatusCascades() {
	a := admin()
	suite.mockUsers.EXPECT().GetByID(suite.ctx, a.ID).Return(a, nil)
	suite.mockUsers.EXPECT().SetTenantStatus(suite.ctx, a.ID, models.UserStatusSuspended).Return(int64(4), nil)

	result, err := suite.svc.SetAdminStatus(suite.ctx, a.ID, models.UserStatusSuspended)
	suite.NoError(err)
	suite.Equal(int64(4), result.Accounts)
}

func (suite *ConsoleServiceTestSuite) TestSetAdminStatusRejections() {
	_, err := suite.svc.SetAdminStatus(suite.ctx, uuid.New(), "BANNED")
	suite.True(apperrors.IsValidation(err))

	staffID := uuid.New()
	suite.mockUsers.EXPECT().GetByID(suite.ctx, staffID).Return(&models.User{Role: models.RoleStaff}, nil)
	_, err = suite.svc.SetAdminStatus(suite.ctx, staffID, models.UserStatusSuspended)
	suite.ErrorIs(err, apperrors.ErrAdminNotFound)

	missing := uuid.New()
	suite.mockUsers.EXPECT().GetByID(suite.ctx, missing).Return(nil, gorm.ErrRecordNotFound)
	_, err = suite.svc.SetAdminStatus(suite.ctx, missing, models.UserStatusActive)
	suite.ErrorIs(err, apperrors.ErrAdminNotFound)
}

func (suite *ConsoleServiceTestSuite) TestPlatformStats() {
	suite.mockPlatform.EXPECT().Stats(suite.ctx).Return(&repository.PlatformStats{Admins: 2, Staff: 5}, nil)

	stats, err := suite.svc.PlatformStats(suite.ctx)
	suite.NoError(err)
	suite.Equal(int64(2), stats.Admins)
}

func (suite *ConsoleServiceTestSuite) TestBackupTenant() {
	a := admin()
	suite.mockUsers.EXPECT().GetByID(suite.ctx, a.ID).Return(a, nil)
	suite.mockBackups.EXPECT().Create(suite.ctx, tenant.ForAdmin(a.ID)).Return(&models.Backup{AdminID: a.ID}, nil)

	backup, err := suite.svc.BackupTenant(suite.ctx, a.ID)
	suite.NoError(err)
	suite.Equal(a.ID, backup.AdminID)
}

func TestConsoleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ConsoleServiceTestSuite))
}
