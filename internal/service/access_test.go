package service_test

import (
	"context"
	"errors"
	"testing"

	"lpg-backoffice/internal/auth"
	"lpg-backoffice/internal/database/models"
	apperrors "lpg-backoffice/internal/errors"
	"lpg-backoffice/internal/mocks"
	"lpg-backoffice/internal/seed"
	"lpg-backoffice/internal/service"
	"lpg-backoffice/internal/tenant"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// AccessServiceTestSuite defines the test suite for AccessService
type AccessServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockPerms *mocks.MockPermissionRepositoryInterface
	mockUsers *mocks.MockUserRepositoryInterface
	access    *service.AccessService
	ctx       context.Context
	adminID   uuid.UUID
}

func (suite *AccessServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPerms = mocks.NewMockPermissionRepositoryInterface(suite.ctrl)
	suite.mockUsers = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.access = service.NewAccessService(suite.mockPerms, suite.mockUsers, seed.DefaultRoleDefaults())
	suite.ctx = context.Background()
	suite.adminID = uuid.New()
}

func (suite *AccessServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AccessServiceTestSuite) staff(role models.Role) *auth.Identity {
	return &auth.Identity{
		UserID:  uuid.New(),
		Email:   "counter@gasagency.in",
		Role:    role,
		AdminID: &suite.adminID,
	}
}

func (suite *AccessServiceTestSuite) TestNilIdentityHasNoAccess() {
	level, err := suite.access.CheckModuleAccess(suite.ctx, nil, models.ModuleCustomers)
	suite.NoError(err)
	suite.Equal(models.AccessNoAccess, level)
}

func (suite *AccessServiceTestSuite) TestAdminsHaveFullAccess() {
	admin := &auth.Identity{UserID: suite.adminID, Role: models.RoleAdmin, AdminID: &suite.adminID}
	root := &auth.Identity{UserID: uuid.New(), Role: models.RoleSuperAdmin}

	for _, identity := range []*auth.Identity{admin, root} {
		level, err := suite.access.CheckModuleAccess(suite.ctx, identity, models.ModuleBackup)
		suite.NoError(err)
		suite.Equal(models.AccessFullAccess, level)
	}
}

func (suite *AccessServiceTestSuite) TestStaffWithoutRecordsHasNoAccess() {
	identity := suite.staff(models.RoleStaff)

	suite.mockPerms.EXPECT().
		GetUserPermission(suite.ctx, identity.UserID, models.ModuleBilling).
		Return(nil, gorm.ErrRecordNotFound)
	suite.mockPerms.EXPECT().
		GetRolePermission(suite.ctx, suite.adminID, models.RoleStaff, models.ModuleBilling).
		Return(nil, gorm.ErrRecordNotFound)

	level, err := suite.access.CheckModuleAccess(suite.ctx, identity, models.ModuleBilling)
	suite.NoError(err)
	suite.Equal(models.AccessNoAccess, level)
}

func (suite *AccessServiceTestSuite) TestUserRecordWinsOverRoleDefault() {
	identity := suite.staff(models.RoleManager)

	suite.mockPerms.EXPECT().
		GetUserPermission(suite.ctx, identity.UserID, models.ModuleCustomers).
		Return(&models.UserPermission{Access: models.AccessView}, nil)

	level, err := suite.access.CheckModuleAccess(suite.ctx, identity, models.ModuleCustomers)
	suite.NoError(err)
	suite.Equal(models.AccessView, level)
}

func (suite *AccessServiceTestSuite) TestRoleDefaultFallback() {
	identity := suite.staff(models.RoleAccountant)

	suite.mockPerms.EXPECT().
		GetUserPermission(suite.ctx, identity.UserID, models.ModulePayments).
		Return(nil, gorm.ErrRecordNotFound)
	suite.mockPerms.EXPECT().
		GetRolePermission(suite.ctx, suite.adminID, models.RoleAccountant, models.ModulePayments).
		Return(&models.RolePermission{Access: models.AccessEdit}, nil)

	level, err := suite.access.CheckModuleAccess(suite.ctx, identity, models.ModulePayments)
	suite.NoError(err)
	suite.Equal(models.AccessEdit, level)
}

func (suite *AccessServiceTestSuite) TestUnrecognizedStoredLevelIsNoAccess() {
	identity := suite.staff(models.RoleStaff)

	suite.mockPerms.EXPECT().
		GetUserPermission(suite.ctx, identity.UserID, models.ModuleReports).
		Return(&models.UserPermission{Access: "ADMINISTRATOR"}, nil)

	level, err := suite.access.CheckModuleAccess(suite.ctx, identity, models.ModuleReports)
	suite.NoError(err)
	suite.Equal(models.AccessNoAccess, level)
}

func (suite *AccessServiceTestSuite) TestRepositoryErrorIsReturned() {
	identity := suite.staff(models.RoleStaff)

	suite.mockPerms.EXPECT().
		GetUserPermission(suite.ctx, identity.UserID, models.ModuleReports).
		Return(nil, errors.New("connection reset"))

	level, err := suite.access.CheckModuleAccess(suite.ctx, identity, models.ModuleReports)
	suite.Error(err)
	suite.Equal(models.AccessNoAccess, level)
}

func (suite *AccessServiceTestSuite) TestUnknownModule() {
	_, err := suite.access.CheckModuleAccess(suite.ctx, suite.staff(models.RoleStaff), "fleet")
	suite.ErrorIs(err, apperrors.ErrUnknownModule)
}

func (suite *AccessServiceTestSuite) TestAccessMapCoversEveryModule() {
	admin := &auth.Identity{UserID: suite.adminID, Role: models.RoleAdmin, AdminID: &suite.adminID}

	access, err := suite.access.AccessMap(suite.ctx, admin)
	suite.NoError(err)
	suite.Len(access, len(models.AllModules()))
	for _, module := range models.AllModules() {
		suite.Equal(models.AccessFullAccess, access[module])
	}
}

func (suite *AccessServiceTestSuite) TestGuardModulePage() {
	identity := suite.staff(models.RoleStaff)

	suite.mockPerms.EXPECT().
		GetUserPermission(suite.ctx, identity.UserID, models.ModuleStaff).
		Return(&models.UserPermission{Access: models.AccessNotShow}, nil)

	decision, err := suite.access.GuardModulePage(suite.ctx, identity, models.ModuleStaff)
	suite.NoError(err)
	suite.Equal(models.ModuleStaff, decision.Module)
	suite.True(decision.Redirect)
	suite.Equal("/dashboard", decision.RedirectTo)
	suite.False(decision.Allowed)
}

func (suite *AccessServiceTestSuite) TestSetUserPermissions() {
	scope := tenant.ForAdmin(suite.adminID)
	target := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Role:      models.RoleStaff,
		AdminID:   &suite.adminID,
	}
	req := &service.SetPermissionsRequest{Permissions: map[models.Module]models.AccessLevel{
		models.ModuleBilling: models.AccessEdit,
	}}

	suite.mockUsers.EXPECT().GetStaff(suite.ctx, scope, target.ID).Return(target, nil)
	suite.mockPerms.EXPECT().
		UpsertUserPermissions(suite.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, records []models.UserPermission) error {
			require.Len(suite.T(), records, 1)
			suite.Equal(suite.adminID, records[0].AdminID)
			suite.Equal(target.ID, records[0].UserID)
			suite.Equal(models.AccessEdit, records[0].Access)
			return nil
		})
	suite.mockPerms.EXPECT().
		GetUserPermission(suite.ctx, target.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, module models.Module) (*models.UserPermission, error) {
			if module == models.ModuleBilling {
				return &models.UserPermission{Access: models.AccessEdit}, nil
			}
			return nil, gorm.ErrRecordNotFound
		}).
		Times(len(models.AllModules()))
	suite.mockPerms.EXPECT().
		GetRolePermission(suite.ctx, suite.adminID, models.RoleStaff, gomock.Any()).
		Return(nil, gorm.ErrRecordNotFound).
		Times(len(models.AllModules()) - 1)

	access, err := suite.access.SetUserPermissions(suite.ctx, scope, target.ID, req)
	suite.NoError(err)
	suite.Equal(models.AccessEdit, access[models.ModuleBilling])
	suite.Equal(models.AccessNoAccess, access[models.ModuleBackup])
}

func (suite *AccessServiceTestSuite) TestSetUserPermissionsTargetOutsideTenant() {
	scope := tenant.ForAdmin(suite.adminID)
	id := uuid.New()
	req := &service.SetPermissionsRequest{Permissions: map[models.Module]models.AccessLevel{
		models.ModuleBilling: models.AccessView,
	}}

	suite.mockUsers.EXPECT().GetStaff(suite.ctx, scope, id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.access.SetUserPermissions(suite.ctx, scope, id, req)
	suite.ErrorIs(err, apperrors.ErrStaffNotFound)
}

func (suite *AccessServiceTestSuite) TestSetUserPermissionsRejectsBadInput() {
	scope := tenant.ForAdmin(suite.adminID)

	_, err := suite.access.SetUserPermissions(suite.ctx, scope, uuid.New(), &service.SetPermissionsRequest{
		Permissions: map[models.Module]models.AccessLevel{"fleet": models.AccessView},
	})
	suite.ErrorIs(err, apperrors.ErrUnknownModule)

	_, err = suite.access.SetUserPermissions(suite.ctx, scope, uuid.New(), &service.SetPermissionsRequest{
		Permissions: map[models.Module]models.AccessLevel{models.ModuleBilling: "SOMETIMES"},
	})
	suite.ErrorIs(err, apperrors.ErrInvalidAccessLevel)

	_, err = suite.access.SetUserPermissions(suite.ctx, scope, uuid.New(), &service.SetPermissionsRequest{})
	suite.True(apperrors.IsValidation(err))
}

func (suite *AccessServiceTestSuite) TestSetRolePermissionsRejectsAdminRoles() {
	req := &service.SetPermissionsRequest{Permissions: map[models.Module]models.AccessLevel{
		models.ModuleBilling: models.AccessView,
	}}
	for _, role := range []models.Role{models.RoleAdmin, models.RoleSuperAdmin} {
		_, err := suite.access.SetRolePermissions(suite.ctx, tenant.ForAdmin(suite.adminID), role, req)
		suite.ErrorIs(err, apperrors.ErrInvalidRole)
	}
}

func (suite *AccessServiceTestSuite) TestSetRolePermissionsNeedsTenant() {
	req := &service.SetPermissionsRequest{Permissions: map[models.Module]models.AccessLevel{
		models.ModuleBilling: models.AccessView,
	}}
	_, err := suite.access.SetRolePermissions(suite.ctx, tenant.Unscoped(), models.RoleStaff, req)
	suite.ErrorIs(err, apperrors.ErrTenantRequired)
}

func (suite *AccessServiceTestSuite) TestSetRolePermissions() {
	scope := tenant.ForAdmin(suite.adminID)
	req := &service.SetPermissionsRequest{Permissions: map[models.Module]models.AccessLevel{
		models.ModuleInventory: models.AccessFullAccess,
	}}

	suite.mockPerms.EXPECT().UpsertRolePermissions(suite.ctx, []models.RolePermission{{
		AdminID: suite.adminID,
		Role:    models.RoleManager,
		Module:  models.ModuleInventory,
		Access:  models.AccessFullAccess,
	}}).Return(nil)
	suite.mockPerms.EXPECT().
		ListRolePermissions(suite.ctx, suite.adminID, models.RoleManager).
		Return([]models.RolePermission{{Module: models.ModuleInventory, Access: models.AccessFullAccess}}, nil)

	result, err := suite.access.SetRolePermissions(suite.ctx, scope, models.RoleManager, req)
	suite.NoError(err)
	suite.Len(result, len(models.AllModules()))
	suite.Equal(models.AccessFullAccess, result[models.ModuleInventory])
	suite.Equal(models.AccessNoAccess, result[models.ModuleBackup])
}

func (suite *AccessServiceTestSuite) TestResetRoleDefaults() {
	suite.mockPerms.EXPECT().
		UpsertRolePermissions(suite.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, records []models.RolePermission) error {
			suite.Len(records, len(models.StaffRoles())*len(models.AllModules()))
			for _, r := range records {
				suite.Equal(suite.adminID, r.AdminID)
				suite.True(r.Role.IsStaff())
			}
			return nil
		})

	suite.NoError(suite.access.ResetRoleDefaults(suite.ctx, suite.adminID))
}

func TestAccessServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccessServiceTestSuite))
}

func TestGuardPage(t *testing.T) {
	tests := []struct {
		level      models.AccessLevel
		allowed    bool
		readOnly   bool
		redirect   bool
		restricted bool
	}{
		{models.AccessNotShow, false, false, true, false},
		{models.AccessNoAccess, false, false, false, true},
		{models.AccessView, true, true, false, false},
		{models.AccessEdit, true, false, false, false},
		{models.AccessFullAccess, true, false, false, false},
		{"", false, false, false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			d := service.GuardPage(tt.level)
			assert.Equal(t, tt.allowed, d.Allowed)
			assert.Equal(t, tt.readOnly, d.ReadOnly)
			assert.Equal(t, tt.redirect, d.Redirect)
			assert.Equal(t, tt.restricted, d.Restricted)
			if tt.redirect {
				assert.Equal(t, service.PageFallback, d.RedirectTo)
			} else {
				assert.Empty(t, d.RedirectTo)
			}
		})
	}
}
