package seed_test

import (
	"context"
	"errors"
	"testing"

	"lpg-backoffice/internal/auth"
	"lpg-backoffice/internal/database/models"
	"lpg-backoffice/internal/mocks"
	"lpg-backoffice/internal/seed"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestDefaultRoleDefaults(t *testing.T) {
	defaults := seed.DefaultRoleDefaults()

	for _, role := range models.StaffRoles() {
		levels, ok := defaults[role]
		require.True(t, ok, "missing role %s", role)
		assert.Len(t, levels, len(models.AllModules()))
	}
	assert.Equal(t, models.AccessNotShow, defaults[models.RoleStaff][models.ModuleStaff])

	adminID := uuid.New()
	records := defaults.Records(adminID)
	assert.Len(t, records, len(models.StaffRoles())*len(models.AllModules()))
	assert.Equal(t, models.RoleManager, records[0].Role)
	assert.Equal(t, models.ModuleDashboard, records[0].Module)
	for _, r := range records {
		assert.Equal(t, adminID, r.AdminID)
	}
}

func TestParseRoleDefaults(t *testing.T) {
	t.Run("normalizes case", func(t *testing.T) {
		d, err := seed.ParseRoleDefaults([]byte("roles:\n  staff:\n    Billing: view\n"))
		require.NoError(t, err)
		assert.Equal(t, models.AccessView, d[models.RoleStaff][models.ModuleBilling])
	})

	t.Run("rejects admin role", func(t *testing.T) {
		_, err := seed.ParseRoleDefaults([]byte("roles:\n  ADMIN:\n    billing: VIEW\n"))
		assert.Error(t, err)
	})

	t.Run("rejects unknown module", func(t *testing.T) {
		_, err := seed.ParseRoleDefaults([]byte("roles:\n  STAFF:\n    payroll: VIEW\n"))
		assert.Error(t, err)
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		_, err := seed.ParseRoleDefaults([]byte("roles:\n  STAFF:\n    billing: ADMIN\n"))
		assert.Error(t, err)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		_, err := seed.ParseRoleDefaults([]byte("roles: ["))
		assert.Error(t, err)
	})
}

func TestLoadRoleDefaultsMissingFile(t *testing.T) {
	_, err := seed.LoadRoleDefaults("/nonexistent/role_defaults.yaml")
	assert.Error(t, err)

	d, err := seed.LoadRoleDefaults("")
	require.NoError(t, err)
	assert.NotEmpty(t, d)
}

func TestEnsureSuperAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("creates when missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserRepositoryInterface(ctrl)
		users.EXPECT().GetByEmail(ctx, "root@lpg.in").Return(nil, gorm.ErrRecordNotFound)
		users.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *models.User) error {
			assert.Equal(t, models.RoleSuperAdmin, u.Role)
			assert.Nil(t, u.AdminID)
			assert.True(t, auth.CheckPassword(u.PasswordHash, "platform-secret"))
			return nil
		})

		user, created, err := seed.EnsureSuperAdmin(ctx, users, " Root@LPG.in ", "platform-secret")
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, "root@lpg.in", user.Email)
	})

	t.Run("updates existing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserRepositoryInterface(ctrl)
		adminID := uuid.New()
		existing := &models.User{Email: "root@lpg.in", Role: models.RoleAdmin, AdminID: &adminID, Status: models.UserStatusSuspended}
		users.EXPECT().GetByEmail(ctx, "root@lpg.in").Return(existing, nil)
		users.EXPECT().Update(ctx, existing).Return(nil)

		user, created, err := seed.EnsureSuperAdmin(ctx, users, "root@lpg.in", "platform-secret")
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, models.RoleSuperAdmin, user.Role)
		assert.Equal(t, models.UserStatusActive, user.Status)
		assert.Nil(t, user.AdminID)
	})

	t.Run("lookup failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserRepositoryInterface(ctrl)
		users.EXPECT().GetByEmail(ctx, "root@lpg.in").Return(nil, errors.New("connection refused"))

		_, _, err := seed.EnsureSuperAdmin(ctx, users, "root@lpg.in", "platform-secret")
		assert.Error(t, err)
	})

	t.Run("short password", func(t *testing.T) {
		_, _, err := seed.EnsureSuperAdmin(ctx, nil, "root@lpg.in", "short")
		assert.Error(t, err)
	})
}
