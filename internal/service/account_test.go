package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"lpg-backoffice/internal/auth"
	"lpg-backoffice/internal/database/models"
	apperrors "lpg-backoffice/internal/errors"
	"lpg-backoffice/internal/mocks"
	"lpg-backoffice/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// AccountServiceTestSuite defines the test suite for AccountService
type AccountServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockUsers  *mocks.MockUserRepositoryInterface
	mockAccess *mocks.MockAccessServiceInterface
	mockOTP    *mocks.MockOTPServiceInterface
	sessions   *auth.SessionManager
	accounts   *service.AccountService
	ctx        context.Context
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUsers = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockAccess = mocks.NewMockAccessServiceInterface(suite.ctrl)
	suite.mockOTP = mocks.NewMockOTPServiceInterface(suite.ctrl)
	sessions, err := auth.NewSessionManager("account-test-key", time.Hour)
	suite.Require().NoError(err)
	suite.sessions = sessions
	suite.accounts = service.NewAccountService(suite.mockUsers, suite.mockAccess, suite.mockOTP, sessions, validator.New())
	suite.ctx = context.Background()
}

func (suite *AccountServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AccountServiceTestSuite) user(password string, verified bool) *models.User {
	hash, err := auth.HashPassword(password)
	suite.Require().NoError(err)
	id := uuid.New()
	return &models.User{
		BaseModel:    models.BaseModel{ID: id},
		Email:        "owner@gasagency.in",
		PasswordHash: hash,
		Name:         "Ravi",
		Role:         models.RoleAdmin,
		Status:       models.UserStatusActive,
		IsVerified:   verified,
		AdminID:      &id,
		BusinessName: "Ravi Gas Agency",
	}
}

func fullAccess() map[models.Module]models.AccessLevel {
	m := map[models.Module]models.AccessLevel{}
	for _, module := range models.AllModules() {
		m[module] = models.AccessFullAccess
	}
	return m
}

func (suite *AccountServiceTestSuite) TestRegisterAdmin() {
	req := &service.RegisterAdminRequest{
		Email:        " Owner@GasAgency.in",
		Password:     "cylinder-14.2",
		Name:         "Ravi",
		BusinessName: "Ravi Gas Agency",
	}

	suite.mockUsers.EXPECT().GetByEmail(suite.ctx, "owner@gasagency.in").Return(nil, gorm.ErrRecordNotFound)
	var created *models.User
	suite.mockUsers.EXPECT().Create(suite.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *models.User) error {
		created = u
		return nil
	})
	suite.mockAccess.EXPECT().ResetRoleDefaults(suite.ctx, gomock.Any()).Return(nil)
	suite.mockOTP.EXPECT().
		IssueOTP(suite.ctx, "owner@gasagency.in", models.OTPPurposeVerifyEmail).
		Return(&service.OTPIssue{Email: "owner@gasagency.in"}, nil)

	resp, err := suite.accounts.RegisterAdmin(suite.ctx, req)
	suite.NoError(err)
	suite.Require().NotNil(created)
	suite.Equal(models.RoleAdmin, created.Role)
	suite.False(created.IsVerified)
	suite.Require().NotNil(created.AdminID)
	suite.Equal(created.ID, *created.AdminID)
	suite.NotEqual("cylinder-14.2", created.PasswordHash)
	suite.Equal("owner@gasagency.in", resp.Email)
}

func (suite *AccountServiceTestSuite) TestRegisterAdminDuplicateEmail() {
	existing := suite.user("cylinder-14.2", true)
	suite.mockUsers.EXPECT().GetByEmail(suite.ctx, existing.Email).Return(existing, nil)

	_, err := suite.accounts.RegisterAdmin(suite.ctx, &service.RegisterAdminRequest{
		Email:        existing.Email,
		Password:     "cylinder-14.2",
		Name:         "Ravi",
		BusinessName: "Ravi Gas Agency",
	})
	suite.ErrorIs(err, apperrors.ErrUserExists)
}

func (suite *AccountServiceTestSuite) TestRegisterAdminValidation() {
	_, err := suite.accounts.RegisterAdmin(suite.ctx, &service.RegisterAdminRequest{Email: "not-an-email"})
	suite.Error(err)
	suite.Contains(err.Error(), "validation failed")
}

func (suite *AccountServiceTestSuite) TestLogin() {
	user := suite.user("cylinder-14.2", true)
	suite.mockUsers.EXPECT().GetByEmail(suite.ctx, user.Email).Return(user, nil)
	suite.mockAccess.EXPECT().AccessMap(suite.ctx, gomock.Any()).Return(fullAccess(), nil)

	session, err := suite.accounts.Login(suite.ctx, &service.LoginRequest{Email: "OWNER@gasagency.in", Password: "cylinder-14.2"})
	suite.Require().NoError(err)
	suite.NotEmpty(session.Token)
	suite.Equal(user.ID, session.User.ID)
	suite.Equal(models.AccessFullAccess, session.Access[models.ModuleBackup])

	claims, err := suite.sessions.Parse(session.Token)
	suite.NoError(err)
	suite.Equal(user.ID, claims.UserUUID())
}

func (suite *AccountServiceTestSuite) TestLoginRejections() {
	suite.Run("unknown email", func() {
		suite.mockUsers.EXPECT().GetByEmail(suite.ctx, "ghost@gasagency.in").Return(nil, gorm.ErrRecordNotFound)
		_, err := suite.accounts.Login(suite.ctx, &service.LoginRequest{Email: "ghost@gasagency.in", Password: "x"})
		suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	})

	suite.Run("wrong password", func() {
		user := suite.user("cylinder-14.2", true)
		suite.mockUsers.EXPECT().GetByEmail(suite.ctx, user.Email).Return(user, nil)
		_, err := suite.accounts.Login(suite.ctx, &service.LoginRequest{Email: user.Email, Password: "cylinder-19"})
		suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	})

	suite.Run("unverified", func() {
		user := suite.user("cylinder-14.2", false)
		suite.mockUsers.EXPECT().GetByEmail(suite.ctx, user.Email).Return(user, nil)
		_, err := suite.accounts.Login(suite.ctx, &service.LoginRequest{Email: user.Email, Password: "cylinder-14.2"})
		suite.ErrorIs(err, apperrors.ErrEmailNotVerified)
	})

	suite.Run("suspended", func() {
		user := suite.user("cylinder-14.2", true)
		user.Status = models.UserStatusSuspended
		suite.mockUsers.EXPECT().GetByEmail(suite.ctx, user.Email).Return(user, nil)
		_, err := suite.accounts.Login(suite.ctx, &service.LoginRequest{Email: user.Email, Password: "cylinder-14.2"})
		suite.ErrorIs(err, apperrors.ErrAccountSuspended)
	})
}

func (suite *AccountServiceTestSuite) TestVerifyEmail() {
	user := suite.user("cylinder-14.2", false)
	req := &service.OTPVerifyRequest{Email: user.Email, Code: "123456"}

	suite.mockOTP.EXPECT().VerifyOTP(suite.ctx, user.Email, "123456", models.OTPPurposeVerifyEmail).Return(nil)
	suite.mockUsers.EXPECT().GetByEmail(suite.ctx, user.Email).Return(user, nil)
	suite.mockUsers.EXPECT().Update(suite.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *models.User) error {
		suite.True(u.IsVerified)
		return nil
	})

	resp, err := suite.accounts.VerifyEmail(suite.ctx, req)
	suite.NoError(err)
	suite.True(resp.IsVerified)
}

func (suite *AccountServiceTestSuite) TestVerifyEmailPassesOTPErrors() {
	suite.mockOTP.EXPECT().
		VerifyOTP(suite.ctx, "owner@gasagency.in", "123456", models.OTPPurposeVerifyEmail).
		Return(apperrors.ErrOTPExpired)

	_, err := suite.accounts.VerifyEmail(suite.ctx, &service.OTPVerifyRequest{Email: "owner@gasagency.in", Code: "123456"})
	suite.ErrorIs(err, apperrors.ErrOTPExpired)
}

func (suite *AccountServiceTestSuite) TestRequestOTPDoesNotRevealAccountState() {
	expiresAt := time.Date(2026, 3, 14, 9, 10, 0, 0, time.UTC)
	suspended := suite.user("cylinder-14.2", false)
	suspended.Status = models.UserStatusSuspended
	verified := suite.user("cylinder-14.2", true)

	cases := []struct {
		name    string
		purpose models.OTPPurpose
		user    *models.User
		err     error
	}{
		{name: "unknown email", purpose: models.OTPPurposeLogin, err: gorm.ErrRecordNotFound},
		{name: "suspended account", purpose: models.OTPPurposeLogin, user: suspended},
		{name: "already verified", purpose: models.OTPPurposeVerifyEmail, user: verified},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			want := &service.OTPIssue{Email: "owner@gasagency.in", Purpose: tc.purpose, ExpiresAt: expiresAt}
			suite.mockUsers.EXPECT().GetByEmail(suite.ctx, "owner@gasagency.in").Return(tc.user, tc.err)
			suite.mockOTP.EXPECT().WithheldIssue("owner@gasagency.in", tc.purpose).Return(want)

			issue, err := suite.accounts.RequestOTP(suite.ctx, &service.OTPRequest{Email: " Owner@GasAgency.in", Purpose: tc.purpose})
			suite.NoError(err)
			suite.Equal(want, issue)
		})
	}
}

func (suite *AccountServiceTestSuite) TestRequestOTPIssuesForActiveAccount() {
	user := suite.user("cylinder-14.2", false)
	want := &service.OTPIssue{Email: user.Email, Purpose: models.OTPPurposeVerifyEmail}
	suite.mockUsers.EXPECT().GetByEmail(suite.ctx, user.Email).Return(user, nil)
	suite.mockOTP.EXPECT().IssueOTP(suite.ctx, user.Email, models.OTPPurposeVerifyEmail).Return(want, nil)

	issue, err := suite.accounts.RequestOTP(suite.ctx, &service.OTPRequest{Email: user.Email, Purpose: models.OTPPurposeVerifyEmail})
	suite.NoError(err)
	suite.Equal(want, issue)
}

func (suite *AccountServiceTestSuite) TestRequestOTPLookupFailure() {
	suite.mockUsers.EXPECT().GetByEmail(suite.ctx, "owner@gasagency.in").Return(nil, errors.New("connection refused"))

	_, err := suite.accounts.RequestOTP(suite.ctx, &service.OTPRequest{Email: "owner@gasagency.in"})
	suite.Error(err)
}

func (suite *AccountServiceTestSuite) TestVerifyOTPLoginOpensSession() {
	user := suite.user("cylinder-14.2", false)
	suite.mockOTP.EXPECT().VerifyOTP(suite.ctx, user.Email, "654321", models.OTPPurposeLogin).Return(nil)
	suite.mockUsers.EXPECT().GetByEmail(suite.ctx, user.Email).Return(user, nil)
	suite.mockUsers.EXPECT().Update(suite.ctx, gomock.Any()).Return(nil)
	suite.mockAccess.EXPECT().AccessMap(suite.ctx, gomock.Any()).Return(fullAccess(), nil)

	resp, err := suite.accounts.VerifyOTP(suite.ctx, &service.OTPVerifyRequest{Email: user.Email, Code: "654321"})
	suite.Require().NoError(err)
	suite.True(resp.Verified)
	suite.Require().NotNil(resp.Session)
	suite.NotEmpty(resp.Session.Token)
}

func (suite *AccountServiceTestSuite) TestVerifyOTPRefusesResetCodes() {
	_, err := suite.accounts.VerifyOTP(suite.ctx, &service.OTPVerifyRequest{
		Email:   "owner@gasagency.in",
		Code:    "123456",
		Purpose: models.OTPPurposeResetPassword,
	})
	suite.True(apperrors.IsValidation(err))
}

func (suite *AccountServiceTestSuite) TestResetPassword() {
	user := suite.user("cylinder-14.2", true)
	suite.mockOTP.EXPECT().VerifyOTP(suite.ctx, user.Email, "777777", models.OTPPurposeResetPassword).Return(nil)
	suite.mockUsers.EXPECT().GetByEmail(suite.ctx, user.Email).Return(user, nil)
	suite.mockUsers.EXPECT().Update(suite.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *models.User) error {
		suite.True(auth.CheckPassword(u.PasswordHash, "new-cylinder-19"))
		return nil
	})

	err := suite.accounts.ResetPassword(suite.ctx, &service.ResetPasswordRequest{
		Email:       user.Email,
		Code:        "777777",
		NewPassword: "new-cylinder-19",
	})
	suite.NoError(err)
}

func (suite *AccountServiceTestSuite) TestResetPasswordInvalidCode() {
	suite.mockOTP.EXPECT().
		VerifyOTP(suite.ctx, "owner@gasagency.in", "777777", models.OTPPurposeResetPassword).
		Return(apperrors.ErrOTPInvalid)

	err := suite.accounts.ResetPassword(suite.ctx, &service.ResetPasswordRequest{
		Email:       "owner@gasagency.in",
		Code:        "777777",
		NewPassword: "new-cylinder-19",
	})
	suite.ErrorIs(err, apperrors.ErrOTPInvalid)
}

func (suite *AccountServiceTestSuite) TestMe() {
	user := suite.user("cylinder-14.2", true)
	suite.mockUsers.EXPECT().GetByID(suite.ctx, user.ID).Return(user, nil)
	suite.mockAccess.EXPECT().AccessMap(suite.ctx, gomock.Any()).Return(fullAccess(), nil)

	me, err := suite.accounts.Me(suite.ctx, auth.NewIdentity(user))
	suite.NoError(err)
	suite.Equal(user.Email, me.User.Email)
	suite.Len(me.Access, len(models.AllModules()))

	_, err = suite.accounts.Me(suite.ctx, nil)
	suite.ErrorIs(err, apperrors.ErrNotAuthenticated)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
