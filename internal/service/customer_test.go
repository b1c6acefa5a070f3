package service_test

import (
	"context"
	"testing"

	"lpg-backoffice/internal/database/models"
	apperrors "lpg-backoffice/internal/errors"
	"lpg-backoffice/internal/mocks"
	"lpg-backoffice/internal/service"
	"lpg-backoffice/internal/tenant"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// CustomerServiceTestSuite defines the test suite for CustomerService
type CustomerServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockCustomerRepositoryInterface
	svc      *service.CustomerService
	ctx      context.Context
	adminID  uuid.UUID
	scope    tenant.Scope
}

func (suite *CustomerServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockCustomerRepositoryInterface(suite.ctrl)
	suite.svc = service.NewCustomerService(suite.mockRepo, validator.New())
	suite.ctx = context.Background()
	suite.adminID = uuid.New()
	suite.scope = tenant.ForAdmin(suite.adminID)
}

func (suite *CustomerServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CustomerServiceTestSuite) TestCreateStampsTenant() {
	req := &service.CreateCustomerRequest{
		Name:             " Lakshmi Stores ",
		Phone:            "9840012345",
		ConnectionNumber: "TN-0042",
		CylindersHeld:    2,
		DepositAmount:    2900.456,
	}

	suite.mockRepo.EXPECT().Create(suite.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *models.Customer) error {
		suite.Equal(suite.adminID, c.AdminID)
		return nil
	})

	customer, err := suite.svc.Create(suite.ctx, suite.scope, req)
	suite.NoError(err)
	suite.Equal("Lakshmi Stores", customer.Name)
	suite.Equal(2900.46, customer.DepositAmount)
	suite.True(customer.IsActive)
}

func (suite *CustomerServiceTestSuite) TestCreateInactive() {
	inactive := false
	suite.mockRepo.EXPECT().Create(suite.ctx, gomock.Any()).Return(nil)

	customer, err := suite.svc.Create(suite.ctx, suite.scope, &service.CreateCustomerRequest{
		Name:             "Closed Hotel",
		ConnectionNumber: "TN-0099",
		IsActive:         &inactive,
	})
	suite.NoError(err)
	suite.False(customer.IsActive)
}

func (suite *CustomerServiceTestSuite) TestCreateDuplicateConnection() {
	suite.mockRepo.EXPECT().Create(suite.ctx, gomock.Any()).Return(gorm.ErrDuplicatedKey)

	_, err := suite.svc.Create(suite.ctx, suite.scope, &service.CreateCustomerRequest{
		Name:             "Lakshmi Stores",
		ConnectionNumber: "TN-0042",
	})
	suite.ErrorIs(err, apperrors.ErrCustomerExists)
}

func (suite *CustomerServiceTestSuite) TestCreateValidation() {
	_, err := suite.svc.Create(suite.ctx, suite.scope, &service.CreateCustomerRequest{Name: "No Connection"})
	suite.Error(err)
	suite.Contains(err.Error(), "validation failed")
}

func (suite *CustomerServiceTestSuite) TestCreateUnscopedRejected() {
	_, err := suite.svc.Create(suite.ctx, tenant.Unscoped(), &service.CreateCustomerRequest{
		Name:             "Lakshmi Stores",
		ConnectionNumber: "TN-0042",
	})
	suite.ErrorIs(err, apperrors.ErrTenantRequired)
}

func (suite *CustomerServiceTestSuite) TestList() {
	suite.mockRepo.EXPECT().List(suite.ctx, suite.scope, "lakshmi", 100, 0).Return(nil, int64(0), nil)

	page, err := suite.svc.List(suite.ctx, suite.scope, "lakshmi", 1, 500)
	suite.NoError(err)
	suite.NotNil(page.Items)
	suite.Empty(page.Items)
	suite.Equal(100, page.PageSize)
}

func (suite *CustomerServiceTestSuite) TestGetNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(suite.ctx, suite.scope, id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.svc.Get(suite.ctx, suite.scope, id)
	suite.ErrorIs(err, apperrors.ErrCustomerNotFound)
}

func (suite *CustomerServiceTestSuite) TestUpdate() {
	existing := &models.Customer{
		BaseModel:        models.BaseModel{ID: uuid.New()},
		AdminID:          suite.adminID,
		Name:             "Lakshmi Stores",
		ConnectionNumber: "TN-0042",
		IsActive:         true,
	}
	name := "Lakshmi Super Stores"
	active := false

	suite.mockRepo.EXPECT().GetByID(suite.ctx, suite.scope, existing.ID).Return(existing, nil)
	suite.mockRepo.EXPECT().Update(suite.ctx, suite.scope, existing).Return(nil)

	customer, err := suite.svc.Update(suite.ctx, suite.scope, existing.ID, &service.UpdateCustomerRequest{Name: &name, IsActive: &active})
	suite.NoError(err)
	suite.Equal(name, customer.Name)
	suite.False(customer.IsActive)
	suite.Equal("TN-0042", customer.ConnectionNumber)
}

func (suite *CustomerServiceTestSuite) TestDelete() {
	id := uuid.New()
	suite.mockRepo.EXPECT().Delete(suite.ctx, suite.scope, id).Return(nil)
	suite.NoError(suite.svc.Delete(suite.ctx, suite.scope, id))

	suite.mockRepo.EXPECT().Delete(suite.ctx, suite.scope, id).Return(gorm.ErrRecordNotFound)
	suite.ErrorIs(suite.svc.Delete(suite.ctx, suite.scope, id), apperrors.ErrCustomerNotFound)
}

func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}
