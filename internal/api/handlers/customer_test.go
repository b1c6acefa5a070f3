package handlers

import (
	"context"
	"net/http"
	"testing"

	"lpg-backoffice/internal/auth"
	"lpg-backoffice/internal/database/models"
	apperrors "lpg-backoffice/internal/errors"
	"lpg-backoffice/internal/mocks"
	"lpg-backoffice/internal/service"
	"lpg-backoffice/internal/tenant"
	"lpg-backoffice/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CustomerHandlerTestSuite defines the test suite for CustomerHandler
type CustomerHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockCustomerServiceInterface
	handler     *CustomerHandler
	identity    *auth.Identity
	scope       tenant.Scope
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *CustomerHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockCustomerServiceInterface(suite.ctrl)
	suite.handler = NewCustomerHandler(suite.mockService)
	suite.identity = adminIdentity()
	suite.scope = tenant.ForAdmin(suite.identity.UserID)
	suite.httpSuite = testutils.SetupHTTPTest()

	customers := suite.httpSuite.Router.Group("/api/customers", authenticateAs(suite.identity))
	{
		customers.GET("", suite.handler.ListCustomers)
		customers.POST("", suite.handler.CreateCustomer)
		customers.GET("/:id", suite.handler.GetCustomer)
		customers.PUT("/:id", suite.handler.UpdateCustomer)
		customers.DELETE("/:id", suite.handler.DeleteCustomer)
	}
}

func (suite *CustomerHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CustomerHandlerTestSuite) customer() *models.Customer {
	return &models.Customer{
		BaseModel:        models.BaseModel{ID: uuid.New()},
		AdminID:          suite.identity.UserID,
		Name:             "Lakshmi Stores",
		Phone:            "9876543210",
		ConnectionNumber: "HP-00042",
		IsActive:         true,
	}
}

func (suite *CustomerHandlerTestSuite) TestListCustomers() {
	expected := &service.PageResult[models.Customer]{
		Items:    []models.Customer{*suite.customer()},
		Total:    1,
		Page:     2,
		PageSize: 10,
	}
	suite.mockService.EXPECT().List(gomock.Any(), suite.scope, "lakshmi", 2, 10).Return(expected, nil)

	rec := suite.httpSuite.MakeRequest(http.MethodGet, "/api/customers?q=lakshmi&page=2&page_size=10", nil)

	var got service.PageResult[models.Customer]
	testutils.DecodeEnvelope(suite.T(), rec, http.StatusOK, &got)
	assert.Equal(suite.T(), int64(1), got.Total)
	assert.Len(suite.T(), got.Items, 1)
}

func (suite *CustomerHandlerTestSuite) TestCreateCustomer() {
	created := suite.customer()
	suite.mockService.EXPECT().
		Create(gomock.Any(), suite.scope, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ tenant.Scope, req *service.CreateCustomerRequest) (*models.Customer, error) {
			assert.Equal(suite.T(), "HP-00042", req.ConnectionNumber)
			return created, nil
		})

	rec := suite.httpSuite.MakeRequest(http.MethodPost, "/api/customers", map[string]interface{}{
		"name":              "Lakshmi Stores",
		"connection_number": "HP-00042",
	})

	var got models.Customer
	testutils.DecodeEnvelope(suite.T(), rec, http.StatusCreated, &got)
	assert.Equal(suite.T(), created.ID, got.ID)
}

func (suite *CustomerHandlerTestSuite) TestCreateCustomerDuplicate() {
	suite.mockService.EXPECT().Create(gomock.Any(), suite.scope, gomock.Any()).Return(nil, apperrors.ErrCustomerExists)

	rec := suite.httpSuite.MakeRequest(http.MethodPost, "/api/customers", map[string]interface{}{
		"name": "Lakshmi Stores", "connection_number": "HP-00042",
	})
	testutils.AssertErrorResponse(suite.T(), rec, http.StatusConflict, "connection number")
}

func (suite *CustomerHandlerTestSuite) TestGetCustomer() {
	c := suite.customer()
	suite.mockService.EXPECT().Get(gomock.Any(), suite.scope, c.ID).Return(c, nil)

	rec := suite.httpSuite.MakeRequest(http.MethodGet, "/api/customers/"+c.ID.String(), nil)
	testutils.DecodeEnvelope(suite.T(), rec, http.StatusOK, nil)
}

func (suite *CustomerHandlerTestSuite) TestGetCustomerNotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().Get(gomock.Any(), suite.scope, id).Return(nil, apperrors.ErrCustomerNotFound)

	rec := suite.httpSuite.MakeRequest(http.MethodGet, "/api/customers/"+id.String(), nil)
	testutils.AssertErrorResponse(suite.T(), rec, http.StatusNotFound, "customer not found")
}

func (suite *CustomerHandlerTestSuite) TestGetCustomerInvalidID() {
	rec := suite.httpSuite.MakeRequest(http.MethodGet, "/api/customers/42", nil)
	testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "Invalid customer ID")
}

func (suite *CustomerHandlerTestSuite) TestUpdateCustomer() {
	c := suite.customer()
	suite.mockService.EXPECT().Update(gomock.Any(), suite.scope, c.ID, gomock.Any()).Return(c, nil)

	rec := suite.httpSuite.MakeRequest(http.MethodPut, "/api/customers/"+c.ID.String(), map[string]interface{}{
		"phone": "9000000000",
	})
	testutils.DecodeEnvelope(suite.T(), rec, http.StatusOK, nil)
}

func (suite *CustomerHandlerTestSuite) TestDeleteCustomer() {
	id := uuid.New()
	suite.mockService.EXPECT().Delete(gomock.Any(), suite.scope, id).Return(nil)

	rec := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/customers/"+id.String(), nil)
	assert.Equal(suite.T(), http.StatusNoContent, rec.Code)
}

func (suite *CustomerHandlerTestSuite) TestStaffWithoutTenant() {
	orphan := &auth.Identity{UserID: uuid.New(), Role: models.RoleStaff}
	router := testutils.SetupHTTPTest()
	router.Router.GET("/api/customers", authenticateAs(orphan), suite.handler.ListCustomers)

	rec := router.MakeRequest(http.MethodGet, "/api/customers", nil)
	testutils.AssertErrorResponse(suite.T(), rec, http.StatusForbidden, "tenant")
}

func TestCustomerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerHandlerTestSuite))
}
