package handlers

import (
	"net/http"
	"testing"

	"lpg-backoffice/internal/database/models"
	apperrors "lpg-backoffice/internal/errors"
	"lpg-backoffice/internal/mocks"
	"lpg-backoffice/internal/service"
	"lpg-backoffice/internal/tenant"
	"lpg-backoffice/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type StaffHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockStaffServiceInterface
	adminID     uuid.UUID
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *StaffHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockStaffServiceInterface(suite.ctrl)
	suite.adminID = uuid.New()
	suite.httpSuite = testutils.SetupHTTPTest()

	// a manager acting inside the admin's tenant
	manager := staffIdentity(suite.adminID)
	manager.Role = models.RoleManager

	h := NewStaffHandler(suite.mockService)
	staff := suite.httpSuite.Router.Group("/api/staff", authenticateAs(manager))
	staff.GET("", h.ListStaff)
	staff.POST("", h.CreateStaff)
	staff.GET("/:id", h.GetStaff)
	staff.PUT("/:id", h.UpdateStaff)
	staff.DELETE("/:id", h.DeleteStaff)
}

func (suite *StaffHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *StaffHandlerTestSuite) TestCreateUsesTenantOfCaller() {
	created := &service.UserResponse{ID: uuid.New(), Email: "driver@gasagency.in", Role: models.RoleStaff, AdminID: &suite.adminID}
	suite.mockService.EXPECT().
		Create(gomock.Any(), tenant.ForAdmin(suite.adminID), gomock.Any()).
		Return(created, nil)

	rec := suite.httpSuite.MakeRequest(http.MethodPost, "/api/staff", map[string]string{
		"email":    "driver@gasagency.in",
		"password": "cylinder-route-7",
		"name":     "Suresh",
		"role":     "STAFF",
	})

	var got service.UserResponse
	testutils.DecodeEnvelope(suite.T(), rec, http.StatusCreated, &got)
	suite.Equal(created.ID, got.ID)
	suite.Equal(models.RoleStaff, got.Role)
}

func (suite *StaffHandlerTestSuite) TestCreateDuplicateEmail() {
	suite.mockService.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrUserExists)

	rec := suite.httpSuite.MakeRequest(http.MethodPost, "/api/staff", map[string]string{"email": "driver@gasagency.in"})
	testutils.AssertErrorResponse(suite.T(), rec, http.StatusConflict, "already exists")
}

func (suite *StaffHandlerTestSuite) TestGetNotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().Get(gomock.Any(), tenant.ForAdmin(suite.adminID), id).Return(nil, apperrors.ErrStaffNotFound)

	rec := suite.httpSuite.MakeRequest(http.MethodGet, "/api/staff/"+id.String(), nil)
	testutils.AssertErrorResponse(suite.T(), rec, http.StatusNotFound, "staff member not found")
}

func (suite *StaffHandlerTestSuite) TestInvalidID() {
	rec := suite.httpSuite.MakeRequest(http.MethodPut, "/api/staff/not-a-uuid", map[string]string{"name": "x"})
	testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "Invalid staff ID")
}

func (suite *StaffHandlerTestSuite) TestDelete() {
	id := uuid.New()
	suite.mockService.EXPECT().Delete(gomock.Any(), tenant.ForAdmin(suite.adminID), id).Return(nil)

	rec := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/staff/"+id.String(), nil)
	suite.Equal(http.StatusNoContent, rec.Code)
}

func TestStaffHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(StaffHandlerTestSuite))
}
