package handlers

import (
	"net/http"
	"testing"

	"lpg-backoffice/internal/database/models"
	apperrors "lpg-backoffice/internal/errors"
	"lpg-backoffice/internal/mocks"
	"lpg-backoffice/internal/repository"
	"lpg-backoffice/internal/service"
	"lpg-backoffice/internal/tenant"
	"lpg-backoffice/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CylinderHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockCylinderServiceInterface
	handler     *CylinderHandler
	scope       tenant.Scope
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *CylinderHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockCylinderServiceInterface(suite.ctrl)
	suite.handler = NewCylinderHandler(suite.mockService)
	identity := adminIdentity()
	suite.scope = tenant.ForAdmin(identity.UserID)
	suite.httpSuite = testutils.SetupHTTPTest()

	stock := suite.httpSuite.Router.Group("/api/add-cylinder", authenticateAs(identity))
	stock.POST("", suite.handler.AddCylinders)
	stock.GET("", suite.handler.ListCylinders)
	stock.GET("/summary", suite.handler.StockSummary)
	stock.GET("/:id", suite.handler.GetCylinderEntry)
	stock.DELETE("/delete-all", suite.handler.DeleteAllCylinders)
	stock.DELETE("/:id", suite.handler.DeleteCylinderEntry)
}

func (suite *CylinderHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CylinderHandlerTestSuite) TestAddCylinders() {
	entry := &models.CylinderEntry{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		CylinderType: models.CylinderDomestic142,
		Quantity:     40,
		Filled:       true,
	}
	suite.mockService.EXPECT().Add(gomock.Any(), suite.scope, gomock.Any()).Return(entry, nil)

	rec := suite.httpSuite.MakeRequest(http.MethodPost, "/api/add-cylinder", map[string]interface{}{
		"cylinder_type": "DOMESTIC_14_2",
		"quantity":      40,
	})

	var got models.CylinderEntry
	testutils.DecodeEnvelope(suite.T(), rec, http.StatusCreated, &got)
	assert.Equal(suite.T(), 40, got.Quantity)
}

func (suite *CylinderHandlerTestSuite) TestListByType() {
	suite.mockService.EXPECT().
		List(gomock.Any(), suite.scope, models.CylinderCommercial19, 1, 20).
		Return(&service.PageResult[models.CylinderEntry]{Page: 1, PageSize: 20}, nil)

	rec := suite.httpSuite.MakeRequest(http.MethodGet, "/api/add-cylinder?type=commercial_19", nil)
	testutils.DecodeEnvelope(suite.T(), rec, http.StatusOK, nil)
}

func (suite *CylinderHandlerTestSuite) TestSummary() {
	summary := &service.StockSummary{
		Types: []repository.CylinderStock{
			{CylinderType: models.CylinderDomestic142, Filled: 4, Empty: 12},
		},
		TotalFilled:  4,
		TotalEmpty:   12,
		LowStock:     []models.CylinderType{models.CylinderDomestic142},
		LowThreshold: 10,
	}
	suite.mockService.EXPECT().Summary(gomock.Any(), suite.scope).Return(summary, nil)

	rec := suite.httpSuite.MakeRequest(http.MethodGet, "/api/add-cylinder/summary", nil)

	var got service.StockSummary
	testutils.DecodeEnvelope(suite.T(), rec, http.StatusOK, &got)
	assert.Equal(suite.T(), []models.CylinderType{models.CylinderDomestic142}, got.LowStock)
}

func (suite *CylinderHandlerTestSuite) TestDeleteAllDoesNotMatchIDRoute() {
	suite.mockService.EXPECT().DeleteAll(gomock.Any(), suite.scope).Return(int64(7), nil)

	rec := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/add-cylinder/delete-all", nil)

	var got map[string]int64
	testutils.DecodeEnvelope(suite.T(), rec, http.StatusOK, &got)
	assert.Equal(suite.T(), int64(7), got["deleted"])
}

func (suite *CylinderHandlerTestSuite) TestDeleteEntryNotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().Delete(gomock.Any(), suite.scope, id).Return(apperrors.ErrCylinderEntryNotFound)

	rec := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/add-cylinder/"+id.String(), nil)
	testutils.AssertErrorResponse(suite.T(), rec, http.StatusNotFound, "cylinder entry not found")
}

func TestCylinderHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CylinderHandlerTestSuite))
}
