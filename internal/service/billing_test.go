package service_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"lpg-backoffice/internal/database/models"
	apperrors "lpg-backoffice/internal/errors"
	"lpg-backoffice/internal/mocks"
	"lpg-backoffice/internal/repository"
	"lpg-backoffice/internal/service"
	"lpg-backoffice/internal/tenant"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// BillingServiceTestSuite defines the test suite for BillingService
type BillingServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *mocks.MockBillRepositoryInterface
	mockSettings *mocks.MockSettingServiceInterface
	svc          *service.BillingService
	ctx          context.Context
	adminID      uuid.UUID
	scope        tenant.Scope
}

func (suite *BillingServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockBillRepositoryInterface(suite.ctrl)
	suite.mockSettings = mocks.NewMockSettingServiceInterface(suite.ctrl)
	suite.svc = service.NewBillingService(suite.mockRepo, suite.mockSettings, validator.New())
	suite.svc.SetClock(func() time.Time { return time.Date(2026, 3, 14, 11, 30, 0, 0, time.UTC) })
	suite.ctx = context.Background()
	suite.adminID = uuid.New()
	suite.scope = tenant.ForAdmin(suite.adminID)
}

func (suite *BillingServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *BillingServiceTestSuite) request() *service.CreateBillRequest {
	return &service.CreateBillRequest{
		CustomerID: uuid.New(),
		Items: []models.BillItem{
			{Description: "14.2 kg refill", CylinderType: models.CylinderDomestic142, Quantity: 2, UnitPrice: 905.5},
			{Description: "Regulator", Quantity: 1, UnitPrice: 150},
		},
	}
}

func (suite *BillingServiceTestSuite) TestCreateComputesTotals() {
	req := suite.request()
	suite.mockSettings.EXPECT().Float(suite.ctx, suite.scope, service.SettingTaxPercent).Return(5.0)
	suite.mockRepo.EXPECT().LastSequence(suite.ctx, suite.scope, "INV-20260314-").Return(int64(6), nil)
	suite.mockRepo.EXPECT().CreateForCustomer(suite.ctx, gomock.Any()).Return(nil)

	bill, err := suite.svc.Create(suite.ctx, suite.scope, req)
	suite.Require().NoError(err)
	suite.Equal("INV-20260314-0007", bill.BillNumber)
	suite.Equal(suite.adminID, bill.AdminID)
	suite.Equal(1961.0, bill.Subtotal)
	suite.Equal(98.05, bill.Tax)
	suite.Equal(2059.05, bill.Total)
	suite.Equal(models.BillStatusUnpaid, bill.Status)

	var items []models.BillItem
	suite.Require().NoError(json.Unmarshal(bill.Items, &items))
	suite.Equal(1811.0, items[0].Amount)
	suite.Equal(150.0, items[1].Amount)
}

func (suite *BillingServiceTestSuite) TestCreateExplicitTax() {
	req := suite.request()
	zero := 0.0
	req.TaxPercent = &zero
	suite.mockRepo.EXPECT().LastSequence(suite.ctx, suite.scope, gomock.Any()).Return(int64(0), nil)
	suite.mockRepo.EXPECT().CreateForCustomer(suite.ctx, gomock.Any()).Return(nil)

	bill, err := suite.svc.Create(suite.ctx, suite.scope, req)
	suite.Require().NoError(err)
	suite.Equal(0.0, bill.Tax)
	suite.Equal(bill.Subtotal, bill.Total)
	suite.Equal("INV-20260314-0001", bill.BillNumber)
}

func (suite *BillingServiceTestSuite) TestCreateRetriesTakenNumber() {
	req := suite.request()
	suite.mockSettings.EXPECT().Float(suite.ctx, suite.scope, service.SettingTaxPercent).Return(5.0)
	gomock.InOrder(
		suite.mockRepo.EXPECT().LastSequence(suite.ctx, suite.scope, gomock.Any()).Return(int64(3), nil),
		suite.mockRepo.EXPECT().LastSequence(suite.ctx, suite.scope, gomock.Any()).Return(int64(4), nil),
	)

	var numbers []string
	suite.mockRepo.EXPECT().CreateForCustomer(suite.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, b *models.Bill) error {
		numbers = append(numbers, b.BillNumber)
		if len(numbers) == 1 {
			return gorm.ErrDuplicatedKey
		}
		return nil
	}).Times(2)

	bill, err := suite.svc.Create(suite.ctx, suite.scope, req)
	suite.NoError(err)
	suite.Equal([]string{"INV-20260314-0004", "INV-20260314-0005"}, numbers)
	suite.Equal("INV-20260314-0005", bill.BillNumber)
}

// Bills 0001..0003 were deleted earlier in the day; 0004..0010 remain.
func (suite *BillingServiceTestSuite) TestCreateAfterDeletedBillsContinuesFromHighestNumber() {
	req := suite.request()
	suite.mockSettings.EXPECT().Float(suite.ctx, suite.scope, service.SettingTaxPercent).Return(5.0)
	suite.mockRepo.EXPECT().LastSequence(suite.ctx, suite.scope, "INV-20260314-").Return(int64(10), nil)

	taken := map[string]bool{}
	for n := 4; n <= 10; n++ {
		taken[fmt.Sprintf("INV-20260314-%04d", n)] = true
	}
	suite.mockRepo.EXPECT().CreateForCustomer(suite.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, b *models.Bill) error {
		if taken[b.BillNumber] {
			return gorm.ErrDuplicatedKey
		}
		return nil
	})

	bill, err := suite.svc.Create(suite.ctx, suite.scope, req)
	suite.Require().NoError(err)
	suite.Equal("INV-20260314-0011", bill.BillNumber)
}

func (suite *BillingServiceTestSuite) TestCreateGivesUpAfterRepeatedCollisions() {
	req := suite.request()
	suite.mockSettings.EXPECT().Float(suite.ctx, suite.scope, service.SettingTaxPercent).Return(5.0)
	suite.mockRepo.EXPECT().LastSequence(suite.ctx, suite.scope, gomock.Any()).Return(int64(1), nil).Times(3)
	suite.mockRepo.EXPECT().CreateForCustomer(suite.ctx, gomock.Any()).Return(gorm.ErrDuplicatedKey).Times(3)

	_, err := suite.svc.Create(suite.ctx, suite.scope, req)
	suite.ErrorIs(err, apperrors.ErrBillNumberExists)
}

func (suite *BillingServiceTestSuite) TestCreateUnknownCustomer() {
	req := suite.request()
	suite.mockSettings.EXPECT().Float(suite.ctx, suite.scope, service.SettingTaxPercent).Return(5.0)
	suite.mockRepo.EXPECT().LastSequence(suite.ctx, suite.scope, gomock.Any()).Return(int64(0), nil)
	suite.mockRepo.EXPECT().CreateForCustomer(suite.ctx, gomock.Any()).Return(gorm.ErrRecordNotFound)

	_, err := suite.svc.Create(suite.ctx, suite.scope, req)
	suite.ErrorIs(err, apperrors.ErrCustomerNotFound)
}

func (suite *BillingServiceTestSuite) TestCreateValidation() {
	req := suite.request()
	req.Items = nil
	_, err := suite.svc.Create(suite.ctx, suite.scope, req)
	suite.Error(err)

	req = suite.request()
	req.Items[0].Quantity = 0
	_, err = suite.svc.Create(suite.ctx, suite.scope, req)
	suite.Error(err)
}

func (suite *BillingServiceTestSuite) TestList() {
	customerID := uuid.New()
	filter := repository.BillFilter{CustomerID: &customerID, Status: models.BillStatusPartial}
	suite.mockRepo.EXPECT().List(suite.ctx, suite.scope, filter, 20, 0).Return([]models.Bill{{BillNumber: "INV-20260314-0001"}}, int64(1), nil)

	page, err := suite.svc.List(suite.ctx, suite.scope, service.BillListParams{CustomerID: &customerID, Status: models.BillStatusPartial})
	suite.NoError(err)
	suite.Len(page.Items, 1)

	_, err = suite.svc.List(suite.ctx, suite.scope, service.BillListParams{Status: "OVERDUE"})
	suite.True(apperrors.IsValidation(err))
}

func (suite *BillingServiceTestSuite) TestDelete() {
	id := uuid.New()
	suite.mockRepo.EXPECT().Delete(suite.ctx, suite.scope, id).Return(gorm.ErrRecordNotFound)
	suite.ErrorIs(suite.svc.Delete(suite.ctx, suite.scope, id), apperrors.ErrBillNotFound)
}

func TestBillingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BillingServiceTestSuite))
}
