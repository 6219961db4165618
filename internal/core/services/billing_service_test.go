package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/wargakita/wargakita_backend/internal/apperrors"
	"github.com/wargakita/wargakita_backend/internal/core/domain"
	portssvc "github.com/wargakita/wargakita_backend/internal/core/ports/services"
	"github.com/wargakita/wargakita_backend/internal/core/services"
)

type BillingServiceTestSuite struct {
	suite.Suite
	mockDueRepo      *MockDueRepository
	mockResidentRepo *MockResidentRepository
	service          portssvc.BillingSvcFacade
	tariff           decimal.Decimal
	category         string
}

func (suite *BillingServiceTestSuite) SetupTest() {
	suite.mockDueRepo = new(MockDueRepository)
	suite.mockResidentRepo = new(MockResidentRepository)
	suite.tariff = decimal.NewFromInt(50000)
	suite.category = "Iuran Bulanan"
	suite.service = services.NewBillingService(suite.mockDueRepo, suite.mockResidentRepo, suite.tariff, suite.category)
}

func (suite *BillingServiceTestSuite) TestGenerateBills_Success() {
	ctx := context.Background()
	actorID := uuid.NewString()
	period := domain.Period{Month: 7, Year: 2025}

	residentA := domain.Resident{ResidentID: uuid.NewString(), Name: "Budi", Status: domain.ResidentActive}
	residentB := domain.Resident{ResidentID: uuid.NewString(), Name: "Siti", Status: domain.ResidentActive}

	suite.mockResidentRepo.On("FindResidentsByStatus", ctx, domain.ResidentActive).
		Return([]domain.Resident{residentA, residentB}, nil).Once()
	// Resident A already has a record for the period and must be skipped.
	suite.mockDueRepo.On("FindBilledResidentIDs", ctx, suite.category, period).
		Return(map[string]struct{}{residentA.ResidentID: {}}, nil).Once()
	suite.mockDueRepo.On("SaveDues", ctx, mock.MatchedBy(func(dues []domain.DueRecord) bool {
		if len(dues) != 1 {
			return false
		}
		due := dues[0]
		return due.ResidentID == residentB.ResidentID &&
			due.Status == domain.StatusBill &&
			due.Kind == domain.KindIuran &&
			due.Direction == domain.DirectionMasuk &&
			due.Amount.Equal(suite.tariff) &&
			due.Period != nil && *due.Period == period &&
			due.CreatedBy == actorID
	})).Return(nil).Once()

	created, err := suite.service.GenerateBills(ctx, period, actorID)

	suite.Require().NoError(err)
	suite.Equal(1, created)
	suite.mockDueRepo.AssertExpectations(suite.T())
	suite.mockResidentRepo.AssertExpectations(suite.T())
}

func (suite *BillingServiceTestSuite) TestGenerateBills_InvalidPeriod() {
	ctx := context.Background()

	created, err := suite.service.GenerateBills(ctx, domain.Period{Month: 13, Year: 2025}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Zero(created)
	suite.mockResidentRepo.AssertNotCalled(suite.T(), "FindResidentsByStatus", mock.Anything, mock.Anything)
}

func (suite *BillingServiceTestSuite) TestGenerateBills_EveryoneAlreadyBilled() {
	ctx := context.Background()
	period := domain.Period{Month: 7, Year: 2025}
	resident := domain.Resident{ResidentID: uuid.NewString(), Status: domain.ResidentActive}

	suite.mockResidentRepo.On("FindResidentsByStatus", ctx, domain.ResidentActive).
		Return([]domain.Resident{resident}, nil).Once()
	suite.mockDueRepo.On("FindBilledResidentIDs", ctx, suite.category, period).
		Return(map[string]struct{}{resident.ResidentID: {}}, nil).Once()

	created, err := suite.service.GenerateBills(ctx, period, uuid.NewString())

	suite.Require().NoError(err)
	suite.Zero(created)
	suite.mockDueRepo.AssertNotCalled(suite.T(), "SaveDues", mock.Anything, mock.Anything)
}

func (suite *BillingServiceTestSuite) TestGenerateBills_SaveError() {
	ctx := context.Background()
	period := domain.Period{Month: 7, Year: 2025}
	resident := domain.Resident{ResidentID: uuid.NewString(), Status: domain.ResidentActive}

	suite.mockResidentRepo.On("FindResidentsByStatus", ctx, domain.ResidentActive).
		Return([]domain.Resident{resident}, nil).Once()
	suite.mockDueRepo.On("FindBilledResidentIDs", ctx, suite.category, period).
		Return(map[string]struct{}{}, nil).Once()
	suite.mockDueRepo.On("SaveDues", ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	created, err := suite.service.GenerateBills(ctx, period, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Zero(created)
}

func TestBillingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BillingServiceTestSuite))
}
