package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/wargakita/wargakita_backend/internal/apperrors"
	"github.com/wargakita/wargakita_backend/internal/core/domain"
	portssvc "github.com/wargakita/wargakita_backend/internal/core/ports/services"
	"github.com/wargakita/wargakita_backend/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	service           portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockReportingRepo)
}

func (suite *ReportingServiceTestSuite) TestGetFinanceSummary_Success() {
	ctx := context.Background()
	from := domain.Period{Month: 1, Year: 2025}
	to := domain.Period{Month: 6, Year: 2025}
	totals := []domain.CategoryTotal{
		{Category: "Iuran Bulanan", Direction: domain.DirectionMasuk, Total: decimal.NewFromInt(1500000)},
		{Category: "Wakaf Masjid", Direction: domain.DirectionMasuk, Total: decimal.NewFromInt(750000)},
		{Category: "Kebersihan", Direction: domain.DirectionKeluar, Total: decimal.NewFromInt(600000)},
	}

	suite.mockReportingRepo.On("GetCategoryTotals", ctx, from, to).Return(totals, nil).Once()

	summary, err := suite.service.GetFinanceSummary(ctx, from, to)

	suite.Require().NoError(err)
	suite.True(summary.TotalMasuk.Equal(decimal.NewFromInt(2250000)))
	suite.True(summary.TotalKeluar.Equal(decimal.NewFromInt(600000)))
	suite.True(summary.Balance.Equal(decimal.NewFromInt(1650000)))
	suite.Len(summary.ByCategory, 3)
}

func (suite *ReportingServiceTestSuite) TestGetFinanceSummary_EmptyRange() {
	ctx := context.Background()
	from := domain.Period{Month: 3, Year: 2025}

	suite.mockReportingRepo.On("GetCategoryTotals", ctx, from, from).Return([]domain.CategoryTotal{}, nil).Once()

	summary, err := suite.service.GetFinanceSummary(ctx, from, from)

	suite.Require().NoError(err)
	suite.True(summary.TotalMasuk.IsZero())
	suite.True(summary.TotalKeluar.IsZero())
	suite.True(summary.Balance.IsZero())
}

func (suite *ReportingServiceTestSuite) TestGetFinanceSummary_ReversedRange() {
	ctx := context.Background()
	from := domain.Period{Month: 6, Year: 2025}
	to := domain.Period{Month: 1, Year: 2025}

	summary, err := suite.service.GetFinanceSummary(ctx, from, to)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(summary)
	suite.mockReportingRepo.AssertNotCalled(suite.T(), "GetCategoryTotals", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestGetFinanceSummary_InvalidPeriod() {
	ctx := context.Background()

	summary, err := suite.service.GetFinanceSummary(ctx, domain.Period{Month: 0, Year: 2025}, domain.Period{Month: 1, Year: 2025})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(summary)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
