package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/wargakita/wargakita_backend/internal/apperrors"
	"github.com/wargakita/wargakita_backend/internal/core/domain"
	portssvc "github.com/wargakita/wargakita_backend/internal/core/ports/services"
	"github.com/wargakita/wargakita_backend/internal/core/services"
	"github.com/wargakita/wargakita_backend/internal/dto"
)

type AidServiceTestSuite struct {
	suite.Suite
	mockAidRepo      *MockAidRepository
	mockResidentRepo *MockResidentRepository
	mockNotifSvc     *MockNotificationService
	service          portssvc.AidSvcFacade
}

func (suite *AidServiceTestSuite) SetupTest() {
	suite.mockAidRepo = new(MockAidRepository)
	suite.mockResidentRepo = new(MockResidentRepository)
	suite.mockNotifSvc = new(MockNotificationService)
	suite.service = services.NewAidService(suite.mockAidRepo, suite.mockResidentRepo, suite.mockNotifSvc)
}

func (suite *AidServiceTestSuite) TestScheduleAid_Success() {
	ctx := context.Background()
	actorID := uuid.NewString()
	resident := &domain.Resident{ResidentID: uuid.NewString(), UserID: uuid.NewString(), Name: "Siti"}
	req := dto.ScheduleAidRequest{
		ProgramName: "BLT Dana Desa",
		ResidentID:  resident.ResidentID,
		Description: "Bantuan tunai Rp300.000",
		Date:        time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC),
	}

	suite.mockResidentRepo.On("FindResidentByID", ctx, resident.ResidentID).Return(resident, nil).Once()
	suite.mockAidRepo.On("SaveAidDistribution", ctx, mock.MatchedBy(func(aid domain.AidDistribution) bool {
		return aid.ProgramName == req.ProgramName &&
			aid.ResidentID == resident.ResidentID &&
			aid.Status == domain.AidScheduled &&
			aid.CreatedBy == actorID
	})).Return(nil).Once()
	suite.mockNotifSvc.On("NotifyUser", ctx, resident.UserID, mock.AnythingOfType("string"), domain.NotifBansos).Return(nil).Once()

	aid, err := suite.service.ScheduleAid(ctx, req, actorID)

	suite.Require().NoError(err)
	suite.Equal(domain.AidScheduled, aid.Status)
	suite.mockAidRepo.AssertExpectations(suite.T())
	suite.mockNotifSvc.AssertExpectations(suite.T())
}

func (suite *AidServiceTestSuite) TestScheduleAid_UnknownResident() {
	ctx := context.Background()
	req := dto.ScheduleAidRequest{ResidentID: uuid.NewString(), ProgramName: "BLT"}

	suite.mockResidentRepo.On("FindResidentByID", ctx, req.ResidentID).Return(nil, apperrors.ErrNotFound).Once()

	aid, err := suite.service.ScheduleAid(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(aid)
	suite.mockAidRepo.AssertNotCalled(suite.T(), "SaveAidDistribution", mock.Anything, mock.Anything)
}

func (suite *AidServiceTestSuite) TestMarkDistributed_Success() {
	ctx := context.Background()
	actorID := uuid.NewString()
	resident := &domain.Resident{ResidentID: uuid.NewString(), UserID: uuid.NewString()}
	scheduled := &domain.AidDistribution{
		AidID:       uuid.NewString(),
		ProgramName: "Sembako Ramadan",
		ResidentID:  resident.ResidentID,
		Status:      domain.AidScheduled,
	}

	suite.mockAidRepo.On("FindAidDistributionByID", ctx, scheduled.AidID).Return(scheduled, nil).Once()
	suite.mockAidRepo.On("UpdateAidDistribution", ctx, mock.MatchedBy(func(aid domain.AidDistribution) bool {
		return aid.AidID == scheduled.AidID && aid.Status == domain.AidDistributed && aid.LastUpdatedBy == actorID
	})).Return(nil).Once()
	suite.mockResidentRepo.On("FindResidentByID", ctx, resident.ResidentID).Return(resident, nil).Once()
	suite.mockNotifSvc.On("NotifyUser", ctx, resident.UserID, mock.AnythingOfType("string"), domain.NotifBansos).Return(nil).Once()

	aid, err := suite.service.MarkDistributed(ctx, scheduled.AidID, actorID)

	suite.Require().NoError(err)
	suite.Equal(domain.AidDistributed, aid.Status)
	suite.mockAidRepo.AssertExpectations(suite.T())
}

func (suite *AidServiceTestSuite) TestMarkDistributed_AlreadyDistributed() {
	ctx := context.Background()
	done := &domain.AidDistribution{
		AidID:  uuid.NewString(),
		Status: domain.AidDistributed,
	}

	suite.mockAidRepo.On("FindAidDistributionByID", ctx, done.AidID).Return(done, nil).Once()

	aid, err := suite.service.MarkDistributed(ctx, done.AidID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(aid)
	suite.mockAidRepo.AssertNotCalled(suite.T(), "UpdateAidDistribution", mock.Anything, mock.Anything)
}

func TestAidServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AidServiceTestSuite))
}
