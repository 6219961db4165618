package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/wargakita/wargakita_backend/internal/apperrors"
	"github.com/wargakita/wargakita_backend/internal/core/domain"
	portssvc "github.com/wargakita/wargakita_backend/internal/core/ports/services"
	"github.com/wargakita/wargakita_backend/internal/core/services"
	"github.com/wargakita/wargakita_backend/internal/dto"
)

type AnnouncementServiceTestSuite struct {
	suite.Suite
	mockAnnouncementRepo *MockAnnouncementRepository
	mockNotifSvc         *MockNotificationService
	service              portssvc.AnnouncementSvcFacade
}

func (suite *AnnouncementServiceTestSuite) SetupTest() {
	suite.mockAnnouncementRepo = new(MockAnnouncementRepository)
	suite.mockNotifSvc = new(MockNotificationService)
	suite.service = services.NewAnnouncementService(suite.mockAnnouncementRepo, suite.mockNotifSvc)
}

func (suite *AnnouncementServiceTestSuite) TestCreateAnnouncement_BroadcastsToEveryone() {
	ctx := context.Background()
	authorID := uuid.NewString()
	req := dto.CreateAnnouncementRequest{
		Title: "Kerja Bakti Minggu Ini",
		Body:  "Kerja bakti dimulai pukul 07.00 di balai RW.",
	}
	allRoles := []domain.UserRole{domain.RoleAdmin, domain.RolePengurus, domain.RoleWarga}

	suite.mockAnnouncementRepo.On("SaveAnnouncement", ctx, mock.MatchedBy(func(a domain.Announcement) bool {
		return a.Title == req.Title && a.Body == req.Body && a.CreatedBy == authorID
	})).Return(nil).Once()
	suite.mockNotifSvc.On("NotifyRoles", ctx, allRoles, "Pengumuman baru: "+req.Title, domain.NotifPengumuman).
		Return(5, nil).Once()

	announcement, err := suite.service.CreateAnnouncement(ctx, req, authorID)

	suite.Require().NoError(err)
	suite.NotEmpty(announcement.AnnouncementID)
	suite.False(announcement.PublishDate.IsZero())
	suite.mockAnnouncementRepo.AssertExpectations(suite.T())
	suite.mockNotifSvc.AssertExpectations(suite.T())
}

func (suite *AnnouncementServiceTestSuite) TestCreateAnnouncement_BroadcastFailureIsNotFatal() {
	ctx := context.Background()
	req := dto.CreateAnnouncementRequest{Title: "Judul", Body: "Isi"}

	suite.mockAnnouncementRepo.On("SaveAnnouncement", ctx, mock.AnythingOfType("domain.Announcement")).Return(nil).Once()
	suite.mockNotifSvc.On("NotifyRoles", ctx, mock.Anything, mock.Anything, domain.NotifPengumuman).
		Return(0, apperrors.ErrInternal).Once()

	announcement, err := suite.service.CreateAnnouncement(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.NotNil(announcement)
}

func (suite *AnnouncementServiceTestSuite) TestUpdateAnnouncement_NoRebroadcast() {
	ctx := context.Background()
	existing := &domain.Announcement{
		AnnouncementID: uuid.NewString(),
		Title:          "Judul Lama",
		Body:           "Isi lama",
	}
	req := dto.UpdateAnnouncementRequest{Body: "Isi yang diperbaiki"}

	suite.mockAnnouncementRepo.On("FindAnnouncementByID", ctx, existing.AnnouncementID).Return(existing, nil).Once()
	suite.mockAnnouncementRepo.On("UpdateAnnouncement", ctx, mock.MatchedBy(func(a domain.Announcement) bool {
		return a.Title == "Judul Lama" && a.Body == req.Body
	})).Return(nil).Once()

	announcement, err := suite.service.UpdateAnnouncement(ctx, existing.AnnouncementID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(req.Body, announcement.Body)
	suite.mockNotifSvc.AssertNotCalled(suite.T(), "NotifyRoles", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AnnouncementServiceTestSuite) TestDeleteAnnouncement_NotFound() {
	ctx := context.Background()
	announcementID := uuid.NewString()

	suite.mockAnnouncementRepo.On("FindAnnouncementByID", ctx, announcementID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteAnnouncement(ctx, announcementID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockAnnouncementRepo.AssertNotCalled(suite.T(), "MarkAnnouncementDeleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAnnouncementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnnouncementServiceTestSuite))
}
