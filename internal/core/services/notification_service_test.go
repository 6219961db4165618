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
)

type NotificationServiceTestSuite struct {
	suite.Suite
	mockNotifRepo *MockNotificationRepository
	mockUserRepo  *MockUserRepository
	service       portssvc.NotificationSvcFacade
}

func (suite *NotificationServiceTestSuite) SetupTest() {
	suite.mockNotifRepo = new(MockNotificationRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewNotificationService(suite.mockNotifRepo, suite.mockUserRepo)
}

func (suite *NotificationServiceTestSuite) TestNotifyRoles_Success() {
	ctx := context.Background()
	admin := domain.User{UserID: uuid.NewString(), Role: domain.RoleAdmin}
	pengurus := domain.User{UserID: uuid.NewString(), Role: domain.RolePengurus}
	message := "Ada pembayaran baru menunggu verifikasi."

	suite.mockUserRepo.On("FindUsersByRoles", ctx, domain.AdminRoles).
		Return([]domain.User{admin, pengurus}, nil).Once()
	suite.mockNotifRepo.On("SaveNotification", ctx, mock.MatchedBy(func(n domain.Notification) bool {
		return n.Message == message && !n.Read && n.Category == domain.NotifIuran &&
			(n.UserID == admin.UserID || n.UserID == pengurus.UserID)
	})).Return(nil).Twice()

	created, err := suite.service.NotifyRoles(ctx, domain.AdminRoles, message, domain.NotifIuran)

	suite.Require().NoError(err)
	suite.Equal(2, created)
	suite.mockNotifRepo.AssertExpectations(suite.T())
}

func (suite *NotificationServiceTestSuite) TestNotifyRoles_PartialFailure() {
	ctx := context.Background()
	good := domain.User{UserID: uuid.NewString(), Role: domain.RoleAdmin}
	bad := domain.User{UserID: uuid.NewString(), Role: domain.RolePengurus}

	suite.mockUserRepo.On("FindUsersByRoles", ctx, domain.AdminRoles).
		Return([]domain.User{good, bad}, nil).Once()
	suite.mockNotifRepo.On("SaveNotification", ctx, mock.MatchedBy(func(n domain.Notification) bool {
		return n.UserID == good.UserID
	})).Return(nil).Once()
	suite.mockNotifRepo.On("SaveNotification", ctx, mock.MatchedBy(func(n domain.Notification) bool {
		return n.UserID == bad.UserID
	})).Return(apperrors.ErrInternal).Once()

	created, err := suite.service.NotifyRoles(ctx, domain.AdminRoles, "pesan", domain.NotifSistem)

	// One failed delivery doesn't fail the fan-out.
	suite.Require().NoError(err)
	suite.Equal(1, created)
}

func (suite *NotificationServiceTestSuite) TestNotifyRoles_AudienceError() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUsersByRoles", ctx, domain.AdminRoles).
		Return(nil, apperrors.ErrInternal).Once()

	created, err := suite.service.NotifyRoles(ctx, domain.AdminRoles, "pesan", domain.NotifSistem)

	suite.Require().Error(err)
	suite.Zero(created)
	suite.mockNotifRepo.AssertNotCalled(suite.T(), "SaveNotification", mock.Anything, mock.Anything)
}

func (suite *NotificationServiceTestSuite) TestNotifyUser_Success() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockNotifRepo.On("SaveNotification", ctx, mock.MatchedBy(func(n domain.Notification) bool {
		return n.UserID == userID && n.Category == domain.NotifBansos && !n.Read && n.NotificationID != ""
	})).Return(nil).Once()

	err := suite.service.NotifyUser(ctx, userID, "Bantuan Anda sudah dijadwalkan.", domain.NotifBansos)

	suite.Require().NoError(err)
	suite.mockNotifRepo.AssertExpectations(suite.T())
}

func (suite *NotificationServiceTestSuite) TestMarkRead_NotFound() {
	ctx := context.Background()
	notificationID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockNotifRepo.On("MarkNotificationRead", ctx, notificationID, userID).
		Return(apperrors.ErrNotFound).Once()

	err := suite.service.MarkRead(ctx, notificationID, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *NotificationServiceTestSuite) TestUnreadCount_Success() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockNotifRepo.On("CountUnreadByUser", ctx, userID).Return(3, nil).Once()

	count, err := suite.service.UnreadCount(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(3, count)
}

func TestNotificationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}
