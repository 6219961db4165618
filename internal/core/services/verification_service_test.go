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

type VerificationServiceTestSuite struct {
	suite.Suite
	mockDueRepo      *MockDueRepository
	mockResidentRepo *MockResidentRepository
	mockNotifSvc     *MockNotificationService
	service          portssvc.VerificationSvcFacade
}

func (suite *VerificationServiceTestSuite) SetupTest() {
	suite.mockDueRepo = new(MockDueRepository)
	suite.mockResidentRepo = new(MockResidentRepository)
	suite.mockNotifSvc = new(MockNotificationService)
	suite.service = services.NewVerificationService(suite.mockDueRepo, suite.mockResidentRepo, suite.mockNotifSvc)
}

func (suite *VerificationServiceTestSuite) pendingDue(residentID string) *domain.DueRecord {
	period := domain.Period{Month: 7, Year: 2025}
	return &domain.DueRecord{
		DueID:      uuid.NewString(),
		Direction:  domain.DirectionMasuk,
		Kind:       domain.KindIuran,
		Category:   "Iuran Bulanan",
		Period:     &period,
		Amount:     decimal.NewFromInt(50000),
		ResidentID: residentID,
		Method:     domain.MethodTransfer,
		ProofURL:   "https://bucket/bukti.jpg",
		Status:     domain.StatusPendingVerification,
	}
}

func (suite *VerificationServiceTestSuite) TestApproveDue_Success() {
	ctx := context.Background()
	actorID := uuid.NewString()
	resident := &domain.Resident{ResidentID: uuid.NewString(), UserID: uuid.NewString(), Name: "Budi"}
	pending := suite.pendingDue(resident.ResidentID)

	suite.mockDueRepo.On("FindDueByID", ctx, pending.DueID).Return(pending, nil).Once()
	suite.mockDueRepo.On("UpdateDue", ctx, mock.MatchedBy(func(due domain.DueRecord) bool {
		return due.DueID == pending.DueID &&
			due.Status == domain.StatusPaid &&
			due.RejectionReason == "" &&
			due.LastUpdatedBy == actorID
	})).Return(nil).Once()
	suite.mockResidentRepo.On("FindResidentByID", ctx, resident.ResidentID).Return(resident, nil).Once()
	suite.mockNotifSvc.On("NotifyUser", ctx, resident.UserID, mock.AnythingOfType("string"), domain.NotifIuran).Return(nil).Once()

	due, err := suite.service.ApproveDue(ctx, pending.DueID, actorID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPaid, due.Status)
	suite.mockDueRepo.AssertExpectations(suite.T())
	suite.mockNotifSvc.AssertExpectations(suite.T())
}

func (suite *VerificationServiceTestSuite) TestApproveDue_NotPending() {
	ctx := context.Background()
	bill := suite.pendingDue(uuid.NewString())
	bill.Status = domain.StatusBill

	suite.mockDueRepo.On("FindDueByID", ctx, bill.DueID).Return(bill, nil).Once()

	due, err := suite.service.ApproveDue(ctx, bill.DueID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(due)
	suite.mockDueRepo.AssertNotCalled(suite.T(), "UpdateDue", mock.Anything, mock.Anything)
}

func (suite *VerificationServiceTestSuite) TestApproveDue_PaidIsTerminal() {
	ctx := context.Background()
	paid := suite.pendingDue(uuid.NewString())
	paid.Status = domain.StatusPaid

	suite.mockDueRepo.On("FindDueByID", ctx, paid.DueID).Return(paid, nil).Twice()

	due, err := suite.service.ApproveDue(ctx, paid.DueID, uuid.NewString())
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(due)

	due, err = suite.service.RejectDue(ctx, paid.DueID, "late reversal attempt", uuid.NewString())
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(due)

	suite.mockDueRepo.AssertNotCalled(suite.T(), "UpdateDue", mock.Anything, mock.Anything)
}

func (suite *VerificationServiceTestSuite) TestApproveDue_NotFound() {
	ctx := context.Background()
	dueID := uuid.NewString()

	suite.mockDueRepo.On("FindDueByID", ctx, dueID).Return(nil, apperrors.ErrNotFound).Once()

	due, err := suite.service.ApproveDue(ctx, dueID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(due)
}

func (suite *VerificationServiceTestSuite) TestRejectDue_Success() {
	ctx := context.Background()
	actorID := uuid.NewString()
	resident := &domain.Resident{ResidentID: uuid.NewString(), UserID: uuid.NewString(), Name: "Siti"}
	pending := suite.pendingDue(resident.ResidentID)
	reason := "Bukti transfer tidak terbaca"

	suite.mockDueRepo.On("FindDueByID", ctx, pending.DueID).Return(pending, nil).Once()
	// Rejection reverts the record to BILL and clears the submission fields.
	suite.mockDueRepo.On("UpdateDue", ctx, mock.MatchedBy(func(due domain.DueRecord) bool {
		return due.DueID == pending.DueID &&
			due.Status == domain.StatusBill &&
			due.RejectionReason == reason &&
			due.Method == domain.PaymentMethod("") &&
			due.ProofURL == ""
	})).Return(nil).Once()
	suite.mockResidentRepo.On("FindResidentByID", ctx, resident.ResidentID).Return(resident, nil).Once()
	suite.mockNotifSvc.On("NotifyUser", ctx, resident.UserID, mock.MatchedBy(func(message string) bool {
		return message != ""
	}), domain.NotifIuran).Return(nil).Once()

	due, err := suite.service.RejectDue(ctx, pending.DueID, reason, actorID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusBill, due.Status)
	suite.Equal(reason, due.RejectionReason)
	suite.mockDueRepo.AssertExpectations(suite.T())
}

func (suite *VerificationServiceTestSuite) TestRejectDue_BlankReason() {
	ctx := context.Background()

	due, err := suite.service.RejectDue(ctx, uuid.NewString(), "   ", uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(due)
	suite.mockDueRepo.AssertNotCalled(suite.T(), "FindDueByID", mock.Anything, mock.Anything)
}

func (suite *VerificationServiceTestSuite) TestRejectDue_WakafUsesWakafCategory() {
	ctx := context.Background()
	resident := &domain.Resident{ResidentID: uuid.NewString(), UserID: uuid.NewString()}
	pending := suite.pendingDue(resident.ResidentID)
	pending.Kind = domain.KindWakaf
	pending.Period = nil

	suite.mockDueRepo.On("FindDueByID", ctx, pending.DueID).Return(pending, nil).Once()
	suite.mockDueRepo.On("UpdateDue", ctx, mock.AnythingOfType("domain.DueRecord")).Return(nil).Once()
	suite.mockResidentRepo.On("FindResidentByID", ctx, resident.ResidentID).Return(resident, nil).Once()
	suite.mockNotifSvc.On("NotifyUser", ctx, resident.UserID, mock.AnythingOfType("string"), domain.NotifWakaf).Return(nil).Once()

	_, err := suite.service.RejectDue(ctx, pending.DueID, "Nominal tidak sesuai", uuid.NewString())

	suite.Require().NoError(err)
	suite.mockNotifSvc.AssertExpectations(suite.T())
}

func (suite *VerificationServiceTestSuite) TestApproveDue_NoLinkedAccountSkipsNotification() {
	ctx := context.Background()
	resident := &domain.Resident{ResidentID: uuid.NewString(), UserID: ""}
	pending := suite.pendingDue(resident.ResidentID)

	suite.mockDueRepo.On("FindDueByID", ctx, pending.DueID).Return(pending, nil).Once()
	suite.mockDueRepo.On("UpdateDue", ctx, mock.AnythingOfType("domain.DueRecord")).Return(nil).Once()
	suite.mockResidentRepo.On("FindResidentByID", ctx, resident.ResidentID).Return(resident, nil).Once()

	due, err := suite.service.ApproveDue(ctx, pending.DueID, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPaid, due.Status)
	suite.mockNotifSvc.AssertNotCalled(suite.T(), "NotifyUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestVerificationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VerificationServiceTestSuite))
}
