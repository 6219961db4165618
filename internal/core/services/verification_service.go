package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/wargakita/wargakita_backend/internal/apperrors"
	"github.com/wargakita/wargakita_backend/internal/core/domain"
	portsrepo "github.com/wargakita/wargakita_backend/internal/core/ports/repositories"
	portssvc "github.com/wargakita/wargakita_backend/internal/core/ports/services"
	"github.com/wargakita/wargakita_backend/internal/middleware"
	"github.com/wargakita/wargakita_backend/internal/utils"
)

// verificationService is the admin review step over submitted payments.
type verificationService struct {
	dueRepo         portsrepo.DueRepositoryFacade
	residentRepo    portsrepo.ResidentReader
	notificationSvc portssvc.NotificationSvcFacade
}

// NewVerificationService creates a new VerificationService.
func NewVerificationService(dueRepo portsrepo.DueRepositoryFacade, residentRepo portsrepo.ResidentReader, notificationSvc portssvc.NotificationSvcFacade) portssvc.VerificationSvcFacade {
	return &verificationService{
		dueRepo:         dueRepo,
		residentRepo:    residentRepo,
		notificationSvc: notificationSvc,
	}
}

var _ portssvc.VerificationSvcFacade = (*verificationService)(nil)

func (s *verificationService) loadForTransition(ctx context.Context, dueID string, next domain.DueStatus) (*domain.DueRecord, error) {
	due, err := s.dueRepo.FindDueByID(ctx, dueID)
	if err != nil {
		return nil, fmt.Errorf("failed to find due %s: %w", dueID, err)
	}
	if !due.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: due %s is %s and cannot move to %s",
			apperrors.ErrValidation, dueID, due.Status, next)
	}
	return due, nil
}

// notifyResident resolves the due's resident to a login account and sends the
// outcome there. Residents without a linked account just don't get one.
func (s *verificationService) notifyResident(ctx context.Context, due *domain.DueRecord, message string, category domain.NotificationCategory) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if due.ResidentID == "" {
		return
	}
	resident, err := s.residentRepo.FindResidentByID(ctx, due.ResidentID)
	if err != nil || resident.UserID == "" {
		logger.Warn("Verification outcome not delivered, resident has no linked account",
			slog.String("resident_id", due.ResidentID))
		return
	}
	if err := s.notificationSvc.NotifyUser(ctx, resident.UserID, message, category); err != nil {
		logger.Warn("Failed to notify resident of verification outcome",
			slog.String("user_id", resident.UserID), slog.String("error", err.Error()))
	}
}

func notifCategoryFor(kind domain.DueKind) domain.NotificationCategory {
	if kind == domain.KindWakaf {
		return domain.NotifWakaf
	}
	return domain.NotifIuran
}

// ApproveDue moves a PENDING_VERIFICATION record to PAID. PAID is terminal.
func (s *verificationService) ApproveDue(ctx context.Context, dueID string, actorUserID string) (*domain.DueRecord, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	due, err := s.loadForTransition(ctx, dueID, domain.StatusPaid)
	if err != nil {
		return nil, err
	}

	due.Status = domain.StatusPaid
	due.RejectionReason = ""
	due.LastUpdatedAt = time.Now().UTC()
	due.LastUpdatedBy = actorUserID
	if err := s.dueRepo.UpdateDue(ctx, *due); err != nil {
		return nil, fmt.Errorf("failed to approve due %s: %w", dueID, err)
	}

	message := fmt.Sprintf("Pembayaran %s sebesar %s telah diverifikasi. Terima kasih!",
		due.Category, utils.FormatRupiah(due.Amount))
	s.notifyResident(ctx, due, message, notifCategoryFor(due.Kind))

	logger.Info("Due approved", slog.String("due_id", due.DueID), slog.String("actor", actorUserID))
	return due, nil
}

// RejectDue reverts a PENDING_VERIFICATION record to BILL, recording the
// reason. A blank reason aborts the rejection with no state change.
func (s *verificationService) RejectDue(ctx context.Context, dueID string, reason string, actorUserID string) (*domain.DueRecord, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("%w: rejection requires a reason", apperrors.ErrValidation)
	}

	due, err := s.loadForTransition(ctx, dueID, domain.StatusBill)
	if err != nil {
		return nil, err
	}

	due.Status = domain.StatusBill
	due.RejectionReason = reason
	due.Method = ""
	due.ProofURL = ""
	due.LastUpdatedAt = time.Now().UTC()
	due.LastUpdatedBy = actorUserID
	if err := s.dueRepo.UpdateDue(ctx, *due); err != nil {
		return nil, fmt.Errorf("failed to reject due %s: %w", dueID, err)
	}

	message := fmt.Sprintf("Pembayaran %s sebesar %s ditolak: %s. Silakan ajukan ulang.",
		due.Category, utils.FormatRupiah(due.Amount), reason)
	s.notifyResident(ctx, due, message, notifCategoryFor(due.Kind))

	logger.Info("Due rejected",
		slog.String("due_id", due.DueID),
		slog.String("actor", actorUserID),
		slog.String("reason", reason))
	return due, nil
}
