package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/wargakita/wargakita_backend/internal/apperrors"
	"github.com/wargakita/wargakita_backend/internal/core/domain"
	portsrepo "github.com/wargakita/wargakita_backend/internal/core/ports/repositories"
	portssvc "github.com/wargakita/wargakita_backend/internal/core/ports/services"
	"github.com/wargakita/wargakita_backend/internal/dto"
	"github.com/wargakita/wargakita_backend/internal/middleware"
)

// aidService tracks social-aid (bansos) distributions.
type aidService struct {
	aidRepo         portsrepo.AidRepositoryFacade
	residentRepo    portsrepo.ResidentReader
	notificationSvc portssvc.NotificationSvcFacade
}

// NewAidService creates a new AidService.
func NewAidService(aidRepo portsrepo.AidRepositoryFacade, residentRepo portsrepo.ResidentReader, notificationSvc portssvc.NotificationSvcFacade) portssvc.AidSvcFacade {
	return &aidService{
		aidRepo:         aidRepo,
		residentRepo:    residentRepo,
		notificationSvc: notificationSvc,
	}
}

var _ portssvc.AidSvcFacade = (*aidService)(nil)

// notifyBeneficiary delivers an aid notification to the resident's linked
// account, if they have one.
func (s *aidService) notifyBeneficiary(ctx context.Context, resident *domain.Resident, message string) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if resident.UserID == "" {
		return
	}
	if err := s.notificationSvc.NotifyUser(ctx, resident.UserID, message, domain.NotifBansos); err != nil {
		logger.Warn("Failed to notify aid beneficiary",
			slog.String("user_id", resident.UserID), slog.String("error", err.Error()))
	}
}

// ScheduleAid records a planned distribution and notifies the beneficiary.
func (s *aidService) ScheduleAid(ctx context.Context, req dto.ScheduleAidRequest, actorUserID string) (*domain.AidDistribution, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	resident, err := s.residentRepo.FindResidentByID(ctx, req.ResidentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find beneficiary %s: %w", req.ResidentID, err)
	}

	now := time.Now().UTC()
	aid := domain.AidDistribution{
		AidID:       uuid.NewString(),
		ProgramName: req.ProgramName,
		ResidentID:  resident.ResidentID,
		Description: req.Description,
		Date:        req.Date,
		Status:      domain.AidScheduled,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	}
	if err := s.aidRepo.SaveAidDistribution(ctx, aid); err != nil {
		return nil, fmt.Errorf("failed to save aid distribution: %w", err)
	}

	message := fmt.Sprintf("Anda terdaftar menerima bantuan %s (%s) pada %s.",
		req.ProgramName, req.Description, req.Date.Format("02-01-2006"))
	s.notifyBeneficiary(ctx, resident, message)

	logger.Info("Aid distribution scheduled",
		slog.String("aid_id", aid.AidID),
		slog.String("resident_id", resident.ResidentID),
		slog.String("program", req.ProgramName))
	return &aid, nil
}

// GetAidByID retrieves a distribution record.
func (s *aidService) GetAidByID(ctx context.Context, aidID string) (*domain.AidDistribution, error) {
	aid, err := s.aidRepo.FindAidDistributionByID(ctx, aidID)
	if err != nil {
		return nil, fmt.Errorf("failed to find aid distribution %s: %w", aidID, err)
	}
	return aid, nil
}

// ListAid retrieves a paginated list of distributions.
func (s *aidService) ListAid(ctx context.Context, limit, offset int) ([]domain.AidDistribution, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	distributions, err := s.aidRepo.FindAidDistributions(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list aid distributions: %w", err)
	}
	return distributions, nil
}

// MarkDistributed transitions a SCHEDULED record to DISTRIBUTED and notifies
// the beneficiary that the aid was handed out.
func (s *aidService) MarkDistributed(ctx context.Context, aidID string, actorUserID string) (*domain.AidDistribution, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	aid, err := s.aidRepo.FindAidDistributionByID(ctx, aidID)
	if err != nil {
		return nil, fmt.Errorf("failed to find aid distribution %s: %w", aidID, err)
	}
	if aid.Status != domain.AidScheduled {
		return nil, fmt.Errorf("%w: aid %s is already %s", apperrors.ErrValidation, aidID, aid.Status)
	}

	aid.Status = domain.AidDistributed
	aid.LastUpdatedAt = time.Now().UTC()
	aid.LastUpdatedBy = actorUserID
	if err := s.aidRepo.UpdateAidDistribution(ctx, *aid); err != nil {
		return nil, fmt.Errorf("failed to update aid distribution %s: %w", aidID, err)
	}

	if resident, err := s.residentRepo.FindResidentByID(ctx, aid.ResidentID); err == nil {
		message := fmt.Sprintf("Bantuan %s (%s) telah disalurkan.", aid.ProgramName, aid.Description)
		s.notifyBeneficiary(ctx, resident, message)
	}

	logger.Info("Aid distribution completed", slog.String("aid_id", aid.AidID), slog.String("actor", actorUserID))
	return aid, nil
}
