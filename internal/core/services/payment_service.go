package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wargakita/wargakita_backend/internal/apperrors"
	"github.com/wargakita/wargakita_backend/internal/core/domain"
	portsrepo "github.com/wargakita/wargakita_backend/internal/core/ports/repositories"
	portssvc "github.com/wargakita/wargakita_backend/internal/core/ports/services"
	"github.com/wargakita/wargakita_backend/internal/dto"
	"github.com/wargakita/wargakita_backend/internal/middleware"
	"github.com/wargakita/wargakita_backend/internal/utils"
)

// paymentService accepts resident dues payments and wakaf donations.
type paymentService struct {
	dueRepo         portsrepo.DueRepositoryFacade
	residentRepo    portsrepo.ResidentReader
	notificationSvc portssvc.NotificationSvcFacade
	tariff          decimal.Decimal
	category        string
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(dueRepo portsrepo.DueRepositoryFacade, residentRepo portsrepo.ResidentReader, notificationSvc portssvc.NotificationSvcFacade, tariff decimal.Decimal, category string) portssvc.PaymentSvcFacade {
	return &paymentService{
		dueRepo:         dueRepo,
		residentRepo:    residentRepo,
		notificationSvc: notificationSvc,
		tariff:          tariff,
		category:        category,
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// validateProof enforces the proof rule: every method except cash needs an
// uploaded proof reference.
func validateProof(method domain.PaymentMethod, proofURL string) error {
	if method != domain.MethodTunai && proofURL == "" {
		return fmt.Errorf("%w: payment method %s requires a proof upload", apperrors.ErrValidation, method)
	}
	return nil
}

// SubmitDuesPayment moves the resident's bills for the selected periods to
// PENDING_VERIFICATION. Periods with no existing bill get a new record created
// directly in PENDING_VERIFICATION, so residents can pay ahead of generation.
// A period whose record is already pending or paid fails the whole submission.
func (s *paymentService) SubmitDuesPayment(ctx context.Context, residentID string, req dto.SubmitDuesPaymentRequest) ([]domain.DueRecord, decimal.Decimal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	resident, err := s.residentRepo.FindResidentByID(ctx, residentID)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to find resident %s: %w", residentID, err)
	}

	method := domain.PaymentMethod(req.Method)
	if err := validateProof(method, req.ProofURL); err != nil {
		return nil, decimal.Zero, err
	}

	seen := make(map[domain.Period]struct{}, len(req.Periods))
	now := time.Now().UTC()
	submitted := make([]domain.DueRecord, 0, len(req.Periods))
	var toCreate []domain.DueRecord
	var toUpdate []domain.DueRecord

	for _, pd := range req.Periods {
		period := pd.ToPeriod()
		if !period.Valid() {
			return nil, decimal.Zero, fmt.Errorf("%w: invalid period %d/%d", apperrors.ErrValidation, period.Month, period.Year)
		}
		if _, dup := seen[period]; dup {
			return nil, decimal.Zero, fmt.Errorf("%w: period %d/%d listed twice", apperrors.ErrValidation, period.Month, period.Year)
		}
		seen[period] = struct{}{}

		existing, err := s.dueRepo.FindDueForPeriod(ctx, resident.ResidentID, s.category, period)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, decimal.Zero, fmt.Errorf("failed to look up due for period %d/%d: %w", period.Month, period.Year, err)
		}

		if existing != nil {
			if !existing.Status.CanTransitionTo(domain.StatusPendingVerification) {
				return nil, decimal.Zero, fmt.Errorf("%w: period %d/%d is already %s", apperrors.ErrValidation, period.Month, period.Year, existing.Status)
			}
			due := *existing
			due.Status = domain.StatusPendingVerification
			due.Method = method
			due.ProofURL = req.ProofURL
			due.Note = req.Note
			due.RejectionReason = ""
			due.LastUpdatedAt = now
			due.LastUpdatedBy = resident.UserID
			toUpdate = append(toUpdate, due)
			submitted = append(submitted, due)
			continue
		}

		p := period
		due := domain.DueRecord{
			DueID:      uuid.NewString(),
			Date:       now,
			Direction:  domain.DirectionMasuk,
			Kind:       domain.KindIuran,
			Category:   s.category,
			Period:     &p,
			Amount:     s.tariff,
			Note:       req.Note,
			ResidentID: resident.ResidentID,
			Method:     method,
			Status:     domain.StatusPendingVerification,
			ProofURL:   req.ProofURL,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     resident.UserID,
				LastUpdatedAt: now,
				LastUpdatedBy: resident.UserID,
			},
		}
		toCreate = append(toCreate, due)
		submitted = append(submitted, due)
	}

	for _, due := range toUpdate {
		if err := s.dueRepo.UpdateDue(ctx, due); err != nil {
			return nil, decimal.Zero, fmt.Errorf("failed to update due %s: %w", due.DueID, err)
		}
	}
	if len(toCreate) > 0 {
		if err := s.dueRepo.SaveDues(ctx, toCreate); err != nil {
			return nil, decimal.Zero, fmt.Errorf("failed to save submitted dues: %w", err)
		}
	}

	total := s.tariff.Mul(decimal.NewFromInt(int64(len(submitted))))

	message := fmt.Sprintf("%s mengajukan pembayaran %s untuk %d periode (%s), mohon diverifikasi.",
		resident.Name, s.category, len(submitted), utils.FormatRupiah(total))
	if _, err := s.notificationSvc.NotifyRoles(ctx, domain.AdminRoles, message, domain.NotifIuran); err != nil {
		logger.Warn("Payment submitted but admin notification failed", slog.String("error", err.Error()))
	}

	logger.Info("Dues payment submitted",
		slog.String("resident_id", resident.ResidentID),
		slog.Int("periods", len(submitted)),
		slog.String("total", total.String()))
	return submitted, total, nil
}

// SubmitDonation records a one-off wakaf donation. Donations have no bill
// phase: the record is born in PENDING_VERIFICATION.
func (s *paymentService) SubmitDonation(ctx context.Context, residentID string, req dto.SubmitDonationRequest) (*domain.DueRecord, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	resident, err := s.residentRepo.FindResidentByID(ctx, residentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find resident %s: %w", residentID, err)
	}

	method := domain.PaymentMethod(req.Method)
	if err := validateProof(method, req.ProofURL); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: donation amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	due := domain.DueRecord{
		DueID:      uuid.NewString(),
		Date:       now,
		Direction:  domain.DirectionMasuk,
		Kind:       domain.KindWakaf,
		Category:   req.Category,
		Amount:     req.Amount,
		Note:       req.Note,
		ResidentID: resident.ResidentID,
		Method:     method,
		Status:     domain.StatusPendingVerification,
		ProofURL:   req.ProofURL,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     resident.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: resident.UserID,
		},
	}
	if err := s.dueRepo.SaveDue(ctx, due); err != nil {
		return nil, fmt.Errorf("failed to save donation: %w", err)
	}

	message := fmt.Sprintf("%s mengajukan donasi %s sebesar %s, mohon diverifikasi.",
		resident.Name, req.Category, utils.FormatRupiah(req.Amount))
	if _, err := s.notificationSvc.NotifyRoles(ctx, domain.AdminRoles, message, domain.NotifWakaf); err != nil {
		logger.Warn("Donation submitted but admin notification failed", slog.String("error", err.Error()))
	}

	logger.Info("Donation submitted",
		slog.String("resident_id", resident.ResidentID),
		slog.String("category", req.Category),
		slog.String("amount", req.Amount.String()))
	return &due, nil
}
