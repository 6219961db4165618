package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wargakita/wargakita_backend/internal/apperrors"
	"github.com/wargakita/wargakita_backend/internal/core/domain"
	portsrepo "github.com/wargakita/wargakita_backend/internal/core/ports/repositories"
	portssvc "github.com/wargakita/wargakita_backend/internal/core/ports/services"
	"github.com/wargakita/wargakita_backend/internal/middleware"
)

// billingService issues the monthly dues bills.
type billingService struct {
	dueRepo      portsrepo.DueRepositoryFacade
	residentRepo portsrepo.ResidentReader
	tariff       decimal.Decimal
	category     string
}

// NewBillingService creates a new BillingService.
func NewBillingService(dueRepo portsrepo.DueRepositoryFacade, residentRepo portsrepo.ResidentReader, tariff decimal.Decimal, category string) portssvc.BillingSvcFacade {
	return &billingService{
		dueRepo:      dueRepo,
		residentRepo: residentRepo,
		tariff:       tariff,
		category:     category,
	}
}

var _ portssvc.BillingSvcFacade = (*billingService)(nil)

// GenerateBills creates one BILL record per active resident for the period,
// skipping residents that already have a record for it. Safe to re-run: a
// second invocation for the same period creates nothing.
func (s *billingService) GenerateBills(ctx context.Context, period domain.Period, actorUserID string) (int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !period.Valid() {
		return 0, fmt.Errorf("%w: invalid billing period %d/%d", apperrors.ErrValidation, period.Month, period.Year)
	}

	activeResidents, err := s.residentRepo.FindResidentsByStatus(ctx, domain.ResidentActive)
	if err != nil {
		logger.Error("Failed to list active residents for billing", slog.String("error", err.Error()))
		return 0, fmt.Errorf("failed to list active residents: %w", err)
	}

	alreadyBilled, err := s.dueRepo.FindBilledResidentIDs(ctx, s.category, period)
	if err != nil {
		logger.Error("Failed to load billed residents for period", slog.String("error", err.Error()))
		return 0, fmt.Errorf("failed to load billed residents: %w", err)
	}

	now := time.Now().UTC()
	p := period
	bills := make([]domain.DueRecord, 0, len(activeResidents))
	for _, resident := range activeResidents {
		if _, billed := alreadyBilled[resident.ResidentID]; billed {
			continue
		}
		bills = append(bills, domain.DueRecord{
			DueID:      uuid.NewString(),
			Date:       now,
			Direction:  domain.DirectionMasuk,
			Kind:       domain.KindIuran,
			Category:   s.category,
			Period:     &p,
			Amount:     s.tariff,
			ResidentID: resident.ResidentID,
			Status:     domain.StatusBill,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     actorUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: actorUserID,
			},
		})
	}

	if len(bills) == 0 {
		logger.Info("No new bills to generate for period",
			slog.Int("month", period.Month), slog.Int("year", period.Year))
		return 0, nil
	}

	if err := s.dueRepo.SaveDues(ctx, bills); err != nil {
		logger.Error("Failed to save generated bills", slog.String("error", err.Error()))
		return 0, fmt.Errorf("failed to save generated bills: %w", err)
	}

	logger.Info("Generated dues bills",
		slog.Int("month", period.Month),
		slog.Int("year", period.Year),
		slog.Int("created", len(bills)),
		slog.Int("skipped_already_billed", len(activeResidents)-len(bills)))
	return len(bills), nil
}
