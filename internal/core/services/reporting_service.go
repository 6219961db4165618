package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/wargakita/wargakita_backend/internal/apperrors"
	"github.com/wargakita/wargakita_backend/internal/core/domain"
	portsrepo "github.com/wargakita/wargakita_backend/internal/core/ports/repositories"
	portssvc "github.com/wargakita/wargakita_backend/internal/core/ports/services"
)

// reportingService aggregates finance data for reports.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepositoryFacade
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepositoryFacade) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// GetFinanceSummary aggregates verified inflow and recorded outflow over an
// inclusive period range. Pending and unpaid bills are not income and are
// excluded by the underlying query.
func (s *reportingService) GetFinanceSummary(ctx context.Context, from, to domain.Period) (*domain.FinanceSummary, error) {
	if !from.Valid() || !to.Valid() {
		return nil, fmt.Errorf("%w: invalid report period range", apperrors.ErrValidation)
	}
	if from.Year > to.Year || (from.Year == to.Year && from.Month > to.Month) {
		return nil, fmt.Errorf("%w: report range start is after its end", apperrors.ErrValidation)
	}

	totals, err := s.reportingRepo.GetCategoryTotals(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate category totals: %w", err)
	}

	summary := domain.FinanceSummary{
		From:        from,
		To:          to,
		TotalMasuk:  decimal.Zero,
		TotalKeluar: decimal.Zero,
		ByCategory:  totals,
	}
	for _, row := range totals {
		switch row.Direction {
		case domain.DirectionMasuk:
			summary.TotalMasuk = summary.TotalMasuk.Add(row.Total)
		case domain.DirectionKeluar:
			summary.TotalKeluar = summary.TotalKeluar.Add(row.Total)
		}
	}
	summary.Balance = summary.TotalMasuk.Sub(summary.TotalKeluar)
	return &summary, nil
}
