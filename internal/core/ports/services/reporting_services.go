package services

import (
	"context"

	"github.com/wargakita/wargakita_backend/internal/core/domain"
)

// ReportingSvcFacade aggregates finance data for reports.
type ReportingSvcFacade interface {
	// GetFinanceSummary aggregates verified inflow and recorded outflow over an
	// inclusive period range.
	GetFinanceSummary(ctx context.Context, from, to domain.Period) (*domain.FinanceSummary, error)
}
