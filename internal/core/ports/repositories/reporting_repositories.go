package repositories

import (
	"context"

	"github.com/wargakita/wargakita_backend/internal/core/domain"
)

// ReportingRepositoryFacade defines the aggregate queries behind finance reports
type ReportingRepositoryFacade interface {
	// GetCategoryTotals aggregates finalized amounts per (category, direction)
	// over an inclusive period range. Only PAID inflow counts; outflow rows are
	// admin-recorded and count as-is.
	GetCategoryTotals(ctx context.Context, from, to domain.Period) ([]domain.CategoryTotal, error)
}
