package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wargakita/wargakita_backend/internal/core/domain"
	portsrepo "github.com/wargakita/wargakita_backend/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepositoryFacade {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxReportingRepository implements portsrepo.ReportingRepositoryFacade
var _ portsrepo.ReportingRepositoryFacade = (*PgxReportingRepository)(nil)

// GetCategoryTotals sums finalized amounts per (category, direction) over an
// inclusive period range. Inflow counts only PAID rows; outflow rows are
// admin-recorded facts and count regardless of status. Rows without a billing
// period (donations, general records) fall back to their transaction date.
func (r *PgxReportingRepository) GetCategoryTotals(ctx context.Context, from, to domain.Period) ([]domain.CategoryTotal, error) {
	query := `
		SELECT category, direction, SUM(amount) AS total
		FROM due_records
		WHERE ((direction = 'MASUK' AND status = 'PAID') OR direction = 'KELUAR')
		  AND (COALESCE(period_year, EXTRACT(YEAR FROM date)::INT) * 100
		       + COALESCE(period_month, EXTRACT(MONTH FROM date)::INT)) BETWEEN $1 AND $2
		GROUP BY category, direction
		ORDER BY category, direction;
	`
	fromKey := from.Year*100 + from.Month
	toKey := to.Year*100 + to.Month

	rows, err := r.Pool.Query(ctx, query, fromKey, toKey)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate category totals: %w", err)
	}
	defer rows.Close()

	var totals []domain.CategoryTotal
	for rows.Next() {
		var row domain.CategoryTotal
		var direction string
		if err := rows.Scan(&row.Category, &direction, &row.Total); err != nil {
			return nil, fmt.Errorf("failed to scan category total row: %w", err)
		}
		row.Direction = domain.DueDirection(direction)
		totals = append(totals, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating category total rows: %w", err)
	}
	return totals, nil
}
