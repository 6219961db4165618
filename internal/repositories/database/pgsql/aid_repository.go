package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wargakita/wargakita_backend/internal/apperrors"
	"github.com/wargakita/wargakita_backend/internal/core/domain"
	portsrepo "github.com/wargakita/wargakita_backend/internal/core/ports/repositories"
	"github.com/wargakita/wargakita_backend/internal/models"
	"github.com/wargakita/wargakita_backend/internal/utils/mapping"
)

const aidColumns = `aid_id, program_name, resident_id, description, date, status,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxAidRepository struct {
	BaseRepository
}

func newPgxAidRepository(db *pgxpool.Pool) portsrepo.AidRepositoryFacade {
	return &PgxAidRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxAidRepository implements portsrepo.AidRepositoryFacade
var _ portsrepo.AidRepositoryFacade = (*PgxAidRepository)(nil)

func scanAid(row pgx.Row) (*models.AidDistribution, error) {
	var m models.AidDistribution
	err := row.Scan(
		&m.AidID,
		&m.ProgramName,
		&m.ResidentID,
		&m.Description,
		&m.Date,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxAidRepository) SaveAidDistribution(ctx context.Context, aid domain.AidDistribution) error {
	m := mapping.ToModelAidDistribution(aid)
	query := `
		INSERT INTO aid_distributions (aid_id, program_name, resident_id, description, date, status,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AidID,
		m.ProgramName,
		m.ResidentID,
		m.Description,
		m.Date,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save aid distribution: %w", err)
	}
	return nil
}

func (r *PgxAidRepository) FindAidDistributionByID(ctx context.Context, aidID string) (*domain.AidDistribution, error) {
	query := `SELECT ` + aidColumns + ` FROM aid_distributions WHERE aid_id = $1;`
	m, err := scanAid(r.Pool.QueryRow(ctx, query, aidID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find aid distribution by ID %s: %w", aidID, err)
	}
	aid := mapping.ToDomainAidDistribution(*m)
	return &aid, nil
}

func (r *PgxAidRepository) FindAidDistributions(ctx context.Context, limit int, offset int) ([]domain.AidDistribution, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + aidColumns + ` FROM aid_distributions ORDER BY date DESC LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to find aid distributions: %w", err)
	}
	defer rows.Close()

	var ms []models.AidDistribution
	for rows.Next() {
		m, err := scanAid(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan aid distribution row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating aid distribution rows: %w", err)
	}
	return mapping.ToDomainAidDistributionSlice(ms), nil
}

func (r *PgxAidRepository) FindAidDistributionsByResident(ctx context.Context, residentID string) ([]domain.AidDistribution, error) {
	query := `SELECT ` + aidColumns + ` FROM aid_distributions WHERE resident_id = $1 ORDER BY date DESC;`
	rows, err := r.Pool.Query(ctx, query, residentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find aid distributions for resident: %w", err)
	}
	defer rows.Close()

	var ms []models.AidDistribution
	for rows.Next() {
		m, err := scanAid(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan aid distribution row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating aid distribution rows: %w", err)
	}
	return mapping.ToDomainAidDistributionSlice(ms), nil
}

func (r *PgxAidRepository) UpdateAidDistribution(ctx context.Context, aid domain.AidDistribution) error {
	m := mapping.ToModelAidDistribution(aid)
	query := `
		UPDATE aid_distributions
		SET program_name = $2, description = $3, date = $4, status = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE aid_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.AidID,
		m.ProgramName,
		m.Description,
		m.Date,
		m.Status,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update aid distribution %s: %w", aid.AidID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
