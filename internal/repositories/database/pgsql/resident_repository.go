package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wargakita/wargakita_backend/internal/apperrors"
	"github.com/wargakita/wargakita_backend/internal/core/domain"
	portsrepo "github.com/wargakita/wargakita_backend/internal/core/ports/repositories"
	"github.com/wargakita/wargakita_backend/internal/models"
	"github.com/wargakita/wargakita_backend/internal/utils/mapping"
)

const residentColumns = `resident_id, user_id, nik, kk_number, name, address, house_number, phone, status,
	created_at, created_by, last_updated_at, last_updated_by, deleted_at`

type PgxResidentRepository struct {
	BaseRepository
}

func newPgxResidentRepository(db *pgxpool.Pool) portsrepo.ResidentRepositoryFacade {
	return &PgxResidentRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxResidentRepository implements portsrepo.ResidentRepositoryFacade
var _ portsrepo.ResidentRepositoryFacade = (*PgxResidentRepository)(nil)

func scanResident(row pgx.Row) (*models.Resident, error) {
	var m models.Resident
	err := row.Scan(
		&m.ResidentID,
		&m.UserID,
		&m.NIK,
		&m.KKNumber,
		&m.Name,
		&m.Address,
		&m.HouseNumber,
		&m.Phone,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxResidentRepository) SaveResident(ctx context.Context, resident domain.Resident) error {
	m := mapping.ToModelResident(resident)
	query := `
		INSERT INTO residents (resident_id, user_id, nik, kk_number, name, address, house_number, phone, status,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ResidentID,
		m.UserID,
		m.NIK,
		m.KKNumber,
		m.Name,
		m.Address,
		m.HouseNumber,
		m.Phone,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("resident already exists: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save resident: %w", err)
	}
	return nil
}

func (r *PgxResidentRepository) UpdateResident(ctx context.Context, resident domain.Resident) error {
	m := mapping.ToModelResident(resident)
	query := `
		UPDATE residents
		SET name = $2, address = $3, house_number = $4, phone = $5, status = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE resident_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ResidentID,
		m.Name,
		m.Address,
		m.HouseNumber,
		m.Phone,
		m.Status,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update resident %s: %w", resident.ResidentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxResidentRepository) FindResidentByID(ctx context.Context, residentID string) (*domain.Resident, error) {
	query := `SELECT ` + residentColumns + ` FROM residents WHERE resident_id = $1 AND deleted_at IS NULL;`
	m, err := scanResident(r.Pool.QueryRow(ctx, query, residentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find resident by ID %s: %w", residentID, err)
	}
	resident := mapping.ToDomainResident(*m)
	return &resident, nil
}

func (r *PgxResidentRepository) FindResidentByNIK(ctx context.Context, nik string) (*domain.Resident, error) {
	query := `SELECT ` + residentColumns + ` FROM residents WHERE nik = $1 AND deleted_at IS NULL;`
	m, err := scanResident(r.Pool.QueryRow(ctx, query, nik))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find resident by NIK: %w", err)
	}
	resident := mapping.ToDomainResident(*m)
	return &resident, nil
}

func (r *PgxResidentRepository) FindResidentByUserID(ctx context.Context, userID string) (*domain.Resident, error) {
	query := `SELECT ` + residentColumns + ` FROM residents WHERE user_id = $1 AND deleted_at IS NULL;`
	m, err := scanResident(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find resident for user %s: %w", userID, err)
	}
	resident := mapping.ToDomainResident(*m)
	return &resident, nil
}

func (r *PgxResidentRepository) FindResidents(ctx context.Context, limit int, offset int) ([]domain.Resident, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + residentColumns + ` FROM residents WHERE deleted_at IS NULL ORDER BY name LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to find residents: %w", err)
	}
	defer rows.Close()

	var ms []models.Resident
	for rows.Next() {
		m, err := scanResident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resident row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating resident rows: %w", err)
	}
	return mapping.ToDomainResidentSlice(ms), nil
}

func (r *PgxResidentRepository) FindResidentsByStatus(ctx context.Context, status domain.ResidentStatus) ([]domain.Resident, error) {
	query := `SELECT ` + residentColumns + ` FROM residents WHERE status = $1 AND deleted_at IS NULL ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to find residents by status: %w", err)
	}
	defer rows.Close()

	var ms []models.Resident
	for rows.Next() {
		m, err := scanResident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resident row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating resident rows: %w", err)
	}
	return mapping.ToDomainResidentSlice(ms), nil
}

func (r *PgxResidentRepository) MarkResidentDeleted(ctx context.Context, residentID string, deletedAt time.Time, deletedBy string) error {
	query := `
		UPDATE residents
		SET deleted_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE resident_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, residentID, deletedAt, deletedBy)
	if err != nil {
		return fmt.Errorf("failed to mark resident %s deleted: %w", residentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxResidentRepository) SavePopulationEvent(ctx context.Context, event domain.PopulationEvent) error {
	m := mapping.ToModelPopulationEvent(event)
	query := `
		INSERT INTO population_events (event_id, resident_id, event_type, event_date, note,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EventID,
		m.ResidentID,
		m.Type,
		m.EventDate,
		m.Note,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save population event: %w", err)
	}
	return nil
}

func (r *PgxResidentRepository) FindEventsByResident(ctx context.Context, residentID string) ([]domain.PopulationEvent, error) {
	query := `
		SELECT event_id, resident_id, event_type, event_date, note,
			created_at, created_by, last_updated_at, last_updated_by
		FROM population_events
		WHERE resident_id = $1
		ORDER BY event_date DESC;
	`
	rows, err := r.Pool.Query(ctx, query, residentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find population events: %w", err)
	}
	defer rows.Close()

	var ms []models.PopulationEvent
	for rows.Next() {
		var m models.PopulationEvent
		if err := rows.Scan(
			&m.EventID,
			&m.ResidentID,
			&m.Type,
			&m.EventDate,
			&m.Note,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan population event row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating population event rows: %w", err)
	}
	return mapping.ToDomainPopulationEventSlice(ms), nil
}
