package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wargakita/wargakita_backend/internal/apperrors"
	"github.com/wargakita/wargakita_backend/internal/core/domain"
	portsrepo "github.com/wargakita/wargakita_backend/internal/core/ports/repositories"
	"github.com/wargakita/wargakita_backend/internal/models"
	"github.com/wargakita/wargakita_backend/internal/utils/mapping"
)

const dueColumns = `due_id, date, direction, kind, category, period_month, period_year, amount, note,
	resident_id, method, status, proof_url, rejection_reason,
	created_at, created_by, last_updated_at, last_updated_by`

const dueInsertQuery = `
	INSERT INTO due_records (due_id, date, direction, kind, category, period_month, period_year, amount, note,
		resident_id, method, status, proof_url, rejection_reason,
		created_at, created_by, last_updated_at, last_updated_by)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
`

type PgxDueRepository struct {
	BaseRepository
}

func newPgxDueRepository(db *pgxpool.Pool) portsrepo.DueRepositoryFacade {
	return &PgxDueRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxDueRepository implements portsrepo.DueRepositoryFacade
var _ portsrepo.DueRepositoryFacade = (*PgxDueRepository)(nil)

func scanDue(row pgx.Row) (*models.DueRecord, error) {
	var m models.DueRecord
	err := row.Scan(
		&m.DueID,
		&m.Date,
		&m.Direction,
		&m.Kind,
		&m.Category,
		&m.PeriodMonth,
		&m.PeriodYear,
		&m.Amount,
		&m.Note,
		&m.ResidentID,
		&m.Method,
		&m.Status,
		&m.ProofURL,
		&m.RejectionReason,
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

func dueInsertArgs(m models.DueRecord) []any {
	return []any{
		m.DueID,
		m.Date,
		m.Direction,
		m.Kind,
		m.Category,
		m.PeriodMonth,
		m.PeriodYear,
		m.Amount,
		m.Note,
		m.ResidentID,
		m.Method,
		m.Status,
		m.ProofURL,
		m.RejectionReason,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	}
}

func (r *PgxDueRepository) SaveDue(ctx context.Context, due domain.DueRecord) error {
	m := mapping.ToModelDueRecord(due)
	_, err := r.Pool.Exec(ctx, dueInsertQuery, dueInsertArgs(m)...)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("due record for this period already exists: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save due record: %w", err)
	}
	return nil
}

// SaveDues inserts a batch of due records in one transaction. The partial
// unique index on (resident_id, category, period) makes double billing a
// constraint violation rather than silent duplication.
func (r *PgxDueRepository) SaveDues(ctx context.Context, dues []domain.DueRecord) error {
	if len(dues) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	batch := &pgx.Batch{}
	for _, due := range dues {
		batch.Queue(dueInsertQuery, dueInsertArgs(mapping.ToModelDueRecord(due))...)
	}

	br := tx.SendBatch(ctx, batch)
	for range dues {
		if _, err := br.Exec(); err != nil {
			br.Close()
			if isUniqueViolation(err) {
				return fmt.Errorf("due record for this period already exists: %w", apperrors.ErrDuplicate)
			}
			return fmt.Errorf("failed to batch insert due records: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close due batch: %w", err)
	}

	return r.Commit(ctx, tx)
}

// UpdateDue rewrites the mutable fields of a due record in place. The row
// keeps its identity through every status change.
func (r *PgxDueRepository) UpdateDue(ctx context.Context, due domain.DueRecord) error {
	m := mapping.ToModelDueRecord(due)
	query := `
		UPDATE due_records
		SET status = $2, method = $3, proof_url = $4, rejection_reason = $5, note = $6, amount = $7,
			last_updated_at = $8, last_updated_by = $9
		WHERE due_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.DueID,
		m.Status,
		m.Method,
		m.ProofURL,
		m.RejectionReason,
		m.Note,
		m.Amount,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update due record %s: %w", due.DueID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxDueRepository) FindDueByID(ctx context.Context, dueID string) (*domain.DueRecord, error) {
	query := `SELECT ` + dueColumns + ` FROM due_records WHERE due_id = $1;`
	m, err := scanDue(r.Pool.QueryRow(ctx, query, dueID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find due record by ID %s: %w", dueID, err)
	}
	due := mapping.ToDomainDueRecord(*m)
	return &due, nil
}

func (r *PgxDueRepository) FindDueForPeriod(ctx context.Context, residentID, category string, period domain.Period) (*domain.DueRecord, error) {
	query := `
		SELECT ` + dueColumns + `
		FROM due_records
		WHERE resident_id = $1 AND category = $2 AND period_month = $3 AND period_year = $4;
	`
	m, err := scanDue(r.Pool.QueryRow(ctx, query, residentID, category, period.Month, period.Year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find due record for period %d/%d: %w", period.Month, period.Year, err)
	}
	due := mapping.ToDomainDueRecord(*m)
	return &due, nil
}

func (r *PgxDueRepository) FindBilledResidentIDs(ctx context.Context, category string, period domain.Period) (map[string]struct{}, error) {
	query := `
		SELECT resident_id
		FROM due_records
		WHERE category = $1 AND period_month = $2 AND period_year = $3 AND resident_id IS NOT NULL;
	`
	rows, err := r.Pool.Query(ctx, query, category, period.Month, period.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to find billed residents: %w", err)
	}
	defer rows.Close()

	billed := make(map[string]struct{})
	for rows.Next() {
		var residentID string
		if err := rows.Scan(&residentID); err != nil {
			return nil, fmt.Errorf("failed to scan billed resident row: %w", err)
		}
		billed[residentID] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating billed resident rows: %w", err)
	}
	return billed, nil
}

func (r *PgxDueRepository) FindDues(ctx context.Context, filter portsrepo.DueListFilter) ([]domain.DueRecord, error) {
	var conditions []string
	var args []any

	addCondition := func(column string, value any) {
		args = append(args, value)
		conditions = append(conditions, column+" = $"+strconv.Itoa(len(args)))
	}
	if filter.ResidentID != "" {
		addCondition("resident_id", filter.ResidentID)
	}
	if filter.Status != "" {
		addCondition("status", string(filter.Status))
	}
	if filter.Kind != "" {
		addCondition("kind", string(filter.Kind))
	}

	query := `SELECT ` + dueColumns + ` FROM due_records`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	args = append(args, limit)
	query += " ORDER BY date DESC, due_id LIMIT $" + strconv.Itoa(len(args))
	args = append(args, offset)
	query += " OFFSET $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find due records: %w", err)
	}
	defer rows.Close()

	var ms []models.DueRecord
	for rows.Next() {
		m, err := scanDue(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan due record row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating due record rows: %w", err)
	}
	return mapping.ToDomainDueRecordSlice(ms), nil
}
