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

const announcementColumns = `announcement_id, title, body, publish_date,
	created_at, created_by, last_updated_at, last_updated_by, deleted_at`

type PgxAnnouncementRepository struct {
	BaseRepository
}

func newPgxAnnouncementRepository(db *pgxpool.Pool) portsrepo.AnnouncementRepositoryFacade {
	return &PgxAnnouncementRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxAnnouncementRepository implements portsrepo.AnnouncementRepositoryFacade
var _ portsrepo.AnnouncementRepositoryFacade = (*PgxAnnouncementRepository)(nil)

func scanAnnouncement(row pgx.Row) (*models.Announcement, error) {
	var m models.Announcement
	err := row.Scan(
		&m.AnnouncementID,
		&m.Title,
		&m.Body,
		&m.PublishDate,
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

func (r *PgxAnnouncementRepository) SaveAnnouncement(ctx context.Context, announcement domain.Announcement) error {
	m := mapping.ToModelAnnouncement(announcement)
	query := `
		INSERT INTO announcements (announcement_id, title, body, publish_date,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AnnouncementID,
		m.Title,
		m.Body,
		m.PublishDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save announcement: %w", err)
	}
	return nil
}

func (r *PgxAnnouncementRepository) FindAnnouncementByID(ctx context.Context, announcementID string) (*domain.Announcement, error) {
	query := `SELECT ` + announcementColumns + ` FROM announcements WHERE announcement_id = $1 AND deleted_at IS NULL;`
	m, err := scanAnnouncement(r.Pool.QueryRow(ctx, query, announcementID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find announcement by ID %s: %w", announcementID, err)
	}
	announcement := mapping.ToDomainAnnouncement(*m)
	return &announcement, nil
}

func (r *PgxAnnouncementRepository) FindAnnouncements(ctx context.Context, limit int, offset int) ([]domain.Announcement, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `
		SELECT ` + announcementColumns + `
		FROM announcements
		WHERE deleted_at IS NULL
		ORDER BY publish_date DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to find announcements: %w", err)
	}
	defer rows.Close()

	var ms []models.Announcement
	for rows.Next() {
		m, err := scanAnnouncement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan announcement row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating announcement rows: %w", err)
	}
	return mapping.ToDomainAnnouncementSlice(ms), nil
}

func (r *PgxAnnouncementRepository) UpdateAnnouncement(ctx context.Context, announcement domain.Announcement) error {
	m := mapping.ToModelAnnouncement(announcement)
	query := `
		UPDATE announcements
		SET title = $2, body = $3, last_updated_at = $4, last_updated_by = $5
		WHERE announcement_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.AnnouncementID,
		m.Title,
		m.Body,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update announcement %s: %w", announcement.AnnouncementID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxAnnouncementRepository) MarkAnnouncementDeleted(ctx context.Context, announcementID string, deletedAt time.Time, deletedBy string) error {
	query := `
		UPDATE announcements
		SET deleted_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE announcement_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, announcementID, deletedAt, deletedBy)
	if err != nil {
		return fmt.Errorf("failed to mark announcement %s deleted: %w", announcementID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
