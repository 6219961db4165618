package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wargakita/wargakita_backend/internal/apperrors"
	"github.com/wargakita/wargakita_backend/internal/core/domain"
	portsrepo "github.com/wargakita/wargakita_backend/internal/core/ports/repositories"
	"github.com/wargakita/wargakita_backend/internal/models"
	"github.com/wargakita/wargakita_backend/internal/utils/mapping"
)

type PgxNotificationRepository struct {
	BaseRepository
}

func newPgxNotificationRepository(db *pgxpool.Pool) portsrepo.NotificationRepositoryFacade {
	return &PgxNotificationRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxNotificationRepository implements portsrepo.NotificationRepositoryFacade
var _ portsrepo.NotificationRepositoryFacade = (*PgxNotificationRepository)(nil)

func (r *PgxNotificationRepository) SaveNotification(ctx context.Context, notification domain.Notification) error {
	m := mapping.ToModelNotification(notification)
	query := `
		INSERT INTO notifications (notification_id, user_id, message, category, read, date)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.NotificationID,
		m.UserID,
		m.Message,
		m.Category,
		m.Read,
		m.Date,
	)
	if err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}
	return nil
}

// MarkNotificationRead flips the read flag. The user_id predicate keeps the
// recipient-only rule in the query itself: a non-recipient gets ErrNotFound.
func (r *PgxNotificationRepository) MarkNotificationRead(ctx context.Context, notificationID string, userID string) error {
	query := `UPDATE notifications SET read = TRUE WHERE notification_id = $1 AND user_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, notificationID, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notification %s read: %w", notificationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxNotificationRepository) FindNotificationsByUser(ctx context.Context, userID string, limit int, offset int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `
		SELECT notification_id, user_id, message, category, read, date
		FROM notifications
		WHERE user_id = $1
		ORDER BY date DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to find notifications: %w", err)
	}
	defer rows.Close()

	var ms []models.Notification
	for rows.Next() {
		var m models.Notification
		if err := rows.Scan(
			&m.NotificationID,
			&m.UserID,
			&m.Message,
			&m.Category,
			&m.Read,
			&m.Date,
		); err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating notification rows: %w", err)
	}
	return mapping.ToDomainNotificationSlice(ms), nil
}

func (r *PgxNotificationRepository) CountUnreadByUser(ctx context.Context, userID string) (int, error) {
	query := `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND read = FALSE;`
	var count int
	if err := r.Pool.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}
