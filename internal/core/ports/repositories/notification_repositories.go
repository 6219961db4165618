package repositories

import (
	"context"

	"github.com/wargakita/wargakita_backend/internal/core/domain"
)

// NotificationWriter defines write operations for notifications
type NotificationWriter interface {
	// SaveNotification persists a single notification.
	SaveNotification(ctx context.Context, notification domain.Notification) error

	// MarkNotificationRead sets the read flag. The userID must match the
	// recipient; only the recipient may mutate a notification.
	MarkNotificationRead(ctx context.Context, notificationID string, userID string) error
}

// NotificationReader defines read operations for notifications
type NotificationReader interface {
	// FindNotificationsByUser retrieves a user's notifications, newest first.
	FindNotificationsByUser(ctx context.Context, userID string, limit int, offset int) ([]domain.Notification, error)

	// CountUnreadByUser returns the number of unread notifications for a user.
	CountUnreadByUser(ctx context.Context, userID string) (int, error)
}

// NotificationRepositoryFacade combines all notification repository interfaces
type NotificationRepositoryFacade interface {
	NotificationWriter
	NotificationReader
}
