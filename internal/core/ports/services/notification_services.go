package services

import (
	"context"

	"github.com/wargakita/wargakita_backend/internal/core/domain"
)

// NotificationSvcFacade is the in-app notification fan-out and inbox.
type NotificationSvcFacade interface {
	// NotifyRoles creates one unread notification per user whose role is in the
	// given set. A failure for one recipient is logged and does not roll back
	// the others. Returns the number of notifications created.
	NotifyRoles(ctx context.Context, roles []domain.UserRole, message string, category domain.NotificationCategory) (int, error)

	// NotifyUser creates one unread notification for a specific user.
	NotifyUser(ctx context.Context, userID string, message string, category domain.NotificationCategory) error

	// ListForUser retrieves a user's notifications, newest first.
	ListForUser(ctx context.Context, userID string, limit, offset int) ([]domain.Notification, error)

	// MarkRead marks a notification as read. Only the recipient may do this.
	MarkRead(ctx context.Context, notificationID string, userID string) error

	// UnreadCount returns the number of unread notifications for a user.
	UnreadCount(ctx context.Context, userID string) (int, error)
}
