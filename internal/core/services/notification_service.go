package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/wargakita/wargakita_backend/internal/core/domain"
	portsrepo "github.com/wargakita/wargakita_backend/internal/core/ports/repositories"
	portssvc "github.com/wargakita/wargakita_backend/internal/core/ports/services"
	"github.com/wargakita/wargakita_backend/internal/middleware"
)

// notificationService implements in-app notification fan-out and the inbox.
type notificationService struct {
	notificationRepo portsrepo.NotificationRepositoryFacade
	userRepo         portsrepo.UserReader
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(notificationRepo portsrepo.NotificationRepositoryFacade, userRepo portsrepo.UserReader) portssvc.NotificationSvcFacade {
	return &notificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
	}
}

var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

// NotifyRoles creates one unread notification per user whose role is in the
// given set. Fan-out is synchronous; a failure for one recipient is logged and
// skipped, the remaining notifications are still created.
func (s *notificationService) NotifyRoles(ctx context.Context, roles []domain.UserRole, message string, category domain.NotificationCategory) (int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	recipients, err := s.userRepo.FindUsersByRoles(ctx, roles)
	if err != nil {
		logger.Error("Failed to resolve notification audience", slog.String("error", err.Error()))
		return 0, fmt.Errorf("failed to resolve notification audience: %w", err)
	}

	created := 0
	for _, recipient := range recipients {
		notification := domain.Notification{
			NotificationID: uuid.NewString(),
			UserID:         recipient.UserID,
			Message:        message,
			Category:       category,
			Read:           false,
			Date:           time.Now().UTC(),
		}
		if err := s.notificationRepo.SaveNotification(ctx, notification); err != nil {
			logger.Warn("Failed to deliver notification to recipient, continuing",
				slog.String("recipient_user_id", recipient.UserID),
				slog.String("error", err.Error()))
			continue
		}
		created++
	}

	logger.Info("Notification fan-out complete",
		slog.String("category", string(category)),
		slog.Int("recipients", len(recipients)),
		slog.Int("created", created))
	return created, nil
}

// NotifyUser creates one unread notification for a specific user.
func (s *notificationService) NotifyUser(ctx context.Context, userID string, message string, category domain.NotificationCategory) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	notification := domain.Notification{
		NotificationID: uuid.NewString(),
		UserID:         userID,
		Message:        message,
		Category:       category,
		Read:           false,
		Date:           time.Now().UTC(),
	}
	if err := s.notificationRepo.SaveNotification(ctx, notification); err != nil {
		logger.Error("Failed to save notification", slog.String("target_user_id", userID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to save notification: %w", err)
	}
	return nil
}

// ListForUser retrieves a user's notifications, newest first.
func (s *notificationService) ListForUser(ctx context.Context, userID string, limit, offset int) ([]domain.Notification, error) {
	notifications, err := s.notificationRepo.FindNotificationsByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead marks a notification as read. The repository enforces that only the
// recipient may do this.
func (s *notificationService) MarkRead(ctx context.Context, notificationID string, userID string) error {
	if err := s.notificationRepo.MarkNotificationRead(ctx, notificationID, userID); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

// UnreadCount returns the number of unread notifications for a user.
func (s *notificationService) UnreadCount(ctx context.Context, userID string) (int, error) {
	count, err := s.notificationRepo.CountUnreadByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}
