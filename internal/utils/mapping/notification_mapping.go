package mapping

import (
	"github.com/wargakita/wargakita_backend/internal/core/domain"
	"github.com/wargakita/wargakita_backend/internal/models"
)

// ToModelNotification converts a domain Notification to a model Notification
func ToModelNotification(d domain.Notification) models.Notification {
	return models.Notification{
		NotificationID: d.NotificationID,
		UserID:         d.UserID,
		Message:        d.Message,
		Category:       string(d.Category),
		Read:           d.Read,
		Date:           d.Date,
	}
}

// ToDomainNotification converts a model Notification to a domain Notification
func ToDomainNotification(m models.Notification) domain.Notification {
	return domain.Notification{
		NotificationID: m.NotificationID,
		UserID:         m.UserID,
		Message:        m.Message,
		Category:       domain.NotificationCategory(m.Category),
		Read:           m.Read,
		Date:           m.Date,
	}
}

// ToDomainNotificationSlice converts model Notifications to domain Notifications
func ToDomainNotificationSlice(ms []models.Notification) []domain.Notification {
	ds := make([]domain.Notification, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainNotification(m)
	}
	return ds
}
