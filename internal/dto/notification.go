package dto

import (
	"time"

	"github.com/wargakita/wargakita_backend/internal/core/domain"
)

// ListNotificationsParams are the query parameters for listing notifications.
type ListNotificationsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// NotificationResponse is the public shape of a notification.
type NotificationResponse struct {
	NotificationID string    `json:"notificationID"`
	Message        string    `json:"message"`
	Category       string    `json:"category"`
	Read           bool      `json:"read"`
	Date           time.Time `json:"date"`
}

// ToNotificationResponse converts a domain Notification to its DTO.
func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		NotificationID: n.NotificationID,
		Message:        n.Message,
		Category:       string(n.Category),
		Read:           n.Read,
		Date:           n.Date,
	}
}

// ListNotificationsResponse wraps a page of notifications.
type ListNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

// UnreadCountResponse reports how many notifications are unread.
type UnreadCountResponse struct {
	Unread int `json:"unread"`
}
