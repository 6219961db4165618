package domain

import "time"

// NotificationCategory tags a notification with the domain that produced it.
type NotificationCategory string

const (
	NotifIuran      NotificationCategory = "IURAN"
	NotifPengumuman NotificationCategory = "PENGUMUMAN"
	NotifSistem     NotificationCategory = "SISTEM"
	NotifWakaf      NotificationCategory = "WAKAF"
	NotifBansos     NotificationCategory = "BANSOS"
)

// Notification is an in-app notice for a single user. It is created by the
// fan-out service and mutated only by the recipient marking it read.
type Notification struct {
	NotificationID string               `json:"notificationID"` // Primary Key (UUID)
	UserID         string               `json:"userID"`
	Message        string               `json:"message"`
	Category       NotificationCategory `json:"category"`
	Read           bool                 `json:"read"`
	Date           time.Time            `json:"date"`
}
