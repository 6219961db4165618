package models

import "time"

// Notification is the row shape of the notifications table.
type Notification struct {
	NotificationID string    `db:"notification_id"`
	UserID         string    `db:"user_id"`
	Message        string    `db:"message"`
	Category       string    `db:"category"`
	Read           bool      `db:"read"`
	Date           time.Time `db:"date"`
}
