package models

import "time"

// Announcement is the row shape of the announcements table.
type Announcement struct {
	AnnouncementID string    `db:"announcement_id"`
	Title          string    `db:"title"`
	Body           string    `db:"body"`
	PublishDate    time.Time `db:"publish_date"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
