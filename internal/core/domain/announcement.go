package domain

import "time"

// Announcement is a community-wide notice (pengumuman) written by an admin.
type Announcement struct {
	AnnouncementID string    `json:"announcementID"` // Primary Key (UUID)
	Title          string    `json:"title"`
	Body           string    `json:"body"`
	PublishDate    time.Time `json:"publishDate"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
