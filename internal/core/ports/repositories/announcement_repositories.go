package repositories

import (
	"context"
	"time"

	"github.com/wargakita/wargakita_backend/internal/core/domain"
)

// AnnouncementRepositoryFacade defines persistence for announcements
type AnnouncementRepositoryFacade interface {
	// SaveAnnouncement persists a new announcement.
	SaveAnnouncement(ctx context.Context, announcement domain.Announcement) error

	// FindAnnouncementByID retrieves a specific announcement.
	FindAnnouncementByID(ctx context.Context, announcementID string) (*domain.Announcement, error)

	// FindAnnouncements retrieves a paginated list, newest first.
	FindAnnouncements(ctx context.Context, limit int, offset int) ([]domain.Announcement, error)

	// UpdateAnnouncement updates an existing announcement.
	UpdateAnnouncement(ctx context.Context, announcement domain.Announcement) error

	// MarkAnnouncementDeleted marks an announcement as deleted (soft delete).
	MarkAnnouncementDeleted(ctx context.Context, announcementID string, deletedAt time.Time, deletedBy string) error
}
