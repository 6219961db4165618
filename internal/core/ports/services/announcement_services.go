package services

import (
	"context"

	"github.com/wargakita/wargakita_backend/internal/core/domain"
	"github.com/wargakita/wargakita_backend/internal/dto"
)

// AnnouncementSvcFacade manages community announcements.
type AnnouncementSvcFacade interface {
	// CreateAnnouncement publishes an announcement and fans out a PENGUMUMAN
	// notification to every user linked to an active resident.
	CreateAnnouncement(ctx context.Context, req dto.CreateAnnouncementRequest, authorUserID string) (*domain.Announcement, error)

	// GetAnnouncementByID retrieves an announcement.
	GetAnnouncementByID(ctx context.Context, announcementID string) (*domain.Announcement, error)

	// ListAnnouncements retrieves a paginated list, newest first.
	ListAnnouncements(ctx context.Context, limit, offset int) ([]domain.Announcement, error)

	// UpdateAnnouncement edits an announcement. No re-broadcast on edit.
	UpdateAnnouncement(ctx context.Context, announcementID string, req dto.UpdateAnnouncementRequest, updaterUserID string) (*domain.Announcement, error)

	// DeleteAnnouncement soft-deletes an announcement.
	DeleteAnnouncement(ctx context.Context, announcementID string, deleterUserID string) error
}
