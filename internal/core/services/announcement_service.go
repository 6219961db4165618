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
	"github.com/wargakita/wargakita_backend/internal/dto"
	"github.com/wargakita/wargakita_backend/internal/middleware"
)

// announcementService manages community announcements.
type announcementService struct {
	announcementRepo portsrepo.AnnouncementRepositoryFacade
	notificationSvc  portssvc.NotificationSvcFacade
}

// NewAnnouncementService creates a new AnnouncementService.
func NewAnnouncementService(announcementRepo portsrepo.AnnouncementRepositoryFacade, notificationSvc portssvc.NotificationSvcFacade) portssvc.AnnouncementSvcFacade {
	return &announcementService{
		announcementRepo: announcementRepo,
		notificationSvc:  notificationSvc,
	}
}

var _ portssvc.AnnouncementSvcFacade = (*announcementService)(nil)

// CreateAnnouncement publishes an announcement and broadcasts a PENGUMUMAN
// notification to every registered user.
func (s *announcementService) CreateAnnouncement(ctx context.Context, req dto.CreateAnnouncementRequest, authorUserID string) (*domain.Announcement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	announcement := domain.Announcement{
		AnnouncementID: uuid.NewString(),
		Title:          req.Title,
		Body:           req.Body,
		PublishDate:    now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     authorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: authorUserID,
		},
	}
	if err := s.announcementRepo.SaveAnnouncement(ctx, announcement); err != nil {
		return nil, fmt.Errorf("failed to save announcement: %w", err)
	}

	message := fmt.Sprintf("Pengumuman baru: %s", req.Title)
	allRoles := []domain.UserRole{domain.RoleAdmin, domain.RolePengurus, domain.RoleWarga}
	if _, err := s.notificationSvc.NotifyRoles(ctx, allRoles, message, domain.NotifPengumuman); err != nil {
		logger.Warn("Announcement published but broadcast failed", slog.String("error", err.Error()))
	}

	logger.Info("Announcement published", slog.String("announcement_id", announcement.AnnouncementID))
	return &announcement, nil
}

// GetAnnouncementByID retrieves an announcement.
func (s *announcementService) GetAnnouncementByID(ctx context.Context, announcementID string) (*domain.Announcement, error) {
	announcement, err := s.announcementRepo.FindAnnouncementByID(ctx, announcementID)
	if err != nil {
		return nil, fmt.Errorf("failed to find announcement %s: %w", announcementID, err)
	}
	return announcement, nil
}

// ListAnnouncements retrieves a paginated list, newest first.
func (s *announcementService) ListAnnouncements(ctx context.Context, limit, offset int) ([]domain.Announcement, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	announcements, err := s.announcementRepo.FindAnnouncements(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	return announcements, nil
}

// UpdateAnnouncement edits an announcement. Edits do not re-broadcast.
func (s *announcementService) UpdateAnnouncement(ctx context.Context, announcementID string, req dto.UpdateAnnouncementRequest, updaterUserID string) (*domain.Announcement, error) {
	announcement, err := s.announcementRepo.FindAnnouncementByID(ctx, announcementID)
	if err != nil {
		return nil, fmt.Errorf("failed to find announcement %s: %w", announcementID, err)
	}

	if req.Title != "" {
		announcement.Title = req.Title
	}
	if req.Body != "" {
		announcement.Body = req.Body
	}
	announcement.LastUpdatedAt = time.Now().UTC()
	announcement.LastUpdatedBy = updaterUserID

	if err := s.announcementRepo.UpdateAnnouncement(ctx, *announcement); err != nil {
		return nil, fmt.Errorf("failed to update announcement %s: %w", announcementID, err)
	}
	return announcement, nil
}

// DeleteAnnouncement soft-deletes an announcement.
func (s *announcementService) DeleteAnnouncement(ctx context.Context, announcementID string, deleterUserID string) error {
	if _, err := s.announcementRepo.FindAnnouncementByID(ctx, announcementID); err != nil {
		return fmt.Errorf("failed to find announcement %s: %w", announcementID, err)
	}
	if err := s.announcementRepo.MarkAnnouncementDeleted(ctx, announcementID, time.Now().UTC(), deleterUserID); err != nil {
		return fmt.Errorf("failed to delete announcement %s: %w", announcementID, err)
	}
	return nil
}
