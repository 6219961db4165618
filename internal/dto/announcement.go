package dto

import (
	"time"

	"github.com/wargakita/wargakita_backend/internal/core/domain"
)

// CreateAnnouncementRequest is the payload for publishing an announcement.
type CreateAnnouncementRequest struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body" binding:"required"`
}

// UpdateAnnouncementRequest is the payload for editing an announcement.
type UpdateAnnouncementRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// ListAnnouncementsParams are the query parameters for listing announcements.
type ListAnnouncementsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// AnnouncementResponse is the public shape of an announcement.
type AnnouncementResponse struct {
	AnnouncementID string    `json:"announcementID"`
	Title          string    `json:"title"`
	Body           string    `json:"body"`
	PublishDate    time.Time `json:"publishDate"`
}

// ToAnnouncementResponse converts a domain Announcement to its DTO.
func ToAnnouncementResponse(a *domain.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		AnnouncementID: a.AnnouncementID,
		Title:          a.Title,
		Body:           a.Body,
		PublishDate:    a.PublishDate,
	}
}

// ListAnnouncementsResponse wraps a page of announcements.
type ListAnnouncementsResponse struct {
	Announcements []AnnouncementResponse `json:"announcements"`
}
