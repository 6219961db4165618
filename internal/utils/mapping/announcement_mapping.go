package mapping

import (
	"github.com/wargakita/wargakita_backend/internal/core/domain"
	"github.com/wargakita/wargakita_backend/internal/models"
)

// ToModelAnnouncement converts a domain Announcement to a model Announcement
func ToModelAnnouncement(d domain.Announcement) models.Announcement {
	return models.Announcement{
		AnnouncementID: d.AnnouncementID,
		Title:          d.Title,
		Body:           d.Body,
		PublishDate:    d.PublishDate,
		AuditFields:    ToModelAuditFields(d.AuditFields),
		DeletedAt:      d.DeletedAt,
	}
}

// ToDomainAnnouncement converts a model Announcement to a domain Announcement
func ToDomainAnnouncement(m models.Announcement) domain.Announcement {
	return domain.Announcement{
		AnnouncementID: m.AnnouncementID,
		Title:          m.Title,
		Body:           m.Body,
		PublishDate:    m.PublishDate,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
		DeletedAt:      m.DeletedAt,
	}
}

// ToDomainAnnouncementSlice converts model Announcements to domain Announcements
func ToDomainAnnouncementSlice(ms []models.Announcement) []domain.Announcement {
	ds := make([]domain.Announcement, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAnnouncement(m)
	}
	return ds
}
