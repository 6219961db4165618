package mapping

import (
	"database/sql"

	"github.com/wargakita/wargakita_backend/internal/core/domain"
	"github.com/wargakita/wargakita_backend/internal/models"
)

// ToModelResident converts a domain Resident to a model Resident
func ToModelResident(d domain.Resident) models.Resident {
	m := models.Resident{
		ResidentID:  d.ResidentID,
		NIK:         d.NIK,
		KKNumber:    d.KKNumber,
		Name:        d.Name,
		Address:     d.Address,
		HouseNumber: d.HouseNumber,
		Phone:       d.Phone,
		Status:      string(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
		DeletedAt:   d.DeletedAt,
	}
	if d.UserID != "" {
		m.UserID = sql.NullString{String: d.UserID, Valid: true}
	}
	return m
}

// ToDomainResident converts a model Resident to a domain Resident
func ToDomainResident(m models.Resident) domain.Resident {
	d := domain.Resident{
		ResidentID:  m.ResidentID,
		NIK:         m.NIK,
		KKNumber:    m.KKNumber,
		Name:        m.Name,
		Address:     m.Address,
		HouseNumber: m.HouseNumber,
		Phone:       m.Phone,
		Status:      domain.ResidentStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
		DeletedAt:   m.DeletedAt,
	}
	if m.UserID.Valid {
		d.UserID = m.UserID.String
	}
	return d
}

// ToDomainResidentSlice converts a slice of model Residents to domain Residents
func ToDomainResidentSlice(ms []models.Resident) []domain.Resident {
	ds := make([]domain.Resident, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainResident(m)
	}
	return ds
}

// ToModelPopulationEvent converts a domain PopulationEvent to its model
func ToModelPopulationEvent(d domain.PopulationEvent) models.PopulationEvent {
	return models.PopulationEvent{
		EventID:     d.EventID,
		ResidentID:  d.ResidentID,
		Type:        string(d.Type),
		EventDate:   d.EventDate,
		Note:        d.Note,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPopulationEvent converts a model PopulationEvent to its domain form
func ToDomainPopulationEvent(m models.PopulationEvent) domain.PopulationEvent {
	return domain.PopulationEvent{
		EventID:     m.EventID,
		ResidentID:  m.ResidentID,
		Type:        domain.PopulationEventType(m.Type),
		EventDate:   m.EventDate,
		Note:        m.Note,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPopulationEventSlice converts a slice of model events to domain events
func ToDomainPopulationEventSlice(ms []models.PopulationEvent) []domain.PopulationEvent {
	ds := make([]domain.PopulationEvent, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPopulationEvent(m)
	}
	return ds
}
