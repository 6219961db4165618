package mapping

import (
	"database/sql"

	"github.com/wargakita/wargakita_backend/internal/core/domain"
	"github.com/wargakita/wargakita_backend/internal/models"
)

// ToModelDueRecord converts a domain DueRecord to a model DueRecord
func ToModelDueRecord(d domain.DueRecord) models.DueRecord {
	m := models.DueRecord{
		DueID:       d.DueID,
		Date:        d.Date,
		Direction:   string(d.Direction),
		Kind:        string(d.Kind),
		Category:    d.Category,
		Amount:      d.Amount,
		Note:        d.Note,
		Status:      string(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
	if d.Period != nil {
		m.PeriodMonth = sql.NullInt32{Int32: int32(d.Period.Month), Valid: true}
		m.PeriodYear = sql.NullInt32{Int32: int32(d.Period.Year), Valid: true}
	}
	if d.ResidentID != "" {
		m.ResidentID = sql.NullString{String: d.ResidentID, Valid: true}
	}
	if d.Method != "" {
		m.Method = sql.NullString{String: string(d.Method), Valid: true}
	}
	if d.ProofURL != "" {
		m.ProofURL = sql.NullString{String: d.ProofURL, Valid: true}
	}
	if d.RejectionReason != "" {
		m.RejectionReason = sql.NullString{String: d.RejectionReason, Valid: true}
	}
	return m
}

// ToDomainDueRecord converts a model DueRecord to a domain DueRecord
func ToDomainDueRecord(m models.DueRecord) domain.DueRecord {
	d := domain.DueRecord{
		DueID:       m.DueID,
		Date:        m.Date,
		Direction:   domain.DueDirection(m.Direction),
		Kind:        domain.DueKind(m.Kind),
		Category:    m.Category,
		Amount:      m.Amount,
		Note:        m.Note,
		Status:      domain.DueStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if m.PeriodMonth.Valid && m.PeriodYear.Valid {
		d.Period = &domain.Period{Month: int(m.PeriodMonth.Int32), Year: int(m.PeriodYear.Int32)}
	}
	if m.ResidentID.Valid {
		d.ResidentID = m.ResidentID.String
	}
	if m.Method.Valid {
		d.Method = domain.PaymentMethod(m.Method.String)
	}
	if m.ProofURL.Valid {
		d.ProofURL = m.ProofURL.String
	}
	if m.RejectionReason.Valid {
		d.RejectionReason = m.RejectionReason.String
	}
	return d
}

// ToDomainDueRecordSlice converts a slice of model DueRecords to domain DueRecords
func ToDomainDueRecordSlice(ms []models.DueRecord) []domain.DueRecord {
	ds := make([]domain.DueRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDueRecord(m)
	}
	return ds
}
