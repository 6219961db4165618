package mapping

import (
	"github.com/wargakita/wargakita_backend/internal/core/domain"
	"github.com/wargakita/wargakita_backend/internal/models"
)

// ToModelAidDistribution converts a domain AidDistribution to its model
func ToModelAidDistribution(d domain.AidDistribution) models.AidDistribution {
	return models.AidDistribution{
		AidID:       d.AidID,
		ProgramName: d.ProgramName,
		ResidentID:  d.ResidentID,
		Description: d.Description,
		Date:        d.Date,
		Status:      string(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAidDistribution converts a model AidDistribution to its domain form
func ToDomainAidDistribution(m models.AidDistribution) domain.AidDistribution {
	return domain.AidDistribution{
		AidID:       m.AidID,
		ProgramName: m.ProgramName,
		ResidentID:  m.ResidentID,
		Description: m.Description,
		Date:        m.Date,
		Status:      domain.AidStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAidDistributionSlice converts model AidDistributions to domain form
func ToDomainAidDistributionSlice(ms []models.AidDistribution) []domain.AidDistribution {
	ds := make([]domain.AidDistribution, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAidDistribution(m)
	}
	return ds
}
