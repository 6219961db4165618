package repositories

import (
	"context"

	"github.com/wargakita/wargakita_backend/internal/core/domain"
)

// AidRepositoryFacade defines persistence for social-aid distributions
type AidRepositoryFacade interface {
	// SaveAidDistribution persists a new distribution record.
	SaveAidDistribution(ctx context.Context, aid domain.AidDistribution) error

	// FindAidDistributionByID retrieves a specific distribution record.
	FindAidDistributionByID(ctx context.Context, aidID string) (*domain.AidDistribution, error)

	// FindAidDistributions retrieves a paginated list, newest first.
	FindAidDistributions(ctx context.Context, limit int, offset int) ([]domain.AidDistribution, error)

	// FindAidDistributionsByResident retrieves distributions for one resident.
	FindAidDistributionsByResident(ctx context.Context, residentID string) ([]domain.AidDistribution, error)

	// UpdateAidDistribution updates an existing distribution record.
	UpdateAidDistribution(ctx context.Context, aid domain.AidDistribution) error
}
