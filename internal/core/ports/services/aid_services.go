package services

import (
	"context"

	"github.com/wargakita/wargakita_backend/internal/core/domain"
	"github.com/wargakita/wargakita_backend/internal/dto"
)

// AidSvcFacade tracks social-aid distributions.
type AidSvcFacade interface {
	// ScheduleAid records a planned distribution and notifies the beneficiary.
	ScheduleAid(ctx context.Context, req dto.ScheduleAidRequest, actorUserID string) (*domain.AidDistribution, error)

	// GetAidByID retrieves a distribution record.
	GetAidByID(ctx context.Context, aidID string) (*domain.AidDistribution, error)

	// ListAid retrieves a paginated list of distributions.
	ListAid(ctx context.Context, limit, offset int) ([]domain.AidDistribution, error)

	// MarkDistributed transitions a SCHEDULED record to DISTRIBUTED.
	MarkDistributed(ctx context.Context, aidID string, actorUserID string) (*domain.AidDistribution, error)
}
