package services

import (
	"context"
	"fmt"

	"github.com/wargakita/wargakita_backend/internal/core/domain"
	portsrepo "github.com/wargakita/wargakita_backend/internal/core/ports/repositories"
	portssvc "github.com/wargakita/wargakita_backend/internal/core/ports/services"
	"github.com/wargakita/wargakita_backend/internal/dto"
)

// dueQueryService exposes due-record reads.
type dueQueryService struct {
	dueRepo portsrepo.DueReader
}

// NewDueQueryService creates a new DueQueryService.
func NewDueQueryService(dueRepo portsrepo.DueReader) portssvc.DueQuerySvcFacade {
	return &dueQueryService{dueRepo: dueRepo}
}

var _ portssvc.DueQuerySvcFacade = (*dueQueryService)(nil)

// GetDueByID retrieves a due record.
func (s *dueQueryService) GetDueByID(ctx context.Context, dueID string) (*domain.DueRecord, error) {
	due, err := s.dueRepo.FindDueByID(ctx, dueID)
	if err != nil {
		return nil, fmt.Errorf("failed to find due %s: %w", dueID, err)
	}
	return due, nil
}

// ListDues retrieves due records matching the filter, newest first.
func (s *dueQueryService) ListDues(ctx context.Context, params dto.ListDuesParams) ([]domain.DueRecord, error) {
	filter := portsrepo.DueListFilter{
		ResidentID: params.ResidentID,
		Status:     domain.DueStatus(params.Status),
		Kind:       domain.DueKind(params.Kind),
		Limit:      params.Limit,
		Offset:     params.Offset,
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	dues, err := s.dueRepo.FindDues(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list dues: %w", err)
	}
	return dues, nil
}
