package services

import (
	"context"

	"github.com/wargakita/wargakita_backend/internal/core/domain"
	"github.com/wargakita/wargakita_backend/internal/dto"
)

// ResidentReaderSvc defines read operations for resident data
type ResidentReaderSvc interface {
	// GetResidentByID retrieves a resident by ID.
	GetResidentByID(ctx context.Context, residentID string) (*domain.Resident, error)

	// GetResidentByUserID retrieves the resident linked to a login account.
	GetResidentByUserID(ctx context.Context, userID string) (*domain.Resident, error)

	// ListResidents retrieves a paginated list of residents.
	ListResidents(ctx context.Context, limit, offset int) ([]domain.Resident, error)
}

// ResidentWriterSvc defines write operations for resident data
type ResidentWriterSvc interface {
	// CreateResident creates a resident record (admin action).
	CreateResident(ctx context.Context, req dto.CreateResidentRequest, creatorUserID string) (*domain.Resident, error)

	// RegisterResident performs self-registration: a WARGA login account plus
	// its resident record.
	RegisterResident(ctx context.Context, req dto.RegisterResidentRequest) (*domain.Resident, error)

	// UpdateResident edits an existing resident.
	UpdateResident(ctx context.Context, residentID string, req dto.UpdateResidentRequest, updaterUserID string) (*domain.Resident, error)

	// DeleteResident soft-deletes a resident.
	DeleteResident(ctx context.Context, residentID string, deleterUserID string) error
}

// PopulationEventSvc defines operations for population events
type PopulationEventSvc interface {
	// RecordPopulationEvent records a birth, death, or move and applies the
	// implied resident status change.
	RecordPopulationEvent(ctx context.Context, residentID string, req dto.RecordPopulationEventRequest, recorderUserID string) (*domain.PopulationEvent, error)

	// ListPopulationEvents retrieves the events recorded against a resident.
	ListPopulationEvents(ctx context.Context, residentID string) ([]domain.PopulationEvent, error)
}

// ResidentSvcFacade combines all resident-related service interfaces
type ResidentSvcFacade interface {
	ResidentReaderSvc
	ResidentWriterSvc
	PopulationEventSvc
}
