package repositories

import (
	"context"
	"time"

	"github.com/wargakita/wargakita_backend/internal/core/domain"
)

// ResidentReader defines read operations for resident data
type ResidentReader interface {
	// FindResidentByID retrieves a specific resident by their ID.
	FindResidentByID(ctx context.Context, residentID string) (*domain.Resident, error)

	// FindResidentByNIK retrieves a resident by national ID number.
	FindResidentByNIK(ctx context.Context, nik string) (*domain.Resident, error)

	// FindResidentByUserID retrieves the resident linked to a login account.
	FindResidentByUserID(ctx context.Context, userID string) (*domain.Resident, error)

	// FindResidents retrieves a paginated list of residents.
	FindResidents(ctx context.Context, limit int, offset int) ([]domain.Resident, error)

	// FindResidentsByStatus retrieves all residents in the given status.
	// Used by the billing generator to enumerate active residents.
	FindResidentsByStatus(ctx context.Context, status domain.ResidentStatus) ([]domain.Resident, error)
}

// ResidentWriter defines write operations for resident data
type ResidentWriter interface {
	// SaveResident persists a new resident.
	SaveResident(ctx context.Context, resident domain.Resident) error

	// UpdateResident updates an existing resident's details.
	UpdateResident(ctx context.Context, resident domain.Resident) error

	// MarkResidentDeleted marks a resident as deleted (soft delete).
	// Residents referenced by due records are never removed from the table.
	MarkResidentDeleted(ctx context.Context, residentID string, deletedAt time.Time, deletedBy string) error
}

// PopulationEventRepository defines persistence for population events
type PopulationEventRepository interface {
	// SavePopulationEvent persists a recorded population event.
	SavePopulationEvent(ctx context.Context, event domain.PopulationEvent) error

	// FindEventsByResident retrieves events recorded against a resident.
	FindEventsByResident(ctx context.Context, residentID string) ([]domain.PopulationEvent, error)
}

// ResidentRepositoryFacade combines all resident-related repository interfaces
type ResidentRepositoryFacade interface {
	ResidentReader
	ResidentWriter
	PopulationEventRepository
}
