package repositories

import (
	"context"

	"github.com/wargakita/wargakita_backend/internal/core/domain"
)

// DueListFilter narrows a due record listing.
type DueListFilter struct {
	ResidentID string
	Status     domain.DueStatus
	Kind       domain.DueKind
	Limit      int
	Offset     int
}

// DueReader defines read operations for due records
type DueReader interface {
	// FindDueByID retrieves a specific due record.
	FindDueByID(ctx context.Context, dueID string) (*domain.DueRecord, error)

	// FindDueForPeriod retrieves the due record for (resident, category, period),
	// if one exists. Rejected records do not exist in this model: a rejected
	// submission reverts to BILL, so every persisted row counts.
	FindDueForPeriod(ctx context.Context, residentID, category string, period domain.Period) (*domain.DueRecord, error)

	// FindBilledResidentIDs returns the IDs of residents that already have a due
	// record for (category, period). Used for idempotent bill generation.
	FindBilledResidentIDs(ctx context.Context, category string, period domain.Period) (map[string]struct{}, error)

	// FindDues retrieves due records matching the filter, newest first.
	FindDues(ctx context.Context, filter DueListFilter) ([]domain.DueRecord, error)
}

// DueWriter defines write operations for due records
type DueWriter interface {
	// SaveDue persists a new due record.
	SaveDue(ctx context.Context, due domain.DueRecord) error

	// SaveDues persists a batch of due records in one transaction.
	SaveDues(ctx context.Context, dues []domain.DueRecord) error

	// UpdateDue updates a due record in place. Status changes are a direct
	// field update: same row, same ID, no transient absence visible to readers.
	UpdateDue(ctx context.Context, due domain.DueRecord) error
}

// DueRepositoryFacade combines all due-record repository interfaces
type DueRepositoryFacade interface {
	DueReader
	DueWriter
}
