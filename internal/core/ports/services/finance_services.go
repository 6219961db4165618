package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/wargakita/wargakita_backend/internal/core/domain"
	"github.com/wargakita/wargakita_backend/internal/dto"
)

// BillingSvcFacade issues monthly dues bills.
type BillingSvcFacade interface {
	// GenerateBills creates one BILL record per active resident for the period,
	// skipping residents already billed. Returns the number created. Re-running
	// for the same period is idempotent.
	GenerateBills(ctx context.Context, period domain.Period, actorUserID string) (int, error)
}

// PaymentSvcFacade accepts resident payment submissions.
type PaymentSvcFacade interface {
	// SubmitDuesPayment moves the resident's bills for the selected periods to
	// PENDING_VERIFICATION, creating records for unbilled periods. Returns the
	// affected records and the total charged (period count x tariff).
	SubmitDuesPayment(ctx context.Context, residentID string, req dto.SubmitDuesPaymentRequest) ([]domain.DueRecord, decimal.Decimal, error)

	// SubmitDonation records a one-off donation directly in PENDING_VERIFICATION.
	SubmitDonation(ctx context.Context, residentID string, req dto.SubmitDonationRequest) (*domain.DueRecord, error)
}

// VerificationSvcFacade is the admin review step over submitted payments.
type VerificationSvcFacade interface {
	// ApproveDue moves a PENDING_VERIFICATION record to PAID and notifies the
	// originating resident.
	ApproveDue(ctx context.Context, dueID string, actorUserID string) (*domain.DueRecord, error)

	// RejectDue reverts a PENDING_VERIFICATION record to BILL with the given
	// reason and notifies the resident. An empty reason aborts with no change.
	RejectDue(ctx context.Context, dueID string, reason string, actorUserID string) (*domain.DueRecord, error)
}

// DueQuerySvcFacade exposes due-record reads.
type DueQuerySvcFacade interface {
	// GetDueByID retrieves a due record.
	GetDueByID(ctx context.Context, dueID string) (*domain.DueRecord, error)

	// ListDues retrieves due records matching the filter, newest first.
	ListDues(ctx context.Context, params dto.ListDuesParams) ([]domain.DueRecord, error)
}
