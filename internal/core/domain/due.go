package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DueStatus is the state of a due record in the verification workflow.
//
//	BILL ──(submit)──> PENDING_VERIFICATION ──(approve)──> PAID
//	  ^                        │
//	  └────(reject, reason required)
//
// PAID is terminal. BILL is both the initial and the re-entry state.
type DueStatus string

const (
	StatusBill                DueStatus = "BILL"
	StatusPendingVerification DueStatus = "PENDING_VERIFICATION"
	StatusPaid                DueStatus = "PAID"
)

// CanTransitionTo reports whether the state machine permits moving to next.
func (s DueStatus) CanTransitionTo(next DueStatus) bool {
	switch s {
	case StatusBill:
		return next == StatusPendingVerification
	case StatusPendingVerification:
		return next == StatusPaid || next == StatusBill
	default:
		return false
	}
}

// DueDirection distinguishes community income from expenses.
type DueDirection string

const (
	DirectionMasuk  DueDirection = "MASUK"
	DirectionKeluar DueDirection = "KELUAR"
)

// DueKind classifies what the record is for.
type DueKind string

const (
	KindIuran DueKind = "IURAN" // recurring monthly dues
	KindWakaf DueKind = "WAKAF" // voluntary one-off donation
	KindUmum  DueKind = "UMUM"  // general transaction recorded by an admin
)

// PaymentMethod is how a resident paid.
type PaymentMethod string

const (
	MethodTunai    PaymentMethod = "TUNAI"
	MethodTransfer PaymentMethod = "TRANSFER"
	MethodQRIS     PaymentMethod = "QRIS"
)

// Period identifies a billing month.
type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// Valid reports whether the period is a real calendar month.
func (p Period) Valid() bool {
	return p.Month >= 1 && p.Month <= 12 && p.Year >= 2000 && p.Year <= 2200
}

// DueRecord is a financial transaction, either a bill issued to a resident,
// a resident's submitted payment awaiting verification, or a plain ledger row.
type DueRecord struct {
	DueID     string       `json:"dueID"` // Primary Key (UUID)
	Date      time.Time    `json:"date"`
	Direction DueDirection `json:"direction"`
	Kind      DueKind      `json:"kind"`
	Category  string       `json:"category"`
	// Period is nil for non-recurring records (wakaf, general transactions).
	Period *Period         `json:"period,omitempty"`
	Amount decimal.Decimal `json:"amount"`
	Note   string          `json:"note,omitempty"`
	// ResidentID is empty for general community transactions.
	ResidentID string        `json:"residentID,omitempty"`
	Method     PaymentMethod `json:"method,omitempty"`
	Status     DueStatus     `json:"status"`
	ProofURL   string        `json:"proofURL,omitempty"`
	// RejectionReason is set when a verification was declined; cleared on approval.
	RejectionReason string `json:"rejectionReason,omitempty"`
	AuditFields
}
