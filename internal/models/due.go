package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// DueRecord is the row shape of the due_records table.
type DueRecord struct {
	DueID           string          `db:"due_id"`
	Date            time.Time       `db:"date"`
	Direction       string          `db:"direction"`
	Kind            string          `db:"kind"`
	Category        string          `db:"category"`
	PeriodMonth     sql.NullInt32   `db:"period_month"`
	PeriodYear      sql.NullInt32   `db:"period_year"`
	Amount          decimal.Decimal `db:"amount"`
	Note            string          `db:"note"`
	ResidentID      sql.NullString  `db:"resident_id"`
	Method          sql.NullString  `db:"method"`
	Status          string          `db:"status"`
	ProofURL        sql.NullString  `db:"proof_url"`
	RejectionReason sql.NullString  `db:"rejection_reason"`
	AuditFields
}
