package models

import "time"

// AidDistribution is the row shape of the aid_distributions table.
type AidDistribution struct {
	AidID       string    `db:"aid_id"`
	ProgramName string    `db:"program_name"`
	ResidentID  string    `db:"resident_id"`
	Description string    `db:"description"`
	Date        time.Time `db:"date"`
	Status      string    `db:"status"`
	AuditFields
}
