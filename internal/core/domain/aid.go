package domain

import "time"

// AidStatus tracks whether a scheduled social-aid item has been handed out.
type AidStatus string

const (
	AidScheduled   AidStatus = "SCHEDULED"
	AidDistributed AidStatus = "DISTRIBUTED"
)

// AidDistribution records one social-aid (bansos) allocation to a resident.
type AidDistribution struct {
	AidID       string    `json:"aidID"` // Primary Key (UUID)
	ProgramName string    `json:"programName"`
	ResidentID  string    `json:"residentID"`
	Description string    `json:"description"` // item or amount handed out
	Date        time.Time `json:"date"`
	Status      AidStatus `json:"status"`
	AuditFields
}
