package models

import (
	"database/sql"
	"time"
)

// Resident is the row shape of the residents table.
type Resident struct {
	ResidentID  string         `db:"resident_id"`
	UserID      sql.NullString `db:"user_id"`
	NIK         string         `db:"nik"`
	KKNumber    string         `db:"kk_number"`
	Name        string         `db:"name"`
	Address     string         `db:"address"`
	HouseNumber string         `db:"house_number"`
	Phone       string         `db:"phone"`
	Status      string         `db:"status"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}

// PopulationEvent is the row shape of the population_events table.
type PopulationEvent struct {
	EventID    string    `db:"event_id"`
	ResidentID string    `db:"resident_id"`
	Type       string    `db:"event_type"`
	EventDate  time.Time `db:"event_date"`
	Note       string    `db:"note"`
	AuditFields
}
