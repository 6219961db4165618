package domain

import "time"

// ResidentStatus is the lifecycle state of a resident record.
type ResidentStatus string

const (
	ResidentActive   ResidentStatus = "ACTIVE"
	ResidentInactive ResidentStatus = "INACTIVE"
	ResidentMoved    ResidentStatus = "MOVED"
	ResidentDeceased ResidentStatus = "DECEASED"
)

// Resident represents a tracked household member (warga).
// Residents referenced by due records are never hard-deleted; soft delete only.
type Resident struct {
	ResidentID string `json:"residentID"` // Primary Key (UUID)
	// UserID links to the resident's login account, empty if none was created.
	UserID      string         `json:"userID,omitempty"`
	NIK         string         `json:"nik"`      // National ID, unique
	KKNumber    string         `json:"kkNumber"` // Household (kartu keluarga) number
	Name        string         `json:"name"`
	Address     string         `json:"address"`
	HouseNumber string         `json:"houseNumber"`
	Phone       string         `json:"phone"`
	Status      ResidentStatus `json:"status"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// PopulationEventType classifies a recorded population event.
type PopulationEventType string

const (
	EventKelahiran    PopulationEventType = "KELAHIRAN"
	EventKematian     PopulationEventType = "KEMATIAN"
	EventPindahMasuk  PopulationEventType = "PINDAH_MASUK"
	EventPindahKeluar PopulationEventType = "PINDAH_KELUAR"
)

// StatusAfter returns the resident status implied by the event, or "" when the
// event does not change status (e.g. a birth recorded against the household head).
func (t PopulationEventType) StatusAfter() ResidentStatus {
	switch t {
	case EventKematian:
		return ResidentDeceased
	case EventPindahKeluar:
		return ResidentMoved
	case EventPindahMasuk:
		return ResidentActive
	default:
		return ""
	}
}

// PopulationEvent records a birth, death, or move affecting a resident.
type PopulationEvent struct {
	EventID    string              `json:"eventID"` // Primary Key (UUID)
	ResidentID string              `json:"residentID"`
	Type       PopulationEventType `json:"type"`
	EventDate  time.Time           `json:"eventDate"`
	Note       string              `json:"note,omitempty"`
	AuditFields
}
