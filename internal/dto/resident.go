package dto

import (
	"time"

	"github.com/wargakita/wargakita_backend/internal/core/domain"
)

// CreateResidentRequest is the payload for an admin creating a resident record.
type CreateResidentRequest struct {
	NIK         string `json:"nik" binding:"required,len=16,numeric"`
	KKNumber    string `json:"kkNumber" binding:"required,len=16,numeric"`
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address" binding:"required"`
	HouseNumber string `json:"houseNumber"`
	Phone       string `json:"phone"`
}

// RegisterResidentRequest is the payload for resident self-registration.
// It creates both a WARGA login account and the resident record.
type RegisterResidentRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required,min=8"`

	NIK         string `json:"nik" binding:"required,len=16,numeric"`
	KKNumber    string `json:"kkNumber" binding:"required,len=16,numeric"`
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address" binding:"required"`
	HouseNumber string `json:"houseNumber"`
	Phone       string `json:"phone"`
}

// UpdateResidentRequest is the payload for editing a resident. Empty fields are
// left unchanged.
type UpdateResidentRequest struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	HouseNumber string `json:"houseNumber"`
	Phone       string `json:"phone"`
	Status      string `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE MOVED DECEASED"`
}

// RecordPopulationEventRequest is the payload for recording a population event.
type RecordPopulationEventRequest struct {
	Type      string    `json:"type" binding:"required,oneof=KELAHIRAN KEMATIAN PINDAH_MASUK PINDAH_KELUAR"`
	EventDate time.Time `json:"eventDate" binding:"required"`
	Note      string    `json:"note"`
}

// ListResidentsParams are the query parameters for listing residents.
type ListResidentsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ResidentResponse is the public shape of a resident.
type ResidentResponse struct {
	ResidentID  string    `json:"residentID"`
	UserID      string    `json:"userID,omitempty"`
	NIK         string    `json:"nik"`
	KKNumber    string    `json:"kkNumber"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	HouseNumber string    `json:"houseNumber,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToResidentResponse converts a domain Resident to its response DTO.
func ToResidentResponse(r *domain.Resident) ResidentResponse {
	return ResidentResponse{
		ResidentID:  r.ResidentID,
		UserID:      r.UserID,
		NIK:         r.NIK,
		KKNumber:    r.KKNumber,
		Name:        r.Name,
		Address:     r.Address,
		HouseNumber: r.HouseNumber,
		Phone:       r.Phone,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
	}
}

// ListResidentsResponse wraps a page of residents.
type ListResidentsResponse struct {
	Residents []ResidentResponse `json:"residents"`
}

// PopulationEventResponse is the public shape of a population event.
type PopulationEventResponse struct {
	EventID    string    `json:"eventID"`
	ResidentID string    `json:"residentID"`
	Type       string    `json:"type"`
	EventDate  time.Time `json:"eventDate"`
	Note       string    `json:"note,omitempty"`
}

// ToPopulationEventResponse converts a domain PopulationEvent to its DTO.
func ToPopulationEventResponse(e *domain.PopulationEvent) PopulationEventResponse {
	return PopulationEventResponse{
		EventID:    e.EventID,
		ResidentID: e.ResidentID,
		Type:       string(e.Type),
		EventDate:  e.EventDate,
		Note:       e.Note,
	}
}
