package dto

import (
	"time"

	"github.com/wargakita/wargakita_backend/internal/core/domain"
)

// ScheduleAidRequest is the payload for scheduling a social-aid distribution.
type ScheduleAidRequest struct {
	ProgramName string    `json:"programName" binding:"required"`
	ResidentID  string    `json:"residentID" binding:"required,uuid"`
	Description string    `json:"description" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
}

// ListAidParams are the query parameters for listing distributions.
type ListAidParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// AidResponse is the public shape of a distribution record.
type AidResponse struct {
	AidID       string    `json:"aidID"`
	ProgramName string    `json:"programName"`
	ResidentID  string    `json:"residentID"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`
}

// ToAidResponse converts a domain AidDistribution to its DTO.
func ToAidResponse(a *domain.AidDistribution) AidResponse {
	return AidResponse{
		AidID:       a.AidID,
		ProgramName: a.ProgramName,
		ResidentID:  a.ResidentID,
		Description: a.Description,
		Date:        a.Date,
		Status:      string(a.Status),
	}
}

// ListAidResponse wraps a page of distribution records.
type ListAidResponse struct {
	Distributions []AidResponse `json:"distributions"`
}
