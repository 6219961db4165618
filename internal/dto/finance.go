package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wargakita/wargakita_backend/internal/core/domain"
)

// PeriodDTO identifies one billing month in request payloads.
type PeriodDTO struct {
	Month int `json:"month" binding:"required,min=1,max=12"`
	Year  int `json:"year" binding:"required,min=2000,max=2200"`
}

// ToPeriod converts the DTO to its domain form.
func (p PeriodDTO) ToPeriod() domain.Period {
	return domain.Period{Month: p.Month, Year: p.Year}
}

// GenerateBillsRequest is the payload for issuing a month's bills.
type GenerateBillsRequest struct {
	Month int `json:"month" binding:"required,min=1,max=12"`
	Year  int `json:"year" binding:"required,min=2000,max=2200"`
}

// GenerateBillsResponse reports how many new bills were created. Re-running
// generation for an already-billed period returns zero, not an error.
type GenerateBillsResponse struct {
	Created int `json:"created"`
}

// SubmitDuesPaymentRequest is a resident's payment submission for one or more
// billing periods. Proof is required for every method except cash.
type SubmitDuesPaymentRequest struct {
	Periods  []PeriodDTO `json:"periods" binding:"required,min=1,dive"`
	Method   string      `json:"method" binding:"required,oneof=TUNAI TRANSFER QRIS"`
	ProofURL string      `json:"proofURL"`
	Note     string      `json:"note"`
}

// SubmitDonationRequest is a resident's one-off donation (wakaf) submission.
type SubmitDonationRequest struct {
	Category string          `json:"category" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Method   string          `json:"method" binding:"required,oneof=TUNAI TRANSFER QRIS"`
	ProofURL string          `json:"proofURL"`
	Note     string          `json:"note"`
}

// SubmitPaymentResponse reports the records now awaiting verification and the
// total the resident was charged.
type SubmitPaymentResponse struct {
	Dues         []DueResponse   `json:"dues"`
	TotalCharged decimal.Decimal `json:"totalCharged"`
}

// RejectDueRequest carries the mandatory rejection reason.
type RejectDueRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ListDuesParams are the query parameters for listing due records.
type ListDuesParams struct {
	ResidentID string `form:"residentID"`
	Status     string `form:"status" binding:"omitempty,oneof=BILL PENDING_VERIFICATION PAID"`
	Kind       string `form:"kind" binding:"omitempty,oneof=IURAN WAKAF UMUM"`
	Limit      int    `form:"limit,default=20"`
	Offset     int    `form:"offset,default=0"`
}

// DueResponse is the public shape of a due record.
type DueResponse struct {
	DueID           string          `json:"dueID"`
	Date            time.Time       `json:"date"`
	Direction       string          `json:"direction"`
	Kind            string          `json:"kind"`
	Category        string          `json:"category"`
	Period          *PeriodDTO      `json:"period,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	Note            string          `json:"note,omitempty"`
	ResidentID      string          `json:"residentID,omitempty"`
	Method          string          `json:"method,omitempty"`
	Status          string          `json:"status"`
	ProofURL        string          `json:"proofURL,omitempty"`
	RejectionReason string          `json:"rejectionReason,omitempty"`
}

// ToDueResponse converts a domain DueRecord to its response DTO.
func ToDueResponse(d *domain.DueRecord) DueResponse {
	resp := DueResponse{
		DueID:           d.DueID,
		Date:            d.Date,
		Direction:       string(d.Direction),
		Kind:            string(d.Kind),
		Category:        d.Category,
		Amount:          d.Amount,
		Note:            d.Note,
		ResidentID:      d.ResidentID,
		Method:          string(d.Method),
		Status:          string(d.Status),
		ProofURL:        d.ProofURL,
		RejectionReason: d.RejectionReason,
	}
	if d.Period != nil {
		resp.Period = &PeriodDTO{Month: d.Period.Month, Year: d.Period.Year}
	}
	return resp
}

// ListDuesResponse wraps a page of due records.
type ListDuesResponse struct {
	Dues []DueResponse `json:"dues"`
}
