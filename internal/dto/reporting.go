package dto

import (
	"github.com/shopspring/decimal"

	"github.com/wargakita/wargakita_backend/internal/core/domain"
)

// FinanceSummaryParams are the query parameters for a finance summary.
type FinanceSummaryParams struct {
	FromMonth int `form:"fromMonth" binding:"required,min=1,max=12"`
	FromYear  int `form:"fromYear" binding:"required,min=2000,max=2200"`
	ToMonth   int `form:"toMonth" binding:"required,min=1,max=12"`
	ToYear    int `form:"toYear" binding:"required,min=2000,max=2200"`
}

// CategoryTotalResponse is one row of the per-category breakdown.
type CategoryTotalResponse struct {
	Category  string          `json:"category"`
	Direction string          `json:"direction"`
	Total     decimal.Decimal `json:"total"`
}

// FinanceSummaryResponse is the aggregated finance report.
type FinanceSummaryResponse struct {
	From        PeriodDTO               `json:"from"`
	To          PeriodDTO               `json:"to"`
	TotalMasuk  decimal.Decimal         `json:"totalMasuk"`
	TotalKeluar decimal.Decimal         `json:"totalKeluar"`
	Balance     decimal.Decimal         `json:"balance"`
	ByCategory  []CategoryTotalResponse `json:"byCategory"`
}

// ToFinanceSummaryResponse converts a domain FinanceSummary to its DTO.
func ToFinanceSummaryResponse(s *domain.FinanceSummary) FinanceSummaryResponse {
	byCategory := make([]CategoryTotalResponse, len(s.ByCategory))
	for i, c := range s.ByCategory {
		byCategory[i] = CategoryTotalResponse{
			Category:  c.Category,
			Direction: string(c.Direction),
			Total:     c.Total,
		}
	}
	return FinanceSummaryResponse{
		From:        PeriodDTO{Month: s.From.Month, Year: s.From.Year},
		To:          PeriodDTO{Month: s.To.Month, Year: s.To.Year},
		TotalMasuk:  s.TotalMasuk,
		TotalKeluar: s.TotalKeluar,
		Balance:     s.Balance,
		ByCategory:  byCategory,
	}
}
