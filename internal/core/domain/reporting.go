package domain

import "github.com/shopspring/decimal"

// CategoryTotal is one row of a per-category finance breakdown.
type CategoryTotal struct {
	Category  string          `json:"category"`
	Direction DueDirection    `json:"direction"`
	Total     decimal.Decimal `json:"total"`
}

// FinanceSummary aggregates verified (PAID) inflow and recorded outflow over a
// period range.
type FinanceSummary struct {
	From        Period          `json:"from"`
	To          Period          `json:"to"`
	TotalMasuk  decimal.Decimal `json:"totalMasuk"`
	TotalKeluar decimal.Decimal `json:"totalKeluar"`
	Balance     decimal.Decimal `json:"balance"`
	ByCategory  []CategoryTotal `json:"byCategory"`
}
