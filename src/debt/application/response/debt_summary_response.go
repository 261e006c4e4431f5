package response

import "github.com/shopspring/decimal"

// DebtSummaryResponse resume el estado de la cartera de deudas
type DebtSummaryResponse struct {
	TotalRemaining decimal.Decimal `json:"total_remaining"`
	CustomerCount  int             `json:"customer_count"`
	OverdueCount   int             `json:"overdue_count"`
}
