package request

import "github.com/shopspring/decimal"

// CreateDebtRequest request para registrar una deuda de cliente
type CreateDebtRequest struct {
	CustomerName string          `json:"customer_name" binding:"required"`
	Amount       decimal.Decimal `json:"amount"`
	Concept      string          `json:"concept" binding:"required"`
	Phone        string          `json:"phone,omitempty"`
}
