package request

import "github.com/shopspring/decimal"

// RegisterPaymentRequest request para abonar contra una deuda
type RegisterPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Notes  string          `json:"notes,omitempty"`
}
