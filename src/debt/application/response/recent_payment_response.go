package response

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecentPaymentResponse es un abono con el contexto de su deuda
type RecentPaymentResponse struct {
	CustomerName string          `json:"customer_name"`
	Concept      string          `json:"concept"`
	Amount       decimal.Decimal `json:"amount"`
	Date         time.Time       `json:"date"`
	Notes        string          `json:"notes,omitempty"`
}

// PaymentSuggestionsResponse propone montos de abono para una deuda
type PaymentSuggestionsResponse struct {
	Half decimal.Decimal `json:"half"`
	Full decimal.Decimal `json:"full"`
}
