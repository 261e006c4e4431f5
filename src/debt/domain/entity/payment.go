package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment es un abono aplicado contra una deuda.
// Los pagos son inmutables una vez registrados: la secuencia es de solo
// agregado, sin edición ni borrado.
type Payment struct {
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
	Notes  string          `json:"notes,omitempty"`
}

// NewPayment crea un abono fechado ahora
func NewPayment(amount decimal.Decimal, notes string) Payment {
	return Payment{
		Amount: amount,
		Date:   time.Now(),
		Notes:  notes,
	}
}
