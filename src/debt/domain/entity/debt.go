package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DebtStatus representa el estado de una deuda.
// El estado es derivado: se recalcula en cada abono y nunca se asigna
// directamente desde afuera.
type DebtStatus string

const (
	DebtStatusActive DebtStatus = "active"
	DebtStatusPaid   DebtStatus = "paid"
)

// OverdueAfter es la antigüedad a partir de la cual una deuda se
// considera vencida.
const OverdueAfter = 30 * 24 * time.Hour

// Debt representa el saldo pendiente de un cliente (Aggregate Root).
// El monto queda fijo al crearla; los abonos se acumulan en Payments.
type Debt struct {
	ID           uuid.UUID       `json:"id"`
	CustomerName string          `json:"customer_name"`
	Amount       decimal.Decimal `json:"amount"`
	Concept      string          `json:"concept"`
	Phone        string          `json:"phone,omitempty"`
	Status       DebtStatus      `json:"status"`
	Payments     []Payment       `json:"payments"`
	CreatedAt    time.Time       `json:"created_at"`
}

// NewDebt crea una deuda activa sin abonos
func NewDebt(customerName string, amount decimal.Decimal, concept, phone string) (*Debt, error) {
	if customerName == "" {
		return nil, ErrCustomerNameRequired
	}
	if concept == "" {
		return nil, ErrConceptRequired
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidDebtAmount
	}

	return &Debt{
		ID:           uuid.New(),
		CustomerName: customerName,
		Amount:       amount,
		Concept:      concept,
		Phone:        phone,
		Status:       DebtStatusActive,
		Payments:     []Payment{},
		CreatedAt:    time.Now(),
	}, nil
}

// TotalPaid suma los abonos registrados. Una secuencia ausente cuenta
// como vacía.
func (d *Debt) TotalPaid() decimal.Decimal {
	total := decimal.Zero
	for _, p := range d.Payments {
		total = total.Add(p.Amount)
	}
	return total
}

// Remaining es el saldo que falta por cobrar
func (d *Debt) Remaining() decimal.Decimal {
	return d.Amount.Sub(d.TotalPaid())
}

// AddPayment registra un abono y recalcula el estado derivado.
// Falla sin modificar la deuda si el monto no es positivo o excede el
// saldo restante. La deuda queda pagada cuando lo abonado alcanza el
// monto (comparación con ≥, no igualdad estricta, para tolerar el pago
// exacto del límite permitido).
func (d *Debt) AddPayment(p Payment) error {
	if p.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidPaymentAmount
	}
	if p.Amount.GreaterThan(d.Remaining()) {
		return ErrPaymentExceedsRemaining
	}

	d.Payments = append(d.Payments, p)
	if d.TotalPaid().GreaterThanOrEqual(d.Amount) {
		d.Status = DebtStatusPaid
	} else {
		d.Status = DebtStatusActive
	}
	return nil
}

// IsOverdue indica si la deuda lleva más de 30 días abierta
func (d *Debt) IsOverdue(now time.Time) bool {
	return now.Sub(d.CreatedAt) > OverdueAfter
}

// HalfOfRemaining sugiere abonar la mitad del saldo restante
func (d *Debt) HalfOfRemaining() decimal.Decimal {
	return d.Remaining().Div(decimal.NewFromInt(2))
}

// FullOfRemaining sugiere liquidar el saldo restante completo
func (d *Debt) FullOfRemaining() decimal.Decimal {
	return d.Remaining()
}
