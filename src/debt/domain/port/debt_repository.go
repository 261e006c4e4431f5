package port

import (
	"context"

	"github.com/angelsaidmejia/paneldecontrol/src/debt/domain/entity"

	"github.com/google/uuid"
)

// DebtRepository define el contrato para persistir deudas y sus abonos
type DebtRepository interface {
	Save(ctx context.Context, debt *entity.Debt) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Debt, error)
	ListAll(ctx context.Context) ([]*entity.Debt, error)
	// ListByStatus usa el índice por estado del almacén
	ListByStatus(ctx context.Context, status entity.DebtStatus) ([]*entity.Debt, error)
	// AppendPayment aplica un abono con lectura-validación-escritura
	// atómica sobre el registro de la deuda: dos abonos concurrentes a
	// la misma deuda no pueden perderse ni rebasar el saldo. Devuelve
	// la deuda actualizada.
	AppendPayment(ctx context.Context, debtID uuid.UUID, payment entity.Payment) (*entity.Debt, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
