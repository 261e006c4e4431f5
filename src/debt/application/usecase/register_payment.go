package usecase

import (
	"context"

	"github.com/angelsaidmejia/paneldecontrol/src/debt/application/request"
	"github.com/angelsaidmejia/paneldecontrol/src/debt/domain/entity"
	"github.com/angelsaidmejia/paneldecontrol/src/debt/domain/port"

	"github.com/google/uuid"
)

// RegisterPaymentUseCase caso de uso para abonar contra una deuda.
// La validación y el cambio de estado ocurren dentro del repositorio,
// en la misma operación atómica que persiste el abono.
type RegisterPaymentUseCase struct {
	debtRepo port.DebtRepository
}

// NewRegisterPaymentUseCase crea una nueva instancia del caso de uso
func NewRegisterPaymentUseCase(debtRepo port.DebtRepository) *RegisterPaymentUseCase {
	return &RegisterPaymentUseCase{
		debtRepo: debtRepo,
	}
}

// Execute aplica el abono y devuelve la deuda actualizada
func (uc *RegisterPaymentUseCase) Execute(ctx context.Context, debtID uuid.UUID, req *request.RegisterPaymentRequest) (*entity.Debt, error) {
	payment := entity.NewPayment(req.Amount, req.Notes)
	return uc.debtRepo.AppendPayment(ctx, debtID, payment)
}
