package usecase

import (
	"context"

	"github.com/angelsaidmejia/paneldecontrol/src/debt/application/response"
	"github.com/angelsaidmejia/paneldecontrol/src/debt/domain/port"

	"github.com/google/uuid"
)

// PaymentSuggestionsUseCase caso de uso para los montos rápidos de abono
type PaymentSuggestionsUseCase struct {
	debtRepo port.DebtRepository
}

// NewPaymentSuggestionsUseCase crea una nueva instancia del caso de uso
func NewPaymentSuggestionsUseCase(debtRepo port.DebtRepository) *PaymentSuggestionsUseCase {
	return &PaymentSuggestionsUseCase{
		debtRepo: debtRepo,
	}
}

// Execute propone abonar la mitad o liquidar el saldo restante.
// Los montos se redondean a centavos solo para presentación.
func (uc *PaymentSuggestionsUseCase) Execute(ctx context.Context, debtID uuid.UUID) (*response.PaymentSuggestionsResponse, error) {
	debt, err := uc.debtRepo.FindByID(ctx, debtID)
	if err != nil {
		return nil, err
	}

	return &response.PaymentSuggestionsResponse{
		Half: debt.HalfOfRemaining().Round(2),
		Full: debt.FullOfRemaining().Round(2),
	}, nil
}
