package usecase

import (
	"context"
	"time"

	"github.com/angelsaidmejia/paneldecontrol/src/debt/application/response"
	"github.com/angelsaidmejia/paneldecontrol/src/debt/domain/port"

	"github.com/google/uuid"
)

// GetDebtUseCase caso de uso para consultar una deuda con su historial
type GetDebtUseCase struct {
	debtRepo port.DebtRepository
}

// NewGetDebtUseCase crea una nueva instancia del caso de uso
func NewGetDebtUseCase(debtRepo port.DebtRepository) *GetDebtUseCase {
	return &GetDebtUseCase{
		debtRepo: debtRepo,
	}
}

// Execute devuelve la deuda con sus campos derivados resueltos
func (uc *GetDebtUseCase) Execute(ctx context.Context, debtID uuid.UUID) (*response.DebtListItemResponse, error) {
	debt, err := uc.debtRepo.FindByID(ctx, debtID)
	if err != nil {
		return nil, err
	}

	return &response.DebtListItemResponse{
		Debt:      debt,
		TotalPaid: debt.TotalPaid(),
		Remaining: debt.Remaining(),
		Overdue:   debt.IsOverdue(time.Now()),
	}, nil
}
