package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/angelsaidmejia/paneldecontrol/src/debt/application/request"
	"github.com/angelsaidmejia/paneldecontrol/src/debt/domain/entity"
	"github.com/angelsaidmejia/paneldecontrol/src/debt/domain/port"
)

// CreateDebtUseCase caso de uso para registrar una deuda manual
type CreateDebtUseCase struct {
	debtRepo port.DebtRepository
}

// NewCreateDebtUseCase crea una nueva instancia del caso de uso
func NewCreateDebtUseCase(debtRepo port.DebtRepository) *CreateDebtUseCase {
	return &CreateDebtUseCase{
		debtRepo: debtRepo,
	}
}

// Execute valida y persiste la deuda nueva
func (uc *CreateDebtUseCase) Execute(ctx context.Context, req *request.CreateDebtRequest) (*entity.Debt, error) {
	debt, err := entity.NewDebt(
		strings.TrimSpace(req.CustomerName),
		req.Amount,
		strings.TrimSpace(req.Concept),
		strings.TrimSpace(req.Phone),
	)
	if err != nil {
		return nil, err
	}

	if err := uc.debtRepo.Save(ctx, debt); err != nil {
		return nil, fmt.Errorf("error saving debt: %w", err)
	}

	return debt, nil
}
