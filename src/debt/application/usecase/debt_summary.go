package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/angelsaidmejia/paneldecontrol/src/debt/application/response"
	"github.com/angelsaidmejia/paneldecontrol/src/debt/domain/entity"
	"github.com/angelsaidmejia/paneldecontrol/src/debt/domain/port"

	"github.com/shopspring/decimal"
)

// DebtSummaryUseCase caso de uso para el resumen de la cartera
type DebtSummaryUseCase struct {
	debtRepo port.DebtRepository
}

// NewDebtSummaryUseCase crea una nueva instancia del caso de uso
func NewDebtSummaryUseCase(debtRepo port.DebtRepository) *DebtSummaryUseCase {
	return &DebtSummaryUseCase{
		debtRepo: debtRepo,
	}
}

// Execute calcula saldo total, clientes con deuda y deudas vencidas.
// Solo las deudas activas cuentan; las pagadas quedan como historial.
func (uc *DebtSummaryUseCase) Execute(ctx context.Context) (*response.DebtSummaryResponse, error) {
	debts, err := uc.debtRepo.ListByStatus(ctx, entity.DebtStatusActive)
	if err != nil {
		return nil, fmt.Errorf("error listing active debts: %w", err)
	}

	now := time.Now()
	totalRemaining := decimal.Zero
	customers := make(map[string]struct{})
	overdue := 0

	for _, debt := range debts {
		totalRemaining = totalRemaining.Add(debt.Remaining())
		customers[debt.CustomerName] = struct{}{}
		if debt.IsOverdue(now) {
			overdue++
		}
	}

	return &response.DebtSummaryResponse{
		TotalRemaining: totalRemaining,
		CustomerCount:  len(customers),
		OverdueCount:   overdue,
	}, nil
}
