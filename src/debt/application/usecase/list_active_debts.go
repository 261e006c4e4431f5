package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/angelsaidmejia/paneldecontrol/src/debt/application/response"
	"github.com/angelsaidmejia/paneldecontrol/src/debt/domain/entity"
	"github.com/angelsaidmejia/paneldecontrol/src/debt/domain/port"

	"github.com/shopspring/decimal"
)

// ListActiveDebtsUseCase caso de uso para la cartera de deudas activas.
// Admite búsqueda por nombre de cliente o concepto y ordena por saldo
// restante de mayor a menor.
type ListActiveDebtsUseCase struct {
	debtRepo port.DebtRepository
}

// NewListActiveDebtsUseCase crea una nueva instancia del caso de uso
func NewListActiveDebtsUseCase(debtRepo port.DebtRepository) *ListActiveDebtsUseCase {
	return &ListActiveDebtsUseCase{
		debtRepo: debtRepo,
	}
}

// Execute lista las deudas activas que coincidan con la búsqueda
func (uc *ListActiveDebtsUseCase) Execute(ctx context.Context, search string) (*response.DebtListResponse, error) {
	debts, err := uc.debtRepo.ListByStatus(ctx, entity.DebtStatusActive)
	if err != nil {
		return nil, fmt.Errorf("error listing active debts: %w", err)
	}

	now := time.Now()
	search = strings.ToLower(strings.TrimSpace(search))
	items := make([]response.DebtListItemResponse, 0, len(debts))
	totalRemaining := decimal.Zero

	for _, debt := range debts {
		if search != "" &&
			!strings.Contains(strings.ToLower(debt.CustomerName), search) &&
			!strings.Contains(strings.ToLower(debt.Concept), search) {
			continue
		}
		remaining := debt.Remaining()
		items = append(items, response.DebtListItemResponse{
			Debt:      debt,
			TotalPaid: debt.TotalPaid(),
			Remaining: remaining,
			Overdue:   debt.IsOverdue(now),
		})
		totalRemaining = totalRemaining.Add(remaining)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Remaining.GreaterThan(items[j].Remaining)
	})

	return &response.DebtListResponse{
		Items:          items,
		TotalCount:     len(items),
		TotalRemaining: totalRemaining,
	}, nil
}
