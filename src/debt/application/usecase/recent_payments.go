package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/angelsaidmejia/paneldecontrol/src/debt/application/response"
	"github.com/angelsaidmejia/paneldecontrol/src/debt/domain/port"
)

// RecentPaymentsLimit acota cuántos abonos recientes se muestran
const RecentPaymentsLimit = 10

// RecentPaymentsUseCase caso de uso para los últimos abonos recibidos
type RecentPaymentsUseCase struct {
	debtRepo port.DebtRepository
}

// NewRecentPaymentsUseCase crea una nueva instancia del caso de uso
func NewRecentPaymentsUseCase(debtRepo port.DebtRepository) *RecentPaymentsUseCase {
	return &RecentPaymentsUseCase{
		debtRepo: debtRepo,
	}
}

// Execute junta los abonos de todas las deudas, del más reciente al más
// antiguo, recortados al límite
func (uc *RecentPaymentsUseCase) Execute(ctx context.Context) ([]response.RecentPaymentResponse, error) {
	debts, err := uc.debtRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing debts: %w", err)
	}

	payments := make([]response.RecentPaymentResponse, 0)
	for _, debt := range debts {
		for _, p := range debt.Payments {
			payments = append(payments, response.RecentPaymentResponse{
				CustomerName: debt.CustomerName,
				Concept:      debt.Concept,
				Amount:       p.Amount,
				Date:         p.Date,
				Notes:        p.Notes,
			})
		}
	}

	sort.SliceStable(payments, func(i, j int) bool {
		return payments[i].Date.After(payments[j].Date)
	})

	if len(payments) > RecentPaymentsLimit {
		payments = payments[:RecentPaymentsLimit]
	}
	return payments, nil
}
