package usecase

import (
	"context"
	"fmt"

	orderport "github.com/angelsaidmejia/paneldecontrol/src/order/domain/port"
	"github.com/angelsaidmejia/paneldecontrol/src/stats/application/response"
	"github.com/angelsaidmejia/paneldecontrol/src/stats/domain/port"
)

// ClearStatsUseCase caso de uso para borrar el historial de ventas.
// Elimina los pedidos completados y todos los cierres guardados; los
// pedidos pendientes no se tocan.
type ClearStatsUseCase struct {
	orderRepo orderport.OrderRepository
	statsRepo port.DailyStatsRepository
}

// NewClearStatsUseCase crea una nueva instancia del caso de uso
func NewClearStatsUseCase(orderRepo orderport.OrderRepository, statsRepo port.DailyStatsRepository) *ClearStatsUseCase {
	return &ClearStatsUseCase{
		orderRepo: orderRepo,
		statsRepo: statsRepo,
	}
}

// Execute borra completados y cierres, y reporta cuántos de cada uno
func (uc *ClearStatsUseCase) Execute(ctx context.Context) (*response.ClearStatsResponse, error) {
	ordersDeleted, err := uc.orderRepo.DeleteCompleted(ctx)
	if err != nil {
		return nil, fmt.Errorf("error deleting completed orders: %w", err)
	}

	snapshotsDeleted, err := uc.statsRepo.DeleteAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error deleting snapshots: %w", err)
	}

	return &response.ClearStatsResponse{
		OrdersDeleted:    ordersDeleted,
		SnapshotsDeleted: snapshotsDeleted,
	}, nil
}
