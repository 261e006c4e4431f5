package usecase

import (
	"context"
	"fmt"
	"time"

	orderport "github.com/angelsaidmejia/paneldecontrol/src/order/domain/port"
	"github.com/angelsaidmejia/paneldecontrol/src/stats/domain/entity"
	"github.com/angelsaidmejia/paneldecontrol/src/stats/domain/service"
)

// DailyStatsUseCase caso de uso para las estadísticas de un día.
// El resumen se recalcula desde los pedidos en cada consulta; no se
// mantiene ningún acumulado incremental.
type DailyStatsUseCase struct {
	orderRepo orderport.OrderRepository
	location  *time.Location
}

// NewDailyStatsUseCase crea una nueva instancia del caso de uso
func NewDailyStatsUseCase(orderRepo orderport.OrderRepository, location *time.Location) *DailyStatsUseCase {
	return &DailyStatsUseCase{
		orderRepo: orderRepo,
		location:  location,
	}
}

// Execute calcula el resumen de la fecha dada; vacía significa hoy
func (uc *DailyStatsUseCase) Execute(ctx context.Context, date string) (*entity.DailyStats, error) {
	if date == "" {
		date = time.Now().In(uc.location).Format(entity.DateLayout)
	}
	if _, err := time.ParseInLocation(entity.DateLayout, date, uc.location); err != nil {
		return nil, entity.ErrInvalidDate
	}

	orders, err := uc.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing orders: %w", err)
	}

	stats := service.ComputeDailyStats(orders, date, uc.location)
	return &stats, nil
}
