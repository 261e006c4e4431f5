package usecase

import (
	"context"
	"fmt"
	"time"

	orderport "github.com/angelsaidmejia/paneldecontrol/src/order/domain/port"
	"github.com/angelsaidmejia/paneldecontrol/src/stats/domain/entity"
	"github.com/angelsaidmejia/paneldecontrol/src/stats/domain/port"
	"github.com/angelsaidmejia/paneldecontrol/src/stats/domain/service"
)

// EndDayUseCase caso de uso para el cierre de jornada.
// Guarda el resumen del día como cierre; los pedidos completados se
// conservan tal cual.
type EndDayUseCase struct {
	orderRepo orderport.OrderRepository
	statsRepo port.DailyStatsRepository
	location  *time.Location
}

// NewEndDayUseCase crea una nueva instancia del caso de uso
func NewEndDayUseCase(orderRepo orderport.OrderRepository, statsRepo port.DailyStatsRepository, location *time.Location) *EndDayUseCase {
	return &EndDayUseCase{
		orderRepo: orderRepo,
		statsRepo: statsRepo,
		location:  location,
	}
}

// Execute calcula el resumen de hoy y lo persiste como cierre.
// Cerrar dos veces el mismo día reemplaza el cierre anterior.
func (uc *EndDayUseCase) Execute(ctx context.Context) (*entity.StatsSnapshot, error) {
	orders, err := uc.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing orders: %w", err)
	}

	today := time.Now().In(uc.location).Format(entity.DateLayout)
	stats := service.ComputeDailyStats(orders, today, uc.location)

	snapshot := entity.NewStatsSnapshot(stats)
	if err := uc.statsRepo.SaveSnapshot(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("error saving day snapshot: %w", err)
	}

	return snapshot, nil
}
