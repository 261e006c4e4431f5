package usecase

import (
	"context"
	"fmt"
	"time"

	orderentity "github.com/angelsaidmejia/paneldecontrol/src/order/domain/entity"
	orderport "github.com/angelsaidmejia/paneldecontrol/src/order/domain/port"
	"github.com/angelsaidmejia/paneldecontrol/src/stats/domain/entity"
	"github.com/angelsaidmejia/paneldecontrol/src/stats/domain/service"
)

// MonthlyStatsUseCase caso de uso para las estadísticas de un mes
type MonthlyStatsUseCase struct {
	orderRepo orderport.OrderRepository
	location  *time.Location
}

// NewMonthlyStatsUseCase crea una nueva instancia del caso de uso
func NewMonthlyStatsUseCase(orderRepo orderport.OrderRepository, location *time.Location) *MonthlyStatsUseCase {
	return &MonthlyStatsUseCase{
		orderRepo: orderRepo,
		location:  location,
	}
}

// Execute consolida los resúmenes diarios de todo el mes calendario.
// PeriodData trae un ingreso por día del mes, en orden.
func (uc *MonthlyStatsUseCase) Execute(ctx context.Context, year, month int) (*entity.ConsolidatedStats, error) {
	if year <= 0 {
		return nil, entity.ErrInvalidYear
	}
	if month < 1 || month > 12 {
		return nil, entity.ErrInvalidMonth
	}

	orders, err := uc.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing orders: %w", err)
	}

	consolidated := consolidateMonth(orders, year, month, uc.location)
	return &consolidated, nil
}

// consolidateMonth arma el consolidado de un mes desde los pedidos.
// Compartido con el cálculo anual para no duplicar el barrido por días.
func consolidateMonth(orders []*orderentity.Order, year, month int, loc *time.Location) entity.ConsolidatedStats {
	// El día cero del mes siguiente es el último día del mes
	lastDay := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, loc).Day()

	summaries := make([]entity.PeriodSummary, 0, lastDay)
	for day := 1; day <= lastDay; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		daily := service.ComputeDailyStats(orders, date, loc)
		summaries = append(summaries, daily.Period())
	}

	return service.Consolidate(summaries)
}
