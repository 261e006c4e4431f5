package usecase

import (
	"context"
	"fmt"
	"time"

	orderport "github.com/angelsaidmejia/paneldecontrol/src/order/domain/port"
	"github.com/angelsaidmejia/paneldecontrol/src/stats/domain/entity"
	"github.com/angelsaidmejia/paneldecontrol/src/stats/domain/service"
)

// YearlyStatsUseCase caso de uso para las estadísticas de un año
type YearlyStatsUseCase struct {
	orderRepo orderport.OrderRepository
	location  *time.Location
}

// NewYearlyStatsUseCase crea una nueva instancia del caso de uso
func NewYearlyStatsUseCase(orderRepo orderport.OrderRepository, location *time.Location) *YearlyStatsUseCase {
	return &YearlyStatsUseCase{
		orderRepo: orderRepo,
		location:  location,
	}
}

// Execute consolida los doce consolidados mensuales del año.
// PeriodData trae un ingreso por mes, de enero a diciembre.
func (uc *YearlyStatsUseCase) Execute(ctx context.Context, year int) (*entity.ConsolidatedStats, error) {
	if year <= 0 {
		return nil, entity.ErrInvalidYear
	}

	orders, err := uc.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing orders: %w", err)
	}

	summaries := make([]entity.PeriodSummary, 0, 12)
	for month := 1; month <= 12; month++ {
		monthly := consolidateMonth(orders, year, month, uc.location)
		summaries = append(summaries, monthly.Period())
	}

	consolidated := service.Consolidate(summaries)
	return &consolidated, nil
}
