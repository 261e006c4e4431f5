package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/angelsaidmejia/paneldecontrol/src/order/application/response"
	"github.com/angelsaidmejia/paneldecontrol/src/order/domain/entity"
	"github.com/angelsaidmejia/paneldecontrol/src/order/domain/port"

	"github.com/shopspring/decimal"
)

// ListCompletedOrdersUseCase caso de uso para los pedidos entregados hoy.
// El corte de día usa la misma zona horaria que las estadísticas.
type ListCompletedOrdersUseCase struct {
	orderRepo port.OrderRepository
	location  *time.Location
}

// NewListCompletedOrdersUseCase crea una nueva instancia del caso de uso
func NewListCompletedOrdersUseCase(orderRepo port.OrderRepository, location *time.Location) *ListCompletedOrdersUseCase {
	return &ListCompletedOrdersUseCase{
		orderRepo: orderRepo,
		location:  location,
	}
}

// Execute lista los completados del día en curso y lo ganado hasta ahora
func (uc *ListCompletedOrdersUseCase) Execute(ctx context.Context) (*response.CompletedOrderListResponse, error) {
	orders, err := uc.orderRepo.ListByStatus(ctx, entity.OrderStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("error listing completed orders: %w", err)
	}

	today := time.Now().In(uc.location).Format("2006-01-02")
	items := make([]*entity.Order, 0, len(orders))
	total := decimal.Zero

	for _, order := range orders {
		if order.CompletedAt == nil {
			continue
		}
		if order.CompletedAt.In(uc.location).Format("2006-01-02") != today {
			continue
		}
		items = append(items, order)
		total = total.Add(order.TotalPrice)
	}

	return &response.CompletedOrderListResponse{
		Items:       items,
		TotalCount:  len(items),
		TotalEarned: total,
	}, nil
}
