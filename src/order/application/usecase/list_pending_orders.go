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

// ListPendingOrdersUseCase caso de uso para el tablero de pedidos pendientes
type ListPendingOrdersUseCase struct {
	orderRepo port.OrderRepository
	location  *time.Location
}

// NewListPendingOrdersUseCase crea una nueva instancia del caso de uso
func NewListPendingOrdersUseCase(orderRepo port.OrderRepository, location *time.Location) *ListPendingOrdersUseCase {
	return &ListPendingOrdersUseCase{
		orderRepo: orderRepo,
		location:  location,
	}
}

// Execute lista los pendientes con su marca de urgencia y el total por cobrar
func (uc *ListPendingOrdersUseCase) Execute(ctx context.Context) (*response.OrderListResponse, error) {
	orders, err := uc.orderRepo.ListByStatus(ctx, entity.OrderStatusPending)
	if err != nil {
		return nil, fmt.Errorf("error listing pending orders: %w", err)
	}

	now := time.Now().In(uc.location)
	items := make([]response.PendingOrderResponse, 0, len(orders))
	total := decimal.Zero

	for _, order := range orders {
		items = append(items, response.PendingOrderResponse{
			Order:  order,
			Urgent: entity.IsUrgent(order, now),
		})
		total = total.Add(order.TotalPrice)
	}

	return &response.OrderListResponse{
		Items:       items,
		TotalCount:  len(items),
		TotalAmount: total,
	}, nil
}
