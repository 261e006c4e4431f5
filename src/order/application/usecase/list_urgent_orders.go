package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/angelsaidmejia/paneldecontrol/src/order/application/response"
	"github.com/angelsaidmejia/paneldecontrol/src/order/domain/entity"
	"github.com/angelsaidmejia/paneldecontrol/src/order/domain/port"
)

// ListUrgentOrdersUseCase caso de uso para la alarma de pedidos urgentes.
// Se evalúa bajo demanda; el intervalo de sondeo es decisión del cliente.
type ListUrgentOrdersUseCase struct {
	orderRepo port.OrderRepository
	location  *time.Location
}

// NewListUrgentOrdersUseCase crea una nueva instancia del caso de uso
func NewListUrgentOrdersUseCase(orderRepo port.OrderRepository, location *time.Location) *ListUrgentOrdersUseCase {
	return &ListUrgentOrdersUseCase{
		orderRepo: orderRepo,
		location:  location,
	}
}

// Execute lista los pendientes dentro de la ventana de urgencia
func (uc *ListUrgentOrdersUseCase) Execute(ctx context.Context) ([]response.UrgentOrderResponse, error) {
	orders, err := uc.orderRepo.ListByStatus(ctx, entity.OrderStatusPending)
	if err != nil {
		return nil, fmt.Errorf("error listing pending orders: %w", err)
	}

	now := time.Now().In(uc.location)
	urgent := make([]response.UrgentOrderResponse, 0)

	for _, order := range orders {
		if !entity.IsUrgent(order, now) {
			continue
		}
		minutes, _ := entity.MinutesUntilDelivery(order, now)
		urgent = append(urgent, response.UrgentOrderResponse{
			Order:            order,
			MinutesRemaining: int(math.Round(minutes)),
		})
	}

	return urgent, nil
}
