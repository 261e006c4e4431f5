package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/angelsaidmejia/paneldecontrol/src/order/domain/entity"
	"github.com/angelsaidmejia/paneldecontrol/src/order/domain/port"

	"github.com/google/uuid"
)

// CompleteOrderUseCase caso de uso para marcar un pedido como entregado
type CompleteOrderUseCase struct {
	orderRepo port.OrderRepository
}

// NewCompleteOrderUseCase crea una nueva instancia del caso de uso
func NewCompleteOrderUseCase(orderRepo port.OrderRepository) *CompleteOrderUseCase {
	return &CompleteOrderUseCase{
		orderRepo: orderRepo,
	}
}

// Execute transiciona el pedido a completado y fija la hora de entrega real
func (uc *CompleteOrderUseCase) Execute(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.Complete(time.Now()); err != nil {
		return nil, err
	}

	if err := uc.orderRepo.Save(ctx, order); err != nil {
		return nil, fmt.Errorf("error saving completed order: %w", err)
	}

	return order, nil
}
