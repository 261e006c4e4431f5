package usecase

import (
	"context"
	"fmt"

	"github.com/angelsaidmejia/paneldecontrol/src/order/domain/entity"
	"github.com/angelsaidmejia/paneldecontrol/src/order/domain/port"

	"github.com/google/uuid"
)

// CancelOrderUseCase caso de uso para cancelar un pedido pendiente.
// Cancelar elimina el registro: un pedido que nunca se entregó no debe
// aparecer en las estadísticas.
type CancelOrderUseCase struct {
	orderRepo port.OrderRepository
}

// NewCancelOrderUseCase crea una nueva instancia del caso de uso
func NewCancelOrderUseCase(orderRepo port.OrderRepository) *CancelOrderUseCase {
	return &CancelOrderUseCase{
		orderRepo: orderRepo,
	}
}

// Execute cancela (elimina) el pedido si sigue pendiente
func (uc *CancelOrderUseCase) Execute(ctx context.Context, orderID uuid.UUID) error {
	order, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}

	if order.Status != entity.OrderStatusPending {
		return entity.ErrOrderNotPending
	}

	if err := uc.orderRepo.Delete(ctx, orderID); err != nil {
		return fmt.Errorf("error deleting order: %w", err)
	}
	return nil
}
