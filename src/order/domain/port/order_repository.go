package port

import (
	"context"

	"github.com/angelsaidmejia/paneldecontrol/src/order/domain/entity"

	"github.com/google/uuid"
)

// OrderRepository define el contrato para persistir pedidos
type OrderRepository interface {
	Save(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	ListAll(ctx context.Context) ([]*entity.Order, error)
	// ListByStatus usa el índice por estado del almacén
	ListByStatus(ctx context.Context, status entity.OrderStatus) ([]*entity.Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteCompleted elimina todos los pedidos completados y
	// devuelve cuántos borró
	DeleteCompleted(ctx context.Context) (int, error)
}
