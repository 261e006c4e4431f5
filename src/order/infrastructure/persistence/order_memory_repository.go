package persistence

import (
	"context"
	"sort"
	"sync"

	"github.com/angelsaidmejia/paneldecontrol/src/order/domain/entity"
	"github.com/angelsaidmejia/paneldecontrol/src/order/domain/port"

	"github.com/google/uuid"
)

// OrderMemoryRepository implementa OrderRepository en memoria.
// Se usa cuando el servicio arranca sin base de datos y en tests.
type OrderMemoryRepository struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]entity.Order
}

// NewOrderMemoryRepository crea un repositorio en memoria vacío
func NewOrderMemoryRepository() port.OrderRepository {
	return &OrderMemoryRepository{
		orders: make(map[uuid.UUID]entity.Order),
	}
}

func (r *OrderMemoryRepository) Save(_ context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.ID] = *order
	return nil
}

func (r *OrderMemoryRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, entity.ErrOrderNotFound
	}
	copy := order
	return &copy, nil
}

func (r *OrderMemoryRepository) ListAll(_ context.Context) ([]*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(entity.Order) bool { return true }), nil
}

func (r *OrderMemoryRepository) ListByStatus(_ context.Context, status entity.OrderStatus) ([]*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(o entity.Order) bool { return o.Status == status }), nil
}

func (r *OrderMemoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.orders, id)
	return nil
}

func (r *OrderMemoryRepository) DeleteCompleted(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	deleted := 0
	for id, order := range r.orders {
		if order.Status == entity.OrderStatusCompleted {
			delete(r.orders, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r *OrderMemoryRepository) collect(keep func(entity.Order) bool) []*entity.Order {
	var orders []*entity.Order
	for _, order := range r.orders {
		if keep(order) {
			copy := order
			orders = append(orders, &copy)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].CreatedAt.Before(orders[j].CreatedAt) })
	return orders
}
