package persistence

import (
	"context"
	"sort"
	"sync"

	"github.com/angelsaidmejia/paneldecontrol/src/menu/domain/entity"
	"github.com/angelsaidmejia/paneldecontrol/src/menu/domain/port"

	"github.com/google/uuid"
)

// MenuItemMemoryRepository implementa MenuItemRepository en memoria.
// Se usa cuando el servicio arranca sin base de datos y en tests.
type MenuItemMemoryRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]entity.MenuItem
}

// NewMenuItemMemoryRepository crea un repositorio en memoria vacío
func NewMenuItemMemoryRepository() port.MenuItemRepository {
	return &MenuItemMemoryRepository{
		items: make(map[uuid.UUID]entity.MenuItem),
	}
}

func (r *MenuItemMemoryRepository) Save(_ context.Context, item *entity.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.ID] = *item
	return nil
}

func (r *MenuItemMemoryRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok {
		return nil, entity.ErrMenuItemNotFound
	}
	copy := item
	return &copy, nil
}

func (r *MenuItemMemoryRepository) ListAll(_ context.Context) ([]*entity.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(entity.MenuItem) bool { return true }), nil
}

func (r *MenuItemMemoryRepository) ListByCategory(_ context.Context, category entity.Category) ([]*entity.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(item entity.MenuItem) bool { return item.Category == category }), nil
}

func (r *MenuItemMemoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *MenuItemMemoryRepository) collect(keep func(entity.MenuItem) bool) []*entity.MenuItem {
	var items []*entity.MenuItem
	for _, item := range r.items {
		if keep(item) {
			copy := item
			items = append(items, &copy)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items
}
