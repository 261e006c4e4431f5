package usecase

import (
	"context"
	"fmt"

	"github.com/angelsaidmejia/paneldecontrol/src/menu/domain/entity"
	"github.com/angelsaidmejia/paneldecontrol/src/menu/domain/port"
)

// ListMenuItemsUseCase caso de uso para listar productos del menú
type ListMenuItemsUseCase struct {
	menuRepo port.MenuItemRepository
}

// NewListMenuItemsUseCase crea una nueva instancia del caso de uso
func NewListMenuItemsUseCase(menuRepo port.MenuItemRepository) *ListMenuItemsUseCase {
	return &ListMenuItemsUseCase{
		menuRepo: menuRepo,
	}
}

// Execute lista los productos, opcionalmente filtrados por categoría
func (uc *ListMenuItemsUseCase) Execute(ctx context.Context, category string) ([]*entity.MenuItem, error) {
	if category == "" || category == "all" {
		items, err := uc.menuRepo.ListAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("error listing menu items: %w", err)
		}
		return items, nil
	}

	cat := entity.Category(category)
	if !cat.IsValid() {
		return nil, entity.ErrInvalidCategory
	}

	items, err := uc.menuRepo.ListByCategory(ctx, cat)
	if err != nil {
		return nil, fmt.Errorf("error listing menu items by category: %w", err)
	}
	return items, nil
}
