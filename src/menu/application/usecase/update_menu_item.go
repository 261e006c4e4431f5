package usecase

import (
	"context"
	"fmt"

	"github.com/angelsaidmejia/paneldecontrol/src/menu/application/request"
	"github.com/angelsaidmejia/paneldecontrol/src/menu/domain/entity"
	"github.com/angelsaidmejia/paneldecontrol/src/menu/domain/port"

	"github.com/google/uuid"
)

// UpdateMenuItemUseCase caso de uso para editar un producto existente
type UpdateMenuItemUseCase struct {
	menuRepo port.MenuItemRepository
}

// NewUpdateMenuItemUseCase crea una nueva instancia del caso de uso
func NewUpdateMenuItemUseCase(menuRepo port.MenuItemRepository) *UpdateMenuItemUseCase {
	return &UpdateMenuItemUseCase{
		menuRepo: menuRepo,
	}
}

// Execute reemplaza los datos del producto conservando ID y fecha de alta
func (uc *UpdateMenuItemUseCase) Execute(ctx context.Context, id uuid.UUID, req *request.SaveMenuItemRequest) (*entity.MenuItem, error) {
	existing, err := uc.menuRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := entity.NewMenuItem(
		req.Name,
		entity.Category(req.Category),
		req.BasePrice,
		req.Description,
		complementsFromRequest(req.Complements),
		optionsFromRequest(req.Options),
	)
	if err != nil {
		return nil, err
	}

	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	if err := uc.menuRepo.Save(ctx, updated); err != nil {
		return nil, fmt.Errorf("error updating menu item: %w", err)
	}

	return updated, nil
}
