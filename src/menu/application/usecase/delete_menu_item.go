package usecase

import (
	"context"

	"github.com/angelsaidmejia/paneldecontrol/src/menu/domain/port"

	"github.com/google/uuid"
)

// DeleteMenuItemUseCase caso de uso para eliminar un producto del menú
type DeleteMenuItemUseCase struct {
	menuRepo port.MenuItemRepository
}

// NewDeleteMenuItemUseCase crea una nueva instancia del caso de uso
func NewDeleteMenuItemUseCase(menuRepo port.MenuItemRepository) *DeleteMenuItemUseCase {
	return &DeleteMenuItemUseCase{
		menuRepo: menuRepo,
	}
}

// Execute elimina el producto indicado
func (uc *DeleteMenuItemUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	// Verifica existencia para poder responder 404 en vez de borrar a ciegas
	if _, err := uc.menuRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return uc.menuRepo.Delete(ctx, id)
}
