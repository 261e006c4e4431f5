package usecase

import (
	"context"
	"fmt"

	"github.com/angelsaidmejia/paneldecontrol/src/menu/application/request"
	"github.com/angelsaidmejia/paneldecontrol/src/menu/domain/entity"
	"github.com/angelsaidmejia/paneldecontrol/src/menu/domain/port"
)

// CreateMenuItemUseCase caso de uso para agregar un producto al menú
type CreateMenuItemUseCase struct {
	menuRepo port.MenuItemRepository
}

// NewCreateMenuItemUseCase crea una nueva instancia del caso de uso
func NewCreateMenuItemUseCase(menuRepo port.MenuItemRepository) *CreateMenuItemUseCase {
	return &CreateMenuItemUseCase{
		menuRepo: menuRepo,
	}
}

// Execute valida y persiste el nuevo producto
func (uc *CreateMenuItemUseCase) Execute(ctx context.Context, req *request.SaveMenuItemRequest) (*entity.MenuItem, error) {
	item, err := entity.NewMenuItem(
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

	if err := uc.menuRepo.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("error saving menu item: %w", err)
	}

	return item, nil
}

func complementsFromRequest(reqs []request.ComplementRequest) []entity.Complement {
	complements := make([]entity.Complement, 0, len(reqs))
	for _, r := range reqs {
		complements = append(complements, entity.Complement{Name: r.Name, Price: r.Price})
	}
	return complements
}

func optionsFromRequest(reqs []request.OptionRequest) []entity.Option {
	options := make([]entity.Option, 0, len(reqs))
	for _, r := range reqs {
		options = append(options, entity.Option{Name: r.Name, Values: r.Values})
	}
	return options
}
