package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/angelsaidmejia/paneldecontrol/src/menu/application/response"
	"github.com/angelsaidmejia/paneldecontrol/src/menu/domain/entity"
	"github.com/angelsaidmejia/paneldecontrol/src/menu/domain/port"

	"github.com/hashicorp/go-multierror"
)

// ErrImportWithoutItems indica un archivo de menú sin productos
var ErrImportWithoutItems = errors.New("import file does not contain items")

// ImportMenuUseCase caso de uso para importar productos desde un export previo.
// Los productos importados reciben ID y fecha de alta nuevos para no pisar
// registros existentes.
type ImportMenuUseCase struct {
	menuRepo port.MenuItemRepository
}

// NewImportMenuUseCase crea una nueva instancia del caso de uso
func NewImportMenuUseCase(menuRepo port.MenuItemRepository) *ImportMenuUseCase {
	return &ImportMenuUseCase{
		menuRepo: menuRepo,
	}
}

// Execute valida cada producto del archivo y persiste los válidos.
// Las fallas de validación se acumulan por producto: un item inválido no
// corta el import completo, pero sí se reporta.
func (uc *ImportMenuUseCase) Execute(ctx context.Context, items []*entity.MenuItem) (*response.ImportMenuResponse, error) {
	if len(items) == 0 {
		return nil, ErrImportWithoutItems
	}

	var validationErrs *multierror.Error
	imported := 0

	for i, item := range items {
		fresh, err := entity.NewMenuItem(
			item.Name,
			item.Category,
			item.BasePrice,
			item.Description,
			item.Complements,
			item.Options,
		)
		if err != nil {
			validationErrs = multierror.Append(validationErrs, fmt.Errorf("item %d (%q): %w", i+1, item.Name, err))
			continue
		}

		if err := uc.menuRepo.Save(ctx, fresh); err != nil {
			return nil, fmt.Errorf("error saving imported item %q: %w", fresh.Name, err)
		}
		imported++
	}

	if err := validationErrs.ErrorOrNil(); err != nil {
		return &response.ImportMenuResponse{ImportedCount: imported}, err
	}

	return &response.ImportMenuResponse{ImportedCount: imported}, nil
}
